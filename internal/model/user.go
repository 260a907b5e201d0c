package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User roles.
const (
	RoleJobSeeker = "job_seeker"
	RoleEmployer  = "employer"
)

// Auth providers.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is the identity and profile aggregate. The profile sections
// (education, certifications and so on) are embedded documents owned
// and mutated only by the user themselves.
//
// OTP holds the SHA-256 hex digest of the last issued verification code,
// never the plaintext. OTP and OTPExpiresAt are transient: set when a code
// is requested, unset once verification succeeds.
type User struct {
	ID             bson.ObjectID `bson:"_id,omitempty"            json:"id"`
	Email          string        `bson:"email"                    json:"email"`
	Username       string        `bson:"username"                 json:"username"`
	PasswordHash   string        `bson:"password_hash,omitempty"  json:"-"`
	Provider       string        `bson:"provider"                 json:"provider"`
	Role           string        `bson:"role"                     json:"role"`
	FirstName      string        `bson:"first_name"               json:"first_name"`
	LastName       string        `bson:"last_name"                json:"last_name"`
	Headline       string        `bson:"headline,omitempty"       json:"headline,omitempty"`
	About          string        `bson:"about,omitempty"          json:"about,omitempty"`
	PhoneNumber    string        `bson:"phone_number,omitempty"   json:"phone_number,omitempty"`
	ProfilePicture string        `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`

	EmailVerified *time.Time `bson:"email_verified,omitempty" json:"email_verified,omitempty"`
	OTP           string     `bson:"otp,omitempty"            json:"-"`
	OTPExpiresAt  *time.Time `bson:"otp_expiry,omitempty"     json:"-"`

	SkillIDs  []bson.ObjectID `bson:"skills,omitempty"    json:"skills,omitempty"`
	Languages []string        `bson:"languages,omitempty" json:"languages,omitempty"`

	Education      []Education        `bson:"education,omitempty"      json:"education,omitempty"`
	Certifications []Certification    `bson:"certifications,omitempty" json:"certifications,omitempty"`
	Courses        []Course           `bson:"courses,omitempty"        json:"courses,omitempty"`
	Projects       []Project          `bson:"projects,omitempty"       json:"projects,omitempty"`
	Awards         []Award            `bson:"awards,omitempty"         json:"awards,omitempty"`
	References     []ReferenceContact `bson:"references,omitempty"     json:"references,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Education is a single education history entry.
type Education struct {
	School       string     `bson:"school"                   json:"school"`
	Degree       string     `bson:"degree,omitempty"         json:"degree,omitempty"`
	FieldOfStudy string     `bson:"field_of_study,omitempty" json:"field_of_study,omitempty"`
	StartDate    *time.Time `bson:"start_date,omitempty"     json:"start_date,omitempty"`
	EndDate      *time.Time `bson:"end_date,omitempty"       json:"end_date,omitempty"`
	Grade        string     `bson:"grade,omitempty"          json:"grade,omitempty"`
	Description  string     `bson:"description,omitempty"    json:"description,omitempty"`
}

// Certification is a professional certification entry.
type Certification struct {
	Name          string     `bson:"name"                     json:"name"`
	Organization  string     `bson:"organization,omitempty"   json:"organization,omitempty"`
	IssueDate     *time.Time `bson:"issue_date,omitempty"     json:"issue_date,omitempty"`
	ExpiryDate    *time.Time `bson:"expiry_date,omitempty"    json:"expiry_date,omitempty"`
	CredentialID  string     `bson:"credential_id,omitempty"  json:"credential_id,omitempty"`
	CredentialURL string     `bson:"credential_url,omitempty" json:"credential_url,omitempty"`
}

// Course is a completed course entry.
type Course struct {
	Name        string `bson:"name"                  json:"name"`
	Number      string `bson:"number,omitempty"      json:"number,omitempty"`
	Association string `bson:"association,omitempty" json:"association,omitempty"`
}

// Project is a portfolio project entry.
type Project struct {
	Name        string     `bson:"name"                  json:"name"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	URL         string     `bson:"url,omitempty"         json:"url,omitempty"`
	StartDate   *time.Time `bson:"start_date,omitempty"  json:"start_date,omitempty"`
	EndDate     *time.Time `bson:"end_date,omitempty"    json:"end_date,omitempty"`
}

// Award is an honor or award entry.
type Award struct {
	Title       string     `bson:"title"                 json:"title"`
	Issuer      string     `bson:"issuer,omitempty"      json:"issuer,omitempty"`
	IssueDate   *time.Time `bson:"issue_date,omitempty"  json:"issue_date,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
}

// ReferenceContact is a professional reference.
type ReferenceContact struct {
	Name        string `bson:"name"                   json:"name"`
	Company     string `bson:"company,omitempty"      json:"company,omitempty"`
	Position    string `bson:"position,omitempty"     json:"position,omitempty"`
	Email       string `bson:"email,omitempty"        json:"email,omitempty"`
	PhoneNumber string `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
}
