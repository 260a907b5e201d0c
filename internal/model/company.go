package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MaxCompanyIndustries caps the number of industries attachable to a company.
const MaxCompanyIndustries = 3

// Company is an employer profile. AdminIDs lists the users entitled to
// mutate the company and its jobs; the creator is the first admin.
type Company struct {
	ID          bson.ObjectID `bson:"_id,omitempty"          json:"id"`
	Name        string        `bson:"name"                   json:"name"`
	Tagline     string        `bson:"tagline,omitempty"      json:"tagline,omitempty"`
	About       string        `bson:"about,omitempty"        json:"about,omitempty"`
	Website     string        `bson:"website,omitempty"      json:"website,omitempty"`
	Size        string        `bson:"size,omitempty"         json:"size,omitempty"`
	FoundedYear int           `bson:"founded_year,omitempty" json:"founded_year,omitempty"`
	LogoURL     string        `bson:"logo_url,omitempty"     json:"logo_url,omitempty"`

	AdminIDs    []bson.ObjectID `bson:"admins"                 json:"admins"`
	Address     Address         `bson:"address,omitempty"      json:"address"`
	SocialLinks SocialLinks     `bson:"social_links,omitempty" json:"social_links"`

	SpecialtyIDs []bson.ObjectID `bson:"specialties,omitempty" json:"specialties,omitempty"`
	ServiceIDs   []bson.ObjectID `bson:"services,omitempty"    json:"services,omitempty"`
	IndustryIDs  []bson.ObjectID `bson:"industries,omitempty"  json:"industries,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Address is a company's postal address.
type Address struct {
	Street     string `bson:"street,omitempty"      json:"street,omitempty"`
	City       string `bson:"city,omitempty"        json:"city,omitempty"`
	State      string `bson:"state,omitempty"       json:"state,omitempty"`
	Country    string `bson:"country,omitempty"     json:"country,omitempty"`
	PostalCode string `bson:"postal_code,omitempty" json:"postal_code,omitempty"`
}

// SocialLinks holds a company's social media profiles.
type SocialLinks struct {
	LinkedIn  string `bson:"linkedin,omitempty"  json:"linkedin,omitempty"`
	Twitter   string `bson:"twitter,omitempty"   json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty"  json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	YouTube   string `bson:"youtube,omitempty"   json:"youtube,omitempty"`
}

// IsAdmin reports whether the given user id appears in the admin list.
func (c *Company) IsAdmin(userID bson.ObjectID) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
