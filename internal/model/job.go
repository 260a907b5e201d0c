package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Job post statuses. New jobs always start as Draft.
const (
	JobStatusDraft  = "Draft"
	JobStatusLive   = "Live"
	JobStatusClosed = "Closed"
)

// Job is a job posting. It belongs to exactly one company and is mutated
// only by that company's admins.
type Job struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID bson.ObjectID `bson:"company_id"    json:"company_id"`

	Title        string `bson:"job_title"             json:"job_title"`
	Type         string `bson:"job_type"              json:"job_type"`
	LocationType string `bson:"job_location_type"     json:"job_location_type"`
	Status       string `bson:"job_post_status"       json:"job_post_status"`
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
	Location     string `bson:"location,omitempty"    json:"location,omitempty"`

	SalaryMin      int    `bson:"salary_min,omitempty"      json:"salary_min,omitempty"`
	SalaryMax      int    `bson:"salary_max,omitempty"      json:"salary_max,omitempty"`
	SalaryCurrency string `bson:"salary_currency,omitempty" json:"salary_currency,omitempty"`

	SkillIDs           []bson.ObjectID     `bson:"skills,omitempty"              json:"skills,omitempty"`
	Geolocation        *GeoPoint           `bson:"geolocation,omitempty"         json:"geolocation,omitempty"`
	ScreeningQuestions []ScreeningQuestion `bson:"screening_questions,omitempty" json:"screening_questions,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// GeoPoint is an optional job location coordinate.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude"  json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// ScreeningQuestion is an optional question applicants answer when applying.
type ScreeningQuestion struct {
	Question string `bson:"question" json:"question"`
	Required bool   `bson:"required" json:"required"`
}
