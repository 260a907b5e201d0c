package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Application statuses.
const (
	ApplicationStatusSubmitted = "Submitted"
	ApplicationStatusReviewed  = "Reviewed"
	ApplicationStatusRejected  = "Rejected"
)

// Application is a job seeker's application to a live job. CompanyID is
// denormalized from the job so company admins can list applications
// without a join.
type Application struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID     bson.ObjectID `bson:"job_id"        json:"job_id"`
	CompanyID bson.ObjectID `bson:"company_id"    json:"company_id"`
	UserID    bson.ObjectID `bson:"user_id"       json:"user_id"`
	Status    string        `bson:"status"        json:"status"`

	Answers []ScreeningAnswer `bson:"answers,omitempty" json:"answers,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ScreeningAnswer pairs a job's screening question with the applicant's answer.
type ScreeningAnswer struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer"   json:"answer"`
}
