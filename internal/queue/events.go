package queue

import "context"

// Routing keys for domain events.
const (
	KeyUserRegistered = "user.registered"
	KeyUserVerified   = "user.verified"
	KeyJobPosted      = "job.posted"
)

// Publisher publishes domain events to a message broker. Publishing is
// best effort: callers log failures and never fail the request over one.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
	Close() error
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

func NewNoop() Publisher { return NoopPublisher{} }

func (NoopPublisher) Publish(ctx context.Context, key string, event any) error { return nil }
func (NoopPublisher) Close() error                                             { return nil }

// UserRegistered is emitted after a successful signup.
type UserRegistered struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// UserVerified is emitted when a user's email becomes verified.
type UserVerified struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// JobPosted is emitted when a job is created.
type JobPosted struct {
	JobID     string `json:"job_id"`
	CompanyID string `json:"company_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
}
