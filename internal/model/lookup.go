package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LookupKind identifies one of the shared lookup entity collections.
type LookupKind string

const (
	LookupSkill     LookupKind = "skills"
	LookupSpecialty LookupKind = "specialties"
	LookupService   LookupKind = "services"
	LookupIndustry  LookupKind = "industries"
)

// Valid reports whether the kind names a known lookup collection.
func (k LookupKind) Valid() bool {
	switch k {
	case LookupSkill, LookupSpecialty, LookupService, LookupIndustry:
		return true
	}
	return false
}

// LookupEntity is a small shared reference record attached to users,
// companies and jobs by id. Names are unique within a kind.
type LookupEntity struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name"          json:"name"`
	CreatedAt time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updated_at"`
}
