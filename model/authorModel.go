package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DateLayout = "2006-01-02"

type Author struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	FamilyName  string             `bson:"family_name" json:"family_name"`
	DateOfBirth *time.Time         `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time         `bson:"date_of_death,omitempty" json:"date_of_death,omitempty"`
}

// Name is "Family, First", or empty when either part is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

func (a Author) URL() string { return "/catalog/author/" + a.ID.Hex() }

func (a Author) Lifespan() string {
	if a.DateOfBirth == nil && a.DateOfDeath == nil {
		return ""
	}
	return FormatDate(a.DateOfBirth) + " - " + FormatDate(a.DateOfDeath)
}

// FormatDate renders d for display, empty for nil.
func FormatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("Jan 2, 2006")
}

// InputDate renders d as a form value.
func InputDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(DateLayout)
}

// ParseDate parses an optional form date. Empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
