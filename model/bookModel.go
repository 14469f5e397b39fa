package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Book struct {
	ID      primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title   string               `bson:"title" json:"title"`
	Author  primitive.ObjectID   `bson:"author" json:"author"`
	Summary string               `bson:"summary" json:"summary"`
	ISBN    string               `bson:"isbn" json:"isbn"`
	Genre   []primitive.ObjectID `bson:"genre" json:"genre"`
}

func (b Book) URL() string { return "/catalog/book/" + b.ID.Hex() }

// HasGenre reports whether id is among the book's genres.
func (b Book) HasGenre(id primitive.ObjectID) bool {
	for _, g := range b.Genre {
		if g == id {
			return true
		}
	}
	return false
}

type InstanceStatus string

const (
	StatusAvailable   InstanceStatus = "Available"
	StatusMaintenance InstanceStatus = "Maintenance"
	StatusLoaned      InstanceStatus = "Loaned"
	StatusReserved    InstanceStatus = "Reserved"
)

// Statuses lists every instance status in display order.
var Statuses = []InstanceStatus{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}

type BookInstance struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Book    primitive.ObjectID `bson:"book" json:"book"`
	Imprint string             `bson:"imprint" json:"imprint"`
	DueBack *time.Time         `bson:"due_back,omitempty" json:"due_back,omitempty"`
	Status  InstanceStatus     `bson:"status" json:"status"`
}

func (bi BookInstance) URL() string { return "/catalog/bookinstance/" + bi.ID.Hex() }

func (bi BookInstance) DueBackFormatted() string { return FormatDate(bi.DueBack) }

// ParseID converts a hex path segment into an ObjectID.
func ParseID(s string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
