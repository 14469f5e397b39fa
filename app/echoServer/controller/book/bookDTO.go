package book

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/app/echoServer/validation"
	"locallibrary/model"
	booksvc "locallibrary/service/book"
)

// BookForm is the submitted create/update form. Genre is multi-valued and
// may be absent.
type BookForm struct {
	Title   string   `form:"title" validate:"required" msg:"Title must not be empty."`
	Author  string   `form:"author" validate:"required" msg:"Author must not be empty."`
	Summary string   `form:"summary" validate:"required" msg:"Summary must not be empty."`
	ISBN    string   `form:"isbn" validate:"required" msg:"ISBN must not be empty"`
	Genre   []string `form:"genre"`
}

// Clean sanitizes the text fields and normalizes Genre in place.
func (f *BookForm) Clean() {
	f.Title = validation.Sanitize(f.Title)
	f.Author = validation.Sanitize(f.Author)
	f.Summary = validation.Sanitize(f.Summary)
	f.ISBN = validation.Sanitize(f.ISBN)
	f.Genre = validation.NormalizeIDs(f.Genre)
}

func (f BookForm) Input() booksvc.Input {
	return booksvc.Input{
		Title:   f.Title,
		Author:  f.Author,
		Summary: f.Summary,
		ISBN:    f.ISBN,
		Genre:   f.Genre,
	}
}

// Draft is the book shown when the form is rendered again. Ids that do not
// parse are left out.
func (f BookForm) Draft() *model.Book {
	b := &model.Book{
		Title:   f.Title,
		Summary: f.Summary,
		ISBN:    f.ISBN,
		Genre:   make([]primitive.ObjectID, 0, len(f.Genre)),
	}
	if id, ok := model.ParseID(f.Author); ok {
		b.Author = id
	}
	for _, raw := range f.Genre {
		if id, ok := model.ParseID(raw); ok {
			b.Genre = append(b.Genre, id)
		}
	}
	return b
}
