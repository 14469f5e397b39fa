package author

import (
	"strings"

	"locallibrary/app/echoServer/validation"
	authorsvc "locallibrary/service/author"
)

type AuthorForm struct {
	FirstName   string `form:"first_name" validate:"required" msg:"First name must be specified."`
	FamilyName  string `form:"family_name" validate:"required" msg:"Family name must be specified."`
	DateOfBirth string `form:"date_of_birth" validate:"omitempty,datetime=2006-01-02" msg:"Invalid date of birth"`
	DateOfDeath string `form:"date_of_death" validate:"omitempty,datetime=2006-01-02" msg:"Invalid date of death"`
}

// Clean sanitizes the names. Dates are only trimmed; they are parsed, not
// stored as text.
func (f *AuthorForm) Clean() {
	f.FirstName = validation.Sanitize(f.FirstName)
	f.FamilyName = validation.Sanitize(f.FamilyName)
	f.DateOfBirth = strings.TrimSpace(f.DateOfBirth)
	f.DateOfDeath = strings.TrimSpace(f.DateOfDeath)
}

func (f AuthorForm) Input() authorsvc.Input { return authorsvc.Input(f) }
