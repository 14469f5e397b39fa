package bookinstance

import (
	"strings"

	"locallibrary/app/echoServer/validation"
	"locallibrary/model"
	instancesvc "locallibrary/service/bookinstance"
)

type InstanceForm struct {
	Book    string `form:"book" validate:"required" msg:"Book must be specified"`
	Imprint string `form:"imprint" validate:"required" msg:"Imprint must be specified"`
	DueBack string `form:"due_back" validate:"omitempty,datetime=2006-01-02" msg:"Invalid date"`
	Status  string `form:"status" validate:"omitempty,oneof=Available Maintenance Loaned Reserved" msg:"Invalid status"`
}

func (f *InstanceForm) Clean() {
	f.Book = strings.TrimSpace(f.Book)
	f.Imprint = validation.Sanitize(f.Imprint)
	f.DueBack = strings.TrimSpace(f.DueBack)
	f.Status = strings.TrimSpace(f.Status)
}

func (f InstanceForm) Input() instancesvc.Input { return instancesvc.Input(f) }

// Draft is the copy shown when the form is rendered again.
func (f InstanceForm) Draft() *model.BookInstance {
	bi := &model.BookInstance{Imprint: f.Imprint}
	if id, ok := model.ParseID(f.Book); ok {
		bi.Book = id
	}
	if due, err := model.ParseDate(f.DueBack); err == nil {
		bi.DueBack = due
	}
	if st, ok := instancesvc.ParseStatus(f.Status); ok {
		bi.Status = st
	}
	return bi
}
