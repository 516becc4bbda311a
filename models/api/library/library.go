package libraryapimodels

import (
	"campus-backend/lib/utils/helpers"
	"campus-backend/models"
	apimodels "campus-backend/models/api"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
)

type BookData struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Isbn        string `json:"isbn"`
	Category    string `json:"category"`
	TotalCopies int    `json:"total_copies"`
}

func (r BookData) Validate() error {
	if r.Title == "" {
		return errors.Wrap(models.ErrValidation, "title is required")
	}
	if r.Isbn == "" {
		return errors.Wrap(models.ErrValidation, "isbn is required")
	}
	if r.TotalCopies <= 0 {
		return errors.Wrap(models.ErrValidation, "copies count is required")
	}
	return nil
}

type BookFilter struct {
	apimodels.Pagination
	Search   string `json:"search"`
	Category string `json:"category"`
}

type BookView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Isbn        string `json:"isbn"`
	Category    string `json:"category,omitempty"`
	TotalCopies int    `json:"total_copies"`
	Available   int    `json:"available"`
}

func BookConvert(rec dbmodels.LibraryBook) BookView {
	return BookView{
		ID:          rec.ID,
		Title:       rec.Title,
		Author:      rec.Author,
		Isbn:        rec.Isbn,
		Category:    rec.Category,
		TotalCopies: rec.TotalCopies,
		Available:   rec.Available,
	}
}

type LoanView struct {
	ID         string            `json:"id"`
	BookID     string            `json:"book_id"`
	BookTitle  string            `json:"book_title,omitempty"`
	StudentID  string            `json:"student_id"`
	Student    string            `json:"student,omitempty"`
	IssuedAt   string            `json:"issued_at"`
	DueAt      string            `json:"due_at"`
	ReturnedAt string            `json:"returned_at,omitempty"`
	Status     models.LoanStatus `json:"status"`
}

func LoanConvert(rec dbmodels.BookLoan) LoanView {
	view := LoanView{
		ID:        rec.ID,
		BookID:    rec.BookID,
		StudentID: rec.StudentID,
		IssuedAt:  helpers.FormatDate(rec.IssuedAt),
		DueAt:     helpers.FormatDate(rec.DueAt),
		Status:    rec.Status,
	}
	if rec.ReturnedAt != nil {
		view.ReturnedAt = helpers.FormatDate(*rec.ReturnedAt)
	}
	if rec.Book != nil {
		view.BookTitle = rec.Book.Title
	}
	if rec.Student != nil && rec.Student.User != nil {
		view.Student = rec.Student.User.FullName
	}
	return view
}
