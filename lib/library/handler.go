package library

import (
	"time"

	"campus-backend/db"
	librarystore "campus-backend/lib/library/store"
	studentsstore "campus-backend/lib/students/store"
	initchecker "campus-backend/lib/utils/init-checker"
	"campus-backend/models"
	libraryapimodels "campus-backend/models/api/library"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const loanPeriodDays = 14

type Provider interface {
	AddBook(data libraryapimodels.BookData) (id string, err error)
	GetBook(id string) (libraryapimodels.BookView, error)
	ListBooks(filter libraryapimodels.BookFilter) (list []libraryapimodels.BookView, rowCount int64, err error)
	IssueBook(identity models.Identity, bookID, studentID string) (loanID string, err error)
	ReturnBook(loanID string) error
	StudentLoans(studentID string) ([]libraryapimodels.LoanView, error)
	MarkOverdue(now time.Time) (marked int, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:        librarystore.NewInstance(db.DB),
		studentStore: studentsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"studentStore", instance.studentStore,
	)
	Instance = instance
}

type impl struct {
	store        librarystore.Provider
	studentStore studentsstore.Provider
}

func (i impl) AddBook(data libraryapimodels.BookData) (string, error) {
	err := data.Validate()
	if err != nil {
		return "", err
	}
	existing, err := i.store.GetBookByIsbn(data.Isbn)
	if err != nil {
		return "", err
	}
	if existing != nil {
		err = i.store.UpdateBook(existing.ID, map[string]interface{}{
			"total_copies": existing.TotalCopies + data.TotalCopies,
			"available":    existing.Available + data.TotalCopies,
		})
		if err != nil {
			return "", err
		}
		return existing.ID, nil
	}
	rec := dbmodels.LibraryBook{
		Title:       data.Title,
		Author:      data.Author,
		Isbn:        data.Isbn,
		Category:    data.Category,
		TotalCopies: data.TotalCopies,
		Available:   data.TotalCopies,
	}
	id, err := i.store.CreateBook(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("isbn", data.Isbn).
		Info("book added to catalog")
	return id, nil
}

func (i impl) GetBook(id string) (libraryapimodels.BookView, error) {
	rec, err := i.store.GetBookByID(id)
	if err != nil {
		return libraryapimodels.BookView{}, err
	}
	if rec == nil {
		return libraryapimodels.BookView{}, errors.Wrap(models.ErrNotFound, "book not found")
	}
	return libraryapimodels.BookConvert(*rec), nil
}

func (i impl) ListBooks(filter libraryapimodels.BookFilter) ([]libraryapimodels.BookView, int64, error) {
	rowCount, err := i.store.ListBooksCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.ListBooks(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]libraryapimodels.BookView, 0, len(list))
	for _, rec := range list {
		result = append(result, libraryapimodels.BookConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) IssueBook(identity models.Identity, bookID, studentID string) (string, error) {
	student, err := i.studentStore.GetByID(studentID)
	if err != nil {
		return "", err
	}
	if student == nil {
		return "", errors.Wrap(models.ErrNotFound, "student not found")
	}
	book, err := i.store.GetBookByID(bookID)
	if err != nil {
		return "", err
	}
	if book == nil {
		return "", errors.Wrap(models.ErrNotFound, "book not found")
	}
	active, err := i.store.GetActiveLoan(bookID, studentID)
	if err != nil {
		return "", err
	}
	if active != nil {
		return "", errors.Wrap(models.ErrValidation, "student already holds this book")
	}
	applied, err := i.store.ChangeAvailable(bookID, -1)
	if err != nil {
		return "", err
	}
	if !applied {
		return "", errors.Wrap(models.ErrValidation, "no copies available")
	}
	now := time.Now()
	loanID, err := i.store.CreateLoan(dbmodels.BookLoan{
		BookID:    bookID,
		StudentID: studentID,
		IssuedAt:  now,
		DueAt:     now.AddDate(0, 0, loanPeriodDays),
		Status:    models.LoanStatusIssued,
		IssuedBy:  &identity.UserID,
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("loan_id", loanID).
		WithField("book_id", bookID).
		WithField("student_id", studentID).
		Info("book issued")
	return loanID, nil
}

func (i impl) ReturnBook(loanID string) error {
	loan, err := i.store.GetLoanByID(loanID)
	if err != nil {
		return err
	}
	if loan == nil {
		return errors.Wrap(models.ErrNotFound, "loan not found")
	}
	if loan.Status == models.LoanStatusReturned {
		return errors.Wrap(models.ErrInvalidTransition, "book already returned")
	}
	now := time.Now()
	err = i.store.UpdateLoan(loanID, map[string]interface{}{
		"status":      models.LoanStatusReturned,
		"returned_at": &now,
	})
	if err != nil {
		return err
	}
	_, err = i.store.ChangeAvailable(loan.BookID, 1)
	if err != nil {
		log.
			WithField("book_id", loan.BookID).
			WithError(err).
			Error("available counter restore failed")
	}
	log.
		WithField("loan_id", loanID).
		Info("book returned")
	return nil
}

func (i impl) StudentLoans(studentID string) ([]libraryapimodels.LoanView, error) {
	list, err := i.store.ListLoansByStudent(studentID)
	if err != nil {
		return nil, err
	}
	result := make([]libraryapimodels.LoanView, 0, len(list))
	for _, rec := range list {
		result = append(result, libraryapimodels.LoanConvert(rec))
	}
	return result, nil
}

func (i impl) MarkOverdue(now time.Time) (int, error) {
	list, err := i.store.ListLoansDue(now)
	if err != nil {
		return 0, err
	}
	marked := 0
	for _, loan := range list {
		err = i.store.UpdateLoan(loan.ID, map[string]interface{}{
			"status": models.LoanStatusOverdue,
		})
		if err != nil {
			log.
				WithField("loan_id", loan.ID).
				WithError(err).
				Error("overdue mark failed")
			continue
		}
		marked++
	}
	if marked > 0 {
		log.
			WithField("marked", marked).
			Info("overdue loans marked")
	}
	return marked, nil
}
