package library

import (
	"fmt"
	"testing"
	"time"

	"campus-backend/models"
	libraryapimodels "campus-backend/models/api/library"
	studentapimodels "campus-backend/models/api/student"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type memLibraryStore struct {
	seq   int
	books map[string]*dbmodels.LibraryBook
	loans map[string]*dbmodels.BookLoan
}

func newMemLibraryStore() *memLibraryStore {
	return &memLibraryStore{
		books: map[string]*dbmodels.LibraryBook{},
		loans: map[string]*dbmodels.BookLoan{},
	}
}

func (s *memLibraryStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%v", prefix, s.seq)
}

func (s *memLibraryStore) CreateBook(rec dbmodels.LibraryBook) (string, error) {
	rec.ID = s.nextID("book")
	s.books[rec.ID] = &rec
	return rec.ID, nil
}

func (s *memLibraryStore) GetBookByID(id string) (*dbmodels.LibraryBook, error) {
	rec, ok := s.books[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (s *memLibraryStore) GetBookByIsbn(isbn string) (*dbmodels.LibraryBook, error) {
	for _, rec := range s.books {
		if rec.Isbn == isbn {
			return rec, nil
		}
	}
	return nil, nil
}

func (s *memLibraryStore) ListBooks(filter libraryapimodels.BookFilter) ([]dbmodels.LibraryBook, error) {
	list := []dbmodels.LibraryBook{}
	for _, rec := range s.books {
		list = append(list, *rec)
	}
	return list, nil
}

func (s *memLibraryStore) ListBooksCount(filter libraryapimodels.BookFilter) (int64, error) {
	return int64(len(s.books)), nil
}

func (s *memLibraryStore) UpdateBook(id string, updMap map[string]interface{}) error {
	rec, ok := s.books[id]
	if !ok {
		return errors.New("book not found")
	}
	if total, ok := updMap["total_copies"].(int); ok {
		rec.TotalCopies = total
	}
	if available, ok := updMap["available"].(int); ok {
		rec.Available = available
	}
	return nil
}

func (s *memLibraryStore) ChangeAvailable(id string, delta int) (bool, error) {
	rec, ok := s.books[id]
	if !ok {
		return false, nil
	}
	next := rec.Available + delta
	if next < 0 || next > rec.TotalCopies {
		return false, nil
	}
	rec.Available = next
	return true, nil
}

func (s *memLibraryStore) CreateLoan(rec dbmodels.BookLoan) (string, error) {
	rec.ID = s.nextID("loan")
	s.loans[rec.ID] = &rec
	return rec.ID, nil
}

func (s *memLibraryStore) GetLoanByID(id string) (*dbmodels.BookLoan, error) {
	rec, ok := s.loans[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (s *memLibraryStore) GetActiveLoan(bookID, studentID string) (*dbmodels.BookLoan, error) {
	for _, rec := range s.loans {
		if rec.BookID != bookID || rec.StudentID != studentID {
			continue
		}
		if rec.Status == models.LoanStatusIssued || rec.Status == models.LoanStatusOverdue {
			return rec, nil
		}
	}
	return nil, nil
}

func (s *memLibraryStore) ListLoansByStudent(studentID string) ([]dbmodels.BookLoan, error) {
	list := []dbmodels.BookLoan{}
	for _, rec := range s.loans {
		if rec.StudentID == studentID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (s *memLibraryStore) ListLoansDue(now time.Time) ([]dbmodels.BookLoan, error) {
	list := []dbmodels.BookLoan{}
	for _, rec := range s.loans {
		if rec.Status == models.LoanStatusIssued && rec.DueAt.Before(now) {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (s *memLibraryStore) UpdateLoan(id string, updMap map[string]interface{}) error {
	rec, ok := s.loans[id]
	if !ok {
		return errors.New("loan not found")
	}
	if status, ok := updMap["status"].(models.LoanStatus); ok {
		rec.Status = status
	}
	if returnedAt, ok := updMap["returned_at"].(*time.Time); ok {
		rec.ReturnedAt = returnedAt
	}
	return nil
}

type stubStudentStore struct{}

func (s stubStudentStore) Create(rec dbmodels.Student) (string, error) { return "", nil }

func (s stubStudentStore) GetByID(id string) (*dbmodels.Student, error) {
	if id != "student-1" {
		return nil, nil
	}
	return &dbmodels.Student{BaseModel: dbmodels.BaseModel{ID: id}}, nil
}

func (s stubStudentStore) GetByUserID(userID string) (*dbmodels.Student, error) { return nil, nil }

func (s stubStudentStore) GetByCode(code string) (*dbmodels.Student, error) { return nil, nil }

func (s stubStudentStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (s stubStudentStore) List(filter studentapimodels.StudentFilter) ([]dbmodels.Student, error) {
	return nil, nil
}

func (s stubStudentStore) ListCount(filter studentapimodels.StudentFilter) (int64, error) {
	return 0, nil
}

func (s stubStudentStore) AddDocument(rec dbmodels.StudentDocument) (string, error) { return "", nil }

func (s stubStudentStore) GetDocument(id string) (*dbmodels.StudentDocument, error) { return nil, nil }

func newTestHandler() (impl, *memLibraryStore) {
	store := newMemLibraryStore()
	return impl{store: store, studentStore: stubStudentStore{}}, store
}

func librarianIdentity() models.Identity {
	return models.Identity{UserID: "user-l", FullName: "Librarian", Role: models.UserRoleStaff}
}

func sampleBook() libraryapimodels.BookData {
	return libraryapimodels.BookData{
		Title:       "The Go Programming Language",
		Author:      "Donovan, Kernighan",
		Isbn:        "978-0134190440",
		Category:    "CS",
		TotalCopies: 2,
	}
}

func TestAddBook(t *testing.T) {
	t.Run("new title is created with all copies available", func(t *testing.T) {
		handler, store := newTestHandler()
		id, err := handler.AddBook(sampleBook())
		require.Nil(t, err)
		require.Equal(t, 2, store.books[id].TotalCopies)
		require.Equal(t, 2, store.books[id].Available)
	})

	t.Run("same ISBN merges copies into the existing title", func(t *testing.T) {
		handler, store := newTestHandler()
		id, err := handler.AddBook(sampleBook())
		require.Nil(t, err)

		again, err := handler.AddBook(sampleBook())
		require.Nil(t, err)
		require.Equal(t, id, again)
		require.Equal(t, 4, store.books[id].TotalCopies)
		require.Equal(t, 4, store.books[id].Available)
		require.Len(t, store.books, 1)
	})
}

func TestIssueBook(t *testing.T) {
	t.Run("loan is created for the configured period", func(t *testing.T) {
		handler, store := newTestHandler()
		bookID, err := handler.AddBook(sampleBook())
		require.Nil(t, err)

		loanID, err := handler.IssueBook(librarianIdentity(), bookID, "student-1")
		require.Nil(t, err)
		loan := store.loans[loanID]
		require.Equal(t, models.LoanStatusIssued, loan.Status)
		require.Equal(t, loanPeriodDays, int(loan.DueAt.Sub(loan.IssuedAt).Hours()/24))
		require.Equal(t, 1, store.books[bookID].Available)
	})

	t.Run("second copy of the same title is refused", func(t *testing.T) {
		handler, _ := newTestHandler()
		bookID, err := handler.AddBook(sampleBook())
		require.Nil(t, err)

		_, err = handler.IssueBook(librarianIdentity(), bookID, "student-1")
		require.Nil(t, err)

		_, err = handler.IssueBook(librarianIdentity(), bookID, "student-1")
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("no copies available is refused", func(t *testing.T) {
		handler, store := newTestHandler()
		data := sampleBook()
		data.TotalCopies = 1
		bookID, err := handler.AddBook(data)
		require.Nil(t, err)
		store.loans["loan-x"] = &dbmodels.BookLoan{
			BaseModel: dbmodels.BaseModel{ID: "loan-x"},
			BookID:    bookID, StudentID: "student-other", Status: models.LoanStatusIssued,
		}
		store.books[bookID].Available = 0

		_, err = handler.IssueBook(librarianIdentity(), bookID, "student-1")
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("unknown student is refused", func(t *testing.T) {
		handler, _ := newTestHandler()
		bookID, err := handler.AddBook(sampleBook())
		require.Nil(t, err)

		_, err = handler.IssueBook(librarianIdentity(), bookID, "student-x")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestReturnBook(t *testing.T) {
	t.Run("return restores the available counter", func(t *testing.T) {
		handler, store := newTestHandler()
		bookID, err := handler.AddBook(sampleBook())
		require.Nil(t, err)

		loanID, err := handler.IssueBook(librarianIdentity(), bookID, "student-1")
		require.Nil(t, err)

		err = handler.ReturnBook(loanID)
		require.Nil(t, err)
		require.Equal(t, models.LoanStatusReturned, store.loans[loanID].Status)
		require.NotNil(t, store.loans[loanID].ReturnedAt)
		require.Equal(t, 2, store.books[bookID].Available)
	})

	t.Run("double return is refused", func(t *testing.T) {
		handler, _ := newTestHandler()
		bookID, err := handler.AddBook(sampleBook())
		require.Nil(t, err)

		loanID, err := handler.IssueBook(librarianIdentity(), bookID, "student-1")
		require.Nil(t, err)

		require.Nil(t, handler.ReturnBook(loanID))
		err = handler.ReturnBook(loanID)
		require.True(t, errors.Is(err, models.ErrInvalidTransition))
	})
}

func TestMarkOverdue(t *testing.T) {
	handler, store := newTestHandler()
	bookID, err := handler.AddBook(sampleBook())
	require.Nil(t, err)

	loanID, err := handler.IssueBook(librarianIdentity(), bookID, "student-1")
	require.Nil(t, err)

	marked, err := handler.MarkOverdue(time.Now())
	require.Nil(t, err)
	require.Equal(t, 0, marked)

	marked, err = handler.MarkOverdue(time.Now().AddDate(0, 0, loanPeriodDays+1))
	require.Nil(t, err)
	require.Equal(t, 1, marked)
	require.Equal(t, models.LoanStatusOverdue, store.loans[loanID].Status)
}
