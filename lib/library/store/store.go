package librarystore

import (
	"time"

	libraryapimodels "campus-backend/models/api/library"
	dbmodels "campus-backend/models/db"

	"campus-backend/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	CreateBook(rec dbmodels.LibraryBook) (id string, err error)
	GetBookByID(id string) (rec *dbmodels.LibraryBook, err error)
	GetBookByIsbn(isbn string) (rec *dbmodels.LibraryBook, err error)
	ListBooks(filter libraryapimodels.BookFilter) (list []dbmodels.LibraryBook, err error)
	ListBooksCount(filter libraryapimodels.BookFilter) (rowCount int64, err error)
	UpdateBook(id string, updMap map[string]interface{}) error
	ChangeAvailable(id string, delta int) (applied bool, err error)

	CreateLoan(rec dbmodels.BookLoan) (id string, err error)
	GetLoanByID(id string) (rec *dbmodels.BookLoan, err error)
	GetActiveLoan(bookID, studentID string) (rec *dbmodels.BookLoan, err error)
	ListLoansByStudent(studentID string) (list []dbmodels.BookLoan, err error)
	ListLoansDue(now time.Time) (list []dbmodels.BookLoan, err error)
	UpdateLoan(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateBook(rec dbmodels.LibraryBook) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) getBookBy(column, value string) (*dbmodels.LibraryBook, error) {
	rec := dbmodels.LibraryBook{}
	err := i.db.
		Where(column+" = ?", value).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetBookByID(id string) (*dbmodels.LibraryBook, error) {
	return i.getBookBy("id", id)
}

func (i impl) GetBookByIsbn(isbn string) (*dbmodels.LibraryBook, error) {
	return i.getBookBy("isbn", isbn)
}

func (i impl) applyBookFilter(tx *gorm.DB, filter libraryapimodels.BookFilter) *gorm.DB {
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("title ILIKE ? OR author ILIKE ?", like, like)
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	return tx
}

func (i impl) ListBooks(filter libraryapimodels.BookFilter) (list []dbmodels.LibraryBook, err error) {
	list = []dbmodels.LibraryBook{}
	page, limit := filter.GetPage()
	err = i.applyBookFilter(i.db.Model(&dbmodels.LibraryBook{}), filter).
		Order("title").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListBooksCount(filter libraryapimodels.BookFilter) (rowCount int64, err error) {
	err = i.applyBookFilter(i.db.Model(&dbmodels.LibraryBook{}), filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) UpdateBook(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.LibraryBook{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("book not found")
	}
	return nil
}

// ChangeAvailable moves the free copies counter, guarded within 0..total.
func (i impl) ChangeAvailable(id string, delta int) (applied bool, err error) {
	tx := i.db.
		Model(&dbmodels.LibraryBook{}).
		Where("id = ?", id)
	if delta > 0 {
		tx = tx.Where("available + ? <= total_copies", delta)
	} else {
		tx = tx.Where("available + ? >= 0", delta)
	}
	tx = tx.Update("available", gorm.Expr("available + ?", delta))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (i impl) CreateLoan(rec dbmodels.BookLoan) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetLoanByID(id string) (*dbmodels.BookLoan, error) {
	rec := dbmodels.BookLoan{}
	err := i.db.
		Where("id = ?", id).
		Preload("Book").
		Preload("Student.User").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetActiveLoan(bookID, studentID string) (*dbmodels.BookLoan, error) {
	rec := dbmodels.BookLoan{}
	err := i.db.
		Where("book_id = ?", bookID).
		Where("student_id = ?", studentID).
		Where("status IN ?", []models.LoanStatus{models.LoanStatusIssued, models.LoanStatusOverdue}).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListLoansByStudent(studentID string) (list []dbmodels.BookLoan, err error) {
	list = []dbmodels.BookLoan{}
	err = i.db.
		Where("student_id = ?", studentID).
		Preload("Book").
		Order("issued_at DESC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListLoansDue(now time.Time) (list []dbmodels.BookLoan, err error) {
	list = []dbmodels.BookLoan{}
	err = i.db.
		Where("status = ?", models.LoanStatusIssued).
		Where("due_at < ?", now).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateLoan(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.BookLoan{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("loan not found")
	}
	return nil
}
