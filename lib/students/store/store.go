package studentsstore

import (
	studentapimodels "campus-backend/models/api/student"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Student) (id string, err error)
	GetByID(id string) (rec *dbmodels.Student, err error)
	GetByUserID(userID string) (rec *dbmodels.Student, err error)
	GetByCode(code string) (rec *dbmodels.Student, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter studentapimodels.StudentFilter) (list []dbmodels.Student, err error)
	ListCount(filter studentapimodels.StudentFilter) (rowCount int64, err error)
	AddDocument(rec dbmodels.StudentDocument) (id string, err error)
	GetDocument(id string) (rec *dbmodels.StudentDocument, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Student) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) getBy(column string, value string) (*dbmodels.Student, error) {
	rec := dbmodels.Student{}
	err := i.db.
		Where(column+" = ?", value).
		Preload(clause.Associations).
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

func (i impl) GetByID(id string) (*dbmodels.Student, error) {
	return i.getBy("id", id)
}

func (i impl) GetByUserID(userID string) (*dbmodels.Student, error) {
	return i.getBy("user_id", userID)
}

func (i impl) GetByCode(code string) (*dbmodels.Student, error) {
	return i.getBy("student_code", code)
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Student{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) applyFilter(tx *gorm.DB, filter studentapimodels.StudentFilter) *gorm.DB {
	if filter.CourseID != "" {
		tx = tx.Where("course_id = ?", filter.CourseID)
	}
	if filter.BatchYear > 0 {
		tx = tx.Where("batch_year = ?", filter.BatchYear)
	}
	if filter.Semester > 0 {
		tx = tx.Where("semester = ?", filter.Semester)
	}
	if filter.Hostellers != nil {
		tx = tx.Where("is_hosteller = ?", *filter.Hostellers)
	}
	return tx
}

func (i impl) List(filter studentapimodels.StudentFilter) (list []dbmodels.Student, err error) {
	list = []dbmodels.Student{}
	page, limit := filter.GetPage()
	err = i.applyFilter(i.db.Model(&dbmodels.Student{}), filter).
		Preload(clause.Associations).
		Order("student_code ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter studentapimodels.StudentFilter) (rowCount int64, err error) {
	err = i.applyFilter(i.db.Model(&dbmodels.Student{}), filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) AddDocument(rec dbmodels.StudentDocument) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetDocument(id string) (rec *dbmodels.StudentDocument, err error) {
	doc := dbmodels.StudentDocument{}
	err = i.db.
		Where("id = ?", id).
		First(&doc).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}
