package examsstore

import (
	examapimodels "campus-backend/models/api/exam"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.ExamResult) (id string, err error)
	GetByID(id string) (rec *dbmodels.ExamResult, err error)
	List(filter examapimodels.ExamFilter) (list []dbmodels.ExamResult, err error)
	ListCount(filter examapimodels.ExamFilter) (rowCount int64, err error)
	GradeDistribution(courseID string, semester int) (list []examapimodels.GradeDistribution, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ExamResult) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ExamResult, error) {
	rec := dbmodels.ExamResult{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) applyFilter(tx *gorm.DB, filter examapimodels.ExamFilter) *gorm.DB {
	if filter.StudentID != "" {
		tx = tx.Where("student_id = ?", filter.StudentID)
	}
	if filter.CourseID != "" {
		tx = tx.Where("course_id = ?", filter.CourseID)
	}
	if filter.Semester > 0 {
		tx = tx.Where("semester = ?", filter.Semester)
	}
	if filter.ExamType != "" {
		tx = tx.Where("exam_type = ?", filter.ExamType)
	}
	return tx
}

func (i impl) List(filter examapimodels.ExamFilter) (list []dbmodels.ExamResult, err error) {
	list = []dbmodels.ExamResult{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(i.db.Model(&dbmodels.ExamResult{}), filter).
		Preload("Student.User").
		Order("exam_date DESC").
		Limit(limit).
		Offset((page - 1) * limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter examapimodels.ExamFilter) (rowCount int64, err error) {
	err = i.applyFilter(i.db.Model(&dbmodels.ExamResult{}), filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) GradeDistribution(courseID string, semester int) (list []examapimodels.GradeDistribution, err error) {
	list = []examapimodels.GradeDistribution{}
	tx := i.db.
		Model(&dbmodels.ExamResult{}).
		Select("grade, COUNT(*) AS count").
		Group("grade").
		Order("grade")
	if courseID != "" {
		tx = tx.Where("course_id = ?", courseID)
	}
	if semester > 0 {
		tx = tx.Where("semester = ?", semester)
	}
	err = tx.Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
