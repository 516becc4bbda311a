package attendancestore

import (
	"time"

	"campus-backend/models"
	attendanceapimodels "campus-backend/models/api/attendance"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Upsert(rec dbmodels.Attendance) (id string, err error)
	GetByStudentAndDate(studentID string, date time.Time) (rec *dbmodels.Attendance, err error)
	List(filter attendanceapimodels.AttendanceFilter) (list []dbmodels.Attendance, err error)
	ListCount(filter attendanceapimodels.AttendanceFilter) (rowCount int64, err error)
	ListByStudent(studentID string, from, to time.Time) (list []dbmodels.Attendance, err error)
	// CountPresence tallies marks campus-wide over the period.
	// Holidays stay out of both counts.
	CountPresence(from, to time.Time) (total, present int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Upsert(rec dbmodels.Attendance) (id string, err error) {
	existing, err := i.GetByStudentAndDate(rec.StudentID, rec.Date)
	if err != nil {
		return "", err
	}
	if existing != nil {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	}
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByStudentAndDate(studentID string, date time.Time) (*dbmodels.Attendance, error) {
	rec := dbmodels.Attendance{}
	err := i.db.
		Where("student_id = ?", studentID).
		Where("date = ?", date.Format("2006-01-02")).
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

func (i impl) applyFilter(tx *gorm.DB, filter attendanceapimodels.AttendanceFilter) *gorm.DB {
	if filter.StudentID != "" {
		tx = tx.Where("student_id = ?", filter.StudentID)
	}
	if filter.CourseID != "" {
		tx = tx.Where("course_id = ?", filter.CourseID)
	}
	if !filter.FromDate.IsZero() {
		tx = tx.Where("date >= ?", filter.FromDate.Format("2006-01-02"))
	}
	if !filter.ToDate.IsZero() {
		tx = tx.Where("date <= ?", filter.ToDate.Format("2006-01-02"))
	}
	return tx
}

func (i impl) List(filter attendanceapimodels.AttendanceFilter) (list []dbmodels.Attendance, err error) {
	list = []dbmodels.Attendance{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(i.db.Model(&dbmodels.Attendance{}), filter).
		Preload("Student.User").
		Order("date DESC").
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

func (i impl) countPresenceTx(from, to time.Time) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.Attendance{}).
		Where("status <> ?", models.AttendanceHoliday)
	if !from.IsZero() {
		tx = tx.Where("date >= ?", from.Format("2006-01-02"))
	}
	if !to.IsZero() {
		tx = tx.Where("date <= ?", to.Format("2006-01-02"))
	}
	return tx
}

func (i impl) CountPresence(from, to time.Time) (total, present int64, err error) {
	err = i.countPresenceTx(from, to).
		Count(&total).
		Error
	if err != nil {
		return 0, 0, err
	}
	err = i.countPresenceTx(from, to).
		Where("status IN ?", []models.AttendanceStatus{
			models.AttendancePresent,
			models.AttendanceLate,
			models.AttendanceExcused,
		}).
		Count(&present).
		Error
	if err != nil {
		return 0, 0, err
	}
	return total, present, nil
}

func (i impl) ListCount(filter attendanceapimodels.AttendanceFilter) (rowCount int64, err error) {
	err = i.applyFilter(i.db.Model(&dbmodels.Attendance{}), filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) ListByStudent(studentID string, from, to time.Time) (list []dbmodels.Attendance, err error) {
	list = []dbmodels.Attendance{}
	tx := i.db.
		Where("student_id = ?", studentID).
		Order("date")
	if !from.IsZero() {
		tx = tx.Where("date >= ?", from.Format("2006-01-02"))
	}
	if !to.IsZero() {
		tx = tx.Where("date <= ?", to.Format("2006-01-02"))
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
