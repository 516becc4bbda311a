package attendance

import (
	"time"

	"campus-backend/db"
	attendancestore "campus-backend/lib/attendance/store"
	studentsstore "campus-backend/lib/students/store"
	initchecker "campus-backend/lib/utils/init-checker"
	"campus-backend/models"
	attendanceapimodels "campus-backend/models/api/attendance"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Mark(identity models.Identity, data attendanceapimodels.MarkData) (id string, err error)
	BulkMark(identity models.Identity, data attendanceapimodels.BulkMarkData) (marked int, err error)
	List(filter attendanceapimodels.AttendanceFilter) (list []attendanceapimodels.AttendanceView, rowCount int64, err error)
	StudentSummary(studentID string, from, to time.Time) (attendanceapimodels.Summary, error)
	CampusRate(from, to time.Time) (percentage float64, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:        attendancestore.NewInstance(db.DB),
		studentStore: studentsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"studentStore", instance.studentStore,
	)
	Instance = instance
}

type impl struct {
	store        attendancestore.Provider
	studentStore studentsstore.Provider
}

func (i impl) Mark(identity models.Identity, data attendanceapimodels.MarkData) (string, error) {
	if identity.Role == models.UserRoleStudent || identity.Role == models.UserRoleParent {
		return "", errors.Wrap(models.ErrUnauthorized, "only staff can mark attendance")
	}
	err := data.Validate()
	if err != nil {
		return "", err
	}
	student, err := i.studentStore.GetByID(data.StudentID)
	if err != nil {
		return "", err
	}
	if student == nil {
		return "", errors.Wrap(models.ErrNotFound, "student not found")
	}
	rec := dbmodels.Attendance{
		StudentID: data.StudentID,
		CourseID:  data.CourseID,
		Date:      data.Date,
		Status:    data.Status,
		MarkedBy:  &identity.UserID,
		Remarks:   data.Remarks,
	}
	return i.store.Upsert(rec)
}

func (i impl) BulkMark(identity models.Identity, data attendanceapimodels.BulkMarkData) (int, error) {
	if identity.Role == models.UserRoleStudent || identity.Role == models.UserRoleParent {
		return 0, errors.Wrap(models.ErrUnauthorized, "only staff can mark attendance")
	}
	err := data.Validate()
	if err != nil {
		return 0, err
	}
	logger := log.
		WithField("course_id", data.CourseID).
		WithField("date", data.Date.Format("2006-01-02"))
	marked := 0
	for _, mark := range data.Marks {
		rec := dbmodels.Attendance{
			StudentID: mark.StudentID,
			CourseID:  data.CourseID,
			Date:      data.Date,
			Status:    mark.Status,
			MarkedBy:  &identity.UserID,
		}
		_, err = i.store.Upsert(rec)
		if err != nil {
			logger.
				WithField("student_id", mark.StudentID).
				WithError(err).
				Error("attendance mark failed")
			continue
		}
		marked++
	}
	logger.
		WithField("marked", marked).
		Info("attendance sheet saved")
	return marked, nil
}

func (i impl) List(filter attendanceapimodels.AttendanceFilter) ([]attendanceapimodels.AttendanceView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]attendanceapimodels.AttendanceView, 0, len(list))
	for _, rec := range list {
		result = append(result, attendanceapimodels.AttendanceConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) StudentSummary(studentID string, from, to time.Time) (attendanceapimodels.Summary, error) {
	list, err := i.store.ListByStudent(studentID, from, to)
	if err != nil {
		return attendanceapimodels.Summary{}, err
	}
	summary := attendanceapimodels.Summary{
		StudentID: studentID,
	}
	for _, rec := range list {
		if rec.Status == models.AttendanceHoliday {
			continue
		}
		summary.TotalDays++
		if rec.Status.CountsAsPresent() {
			summary.PresentDays++
		} else {
			summary.AbsentDays++
		}
	}
	if summary.TotalDays > 0 {
		summary.Percentage = float64(summary.PresentDays) / float64(summary.TotalDays) * 100
	}
	return summary, nil
}

func (i impl) CampusRate(from, to time.Time) (float64, error) {
	total, present, err := i.store.CountPresence(from, to)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return float64(present) / float64(total) * 100, nil
}
