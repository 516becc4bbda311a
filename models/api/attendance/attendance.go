package attendanceapimodels

import (
	"time"

	"campus-backend/models"
	apimodels "campus-backend/models/api"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
)

type MarkData struct {
	StudentID string                  `json:"student_id"`
	CourseID  string                  `json:"course_id"`
	Date      time.Time               `json:"date"`
	Status    models.AttendanceStatus `json:"status"`
	Remarks   string                  `json:"remarks"`
}

func (r MarkData) Validate() error {
	if r.StudentID == "" {
		return errors.Wrap(models.ErrValidation, "student is required")
	}
	if r.Date.IsZero() {
		return errors.Wrap(models.ErrValidation, "date is required")
	}
	if !r.Status.Valid() {
		return errors.Wrap(models.ErrValidation, "unknown attendance status")
	}
	return nil
}

type BulkMarkData struct {
	CourseID string                  `json:"course_id"`
	Date     time.Time               `json:"date"`
	Marks    []BulkMarkItem          `json:"marks"`
}

type BulkMarkItem struct {
	StudentID string                  `json:"student_id"`
	Status    models.AttendanceStatus `json:"status"`
}

func (r BulkMarkData) Validate() error {
	if r.Date.IsZero() {
		return errors.Wrap(models.ErrValidation, "date is required")
	}
	if len(r.Marks) == 0 {
		return errors.Wrap(models.ErrValidation, "marks are required")
	}
	for _, mark := range r.Marks {
		if mark.StudentID == "" {
			return errors.Wrap(models.ErrValidation, "student is required")
		}
		if !mark.Status.Valid() {
			return errors.Wrap(models.ErrValidation, "unknown attendance status")
		}
	}
	return nil
}

type AttendanceFilter struct {
	apimodels.Pagination
	StudentID string    `json:"student_id"`
	CourseID  string    `json:"course_id"`
	FromDate  time.Time `json:"from_date"`
	ToDate    time.Time `json:"to_date"`
}

type AttendanceView struct {
	ID        string                  `json:"id"`
	StudentID string                  `json:"student_id"`
	Student   string                  `json:"student,omitempty"`
	CourseID  string                  `json:"course_id,omitempty"`
	Date      string                  `json:"date"`
	Status    models.AttendanceStatus `json:"status"`
	Remarks   string                  `json:"remarks,omitempty"`
}

func AttendanceConvert(rec dbmodels.Attendance) AttendanceView {
	view := AttendanceView{
		ID:        rec.ID,
		StudentID: rec.StudentID,
		CourseID:  rec.CourseID,
		Date:      rec.Date.Format("2006-01-02"),
		Status:    rec.Status,
		Remarks:   rec.Remarks,
	}
	if rec.Student != nil && rec.Student.User != nil {
		view.Student = rec.Student.User.FullName
	}
	return view
}

// Summary aggregates a student's attendance over a period.
type Summary struct {
	StudentID    string  `json:"student_id"`
	TotalDays    int     `json:"total_days"`
	PresentDays  int     `json:"present_days"`
	AbsentDays   int     `json:"absent_days"`
	Percentage   float64 `json:"percentage"`
}
