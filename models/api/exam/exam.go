package examapimodels

import (
	"time"

	"campus-backend/models"
	apimodels "campus-backend/models/api"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
)

type ResultData struct {
	StudentID     string    `json:"student_id"`
	CourseID      string    `json:"course_id"`
	SubjectName   string    `json:"subject_name"`
	ExamType      string    `json:"exam_type"`
	ExamDate      time.Time `json:"exam_date"`
	MaxMarks      float64   `json:"max_marks"`
	ObtainedMarks float64   `json:"obtained_marks"`
	Semester      int       `json:"semester"`
}

func (r ResultData) Validate() error {
	if r.StudentID == "" {
		return errors.Wrap(models.ErrValidation, "student is required")
	}
	if r.SubjectName == "" {
		return errors.Wrap(models.ErrValidation, "subject is required")
	}
	if r.MaxMarks <= 0 {
		return errors.Wrap(models.ErrValidation, "max marks is required")
	}
	if r.ObtainedMarks < 0 || r.ObtainedMarks > r.MaxMarks {
		return errors.Wrap(models.ErrValidation, "obtained marks out of range")
	}
	return nil
}

type ExamFilter struct {
	apimodels.Pagination
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
	Semester  int    `json:"semester"`
	ExamType  string `json:"exam_type"`
}

type ResultView struct {
	ID            string  `json:"id"`
	StudentID     string  `json:"student_id"`
	Student       string  `json:"student,omitempty"`
	SubjectName   string  `json:"subject_name"`
	ExamType      string  `json:"exam_type"`
	ExamDate      string  `json:"exam_date"`
	MaxMarks      float64 `json:"max_marks"`
	ObtainedMarks float64 `json:"obtained_marks"`
	Grade         string  `json:"grade"`
	Semester      int     `json:"semester"`
}

func ResultConvert(rec dbmodels.ExamResult) ResultView {
	view := ResultView{
		ID:            rec.ID,
		StudentID:     rec.StudentID,
		SubjectName:   rec.SubjectName,
		ExamType:      rec.ExamType,
		ExamDate:      rec.ExamDate.Format("2006-01-02"),
		MaxMarks:      rec.MaxMarks,
		ObtainedMarks: rec.ObtainedMarks,
		Grade:         rec.Grade,
		Semester:      rec.Semester,
	}
	if rec.Student != nil && rec.Student.User != nil {
		view.Student = rec.Student.User.FullName
	}
	return view
}

type GradeDistribution struct {
	Grade string `json:"grade"`
	Count int64  `json:"count"`
}
