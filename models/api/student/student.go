package studentapimodels

import (
	"net/mail"
	"time"

	"campus-backend/models"
	apimodels "campus-backend/models/api"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
)

type StudentData struct {
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone"`
	StudentCode   string    `json:"student_code"`
	CourseID      string    `json:"course_id"`
	BatchYear     int       `json:"batch_year"`
	Semester      int       `json:"semester"`
	Section       string    `json:"section"`
	RollNumber    string    `json:"roll_number"`
	AdmissionDate time.Time `json:"admission_date"`
	ParentEmail   string    `json:"parent_email"`
	IsHosteller   bool      `json:"is_hosteller"`
	RoomID        string    `json:"room_id"`
}

func (r StudentData) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.Wrap(models.ErrValidation, "email has a wrong format")
	}
	if r.FullName == "" {
		return errors.Wrap(models.ErrValidation, "full name is required")
	}
	if r.StudentCode == "" {
		return errors.Wrap(models.ErrValidation, "student code is required")
	}
	if r.BatchYear <= 0 {
		return errors.Wrap(models.ErrValidation, "batch year is required")
	}
	if r.IsHosteller && r.RoomID == "" {
		return errors.Wrap(models.ErrValidation, "hosteller needs a room")
	}
	return nil
}

type StudentFilter struct {
	apimodels.Pagination
	CourseID   string `json:"course_id"`
	BatchYear  int    `json:"batch_year"`
	Semester   int    `json:"semester"`
	Hostellers *bool  `json:"hostellers"`
}

type StudentView struct {
	ID            string    `json:"id"`
	StudentCode   string    `json:"student_code"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Course        string    `json:"course,omitempty"`
	CourseID      string    `json:"course_id,omitempty"`
	BatchYear     int       `json:"batch_year"`
	Semester      int       `json:"semester"`
	Section       string    `json:"section,omitempty"`
	RollNumber    string    `json:"roll_number,omitempty"`
	AdmissionDate time.Time `json:"admission_date"`
	IsHosteller   bool      `json:"is_hosteller"`
	RoomNo        string    `json:"room_no,omitempty"`
	Documents     []DocumentView `json:"documents,omitempty"`
}

type DocumentView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

func DocumentConvert(rec dbmodels.StudentDocument) DocumentView {
	return DocumentView{
		ID:       rec.ID,
		Name:     rec.Name,
		MimeType: rec.MimeType,
		Size:     rec.Size,
	}
}

func StudentConvert(rec dbmodels.Student) StudentView {
	view := StudentView{
		ID:            rec.ID,
		StudentCode:   rec.StudentCode,
		BatchYear:     rec.BatchYear,
		Semester:      rec.Semester,
		Section:       rec.Section,
		RollNumber:    rec.RollNumber,
		AdmissionDate: rec.AdmissionDate,
		IsHosteller:   rec.IsHosteller,
	}
	if rec.User != nil {
		view.FullName = rec.User.FullName
		view.Email = rec.User.Email
		view.Phone = rec.User.Phone
	}
	if rec.Course != nil {
		view.Course = rec.Course.Name
		view.CourseID = rec.Course.ID
	}
	if rec.Room != nil {
		view.RoomNo = rec.Room.Label()
	}
	for _, doc := range rec.Documents {
		view.Documents = append(view.Documents, DocumentConvert(doc))
	}
	return view
}
