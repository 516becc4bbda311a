package facultyapimodels

import (
	"net/mail"
	"time"

	"campus-backend/models"
	apimodels "campus-backend/models/api"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
)

type FacultyData struct {
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone"`
	EmployeeCode    string    `json:"employee_code"`
	DepartmentID    string    `json:"department_id"`
	Designation     string    `json:"designation"`
	Subjects        []string  `json:"subjects"`
	ExperienceYears int       `json:"experience_years"`
	JoiningDate     time.Time `json:"joining_date"`
}

func (r FacultyData) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.Wrap(models.ErrValidation, "email has a wrong format")
	}
	if r.FullName == "" {
		return errors.Wrap(models.ErrValidation, "full name is required")
	}
	if r.EmployeeCode == "" {
		return errors.Wrap(models.ErrValidation, "employee code is required")
	}
	if r.Designation == "" {
		return errors.Wrap(models.ErrValidation, "designation is required")
	}
	if r.ExperienceYears < 0 {
		return errors.Wrap(models.ErrValidation, "experience years can not be negative")
	}
	return nil
}

type FacultyFilter struct {
	apimodels.Pagination
	DepartmentID string `json:"department_id"`
	Designation  string `json:"designation"`
}

type FacultyView struct {
	ID              string    `json:"id"`
	EmployeeCode    string    `json:"employee_code"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Department      string    `json:"department,omitempty"`
	DepartmentID    string    `json:"department_id,omitempty"`
	Designation     string    `json:"designation"`
	Subjects        []string  `json:"subjects,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	JoiningDate     time.Time `json:"joining_date"`
	IsActive        bool      `json:"is_active"`
}

// DesignationCount is one row of the faculty headcount summary.
type DesignationCount struct {
	Designation string `json:"designation"`
	Count       int64  `json:"count"`
}

func FacultyConvert(rec dbmodels.Faculty) FacultyView {
	view := FacultyView{
		ID:              rec.ID,
		EmployeeCode:    rec.EmployeeCode,
		Designation:     rec.Designation,
		Subjects:        rec.Subjects,
		ExperienceYears: rec.ExperienceYears,
		JoiningDate:     rec.JoiningDate,
	}
	if rec.User != nil {
		view.FullName = rec.User.FullName
		view.Email = rec.User.Email
		view.Phone = rec.User.Phone
		view.IsActive = rec.User.IsActive
	}
	if rec.Department != nil {
		view.Department = rec.Department.Name
		view.DepartmentID = rec.Department.ID
	}
	return view
}
