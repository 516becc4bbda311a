package dictapimodels

import (
	"campus-backend/models"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
)

type DepartmentData struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	HodID string `json:"hod_id"`
}

func (r DepartmentData) Validate() error {
	if r.Name == "" {
		return errors.Wrap(models.ErrValidation, "department name is required")
	}
	if r.Code == "" {
		return errors.Wrap(models.ErrValidation, "department code is required")
	}
	return nil
}

type DepartmentView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	HodID    string `json:"hod_id,omitempty"`
	HodName  string `json:"hod_name,omitempty"`
	IsActive bool   `json:"is_active"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	view := DepartmentView{
		ID:       rec.ID,
		Name:     rec.Name,
		Code:     rec.Code,
		IsActive: rec.IsActive,
	}
	if rec.HodID != nil {
		view.HodID = *rec.HodID
	}
	if rec.Hod != nil {
		view.HodName = rec.Hod.FullName
	}
	return view
}

type CourseData struct {
	DepartmentID  string            `json:"department_id"`
	Name          string            `json:"name"`
	Code          string            `json:"code"`
	DegreeType    models.DegreeType `json:"degree_type"`
	DurationYears int               `json:"duration_years"`
	TotalCredits  int               `json:"total_credits"`
	MaxIntake     int               `json:"max_intake"`
}

func (r CourseData) Validate() error {
	if r.Name == "" {
		return errors.Wrap(models.ErrValidation, "course name is required")
	}
	if r.Code == "" {
		return errors.Wrap(models.ErrValidation, "course code is required")
	}
	if r.DepartmentID == "" {
		return errors.Wrap(models.ErrValidation, "department is required")
	}
	if r.DurationYears <= 0 {
		return errors.Wrap(models.ErrValidation, "duration is required")
	}
	return nil
}

type CourseView struct {
	ID            string            `json:"id"`
	DepartmentID  string            `json:"department_id"`
	Department    string            `json:"department,omitempty"`
	Name          string            `json:"name"`
	Code          string            `json:"code"`
	DegreeType    models.DegreeType `json:"degree_type"`
	DurationYears int               `json:"duration_years"`
	TotalCredits  int               `json:"total_credits"`
	MaxIntake     int               `json:"max_intake"`
	IsActive      bool              `json:"is_active"`
}

func CourseConvert(rec dbmodels.Course) CourseView {
	view := CourseView{
		ID:            rec.ID,
		DepartmentID:  rec.DepartmentID,
		Name:          rec.Name,
		Code:          rec.Code,
		DegreeType:    rec.DegreeType,
		DurationYears: rec.DurationYears,
		TotalCredits:  rec.TotalCredits,
		MaxIntake:     rec.MaxIntake,
		IsActive:      rec.IsActive,
	}
	if rec.Department != nil {
		view.Department = rec.Department.Name
	}
	return view
}
