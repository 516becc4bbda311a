package faculty

import (
	"campus-backend/db"
	facultystore "campus-backend/lib/faculty/store"
	usersstore "campus-backend/lib/users/store"
	authutils "campus-backend/lib/utils/auth-utils"
	"campus-backend/models"
	facultyapimodels "campus-backend/models/api/faculty"
	dbmodels "campus-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data facultyapimodels.FacultyData) (id string, err error)
	Update(id string, data facultyapimodels.FacultyData) error
	Deactivate(id string) error
	GetByID(id string) (facultyapimodels.FacultyView, error)
	List(filter facultyapimodels.FacultyFilter) (list []facultyapimodels.FacultyView, rowCount int64, err error)
	DesignationStats() (list []facultyapimodels.DesignationCount, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      facultystore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      facultystore.Provider
	usersStore usersstore.Provider
}

func (i impl) Create(data facultyapimodels.FacultyData) (string, error) {
	err := data.Validate()
	if err != nil {
		return "", err
	}
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", errors.Wrap(models.ErrValidation, "user with this email already exists")
	}
	dup, err := i.store.GetByCode(data.EmployeeCode)
	if err != nil {
		return "", err
	}
	if dup != nil {
		return "", errors.Wrap(models.ErrValidation, "employee code already in use")
	}
	userID, err := i.usersStore.Create(dbmodels.User{
		Email:    data.Email,
		Password: authutils.GetMD5Hash(data.EmployeeCode),
		FullName: data.FullName,
		Role:     models.UserRoleFaculty,
		Phone:    data.Phone,
		IsActive: true,
	})
	if err != nil {
		return "", errors.Wrap(err, "faculty account creation failed")
	}
	rec := dbmodels.Faculty{
		UserID:          userID,
		EmployeeCode:    data.EmployeeCode,
		Designation:     data.Designation,
		Subjects:        data.Subjects,
		ExperienceYears: data.ExperienceYears,
		JoiningDate:     data.JoiningDate,
	}
	if data.DepartmentID != "" {
		rec.DepartmentID = &data.DepartmentID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("faculty_id", id).
		WithField("employee_code", data.EmployeeCode).
		Info("faculty member registered")
	return id, nil
}

func (i impl) Update(id string, data facultyapimodels.FacultyData) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "faculty member not found")
	}
	updMap := map[string]interface{}{
		"designation":      data.Designation,
		"subjects":         pq.StringArray(data.Subjects),
		"experience_years": data.ExperienceYears,
	}
	if data.DepartmentID != "" {
		updMap["department_id"] = data.DepartmentID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	return i.usersStore.Update(rec.UserID, map[string]interface{}{
		"full_name": data.FullName,
		"phone":     data.Phone,
	})
}

// Deactivate disables the login account. The record itself stays for
// the attendance and exam rows pointing at it.
func (i impl) Deactivate(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "faculty member not found")
	}
	err = i.usersStore.Update(rec.UserID, map[string]interface{}{
		"is_active": false,
	})
	if err != nil {
		return err
	}
	log.
		WithField("faculty_id", id).
		Info("faculty member deactivated")
	return nil
}

func (i impl) GetByID(id string) (facultyapimodels.FacultyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return facultyapimodels.FacultyView{}, err
	}
	if rec == nil {
		return facultyapimodels.FacultyView{}, errors.Wrap(models.ErrNotFound, "faculty member not found")
	}
	return facultyapimodels.FacultyConvert(*rec), nil
}

func (i impl) List(filter facultyapimodels.FacultyFilter) ([]facultyapimodels.FacultyView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]facultyapimodels.FacultyView, 0, len(list))
	for _, rec := range list {
		result = append(result, facultyapimodels.FacultyConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) DesignationStats() ([]facultyapimodels.DesignationCount, error) {
	return i.store.CountByDesignation()
}
