package courseprovider

import (
	"campus-backend/db"
	"campus-backend/lib/dicts/course/store"
	departmentstore "campus-backend/lib/dicts/department/store"
	initchecker "campus-backend/lib/utils/init-checker"
	"campus-backend/models"
	dictapimodels "campus-backend/models/api/dict"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(request dictapimodels.CourseData) (id string, err error)
	Update(id string, request dictapimodels.CourseData) error
	Get(id string) (item dictapimodels.CourseView, err error)
	List(departmentID string) (list []dictapimodels.CourseView, err error)
	Deactivate(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:           store.NewInstance(db.DB),
		departmentStore: departmentstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"departmentStore", instance.departmentStore,
	)
	Instance = instance
}

type impl struct {
	store           store.Provider
	departmentStore departmentstore.Provider
}

func (i impl) Create(request dictapimodels.CourseData) (id string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err
	}
	department, err := i.departmentStore.GetByID(request.DepartmentID)
	if err != nil {
		return "", err
	}
	if department == nil {
		return "", errors.Wrap(models.ErrValidation, "department not found")
	}
	dup, err := i.store.GetByCode(request.Code)
	if err != nil {
		return "", err
	}
	if dup != nil {
		return "", errors.Wrap(models.ErrValidation, "course code already in use")
	}
	rec := dbmodels.Course{
		DepartmentID:  request.DepartmentID,
		Name:          request.Name,
		Code:          request.Code,
		DegreeType:    request.DegreeType,
		DurationYears: request.DurationYears,
		TotalCredits:  request.TotalCredits,
		MaxIntake:     request.MaxIntake,
		IsActive:      true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("course_name", rec.Name).
		WithField("rec_id", id).
		Info("course created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.CourseData) error {
	err := request.Validate()
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":           request.Name,
		"code":           request.Code,
		"degree_type":    request.DegreeType,
		"duration_years": request.DurationYears,
		"total_credits":  request.TotalCredits,
		"max_intake":     request.MaxIntake,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("course updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.CourseView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.CourseView{}, err
	}
	if rec == nil {
		return dictapimodels.CourseView{}, errors.Wrap(models.ErrNotFound, "course not found")
	}
	return dictapimodels.CourseConvert(*rec), nil
}

func (i impl) List(departmentID string) ([]dictapimodels.CourseView, error) {
	recList, err := i.store.List(departmentID, true)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.CourseView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.CourseConvert(rec))
	}
	return result, nil
}

func (i impl) Deactivate(id string) error {
	return i.store.Update(id, map[string]interface{}{"is_active": false})
}
