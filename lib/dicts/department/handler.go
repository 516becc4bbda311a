package departmentprovider

import (
	"campus-backend/db"
	"campus-backend/lib/dicts/department/store"
	initchecker "campus-backend/lib/utils/init-checker"
	"campus-backend/models"
	dictapimodels "campus-backend/models/api/dict"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(request dictapimodels.DepartmentData) (id string, err error)
	Update(id string, request dictapimodels.DepartmentData) error
	Get(id string) (item dictapimodels.DepartmentView, err error)
	List() (list []dictapimodels.DepartmentView, err error)
	Deactivate(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(request dictapimodels.DepartmentData) (id string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err
	}
	dup, err := i.store.GetByCode(request.Code)
	if err != nil {
		return "", err
	}
	if dup != nil {
		return "", errors.Wrap(models.ErrValidation, "department code already in use")
	}
	rec := dbmodels.Department{
		Name:     request.Name,
		Code:     request.Code,
		IsActive: true,
	}
	if request.HodID != "" {
		rec.HodID = &request.HodID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("department_name", rec.Name).
		WithField("rec_id", id).
		Info("department created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.DepartmentData) error {
	err := request.Validate()
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name": request.Name,
		"code": request.Code,
	}
	if request.HodID != "" {
		updMap["hod_id"] = request.HodID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("department updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.DepartmentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DepartmentView{}, err
	}
	if rec == nil {
		return dictapimodels.DepartmentView{}, errors.Wrap(models.ErrNotFound, "department not found")
	}
	return dictapimodels.DepartmentConvert(*rec), nil
}

func (i impl) List() ([]dictapimodels.DepartmentView, error) {
	recList, err := i.store.List(true)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.DepartmentConvert(rec))
	}
	return result, nil
}

func (i impl) Deactivate(id string) error {
	return i.store.Update(id, map[string]interface{}{"is_active": false})
}
