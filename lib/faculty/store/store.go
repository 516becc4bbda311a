package facultystore

import (
	facultyapimodels "campus-backend/models/api/faculty"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Faculty) (id string, err error)
	GetByID(id string) (rec *dbmodels.Faculty, err error)
	GetByUserID(userID string) (rec *dbmodels.Faculty, err error)
	GetByCode(code string) (rec *dbmodels.Faculty, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter facultyapimodels.FacultyFilter) (list []dbmodels.Faculty, err error)
	ListCount(filter facultyapimodels.FacultyFilter) (rowCount int64, err error)
	CountByDesignation() (list []facultyapimodels.DesignationCount, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Faculty) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) getBy(column string, value string) (*dbmodels.Faculty, error) {
	rec := dbmodels.Faculty{}
	err := i.db.
		Where(column+" = ?", value).
		Preload(clause.Associations).
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

func (i impl) GetByID(id string) (*dbmodels.Faculty, error) {
	return i.getBy("id", id)
}

func (i impl) GetByUserID(userID string) (*dbmodels.Faculty, error) {
	return i.getBy("user_id", userID)
}

func (i impl) GetByCode(code string) (*dbmodels.Faculty, error) {
	return i.getBy("employee_code", code)
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Faculty{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) applyFilter(tx *gorm.DB, filter facultyapimodels.FacultyFilter) *gorm.DB {
	if filter.DepartmentID != "" {
		tx = tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Designation != "" {
		tx = tx.Where("designation = ?", filter.Designation)
	}
	return tx
}

func (i impl) List(filter facultyapimodels.FacultyFilter) (list []dbmodels.Faculty, err error) {
	list = []dbmodels.Faculty{}
	page, limit := filter.GetPage()
	err = i.applyFilter(i.db.Model(&dbmodels.Faculty{}), filter).
		Preload(clause.Associations).
		Order("employee_code ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter facultyapimodels.FacultyFilter) (rowCount int64, err error) {
	err = i.applyFilter(i.db.Model(&dbmodels.Faculty{}), filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) CountByDesignation() (list []facultyapimodels.DesignationCount, err error) {
	list = []facultyapimodels.DesignationCount{}
	err = i.db.
		Model(&dbmodels.Faculty{}).
		Select("designation, count(*) as count").
		Group("designation").
		Order("designation ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
