package hostelstore

import (
	hostelapimodels "campus-backend/models/api/hostel"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.HostelRoom) (id string, err error)
	GetByID(id string) (rec *dbmodels.HostelRoom, err error)
	List(block string, onlyActive bool) (list []dbmodels.HostelRoom, err error)
	Update(id string, updMap map[string]interface{}) error
	ChangeOccupied(id string, delta int) (applied bool, err error)
	Occupancy() (list []hostelapimodels.Occupancy, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.HostelRoom) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.HostelRoom, error) {
	rec := dbmodels.HostelRoom{}
	err := i.db.
		Where("id = ?", id).
		Preload("Warden").
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

func (i impl) List(block string, onlyActive bool) (list []dbmodels.HostelRoom, err error) {
	list = []dbmodels.HostelRoom{}
	tx := i.db.
		Preload("Warden").
		Order("block, number")
	if block != "" {
		tx = tx.Where("block = ?", block)
	}
	if onlyActive {
		tx = tx.Where("is_active = true")
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.HostelRoom{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("room not found")
	}
	return nil
}

// ChangeOccupied moves the headcount, guarded so it stays within 0..capacity.
func (i impl) ChangeOccupied(id string, delta int) (applied bool, err error) {
	tx := i.db.
		Model(&dbmodels.HostelRoom{}).
		Where("id = ?", id)
	if delta > 0 {
		tx = tx.Where("occupied + ? <= capacity", delta)
	} else {
		tx = tx.Where("occupied + ? >= 0", delta)
	}
	tx = tx.Update("occupied", gorm.Expr("occupied + ?", delta))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (i impl) Occupancy() (list []hostelapimodels.Occupancy, err error) {
	list = []hostelapimodels.Occupancy{}
	err = i.db.
		Model(&dbmodels.HostelRoom{}).
		Select("block, COUNT(*) AS rooms, COALESCE(SUM(capacity), 0) AS capacity, COALESCE(SUM(occupied), 0) AS occupied").
		Where("is_active = true").
		Group("block").
		Order("block").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
