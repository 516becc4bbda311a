package outpasshistorystore

import (
	dbmodels "campus-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.OutpassHistory) (id string, err error)
	List(requestID string) (list []dbmodels.OutpassHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OutpassHistory) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(requestID string) (list []dbmodels.OutpassHistory, err error) {
	list = []dbmodels.OutpassHistory{}
	err = i.db.
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
