package dbmodels

import (
	"campus-backend/models"
	"time"
)

type User struct {
	BaseModel
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	Password     string          `gorm:"type:varchar(255)"`
	FullName     string          `gorm:"type:varchar(255)"`
	Role         models.UserRole `gorm:"type:varchar(50);index"`
	DepartmentID *string         `gorm:"type:varchar(36)"`
	Department   *Department
	Phone        string `gorm:"type:varchar(50)"`
	IsActive     bool   `gorm:"default:true"`
	LastLogin    *time.Time
}

func (u User) Identity() models.Identity {
	return models.Identity{
		UserID:   u.ID,
		FullName: u.FullName,
		Role:     u.Role,
	}
}
