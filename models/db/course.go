package dbmodels

import "campus-backend/models"

type Course struct {
	BaseModel
	DepartmentID string `gorm:"type:varchar(36);index"`
	Department   *Department
	Name         string            `gorm:"type:varchar(255)"`
	Code         string            `gorm:"type:varchar(50);uniqueIndex"`
	DegreeType   models.DegreeType `gorm:"type:varchar(50)"`
	DurationYears int
	TotalCredits  int
	MaxIntake     int
	IsActive      bool `gorm:"default:true"`
}
