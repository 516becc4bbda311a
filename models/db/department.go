package dbmodels

type Department struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"`
	Code     string `gorm:"type:varchar(50);uniqueIndex"`
	HodID    *string `gorm:"type:varchar(36)"`
	Hod      *User   `gorm:"foreignKey:HodID"`
	IsActive bool    `gorm:"default:true"`
}
