package dbmodels

import (
	"time"

	"github.com/lib/pq"
)

// Faculty is the staff record behind a FACULTY login account.
type Faculty struct {
	BaseModel
	UserID          string `gorm:"type:varchar(36);uniqueIndex"`
	User            *User
	EmployeeCode    string  `gorm:"type:varchar(50);uniqueIndex"`
	DepartmentID    *string `gorm:"type:varchar(36);index"`
	Department      *Department
	Designation     string         `gorm:"type:varchar(100);index"`
	Subjects        pq.StringArray `gorm:"type:text[]"`
	ExperienceYears int
	JoiningDate     time.Time
}
