package dbmodels

import (
	"campus-backend/models"
	"time"
)

type LibraryBook struct {
	BaseModel
	Title       string `gorm:"type:varchar(500)"`
	Author      string `gorm:"type:varchar(255)"`
	Isbn        string `gorm:"type:varchar(50);uniqueIndex"`
	Category    string `gorm:"type:varchar(100);index"`
	TotalCopies int
	Available   int
}

type BookLoan struct {
	BaseModel
	BookID     string `gorm:"type:varchar(36);index"`
	Book       *LibraryBook
	StudentID  string `gorm:"type:varchar(36);index"`
	Student    *Student
	IssuedAt   time.Time
	DueAt      time.Time `gorm:"index"`
	ReturnedAt *time.Time
	Status     models.LoanStatus `gorm:"type:varchar(50);index"`
	IssuedBy   *string           `gorm:"type:varchar(36)"`
}
