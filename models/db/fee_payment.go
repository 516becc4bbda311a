package dbmodels

import (
	"campus-backend/models"
	"time"
)

type FeePayment struct {
	BaseModel
	StudentID     string `gorm:"type:varchar(36);index"`
	Student       *Student
	AmountDue     float64
	AmountPaid    float64
	LateFee       float64
	PaymentDate   *time.Time
	PaymentMode   models.PaymentMode `gorm:"type:varchar(50)"`
	TransactionID string             `gorm:"type:varchar(100)"`
	ReceiptNumber string             `gorm:"type:varchar(100);uniqueIndex"`
	Status        models.FeeStatus   `gorm:"type:varchar(50);index"`
	Remarks       string             `gorm:"type:varchar(255)"`
	ProcessedBy   *string            `gorm:"type:varchar(36)"`
}
