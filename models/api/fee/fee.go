package feeapimodels

import (
	"time"

	"campus-backend/lib/utils/helpers"
	"campus-backend/models"
	apimodels "campus-backend/models/api"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
)

type PaymentData struct {
	StudentID     string             `json:"student_id"`
	AmountDue     float64            `json:"amount_due"`
	AmountPaid    float64            `json:"amount_paid"`
	LateFee       float64            `json:"late_fee"`
	PaymentMode   models.PaymentMode `json:"payment_mode"`
	TransactionID string             `json:"transaction_id"`
	Remarks       string             `json:"remarks"`
}

func (r PaymentData) Validate() error {
	if r.StudentID == "" {
		return errors.Wrap(models.ErrValidation, "student is required")
	}
	if r.AmountDue <= 0 {
		return errors.Wrap(models.ErrValidation, "amount due is required")
	}
	if r.AmountPaid < 0 {
		return errors.Wrap(models.ErrValidation, "paid amount can not be negative")
	}
	if r.AmountPaid > r.AmountDue+r.LateFee {
		return errors.Wrap(models.ErrValidation, "paid amount exceeds the due amount")
	}
	return nil
}

type FeeFilter struct {
	apimodels.Pagination
	StudentID string           `json:"student_id"`
	Status    models.FeeStatus `json:"status"`
	FromDate  time.Time        `json:"from_date"`
	ToDate    time.Time        `json:"to_date"`
}

type FeeView struct {
	ID            string             `json:"id"`
	StudentID     string             `json:"student_id"`
	Student       string             `json:"student,omitempty"`
	StudentCode   string             `json:"student_code,omitempty"`
	AmountDue     float64            `json:"amount_due"`
	AmountPaid    float64            `json:"amount_paid"`
	LateFee       float64            `json:"late_fee,omitempty"`
	PaymentDate   string             `json:"payment_date,omitempty"`
	PaymentMode   models.PaymentMode `json:"payment_mode,omitempty"`
	TransactionID string             `json:"transaction_id,omitempty"`
	ReceiptNumber string             `json:"receipt_number"`
	Status        models.FeeStatus   `json:"status"`
	Remarks       string             `json:"remarks,omitempty"`
}

func FeeConvert(rec dbmodels.FeePayment) FeeView {
	view := FeeView{
		ID:            rec.ID,
		StudentID:     rec.StudentID,
		AmountDue:     rec.AmountDue,
		AmountPaid:    rec.AmountPaid,
		LateFee:       rec.LateFee,
		PaymentMode:   rec.PaymentMode,
		TransactionID: rec.TransactionID,
		ReceiptNumber: rec.ReceiptNumber,
		Status:        rec.Status,
		Remarks:       rec.Remarks,
	}
	if rec.PaymentDate != nil {
		view.PaymentDate = helpers.FormatDatetime(*rec.PaymentDate)
	}
	if rec.Student != nil {
		view.StudentCode = rec.Student.StudentCode
		if rec.Student.User != nil {
			view.Student = rec.Student.User.FullName
		}
	}
	return view
}

// Totals aggregates collected and outstanding fee amounts.
type Totals struct {
	TotalDue       float64 `json:"total_due"`
	TotalCollected float64 `json:"total_collected"`
	Outstanding    float64 `json:"outstanding"`
	PaymentCount   int64   `json:"payment_count"`
}
