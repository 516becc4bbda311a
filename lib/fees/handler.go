package fees

import (
	"fmt"
	"strings"
	"time"

	"campus-backend/db"
	feesstore "campus-backend/lib/fees/store"
	studentsstore "campus-backend/lib/students/store"
	initchecker "campus-backend/lib/utils/init-checker"
	"campus-backend/models"
	feeapimodels "campus-backend/models/api/fee"
	dbmodels "campus-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	RecordPayment(identity models.Identity, data feeapimodels.PaymentData) (receiptNumber string, err error)
	GetByReceipt(receiptNumber string) (feeapimodels.FeeView, error)
	List(filter feeapimodels.FeeFilter) (list []feeapimodels.FeeView, rowCount int64, err error)
	Totals(studentID string) (feeapimodels.Totals, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:        feesstore.NewInstance(db.DB),
		studentStore: studentsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"studentStore", instance.studentStore,
	)
	Instance = instance
}

type impl struct {
	store        feesstore.Provider
	studentStore studentsstore.Provider
}

func (i impl) RecordPayment(identity models.Identity, data feeapimodels.PaymentData) (string, error) {
	if identity.Role == models.UserRoleStudent || identity.Role == models.UserRoleParent {
		return "", errors.Wrap(models.ErrUnauthorized, "only staff can record payments")
	}
	err := data.Validate()
	if err != nil {
		return "", err
	}
	student, err := i.studentStore.GetByID(data.StudentID)
	if err != nil {
		return "", err
	}
	if student == nil {
		return "", errors.Wrap(models.ErrNotFound, "student not found")
	}
	now := time.Now()
	rec := dbmodels.FeePayment{
		StudentID:     data.StudentID,
		AmountDue:     data.AmountDue,
		AmountPaid:    data.AmountPaid,
		LateFee:       data.LateFee,
		PaymentDate:   &now,
		PaymentMode:   data.PaymentMode,
		TransactionID: data.TransactionID,
		ReceiptNumber: newReceiptNumber(now),
		Status:        paymentStatus(data),
		Remarks:       data.Remarks,
		ProcessedBy:   &identity.UserID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("student_id", data.StudentID).
		WithField("receipt_number", rec.ReceiptNumber).
		Info("fee payment recorded")
	return rec.ReceiptNumber, nil
}

func (i impl) GetByReceipt(receiptNumber string) (feeapimodels.FeeView, error) {
	rec, err := i.store.GetByReceipt(receiptNumber)
	if err != nil {
		return feeapimodels.FeeView{}, err
	}
	if rec == nil {
		return feeapimodels.FeeView{}, errors.Wrap(models.ErrNotFound, "receipt not found")
	}
	return feeapimodels.FeeConvert(*rec), nil
}

func (i impl) List(filter feeapimodels.FeeFilter) ([]feeapimodels.FeeView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]feeapimodels.FeeView, 0, len(list))
	for _, rec := range list {
		result = append(result, feeapimodels.FeeConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Totals(studentID string) (feeapimodels.Totals, error) {
	return i.store.Totals(studentID)
}

func paymentStatus(data feeapimodels.PaymentData) models.FeeStatus {
	switch {
	case data.AmountPaid == 0:
		return models.FeeStatusPending
	case data.AmountPaid < data.AmountDue+data.LateFee:
		return models.FeeStatusPartial
	default:
		return models.FeeStatusCompleted
	}
}

func newReceiptNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.Split(uuid.NewString(), "-")[0])
	return fmt.Sprintf("RCPT-%d-%s", now.Year(), suffix)
}
