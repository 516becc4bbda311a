package feesstore

import (
	feeapimodels "campus-backend/models/api/fee"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.FeePayment) (id string, err error)
	GetByID(id string) (rec *dbmodels.FeePayment, err error)
	GetByReceipt(receiptNumber string) (rec *dbmodels.FeePayment, err error)
	List(filter feeapimodels.FeeFilter) (list []dbmodels.FeePayment, err error)
	ListCount(filter feeapimodels.FeeFilter) (rowCount int64, err error)
	Update(id string, updMap map[string]interface{}) error
	Totals(studentID string) (totals feeapimodels.Totals, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FeePayment) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) getBy(column, value string) (*dbmodels.FeePayment, error) {
	rec := dbmodels.FeePayment{}
	err := i.db.
		Where(column+" = ?", value).
		Preload("Student.User").
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

func (i impl) GetByID(id string) (*dbmodels.FeePayment, error) {
	return i.getBy("id", id)
}

func (i impl) GetByReceipt(receiptNumber string) (*dbmodels.FeePayment, error) {
	return i.getBy("receipt_number", receiptNumber)
}

func (i impl) applyFilter(tx *gorm.DB, filter feeapimodels.FeeFilter) *gorm.DB {
	if filter.StudentID != "" {
		tx = tx.Where("student_id = ?", filter.StudentID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if !filter.FromDate.IsZero() {
		tx = tx.Where("payment_date >= ?", filter.FromDate)
	}
	if !filter.ToDate.IsZero() {
		tx = tx.Where("payment_date <= ?", filter.ToDate)
	}
	return tx
}

func (i impl) List(filter feeapimodels.FeeFilter) (list []dbmodels.FeePayment, err error) {
	list = []dbmodels.FeePayment{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(i.db.Model(&dbmodels.FeePayment{}), filter).
		Preload("Student.User").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter feeapimodels.FeeFilter) (rowCount int64, err error) {
	err = i.applyFilter(i.db.Model(&dbmodels.FeePayment{}), filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.FeePayment{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("payment not found")
	}
	return nil
}

func (i impl) Totals(studentID string) (totals feeapimodels.Totals, err error) {
	row := struct {
		TotalDue       float64
		TotalCollected float64
		PaymentCount   int64
	}{}
	tx := i.db.
		Model(&dbmodels.FeePayment{}).
		Select("COALESCE(SUM(amount_due + late_fee), 0) AS total_due, COALESCE(SUM(amount_paid), 0) AS total_collected, COUNT(*) AS payment_count")
	if studentID != "" {
		tx = tx.Where("student_id = ?", studentID)
	}
	err = tx.Scan(&row).Error
	if err != nil {
		return feeapimodels.Totals{}, err
	}
	return feeapimodels.Totals{
		TotalDue:       row.TotalDue,
		TotalCollected: row.TotalCollected,
		Outstanding:    row.TotalDue - row.TotalCollected,
		PaymentCount:   row.PaymentCount,
	}, nil
}
