package outpassstore

import (
	"time"

	"campus-backend/models"
	outpassapimodels "campus-backend/models/api/outpass"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.OutpassRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.OutpassRequest, err error)
	List(filter outpassapimodels.OutpassFilter) (list []dbmodels.OutpassRequest, err error)
	ListCount(filter outpassapimodels.OutpassFilter) (rowCount int64, err error)
	ListPendingOverdue(now time.Time) (list []dbmodels.OutpassRequest, err error)
	// SetStatus flips the overall status with the optimistic precondition
	// "status is still fromStatus". applied=false means a concurrent writer won.
	SetStatus(id string, fromStatus, toStatus models.OutpassStatus) (applied bool, err error)
	// ApplyDecision writes one stage decision plus the recomputed overall
	// status as a single atomic unit. A stage decided by a concurrent
	// caller fails with ErrAlreadyDecided and nothing is written.
	ApplyDecision(requestID, stageID string, stageStatus models.ApprovalStatus, decidedBy string, decidedAt time.Time, remarks string) (newStatus models.OutpassStatus, err error)
	MarkParentNotified(id string, at time.Time) error
	CountByStatus() (stats outpassapimodels.StatusStats, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OutpassRequest) (id string, err error) {
	// the request row and its stage chain land together or not at all,
	// a request without its full chain could expire but never be approved
	err = i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).
			Save(&rec).
			Error
		if err != nil {
			return err
		}
		for idx := range rec.ApprovalStages {
			rec.ApprovalStages[idx].RequestID = rec.ID
			err = tx.Omit(clause.Associations).
				Save(&rec.ApprovalStages[idx]).
				Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.OutpassRequest, error) {
	rec := dbmodels.OutpassRequest{}
	err := i.db.
		Where("id = ?", id).
		Preload("Student").
		Preload("Student.User").
		Preload("Student.Parent").
		Preload("Student.Course").
		Preload("Student.Room").
		Preload("ApprovalStages", func(db *gorm.DB) *gorm.DB {
			return db.Order("outpass_approvals.stage ASC")
		}).
		Preload("ApprovalStages.Approver").
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

func (i impl) applyFilter(tx *gorm.DB, filter outpassapimodels.OutpassFilter) *gorm.DB {
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.StudentID != "" {
		tx = tx.Where("student_id = ?", filter.StudentID)
	}
	if filter.FromDate != nil {
		tx = tx.Where("to_datetime >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		tx = tx.Where("from_datetime <= ?", *filter.ToDate)
	}
	return tx
}

func (i impl) List(filter outpassapimodels.OutpassFilter) (list []dbmodels.OutpassRequest, err error) {
	list = []dbmodels.OutpassRequest{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(i.db.Model(&dbmodels.OutpassRequest{}), filter).
		Preload("Student").
		Preload("Student.User").
		Preload("Student.Course").
		Preload("Student.Room").
		Preload("ApprovalStages", func(db *gorm.DB) *gorm.DB {
			return db.Order("outpass_approvals.stage ASC")
		}).
		Preload("ApprovalStages.Approver").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter outpassapimodels.OutpassFilter) (rowCount int64, err error) {
	err = i.applyFilter(i.db.Model(&dbmodels.OutpassRequest{}), filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) ListPendingOverdue(now time.Time) (list []dbmodels.OutpassRequest, err error) {
	list = []dbmodels.OutpassRequest{}
	err = i.db.
		Where("status = ?", models.OutpassStatusPending).
		Where("to_datetime < ?", now).
		Preload("Student").
		Preload("Student.User").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetStatus(id string, fromStatus, toStatus models.OutpassStatus) (applied bool, err error) {
	tx := i.db.
		Model(&dbmodels.OutpassRequest{}).
		Where("id = ?", id).
		Where("status = ?", fromStatus).
		Update("status", toStatus)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) ApplyDecision(requestID, stageID string, stageStatus models.ApprovalStatus, decidedBy string, decidedAt time.Time, remarks string) (newStatus models.OutpassStatus, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&dbmodels.OutpassApproval{}).
			Where("id = ?", stageID).
			Where("status = ?", models.AStatusPending).
			Updates(map[string]interface{}{
				"status":     stageStatus,
				"decided_by": decidedBy,
				"decided_at": decidedAt,
				"remarks":    remarks,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// the concurrent racer already decided this stage
			return models.ErrAlreadyDecided
		}
		rec := dbmodels.OutpassRequest{}
		err := tx.
			Where("id = ?", requestID).
			Preload("ApprovalStages", func(db *gorm.DB) *gorm.DB {
				return db.Order("outpass_approvals.stage ASC")
			}).
			First(&rec).
			Error
		if err != nil {
			return err
		}
		newStatus = rec.DeriveStatus()
		if newStatus == models.OutpassStatusPending {
			return nil
		}
		res = tx.
			Model(&dbmodels.OutpassRequest{}).
			Where("id = ?", requestID).
			Where("status = ?", models.OutpassStatusPending).
			Update("status", newStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// the request hit a terminal status in the same instant,
			// roll the stage decision back too
			return models.ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return newStatus, nil
}

func (i impl) MarkParentNotified(id string, at time.Time) error {
	return i.db.
		Model(&dbmodels.OutpassRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"parent_notified":    true,
			"parent_notified_at": at,
		}).
		Error
}

func (i impl) CountByStatus() (stats outpassapimodels.StatusStats, err error) {
	rows := []struct {
		Status models.OutpassStatus
		Count  int64
	}{}
	err = i.db.
		Model(&dbmodels.OutpassRequest{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&rows).
		Error
	if err != nil {
		return stats, err
	}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.OutpassStatusPending:
			stats.Pending = row.Count
		case models.OutpassStatusApproved:
			stats.Approved = row.Count
		case models.OutpassStatusRejected:
			stats.Rejected = row.Count
		case models.OutpassStatusExpired:
			stats.Expired = row.Count
		case models.OutpassStatusCancelled:
			stats.Cancelled = row.Count
		}
	}
	return stats, nil
}
