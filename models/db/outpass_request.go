package dbmodels

import (
	"campus-backend/models"
	"time"
)

// OutpassRequest is one leave request. Status is derived from the ordered
// approval stages plus the expiry policy; rows are never deleted, rejected
// and expired requests stay for audit.
type OutpassRequest struct {
	BaseModel
	StudentID          string `gorm:"type:varchar(36);index"`
	Student            *Student
	Purpose            string    `gorm:"type:varchar(500)"`
	Destination        string    `gorm:"type:varchar(255)"`
	FromDatetime       time.Time `gorm:"index"`
	ToDatetime         time.Time `gorm:"index"`
	ContactDuringLeave string    `gorm:"type:varchar(50)"`
	AccompaniedBy      string    `gorm:"type:varchar(255)"`
	Status             models.OutpassStatus `gorm:"type:varchar(50);index"`
	ParentNotified     bool
	ParentNotifiedAt   *time.Time
	ActualOutTime      *time.Time
	ActualInTime       *time.Time
	ApprovalStages     []OutpassApproval `gorm:"foreignKey:RequestID"`
}

// GetCurrentApprovalStage returns the first undecided stage in order and
// whether it is the last one in the chain.
func (r OutpassRequest) GetCurrentApprovalStage() (isLastStage bool, stage *OutpassApproval) {
	for idx := range r.ApprovalStages {
		if !r.ApprovalStages[idx].Status.IsDecided() {
			return idx == len(r.ApprovalStages)-1, &r.ApprovalStages[idx]
		}
	}
	return false, nil
}

// StageByRole returns the stage row owned by the given role, if present.
func (r OutpassRequest) StageByRole(role models.StageRole) *OutpassApproval {
	for idx := range r.ApprovalStages {
		if r.ApprovalStages[idx].StageRole == role {
			return &r.ApprovalStages[idx]
		}
	}
	return nil
}

// DeriveStatus recomputes the overall status from the stage rows:
// rejected as soon as any stage is rejected, approved only when every
// stage is approved, pending otherwise. Terminal statuses set by other
// policies (expired, cancelled) are kept as is.
func (r OutpassRequest) DeriveStatus() models.OutpassStatus {
	if r.Status == models.OutpassStatusExpired || r.Status == models.OutpassStatusCancelled {
		return r.Status
	}
	approved := 0
	for _, stage := range r.ApprovalStages {
		switch stage.Status {
		case models.AStatusRejected:
			return models.OutpassStatusRejected
		case models.AStatusApproved:
			approved++
		}
	}
	if len(r.ApprovalStages) > 0 && approved == len(r.ApprovalStages) {
		return models.OutpassStatusApproved
	}
	return models.OutpassStatusPending
}

// OutpassApproval is one checkpoint in the approval chain, ordered by Stage.
type OutpassApproval struct {
	BaseModel
	RequestID  string           `gorm:"type:varchar(36);index"`
	Stage      int              `gorm:"index"`
	StageRole  models.StageRole `gorm:"type:varchar(50)"`
	Status     models.ApprovalStatus `gorm:"type:varchar(50)"`
	DecidedBy  *string          `gorm:"type:varchar(36)"`
	Approver   *User            `gorm:"foreignKey:DecidedBy"`
	DecidedAt  *time.Time
	Remarks    string `gorm:"type:varchar(500)"`
}

// OutpassHistory is the append-only audit trail of the workflow. One row
// per lifecycle event, never updated or deleted.
type OutpassHistory struct {
	BaseModel
	RequestID string              `gorm:"type:varchar(36);index"`
	Event     models.OutpassEvent `gorm:"type:varchar(50)"`
	StageRole  models.StageRole   `gorm:"type:varchar(50)"`
	Status     models.OutpassStatus `gorm:"type:varchar(50)"`
	ActorID    string             `gorm:"type:varchar(36)"`
	ActorName  string             `gorm:"type:varchar(255)"`
	Remarks    string             `gorm:"type:varchar(500)"`
}
