package outpassapimodels

import (
	"time"

	"campus-backend/models"
	apimodels "campus-backend/models/api"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
)

type OutpassCreateData struct {
	Purpose            string    `json:"purpose"`              // reason for leave
	Destination        string    `json:"destination"`          // where the student is going
	FromDatetime       time.Time `json:"from_datetime"`        // leave window start
	ToDatetime         time.Time `json:"to_datetime"`          // leave window end
	ContactDuringLeave string    `json:"contact_during_leave"` // phone reachable during leave
	AccompaniedBy      string    `json:"accompanied_by"`       // optional companion
}

func (r OutpassCreateData) Validate() error {
	if r.Purpose == "" {
		return errors.Wrap(models.ErrValidation, "purpose is required")
	}
	if r.Destination == "" {
		return errors.Wrap(models.ErrValidation, "destination is required")
	}
	if r.ContactDuringLeave == "" {
		return errors.Wrap(models.ErrValidation, "contact during leave is required")
	}
	if r.FromDatetime.IsZero() || r.ToDatetime.IsZero() {
		return errors.Wrap(models.ErrValidation, "leave window is required")
	}
	if !r.FromDatetime.Before(r.ToDatetime) {
		return errors.Wrap(models.ErrValidation, "leave window start must be before its end")
	}
	return nil
}

type DecisionData struct {
	Decision models.Decision `json:"decision"` // APPROVE/REJECT
	Remarks  string          `json:"remarks"`  // required when rejecting
}

func (r DecisionData) Validate() error {
	if !r.Decision.Valid() {
		return errors.Wrap(models.ErrValidation, "unknown decision")
	}
	if r.Decision == models.DecisionReject && r.Remarks == "" {
		return errors.Wrap(models.ErrValidation, "remarks are required when rejecting")
	}
	return nil
}

type OutpassFilter struct {
	apimodels.Pagination
	Status    models.OutpassStatus `json:"status"`     // optional overall status
	StudentID string               `json:"student_id"` // optional owner filter
	FromDate  *time.Time           `json:"from_date"`  // window overlap filter start
	ToDate    *time.Time           `json:"to_date"`    // window overlap filter end
}

func (r OutpassFilter) Validate() error {
	if r.FromDate != nil && r.ToDate != nil && r.ToDate.Before(*r.FromDate) {
		return errors.Wrap(models.ErrValidation, "date filter end before its start")
	}
	return nil
}

type ApprovalStageView struct {
	ID        string                `json:"id"`
	Stage     int                   `json:"stage"`
	StageRole models.StageRole      `json:"stage_role"`
	Status    models.ApprovalStatus `json:"status"`
	DecidedBy string                `json:"decided_by,omitempty"`
	DecidedAt *time.Time            `json:"decided_at,omitempty"`
	Remarks   string                `json:"remarks,omitempty"`
}

type OutpassView struct {
	ID                 string               `json:"id"`
	StudentID          string               `json:"student_id"`
	StudentCode        string               `json:"student_code,omitempty"`
	StudentName        string               `json:"student_name,omitempty"`
	Course             string               `json:"course,omitempty"`
	RoomNo             string               `json:"room_no,omitempty"`
	Purpose            string               `json:"purpose"`
	Destination        string               `json:"destination"`
	FromDatetime       time.Time            `json:"from_datetime"`
	ToDatetime         time.Time            `json:"to_datetime"`
	ContactDuringLeave string               `json:"contact_during_leave"`
	AccompaniedBy      string               `json:"accompanied_by,omitempty"`
	Status             models.OutpassStatus `json:"status"`
	StatusName         string               `json:"status_name"`
	CreatedAt          time.Time            `json:"created_at"`
	ApprovalStages     []ApprovalStageView  `json:"approval_stages"`
}

func ApprovalStageConvert(rec dbmodels.OutpassApproval) ApprovalStageView {
	view := ApprovalStageView{
		ID:        rec.ID,
		Stage:     rec.Stage,
		StageRole: rec.StageRole,
		Status:    rec.Status,
		DecidedAt: rec.DecidedAt,
		Remarks:   rec.Remarks,
	}
	if rec.Approver != nil {
		view.DecidedBy = rec.Approver.FullName
	}
	return view
}

func OutpassConvert(rec dbmodels.OutpassRequest) OutpassView {
	view := OutpassView{
		ID:                 rec.ID,
		StudentID:          rec.StudentID,
		Purpose:            rec.Purpose,
		Destination:        rec.Destination,
		FromDatetime:       rec.FromDatetime,
		ToDatetime:         rec.ToDatetime,
		ContactDuringLeave: rec.ContactDuringLeave,
		AccompaniedBy:      rec.AccompaniedBy,
		Status:             rec.Status,
		StatusName:         rec.Status.ToHuman(),
		CreatedAt:          rec.CreatedAt,
		ApprovalStages:     make([]ApprovalStageView, 0, len(rec.ApprovalStages)),
	}
	if rec.Student != nil {
		view.StudentCode = rec.Student.StudentCode
		if rec.Student.User != nil {
			view.StudentName = rec.Student.User.FullName
		}
		if rec.Student.Course != nil {
			view.Course = rec.Student.Course.Name
		}
		if rec.Student.Room != nil {
			view.RoomNo = rec.Student.Room.Label()
		}
	}
	for _, stage := range rec.ApprovalStages {
		view.ApprovalStages = append(view.ApprovalStages, ApprovalStageConvert(stage))
	}
	return view
}

type HistoryView struct {
	ID        string               `json:"id"`
	Event     models.OutpassEvent  `json:"event"`
	StageRole models.StageRole     `json:"stage_role,omitempty"`
	Status    models.OutpassStatus `json:"status"`
	ActorName string               `json:"actor_name,omitempty"`
	Remarks   string               `json:"remarks,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

func HistoryConvert(rec dbmodels.OutpassHistory) HistoryView {
	return HistoryView{
		ID:        rec.ID,
		Event:     rec.Event,
		StageRole: rec.StageRole,
		Status:    rec.Status,
		ActorName: rec.ActorName,
		Remarks:   rec.Remarks,
		CreatedAt: rec.CreatedAt,
	}
}

// StatusStats are the dashboard tile counters, recomputed on demand.
type StatusStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Expired   int64 `json:"expired"`
	Cancelled int64 `json:"cancelled"`
}
