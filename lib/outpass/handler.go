package outpass

import (
	"time"

	"campus-backend/config"
	"campus-backend/db"
	"campus-backend/lib/notification"
	outpasshistorystore "campus-backend/lib/outpass/history-store"
	outpasspolicy "campus-backend/lib/outpass/policy"
	outpassstore "campus-backend/lib/outpass/store"
	studentsstore "campus-backend/lib/students/store"
	"campus-backend/models"
	outpassapimodels "campus-backend/models/api/outpass"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(identity models.Identity, data outpassapimodels.OutpassCreateData) (outpassapimodels.OutpassView, error)
	Decide(id string, stageRole models.StageRole, identity models.Identity, data outpassapimodels.DecisionData) (outpassapimodels.OutpassView, error)
	Cancel(id string, identity models.Identity) (outpassapimodels.OutpassView, error)
	ExpireOverdue(now time.Time) (count int, err error)
	GetByID(id string) (outpassapimodels.OutpassView, error)
	List(identity models.Identity, filter outpassapimodels.OutpassFilter) (list []outpassapimodels.OutpassView, rowCount int64, err error)
	History(id string) ([]outpassapimodels.HistoryView, error)
	Stats() (outpassapimodels.StatusStats, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		outpassstore.NewInstance(db.DB),
		outpasshistorystore.NewInstance(db.DB),
		studentsstore.NewInstance(db.DB),
		outpasspolicy.NewInstance(time.Duration(config.Conf.Outpass.HodWindowHours)*time.Hour),
		notification.Instance,
	)
}

func NewInstance(store outpassstore.Provider, historyStore outpasshistorystore.Provider,
	studentStore studentsstore.Provider, policy outpasspolicy.Provider, notifier notification.Provider) Provider {
	return impl{
		store:        store,
		historyStore: historyStore,
		studentStore: studentStore,
		policy:       policy,
		notifier:     notifier,
	}
}

type impl struct {
	store        outpassstore.Provider
	historyStore outpasshistorystore.Provider
	studentStore studentsstore.Provider
	policy       outpasspolicy.Provider
	notifier     notification.Provider
}

func (i impl) getLogger(requestID string) *log.Entry {
	return log.WithField("outpass_request_id", requestID)
}

func (i impl) Create(identity models.Identity, data outpassapimodels.OutpassCreateData) (outpassapimodels.OutpassView, error) {
	if identity.Role != models.UserRoleStudent {
		return outpassapimodels.OutpassView{}, errors.Wrap(models.ErrUnauthorized, "only a student may request an out-pass")
	}
	if err := data.Validate(); err != nil {
		return outpassapimodels.OutpassView{}, err
	}
	student, err := i.studentStore.GetByUserID(identity.UserID)
	if err != nil {
		return outpassapimodels.OutpassView{}, err
	}
	if student == nil {
		return outpassapimodels.OutpassView{}, errors.Wrap(models.ErrNotFound, "student record for the caller")
	}
	rec := dbmodels.OutpassRequest{
		StudentID:          student.ID,
		Purpose:            data.Purpose,
		Destination:        data.Destination,
		FromDatetime:       data.FromDatetime,
		ToDatetime:         data.ToDatetime,
		ContactDuringLeave: data.ContactDuringLeave,
		AccompaniedBy:      data.AccompaniedBy,
		Status:             models.OutpassStatusPending,
	}
	for idx, stageRole := range i.policy.RequiredStages(data.FromDatetime, data.ToDatetime) {
		rec.ApprovalStages = append(rec.ApprovalStages, dbmodels.OutpassApproval{
			Stage:     idx + 1,
			StageRole: stageRole,
			Status:    models.AStatusPending,
		})
	}
	id, err := i.store.Create(rec)
	if err != nil {
		i.getLogger("").
			WithField("student_id", student.ID).
			WithError(err).
			Error("out-pass request creation failed")
		return outpassapimodels.OutpassView{}, err
	}
	i.getLogger(id).
		WithField("student_id", student.ID).
		Info("out-pass request created")

	created, err := i.getRec(id)
	if err != nil {
		return outpassapimodels.OutpassView{}, err
	}
	i.audit(models.EventRequestCreated, *created, "", identity, "")
	i.notifier.RequestCreated(*created)
	return outpassapimodels.OutpassConvert(*created), nil
}

func (i impl) Decide(id string, stageRole models.StageRole, identity models.Identity, data outpassapimodels.DecisionData) (outpassapimodels.OutpassView, error) {
	logger := i.getLogger(id).
		WithField("stage_role", stageRole).
		WithField("user_id", identity.UserID)
	if !stageRole.Valid() {
		return outpassapimodels.OutpassView{}, errors.Wrap(models.ErrValidation, "unknown approval stage")
	}
	if err := data.Validate(); err != nil {
		return outpassapimodels.OutpassView{}, err
	}
	if !identity.Role.CanDecideStage(stageRole) {
		return outpassapimodels.OutpassView{}, errors.Wrapf(models.ErrUnauthorized, "stage %v is not decided by role %v", stageRole, identity.Role)
	}
	rec, err := i.getRec(id)
	if err != nil {
		return outpassapimodels.OutpassView{}, err
	}
	if rec.Status.IsTerminal() {
		return outpassapimodels.OutpassView{}, errors.Wrapf(models.ErrInvalidTransition, "request is already %v", rec.Status.ToHuman())
	}
	stage := rec.StageByRole(stageRole)
	if stage == nil {
		return outpassapimodels.OutpassView{}, errors.Wrapf(models.ErrValidation, "stage %v is not required for this request", stageRole)
	}
	if stage.Status.IsDecided() {
		return outpassapimodels.OutpassView{}, errors.Wrapf(models.ErrAlreadyDecided, "stage %v", stageRole)
	}
	_, current := rec.GetCurrentApprovalStage()
	if current == nil || current.ID != stage.ID {
		return outpassapimodels.OutpassView{}, errors.Wrapf(models.ErrInvalidTransition, "stage %v is not next in the chain", stageRole)
	}

	stageStatus := models.AStatusApproved
	if data.Decision == models.DecisionReject {
		stageStatus = models.AStatusRejected
	}
	newStatus, err := i.store.ApplyDecision(rec.ID, stage.ID, stageStatus, identity.UserID, time.Now(), data.Remarks)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyDecided) || errors.Is(err, models.ErrInvalidTransition) {
			return outpassapimodels.OutpassView{}, err
		}
		logger.WithError(err).Error("out-pass decision failed")
		return outpassapimodels.OutpassView{}, err
	}
	logger.
		WithField("stage_status", stageStatus).
		WithField("new_status", newStatus).
		Info("out-pass stage decided")

	updated, err := i.getRec(id)
	if err != nil {
		return outpassapimodels.OutpassView{}, err
	}
	i.audit(models.EventStageDecided, *updated, stageRole, identity, data.Remarks)
	if decided := updated.StageByRole(stageRole); decided != nil {
		i.notifier.StageDecided(*updated, *decided)
	}
	return outpassapimodels.OutpassConvert(*updated), nil
}

func (i impl) Cancel(id string, identity models.Identity) (outpassapimodels.OutpassView, error) {
	logger := i.getLogger(id).
		WithField("user_id", identity.UserID)
	rec, err := i.getRec(id)
	if err != nil {
		return outpassapimodels.OutpassView{}, err
	}
	if rec.Student == nil || rec.Student.UserID != identity.UserID {
		return outpassapimodels.OutpassView{}, errors.Wrap(models.ErrUnauthorized, "only the owning student may cancel")
	}
	if rec.Status != models.OutpassStatusPending {
		return outpassapimodels.OutpassView{}, errors.Wrapf(models.ErrInvalidTransition, "request is already %v", rec.Status.ToHuman())
	}
	applied, err := i.store.SetStatus(id, models.OutpassStatusPending, models.OutpassStatusCancelled)
	if err != nil {
		logger.WithError(err).Error("out-pass cancellation failed")
		return outpassapimodels.OutpassView{}, err
	}
	if !applied {
		// a decision or expiry won the race
		return outpassapimodels.OutpassView{}, errors.Wrap(models.ErrInvalidTransition, "request left the pending status")
	}
	logger.Info("out-pass request cancelled")

	updated, err := i.getRec(id)
	if err != nil {
		return outpassapimodels.OutpassView{}, err
	}
	i.audit(models.EventRequestCancelled, *updated, "", identity, "")
	i.notifier.RequestCancelled(*updated)
	return outpassapimodels.OutpassConvert(*updated), nil
}

// ExpireOverdue flips every pending request whose leave window already
// ended. Safe to re-run, requests decided mid-scan lose the optimistic
// update and are skipped.
func (i impl) ExpireOverdue(now time.Time) (count int, err error) {
	list, err := i.store.ListPendingOverdue(now)
	if err != nil {
		return 0, err
	}
	for _, rec := range list {
		applied, err := i.store.SetStatus(rec.ID, models.OutpassStatusPending, models.OutpassStatusExpired)
		if err != nil {
			i.getLogger(rec.ID).WithError(err).Error("out-pass expiry failed")
			return count, err
		}
		if !applied {
			continue
		}
		count++
		rec.Status = models.OutpassStatusExpired
		i.audit(models.EventRequestExpired, rec, "", models.Identity{UserID: models.SystemUser, FullName: models.SystemUser}, "")
		i.notifier.RequestExpired(rec)
	}
	return count, nil
}

func (i impl) GetByID(id string) (outpassapimodels.OutpassView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return outpassapimodels.OutpassView{}, err
	}
	return outpassapimodels.OutpassConvert(*rec), nil
}

// List returns requests visible to the caller: students see their own
// requests only, approver and admin roles see everything.
func (i impl) List(identity models.Identity, filter outpassapimodels.OutpassFilter) (list []outpassapimodels.OutpassView, rowCount int64, err error) {
	if err = filter.Validate(); err != nil {
		return nil, 0, err
	}
	if identity.Role == models.UserRoleStudent {
		student, err := i.studentStore.GetByUserID(identity.UserID)
		if err != nil {
			return nil, 0, err
		}
		if student == nil {
			return nil, 0, errors.Wrap(models.ErrNotFound, "student record for the caller")
		}
		filter.StudentID = student.ID
	}
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("out-pass listing failed")
		return nil, 0, err
	}
	result := make([]outpassapimodels.OutpassView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, outpassapimodels.OutpassConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) History(id string) ([]outpassapimodels.HistoryView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	list, err := i.historyStore.List(rec.ID)
	if err != nil {
		return nil, err
	}
	result := make([]outpassapimodels.HistoryView, 0, len(list))
	for _, item := range list {
		result = append(result, outpassapimodels.HistoryConvert(item))
	}
	return result, nil
}

func (i impl) Stats() (outpassapimodels.StatusStats, error) {
	return i.store.CountByStatus()
}

func (i impl) getRec(id string) (*dbmodels.OutpassRequest, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		i.getLogger(id).WithError(err).Error("out-pass request lookup failed")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "out-pass request")
	}
	return rec, nil
}

func (i impl) audit(event models.OutpassEvent, rec dbmodels.OutpassRequest, stageRole models.StageRole, actor models.Identity, remarks string) {
	historyRec := dbmodels.OutpassHistory{
		RequestID: rec.ID,
		Event:     event,
		StageRole: stageRole,
		Status:    rec.Status,
		ActorID:   actor.UserID,
		ActorName: actor.FullName,
		Remarks:   remarks,
	}
	_, err := i.historyStore.Create(historyRec)
	if err != nil {
		i.getLogger(rec.ID).WithError(err).Error("out-pass history append failed")
	}
}
