package outpass

import (
	"fmt"
	"testing"
	"time"

	outpasspolicy "campus-backend/lib/outpass/policy"
	"campus-backend/models"
	outpassapimodels "campus-backend/models/api/outpass"
	studentapimodels "campus-backend/models/api/student"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type memOutpassStore struct {
	seq       int
	recs      map[string]*dbmodels.OutpassRequest
	createErr error
}

func newMemOutpassStore() *memOutpassStore {
	return &memOutpassStore{recs: map[string]*dbmodels.OutpassRequest{}}
}

func (s *memOutpassStore) nextID() string {
	s.seq++
	return fmt.Sprintf("id-%v", s.seq)
}

func (s *memOutpassStore) Create(rec dbmodels.OutpassRequest) (string, error) {
	// the real store writes the request and its stage chain in one
	// transaction, so a failed create leaves nothing behind
	if s.createErr != nil {
		return "", s.createErr
	}
	rec.ID = s.nextID()
	rec.CreatedAt = time.Now()
	for idx := range rec.ApprovalStages {
		rec.ApprovalStages[idx].ID = s.nextID()
		rec.ApprovalStages[idx].RequestID = rec.ID
	}
	s.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (s *memOutpassStore) GetByID(id string) (*dbmodels.OutpassRequest, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.ApprovalStages = append([]dbmodels.OutpassApproval{}, rec.ApprovalStages...)
	return &cp, nil
}

func (s *memOutpassStore) List(filter outpassapimodels.OutpassFilter) ([]dbmodels.OutpassRequest, error) {
	list := []dbmodels.OutpassRequest{}
	for _, rec := range s.recs {
		if filter.StudentID != "" && rec.StudentID != filter.StudentID {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (s *memOutpassStore) ListCount(filter outpassapimodels.OutpassFilter) (int64, error) {
	list, _ := s.List(filter)
	return int64(len(list)), nil
}

func (s *memOutpassStore) ListPendingOverdue(now time.Time) ([]dbmodels.OutpassRequest, error) {
	list := []dbmodels.OutpassRequest{}
	for _, rec := range s.recs {
		if rec.Status == models.OutpassStatusPending && rec.ToDatetime.Before(now) {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (s *memOutpassStore) SetStatus(id string, fromStatus, toStatus models.OutpassStatus) (bool, error) {
	rec, ok := s.recs[id]
	if !ok || rec.Status != fromStatus {
		return false, nil
	}
	rec.Status = toStatus
	return true, nil
}

func (s *memOutpassStore) ApplyDecision(requestID, stageID string, stageStatus models.ApprovalStatus, decidedBy string, decidedAt time.Time, remarks string) (models.OutpassStatus, error) {
	rec, ok := s.recs[requestID]
	if !ok {
		return "", errors.New("request not found")
	}
	for idx := range rec.ApprovalStages {
		if rec.ApprovalStages[idx].ID != stageID {
			continue
		}
		if rec.ApprovalStages[idx].Status.IsDecided() {
			return "", models.ErrAlreadyDecided
		}
		rec.ApprovalStages[idx].Status = stageStatus
		rec.ApprovalStages[idx].DecidedBy = &decidedBy
		rec.ApprovalStages[idx].DecidedAt = &decidedAt
		rec.ApprovalStages[idx].Remarks = remarks
		newStatus := rec.DeriveStatus()
		rec.Status = newStatus
		return newStatus, nil
	}
	return "", errors.New("stage not found")
}

func (s *memOutpassStore) MarkParentNotified(id string, at time.Time) error {
	rec, ok := s.recs[id]
	if !ok {
		return errors.New("request not found")
	}
	rec.ParentNotified = true
	rec.ParentNotifiedAt = &at
	return nil
}

func (s *memOutpassStore) CountByStatus() (outpassapimodels.StatusStats, error) {
	stats := outpassapimodels.StatusStats{}
	for _, rec := range s.recs {
		stats.Total++
		switch rec.Status {
		case models.OutpassStatusPending:
			stats.Pending++
		case models.OutpassStatusApproved:
			stats.Approved++
		case models.OutpassStatusRejected:
			stats.Rejected++
		case models.OutpassStatusExpired:
			stats.Expired++
		case models.OutpassStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

type memHistoryStore struct {
	recs []dbmodels.OutpassHistory
}

func (s *memHistoryStore) Create(rec dbmodels.OutpassHistory) (string, error) {
	rec.ID = fmt.Sprintf("h-%v", len(s.recs)+1)
	s.recs = append(s.recs, rec)
	return rec.ID, nil
}

func (s *memHistoryStore) List(requestID string) ([]dbmodels.OutpassHistory, error) {
	list := []dbmodels.OutpassHistory{}
	for _, rec := range s.recs {
		if rec.RequestID == requestID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type memStudentStore struct {
	students map[string]*dbmodels.Student
}

func (s *memStudentStore) Create(rec dbmodels.Student) (string, error) { return rec.ID, nil }

func (s *memStudentStore) GetByID(id string) (*dbmodels.Student, error) {
	for _, rec := range s.students {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (s *memStudentStore) GetByUserID(userID string) (*dbmodels.Student, error) {
	return s.students[userID], nil
}

func (s *memStudentStore) GetByCode(code string) (*dbmodels.Student, error) { return nil, nil }

func (s *memStudentStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (s *memStudentStore) List(filter studentapimodels.StudentFilter) ([]dbmodels.Student, error) {
	return nil, nil
}

func (s *memStudentStore) ListCount(filter studentapimodels.StudentFilter) (int64, error) {
	return 0, nil
}

func (s *memStudentStore) AddDocument(rec dbmodels.StudentDocument) (string, error) { return "", nil }

func (s *memStudentStore) GetDocument(id string) (*dbmodels.StudentDocument, error) {
	return nil, nil
}

type memNotifier struct {
	events []string
}

func (n *memNotifier) RequestCreated(rec dbmodels.OutpassRequest) {
	n.events = append(n.events, "created")
}

func (n *memNotifier) StageDecided(rec dbmodels.OutpassRequest, stage dbmodels.OutpassApproval) {
	n.events = append(n.events, "decided:"+string(stage.StageRole))
}

func (n *memNotifier) RequestExpired(rec dbmodels.OutpassRequest) {
	n.events = append(n.events, "expired")
}

func (n *memNotifier) RequestCancelled(rec dbmodels.OutpassRequest) {
	n.events = append(n.events, "cancelled")
}

type testEnv struct {
	store    *memOutpassStore
	history  *memHistoryStore
	students *memStudentStore
	notifier *memNotifier
	handler  Provider
}

func newTestEnv() *testEnv {
	env := &testEnv{
		store:    newMemOutpassStore(),
		history:  &memHistoryStore{},
		students: &memStudentStore{students: map[string]*dbmodels.Student{}},
		notifier: &memNotifier{},
	}
	env.students.students["user-1"] = &dbmodels.Student{
		BaseModel:   dbmodels.BaseModel{ID: "student-1"},
		UserID:      "user-1",
		StudentCode: "CS-001",
	}
	env.handler = NewInstance(env.store, env.history, env.students, outpasspolicy.NewInstance(24*time.Hour), env.notifier)
	return env
}

func studentIdentity() models.Identity {
	return models.Identity{UserID: "user-1", FullName: "John Carter", Role: models.UserRoleStudent}
}

func wardenIdentity() models.Identity {
	return models.Identity{UserID: "user-w", FullName: "Head Warden", Role: models.UserRoleWarden}
}

func hodIdentity() models.Identity {
	return models.Identity{UserID: "user-h", FullName: "Dept Head", Role: models.UserRoleHod}
}

func shortLeave() outpassapimodels.OutpassCreateData {
	from := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return outpassapimodels.OutpassCreateData{
		Purpose:            "Medical appointment",
		Destination:        "City hospital",
		FromDatetime:       from,
		ToDatetime:         from.Add(4 * time.Hour),
		ContactDuringLeave: "+10000000001",
	}
}

func longLeave() outpassapimodels.OutpassCreateData {
	data := shortLeave()
	data.ToDatetime = data.FromDatetime.Add(3 * 24 * time.Hour)
	return data
}

func TestOutpassCreate(t *testing.T) {
	t.Run("short same-day leave needs the warden only", func(t *testing.T) {
		env := newTestEnv()
		view, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)
		require.Equal(t, models.OutpassStatusPending, view.Status)
		require.Len(t, view.ApprovalStages, 1)
		require.Equal(t, models.StageWarden, view.ApprovalStages[0].StageRole)
		require.Equal(t, []string{"created"}, env.notifier.events)
	})

	t.Run("long leave adds the HOD stage after the warden", func(t *testing.T) {
		env := newTestEnv()
		view, err := env.handler.Create(studentIdentity(), longLeave())
		require.Nil(t, err)
		require.Len(t, view.ApprovalStages, 2)
		require.Equal(t, models.StageWarden, view.ApprovalStages[0].StageRole)
		require.Equal(t, models.StageHod, view.ApprovalStages[1].StageRole)
		require.Equal(t, 1, view.ApprovalStages[0].Stage)
		require.Equal(t, 2, view.ApprovalStages[1].Stage)
	})

	t.Run("overnight leave adds the HOD stage even when short", func(t *testing.T) {
		env := newTestEnv()
		data := shortLeave()
		data.FromDatetime = time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
		data.ToDatetime = time.Date(2026, 3, 11, 6, 0, 0, 0, time.UTC)
		view, err := env.handler.Create(studentIdentity(), data)
		require.Nil(t, err)
		require.Len(t, view.ApprovalStages, 2)
	})

	t.Run("only a student may create", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.handler.Create(wardenIdentity(), shortLeave())
		require.True(t, errors.Is(err, models.ErrUnauthorized))
	})

	t.Run("window end before start is rejected", func(t *testing.T) {
		env := newTestEnv()
		data := shortLeave()
		data.ToDatetime = data.FromDatetime.Add(-time.Hour)
		_, err := env.handler.Create(studentIdentity(), data)
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("missing purpose is rejected", func(t *testing.T) {
		env := newTestEnv()
		data := shortLeave()
		data.Purpose = ""
		_, err := env.handler.Create(studentIdentity(), data)
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("failed create leaves no partial state behind", func(t *testing.T) {
		env := newTestEnv()
		env.store.createErr = errors.New("insert failed")
		_, err := env.handler.Create(studentIdentity(), shortLeave())
		require.NotNil(t, err)
		require.Empty(t, env.store.recs)
		require.Empty(t, env.history.recs)
		require.Empty(t, env.notifier.events)
	})
}

func TestOutpassDecide(t *testing.T) {
	approve := outpassapimodels.DecisionData{Decision: models.DecisionApprove}
	reject := outpassapimodels.DecisionData{Decision: models.DecisionReject, Remarks: "not justified"}

	t.Run("warden approval completes a single-stage request", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)

		view, err := env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(), approve)
		require.Nil(t, err)
		require.Equal(t, models.OutpassStatusApproved, view.Status)
		require.Equal(t, models.AStatusApproved, view.ApprovalStages[0].Status)
	})

	t.Run("two-stage request stays pending until the HOD decides", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), longLeave())
		require.Nil(t, err)

		view, err := env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(), approve)
		require.Nil(t, err)
		require.Equal(t, models.OutpassStatusPending, view.Status)

		view, err = env.handler.Decide(created.ID, models.StageHod, hodIdentity(), approve)
		require.Nil(t, err)
		require.Equal(t, models.OutpassStatusApproved, view.Status)
	})

	t.Run("rejection at any stage rejects the request", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)

		view, err := env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(), reject)
		require.Nil(t, err)
		require.Equal(t, models.OutpassStatusRejected, view.Status)
		require.Equal(t, "not justified", view.ApprovalStages[0].Remarks)
	})

	t.Run("rejection without remarks is invalid", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)

		_, err = env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(),
			outpassapimodels.DecisionData{Decision: models.DecisionReject})
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("warden stage may not be decided by the HOD", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)

		_, err = env.handler.Decide(created.ID, models.StageWarden, hodIdentity(), approve)
		require.True(t, errors.Is(err, models.ErrUnauthorized))
	})

	t.Run("HOD stage is open to admins", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), longLeave())
		require.Nil(t, err)

		_, err = env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(), approve)
		require.Nil(t, err)

		admin := models.Identity{UserID: "user-a", FullName: "Admin", Role: models.UserRoleAdmin}
		view, err := env.handler.Decide(created.ID, models.StageHod, admin, approve)
		require.Nil(t, err)
		require.Equal(t, models.OutpassStatusApproved, view.Status)
	})

	t.Run("HOD may not decide before the warden", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), longLeave())
		require.Nil(t, err)

		_, err = env.handler.Decide(created.ID, models.StageHod, hodIdentity(), approve)
		require.True(t, errors.Is(err, models.ErrInvalidTransition))
	})

	t.Run("a stage may be decided only once", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), longLeave())
		require.Nil(t, err)

		_, err = env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(), approve)
		require.Nil(t, err)

		_, err = env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(), approve)
		require.True(t, errors.Is(err, models.ErrAlreadyDecided))
	})

	t.Run("terminal request rejects further decisions", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), longLeave())
		require.Nil(t, err)

		_, err = env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(), reject)
		require.Nil(t, err)

		_, err = env.handler.Decide(created.ID, models.StageHod, hodIdentity(), approve)
		require.True(t, errors.Is(err, models.ErrInvalidTransition))
	})

	t.Run("stage not in the chain is invalid", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)

		_, err = env.handler.Decide(created.ID, models.StageHod, hodIdentity(), approve)
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("decision writes an audit row and a notification", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)

		_, err = env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(), approve)
		require.Nil(t, err)

		history, err := env.handler.History(created.ID)
		require.Nil(t, err)
		require.Len(t, history, 2)
		require.Equal(t, []string{"created", "decided:WARDEN"}, env.notifier.events)
	})
}

func TestOutpassCancel(t *testing.T) {
	t.Run("owner cancels a pending request", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)
		env.store.recs[created.ID].Student = &dbmodels.Student{UserID: "user-1"}

		view, err := env.handler.Cancel(created.ID, studentIdentity())
		require.Nil(t, err)
		require.Equal(t, models.OutpassStatusCancelled, view.Status)
	})

	t.Run("another student may not cancel", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)
		env.store.recs[created.ID].Student = &dbmodels.Student{UserID: "user-1"}

		other := models.Identity{UserID: "user-2", Role: models.UserRoleStudent}
		_, err = env.handler.Cancel(created.ID, other)
		require.True(t, errors.Is(err, models.ErrUnauthorized))
	})

	t.Run("decided requests may not be cancelled", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)
		env.store.recs[created.ID].Student = &dbmodels.Student{UserID: "user-1"}

		_, err = env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(),
			outpassapimodels.DecisionData{Decision: models.DecisionApprove})
		require.Nil(t, err)

		_, err = env.handler.Cancel(created.ID, studentIdentity())
		require.True(t, errors.Is(err, models.ErrInvalidTransition))
	})
}

func TestOutpassExpire(t *testing.T) {
	t.Run("pending requests past the window end expire", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)

		count, err := env.handler.ExpireOverdue(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
		require.Nil(t, err)
		require.Equal(t, 1, count)

		view, err := env.handler.GetByID(created.ID)
		require.Nil(t, err)
		require.Equal(t, models.OutpassStatusExpired, view.Status)
	})

	t.Run("requests still inside the window are kept", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)

		count, err := env.handler.ExpireOverdue(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
		require.Nil(t, err)
		require.Equal(t, 0, count)
	})

	t.Run("approved requests never expire", func(t *testing.T) {
		env := newTestEnv()
		created, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)

		_, err = env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(),
			outpassapimodels.DecisionData{Decision: models.DecisionApprove})
		require.Nil(t, err)

		count, err := env.handler.ExpireOverdue(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
		require.Nil(t, err)
		require.Equal(t, 0, count)

		view, err := env.handler.GetByID(created.ID)
		require.Nil(t, err)
		require.Equal(t, models.OutpassStatusApproved, view.Status)
	})
}

func TestOutpassList(t *testing.T) {
	t.Run("a student sees only their own requests", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)

		other := dbmodels.OutpassRequest{
			StudentID: "student-2",
			Status:    models.OutpassStatusPending,
		}
		_, err = env.store.Create(other)
		require.Nil(t, err)

		list, rowCount, err := env.handler.List(studentIdentity(), outpassapimodels.OutpassFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(1), rowCount)
		require.Len(t, list, 1)
		require.Equal(t, "student-1", list[0].StudentID)
	})

	t.Run("the warden sees everything", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.handler.Create(studentIdentity(), shortLeave())
		require.Nil(t, err)

		list, rowCount, err := env.handler.List(wardenIdentity(), outpassapimodels.OutpassFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(1), rowCount)
		require.Len(t, list, 1)
	})
}

func TestOutpassStats(t *testing.T) {
	env := newTestEnv()
	created, err := env.handler.Create(studentIdentity(), shortLeave())
	require.Nil(t, err)
	_, err = env.handler.Create(studentIdentity(), longLeave())
	require.Nil(t, err)
	_, err = env.handler.Decide(created.ID, models.StageWarden, wardenIdentity(),
		outpassapimodels.DecisionData{Decision: models.DecisionApprove})
	require.Nil(t, err)

	stats, err := env.handler.Stats()
	require.Nil(t, err)
	require.Equal(t, int64(2), stats.Total)
	require.Equal(t, int64(1), stats.Pending)
	require.Equal(t, int64(1), stats.Approved)
}
