package attendance

import (
	"fmt"
	"testing"
	"time"

	"campus-backend/models"
	attendanceapimodels "campus-backend/models/api/attendance"
	studentapimodels "campus-backend/models/api/student"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type memAttendanceStore struct {
	seq  int
	recs []dbmodels.Attendance
}

func (s *memAttendanceStore) Upsert(rec dbmodels.Attendance) (string, error) {
	day := rec.Date.Format("2006-01-02")
	for idx := range s.recs {
		if s.recs[idx].StudentID == rec.StudentID && s.recs[idx].Date.Format("2006-01-02") == day {
			rec.ID = s.recs[idx].ID
			s.recs[idx] = rec
			return rec.ID, nil
		}
	}
	s.seq++
	rec.ID = fmt.Sprintf("att-%v", s.seq)
	s.recs = append(s.recs, rec)
	return rec.ID, nil
}

func (s *memAttendanceStore) GetByStudentAndDate(studentID string, date time.Time) (*dbmodels.Attendance, error) {
	day := date.Format("2006-01-02")
	for idx := range s.recs {
		if s.recs[idx].StudentID == studentID && s.recs[idx].Date.Format("2006-01-02") == day {
			return &s.recs[idx], nil
		}
	}
	return nil, nil
}

func (s *memAttendanceStore) List(filter attendanceapimodels.AttendanceFilter) ([]dbmodels.Attendance, error) {
	return s.recs, nil
}

func (s *memAttendanceStore) ListCount(filter attendanceapimodels.AttendanceFilter) (int64, error) {
	return int64(len(s.recs)), nil
}

func (s *memAttendanceStore) ListByStudent(studentID string, from, to time.Time) ([]dbmodels.Attendance, error) {
	list := []dbmodels.Attendance{}
	for _, rec := range s.recs {
		if rec.StudentID == studentID && !rec.Date.Before(from) && !rec.Date.After(to) {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (s *memAttendanceStore) CountPresence(from, to time.Time) (total, present int64, err error) {
	for _, rec := range s.recs {
		if !from.IsZero() && rec.Date.Before(from) {
			continue
		}
		if !to.IsZero() && rec.Date.After(to) {
			continue
		}
		if rec.Status == models.AttendanceHoliday {
			continue
		}
		total++
		if rec.Status.CountsAsPresent() {
			present++
		}
	}
	return total, present, nil
}

type stubStudentStore struct {
	known map[string]bool
}

func (s stubStudentStore) Create(rec dbmodels.Student) (string, error) { return "", nil }

func (s stubStudentStore) GetByID(id string) (*dbmodels.Student, error) {
	if !s.known[id] {
		return nil, nil
	}
	return &dbmodels.Student{BaseModel: dbmodels.BaseModel{ID: id}}, nil
}

func (s stubStudentStore) GetByUserID(userID string) (*dbmodels.Student, error) { return nil, nil }

func (s stubStudentStore) GetByCode(code string) (*dbmodels.Student, error) { return nil, nil }

func (s stubStudentStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (s stubStudentStore) List(filter studentapimodels.StudentFilter) ([]dbmodels.Student, error) {
	return nil, nil
}

func (s stubStudentStore) ListCount(filter studentapimodels.StudentFilter) (int64, error) {
	return 0, nil
}

func (s stubStudentStore) AddDocument(rec dbmodels.StudentDocument) (string, error) { return "", nil }

func (s stubStudentStore) GetDocument(id string) (*dbmodels.StudentDocument, error) { return nil, nil }

func newTestHandler() (impl, *memAttendanceStore) {
	store := &memAttendanceStore{}
	handler := impl{
		store:        store,
		studentStore: stubStudentStore{known: map[string]bool{"student-1": true, "student-2": true}},
	}
	return handler, store
}

func facultyIdentity() models.Identity {
	return models.Identity{UserID: "user-f", FullName: "Prof. Lang", Role: models.UserRoleFaculty}
}

func TestMark(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("staff marks a student present", func(t *testing.T) {
		handler, store := newTestHandler()
		id, err := handler.Mark(facultyIdentity(), attendanceapimodels.MarkData{
			StudentID: "student-1",
			Date:      day,
			Status:    models.AttendancePresent,
		})
		require.Nil(t, err)
		require.NotEmpty(t, id)
		require.Len(t, store.recs, 1)
	})

	t.Run("second mark for the same day overwrites the first", func(t *testing.T) {
		handler, store := newTestHandler()
		_, err := handler.Mark(facultyIdentity(), attendanceapimodels.MarkData{
			StudentID: "student-1", Date: day, Status: models.AttendanceAbsent,
		})
		require.Nil(t, err)
		_, err = handler.Mark(facultyIdentity(), attendanceapimodels.MarkData{
			StudentID: "student-1", Date: day, Status: models.AttendancePresent,
		})
		require.Nil(t, err)
		require.Len(t, store.recs, 1)
		require.Equal(t, models.AttendancePresent, store.recs[0].Status)
	})

	t.Run("students may not mark attendance", func(t *testing.T) {
		handler, _ := newTestHandler()
		student := models.Identity{UserID: "user-1", Role: models.UserRoleStudent}
		_, err := handler.Mark(student, attendanceapimodels.MarkData{
			StudentID: "student-1", Date: day, Status: models.AttendancePresent,
		})
		require.True(t, errors.Is(err, models.ErrUnauthorized))
	})

	t.Run("unknown student is rejected", func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.Mark(facultyIdentity(), attendanceapimodels.MarkData{
			StudentID: "student-x", Date: day, Status: models.AttendancePresent,
		})
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestBulkMark(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("whole sheet is saved in one call", func(t *testing.T) {
		handler, store := newTestHandler()
		marked, err := handler.BulkMark(facultyIdentity(), attendanceapimodels.BulkMarkData{
			Date: day,
			Marks: []attendanceapimodels.BulkMarkItem{
				{StudentID: "student-1", Status: models.AttendancePresent},
				{StudentID: "student-2", Status: models.AttendanceAbsent},
			},
		})
		require.Nil(t, err)
		require.Equal(t, 2, marked)
		require.Len(t, store.recs, 2)
	})

	t.Run("empty sheet is invalid", func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.BulkMark(facultyIdentity(), attendanceapimodels.BulkMarkData{Date: day})
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}

func TestStudentSummary(t *testing.T) {
	handler, store := newTestHandler()
	base := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	marks := []models.AttendanceStatus{
		models.AttendancePresent,
		models.AttendanceAbsent,
		models.AttendanceLate,
		models.AttendanceHoliday,
		models.AttendanceExcused,
	}
	for idx, status := range marks {
		_, err := store.Upsert(dbmodels.Attendance{
			StudentID: "student-1",
			Date:      base.AddDate(0, 0, idx),
			Status:    status,
		})
		require.Nil(t, err)
	}

	summary, err := handler.StudentSummary("student-1", base, base.AddDate(0, 0, 7))
	require.Nil(t, err)
	// the holiday does not count towards either side
	require.Equal(t, 4, summary.TotalDays)
	require.Equal(t, 3, summary.PresentDays)
	require.Equal(t, 1, summary.AbsentDays)
	require.Equal(t, 75.0, summary.Percentage)
}

func TestCampusRate(t *testing.T) {
	handler, store := newTestHandler()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("no marks means a zero rate", func(t *testing.T) {
		rate, err := handler.CampusRate(time.Time{}, time.Time{})
		require.Nil(t, err)
		require.Equal(t, 0.0, rate)
	})

	t.Run("rate spans every student and skips holidays", func(t *testing.T) {
		marks := []struct {
			studentID string
			status    models.AttendanceStatus
		}{
			{"student-1", models.AttendancePresent},
			{"student-1", models.AttendanceHoliday},
			{"student-2", models.AttendanceAbsent},
			{"student-2", models.AttendanceLate},
		}
		for idx, mark := range marks {
			_, err := store.Upsert(dbmodels.Attendance{
				StudentID: mark.studentID,
				Date:      day.AddDate(0, 0, idx),
				Status:    mark.status,
			})
			require.Nil(t, err)
		}
		rate, err := handler.CampusRate(time.Time{}, time.Time{})
		require.Nil(t, err)
		// 2 of 3 counted marks are present, the holiday is out
		require.InDelta(t, 66.66, rate, 0.01)
	})
}
