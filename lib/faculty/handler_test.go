package faculty

import (
	"fmt"
	"testing"

	"campus-backend/models"
	facultyapimodels "campus-backend/models/api/faculty"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type memUsersStore struct {
	seq   int
	users map[string]*dbmodels.User
}

func (s *memUsersStore) Create(rec dbmodels.User) (string, error) {
	s.seq++
	rec.ID = fmt.Sprintf("user-%v", s.seq)
	s.users[rec.ID] = &rec
	return rec.ID, nil
}

func (s *memUsersStore) GetByID(id string) (*dbmodels.User, error) {
	rec, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (s *memUsersStore) GetByEmail(email string) (*dbmodels.User, error) {
	for _, rec := range s.users {
		if rec.Email == email {
			return rec, nil
		}
	}
	return nil, nil
}

func (s *memUsersStore) ExistByEmail(email string) (bool, error) {
	rec, _ := s.GetByEmail(email)
	return rec != nil, nil
}

func (s *memUsersStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := s.users[id]
	if !ok {
		return errors.New("record not found")
	}
	if active, exist := updMap["is_active"].(bool); exist {
		rec.IsActive = active
	}
	if name, exist := updMap["full_name"].(string); exist {
		rec.FullName = name
	}
	if phone, exist := updMap["phone"].(string); exist {
		rec.Phone = phone
	}
	return nil
}

func (s *memUsersStore) ListByRole(role models.UserRole) ([]dbmodels.User, error) {
	return nil, nil
}

type memFacultyStore struct {
	seq  int
	recs map[string]*dbmodels.Faculty
}

func (s *memFacultyStore) Create(rec dbmodels.Faculty) (string, error) {
	s.seq++
	rec.ID = fmt.Sprintf("faculty-%v", s.seq)
	s.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (s *memFacultyStore) GetByID(id string) (*dbmodels.Faculty, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (s *memFacultyStore) GetByUserID(userID string) (*dbmodels.Faculty, error) {
	for _, rec := range s.recs {
		if rec.UserID == userID {
			return rec, nil
		}
	}
	return nil, nil
}

func (s *memFacultyStore) GetByCode(code string) (*dbmodels.Faculty, error) {
	for _, rec := range s.recs {
		if rec.EmployeeCode == code {
			return rec, nil
		}
	}
	return nil, nil
}

func (s *memFacultyStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := s.recs[id]
	if !ok {
		return errors.New("record not found")
	}
	if designation, exist := updMap["designation"].(string); exist {
		rec.Designation = designation
	}
	if years, exist := updMap["experience_years"].(int); exist {
		rec.ExperienceYears = years
	}
	return nil
}

func (s *memFacultyStore) List(filter facultyapimodels.FacultyFilter) ([]dbmodels.Faculty, error) {
	return nil, nil
}

func (s *memFacultyStore) ListCount(filter facultyapimodels.FacultyFilter) (int64, error) {
	return 0, nil
}

func (s *memFacultyStore) CountByDesignation() ([]facultyapimodels.DesignationCount, error) {
	counts := map[string]int64{}
	for _, rec := range s.recs {
		counts[rec.Designation]++
	}
	list := []facultyapimodels.DesignationCount{}
	for designation, count := range counts {
		list = append(list, facultyapimodels.DesignationCount{Designation: designation, Count: count})
	}
	return list, nil
}

func newTestHandler() (impl, *memFacultyStore, *memUsersStore) {
	store := &memFacultyStore{recs: map[string]*dbmodels.Faculty{}}
	users := &memUsersStore{users: map[string]*dbmodels.User{}}
	return impl{store: store, usersStore: users}, store, users
}

func sampleFaculty() facultyapimodels.FacultyData {
	return facultyapimodels.FacultyData{
		Email:           "r.kumar@example.edu",
		FullName:        "Dr. Rajesh Kumar",
		Phone:           "+10000000002",
		EmployeeCode:    "FAC-001",
		Designation:     "Professor",
		Subjects:        []string{"Artificial Intelligence", "Machine Learning"},
		ExperienceYears: 15,
	}
}

func TestFacultyCreate(t *testing.T) {
	t.Run("registration creates a login account", func(t *testing.T) {
		handler, store, users := newTestHandler()
		id, err := handler.Create(sampleFaculty())
		require.Nil(t, err)

		rec := store.recs[id]
		require.Equal(t, "FAC-001", rec.EmployeeCode)
		require.Len(t, rec.Subjects, 2)
		account := users.users[rec.UserID]
		require.NotNil(t, account)
		require.Equal(t, models.UserRoleFaculty, account.Role)
		require.True(t, account.IsActive)
	})

	t.Run("duplicate email is refused", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		_, err := handler.Create(sampleFaculty())
		require.Nil(t, err)

		dup := sampleFaculty()
		dup.EmployeeCode = "FAC-002"
		_, err = handler.Create(dup)
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("duplicate employee code is refused", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		_, err := handler.Create(sampleFaculty())
		require.Nil(t, err)

		dup := sampleFaculty()
		dup.Email = "other@example.edu"
		_, err = handler.Create(dup)
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("missing designation is refused", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		data := sampleFaculty()
		data.Designation = ""
		_, err := handler.Create(data)
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("malformed email is refused", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		data := sampleFaculty()
		data.Email = "not-an-email"
		_, err := handler.Create(data)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}

func TestFacultyUpdate(t *testing.T) {
	t.Run("designation and profile fields change together", func(t *testing.T) {
		handler, store, users := newTestHandler()
		id, err := handler.Create(sampleFaculty())
		require.Nil(t, err)

		upd := sampleFaculty()
		upd.Designation = "Head of Department"
		upd.FullName = "Prof. Rajesh Kumar"
		err = handler.Update(id, upd)
		require.Nil(t, err)

		rec := store.recs[id]
		require.Equal(t, "Head of Department", rec.Designation)
		require.Equal(t, "Prof. Rajesh Kumar", users.users[rec.UserID].FullName)
	})

	t.Run("unknown member is reported", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		err := handler.Update("missing", sampleFaculty())
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestFacultyDeactivate(t *testing.T) {
	t.Run("login account is disabled, the record stays", func(t *testing.T) {
		handler, store, users := newTestHandler()
		id, err := handler.Create(sampleFaculty())
		require.Nil(t, err)

		err = handler.Deactivate(id)
		require.Nil(t, err)

		rec := store.recs[id]
		require.NotNil(t, rec)
		require.False(t, users.users[rec.UserID].IsActive)
	})

	t.Run("unknown member is reported", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		err := handler.Deactivate("missing")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestDesignationStats(t *testing.T) {
	handler, _, _ := newTestHandler()
	designations := []string{"Professor", "Professor", "Assistant Professor"}
	for idx, designation := range designations {
		data := sampleFaculty()
		data.Email = fmt.Sprintf("member-%v@example.edu", idx)
		data.EmployeeCode = fmt.Sprintf("FAC-%03d", idx)
		data.Designation = designation
		_, err := handler.Create(data)
		require.Nil(t, err)
	}

	list, err := handler.DesignationStats()
	require.Nil(t, err)
	byDesignation := map[string]int64{}
	for _, row := range list {
		byDesignation[row.Designation] = row.Count
	}
	require.Equal(t, int64(2), byDesignation["Professor"])
	require.Equal(t, int64(1), byDesignation["Assistant Professor"])
}
