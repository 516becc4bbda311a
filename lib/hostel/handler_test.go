package hostel

import (
	"fmt"
	"testing"

	"campus-backend/models"
	hostelapimodels "campus-backend/models/api/hostel"
	studentapimodels "campus-backend/models/api/student"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type memHostelStore struct {
	seq   int
	rooms map[string]*dbmodels.HostelRoom
}

func (s *memHostelStore) Create(rec dbmodels.HostelRoom) (string, error) {
	s.seq++
	rec.ID = fmt.Sprintf("room-%v", s.seq)
	s.rooms[rec.ID] = &rec
	return rec.ID, nil
}

func (s *memHostelStore) GetByID(id string) (*dbmodels.HostelRoom, error) {
	rec, ok := s.rooms[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (s *memHostelStore) List(block string, onlyActive bool) ([]dbmodels.HostelRoom, error) {
	list := []dbmodels.HostelRoom{}
	for _, rec := range s.rooms {
		if block != "" && rec.Block != block {
			continue
		}
		if onlyActive && !rec.IsActive {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (s *memHostelStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (s *memHostelStore) ChangeOccupied(id string, delta int) (bool, error) {
	rec, ok := s.rooms[id]
	if !ok {
		return false, nil
	}
	next := rec.Occupied + delta
	if next < 0 || next > rec.Capacity {
		return false, nil
	}
	rec.Occupied = next
	return true, nil
}

func (s *memHostelStore) Occupancy() ([]hostelapimodels.Occupancy, error) {
	return nil, nil
}

type memStudentStore struct {
	students map[string]*dbmodels.Student
}

func (s *memStudentStore) Create(rec dbmodels.Student) (string, error) { return "", nil }

func (s *memStudentStore) GetByID(id string) (*dbmodels.Student, error) {
	rec, ok := s.students[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (s *memStudentStore) GetByUserID(userID string) (*dbmodels.Student, error) { return nil, nil }

func (s *memStudentStore) GetByCode(code string) (*dbmodels.Student, error) { return nil, nil }

func (s *memStudentStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := s.students[id]
	if !ok {
		return errors.New("student not found")
	}
	if roomID, present := updMap["room_id"]; present {
		switch v := roomID.(type) {
		case string:
			rec.RoomID = &v
		case nil:
			rec.RoomID = nil
		}
	}
	if hosteller, ok := updMap["is_hosteller"].(bool); ok {
		rec.IsHosteller = hosteller
	}
	return nil
}

func (s *memStudentStore) List(filter studentapimodels.StudentFilter) ([]dbmodels.Student, error) {
	return nil, nil
}

func (s *memStudentStore) ListCount(filter studentapimodels.StudentFilter) (int64, error) {
	return 0, nil
}

func (s *memStudentStore) AddDocument(rec dbmodels.StudentDocument) (string, error) { return "", nil }

func (s *memStudentStore) GetDocument(id string) (*dbmodels.StudentDocument, error) { return nil, nil }

func newTestHandler() (impl, *memHostelStore, *memStudentStore) {
	rooms := &memHostelStore{rooms: map[string]*dbmodels.HostelRoom{}}
	students := &memStudentStore{students: map[string]*dbmodels.Student{
		"student-1": {BaseModel: dbmodels.BaseModel{ID: "student-1"}},
		"student-2": {BaseModel: dbmodels.BaseModel{ID: "student-2"}},
	}}
	return impl{store: rooms, studentStore: students}, rooms, students
}

func sampleRoom(capacity int) hostelapimodels.RoomData {
	return hostelapimodels.RoomData{
		Block:    "A",
		Number:   "101",
		Floor:    1,
		Capacity: capacity,
		RoomType: "DOUBLE",
	}
}

func TestAssignStudent(t *testing.T) {
	t.Run("assignment takes a bed and marks the student a hosteller", func(t *testing.T) {
		handler, rooms, students := newTestHandler()
		roomID, err := handler.CreateRoom(sampleRoom(2))
		require.Nil(t, err)

		err = handler.AssignStudent(roomID, "student-1")
		require.Nil(t, err)
		require.Equal(t, 1, rooms.rooms[roomID].Occupied)
		require.True(t, students.students["student-1"].IsHosteller)
		require.Equal(t, roomID, *students.students["student-1"].RoomID)
	})

	t.Run("full room refuses another student", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		roomID, err := handler.CreateRoom(sampleRoom(1))
		require.Nil(t, err)

		require.Nil(t, handler.AssignStudent(roomID, "student-1"))
		err = handler.AssignStudent(roomID, "student-2")
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("moving rooms releases the previous bed", func(t *testing.T) {
		handler, rooms, _ := newTestHandler()
		first, err := handler.CreateRoom(sampleRoom(1))
		require.Nil(t, err)
		second, err := handler.CreateRoom(sampleRoom(1))
		require.Nil(t, err)

		require.Nil(t, handler.AssignStudent(first, "student-1"))
		require.Nil(t, handler.AssignStudent(second, "student-1"))
		require.Equal(t, 0, rooms.rooms[first].Occupied)
		require.Equal(t, 1, rooms.rooms[second].Occupied)
	})

	t.Run("re-assigning the same room is a no-op", func(t *testing.T) {
		handler, rooms, _ := newTestHandler()
		roomID, err := handler.CreateRoom(sampleRoom(1))
		require.Nil(t, err)

		require.Nil(t, handler.AssignStudent(roomID, "student-1"))
		require.Nil(t, handler.AssignStudent(roomID, "student-1"))
		require.Equal(t, 1, rooms.rooms[roomID].Occupied)
	})

	t.Run("unknown room is refused", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		err := handler.AssignStudent("room-x", "student-1")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestVacateStudent(t *testing.T) {
	t.Run("vacating frees the bed", func(t *testing.T) {
		handler, rooms, students := newTestHandler()
		roomID, err := handler.CreateRoom(sampleRoom(1))
		require.Nil(t, err)

		require.Nil(t, handler.AssignStudent(roomID, "student-1"))
		require.Nil(t, handler.VacateStudent("student-1"))
		require.Equal(t, 0, rooms.rooms[roomID].Occupied)
		require.False(t, students.students["student-1"].IsHosteller)
		require.Nil(t, students.students["student-1"].RoomID)
	})

	t.Run("student without a room is refused", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		err := handler.VacateStudent("student-1")
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}
