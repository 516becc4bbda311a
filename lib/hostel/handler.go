package hostel

import (
	"campus-backend/db"
	hostelstore "campus-backend/lib/hostel/store"
	studentsstore "campus-backend/lib/students/store"
	initchecker "campus-backend/lib/utils/init-checker"
	"campus-backend/models"
	hostelapimodels "campus-backend/models/api/hostel"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CreateRoom(data hostelapimodels.RoomData) (id string, err error)
	UpdateRoom(id string, data hostelapimodels.RoomData) error
	GetRoom(id string) (hostelapimodels.RoomView, error)
	ListRooms(block string) (list []hostelapimodels.RoomView, err error)
	AssignStudent(roomID, studentID string) error
	VacateStudent(studentID string) error
	Occupancy() ([]hostelapimodels.Occupancy, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:        hostelstore.NewInstance(db.DB),
		studentStore: studentsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"studentStore", instance.studentStore,
	)
	Instance = instance
}

type impl struct {
	store        hostelstore.Provider
	studentStore studentsstore.Provider
}

func (i impl) CreateRoom(data hostelapimodels.RoomData) (string, error) {
	err := data.Validate()
	if err != nil {
		return "", err
	}
	rec := dbmodels.HostelRoom{
		Block:    data.Block,
		Number:   data.Number,
		Floor:    data.Floor,
		Capacity: data.Capacity,
		RoomType: data.RoomType,
		IsActive: true,
	}
	if data.WardenID != "" {
		rec.WardenID = &data.WardenID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("room", rec.Label()).
		Info("hostel room created")
	return id, nil
}

func (i impl) UpdateRoom(id string, data hostelapimodels.RoomData) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"block":     data.Block,
		"number":    data.Number,
		"floor":     data.Floor,
		"capacity":  data.Capacity,
		"room_type": data.RoomType,
	}
	if data.WardenID != "" {
		updMap["warden_id"] = data.WardenID
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetRoom(id string) (hostelapimodels.RoomView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return hostelapimodels.RoomView{}, err
	}
	if rec == nil {
		return hostelapimodels.RoomView{}, errors.Wrap(models.ErrNotFound, "room not found")
	}
	return hostelapimodels.RoomConvert(*rec), nil
}

func (i impl) ListRooms(block string) ([]hostelapimodels.RoomView, error) {
	recList, err := i.store.List(block, true)
	if err != nil {
		return nil, err
	}
	result := make([]hostelapimodels.RoomView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, hostelapimodels.RoomConvert(rec))
	}
	return result, nil
}

func (i impl) AssignStudent(roomID, studentID string) error {
	student, err := i.studentStore.GetByID(studentID)
	if err != nil {
		return err
	}
	if student == nil {
		return errors.Wrap(models.ErrNotFound, "student not found")
	}
	room, err := i.store.GetByID(roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return errors.Wrap(models.ErrNotFound, "room not found")
	}
	if student.RoomID != nil && *student.RoomID == roomID {
		return nil
	}
	applied, err := i.store.ChangeOccupied(roomID, 1)
	if err != nil {
		return err
	}
	if !applied {
		return errors.Wrap(models.ErrValidation, "room is full")
	}
	if student.RoomID != nil {
		_, err = i.store.ChangeOccupied(*student.RoomID, -1)
		if err != nil {
			log.
				WithField("room_id", *student.RoomID).
				WithError(err).
				Error("previous room release failed")
		}
	}
	err = i.studentStore.Update(studentID, map[string]interface{}{
		"room_id":      roomID,
		"is_hosteller": true,
	})
	if err != nil {
		return err
	}
	log.
		WithField("student_id", studentID).
		WithField("room", room.Label()).
		Info("student assigned to room")
	return nil
}

func (i impl) VacateStudent(studentID string) error {
	student, err := i.studentStore.GetByID(studentID)
	if err != nil {
		return err
	}
	if student == nil {
		return errors.Wrap(models.ErrNotFound, "student not found")
	}
	if student.RoomID == nil {
		return errors.Wrap(models.ErrValidation, "student has no room")
	}
	_, err = i.store.ChangeOccupied(*student.RoomID, -1)
	if err != nil {
		return err
	}
	err = i.studentStore.Update(studentID, map[string]interface{}{
		"room_id":      nil,
		"is_hosteller": false,
	})
	if err != nil {
		return err
	}
	log.
		WithField("student_id", studentID).
		Info("student vacated room")
	return nil
}

func (i impl) Occupancy() ([]hostelapimodels.Occupancy, error) {
	return i.store.Occupancy()
}
