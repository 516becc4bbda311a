package hostelapimodels

import (
	"campus-backend/models"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
)

type RoomData struct {
	Block    string `json:"block"`
	Number   string `json:"number"`
	Floor    int    `json:"floor"`
	Capacity int    `json:"capacity"`
	RoomType string `json:"room_type"`
	WardenID string `json:"warden_id"`
}

func (r RoomData) Validate() error {
	if r.Number == "" {
		return errors.Wrap(models.ErrValidation, "room number is required")
	}
	if r.Capacity <= 0 {
		return errors.Wrap(models.ErrValidation, "capacity is required")
	}
	return nil
}

type RoomView struct {
	ID         string `json:"id"`
	Block      string `json:"block"`
	Number     string `json:"number"`
	Label      string `json:"label"`
	Floor      int    `json:"floor"`
	Capacity   int    `json:"capacity"`
	Occupied   int    `json:"occupied"`
	RoomType   string `json:"room_type,omitempty"`
	WardenName string `json:"warden_name,omitempty"`
	IsActive   bool   `json:"is_active"`
}

func RoomConvert(rec dbmodels.HostelRoom) RoomView {
	view := RoomView{
		ID:       rec.ID,
		Block:    rec.Block,
		Number:   rec.Number,
		Label:    rec.Label(),
		Floor:    rec.Floor,
		Capacity: rec.Capacity,
		Occupied: rec.Occupied,
		RoomType: rec.RoomType,
		IsActive: rec.IsActive,
	}
	if rec.Warden != nil {
		view.WardenName = rec.Warden.FullName
	}
	return view
}

// Occupancy summarizes hostel usage per block.
type Occupancy struct {
	Block    string `json:"block"`
	Rooms    int64  `json:"rooms"`
	Capacity int64  `json:"capacity"`
	Occupied int64  `json:"occupied"`
}
