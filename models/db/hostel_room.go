package dbmodels

type HostelRoom struct {
	BaseModel
	Block    string `gorm:"type:varchar(50);index:idx_room_block_number"`
	Number   string `gorm:"type:varchar(50);index:idx_room_block_number"`
	Floor    int
	Capacity int
	Occupied int
	RoomType string `gorm:"type:varchar(50)"`
	WardenID *string `gorm:"type:varchar(36)"`
	Warden   *User   `gorm:"foreignKey:WardenID"`
	IsActive bool    `gorm:"default:true"`
}

// Label is the display form used in exports and the gate pass.
func (r HostelRoom) Label() string {
	if r.Block == "" {
		return r.Number
	}
	return r.Block + "-" + r.Number
}
