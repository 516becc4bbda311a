package dbmodels

import "time"

type Student struct {
	BaseModel
	UserID        string `gorm:"type:varchar(36);uniqueIndex"`
	User          *User
	StudentCode   string `gorm:"type:varchar(50);uniqueIndex"`
	CourseID      *string `gorm:"type:varchar(36);index"`
	Course        *Course
	BatchYear     int
	Semester      int
	Section       string `gorm:"type:varchar(10)"`
	RollNumber    string `gorm:"type:varchar(50)"`
	AdmissionDate time.Time
	ParentID      *string `gorm:"type:varchar(36)"`
	Parent        *User   `gorm:"foreignKey:ParentID"`
	IsHosteller   bool
	RoomID        *string `gorm:"type:varchar(36)"`
	Room          *HostelRoom `gorm:"foreignKey:RoomID"`
	Documents     []StudentDocument `gorm:"foreignKey:StudentID"`
}

// StudentDocument is the metadata row for a file kept in S3 under FileKey.
type StudentDocument struct {
	BaseModel
	StudentID string `gorm:"type:varchar(36);index"`
	Name      string `gorm:"type:varchar(255)"`
	FileKey   string `gorm:"type:varchar(255)"`
	MimeType  string `gorm:"type:varchar(100)"`
	Size      int64
}
