package dbmodels

import (
	"campus-backend/models"
	"time"
)

type Attendance struct {
	BaseModel
	StudentID string `gorm:"type:varchar(36);index:idx_attendance_student_date"`
	Student   *Student
	CourseID  string    `gorm:"type:varchar(36);index"`
	Date      time.Time `gorm:"type:date;index:idx_attendance_student_date"`
	Status    models.AttendanceStatus `gorm:"type:varchar(50)"`
	MarkedBy  *string `gorm:"type:varchar(36)"`
	Remarks   string  `gorm:"type:varchar(255)"`
}
