package dbmodels

import "time"

type ExamResult struct {
	BaseModel
	StudentID     string `gorm:"type:varchar(36);index:idx_exam_student"`
	Student       *Student
	CourseID      string `gorm:"type:varchar(36);index"`
	SubjectName   string `gorm:"type:varchar(255)"`
	ExamType      string `gorm:"type:varchar(50)"`
	ExamDate      time.Time
	MaxMarks      float64
	ObtainedMarks float64
	Grade         string `gorm:"type:varchar(10)"`
	Semester      int
	PublishedBy   *string `gorm:"type:varchar(36)"`
}
