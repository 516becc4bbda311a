package exams

import (
	"campus-backend/db"
	examsstore "campus-backend/lib/exams/store"
	studentsstore "campus-backend/lib/students/store"
	initchecker "campus-backend/lib/utils/init-checker"
	"campus-backend/models"
	examapimodels "campus-backend/models/api/exam"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Publish(identity models.Identity, data examapimodels.ResultData) (id string, err error)
	List(filter examapimodels.ExamFilter) (list []examapimodels.ResultView, rowCount int64, err error)
	GradeDistribution(courseID string, semester int) ([]examapimodels.GradeDistribution, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:        examsstore.NewInstance(db.DB),
		studentStore: studentsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"studentStore", instance.studentStore,
	)
	Instance = instance
}

type impl struct {
	store        examsstore.Provider
	studentStore studentsstore.Provider
}

func (i impl) Publish(identity models.Identity, data examapimodels.ResultData) (string, error) {
	if identity.Role != models.UserRoleFaculty && !identity.Role.IsAdmin() {
		return "", errors.Wrap(models.ErrUnauthorized, "only faculty can publish results")
	}
	err := data.Validate()
	if err != nil {
		return "", err
	}
	student, err := i.studentStore.GetByID(data.StudentID)
	if err != nil {
		return "", err
	}
	if student == nil {
		return "", errors.Wrap(models.ErrNotFound, "student not found")
	}
	rec := dbmodels.ExamResult{
		StudentID:     data.StudentID,
		CourseID:      data.CourseID,
		SubjectName:   data.SubjectName,
		ExamType:      data.ExamType,
		ExamDate:      data.ExamDate,
		MaxMarks:      data.MaxMarks,
		ObtainedMarks: data.ObtainedMarks,
		Grade:         gradeFor(data.ObtainedMarks / data.MaxMarks * 100),
		Semester:      data.Semester,
		PublishedBy:   &identity.UserID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("student_id", data.StudentID).
		WithField("subject", data.SubjectName).
		Info("exam result published")
	return id, nil
}

func (i impl) List(filter examapimodels.ExamFilter) ([]examapimodels.ResultView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]examapimodels.ResultView, 0, len(list))
	for _, rec := range list {
		result = append(result, examapimodels.ResultConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) GradeDistribution(courseID string, semester int) ([]examapimodels.GradeDistribution, error) {
	return i.store.GradeDistribution(courseID, semester)
}

func gradeFor(percent float64) string {
	switch {
	case percent >= 90:
		return "A+"
	case percent >= 80:
		return "A"
	case percent >= 70:
		return "B"
	case percent >= 60:
		return "C"
	case percent >= 50:
		return "D"
	case percent >= 40:
		return "E"
	default:
		return "F"
	}
}
