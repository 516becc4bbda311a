package students

import (
	"context"

	"campus-backend/db"
	filestorage "campus-backend/lib/file-storage"
	studentsstore "campus-backend/lib/students/store"
	usersstore "campus-backend/lib/users/store"
	authutils "campus-backend/lib/utils/auth-utils"
	"campus-backend/models"
	studentapimodels "campus-backend/models/api/student"
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data studentapimodels.StudentData) (id string, err error)
	Update(id string, data studentapimodels.StudentData) error
	GetByID(id string) (studentapimodels.StudentView, error)
	List(filter studentapimodels.StudentFilter) (list []studentapimodels.StudentView, rowCount int64, err error)
	UploadDocument(ctx context.Context, studentID, fileName, mimeType string, file []byte) (id string, err error)
	GetDocument(ctx context.Context, studentID, docID string) (name string, file []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      studentsstore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      studentsstore.Provider
	usersStore usersstore.Provider
}

func (i impl) Create(data studentapimodels.StudentData) (string, error) {
	err := data.Validate()
	if err != nil {
		return "", err
	}
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", errors.Wrap(models.ErrValidation, "user with this email already exists")
	}
	dup, err := i.store.GetByCode(data.StudentCode)
	if err != nil {
		return "", err
	}
	if dup != nil {
		return "", errors.Wrap(models.ErrValidation, "student code already in use")
	}
	userID, err := i.usersStore.Create(dbmodels.User{
		Email:    data.Email,
		Password: authutils.GetMD5Hash(data.StudentCode),
		FullName: data.FullName,
		Role:     models.UserRoleStudent,
		Phone:    data.Phone,
		IsActive: true,
	})
	if err != nil {
		return "", errors.Wrap(err, "student account creation failed")
	}
	rec := dbmodels.Student{
		UserID:        userID,
		StudentCode:   data.StudentCode,
		BatchYear:     data.BatchYear,
		Semester:      data.Semester,
		Section:       data.Section,
		RollNumber:    data.RollNumber,
		AdmissionDate: data.AdmissionDate,
		IsHosteller:   data.IsHosteller,
	}
	if data.CourseID != "" {
		rec.CourseID = &data.CourseID
	}
	if data.RoomID != "" {
		rec.RoomID = &data.RoomID
	}
	if data.ParentEmail != "" {
		parentID, pErr := i.getOrCreateParent(data)
		if pErr != nil {
			return "", pErr
		}
		rec.ParentID = &parentID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("student_id", id).
		WithField("student_code", data.StudentCode).
		Info("student enrolled")
	return id, nil
}

func (i impl) getOrCreateParent(data studentapimodels.StudentData) (string, error) {
	parent, err := i.usersStore.GetByEmail(data.ParentEmail)
	if err != nil {
		return "", err
	}
	if parent != nil {
		return parent.ID, nil
	}
	return i.usersStore.Create(dbmodels.User{
		Email:    data.ParentEmail,
		Password: authutils.GetMD5Hash(data.StudentCode),
		FullName: "Parent of " + data.FullName,
		Role:     models.UserRoleParent,
		IsActive: true,
	})
}

func (i impl) Update(id string, data studentapimodels.StudentData) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "student not found")
	}
	updMap := map[string]interface{}{
		"batch_year":   data.BatchYear,
		"semester":     data.Semester,
		"section":      data.Section,
		"roll_number":  data.RollNumber,
		"is_hosteller": data.IsHosteller,
	}
	if data.CourseID != "" {
		updMap["course_id"] = data.CourseID
	}
	if data.IsHosteller {
		updMap["room_id"] = data.RoomID
	} else {
		updMap["room_id"] = nil
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	return i.usersStore.Update(rec.UserID, map[string]interface{}{
		"full_name": data.FullName,
		"phone":     data.Phone,
	})
}

func (i impl) GetByID(id string) (studentapimodels.StudentView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return studentapimodels.StudentView{}, err
	}
	if rec == nil {
		return studentapimodels.StudentView{}, errors.Wrap(models.ErrNotFound, "student not found")
	}
	return studentapimodels.StudentConvert(*rec), nil
}

func (i impl) List(filter studentapimodels.StudentFilter) ([]studentapimodels.StudentView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]studentapimodels.StudentView, 0, len(list))
	for _, rec := range list {
		result = append(result, studentapimodels.StudentConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) UploadDocument(ctx context.Context, studentID, fileName, mimeType string, file []byte) (string, error) {
	if fileName == "" {
		return "", errors.Wrap(models.ErrValidation, "file name is required")
	}
	if len(file) == 0 {
		return "", errors.Wrap(models.ErrValidation, "file is empty")
	}
	rec, err := i.store.GetByID(studentID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.Wrap(models.ErrNotFound, "student not found")
	}
	fileKey, err := filestorage.Instance.UploadStudentDoc(ctx, studentID, fileName, file)
	if err != nil {
		return "", err
	}
	return i.store.AddDocument(dbmodels.StudentDocument{
		StudentID: studentID,
		Name:      fileName,
		FileKey:   fileKey,
		MimeType:  mimeType,
		Size:      int64(len(file)),
	})
}

func (i impl) GetDocument(ctx context.Context, studentID, docID string) (string, []byte, error) {
	doc, err := i.store.GetDocument(docID)
	if err != nil {
		return "", nil, err
	}
	if doc == nil || doc.StudentID != studentID {
		return "", nil, errors.Wrap(models.ErrNotFound, "document not found")
	}
	file, err := filestorage.Instance.GetFile(ctx, doc.FileKey)
	if err != nil {
		return "", nil, err
	}
	return doc.Name, file, nil
}
