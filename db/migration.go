package db

import (
	dbmodels "campus-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration failed for User")
	}
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "migration failed for Department")
	}
	if err := DB.AutoMigrate(&dbmodels.Course{}); err != nil {
		return errors.Wrap(err, "migration failed for Course")
	}
	if err := DB.AutoMigrate(&dbmodels.HostelRoom{}); err != nil {
		return errors.Wrap(err, "migration failed for HostelRoom")
	}
	if err := DB.AutoMigrate(&dbmodels.Faculty{}); err != nil {
		return errors.Wrap(err, "migration failed for Faculty")
	}
	if err := DB.AutoMigrate(&dbmodels.Student{}); err != nil {
		return errors.Wrap(err, "migration failed for Student")
	}
	if err := DB.AutoMigrate(&dbmodels.StudentDocument{}); err != nil {
		return errors.Wrap(err, "migration failed for StudentDocument")
	}
	if err := DB.AutoMigrate(&dbmodels.OutpassRequest{}); err != nil {
		return errors.Wrap(err, "migration failed for OutpassRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.OutpassApproval{}); err != nil {
		return errors.Wrap(err, "migration failed for OutpassApproval")
	}
	if err := DB.AutoMigrate(&dbmodels.OutpassHistory{}); err != nil {
		return errors.Wrap(err, "migration failed for OutpassHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.Attendance{}); err != nil {
		return errors.Wrap(err, "migration failed for Attendance")
	}
	if err := DB.AutoMigrate(&dbmodels.FeePayment{}); err != nil {
		return errors.Wrap(err, "migration failed for FeePayment")
	}
	if err := DB.AutoMigrate(&dbmodels.ExamResult{}); err != nil {
		return errors.Wrap(err, "migration failed for ExamResult")
	}
	if err := DB.AutoMigrate(&dbmodels.LibraryBook{}); err != nil {
		return errors.Wrap(err, "migration failed for LibraryBook")
	}
	if err := DB.AutoMigrate(&dbmodels.BookLoan{}); err != nil {
		return errors.Wrap(err, "migration failed for BookLoan")
	}
	log.Info("migrations finished")
	return nil
}
