package db

import (
	"campus-backend/config"
	usersstore "campus-backend/lib/users/store"
	authutils "campus-backend/lib/utils/auth-utils"
	"campus-backend/models"
	dbmodels "campus-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addSuperAdmin()
}

func addSuperAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("super admin not added, ADMIN_EMAIL is not configured")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.GetByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("super admin creation failed")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		Email:    config.Conf.Admin.Email,
		Password: authutils.GetMD5Hash(config.Conf.Admin.Password),
		FullName: config.Conf.Admin.FullName,
		Role:     models.UserRoleSuperAdmin,
		IsActive: true,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("super admin creation failed")
	}
}
