package authhandler

import (
	"time"

	"campus-backend/config"
	"campus-backend/db"
	usersstore "campus-backend/lib/users/store"
	authutils "campus-backend/lib/utils/auth-utils"
	"campus-backend/models"
	authapimodels "campus-backend/models/api/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(email, password string) (authapimodels.JWTResponse, error)
	Me(userID string) (authapimodels.UserView, error)
	RefreshToken(refreshToken string) (authapimodels.JWTResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.usersStore.GetByEmail(email)
	if err != nil {
		logger.WithError(err).Error("user lookup failed")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrUnauthorized, "wrong login or password")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrUnauthorized, "wrong login or password")
	}
	now := time.Now()
	err = i.usersStore.Update(user.ID, map[string]interface{}{"last_login": &now})
	if err != nil {
		logger.WithError(err).Error("last login update failed")
	}
	return i.issueTokens(user.ID, user.FullName, user.Role)
}

func (i impl) Me(userID string) (authapimodels.UserView, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return authapimodels.UserView{}, err
	}
	if user == nil {
		return authapimodels.UserView{}, errors.Wrap(models.ErrNotFound, "user not found")
	}
	return authapimodels.UserView{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		RoleName: user.Role.ToHuman(),
		Phone:    user.Phone,
	}, nil
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrUnauthorized, "invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrUnauthorized, "invalid refresh token")
	}
	userID, _ := claims["sub"].(string)
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrNotFound, "user not found")
	}
	return i.issueTokens(user.ID, user.FullName, user.Role)
}

func (i impl) issueTokens(userID, name string, role models.UserRole) (authapimodels.JWTResponse, error) {
	accessToken, err := authutils.GetToken(userID, name, role)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "access token generation failed")
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "refresh token generation failed")
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
