package authhandler

import (
	"rh-hub-backend/config"
	"rh-hub-backend/db"
	companystore "rh-hub-backend/lib/company/store"
	usersstore "rh-hub-backend/lib/users/store"
	authutils "rh-hub-backend/lib/utils/auth-utils"
	initchecker "rh-hub-backend/lib/utils/init-checker"
	"rh-hub-backend/models"
	authapimodels "rh-hub-backend/models/api/auth"
	dbmodels "rh-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUnauthorized = errors.New("неверный email или пароль")

type Provider interface {
	Login(email, password string) (authapimodels.TokenPair, error)
	RefreshToken(refreshToken string) (authapimodels.TokenPair, error)
	Me(userID string) (*authapimodels.MeView, error)
	Registration(data authapimodels.Registration) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db", db.DB)
	Instance = impl{
		userStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore usersstore.Provider
}

func (i impl) Login(email, password string) (authapimodels.TokenPair, error) {
	logger := log.WithField("email", email)
	user, err := i.userStore.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя по почте")
		return authapimodels.TokenPair{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.TokenPair{}, ErrUnauthorized
	}
	if isBlocked(*user) {
		logger.Debug("пользователь или компания заблокированы")
		return authapimodels.TokenPair{}, ErrUnauthorized
	}
	if !authutils.CheckPassword(user.Password, password) {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.TokenPair{}, ErrUnauthorized
	}
	response, err := i.issueTokens(*user)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.TokenPair{}, err
	}
	err = i.userStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления даты последнего входа")
	}
	return response, nil
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.TokenPair, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.TokenPair{}, err
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return authapimodels.TokenPair{}, err
	}
	if user == nil || isBlocked(*user) {
		return authapimodels.TokenPair{}, ErrUnauthorized
	}
	return i.issueTokens(*user)
}

func (i impl) Me(userID string) (*authapimodels.MeView, error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	result := authapimodels.MeView{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		RoleName:  user.Role.ToHuman(),
		CompanyID: user.CompanyID,
	}
	if user.Company != nil {
		result.CompanyName = user.Company.Name
	}
	return &result, nil
}

// Registration создает компанию и ее первого администратора
func (i impl) Registration(data authapimodels.Registration) (hMsg string, err error) {
	logger := log.WithField("email", data.Email).WithField("company_name", data.CompanyName)
	exist, err := i.userStore.ExistByEmail(data.Email)
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки email")
	}
	if exist {
		return "пользователь с таким email уже существует", nil
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return "", err
	}
	var companyID string
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		companyID, err = companystore.NewInstance(tx).Create(dbmodels.Company{
			Name:     data.CompanyName,
			Cnpj:     data.Cnpj,
			Email:    data.Email,
			Phone:    data.Phone,
			IsActive: true,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка создания компании")
		}
		_, err = usersstore.NewInstance(tx).Create(dbmodels.User{
			CompanyID: companyID,
			Password:  hash,
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Email:     data.Email,
			Phone:     data.Phone,
			IsActive:  true,
			Role:      models.CompanyAdminRole,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка создания администратора компании")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	logger.WithField("company_id", companyID).Info("зарегистрирована компания")
	return "", nil
}

func isBlocked(user dbmodels.User) bool {
	return !user.IsActive || (user.Company != nil && !user.Company.IsActive)
}

func (i impl) issueTokens(user dbmodels.User) (authapimodels.TokenPair, error) {
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.CompanyID, user.Role)
	if err != nil {
		return authapimodels.TokenPair{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return authapimodels.TokenPair{}, err
	}
	return authapimodels.NewTokenPair(token, refreshToken, user.Role, time.Now(),
		config.Conf.Auth.JWTExpireInSec, config.Conf.Auth.JWTRefreshExpireInSec), nil
}
