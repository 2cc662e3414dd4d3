package usershandler

import (
	"rh-hub-backend/db"
	usersstore "rh-hub-backend/lib/users/store"
	authutils "rh-hub-backend/lib/utils/auth-utils"
	initchecker "rh-hub-backend/lib/utils/init-checker"
	"rh-hub-backend/models"
	userapimodels "rh-hub-backend/models/api/user"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(companyID string, data userapimodels.CreateUser) (id, hMsg string, err error)
	Update(companyID, userID string, data userapimodels.UpdateUser) (hMsg string, err error)
	Delete(companyID, userID, currentUserID string) (hMsg string, err error)
	Get(companyID, userID string) (*userapimodels.UserView, error)
	List(companyID string, filter userapimodels.UserFilter) ([]userapimodels.UserView, int64, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db", db.DB)
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Create(companyID string, data userapimodels.CreateUser) (id, hMsg string, err error) {
	logger := getLogger(companyID, "").WithField("email", data.Email)
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка проверки email")
	}
	if exist {
		return "", "пользователь с таким email уже существует", nil
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return "", "", err
	}
	rec := dbmodels.User{
		CompanyID: companyID,
		Password:  hash,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		IsActive:  true,
		Role:      data.Role,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания пользователя")
	}
	logger.WithField("user_id", id).Info("создан пользователь")
	return id, "", nil
}

func (i impl) Update(companyID, userID string, data userapimodels.UpdateUser) (hMsg string, err error) {
	logger := getLogger(companyID, userID)
	rec, err := i.store.GetCompanyUser(companyID, userID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil {
		return "пользователь не найден", nil
	}
	if rec.Email != data.Email {
		exist, err := i.store.ExistByEmail(data.Email)
		if err != nil {
			return "", errors.Wrap(err, "ошибка проверки email")
		}
		if exist {
			return "пользователь с таким email уже существует", nil
		}
	}
	deactivate := data.IsActive != nil && !*data.IsActive
	if rec.Role.IsCompanyAdmin() && (data.Role != models.CompanyAdminRole || deactivate) {
		if hMsg, err = i.checkNotLastAdmin(companyID); hMsg != "" || err != nil {
			return hMsg, err
		}
	}
	updMap := map[string]interface{}{
		"email":      data.Email,
		"first_name": data.FirstName,
		"last_name":  data.LastName,
		"phone":      data.Phone,
		"role":       data.Role,
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	if data.Password != "" {
		hash, err := authutils.HashPassword(data.Password)
		if err != nil {
			return "", err
		}
		updMap["password"] = hash
	}
	if err = i.store.Update(userID, updMap); err != nil {
		return "", errors.Wrap(err, "ошибка обновления пользователя")
	}
	logger.Info("обновлены данные пользователя")
	return "", nil
}

func (i impl) Delete(companyID, userID, currentUserID string) (hMsg string, err error) {
	if userID == currentUserID {
		return "нельзя удалить самого себя", nil
	}
	rec, err := i.store.GetCompanyUser(companyID, userID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil {
		return "пользователь не найден", nil
	}
	if rec.Role.IsCompanyAdmin() {
		if hMsg, err = i.checkNotLastAdmin(companyID); hMsg != "" || err != nil {
			return hMsg, err
		}
	}
	if err = i.store.Delete(companyID, userID); err != nil {
		return "", errors.Wrap(err, "ошибка удаления пользователя")
	}
	getLogger(companyID, userID).Info("пользователь удален")
	return "", nil
}

func (i impl) Get(companyID, userID string) (*userapimodels.UserView, error) {
	rec, err := i.store.GetCompanyUser(companyID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil {
		return nil, nil
	}
	result := userapimodels.UserConvert(*rec)
	return &result, nil
}

func (i impl) List(companyID string, filter userapimodels.UserFilter) ([]userapimodels.UserView, int64, error) {
	rowCount, err := i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения количества пользователей")
	}
	if int64(filter.Offset()) > rowCount {
		return []userapimodels.UserView{}, rowCount, nil
	}
	list, err := i.store.List(companyID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка пользователей")
	}
	result := make([]userapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, userapimodels.UserConvert(rec))
	}
	return result, rowCount, nil
}

// в компании всегда остается хотя бы один активный администратор
func (i impl) checkNotLastAdmin(companyID string) (hMsg string, err error) {
	count, err := i.store.CountAdmins(companyID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения количества администраторов")
	}
	if count <= 1 {
		return "в компании должен остаться хотя бы один администратор", nil
	}
	return "", nil
}

func getLogger(companyID, userID string) *log.Entry {
	logger := log.WithField("company_id", companyID)
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}
