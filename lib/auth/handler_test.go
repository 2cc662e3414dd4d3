package authhandler

import (
	"testing"

	"rh-hub-backend/config"
	authutils "rh-hub-backend/lib/utils/auth-utils"
	"rh-hub-backend/lib/utils/helpers"
	"rh-hub-backend/models"
	userapimodels "rh-hub-backend/models/api/user"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users   map[string]*dbmodels.User
	updates map[string]map[string]interface{}
}

func (f *fakeUsers) Create(rec dbmodels.User) (string, error) {
	f.users[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeUsers) GetByID(userID string) (*dbmodels.User, error) {
	return f.users[userID], nil
}

func (f *fakeUsers) GetCompanyUser(companyID, userID string) (*dbmodels.User, error) {
	rec := f.users[userID]
	if rec == nil || rec.CompanyID != companyID {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeUsers) FindByEmail(email string) (*dbmodels.User, error) {
	for _, rec := range f.users {
		if rec.Email == helpers.NormalizeEmail(email) {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) ExistByEmail(email string) (bool, error) {
	rec, _ := f.FindByEmail(email)
	return rec != nil, nil
}

func (f *fakeUsers) Update(userID string, updMap map[string]interface{}) error {
	f.updates[userID] = updMap
	return nil
}

func (f *fakeUsers) Delete(companyID, userID string) error {
	delete(f.users, userID)
	return nil
}

func (f *fakeUsers) ListCount(companyID string, filter userapimodels.UserFilter) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUsers) List(companyID string, filter userapimodels.UserFilter) ([]dbmodels.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUsers) CountAdmins(companyID string) (int64, error) {
	return 1, nil
}

func newTestAuth(t *testing.T) (impl, *fakeUsers) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120

	hash, err := authutils.HashPassword("recruta123")
	require.NoError(t, err)
	company := &dbmodels.Company{Name: "Tech Solutions", IsActive: true}
	company.ID = "company-1"
	user := &dbmodels.User{
		CompanyID: company.ID,
		Company:   company,
		Password:  hash,
		FirstName: "Ana",
		LastName:  "Recrutadora",
		Email:     "ana@techsolutions.com",
		IsActive:  true,
		Role:      models.RecruiterRole,
	}
	user.ID = "user-1"
	users := &fakeUsers{
		users:   map[string]*dbmodels.User{user.ID: user},
		updates: map[string]map[string]interface{}{},
	}
	return impl{userStore: users}, users
}

func TestLogin(t *testing.T) {
	t.Run("Успешный вход", func(t *testing.T) {
		handler, users := newTestAuth(t)
		resp, err := handler.Login("Ana@TechSolutions.com", "recruta123")
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotEmpty(t, resp.RefreshToken)
		require.Equal(t, int64(60), resp.ExpiresIn)
		require.Equal(t, models.RecruiterRole, resp.Role)
		require.Contains(t, users.updates["user-1"], "last_login")

		userID, err := authutils.ParseRefreshToken(resp.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, "user-1", userID)
	})
	t.Run("Неверный пароль", func(t *testing.T) {
		handler, _ := newTestAuth(t)
		_, err := handler.Login("ana@techsolutions.com", "wrong")
		require.ErrorIs(t, err, ErrUnauthorized)
	})
	t.Run("Неизвестный email", func(t *testing.T) {
		handler, _ := newTestAuth(t)
		_, err := handler.Login("nobody@techsolutions.com", "recruta123")
		require.ErrorIs(t, err, ErrUnauthorized)
	})
	t.Run("Пользователь заблокирован", func(t *testing.T) {
		handler, users := newTestAuth(t)
		users.users["user-1"].IsActive = false
		_, err := handler.Login("ana@techsolutions.com", "recruta123")
		require.ErrorIs(t, err, ErrUnauthorized)
	})
	t.Run("Компания заблокирована", func(t *testing.T) {
		handler, users := newTestAuth(t)
		users.users["user-1"].Company.IsActive = false
		_, err := handler.Login("ana@techsolutions.com", "recruta123")
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestRefreshAndMe(t *testing.T) {
	handler, users := newTestAuth(t)
	resp, err := handler.Login("ana@techsolutions.com", "recruta123")
	require.NoError(t, err)

	refreshed, err := handler.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.Token)

	_, err = handler.RefreshToken(resp.Token)
	require.Error(t, err)

	me, err := handler.Me("user-1")
	require.NoError(t, err)
	require.Equal(t, "Tech Solutions", me.CompanyName)
	require.Equal(t, string(models.RecruiterRole), me.Role)

	users.users["user-1"].Company.IsActive = false
	_, err = handler.RefreshToken(resp.RefreshToken)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = handler.Me("unknown")
	require.ErrorIs(t, err, ErrUnauthorized)
}
