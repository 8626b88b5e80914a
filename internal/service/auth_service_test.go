package service

import (
	"cs_hub_backend/internal/config"
	"cs_hub_backend/internal/model"
	"cs_hub_backend/internal/repository"
	"cs_hub_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "day-la-secret-chi-dung-trong-test-1234"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	user := &model.User{
		Name:     "Nguyễn Văn A",
		Email:    "a@sinhvien.edu.vn",
		Password: "matkhau123",
	}
	require.NoError(t, svc.Register(user))

	// Mật khẩu phải được băm trước khi lưu
	var stored model.User
	require.NoError(t, db.Where("email = ?", "a@sinhvien.edu.vn").First(&stored).Error)
	assert.NotEqual(t, "matkhau123", stored.Password)

	token, err := svc.Login("a@sinhvien.edu.vn", "matkhau123")
	require.NoError(t, err)
	claims, err := util.ParseJWT(token, "day-la-secret-chi-dung-trong-test-1234")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, "a@sinhvien.edu.vn", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	require.NoError(t, svc.Register(&model.User{Name: "A", Email: "a@x.vn", Password: "p1234567"}))
	err := svc.Register(&model.User{Name: "B", Email: "a@x.vn", Password: "p7654321"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	require.NoError(t, svc.Register(&model.User{Name: "A", Email: "a@x.vn", Password: "dungmatkhau"}))

	_, err := svc.Login("a@x.vn", "saimatkhau")
	assert.Error(t, err)
	_, err = svc.Login("khongco@x.vn", "dungmatkhau")
	assert.Error(t, err)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	require.NoError(t, svc.Register(&model.User{Name: "A", Email: "a@x.vn", Password: "matkhau123"}))
	require.NoError(t, db.Model(&model.User{}).Where("email = ?", "a@x.vn").Update("disabled", true).Error)

	_, err := svc.Login("a@x.vn", "matkhau123")
	assert.Error(t, err)
}
