package user

import (
	"context"
	"testing"

	"ecobytes-backend/domain"
	"ecobytes-backend/entities"
	"ecobytes-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := "file:user_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))

	return NewUserService(NewUserRepository(db), jwt.NewJWTService()), db
}

func TestRegisterAndLogin(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, domain.RegisterRequest{
		Name:     "Andi",
		Email:    "andi@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, res.Role)

	// The password never hits the database in plain text.
	var stored entities.User
	require.NoError(t, db.Where("email = ?", "andi@example.com").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.Password)

	login, err := service.Login(ctx, domain.LoginRequest{Email: "andi@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, domain.RoleUser, login.Role)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "andi@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, domain.RegisterRequest{
		Name: "Andi", Email: "andi@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, domain.RegisterRequest{
		Name: "Impostor", Email: "andi@example.com", Password: "other",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestRegisterCharityPrincipal(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	orgID := uuid.NewString()
	res, err := service.Register(ctx, domain.RegisterRequest{
		Name:           "Charity Admin",
		Email:          "charity@example.com",
		Password:       "secret123",
		Role:           domain.RoleCharity,
		OrganizationID: orgID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCharity, res.Role)

	me, err := service.Me(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, orgID, me.OrganizationID)
}

func TestUpdateUser(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	res, err := service.Register(ctx, domain.RegisterRequest{
		Name: "Andi", Email: "andi@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, service.UpdateUser(ctx, domain.UpdateUserRequest{Name: "Andi Wijaya", Password: "newpass456"}, res.ID))

	me, err := service.Me(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Andi Wijaya", me.Name)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "andi@example.com", Password: "newpass456"})
	require.NoError(t, err)
}
