package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"odontocare/config"
	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/entity"
	"odontocare/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: time.Hour,
	})
}

func TestRegister_DefaultsRolToPaciente(t *testing.T) {
	var created *entity.User
	userRepo := &MockUserRepository{
		CreateFunc: func(db *gorm.DB, user *entity.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	uc := NewAuthUsecase(testDB(), testLogger(), userRepo, testJWTService(), nil)

	resp, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Username: "maria",
		Password: "secreta123",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.RolPaciente, resp.Rol)
	assert.Equal(t, "maria", resp.Username)
	// Stored password must be a bcrypt hash, never the plaintext.
	assert.NotEqual(t, "secreta123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secreta123")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := &MockUserRepository{
		CreateFunc: func(db *gorm.DB, user *entity.User) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}
		},
	}
	uc := NewAuthUsecase(testDB(), testLogger(), userRepo, testJWTService(), nil)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Username: "maria",
		Password: "secreta123",
		Rol:      entity.RolAdmin,
	})

	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo := &MockUserRepository{
		FindByUsernameFunc: func(db *gorm.DB, username string) (*entity.User, error) {
			return &entity.User{ID: 5, Username: username, Password: string(hashed), Rol: entity.RolAdmin}, nil
		},
	}
	var storedUserID uint
	var storedTokenID string
	tokenStore := &MockTokenStore{
		StoreFunc: func(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error {
			storedUserID = userID
			storedTokenID = tokenID
			return nil
		},
	}
	jwtService := testJWTService()
	uc := NewAuthUsecase(testDB(), testLogger(), userRepo, jwtService, tokenStore)

	resp, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "maria", Password: "secreta123"})

	assert.NoError(t, err)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "maria", resp.Usuario.Username)
	assert.Equal(t, entity.RolAdmin, resp.Usuario.Rol)

	// The issued token must carry the claims and be registered for revocation.
	claims, err := jwtService.ValidateToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(5), claims.UserID)
	assert.Equal(t, uint(5), storedUserID)
	assert.Equal(t, claims.TokenID, storedTokenID)
}

func TestLogin_TokenStoreFailureRejectsLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo := &MockUserRepository{
		FindByUsernameFunc: func(db *gorm.DB, username string) (*entity.User, error) {
			return &entity.User{ID: 5, Username: username, Password: string(hashed), Rol: entity.RolPaciente}, nil
		},
	}
	tokenStore := &MockTokenStore{
		StoreFunc: func(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error {
			return errors.New("connection refused")
		},
	}
	uc := NewAuthUsecase(testDB(), testLogger(), userRepo, testJWTService(), tokenStore)

	_, err = uc.Login(context.Background(), &dto.LoginRequest{Username: "maria", Password: "secreta123"})

	assert.Error(t, err)
}

func TestLogout_RevokesToken(t *testing.T) {
	var revokedUserID uint
	var revokedTokenID string
	tokenStore := &MockTokenStore{
		RevokeFunc: func(ctx context.Context, userID uint, tokenID string) error {
			revokedUserID = userID
			revokedTokenID = tokenID
			return nil
		},
	}
	uc := NewAuthUsecase(testDB(), testLogger(), &MockUserRepository{}, testJWTService(), tokenStore)

	err := uc.Logout(context.Background(), 5, "abc-123")

	assert.NoError(t, err)
	assert.Equal(t, uint(5), revokedUserID)
	assert.Equal(t, "abc-123", revokedTokenID)
}

func TestLogin_UnknownUsername(t *testing.T) {
	userRepo := &MockUserRepository{
		FindByUsernameFunc: func(db *gorm.DB, username string) (*entity.User, error) {
			return nil, nil
		},
	}
	uc := NewAuthUsecase(testDB(), testLogger(), userRepo, testJWTService(), nil)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correcta"), bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo := &MockUserRepository{
		FindByUsernameFunc: func(db *gorm.DB, username string) (*entity.User, error) {
			return &entity.User{ID: 1, Username: username, Password: string(hashed), Rol: entity.RolAdmin}, nil
		},
	}
	uc := NewAuthUsecase(testDB(), testLogger(), userRepo, testJWTService(), nil)

	_, err = uc.Login(context.Background(), &dto.LoginRequest{Username: "maria", Password: "incorrecta"})

	// Same error for unknown user and wrong password; the response must not
	// reveal which one failed.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveUser_NotFound(t *testing.T) {
	userRepo := &MockUserRepository{
		FindByIDFunc: func(db *gorm.DB, id uint) (*entity.User, error) {
			return nil, nil
		},
	}
	uc := NewAuthUsecase(testDB(), testLogger(), userRepo, testJWTService(), nil)

	_, err := uc.ResolveUser(context.Background(), 9)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
