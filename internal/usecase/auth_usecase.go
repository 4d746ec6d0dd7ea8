package usecase

import (
	"context"
	"errors"
	"time"

	"odontocare/internal/converter"
	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/entity"
	"odontocare/internal/domain/repository"
	"odontocare/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenStore tracks issued access tokens so they can be revoked on logout.
type TokenStore interface {
	Store(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error
	Revoke(ctx context.Context, userID uint, tokenID string) error
}

var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUserNotFound          = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userID uint, tokenID string) error
	// ResolveUser maps a token's user id back to the account; used by the
	// verify/token endpoint to report role.
	ResolveUser(ctx context.Context, userID uint) (*entity.User, error)
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	tokenStore TokenStore
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	tokenStore TokenStore,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	rol := req.Rol
	if rol == "" {
		rol = entity.RolPaciente
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Rol:      rol,
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, tokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Username, user.Rol)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	// Register the token so logout can revoke it before expiry.
	if err := u.tokenStore.Store(ctx, user.ID, tokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
		Usuario:     *converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uint, tokenID string) error {
	if err := u.tokenStore.Revoke(ctx, userID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) ResolveUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
