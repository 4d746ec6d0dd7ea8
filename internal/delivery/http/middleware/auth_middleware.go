package middleware

import (
	"context"
	"net/http"
	"strings"

	"odontocare/internal/infrastructure/cache"
	"odontocare/pkg/jwt"
	"odontocare/pkg/response"

	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	RolKey      contextKey = "rol"
	TokenIDKey  contextKey = "token_id"
	RawTokenKey contextKey = "raw_token"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

// NewAuthMiddleware builds the bearer-token middleware. redisClient may be
// nil: the appointment service validates signatures only, the revocation
// store lives with the identity service.
func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if m.redisClient != nil {
			tokenKey := cache.AccessTokenKey(claims.UserID, claims.TokenID)
			exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
			if err != nil {
				response.InternalServerError(w, "Failed to validate token")
				return
			}
			if exists == 0 {
				response.Unauthorized(w, "Token has been revoked")
				return
			}
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, RolKey, claims.Rol)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
		// The raw token is kept so the appointment service can forward it
		// on verify calls.
		ctx = context.WithValue(ctx, RawTokenKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts the authenticated user's id from context.
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

// GetUsernameFromContext extracts the username from context.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetRolFromContext extracts the role from context.
func GetRolFromContext(ctx context.Context) (string, bool) {
	rol, ok := ctx.Value(RolKey).(string)
	return rol, ok
}

// GetTokenIDFromContext extracts the token id from context.
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetRawTokenFromContext extracts the bearer token as presented.
func GetRawTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(RawTokenKey).(string)
	return token, ok
}
