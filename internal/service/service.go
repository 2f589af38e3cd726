package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dwsetiawan/facility-auth/internal/entity"
	"github.com/dwsetiawan/facility-auth/pkg/config"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user entity.User) (entity.User, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	UserByID(ctx context.Context, id int64) (entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	RoleExists(ctx context.Context, roleID int64) (bool, error)
}

type GrantRepository interface {
	GrantsByRole(ctx context.Context, roleID int64) ([]entity.Grant, error)
}

type SessionRepository interface {
	SaveSession(ctx context.Context, jti uuid.UUID, userID int64, expiresAt time.Time) error
	FindSession(ctx context.Context, jti uuid.UUID) error
	DeleteSession(ctx context.Context, jti uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID int64) error
	CleanExpired(ctx context.Context) error
}

type NotificationService interface {
	SendUserRegistered(ctx context.Context, email, name string)
}

type Service struct {
	cfg          config.Config
	userRepo     UserRepository
	grantRepo    GrantRepository
	sessionRepo  SessionRepository
	notification NotificationService
}

func NewService(
	cfg config.Config,
	userRepo UserRepository,
	grantRepo GrantRepository,
	sessionRepo SessionRepository,
	notification NotificationService,
) *Service {
	return &Service{
		cfg:          cfg,
		userRepo:     userRepo,
		grantRepo:    grantRepo,
		sessionRepo:  sessionRepo,
		notification: notification,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	RoleID   int64
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (entity.User, error) {
	exists, err := s.userRepo.EmailExists(ctx, in.Email)
	if err != nil {
		return entity.User{}, fmt.Errorf("check email: %w", err)
	}

	if exists {
		slog.WarnContext(ctx, "registration rejected, email taken", "email", in.Email)
		return entity.User{}, entity.ErrAlreadyExists
	}

	roleOK, err := s.userRepo.RoleExists(ctx, in.RoleID)
	if err != nil {
		return entity.User{}, fmt.Errorf("check role: %w", err)
	}

	if !roleOK {
		slog.WarnContext(ctx, "registration rejected, unknown role", "role", in.RoleID)
		return entity.User{}, entity.ErrRoleNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(ctx, entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		RoleID:   in.RoleID,
	})
	if err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, "user registered", "userID", user.ID, "email", user.Email)

	if s.notification != nil {
		s.notification.SendUserRegistered(ctx, user.Email, user.Name)
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*entity.LoginResult, error) {
	user, err := s.userRepo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, "login failed, unknown email", "email", email)
			return nil, entity.ErrInvalidCredentials
		}

		return nil, fmt.Errorf("get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		slog.WarnContext(ctx, "login failed, wrong password", "email", email)
		return nil, entity.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		slog.ErrorContext(ctx, "token issuance failed", "email", email, "error", err.Error())
		return nil, fmt.Errorf("%w: %w", entity.ErrTokenIssue, err)
	}

	grants, err := s.grantRepo.GrantsByRole(ctx, user.RoleID)
	if err != nil {
		return nil, fmt.Errorf("get grants: %w", err)
	}

	slog.InfoContext(ctx, "user logged in", "userID", user.ID, "role", user.RoleID)

	return &entity.LoginResult{
		Token:  token,
		User:   user,
		Grants: grants,
	}, nil
}

func (s *Service) Logout(ctx context.Context, tokenStr string) error {
	claims, err := s.parseToken(tokenStr)
	if err != nil {
		return fmt.Errorf("parse token: %w", err)
	}

	jti, err := uuid.FromString(claims.ID)
	if err != nil {
		return fmt.Errorf("token missing JTI: %w", entity.ErrInvalidToken)
	}

	if err := s.sessionRepo.DeleteSession(ctx, jti); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("session already invalidated: %w", entity.ErrTokenRevoked)
		}

		return fmt.Errorf("delete session: %w", err)
	}

	slog.InfoContext(ctx, "user logged out", "userID", claims.User.ID)

	return nil
}

func (s *Service) CurrentUser(ctx context.Context, tokenStr string) (entity.User, error) {
	claims, err := s.parseToken(tokenStr)
	if err != nil {
		return entity.User{}, fmt.Errorf("parse token: %w", err)
	}

	jti, err := uuid.FromString(claims.ID)
	if err != nil {
		return entity.User{}, fmt.Errorf("token missing JTI: %w", entity.ErrInvalidToken)
	}

	if err := s.sessionRepo.FindSession(ctx, jti); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, entity.ErrTokenRevoked
		}

		return entity.User{}, fmt.Errorf("find session: %w", err)
	}

	user, err := s.userRepo.UserByID(ctx, claims.User.ID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, entity.ErrTokenRevoked
		}

		return entity.User{}, fmt.Errorf("get user: %w", err)
	}

	if user.IsDeleted {
		slog.WarnContext(ctx, "live session for a deleted user", "userID", user.ID)
		return entity.User{}, entity.ErrUserDeleted
	}

	return user, nil
}

// CleanExpiredSessions backs the periodic cleanup job in main.
func (s *Service) CleanExpiredSessions(ctx context.Context) error {
	return s.sessionRepo.CleanExpired(ctx)
}

func (s *Service) issueToken(ctx context.Context, user entity.User) (string, error) {
	pKey, err := base64.StdEncoding.DecodeString(s.cfg.JWT.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("decode private key: %w", err)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pKey)
	if err != nil {
		return "", fmt.Errorf("parse private key: %w", err)
	}

	jti := uuid.Must(uuid.NewV4())
	expiresAt := time.Now().Add(s.cfg.JWT.TokenExpiry)

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256,
		entity.UserJwtClaims{
			User: entity.UserJwtInfo{
				ID:    user.ID,
				Email: user.Email,
				Role:  user.RoleID,
			},
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        jti.String(),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		}).SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.sessionRepo.SaveSession(ctx, jti, user.ID, expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *Service) parseToken(tokenStr string) (*entity.UserJwtClaims, error) {
	pubKey, err := base64.StdEncoding.DecodeString(s.cfg.JWT.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(pubKey)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	var userClaims entity.UserJwtClaims

	token, err := jwt.ParseWithClaims(tokenStr, &userClaims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token expired: %w", entity.ErrTokenExpired)
		}

		return nil, fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", entity.ErrInvalidToken)
	}

	return &userClaims, nil
}
