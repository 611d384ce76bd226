// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"time"

	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/repository/memory"
	"project-nexus-be/internal/repository/specification"
	"project-nexus-be/internal/repository/unitofwork"
	"project-nexus-be/pkg/events"
	"project-nexus-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("account locked after too many failed attempts")
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
	publisher  IPublisherService
	jwtSecret  string
	maxRetries int
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	publisher IPublisherService,
	jwtSecret string,
	maxRetries int,
) IAuthService {
	if maxRetries <= 0 {
		maxRetries = 5
	}
	return &authService{
		uowFactory: uowFactory,
		sessions:   sessions,
		publisher:  publisher,
		jwtSecret:  jwtSecret,
		maxRetries: maxRetries,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("username already taken")
	}
	existing, err = uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         entity.UserRoleUser,
		Preferences:  map[string]interface{}{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return userToResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if recErr := uow.UserRepository().RecordFailedAttempt(ctx, user.Id); recErr != nil {
			return nil, recErr
		}
		// The counter was just bumped, so compare against attempts before this one.
		if user.FailedAttempts+1 >= s.maxRetries {
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}

	// A correct password clears the failed-attempt counter.
	if err := uow.UserRepository().RecordLogin(ctx, user.Id); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	// One live session per user: a repeat login picks up where the
	// dashboard left off instead of resetting sliders and cart.
	session, found := s.sessions.GetByUser(user.Id.String())
	if !found {
		session = store.NewShopperSession(uuid.NewString(), user.Id.String(), time.Now())
	}
	session.Touch(time.Now())
	s.sessions.Save(session)

	_ = s.publisher.PublishInteraction(ctx, events.NewInteraction(events.TypeUserLogin, user.Id.String(), nil))

	now := time.Now()
	user.LastLogin = &now
	return &dto.AuthResponse{
		Token:     token,
		SessionId: session.ID,
		User:      *userToResponse(user),
	}, nil
}

func (s *authService) Logout(_ context.Context, sessionID string) error {
	s.sessions.Delete(sessionID)
	return nil
}

func (s *authService) generateToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func userToResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        user.Id,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}
