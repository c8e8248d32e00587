package service

import (
	"context"
	"errors"
	"time"

	"cinimagic-be/internal/config"
	"cinimagic-be/internal/dto"
	"cinimagic-be/internal/entity"
	"cinimagic-be/internal/pkg/apperrors"
	"cinimagic-be/internal/pkg/logger"
	"cinimagic-be/internal/repository/memory"
	"cinimagic-be/internal/repository/specification"
	"cinimagic-be/internal/repository/unitofwork"
	"cinimagic-be/pkg/events"
	"cinimagic-be/pkg/navigation"
	pktNats "cinimagic-be/pkg/nats"
	"cinimagic-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidCredentials covers both a missing user and a wrong password;
// the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionRepo    *memory.SessionRepository
	machine        *navigation.Machine
	warmPublisher  IPublisherService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
	machine *navigation.Machine,
	warmPublisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		sessionRepo:    sessionRepo,
		machine:        machine,
		warmPublisher:  warmPublisher,
		eventPublisher: eventPublisher,
		logger:         sysLogger,
	}
}

// Signup inserts a new credential record. The username must be absent; on
// any failure the store is left untouched.
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Walk the pre-auth screens through the machine, same as Login.
	screen := s.machine.Initial()
	screen, err := s.machine.Next(screen, navigation.ActionChooseSignup)
	if err != nil {
		return nil, err
	}

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// A rejected signup stays on the signup screen.
		if _, err := s.machine.Next(screen, navigation.ActionSignupFailed); err != nil {
			return nil, err
		}
		return nil, &apperrors.ValidationError{Message: "username already exists"}
	}

	user := &entity.User{
		Id:        uuid.New(),
		Username:  req.Username,
		Password:  req.Password,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Success routes back to the login screen.
	if _, err := s.machine.Next(screen, navigation.ActionSignupSucceeded); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "USER_SIGNUP", map[string]interface{}{"user_id": user.Id, "username": user.Username})

	return &dto.SignupResponse{Id: user.Id, Username: user.Username}, nil
}

// Login compares credentials verbatim (case-sensitive, no hashing). On
// success it materializes the server session on the home screen with a
// greeted transcript and issues the access token. On failure nothing
// changes.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user == nil || user.Password != req.Password {
		return nil, ErrInvalidCredentials
	}

	// Walk the pre-auth screens through the machine so guard semantics
	// stay in one place.
	screen := s.machine.Initial()
	if screen, err = s.machine.Next(screen, navigation.ActionChooseLogin); err != nil {
		return nil, err
	}
	if screen, err = s.machine.Next(screen, navigation.ActionLoginSucceeded); err != nil {
		return nil, err
	}
	_ = screen // ScreenHome; NewSession starts there

	sess := store.NewSession(uuid.New().String(), user.Username)
	s.sessionRepo.Save(sess)

	claims := jwt.MapClaims{
		"session_id": sess.ID,
		"username":   user.Username,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(config.JWTSecret()))
	if err != nil {
		return nil, err
	}

	if s.warmPublisher != nil {
		if err := s.warmPublisher.PublishWarmHomeCache(ctx, user.Username); err != nil {
			s.logger.Warn("auth", "failed to publish home cache warm-up", map[string]interface{}{"error": err.Error()})
		}
	}

	s.publishEvent(ctx, "USER_LOGIN", map[string]interface{}{"user_id": user.Id, "username": user.Username})

	return &dto.LoginResponse{
		AccessToken: signedToken,
		Screen:      string(sess.Screen),
		User: dto.UserDTO{
			Id:       user.Id,
			Username: user.Username,
		},
	}, nil
}

// Logout resets the session to anonymous defaults and drops it. Logging
// out an already-gone session is a no-op.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	sess, found := s.sessionRepo.Get(sessionID)
	if !found {
		return nil
	}

	if _, err := s.machine.Next(sess.Screen, navigation.ActionLogout); err != nil {
		return err
	}

	username := sess.Username
	sess.Reset()
	s.sessionRepo.Delete(sessionID)

	s.publishEvent(ctx, "USER_LOGOUT", map[string]interface{}{"username": username})

	return nil
}

func (s *authService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("auth", "failed to publish event", map[string]interface{}{"event": eventType, "error": err.Error()})
	}
}
