package service

import (
	"context"
	"fmt"

	"cinimagic-be/internal/dto"
	"cinimagic-be/internal/pkg/apperrors"
	"cinimagic-be/internal/repository/memory"
	"cinimagic-be/pkg/navigation"
	"cinimagic-be/pkg/store"
)

type INavigationService interface {
	Navigate(ctx context.Context, sessionID string, req *dto.NavigateRequest) (*dto.NavigateResponse, error)
}

type navigationService struct {
	sessionRepo *memory.SessionRepository
	machine     *navigation.Machine
}

func NewNavigationService(sessionRepo *memory.SessionRepository, machine *navigation.Machine) INavigationService {
	return &navigationService{
		sessionRepo: sessionRepo,
		machine:     machine,
	}
}

// Navigate runs one action through the transition table and persists the
// resulting screen. Rejected actions leave the session untouched.
func (s *navigationService) Navigate(ctx context.Context, sessionID string, req *dto.NavigateRequest) (*dto.NavigateResponse, error) {
	sess, err := loadSession(s.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := s.machine.Next(sess.Screen, navigation.Action(req.Action))
	if err != nil {
		return nil, err
	}

	sess.Screen = next
	s.sessionRepo.Save(sess)

	return &dto.NavigateResponse{Screen: string(next)}, nil
}

// loadSession resolves the caller's server-side session. A token that
// outlives its session (store TTL, restart) reads as not found.
func loadSession(repo *memory.SessionRepository, sessionID string) (*store.Session, error) {
	sess, found := repo.Get(sessionID)
	if !found {
		return nil, &apperrors.NotFoundError{Resource: "session", Key: sessionID}
	}
	return sess, nil
}

// requireScreen is the gate in front of screen-scoped operations: the
// session must already have navigated to the matching view.
func requireScreen(sess *store.Session, screen navigation.Screen) error {
	if sess.Screen != screen {
		return &apperrors.ValidationError{Message: fmt.Sprintf("this action requires the %s screen", screen)}
	}
	return nil
}
