package service

import (
	"context"
	"errors"

	"cinimagic-be/internal/dto"
	"cinimagic-be/internal/pkg/apperrors"
	"cinimagic-be/internal/repository/memory"
	"cinimagic-be/pkg/navigation"
	"cinimagic-be/pkg/recommender"
	"cinimagic-be/pkg/tmdb"
)

// errIndexNotLoaded is surfaced when the similarity artifact failed to
// load at startup and the service came up in degraded mode.
var errIndexNotLoaded = errors.New("similarity artifact not loaded")

type IRecommendationService interface {
	GetMovies(ctx context.Context, sessionID string) (*dto.GetMoviesResponse, error)
	Recommend(ctx context.Context, sessionID string, request *dto.RecommendRequest) (*dto.RecommendResponse, error)
}

type recommendationService struct {
	sessionRepo *memory.SessionRepository
	index       *recommender.Index
	tmdbClient  *tmdb.Client
}

func NewRecommendationService(
	sessionRepo *memory.SessionRepository,
	index *recommender.Index,
	tmdbClient *tmdb.Client,
) IRecommendationService {
	return &recommendationService{
		sessionRepo: sessionRepo,
		index:       index,
		tmdbClient:  tmdbClient,
	}
}

// GetMovies lists every title the similarity index knows, for the
// recommendation screen's picker.
func (rs *recommendationService) GetMovies(ctx context.Context, sessionID string) (*dto.GetMoviesResponse, error) {
	if _, err := loadSession(rs.sessionRepo, sessionID); err != nil {
		return nil, err
	}
	if rs.index == nil {
		return nil, &apperrors.ConfigurationError{Component: "recommender index", Err: errIndexNotLoaded}
	}

	return &dto.GetMoviesResponse{Titles: rs.index.Titles()}, nil
}

// Recommend looks up the nearest neighbours of the picked title and
// replaces the session's last-recommendations slate with the new result.
func (rs *recommendationService) Recommend(ctx context.Context, sessionID string, request *dto.RecommendRequest) (*dto.RecommendResponse, error) {
	sess, err := loadSession(rs.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireScreen(sess, navigation.ScreenRecommendations); err != nil {
		return nil, err
	}
	if rs.index == nil {
		return nil, &apperrors.ConfigurationError{Component: "recommender index", Err: errIndexNotLoaded}
	}

	titles, err := rs.index.Recommend(request.Title, recommender.DefaultK)
	if err != nil {
		return nil, err
	}

	sess.LastRecommendations = append([]string(nil), titles...)
	rs.sessionRepo.Save(sess)

	movies := make([]dto.MovieDTO, 0, len(titles))
	for _, title := range titles {
		movies = append(movies, dto.MovieDTO{
			Title:     title,
			PosterURL: rs.tmdbClient.PosterFor(ctx, title),
		})
	}

	return &dto.RecommendResponse{
		Query:  request.Title,
		Movies: movies,
	}, nil
}
