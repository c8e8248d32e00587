package service

import (
	"context"

	"cinimagic-be/internal/dto"
	"cinimagic-be/internal/repository/memory"
	"cinimagic-be/pkg/navigation"
	"cinimagic-be/pkg/tmdb"
)

const nowPlayingHomeCount = 5

type IHomeService interface {
	GetHome(ctx context.Context, sessionID string) (*dto.HomeResponse, error)
}

type homeService struct {
	sessionRepo *memory.SessionRepository
	tmdbClient  *tmdb.Client
}

func NewHomeService(sessionRepo *memory.SessionRepository, tmdbClient *tmdb.Client) IHomeService {
	return &homeService{
		sessionRepo: sessionRepo,
		tmdbClient:  tmdbClient,
	}
}

// GetHome assembles the home screen: the user's last recommendation slate
// as "recently watched" plus the current now-playing list, both with
// posters attached.
func (hs *homeService) GetHome(ctx context.Context, sessionID string) (*dto.HomeResponse, error) {
	sess, err := loadSession(hs.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireScreen(sess, navigation.ScreenHome); err != nil {
		return nil, err
	}

	recentlyWatched := make([]dto.MovieDTO, 0, len(sess.LastRecommendations))
	for _, title := range sess.LastRecommendations {
		recentlyWatched = append(recentlyWatched, dto.MovieDTO{
			Title:     title,
			PosterURL: hs.tmdbClient.PosterFor(ctx, title),
		})
	}

	nowPlayingTitles := hs.tmdbClient.NowPlaying(ctx, nowPlayingHomeCount)
	nowPlaying := make([]dto.MovieDTO, 0, len(nowPlayingTitles))
	for _, title := range nowPlayingTitles {
		nowPlaying = append(nowPlaying, dto.MovieDTO{
			Title:     title,
			PosterURL: hs.tmdbClient.PosterFor(ctx, title),
		})
	}

	return &dto.HomeResponse{
		Username:        sess.Username,
		RecentlyWatched: recentlyWatched,
		NowPlaying:      nowPlaying,
	}, nil
}
