package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinimagic-be/internal/dto"
	"cinimagic-be/internal/pkg/apperrors"
	"cinimagic-be/internal/repository/memory"
	"cinimagic-be/pkg/navigation"
	"cinimagic-be/pkg/recommender"
	"cinimagic-be/pkg/store"
	"cinimagic-be/pkg/tmdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex(t *testing.T) *recommender.Index {
	t.Helper()
	ix, err := recommender.NewIndex(&recommender.Artifact{
		Titles: []string{"Heat", "Ronin", "Drive", "Collateral"},
		Matrix: [][]float64{
			{1.0, 0.9, 0.6, 0.8},
			{0.9, 1.0, 0.5, 0.7},
			{0.6, 0.5, 1.0, 0.4},
			{0.8, 0.7, 0.4, 1.0},
		},
	})
	require.NoError(t, err)
	return ix
}

func testTMDBClient(t *testing.T) *tmdb.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"poster_path":"/p.jpg","title":"Stub"}]}`))
	}))
	t.Cleanup(srv.Close)
	return tmdb.NewClientWithBaseURL("key", srv.URL, nopLogger{})
}

func recommendationsSession(repo *memory.SessionRepository) *store.Session {
	sess := store.NewSession("sid", "alice")
	sess.Screen = navigation.ScreenRecommendations
	repo.Save(sess)
	return sess
}

func TestRecommendUpdatesSessionSlate(t *testing.T) {
	sessionRepo := memory.NewSessionRepository()
	svc := NewRecommendationService(sessionRepo, testIndex(t), testTMDBClient(t))
	sess := recommendationsSession(sessionRepo)
	sess.LastRecommendations = []string{"A stale slate"}
	sessionRepo.Save(sess)

	res, err := svc.Recommend(context.Background(), "sid", &dto.RecommendRequest{Title: "Heat"})
	require.NoError(t, err)
	assert.Equal(t, "Heat", res.Query)

	titles := make([]string, 0, len(res.Movies))
	for _, m := range res.Movies {
		titles = append(titles, m.Title)
		assert.NotEmpty(t, m.PosterURL)
	}
	assert.Equal(t, []string{"Ronin", "Collateral", "Drive"}, titles)

	// The previous slate is replaced, not appended to.
	stored, _ := sessionRepo.Get("sid")
	assert.Equal(t, []string{"Ronin", "Collateral", "Drive"}, stored.LastRecommendations)
}

func TestRecommendUnknownTitle(t *testing.T) {
	sessionRepo := memory.NewSessionRepository()
	svc := NewRecommendationService(sessionRepo, testIndex(t), testTMDBClient(t))
	recommendationsSession(sessionRepo)

	_, err := svc.Recommend(context.Background(), "sid", &dto.RecommendRequest{Title: "Zardoz"})
	assert.True(t, apperrors.IsNotFound(err))

	stored, _ := sessionRepo.Get("sid")
	assert.Empty(t, stored.LastRecommendations)
}

func TestRecommendRequiresRecommendationsScreen(t *testing.T) {
	sessionRepo := memory.NewSessionRepository()
	svc := NewRecommendationService(sessionRepo, testIndex(t), testTMDBClient(t))
	sessionRepo.Save(store.NewSession("sid", "alice")) // still on HOME

	_, err := svc.Recommend(context.Background(), "sid", &dto.RecommendRequest{Title: "Heat"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestRecommendWithoutIndex(t *testing.T) {
	sessionRepo := memory.NewSessionRepository()
	svc := NewRecommendationService(sessionRepo, nil, testTMDBClient(t))
	recommendationsSession(sessionRepo)

	_, err := svc.Recommend(context.Background(), "sid", &dto.RecommendRequest{Title: "Heat"})
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestGetMoviesListsCatalog(t *testing.T) {
	sessionRepo := memory.NewSessionRepository()
	svc := NewRecommendationService(sessionRepo, testIndex(t), testTMDBClient(t))
	sessionRepo.Save(store.NewSession("sid", "alice"))

	res, err := svc.GetMovies(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, []string{"Heat", "Ronin", "Drive", "Collateral"}, res.Titles)
}

func TestGetMoviesUnknownSession(t *testing.T) {
	sessionRepo := memory.NewSessionRepository()
	svc := NewRecommendationService(sessionRepo, testIndex(t), testTMDBClient(t))

	_, err := svc.GetMovies(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}
