package dto

type RecommendRequest struct {
	Title string `json:"title" validate:"required"`
}

type MovieDTO struct {
	Title     string `json:"title"`
	PosterURL string `json:"poster_url"`
}

type RecommendResponse struct {
	Query  string     `json:"query"`
	Movies []MovieDTO `json:"movies"`
}

type GetMoviesResponse struct {
	Titles []string `json:"titles"`
}

type HomeResponse struct {
	Username        string     `json:"username"`
	RecentlyWatched []MovieDTO `json:"recently_watched"`
	NowPlaying      []MovieDTO `json:"now_playing"`
}
