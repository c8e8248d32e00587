package dto

type NavigateRequest struct {
	Action string `json:"action" validate:"required"`
}

type NavigateResponse struct {
	Screen string `json:"screen"`
}

// WarmHomeCacheMessage rides the in-process pub/sub: published at login,
// consumed by the background worker that prefetches the home screen's
// now-playing posters.
type WarmHomeCacheMessage struct {
	Username string `json:"username"`
}
