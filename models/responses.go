package models

// PostsResponse is the body of GET /posts.
type PostsResponse struct {
	Posts []Post `json:"posts"`
}

// ThemesResponse is the body of GET /themes.
type ThemesResponse struct {
	Themes []Theme `json:"themes"`
}

// HealthResponse is the body of GET /.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
