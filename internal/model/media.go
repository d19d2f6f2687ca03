package model

import "time"

// MediaType enumerates catalog content kinds.
type MediaType string

const (
	MediaTypeSong      MediaType = "song"
	MediaTypeMovie     MediaType = "movie"
	MediaTypePodcast   MediaType = "podcast"
	MediaTypeAudiobook MediaType = "audiobook"
)

// Media is a catalog item.
type Media struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        MediaType      `json:"type"`
	Artist      string         `json:"artist,omitempty"`
	Director    string         `json:"director,omitempty"`
	Genre       []string       `json:"genre"`
	Duration    int            `json:"duration"` // seconds
	ReleaseDate time.Time      `json:"release_date"`
	Thumbnail   string         `json:"thumbnail_url"`
	Rating      float64        `json:"rating"` // 0-5, mean of recorded ratings
	TotalViews  int64          `json:"total_views"`
	IsExplicit  bool           `json:"is_explicit"`
	IsApproved  bool           `json:"is_approved"`
	UploadedBy  string         `json:"uploaded_by"`
	UploadedAt  time.Time      `json:"uploaded_at"`
	Quality     []MediaQuality `json:"quality"`
}

// MediaQuality is one encoded variant of a media item.
type MediaQuality struct {
	Resolution string `json:"resolution"` // "480p", "720p", ...
	Format     string `json:"format"`    // "mp4", "webm", ...
	Bitrate    string `json:"bitrate"`
	FileSize   int64  `json:"file_size"`
	URL        string `json:"url"`
}

// Category groups catalog items for browsing.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	CoverImage  string `json:"cover_image,omitempty"`
}

// Favorite links a user to a media item they favorited.
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MediaID   string    `json:"media_id"`
	MediaType MediaType `json:"media_type"`
	CreatedAt time.Time `json:"created_at"`
}

// Playlist is an ordered, user-owned collection of media.
// TotalDuration tracks the sum of member durations and is adjusted on every
// add and remove.
type Playlist struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IsPublic      bool      `json:"is_public"`
	MediaIDs      []string  `json:"media_ids"`
	TotalDuration int       `json:"total_duration"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MediaSortField selects the list ordering; all orders are descending.
type MediaSortField string

const (
	SortByDate   MediaSortField = "date"
	SortByViews  MediaSortField = "views"
	SortByRating MediaSortField = "rating"
)

// MediaListRequest is the query for GET /media.
type MediaListRequest struct {
	Page     int            `form:"page"`
	PageSize int            `form:"page_size"`
	Genre    string         `form:"genre"`
	Search   string         `form:"search"`
	SortBy   MediaSortField `form:"sort_by"`
	Type     MediaType      `form:"type"`
}

// MediaListResponse is the paginated catalog page.
type MediaListResponse struct {
	Data       []Media    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// RatingRange bounds a search by displayed rating, inclusive.
type RatingRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchRequest is the body for POST /media/search.
type SearchRequest struct {
	Query    string       `json:"query" binding:"required"`
	Type     MediaType    `json:"type"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Genre    []string     `json:"genre"`
	Rating   *RatingRange `json:"rating"`
}

// SearchResponse reports matches plus the observed query duration.
type SearchResponse struct {
	Results       []Media    `json:"results"`
	Pagination    Pagination `json:"pagination"`
	ExecutionTime int64      `json:"execution_time"` // milliseconds
}

// CreateMediaRequest is the body for POST /media.
type CreateMediaRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Type        MediaType `json:"type" binding:"required"`
	Artist      string    `json:"artist"`
	Director    string    `json:"director"`
	Genre       []string  `json:"genre"`
	Duration    int       `json:"duration" binding:"min=0"`
	ReleaseDate time.Time `json:"release_date"`
	IsExplicit  bool      `json:"is_explicit"`
}

// UpdateMediaRequest carries mutable media fields; nil pointers are left
// unchanged.
type UpdateMediaRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Genre       []string `json:"genre"`
	IsExplicit  *bool    `json:"is_explicit"`
}

// RateMediaRequest is the body for POST /media/:id/rate.
type RateMediaRequest struct {
	Rating float64 `json:"rating"`
}

// CreatePlaylistRequest is the body for POST /playlists.
type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
