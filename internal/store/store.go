// Package store is the in-memory data layer standing in for a backend
// database. One Store is built at startup and handed to every service;
// nothing survives a process restart.
package store

import (
	"sync"

	"github.com/streamvault/platform-service/internal/model"
)

// AuthSession is a live authenticated session keyed by access token.
type AuthSession struct {
	User         model.User
	AccessToken  string
	RefreshToken string
}

// Store owns every mutable collection. All access goes through its methods;
// reads hand out copies so callers cannot corrupt invariants through shared
// references.
type Store struct {
	mu sync.Mutex

	users      map[string]model.User
	settings   map[string]model.UserSettings
	categories []model.Category
	media      []model.Media

	plans         []model.SubscriptionPlan
	subscriptions map[string]model.Subscription
	payments      []model.Payment

	uploads     map[string]model.MediaUpload
	moderations map[string]model.ModerationResult // keyed by upload ID

	sessions     map[string]model.StreamingSession
	history      []model.ViewingHistory
	resumePoints map[string]int // userID+"/"+mediaID -> seconds

	notifications map[string]model.Notification

	ratings   map[string]map[string]float64 // mediaID -> userID -> rating
	favorites map[string]map[string]model.Favorite
	playlists map[string]model.Playlist

	authSessions map[string]AuthSession // access token -> session
}

// New returns an empty store. Most callers want NewSeeded.
func New() *Store {
	return &Store{
		users:         map[string]model.User{},
		settings:      map[string]model.UserSettings{},
		subscriptions: map[string]model.Subscription{},
		uploads:       map[string]model.MediaUpload{},
		moderations:   map[string]model.ModerationResult{},
		sessions:      map[string]model.StreamingSession{},
		resumePoints:  map[string]int{},
		notifications: map[string]model.Notification{},
		ratings:       map[string]map[string]float64{},
		favorites:     map[string]map[string]model.Favorite{},
		playlists:     map[string]model.Playlist{},
		authSessions:  map[string]AuthSession{},
	}
}

func resumeKey(userID, mediaID string) string {
	return userID + "/" + mediaID
}
