package store

import (
	"time"

	"github.com/streamvault/platform-service/internal/model"
)

// NewSeeded builds a store preloaded with the demo fixtures: three users,
// a small catalog, categories, the three subscription plans, and one user
// mid-journey (subscribed, an upload in flight, an unread notification).
func NewSeeded() *Store {
	s := New()
	for _, u := range SeedUsers() {
		s.users[u.ID] = u
	}
	s.categories = SeedCategories()
	s.media = SeedMedia()
	s.plans = SeedPlans()
	for _, sub := range SeedSubscriptions() {
		s.subscriptions[sub.ID] = sub
	}
	s.payments = SeedPayments()
	for _, up := range SeedUploads() {
		s.uploads[up.ID] = up
	}
	for _, n := range SeedNotifications() {
		s.notifications[n.ID] = n
	}
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedUsers returns the fixture accounts.
func SeedUsers() []model.User {
	return []model.User{
		{
			ID:            "user-001",
			Email:         "john.doe@example.com",
			Name:          "John Doe",
			PhoneNumber:   "+1-555-0101",
			ProfileImage:  "https://api.dicebear.com/7.x/avataaars/svg?seed=John&mode=light",
			Role:          model.RoleUser,
			Status:        model.UserStatusActive,
			EmailVerified: true,
			PhoneVerified: true,
			CreatedAt:     date(2024, 1, 1),
			UpdatedAt:     date(2024, 2, 1),
		},
		{
			ID:            "user-002",
			Email:         "jane.smith@example.com",
			Name:          "Jane Smith",
			PhoneNumber:   "+1-555-0102",
			ProfileImage:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Jane&mode=light",
			Role:          model.RoleAdmin,
			Status:        model.UserStatusActive,
			EmailVerified: true,
			PhoneVerified: true,
			CreatedAt:     date(2023, 12, 1),
			UpdatedAt:     date(2024, 2, 5),
		},
		{
			ID:        "user-003",
			Email:     "bob.johnson@example.com",
			Name:      "Bob Johnson",
			Role:      model.RoleUser,
			Status:    model.UserStatusActive,
			CreatedAt: date(2024, 1, 15),
			UpdatedAt: date(2024, 2, 1),
		},
	}
}

// SeedCategories returns the browsing categories.
func SeedCategories() []model.Category {
	return []model.Category{
		{ID: "cat-001", Name: "Music", Description: "Songs and albums across every genre"},
		{ID: "cat-002", Name: "Movies", Description: "Feature films and documentaries"},
		{ID: "cat-003", Name: "Podcasts", Description: "Talk shows and serialized audio"},
		{ID: "cat-004", Name: "Audiobooks", Description: "Narrated fiction and non-fiction"},
	}
}

// SeedMedia returns the fixture catalog.
func SeedMedia() []model.Media {
	q720 := model.MediaQuality{Resolution: "720p", Format: "mp4", Bitrate: "2500kbps", FileSize: 850_000_000, URL: "https://cdn.streamvault.dev/m/720.mp4"}
	q1080 := model.MediaQuality{Resolution: "1080p", Format: "mp4", Bitrate: "5000kbps", FileSize: 1_700_000_000, URL: "https://cdn.streamvault.dev/m/1080.mp4"}
	return []model.Media{
		{
			ID: "media-001", Title: "Midnight Drive", Description: "Synthwave single from the Neon Nights EP",
			Type: model.MediaTypeSong, Artist: "Violet Circuit", Genre: []string{"electronic", "synthwave"},
			Duration: 245, ReleaseDate: date(2023, 6, 12), Rating: 4.5, TotalViews: 182_000,
			IsApproved: true, UploadedBy: "user-002", UploadedAt: date(2023, 6, 14),
			Quality: []model.MediaQuality{q720},
		},
		{
			ID: "media-002", Title: "The Last Lighthouse", Description: "A keeper confronts a storm that never ends",
			Type: model.MediaTypeMovie, Director: "Mara Ellison", Genre: []string{"drama", "thriller"},
			Duration: 7260, ReleaseDate: date(2022, 11, 4), Rating: 4.2, TotalViews: 96_000,
			IsApproved: true, UploadedBy: "user-002", UploadedAt: date(2022, 11, 10),
			Quality: []model.MediaQuality{q720, q1080},
		},
		{
			ID: "media-003", Title: "Signals & Noise", Description: "Weekly conversations on engineering culture",
			Type: model.MediaTypePodcast, Artist: "Dana Reyes", Genre: []string{"technology", "talk"},
			Duration: 3120, ReleaseDate: date(2024, 1, 8), Rating: 4.8, TotalViews: 45_500,
			IsApproved: true, UploadedBy: "user-001", UploadedAt: date(2024, 1, 8),
			Quality: []model.MediaQuality{q720},
		},
		{
			ID: "media-004", Title: "Orbital Gardens", Description: "Hard sci-fi audiobook, unabridged",
			Type: model.MediaTypeAudiobook, Artist: "K. Tanaka", Genre: []string{"science-fiction"},
			Duration: 32_400, ReleaseDate: date(2023, 3, 20), Rating: 4.0, TotalViews: 12_300,
			IsApproved: true, UploadedBy: "user-002", UploadedAt: date(2023, 3, 25),
			Quality: []model.MediaQuality{q720},
		},
		{
			ID: "media-005", Title: "Glass Rivers", Description: "Acoustic folk album opener",
			Type: model.MediaTypeSong, Artist: "Hollow Pines", Genre: []string{"folk", "acoustic"},
			Duration: 198, ReleaseDate: date(2024, 2, 2), Rating: 3.9, TotalViews: 240_000,
			IsApproved: true, UploadedBy: "user-001", UploadedAt: date(2024, 2, 3),
			Quality: []model.MediaQuality{q720},
		},
		{
			ID: "media-006", Title: "City of Static", Description: "Neo-noir feature debut",
			Type: model.MediaTypeMovie, Director: "Felix Okon", Genre: []string{"thriller", "noir"},
			Duration: 6480, ReleaseDate: date(2024, 1, 26), Rating: 4.6, TotalViews: 310_000,
			IsExplicit: true, IsApproved: true, UploadedBy: "user-002", UploadedAt: date(2024, 1, 30),
			Quality: []model.MediaQuality{q720, q1080},
		},
	}
}

// SeedSubscriptions returns the fixture subscriptions. Only user-003 starts
// subscribed; the others exercise the subscribe flow from scratch.
func SeedSubscriptions() []model.Subscription {
	plans := SeedPlans()
	return []model.Subscription{
		{
			ID:        "sub-001",
			UserID:    "user-003",
			PlanID:    "plan-basic",
			Status:    model.SubscriptionActive,
			Plan:      plans[0],
			StartDate: date(2024, 2, 10),
			EndDate:   date(2024, 3, 11),
			AutoRenew: true,
			CreatedAt: date(2024, 2, 10),
			UpdatedAt: date(2024, 2, 10),
		},
	}
}

// SeedPayments returns the payments behind the seeded subscriptions.
func SeedPayments() []model.Payment {
	return []model.Payment{
		{
			ID:             "payment-001",
			UserID:         "user-003",
			SubscriptionID: "sub-001",
			Amount:         4.99,
			Currency:       "USD",
			Status:         model.PaymentCompleted,
			Method:         model.MethodCard,
			TransactionID:  "txn-seed-0001",
			CreatedAt:      date(2024, 2, 10),
			UpdatedAt:      date(2024, 2, 10),
		},
	}
}

// SeedUploads returns one in-flight upload.
func SeedUploads() []model.MediaUpload {
	return []model.MediaUpload{
		{
			ID:             "upload-001",
			UserID:         "user-003",
			FileName:       "rooftop-sessions.mp4",
			FileSize:       420_000_000,
			Status:         model.UploadUploaded,
			UploadProgress: 35,
			Metadata: model.MediaMetadata{
				Title:       "Rooftop Sessions",
				Description: "Live acoustic set recorded at dusk",
				Genre:       []string{"folk"},
				Duration:    1680,
				Artist:      "Hollow Pines",
				Language:    "en",
			},
			UploadedAt: date(2024, 2, 12),
		},
	}
}

// SeedNotifications returns the fixture inbox.
func SeedNotifications() []model.Notification {
	return []model.Notification{
		{
			ID:        "notif-001",
			UserID:    "user-003",
			Type:      model.NotifyPaymentReceived,
			Title:     "Payment received",
			Message:   "Your Basic plan payment of $4.99 went through.",
			Data:      map[string]any{"payment_id": "payment-001"},
			Read:      false,
			CreatedAt: date(2024, 2, 10),
		},
	}
}

// SeedPlans returns the immutable subscription plans.
func SeedPlans() []model.SubscriptionPlan {
	return []model.SubscriptionPlan{
		{
			ID: "plan-basic", Name: "Basic", Description: "Single stream, SD quality",
			PricePerMonth: 4.99, Features: []string{"1 concurrent stream", "SD quality"},
			MaxConcurrentStreams: 1, MaxDownloads: 0, VideoQuality: model.QualitySD, IsActive: true,
		},
		{
			ID: "plan-standard", Name: "Standard", Description: "Two streams, HD quality, downloads",
			PricePerMonth: 9.99, Features: []string{"2 concurrent streams", "HD quality", "10 downloads"},
			MaxConcurrentStreams: 2, MaxDownloads: 10, VideoQuality: model.QualityHD, IsActive: true,
		},
		{
			ID: "plan-premium", Name: "Premium", Description: "Four streams, 4K quality, unlimited downloads",
			PricePerMonth: 14.99, Features: []string{"4 concurrent streams", "4K quality", "unlimited downloads"},
			MaxConcurrentStreams: 4, MaxDownloads: -1, VideoQuality: model.Quality4K, IsActive: true,
		},
	}
}
