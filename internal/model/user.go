package model

import "time"

// UserRole distinguishes regular users from administrators.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// UserStatus represents account state.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// User is an account in the identity context. Users are never hard-deleted.
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	PhoneNumber   string     `json:"phone_number,omitempty"`
	ProfileImage  string     `json:"profile_image,omitempty"`
	Role          UserRole   `json:"role"`
	Status        UserStatus `json:"status"`
	EmailVerified bool       `json:"email_verified"`
	PhoneVerified bool       `json:"phone_verified"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// AuthToken is the access/refresh pair issued on login and register.
type AuthToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
	TokenType    string `json:"token_type"` // always "Bearer"
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User   User      `json:"user"`
	Tokens AuthToken `json:"tokens"`
}

// RefreshTokenRequest is the body for POST /auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest is the body for POST /auth/password/change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ResetPasswordRequest is the body for POST /auth/password/reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateProfileRequest carries the mutable profile fields; empty fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	ProfileImage string `json:"profile_image"`
}

// VerifyPhoneRequest is the body for POST /users/phone/verify.
type VerifyPhoneRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
}

// UserSettings groups per-user preferences.
type UserSettings struct {
	Notifications struct {
		Email bool `json:"email"`
		Push  bool `json:"push"`
		SMS   bool `json:"sms"`
	} `json:"notifications"`
	Privacy struct {
		ProfileVisibility   string `json:"profile_visibility"`
		AllowFriendRequests bool   `json:"allow_friend_requests"`
	} `json:"privacy"`
	Preferences struct {
		Language string `json:"language"`
		Theme    string `json:"theme"`
		Autoplay bool   `json:"autoplay"`
	} `json:"preferences"`
}

// DefaultUserSettings returns the settings a fresh account starts with.
func DefaultUserSettings() UserSettings {
	var s UserSettings
	s.Notifications.Email = true
	s.Notifications.Push = true
	s.Privacy.ProfileVisibility = "public"
	s.Privacy.AllowFriendRequests = true
	s.Preferences.Language = "en"
	s.Preferences.Theme = "light"
	s.Preferences.Autoplay = true
	return s
}
