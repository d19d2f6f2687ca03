package store

import "github.com/streamvault/platform-service/internal/model"

// GetUser returns a user by ID.
func (s *Store) GetUser(id string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

// FindUserByEmail returns the user with the given email, if any.
func (s *Store) FindUserByEmail(email string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

// FindUserByPhone returns the user with the given phone number, if any.
func (s *Store) FindUserByPhone(phone string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.PhoneNumber == phone {
			return u, true
		}
	}
	return model.User{}, false
}

// PutUser inserts or replaces a user.
func (s *Store) PutUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// UpdateUser applies fn to the stored user under the lock.
func (s *Store) UpdateUser(id string, fn func(*model.User)) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, false
	}
	fn(&u)
	s.users[id] = u
	return u, true
}

// GetSettings returns the settings for a user, falling back to defaults.
func (s *Store) GetSettings(userID string) model.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.settings[userID]; ok {
		return st
	}
	return model.DefaultUserSettings()
}

// PutSettings replaces the settings for a user.
func (s *Store) PutSettings(userID string, st model.UserSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[userID] = st
}
