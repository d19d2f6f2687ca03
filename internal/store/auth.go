package store

// PutAuthSession records a live session under its access token. The
// previous single "current session" pointer is gone: any number of sessions
// coexist, each addressed by its own token.
func (s *Store) PutAuthSession(sess AuthSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authSessions[sess.AccessToken] = sess
}

// GetAuthSession returns the session for an access token.
func (s *Store) GetAuthSession(accessToken string) (AuthSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.authSessions[accessToken]
	return sess, ok
}

// FindAuthSessionByRefresh returns the session holding a refresh token.
func (s *Store) FindAuthSessionByRefresh(refreshToken string) (AuthSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.authSessions {
		if sess.RefreshToken == refreshToken {
			return sess, true
		}
	}
	return AuthSession{}, false
}

// DeleteAuthSession clears a session; the token pair stops resolving.
func (s *Store) DeleteAuthSession(accessToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.authSessions, accessToken)
}
