package store

import (
	"golang.org/x/crypto/bcrypt"

	"go-farmtrack/models"
)

// GetUser fetches a user by id.
func (s *MemStore) GetUser(id models.UserID) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// GetUserByUsername scans for a user with the given username.
func (s *MemStore) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateUser stores a new user with the password bcrypt-hashed.
func (s *MemStore) CreateUser(in models.NewUser) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID++
	u := models.User{
		ID:       s.userID,
		Username: in.Username,
		Password: string(hash),
	}
	s.users[u.ID] = u
	return u, nil
}
