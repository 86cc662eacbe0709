package newsletter

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"premiumshop-be/internal/localstore"
)

var ErrInvalidEmail = errors.New("invalid email address")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service keeps the newsletter subscriber list in the local store.
type Service struct {
	mu    sync.Mutex
	store *localstore.Store
}

func NewService(store *localstore.Store) *Service {
	return &Service{store: store}
}

// Subscribe adds the email to the list. Returns false without error when
// the address was already subscribed.
func (s *Service) Subscribe(email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return false, ErrInvalidEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var subscribers []string
	if _, err := s.store.Get(localstore.KeyNewsletter, &subscribers); err != nil {
		return false, err
	}

	for _, existing := range subscribers {
		if existing == email {
			return false, nil
		}
	}

	subscribers = append(subscribers, email)
	if err := s.store.Put(localstore.KeyNewsletter, subscribers); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Subscribers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subscribers []string
	if _, err := s.store.Get(localstore.KeyNewsletter, &subscribers); err != nil {
		return nil
	}
	return subscribers
}
