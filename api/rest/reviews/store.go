package reviews

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// in-memory review store; the storefront's MongoDB collection is an
// external collaborator, this keeps the moderation surface testable
type Store struct {
	mu      sync.RWMutex
	reviews map[string]*Review
}

// creates an empty review store
func NewStore() *Store {
	return &Store{
		reviews: make(map[string]*Review),
	}
}

// adds a pending (unapproved) review and returns its id
func (s *Store) Add(review *Review) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	review.ID = uuid.NewString()
	review.CreatedAt = time.Now()
	review.Approved = false

	s.reviews[review.ID] = review

	return review.ID
}

// returns all reviews, newest first
func (s *Store) List() []*Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Review, 0, len(s.reviews))
	for _, review := range s.reviews {
		out = append(out, review)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// returns approved featured reviews, newest first
func (s *Store) Featured() []*Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Review, 0)
	for _, review := range s.reviews {
		if review.Approved && review.Featured {
			out = append(out, review)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// marks a review approved (and optionally featured); reports existence
func (s *Store) Approve(id string, featured bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	review, exists := s.reviews[id]
	if !exists {
		return false
	}

	review.Approved = true
	review.Featured = featured

	return true
}

// removes a review; reports existence
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reviews[id]; !exists {
		return false
	}

	delete(s.reviews, id)

	return true
}
