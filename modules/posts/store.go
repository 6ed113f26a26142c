package posts

import (
	"sync"
	"time"
)

// timeNow is a hook for tests.
var timeNow = func() time.Time { return time.Now().UTC() }

// Post is a single content entry.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the mutable post container bound into the application context.
// The context map itself is sealed; this container keeps its own internal
// mutability on purpose and is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	posts map[string]Post
	order []string
}

// NewStore creates an empty post store.
func NewStore() *Store {
	return &Store{posts: make(map[string]Post)}
}

// Add inserts a post, preserving insertion order for listings.
func (s *Store) Add(p Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.posts[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.posts[p.ID] = p
}

// Get returns a post by id.
func (s *Store) Get(id string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	return p, ok
}

// List returns all posts in insertion order.
func (s *Store) List() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Post, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.posts[id])
	}
	return out
}

// Len returns the number of stored posts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}
