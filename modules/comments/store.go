package comments

import (
	"sync"
	"time"
)

// timeNow is a hook for tests.
var timeNow = func() time.Time { return time.Now().UTC() }

// Comment is a single reader comment attached to a post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the mutable comment container bound into the application
// context, keyed by post id. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	byPostID map[string][]Comment
}

// NewStore creates an empty comment store.
func NewStore() *Store {
	return &Store{byPostID: make(map[string][]Comment)}
}

// Add appends a comment to its post's thread.
func (s *Store) Add(c Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPostID[c.PostID] = append(s.byPostID[c.PostID], c)
}

// List returns a post's comments in insertion order. A post without
// comments yields an empty slice, not nil, so JSON rendering stays stable.
func (s *Store) List(postID string) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Comment, len(s.byPostID[postID]))
	copy(out, s.byPostID[postID])
	return out
}
