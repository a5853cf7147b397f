package studyblog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyID is returned when a seed post has no identifier.
	ErrEmptyID = errors.New("post id is empty")
	// ErrDuplicateID is returned when two seed posts share an identifier.
	ErrDuplicateID = errors.New("duplicate post id")
)

// Store is the read-only, ordered collection of posts. It is safe for concurrent use
// because nothing mutates it after NewStore returns.
type Store struct {
	posts []Post
	byID  map[string]int
}

// NewStore builds a Store from posts, keeping their order. Every id must be non-empty
// and unique.
func NewStore(posts []Post) (*Store, error) {
	s := &Store{
		posts: make([]Post, 0, len(posts)),
		byID:  make(map[string]int, len(posts)),
	}
	for i, p := range posts {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("post %d (%q): %w", i, p.Title, ErrEmptyID)
		}
		if _, ok := s.byID[p.ID]; ok {
			return nil, fmt.Errorf("post %q: %w", p.ID, ErrDuplicateID)
		}
		p.Tags = append([]string(nil), p.Tags...)
		s.byID[p.ID] = len(s.posts)
		s.posts = append(s.posts, p)
	}
	return s, nil
}

// Len returns the number of posts.
func (s *Store) Len() int {
	return len(s.posts)
}

// All returns every post in collection order.
func (s *Store) All() []Post {
	return clonePosts(s.posts)
}

// GetByID returns the post with the given id. The boolean is false for unknown ids.
func (s *Store) GetByID(id string) (Post, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Post{}, false
	}
	return clonePost(s.posts[i]), true
}

// FilterByTag returns, in collection order, every post with a tag that contains tag
// case-insensitively ("Python" matches "pyth").
func (s *Store) FilterByTag(tag string) []Post {
	needle := strings.ToLower(tag)
	var out []Post
	for _, p := range s.posts {
		for _, t := range p.Tags {
			if strings.Contains(strings.ToLower(t), needle) {
				out = append(out, clonePost(p))
				break
			}
		}
	}
	return out
}

// Search returns, in collection order, every post whose title, summary or any tag
// contains query case-insensitively. An empty query matches every post; callers that
// want a different empty-query policy must check for it themselves.
func (s *Store) Search(query string) []Post {
	var out []Post
	for _, p := range s.posts {
		if matchesQuery(p, strings.ToLower(query)) {
			out = append(out, clonePost(p))
		}
	}
	return out
}

// matchesQuery reports whether the lowercased query q occurs in p's title, summary or tags.
func matchesQuery(p Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Summary), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func clonePost(p Post) Post {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

func clonePosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = clonePost(p)
	}
	return out
}
