package database

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// ErrStorePoisoned is raised (as a panic value) once a panic has escaped
// while the store lock was held. The post slice can't be trusted after that.
var ErrStorePoisoned = errors.New("post store poisoned")

// PostStore is the in-memory, append-only list of posts. Every operation
// holds the same mutex; there is no read/write split.
type PostStore struct {
	mu       sync.Mutex
	posts    []Post
	poisoned bool

	defaults Defaults
	now      func() time.Time
}

type Option func(*PostStore)

func WithDefaults(d Defaults) Option {
	return func(s *PostStore) { s.defaults = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *PostStore) { s.now = now }
}

func NewPostStore(opts ...Option) *PostStore {
	s := &PostStore{
		defaults: KoreanDefaults,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lock acquires the mutex and returns the matching release, meant to be
// deferred directly so it can see a panic from the critical section.
func (s *PostStore) lock() func() {
	s.mu.Lock()
	if s.poisoned {
		s.mu.Unlock()
		panic(ErrStorePoisoned)
	}
	return func() {
		if r := recover(); r != nil {
			s.poisoned = true
			s.mu.Unlock()
			panic(fmt.Errorf("%w: %v", ErrStorePoisoned, r))
		}
		s.mu.Unlock()
	}
}

func (s *PostStore) Append(title, author, content string) Post {
	defer s.lock()()

	if title == "" {
		title = s.defaults.Title
	}
	if author == "" {
		author = s.defaults.Author
	}

	post := Post{
		Id:      len(s.posts) + 1,
		Title:   title,
		Author:  author,
		Content: content,
		Date:    s.now().Local().Format(DATE_LAYOUT),
	}
	s.posts = append(s.posts, post)

	return post
}

func (s *PostStore) ListNewestFirst() []Post {
	defer s.lock()()

	result := make([]Post, 0, len(s.posts))
	for i := len(s.posts) - 1; i >= 0; i-- {
		result = append(result, s.posts[i])
	}
	return result
}

func (s *PostStore) FindByID(id int) (Post, error) {
	defer s.lock()()

	for _, p := range s.posts {
		if p.Id == id {
			return p, nil
		}
	}
	return Post{}, ErrPostNotFound
}

func (s *PostStore) Len() int {
	defer s.lock()()

	return len(s.posts)
}
