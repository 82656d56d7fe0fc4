package storage

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-scribe/article"
)

// MemoryAuthorRepository is an in-memory implementation for scaffolding and
// tests.
type MemoryAuthorRepository struct {
	mu      sync.RWMutex
	authors map[uuid.UUID]*article.Author
}

func NewMemoryAuthorRepository() *MemoryAuthorRepository {
	return &MemoryAuthorRepository{
		authors: make(map[uuid.UUID]*article.Author),
	}
}

func (m *MemoryAuthorRepository) Create(_ context.Context, record *article.Author) (*article.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	m.authors[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (m *MemoryAuthorRepository) GetByRole(_ context.Context, role string) (*article.Author, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.authors {
		if strings.EqualFold(rec.Role, role) {
			out := *rec
			return &out, nil
		}
	}
	return nil, &article.NotFoundError{Resource: "author", Key: role}
}

// MemoryArticleRepository stores generated articles keyed by id and slug.
type MemoryArticleRepository struct {
	mu        sync.RWMutex
	articles  map[uuid.UUID]*article.Article
	slugIndex map[string]uuid.UUID

	// FailCreate forces Create to fail; tests use it to exercise the
	// persistence error path.
	FailCreate error
}

func NewMemoryArticleRepository() *MemoryArticleRepository {
	return &MemoryArticleRepository{
		articles:  make(map[uuid.UUID]*article.Article),
		slugIndex: make(map[string]uuid.UUID),
	}
}

func (m *MemoryArticleRepository) Create(_ context.Context, record *article.Article) (*article.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailCreate != nil {
		return nil, &article.PersistenceError{Resource: "article", Cause: m.FailCreate}
	}

	copied := *record
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.articles[copied.ID] = &copied
	m.slugIndex[copied.Slug] = copied.ID
	out := copied
	return &out, nil
}

func (m *MemoryArticleRepository) GetBySlug(_ context.Context, slug string) (*article.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &article.NotFoundError{Resource: "article", Key: slug}
	}
	out := *m.articles[id]
	return &out, nil
}

func (m *MemoryArticleRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.articles)
}

// MemoryGenerationJobRepository mirrors the conditional claim semantics of
// the bun implementation.
type MemoryGenerationJobRepository struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*article.GenerationJob

	// FailUpdate forces Update to fail; tests use it to exercise the
	// best-effort error recording path.
	FailUpdate error
}

func NewMemoryGenerationJobRepository() *MemoryGenerationJobRepository {
	return &MemoryGenerationJobRepository{
		jobs: make(map[uuid.UUID]*article.GenerationJob),
	}
}

func (m *MemoryGenerationJobRepository) Create(_ context.Context, record *article.GenerationJob) (*article.GenerationJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	if copied.Status == "" {
		copied.Status = article.JobStatusIdle
	}
	m.jobs[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (m *MemoryGenerationJobRepository) GetByID(_ context.Context, id uuid.UUID) (*article.GenerationJob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.jobs[id]
	if !ok {
		return nil, &article.NotFoundError{Resource: "generation_job", Key: id.String()}
	}
	out := *rec
	return &out, nil
}

func (m *MemoryGenerationJobRepository) Update(_ context.Context, record *article.GenerationJob) (*article.GenerationJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailUpdate != nil {
		return nil, &article.PersistenceError{Resource: "generation_job", Cause: m.FailUpdate}
	}

	if _, ok := m.jobs[record.ID]; !ok {
		return nil, &article.NotFoundError{Resource: "generation_job", Key: record.ID.String()}
	}
	copied := *record
	m.jobs[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (m *MemoryGenerationJobRepository) Claim(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.jobs[id]
	if !ok {
		return &article.NotFoundError{Resource: "generation_job", Key: id.String()}
	}
	if rec.Status != article.JobStatusIdle {
		return article.ErrJobAlreadyRunning
	}
	rec.Status = article.JobStatusGenerating
	return nil
}
