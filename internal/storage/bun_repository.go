package storage

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-scribe/article"
)

// BunAuthorRepository resolves author records, most importantly the default
// byline looked up by role.
type BunAuthorRepository struct {
	repo repository.Repository[*article.Author]
}

func NewBunAuthorRepository(db *bun.DB) *BunAuthorRepository {
	return NewBunAuthorRepositoryWithCache(db, nil, nil)
}

// NewBunAuthorRepositoryWithCache constructs an author repository with
// optional read caching; author lookups sit on the hot path of every run.
func NewBunAuthorRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunAuthorRepository {
	base := NewAuthorRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunAuthorRepository{repo: wrapped}
}

func (r *BunAuthorRepository) GetByRole(ctx context.Context, role string) (*article.Author, error) {
	result, err := r.repo.GetByIdentifier(ctx, role)
	if err != nil {
		return nil, mapRepositoryError(err, "author", role)
	}
	return result, nil
}

func (r *BunAuthorRepository) Create(ctx context.Context, record *article.Author) (*article.Author, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("author repository error: %w", err)
	}
	return created, nil
}

// BunArticleRepository persists generated articles.
type BunArticleRepository struct {
	repo repository.Repository[*article.Article]
}

func NewBunArticleRepository(db *bun.DB) *BunArticleRepository {
	return NewBunArticleRepositoryWithCache(db, nil, nil)
}

func NewBunArticleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunArticleRepository {
	base := NewArticleRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunArticleRepository{repo: wrapped}
}

func (r *BunArticleRepository) Create(ctx context.Context, record *article.Article) (*article.Article, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, &article.PersistenceError{Resource: "article", Cause: err}
	}
	return created, nil
}

func (r *BunArticleRepository) GetBySlug(ctx context.Context, slug string) (*article.Article, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "article", slug)
	}
	return result, nil
}

// BunGenerationJobRepository reads and mutates job records. Claim performs a
// conditional idle→generating update so two runs cannot both own the same
// job.
type BunGenerationJobRepository struct {
	db   *bun.DB
	repo repository.Repository[*article.GenerationJob]
}

func NewBunGenerationJobRepository(db *bun.DB) *BunGenerationJobRepository {
	return &BunGenerationJobRepository{
		db:   db,
		repo: NewGenerationJobRepository(db),
	}
}

func (r *BunGenerationJobRepository) Create(ctx context.Context, record *article.GenerationJob) (*article.GenerationJob, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, &article.PersistenceError{Resource: "generation_job", Cause: err}
	}
	return created, nil
}

func (r *BunGenerationJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*article.GenerationJob, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "generation_job", id.String())
	}
	return result, nil
}

func (r *BunGenerationJobRepository) Update(ctx context.Context, record *article.GenerationJob) (*article.GenerationJob, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, &article.PersistenceError{Resource: "generation_job", Cause: err}
	}
	return updated, nil
}

// Claim flips the job from idle to generating, failing with
// ErrJobAlreadyRunning when another run holds it and ErrJobNotFound when no
// record exists.
func (r *BunGenerationJobRepository) Claim(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewUpdate().
		Model((*article.GenerationJob)(nil)).
		Set("status = ?", article.JobStatusGenerating).
		Set("updated_at = CURRENT_TIMESTAMP").
		Where("id = ?", id).
		Where("status = ?", article.JobStatusIdle).
		Exec(ctx)
	if err != nil {
		return &article.PersistenceError{Resource: "generation_job", Cause: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &article.PersistenceError{Resource: "generation_job", Cause: err}
	}
	if affected == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return article.ErrJobAlreadyRunning
	}
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &article.NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
