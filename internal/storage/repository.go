package storage

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-scribe/article"
)

func NewAuthorRepository(db *bun.DB) repository.Repository[*article.Author] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*article.Author]{
		NewRecord: func() *article.Author { return &article.Author{} },
		GetID: func(a *article.Author) uuid.UUID {
			return a.ID
		},
		SetID: func(a *article.Author, id uuid.UUID) {
			a.ID = id
		},
		GetIdentifier: func() string {
			return "role"
		},
		GetIdentifierValue: func(a *article.Author) string {
			return a.Role
		},
	})
}

func NewArticleRepository(db *bun.DB) repository.Repository[*article.Article] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*article.Article]{
		NewRecord: func() *article.Article { return &article.Article{} },
		GetID: func(a *article.Article) uuid.UUID {
			return a.ID
		},
		SetID: func(a *article.Article, id uuid.UUID) {
			a.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(a *article.Article) string {
			return a.Slug
		},
	})
}

func NewGenerationJobRepository(db *bun.DB) repository.Repository[*article.GenerationJob] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*article.GenerationJob]{
		NewRecord: func() *article.GenerationJob { return &article.GenerationJob{} },
		GetID: func(j *article.GenerationJob) uuid.UUID {
			return j.ID
		},
		SetID: func(j *article.GenerationJob, id uuid.UUID) {
			j.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(j *article.GenerationJob) string {
			if j == nil {
				return ""
			}
			return j.ID.String()
		},
	})
}
