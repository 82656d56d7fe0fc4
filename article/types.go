package article

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-scribe/richtext"
)

// JobStatus tracks a generation job through its lifecycle. Transitions are
// monotonic: idle → generating → {completed | error}. Once terminal, a job
// record never moves again.
type JobStatus string

const (
	JobStatusIdle       JobStatus = "idle"
	JobStatusGenerating JobStatus = "generating"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusError      JobStatus = "error"
)

// CanTransition reports whether moving to next respects the forward-only
// lifecycle.
func (s JobStatus) CanTransition(next JobStatus) bool {
	switch s {
	case JobStatusIdle:
		return next == JobStatusGenerating
	case JobStatusGenerating:
		return next == JobStatusCompleted || next == JobStatusError
	default:
		return false
	}
}

// Terminal reports whether the status accepts no further transitions.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusError
}

// Author is the byline record articles are attributed to. The generation
// pipeline looks the default author up by role.
type Author struct {
	bun.BaseModel `bun:"table:authors,alias:a"`

	ID        uuid.UUID  `bun:",pk,type:uuid"        json:"id"`
	Name      string     `bun:"name,notnull"         json:"name"`
	Role      string     `bun:"role,notnull"         json:"role"`
	Email     *string    `bun:"email"                json:"email,omitempty"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero"  json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// DefaultAuthorRole selects the byline used for generated articles.
const DefaultAuthorRole = "editor"

// Article is the persisted output of one generation run: the raw markdown
// body, its structured block tree, an HTML projection, and the bounded
// excerpt.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:ar"`

	ID        uuid.UUID          `bun:",pk,type:uuid"            json:"id"`
	AuthorID  uuid.UUID          `bun:"author_id,notnull,type:uuid" json:"author_id"`
	Title     string             `bun:"title,notnull"            json:"title"`
	Slug      string             `bun:"slug,notnull"             json:"slug"`
	Excerpt   *string            `bun:"excerpt"                  json:"excerpt,omitempty"`
	Body      string             `bun:"body,notnull"             json:"body"`
	BodyHTML  string             `bun:"body_html"                json:"body_html,omitempty"`
	Document  *richtext.Document `bun:"document,type:jsonb"      json:"document,omitempty"`
	Tags      []string           `bun:"tags,type:jsonb"          json:"tags,omitempty"`
	CreatedAt time.Time          `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time          `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Author *Author `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
}

// GenerationJob identifies one conversion task. It is created by the
// surrounding system and mutated exclusively by the generation service.
type GenerationJob struct {
	bun.BaseModel `bun:"table:generation_jobs,alias:gj"`

	ID        uuid.UUID  `bun:",pk,type:uuid"          json:"id"`
	Subject   string     `bun:"subject,notnull"        json:"subject"`
	IndexID   string     `bun:"index_id,notnull"       json:"index_id"`
	Status    JobStatus  `bun:"status,notnull,default:'idle'" json:"status"`
	Progress  *string    `bun:"progress"               json:"progress,omitempty"`
	Error     *string    `bun:"error"                  json:"error,omitempty"`
	ArticleID *uuid.UUID `bun:"article_id,type:uuid,nullzero" json:"article_id,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Article *Article `bun:"rel:belongs-to,join:article_id=id" json:"article,omitempty"`
}
