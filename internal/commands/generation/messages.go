package generationcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const runArticleGenerationMessageType = "scribe.generation.run_article"

// RunArticleGenerationCommand triggers one end-to-end generation run for an
// existing job record. The job carries the subject and content index
// reference; the command only identifies which job to execute.
type RunArticleGenerationCommand struct {
	// JobID selects the generation job record to run.
	JobID uuid.UUID `json:"job_id"`
	// Subject optionally overrides the subject stored on the job record.
	Subject string `json:"subject,omitempty"`
}

// Type implements command.Message.
func (RunArticleGenerationCommand) Type() string { return runArticleGenerationMessageType }

// Validate ensures a job reference is present before handlers execute.
func (cmd RunArticleGenerationCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.JobID, validation.By(func(value any) error {
			if value.(uuid.UUID) == uuid.Nil {
				return validation.NewError("scribe.generation.run_article.job_id_required", "job_id is required")
			}
			return nil
		})),
		validation.Field(&cmd.Subject, validation.By(func(value any) error {
			raw := value.(string)
			if raw != "" && strings.TrimSpace(raw) == "" {
				return validation.NewError("scribe.generation.run_article.subject_blank", "subject must not be blank")
			}
			return nil
		})),
	)
}
