package generator

import (
	"context"

	"github.com/dhakseshr/tds-project1/pkg/domain"
)

// AttachmentInput is an attachment as supplied by the caller: a name plus a
// data URL of the form data:<mime>;base64,<payload>.
type AttachmentInput struct {
	Name string
	URL  string
}

// Input carries everything the generator needs for one run.
type Input struct {
	// Brief describes the application to generate.
	Brief domain.Brief
	// Round is 1 for a fresh build, 2 for a revision of a previous result.
	Round int
	// PreviousReadme is the prior round's README; only used when Round is 2.
	PreviousReadme string
	// Checks lists evaluation criteria the generated app should satisfy.
	Checks []string
	// Attachments are undecoded data-URL attachments.
	Attachments []AttachmentInput
}

// Result is a successful generation: the artifact to publish plus the decoded
// attachments that should travel with it.
type Result struct {
	Artifact    domain.Artifact
	Attachments []domain.Attachment
}

// Generator turns a brief into a set of source files and a README by calling
// an LLM completion provider and parsing its output.
type Generator interface {
	Generate(ctx context.Context, in Input) (*Result, error)
}
