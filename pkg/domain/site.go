package domain

import "time"

// ReadmePath is the canonical path of the README inside a generated artifact.
const ReadmePath = "README.md"

// IndexPath is the canonical path of the entry page inside a generated artifact.
const IndexPath = "index.html"

// Brief is the user-supplied description of the application to generate.
// It carries no validation beyond non-emptiness, which is enforced at intake.
type Brief string

// Attachment is a file supplied alongside a brief, already decoded from its
// data URL. Attachments are summarized into the generation prompt and
// committed to the published repository under assets/.
type Attachment struct {
	// Name is the file name as supplied by the caller.
	Name string
	// MIME is the media type parsed from the data URL header.
	MIME string
	// Data is the decoded payload.
	Data []byte
}

// Artifact is the output of a single generation: a mapping from file path to
// file content. A successful generation always contains at least one
// non-empty file and a README (synthesized when the model omits one).
type Artifact struct {
	// Files maps repository-relative paths to file contents.
	Files map[string]string
}

// Readme returns the artifact's README content, or the empty string when the
// artifact does not carry one.
func (a Artifact) Readme() string { return a.Files[ReadmePath] }

// Paths returns the file paths contained in the artifact. Order is not
// specified.
func (a Artifact) Paths() []string {
	out := make([]string, 0, len(a.Files))
	for p := range a.Files {
		out = append(out, p)
	}

	return out
}

// Repository identifies a newly created remote repository with static hosting
// enabled. It is created by the publisher, returned to the caller, and never
// mutated afterward.
type Repository struct {
	// Owner is the account the repository was created under.
	Owner string `json:"owner"`
	// Name is the repository name.
	Name string `json:"name"`
	// DefaultBranch is the branch the generated files were committed to.
	DefaultBranch string `json:"defaultBranch"`
	// HTMLURL is the browsable repository URL.
	HTMLURL string `json:"htmlUrl"`
	// PagesURL is the public static-hosting URL serving the repository content.
	PagesURL string `json:"pagesUrl"`
}

// FullName returns the owner/name path of the repository.
func (r Repository) FullName() string { return r.Owner + "/" + r.Name }

// Site is the result of one full pipeline run. It exists only for the
// lifetime of the request that produced it.
type Site struct {
	// Brief is the brief the site was generated from.
	Brief Brief
	// Round is the generation round (1 = from scratch, 2 = revision).
	Round int
	// Repository is the published repository handle.
	Repository Repository
	// Files lists the artifact paths that were committed.
	Files []string
	// CreatedAt is when the pipeline run finished.
	CreatedAt time.Time
}
