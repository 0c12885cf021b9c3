// Package githost defines the abstraction for source-hosting providers used
// to create repositories, commit files and enable static-site hosting.
package githost

import (
	"context"

	"github.com/dhakseshr/tds-project1/pkg/domain"
)

// CreateRepositoryReq describes a repository to create under the
// authenticated account.
type CreateRepositoryReq struct {
	// Name is the repository name. Naming conflicts surface as a conflict error.
	Name string
	// Description is shown on the repository page.
	Description string
	// Private controls repository visibility. Static hosting requires public
	// repositories on the free plan, so this is normally false.
	Private bool
}

// Client is the abstraction for source-hosting providers. Implementations
// talk to the provider's REST API; all calls are blocking and honor ctx.
//
// The zero rollback contract of the pipeline applies here too: a failed call
// leaves whatever the provider already created in place.
type Client interface {
	// CreateRepository creates a new repository and returns its handle.
	CreateRepository(ctx context.Context, req CreateRepositoryReq) (*domain.Repository, error)

	// PutFile commits a single file to the repository's default branch,
	// creating it if absent.
	PutFile(ctx context.Context, repo *domain.Repository, path string, content []byte, message string) error

	// EnablePages turns on static-site hosting for the repository and returns
	// the public site URL.
	EnablePages(ctx context.Context, repo *domain.Repository) (string, error)
}
