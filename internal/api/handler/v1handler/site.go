package v1handler

import (
	"encoding/json"
	"net/http"

	"github.com/dhakseshr/tds-project1/internal/generator"
	"github.com/dhakseshr/tds-project1/internal/pipeline"
	"github.com/dhakseshr/tds-project1/pkg/serrors"
)

// maxBodyBytes caps the request body size. Attachments travel base64-encoded
// inside the body, so this is well above the decoded attachment cap.
const maxBodyBytes = 10 << 20

// createSiteRequest is the intake payload.
type createSiteRequest struct {
	// Brief describes the application to generate. Required.
	Brief string `json:"brief"`
	// Round selects build (1, default) or revision (2).
	Round int `json:"round,omitempty"`
	// PreviousReadme carries the prior round's README for revisions.
	PreviousReadme string `json:"previousReadme,omitempty"`
	// Checks lists evaluation criteria the generated app should satisfy.
	Checks []string `json:"checks,omitempty"`
	// Attachments are files supplied as data URLs.
	Attachments []attachmentRequest `json:"attachments,omitempty"`
}

type attachmentRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// createSiteResponse reports the published site back to the caller.
type createSiteResponse struct {
	// RepoURL is the browsable repository URL.
	RepoURL string `json:"repoUrl"`
	// PagesURL is the public static-hosting URL serving the site.
	PagesURL string `json:"pagesUrl"`
	// RepoName is the generated repository name.
	RepoName string `json:"repoName"`
	// Files lists the artifact paths that were committed.
	Files []string `json:"files"`
	// Round echoes the generation round that produced the site.
	Round int `json:"round"`
}

// CreateSite handles POST /v1/sites: it decodes the brief, runs the pipeline
// synchronously and responds with the published repository URLs.
func (h *Handler) CreateSite(w http.ResponseWriter, r *http.Request) {
	var req createSiteRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrValidation, err, "could not decode request body"))

		return
	}

	attachments := make([]generator.AttachmentInput, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		attachments = append(attachments, generator.AttachmentInput{Name: a.Name, URL: a.URL})
	}

	site, err := h.deps.Pipeline.Run(r.Context(), pipeline.Request{
		Brief:          req.Brief,
		Round:          req.Round,
		PreviousReadme: req.PreviousReadme,
		Checks:         req.Checks,
		Attachments:    attachments,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, createSiteResponse{
		RepoURL:  site.Repository.HTMLURL,
		PagesURL: site.Repository.PagesURL,
		RepoName: site.Repository.Name,
		Files:    site.Files,
		Round:    site.Round,
	})
}
