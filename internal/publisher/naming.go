package publisher

import (
	"strings"

	"github.com/google/uuid"
)

// maxSlugWords caps how many words of the brief end up in the repository name.
const maxSlugWords = 4

// maxSlugLen caps the slug portion of a repository name.
const maxSlugLen = 40

// repoName derives a repository name from the brief: an optional prefix, a
// slug of the brief's leading words, and a short random suffix to avoid
// naming conflicts across requests.
func repoName(prefix, brief string) string {
	slug := slugify(brief)
	suffix := strings.Split(uuid.New().String(), "-")[0]

	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	if slug != "" {
		parts = append(parts, slug)
	}
	parts = append(parts, suffix)

	return strings.Join(parts, "-")
}

// slugify lowercases the brief, keeps alphanumerics, and joins the first few
// words with hyphens.
func slugify(s string) string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		var b strings.Builder
		for _, r := range w {
			if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			words = append(words, b.String())
		}
		if len(words) == maxSlugWords {
			break
		}
	}

	slug := strings.Join(words, "-")
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "-")
	}

	return slug
}
