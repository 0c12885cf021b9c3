package generator

import (
	"path"
	"strings"

	"github.com/dhakseshr/tds-project1/pkg/domain"
	"github.com/dhakseshr/tds-project1/pkg/serrors"
)

// parseArtifact splits raw model output into an artifact according to the
// file-marker protocol:
//
//   - A line "---FILE: <path>---" starts a new file; content runs until the
//     next marker or end of output.
//   - The bare legacy marker "---README.md---" is an alias for the README.
//     When it is the first marker, content preceding it is the entry page.
//   - Other content before the first marker (model preamble) is dropped.
//   - Output without any marker is treated as the whole index.html.
//   - Surrounding triple-backtick fences are stripped per file.
//
// An output that yields no non-empty file is a generation failure.
func parseArtifact(raw string) (domain.Artifact, error) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	files := map[string]string{}
	currentPath := ""
	var current []string

	flush := func() {
		content := stripFence(strings.Join(current, "\n"))
		current = nil
		if currentPath == "" || strings.TrimSpace(content) == "" {
			return
		}
		files[currentPath] = content
	}

	sawMarker := false
	for _, line := range strings.Split(raw, "\n") {
		if p, ok := markerPath(line); ok {
			if !sawMarker && strings.TrimSpace(line) == legacyReadmeMarker {
				// legacy single-README shape: everything before the marker is
				// the entry page
				if content := stripFence(strings.Join(current, "\n")); strings.TrimSpace(content) != "" {
					files[domain.IndexPath] = content
				}
			}
			flush()
			currentPath = p
			sawMarker = true

			continue
		}
		current = append(current, line)
	}
	flush()

	if !sawMarker {
		// No protocol markers at all: treat the whole output as the entry page.
		content := stripFence(raw)
		if strings.TrimSpace(content) == "" {
			return domain.Artifact{}, serrors.With(serrors.ErrGeneration, "model returned empty output")
		}

		return domain.Artifact{Files: map[string]string{domain.IndexPath: content}}, nil
	}

	if len(files) == 0 {
		return domain.Artifact{}, serrors.With(serrors.ErrGeneration,
			"model output contained markers but no file content")
	}

	return domain.Artifact{Files: files}, nil
}

// markerPath extracts the file path from a marker line, accepting both the
// "---FILE: <path>---" protocol and the legacy README delimiter. Paths are
// cleaned; absolute paths and parent traversal are rejected by ignoring the
// marker, so the content folds into the preceding file.
func markerPath(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == legacyReadmeMarker {
		return domain.ReadmePath, true
	}
	if !strings.HasPrefix(trimmed, fileMarkerPrefix) || !strings.HasSuffix(trimmed, "---") {
		return "", false
	}

	p := strings.TrimSuffix(strings.TrimPrefix(trimmed, fileMarkerPrefix), "---")
	p = strings.TrimSpace(p)
	if p == "" {
		return "", false
	}

	p = path.Clean(p)
	if path.IsAbs(p) || p == "." || strings.HasPrefix(p, "..") {
		return "", false
	}

	return p, true
}

// stripFence removes a surrounding triple-backtick code fence, including an
// optional language tag on the opening fence. Content without a fence is
// returned trimmed of outer blank lines only.
func stripFence(s string) string {
	s = strings.Trim(s, "\n")
	lines := strings.Split(s, "\n")
	if len(lines) >= 2 &&
		strings.HasPrefix(strings.TrimSpace(lines[0]), "```") &&
		strings.TrimSpace(lines[len(lines)-1]) == "```" {
		return strings.Trim(strings.Join(lines[1:len(lines)-1], "\n"), "\n")
	}

	return s
}
