package generator

import (
	"testing"

	"github.com/dhakseshr/tds-project1/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestParseArtifact_MultipleFiles(t *testing.T) {
	raw := `---FILE: index.html---
<html><body>hi</body></html>
---FILE: css/site.css---
body { margin: 0; }
---FILE: README.md---
# Demo
`

	art, err := parseArtifact(raw)
	require.NoError(t, err)
	require.Len(t, art.Files, 3)
	require.Contains(t, art.Files["index.html"], "<html>")
	require.Contains(t, art.Files["css/site.css"], "margin")
	require.Contains(t, art.Readme(), "# Demo")
}

func TestParseArtifact_LegacyReadmeMarker(t *testing.T) {
	raw := `<html><body>app</body></html>

---README.md---
# Readme here
`

	art, err := parseArtifact(raw)
	require.NoError(t, err)
	require.Len(t, art.Files, 2)
	require.Contains(t, art.Readme(), "Readme here")
	// the legacy shape puts everything before the marker in the entry page
	require.Contains(t, art.Files["index.html"], "<body>app</body>")
	require.NotContains(t, art.Files["index.html"], "Readme here")
}

func TestParseArtifact_PreambleBeforeFirstFileMarkerDropped(t *testing.T) {
	raw := `Here are the files you asked for:

---FILE: index.html---
<html><body>app</body></html>
---FILE: README.md---
# Demo
`

	art, err := parseArtifact(raw)
	require.NoError(t, err)
	require.Len(t, art.Files, 2)
	require.NotContains(t, art.Files["index.html"], "Here are the files")
	require.NotContains(t, art.Readme(), "Here are the files")
	require.Contains(t, art.Files["index.html"], "<body>app</body>")
}

func TestParseArtifact_NoMarkersBecomesIndex(t *testing.T) {
	raw := "<html><body>standalone</body></html>"

	art, err := parseArtifact(raw)
	require.NoError(t, err)
	require.Len(t, art.Files, 1)
	require.Equal(t, raw, art.Files["index.html"])
}

func TestParseArtifact_StripsCodeFences(t *testing.T) {
	raw := "---FILE: index.html---\n```html\n<html></html>\n```\n"

	art, err := parseArtifact(raw)
	require.NoError(t, err)
	require.Equal(t, "<html></html>", art.Files["index.html"])
}

func TestParseArtifact_FenceWithoutCloseKept(t *testing.T) {
	raw := "---FILE: index.html---\n```html\n<html></html>"

	art, err := parseArtifact(raw)
	require.NoError(t, err)
	require.Contains(t, art.Files["index.html"], "```html")
}

func TestParseArtifact_EmptyOutput(t *testing.T) {
	_, err := parseArtifact("   \n\n  ")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrGeneration)
}

func TestParseArtifact_MarkersButNoContent(t *testing.T) {
	_, err := parseArtifact("---FILE: index.html---\n\n---FILE: app.js---\n")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrGeneration)
}

func TestParseArtifact_EmptyFilesDropped(t *testing.T) {
	raw := "---FILE: index.html---\n<html></html>\n---FILE: empty.txt---\n\n"

	art, err := parseArtifact(raw)
	require.NoError(t, err)
	require.Len(t, art.Files, 1)
	require.NotContains(t, art.Files, "empty.txt")
}

func TestParseArtifact_CRLFInput(t *testing.T) {
	raw := "---FILE: index.html---\r\n<html></html>\r\n"

	art, err := parseArtifact(raw)
	require.NoError(t, err)
	require.Equal(t, "<html></html>", art.Files["index.html"])
}

func TestMarkerPath_RejectsTraversal(t *testing.T) {
	for _, line := range []string{
		"---FILE: /etc/passwd---",
		"---FILE: ../outside.txt---",
		"---FILE: ---",
		"---FILE: .---",
	} {
		_, ok := markerPath(line)
		require.False(t, ok, "marker %q should be rejected", line)
	}

	p, ok := markerPath("---FILE: ./js/app.js---")
	require.True(t, ok)
	require.Equal(t, "js/app.js", p)
}
