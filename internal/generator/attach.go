package generator

import (
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"github.com/dhakseshr/tds-project1/pkg/domain"
	"github.com/dhakseshr/tds-project1/pkg/serrors"
)

// previewBytes caps how much of a text attachment is quoted in the prompt.
const previewBytes = 1000

// csvPreviewLines caps how many leading lines of a CSV attachment are quoted.
const csvPreviewLines = 3

// decodeAttachments decodes base64 data URLs into domain attachments.
// Attachments that are not data URLs or fail to decode are skipped, matching
// lenient intake semantics; a decoded payload above maxBytes is a validation
// error because the caller can fix it. Names are reduced to their base name
// so a caller-supplied name cannot place the file outside the assets
// directory of the published repository.
func decodeAttachments(in []AttachmentInput, maxBytes int) ([]domain.Attachment, error) {
	out := make([]domain.Attachment, 0, len(in))
	for _, att := range in {
		name := path.Base(att.Name)
		if name == "" || name == "." || name == ".." || name == "/" {
			name = "attachment"
		}
		if !strings.HasPrefix(att.URL, "data:") {
			continue
		}

		header, b64data, ok := strings.Cut(att.URL, ",")
		if !ok {
			continue
		}
		mime, _, _ := strings.Cut(strings.TrimPrefix(header, "data:"), ";")

		data, err := base64.StdEncoding.DecodeString(b64data)
		if err != nil {
			continue
		}
		if maxBytes > 0 && len(data) > maxBytes {
			return nil, serrors.With(serrors.ErrValidation,
				"attachment %q exceeds %d bytes", name, maxBytes)
		}

		out = append(out, domain.Attachment{Name: name, MIME: mime, Data: data})
	}

	return out, nil
}

// isTextAttachment reports whether an attachment should be previewed inline
// rather than summarized by size.
func isTextAttachment(a domain.Attachment) bool {
	if strings.HasPrefix(a.MIME, "text") {
		return true
	}
	for _, ext := range []string{".md", ".txt", ".json", ".csv"} {
		if strings.HasSuffix(a.Name, ext) {
			return true
		}
	}

	return false
}

// summarizeAttachments renders a short human-readable summary of the
// attachments for inclusion in the prompt: inline previews for text files,
// size lines for everything else.
func summarizeAttachments(atts []domain.Attachment) string {
	var lines []string
	for _, a := range atts {
		switch {
		case isTextAttachment(a) && strings.HasSuffix(a.Name, ".csv"):
			all := strings.Split(string(a.Data), "\n")
			if len(all) > csvPreviewLines {
				all = all[:csvPreviewLines]
			}
			for i := range all {
				all[i] = strings.TrimSpace(all[i])
			}
			lines = append(lines, fmt.Sprintf("- %s (%s): preview: %s",
				a.Name, a.MIME, strings.Join(all, "\\n")))
		case isTextAttachment(a):
			preview := string(a.Data)
			if len(preview) > previewBytes {
				preview = preview[:previewBytes]
			}
			preview = strings.ReplaceAll(preview, "\n", "\\n")
			lines = append(lines, fmt.Sprintf("- %s (%s): preview: %s", a.Name, a.MIME, preview))
		default:
			lines = append(lines, fmt.Sprintf("- %s (%s): %d bytes", a.Name, a.MIME, len(a.Data)))
		}
	}

	return strings.Join(lines, "\n")
}
