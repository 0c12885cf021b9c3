package generator

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/dhakseshr/tds-project1/pkg/domain"
	"github.com/dhakseshr/tds-project1/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func dataURL(mime, content string) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString([]byte(content))
}

func TestDecodeAttachments_Success(t *testing.T) {
	atts, err := decodeAttachments([]AttachmentInput{
		{Name: "notes.txt", URL: dataURL("text/plain", "hello world")},
		{Name: "logo.png", URL: dataURL("image/png", "\x89PNG...")},
	}, 1024)
	require.NoError(t, err)
	require.Len(t, atts, 2)
	require.Equal(t, "text/plain", atts[0].MIME)
	require.Equal(t, []byte("hello world"), atts[0].Data)
	require.Equal(t, "image/png", atts[1].MIME)
}

func TestDecodeAttachments_SkipsMalformed(t *testing.T) {
	atts, err := decodeAttachments([]AttachmentInput{
		{Name: "nope", URL: "https://example.com/file.txt"},
		{Name: "bad-b64", URL: "data:text/plain;base64,!!!not-base64!!!"},
		{Name: "ok.txt", URL: dataURL("text/plain", "kept")},
	}, 1024)
	require.NoError(t, err)
	require.Len(t, atts, 1)
	require.Equal(t, "ok.txt", atts[0].Name)
}

func TestDecodeAttachments_DefaultName(t *testing.T) {
	atts, err := decodeAttachments([]AttachmentInput{
		{URL: dataURL("text/plain", "x")},
	}, 1024)
	require.NoError(t, err)
	require.Equal(t, "attachment", atts[0].Name)
}

func TestDecodeAttachments_SanitizesNames(t *testing.T) {
	atts, err := decodeAttachments([]AttachmentInput{
		{Name: "../index.html", URL: dataURL("text/html", "<html>evil</html>")},
		{Name: "a/b/data.csv", URL: dataURL("text/csv", "a,b")},
		{Name: "/etc/passwd", URL: dataURL("text/plain", "x")},
		{Name: "..", URL: dataURL("text/plain", "x")},
	}, 1024)
	require.NoError(t, err)
	require.Len(t, atts, 4)
	require.Equal(t, "index.html", atts[0].Name)
	require.Equal(t, "data.csv", atts[1].Name)
	require.Equal(t, "passwd", atts[2].Name)
	require.Equal(t, "attachment", atts[3].Name)
}

func TestDecodeAttachments_OversizeIsValidationError(t *testing.T) {
	_, err := decodeAttachments([]AttachmentInput{
		{Name: "big.bin", URL: dataURL("application/octet-stream", strings.Repeat("a", 100))},
	}, 10)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestSummarizeAttachments_TextPreview(t *testing.T) {
	meta := summarizeAttachments([]domain.Attachment{
		{Name: "notes.md", MIME: "text/markdown", Data: []byte("line one\nline two")},
	})
	require.Contains(t, meta, "notes.md")
	require.Contains(t, meta, `line one\nline two`)
}

func TestSummarizeAttachments_CSVFirstLines(t *testing.T) {
	meta := summarizeAttachments([]domain.Attachment{
		{Name: "data.csv", MIME: "text/csv", Data: []byte("a,b\n1,2\n3,4\n5,6\n7,8")},
	})
	require.Contains(t, meta, `a,b\n1,2\n3,4`)
	require.NotContains(t, meta, "7,8")
}

func TestSummarizeAttachments_BinaryBySize(t *testing.T) {
	meta := summarizeAttachments([]domain.Attachment{
		{Name: "logo.png", MIME: "image/png", Data: make([]byte, 256)},
	})
	require.Contains(t, meta, "logo.png (image/png): 256 bytes")
}

func TestSummarizeAttachments_LongTextTruncated(t *testing.T) {
	meta := summarizeAttachments([]domain.Attachment{
		{Name: "big.txt", MIME: "text/plain", Data: []byte(strings.Repeat("x", 5000))},
	})
	require.Less(t, len(meta), 1200)
}
