// Package document extracts plain text from uploaded job posting files.
// Images go through the vision model, DOCX files are unpacked locally.
package document

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/jordan/job-tracker/internal/llm"
)

// MIME types with dedicated extraction paths.
const (
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePDF  = "application/pdf"
	MimeText = "text/plain"
)

// EmptyContentError indicates an input yielded no usable text.
type EmptyContentError struct {
	Source string
}

func (e *EmptyContentError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("no text content found in %s", e.Source)
	}
	return "no text content found"
}

// UnsupportedFormatError indicates the uploaded file type has no
// extraction path.
type UnsupportedFormatError struct {
	MimeType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.MimeType)
}

// ExtractText returns the plain text of an uploaded file. Image types are
// transcribed by the vision model; DOCX files are unpacked without a model
// call. PDF is not supported. Content-Type parameters like charset are
// ignored for dispatch.
func ExtractText(ctx context.Context, client llm.Client, mimeType string, data []byte) (string, error) {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mediaType = mimeType
	}

	switch {
	case strings.HasPrefix(mediaType, "image/"):
		return FromImage(ctx, client, mediaType, data)
	case mediaType == MimeDOCX:
		return FromDOCX(data)
	case mediaType == MimeText:
		text := strings.TrimSpace(string(data))
		if text == "" {
			return "", &EmptyContentError{Source: "text file"}
		}
		return text, nil
	default:
		return "", &UnsupportedFormatError{MimeType: mediaType}
	}
}
