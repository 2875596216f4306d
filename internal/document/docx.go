package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// FromDOCX extracts the visible text of a DOCX file. The document body
// lives in word/document.xml inside the zip container; text runs are
// collected in order and paragraphs become newlines.
func FromDOCX(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX container: %w", err)
	}

	var body io.ReadCloser
	for _, file := range reader.File {
		if file.Name == "word/document.xml" {
			body, err = file.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document body: %w", err)
			}
			break
		}
	}
	if body == nil {
		return "", fmt.Errorf("DOCX container has no word/document.xml")
	}
	defer func() { _ = body.Close() }()

	text, err := documentXMLText(body)
	if err != nil {
		return "", fmt.Errorf("failed to parse document body: %w", err)
	}
	text = NormalizeText(text)
	if text == "" {
		return "", &EmptyContentError{Source: "DOCX file"}
	}
	return text, nil
}

// documentXMLText walks the WordprocessingML token stream and keeps the
// character data inside w:t elements. Paragraph ends and tabs map to
// newline and tab so list-style postings keep their shape.
func documentXMLText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch tok.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(tok)
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
