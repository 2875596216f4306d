package extract

// Request is a single extraction input. Exactly one of Text, URL, or File
// should be set; they are checked in that order.
type Request struct {
	Text string
	URL  string
	File *FileInput
}

// FileInput is an uploaded document to extract from.
type FileInput struct {
	Data     []byte
	MimeType string
}
