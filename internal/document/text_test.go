package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "collapses repeated spaces",
			input: "Backend   Engineer  at Acme",
			want:  "Backend Engineer at Acme",
		},
		{
			name:  "normalizes CRLF",
			input: "Requirements:\r\n- Go\r\n- SQL",
			want:  "Requirements:\n- Go\n- SQL",
		},
		{
			name:  "keeps bullet indentation",
			input: "- Go\n  - generics\n  - channels",
			want:  "- Go\n  - generics\n  - channels",
		},
		{
			name:  "caps blank line runs",
			input: "Title\n\n\n\n\nBody",
			want:  "Title\n\nBody",
		},
		{
			name:  "strips trailing whitespace",
			input: "Title   \nBody\t\n",
			want:  "Title\nBody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}
