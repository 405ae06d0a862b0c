package pdfcpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextFromStream(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{
			name:   "Tj operator",
			stream: "BT\n/F1 12 Tf\n(John Doe) Tj\nET",
			want:   "John Doe",
		},
		{
			name:   "TJ array operator",
			stream: "BT\n[(John) -250 (Doe)] TJ\nET",
			want:   "JohnDoe",
		},
		{
			name:   "Td repositioning splits lines",
			stream: "BT\n(John Doe) Tj\n0 -14 Td\n(john@example.com) Tj\nET",
			want:   "John Doe\njohn@example.com",
		},
		{
			name:   "T* splits lines",
			stream: "BT\n(John Doe) Tj\nT*\n(Engineer) Tj\nET",
			want:   "John Doe\nEngineer",
		},
		{
			name:   "quote operator starts a new line",
			stream: "BT\n(John Doe) Tj\n(Engineer) '\nET",
			want:   "John Doe\nEngineer",
		},
		{
			name:   "escaped open parenthesis",
			stream: `(Skills \(core) Tj`,
			want:   "Skills (core",
		},
		{
			name:   "octal escape",
			stream: `(John\040Doe) Tj`,
			want:   "John Doe",
		},
		{
			name:   "non-text operators ignored",
			stream: "q\n1 0 0 1 72 720 cm\nQ",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, extractTextFromStream([]byte(tt.stream)))
		})
	}
}

func TestCleanPageText(t *testing.T) {
	t.Parallel()

	got := cleanPageText("  John   Doe \n\n\n  Engineer\t\tat  Acme  \n")

	assert.Equal(t, "John Doe\nEngineer at Acme", got)
}
