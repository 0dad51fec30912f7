package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "notes.txt", want: true},
		{name: "Paper.PDF", want: true},
		{name: "cards.csv", want: false},
		{name: "slides.docx", want: false},
		{name: "noextension", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Supported(tt.name))
		})
	}
}

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		data        []byte
		want        string
		wantErr     bool
		wantErrType error
	}{
		{
			name:     "text file",
			fileName: "notes.txt",
			data:     []byte("Photosynthesis converts light\ninto chemical energy."),
			want:     "Photosynthesis converts light\ninto chemical energy.",
		},
		{
			name:     "empty text file",
			fileName: "empty.txt",
			data:     []byte{},
			want:     "",
		},
		{
			name:     "invalid utf-8",
			fileName: "binary.txt",
			data:     []byte{0xff, 0xfe, 0xfd},
			wantErr:  true,
		},
		{
			name:        "unsupported extension",
			fileName:    "slides.pptx",
			data:        []byte("x"),
			wantErr:     true,
			wantErrType: ErrUnsupportedFormat,
		},
		{
			name:     "malformed pdf",
			fileName: "broken.pdf",
			data:     []byte("this is not a pdf"),
			wantErr:  true,
		},
	}

	extractor := NewExtractor(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.Extract(context.Background(), tt.fileName, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrType != nil {
					assert.ErrorIs(t, err, tt.wantErrType)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
