package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarkdown(t *testing.T) {
	tests := []struct {
		name          string
		markdown      string
		pdfPath       func(t *testing.T) string
		wantErr       bool
		wantErrMsg    string
		validateAfter func(t *testing.T, pdfPath string)
	}{
		{
			name:     "invalid extension",
			markdown: "# Test Document\n",
			pdfPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "test.txt")
			},
			wantErr:    true,
			wantErrMsg: "output file must have .pdf extension",
		},
		{
			name:     "successful conversion",
			markdown: "# Test Document\n\nThis is a _test_ document with **strong** words.\n\n* one\n* two\n",
			pdfPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "test.pdf")
			},
			validateAfter: func(t *testing.T, pdfPath string) {
				info, err := os.Stat(pdfPath)
				require.NoError(t, err, "PDF file should be created")
				assert.Positive(t, info.Size())
				assert.True(t, filepath.IsAbs(pdfPath))
			},
		},
		{
			name:     "creates missing directories",
			markdown: "## Nested\n\nA paragraph.\n",
			pdfPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "out", "docs", "nested.pdf")
			},
			validateAfter: func(t *testing.T, pdfPath string) {
				_, err := os.Stat(pdfPath)
				assert.NoError(t, err)
				assert.Equal(t, ".pdf", filepath.Ext(pdfPath))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath, err := WriteMarkdown(tt.markdown, tt.pdfPath(t))

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, pdfPath)

			if tt.validateAfter != nil {
				tt.validateAfter(t, pdfPath)
			}
		})
	}
}
