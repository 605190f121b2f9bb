package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestDefaultFileFormatter(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	f := NewDefaultFileFormatter()

	t.Run("discovered", func(t *testing.T) {
		assert.Equal(t, "Found 3 repository files to process", f.FormatDiscovered("repository", 3))
		assert.Equal(t, "Found 0 service files to process", f.FormatDiscovered("service", 0))
		assert.Equal(t, "Found 1 files to process", f.FormatDiscovered("", 1))
	})

	t.Run("file_results", func(t *testing.T) {
		tests := []struct {
			name   string
			result FileResult
			want   string
		}{
			{
				name:   "modified",
				result: Succeeded("src/repo/A.java", 3, true),
				want:   "Fixed src/repo/A.java",
			},
			{
				name:   "unchanged_still_fixed",
				result: Succeeded("src/repo/B.java", 0, false),
				want:   "Fixed src/repo/B.java",
			},
			{
				name:   "failed",
				result: Failed("src/repo/C.java", errors.New("writing file: permission denied")),
				want:   "Error processing src/repo/C.java: writing file: permission denied",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, f.FormatFileResult(tt.result))
			})
		}
	})

	t.Run("summary", func(t *testing.T) {
		s := NewSummary(0)
		assert.Equal(t, "Successfully processed 0 out of 0 files", f.FormatSummary(s))

		s = NewSummary(2)
		s.Record(Succeeded("a", 1, true))
		s.Record(Failed("b", errors.New("boom")))
		assert.Equal(t, "Successfully processed 1 out of 2 files", f.FormatSummary(s))
	})
}
