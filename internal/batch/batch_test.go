package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/chart-csv/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
}

func TestProcessor_Discover(t *testing.T) {
	in := t.TempDir()
	writeFiles(t, in, "b.csv", "a.CSV", "notes.txt", "image.png")
	require.NoError(t, os.Mkdir(filepath.Join(in, "nested.csv"), 0750))

	tests := []struct {
		name       string
		extensions []string
		want       []Job
	}{
		{
			name: "default extensions",
			want: []Job{
				{Input: filepath.Join(in, "a.CSV"), Output: filepath.Join("out", "a.json")},
				{Input: filepath.Join(in, "b.csv"), Output: filepath.Join("out", "b.json")},
				{Input: filepath.Join(in, "notes.txt"), Output: filepath.Join("out", "notes.json")},
			},
		},
		{
			name:       "custom extension",
			extensions: []string{".PNG"},
			want: []Job{
				{Input: filepath.Join(in, "image.png"), Output: filepath.Join("out", "image.json")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(logging.NewMockLogger(), tt.extensions...)
			jobs, err := p.Discover(in, "out", ".json")
			require.NoError(t, err)
			assert.Equal(t, tt.want, jobs)
		})
	}
}

func TestProcessor_DiscoverMissingDir(t *testing.T) {
	p := NewProcessor(logging.NewMockLogger())
	_, err := p.Discover(filepath.Join(t.TempDir(), "missing"), "out", ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input directory")
}

func TestProcessor_Run(t *testing.T) {
	logger := logging.NewMockLogger()
	p := NewProcessor(logger)
	jobs := []Job{{Input: "a.csv"}, {Input: "b.csv"}, {Input: "c.csv"}}
	boom := errors.New("boom")

	var seen []string
	summary := p.Run(jobs, func(j Job) error {
		seen = append(seen, j.Input)
		if j.Input == "b.csv" {
			return boom
		}
		return nil
	})

	assert.Equal(t, []string{"a.csv", "b.csv", "c.csv"}, seen)
	assert.Equal(t, 2, summary.Succeeded())
	failed := summary.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "b.csv", failed[0].Job.Input)
	assert.ErrorIs(t, failed[0].Err, boom)
	assert.True(t, logger.HasEntry("WARN", "Failed to process file"))
}
