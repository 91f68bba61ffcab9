package problems

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogGetCachesByID(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, "fractions.json", filepath.Join(dir, "fractions.json"))

	catalog, err := NewCatalog(dir, 0, nil)
	require.NoError(t, err)

	first, err := catalog.Get("fractions")
	require.NoError(t, err)

	// Removing the file proves the second lookup never touches the disk.
	require.NoError(t, os.Remove(filepath.Join(dir, "fractions.json")))

	second, err := catalog.Get("fractions")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCatalogGetErrors(t *testing.T) {
	catalog, err := NewCatalog("testdata", 4, nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		id   string
		want error
	}{
		{name: "unknown id", id: "unknown", want: ErrDocumentNotFound},
		{name: "malformed", id: "missing_steps", want: ErrMalformedDocument},
		{name: "path traversal", id: "../store_test", want: ErrInvalidID},
		{name: "empty id", id: "", want: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Get(tt.id)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestCatalogListSkipsMalformed(t *testing.T) {
	catalog, err := NewCatalog("testdata", 0, nil)
	require.NoError(t, err)

	summaries, err := catalog.List()
	require.NoError(t, err)

	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"fractions", "no_questions"}, ids)
	assert.Equal(t, 2, summaries[0].StepCount)
}

func TestCatalogSearch(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, "fractions.json", filepath.Join(dir, "hard4.json"))
	copyFixture(t, filepath.Join("..", "..", "data", "hard3.json"), filepath.Join(dir, "hard3.json"))

	catalog, err := NewCatalog(dir, 0, nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "empty query lists all", query: "", expected: []string{"hard3", "hard4"}},
		{name: "topic match", query: "fractions", expected: []string{"hard4"}},
		{name: "case insensitive", query: "PARENTHESES", expected: []string{"hard3"}},
		{name: "typo tolerance", query: "fractons", expected: []string{"hard4"}},
		{name: "no match", query: "geometry", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := catalog.Search(tt.query)
			require.NoError(t, err)

			ids := []string{}
			for _, r := range results {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func copyFixture(t *testing.T, src, dst string) {
	t.Helper()
	if !filepath.IsAbs(src) && filepath.Dir(src) == "." {
		src = filepath.Join("testdata", src)
	}
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0o644))
}
