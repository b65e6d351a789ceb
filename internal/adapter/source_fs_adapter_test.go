package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

var defaultFilter = FileFilter{
	Include: []string{"**/*.js"},
	Exclude: []string{"**/node_modules/**", "**/*.min.js"},
}

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.js"), "main();\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.js"), "child();\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, _ os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.NotContains(t, visited, filepath.Join(nestedDir, "child.js"))
		assert.Contains(t, visited, filepath.Join(root, "main.js"))
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		child := filepath.Join(root, "nested", "child.js")
		mustMkdir(t, filepath.Dir(child))
		writeTestFile(t, child, "child();\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, _ os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.Contains(t, visited, child)
	})
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	root := t.TempDir()

	writeTestFile(t, filepath.Join(root, "app.js"), "")
	writeTestFile(t, filepath.Join(root, "app.min.js"), "")
	writeTestFile(t, filepath.Join(root, "README.md"), "")
	writeTestFile(t, filepath.Join(root, "lib", "util.js"), "")
	writeTestFile(t, filepath.Join(root, "lib", "deep", "more.js"), "")
	writeTestFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), "")

	adapter := NewLocalSourceFSAdapter()

	t.Run("recursive root applies include and exclude", func(t *testing.T) {
		files, missing, err := adapter.Get([]m.Path{m.Path(root + "/...")}, defaultFilter)
		require.NoError(t, err)
		assert.Empty(t, missing)

		assert.ElementsMatch(t, []m.Path{
			m.Path(filepath.Join(root, "app.js")),
			m.Path(filepath.Join(root, "lib", "util.js")),
			m.Path(filepath.Join(root, "lib", "deep", "more.js")),
		}, pathsOf(files))

		for _, f := range files {
			assert.Equal(t, m.Path(root+"/..."), f.Root)
		}
	})

	t.Run("plain directory is not recursive", func(t *testing.T) {
		files, _, err := adapter.Get([]m.Path{m.Path(root)}, defaultFilter)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "app.js"))}, pathsOf(files))
	})

	t.Run("explicit file bypasses filters", func(t *testing.T) {
		readme := filepath.Join(root, "README.md")

		files, _, err := adapter.Get([]m.Path{m.Path(readme)}, defaultFilter)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(readme)}, pathsOf(files))
	})

	t.Run("missing roots are reported", func(t *testing.T) {
		ghost := m.Path(filepath.Join(root, "ghost.js"))

		files, missing, err := adapter.Get([]m.Path{ghost, m.Path(filepath.Join(root, "app.js"))}, defaultFilter)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{ghost}, missing)
		assert.Len(t, files, 1)
	})

	t.Run("overlapping roots yield each file once", func(t *testing.T) {
		files, _, err := adapter.Get([]m.Path{
			m.Path(root),
			m.Path(filepath.Join(root, "app.js")),
			m.Path(root + "/..."),
		}, defaultFilter)
		require.NoError(t, err)

		assert.Len(t, files, 3)
	})

	t.Run("no roots", func(t *testing.T) {
		files, missing, err := adapter.Get(nil, defaultFilter)
		require.NoError(t, err)
		assert.Empty(t, files)
		assert.Empty(t, missing)
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.js")
	writeTestFile(t, path, "content")

	adapter := NewLocalSourceFSAdapter()

	data, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	_, err = adapter.ReadFile(m.Path(path + ".missing"))
	assert.Error(t, err)
}

func TestParseRootPath(t *testing.T) {
	tests := []struct {
		in            string
		wantPath      string
		wantRecursive bool
	}{
		{"...", ".", true},
		{"./...", ".", true},
		{"src/...", "src", true},
		{"src", "src", false},
		{"app.js", "app.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			path, recursive := parseRootPath(tt.in)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantRecursive, recursive)
		})
	}
}

func TestNormalizeRootPath(t *testing.T) {
	path, recursive, err := normalizeRootPath("./src/../lib/...")
	require.NoError(t, err)
	assert.Equal(t, "lib", path)
	assert.True(t, recursive)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path, recursive, err = normalizeRootPath("~/project")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "project"), path)
	assert.False(t, recursive)
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, matchesAny([]string{"**/*.js"}, "app.js"))
	assert.True(t, matchesAny([]string{"**/*.js"}, "lib/deep/app.js"))
	assert.True(t, matchesAny([]string{"**/*.min.js"}, "lib/app.min.js"))
	assert.False(t, matchesAny([]string{"**/*.js"}, "README.md"))
	assert.False(t, matchesAny(nil, "app.js"))
	assert.False(t, matchesAny([]string{"[invalid"}, "app.js"))
}

func pathsOf(files []m.SourceFile) []m.Path {
	paths := make([]m.Path, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}

	return paths
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(path, 0o755))
}
