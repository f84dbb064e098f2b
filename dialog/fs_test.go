package dialog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	writeFile(t, dir, "a.txt", "hello")
	writeFile(t, dir, "b.txt", "hi")

	entries := ListDirectory(dir, SortNameAsc)
	require.Len(t, entries, 3)

	assert.Equal(t, "sub", entries[0].Name)
	assert.True(t, entries[0].IsDir)
	assert.Zero(t, entries[0].Size)

	assert.Equal(t, "a.txt", entries[1].Name)
	assert.False(t, entries[1].IsDir)
	assert.Equal(t, int64(5), entries[1].Size)
	assert.NotZero(t, entries[1].ModTime)
	assert.Equal(t, filepath.Join(dir, "a.txt"), entries[1].Path)
}

func TestListDirectoryMissingPath(t *testing.T) {
	entries := ListDirectory(filepath.Join(t.TempDir(), "nope"), SortNameAsc)
	assert.Empty(t, entries)
}

func TestListDirectoryFiltered(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0o755))
	writeFile(t, dir, "notes.txt", "x")
	writeFile(t, dir, "REPORT.TXT", "x")
	writeFile(t, dir, "image.png", "x")

	entries := ListDirectoryFiltered(dir, []string{".txt"}, SortNameAsc)
	require.Len(t, entries, 3)
	assert.Equal(t, "docs", entries[0].Name) // directories always kept
	assert.Equal(t, "notes.txt", entries[1].Name)
	assert.Equal(t, "REPORT.TXT", entries[2].Name)
}

func TestListDirectoryFilteredEmptyExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x")
	writeFile(t, dir, "b.png", "x")

	entries := ListDirectoryFiltered(dir, nil, SortNameAsc)
	assert.Len(t, entries, 2)
}

func TestGetParentDirectory(t *testing.T) {
	assert.Equal(t, "/", GetParentDirectory("/"))
	assert.Equal(t, "/home", GetParentDirectory("/home/user"))
	assert.Equal(t, "/", GetParentDirectory("/home"))
}

func TestCreateDirectory(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, CreateDirectory(filepath.Join(dir, "new")))
	assert.True(t, IsDirectory(filepath.Join(dir, "new")))

	// Creating an existing directory succeeds
	assert.True(t, CreateDirectory(filepath.Join(dir, "new")))

	// Nested parents are created
	nested := filepath.Join(dir, "a", "b", "c")
	assert.True(t, CreateDirectory(nested))
	assert.True(t, IsDirectory(nested))

	// Colliding with an existing file fails without panicking
	file := writeFile(t, dir, "taken", "x")
	assert.False(t, CreateDirectory(file))
}

func TestPathPredicates(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "f.txt", "x")

	assert.True(t, Exists(dir))
	assert.True(t, Exists(file))
	assert.False(t, Exists(filepath.Join(dir, "missing")))

	assert.True(t, IsDirectory(dir))
	assert.False(t, IsDirectory(file))

	assert.True(t, IsFile(file))
	assert.False(t, IsFile(dir))
}

func TestGetExtension(t *testing.T) {
	assert.Equal(t, ".txt", GetExtension("notes.txt"))
	assert.Equal(t, ".txt", GetExtension("REPORT.TXT"))
	assert.Equal(t, ".gz", GetExtension("archive.tar.gz"))
	assert.Equal(t, "", GetExtension("Makefile"))
}

func TestGetStem(t *testing.T) {
	assert.Equal(t, "notes", GetStem("/tmp/notes.txt"))
	assert.Equal(t, "archive.tar", GetStem("archive.tar.gz"))
	assert.Equal(t, "Makefile", GetStem("Makefile"))
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
		{1099511627776, "1.0 TB"},
		{1099511627776 * 2048, "2048.0 TB"}, // stops at TB
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.bytes), "bytes=%d", tt.bytes)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(0))
	assert.NotEmpty(t, FormatDate(1700000000))
	assert.Len(t, FormatDate(1700000000), len("2006-01-02 15:04"))
}

func TestGetHomeAndDocuments(t *testing.T) {
	home := GetHomeDirectory()
	assert.NotEmpty(t, home)

	docs := GetDocumentsDirectory()
	assert.NotEmpty(t, docs)
	assert.True(t, IsDirectory(docs) || docs == home)
}

func TestGetDrives(t *testing.T) {
	drives := GetDrives()
	assert.NotEmpty(t, drives)
	for _, d := range drives {
		assert.True(t, IsDirectory(d), "drive %q should be a directory", d)
	}
}
