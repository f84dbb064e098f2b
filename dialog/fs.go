package dialog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileEntry represents one row of a directory listing. Entries are rebuilt
// wholesale on every refresh and never mutated afterwards.
type FileEntry struct {
	Name    string // leaf name
	Path    string // fully qualified path
	IsDir   bool
	Size    int64 // bytes, always 0 for directories
	ModTime int64 // unix seconds, 0 when the stat failed
}

// ListDirectory enumerates the immediate children of path, sorted by
// sortOrder. Enumeration failure (missing path, permission denied) yields an
// empty slice rather than an error; a per-entry stat failure leaves that
// entry's size and mtime at zero rather than aborting the listing.
func ListDirectory(path string, sortOrder SortOrder) []FileEntry {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}

	entries := make([]FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := FileEntry{
			Name:  de.Name(),
			Path:  filepath.Join(path, de.Name()),
			IsDir: de.IsDir(),
		}
		if info, err := de.Info(); err == nil {
			if !entry.IsDir {
				entry.Size = info.Size()
			}
			entry.ModTime = info.ModTime().Unix()
		}
		entries = append(entries, entry)
	}

	SortEntries(entries, sortOrder)
	return entries
}

// ListDirectoryFiltered lists path like ListDirectory but keeps only files
// whose extension matches (case-insensitively) one of extensions.
// Directories are always retained so navigation stays possible. An empty
// extensions list behaves exactly like ListDirectory.
func ListDirectoryFiltered(path string, extensions []string, sortOrder SortOrder) []FileEntry {
	entries := ListDirectory(path, sortOrder)
	if len(extensions) == 0 {
		return entries
	}

	filtered := entries[:0]
	for _, entry := range entries {
		if entry.IsDir {
			filtered = append(filtered, entry)
			continue
		}
		ext := GetExtension(entry.Name)
		for _, allowed := range extensions {
			if strings.EqualFold(ext, allowed) {
				filtered = append(filtered, entry)
				break
			}
		}
	}
	return filtered
}

// GetHomeDirectory returns the user's home directory, or the filesystem
// root when it cannot be resolved.
func GetHomeDirectory() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if os.PathSeparator == '\\' {
		return `C:\`
	}
	return "/"
}

// GetDocumentsDirectory returns the user's Documents directory, falling
// back to the home directory if no such subdirectory exists.
func GetDocumentsDirectory() string {
	home := GetHomeDirectory()
	docs := filepath.Join(home, "Documents")
	if IsDirectory(docs) {
		return docs
	}
	return home
}

// GetParentDirectory returns the syntactic parent of path. At a filesystem
// root the path is returned unchanged; callers compare against the input to
// detect "already at root".
func GetParentDirectory(path string) string {
	parent := filepath.Dir(filepath.Clean(path))
	return parent
}

// Exists reports whether a path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory reports whether path exists and is a directory.
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CreateDirectory creates path and any missing parents. It returns false on
// failure (name collision with a file, permission denied) and never panics.
func CreateDirectory(path string) bool {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return false
	}
	// MkdirAll succeeds silently when the path already exists as a
	// directory, but reports no error for a pre-existing file only via stat.
	return IsDirectory(path)
}

// GetExtension returns the extension of path, lower-cased with leading dot,
// or "" when there is none.
func GetExtension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// GetStem returns the leaf name of path without its extension.
func GetStem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// GetFilename returns the leaf name of path.
func GetFilename(path string) string {
	return filepath.Base(path)
}

// CombinePath joins a base directory and a child component.
func CombinePath(base, child string) string {
	return filepath.Join(base, child)
}

// FormatFileSize renders bytes with binary (1024-based) units, stopping at
// TB. The B unit carries no decimals, everything above carries one.
func FormatFileSize(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", int64(size), units[unit])
	}
	return fmt.Sprintf("%.1f %s", size, units[unit])
}

// FormatDate renders a unix timestamp as local-time "YYYY-MM-DD HH:MM".
// A zero timestamp (unknown mtime) formats as an empty string.
func FormatDate(unixSeconds int64) string {
	if unixSeconds == 0 {
		return ""
	}
	return time.Unix(unixSeconds, 0).Local().Format("2006-01-02 15:04")
}
