package dialog

import "strings"

// FileFilter is a named group of file extensions, e.g.
// {"Text Files", "*.txt;*.md"}. Immutable once constructed.
type FileFilter struct {
	Description string // e.g. "Text Files"
	Extensions  string // raw spec, e.g. "*.txt" or "*.txt;*.md"
}

// GetExtensionList parses the raw spec into lower-cased dotted extensions,
// e.g. "*.txt;*.MD" -> [".txt", ".md"]. A spec with no "*." tokens, or one
// containing the "*.*" wildcard, yields an empty list, which callers treat
// as "match everything".
func (f FileFilter) GetExtensionList() []string {
	var result []string

	spec := f.Extensions
	for {
		pos := strings.Index(spec, "*.")
		if pos < 0 {
			break
		}
		spec = spec[pos+2:]
		ext := spec
		end := strings.IndexAny(spec, ";,")
		if end >= 0 {
			ext = spec[:end]
			spec = spec[end+1:]
		}
		if ext == "*" {
			return nil
		}
		result = append(result, "."+strings.ToLower(ext))
		if end < 0 {
			break
		}
	}

	return result
}

// ToDisplayString renders the filter for dropdowns: "Description (*.ext)".
func (f FileFilter) ToDisplayString() string {
	return f.Description + " (" + f.Extensions + ")"
}

// ToFilterString renders the Windows-style "Description|*.ext" form.
func (f FileFilter) ToFilterString() string {
	return f.Description + "|" + f.Extensions
}
