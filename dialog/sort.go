package dialog

import (
	"sort"
	"strings"
)

// SortEntries orders entries in place. Directories always precede files;
// the sort key only breaks ties within the same group. The sort is stable
// so equal keys keep their enumeration order.
func SortEntries(entries []FileEntry, order SortOrder) {
	less := entryLess(order)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return less(a, b)
	})
}

func entryLess(order SortOrder) func(a, b FileEntry) bool {
	switch order {
	case SortNameDesc:
		return func(a, b FileEntry) bool {
			return strings.ToLower(a.Name) > strings.ToLower(b.Name)
		}
	case SortSizeAsc:
		return func(a, b FileEntry) bool { return a.Size < b.Size }
	case SortSizeDesc:
		return func(a, b FileEntry) bool { return a.Size > b.Size }
	case SortDateAsc:
		return func(a, b FileEntry) bool { return a.ModTime < b.ModTime }
	case SortDateDesc:
		return func(a, b FileEntry) bool { return a.ModTime > b.ModTime }
	default: // SortNameAsc
		return func(a, b FileEntry) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}
