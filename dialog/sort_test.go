package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sortFixture() []FileEntry {
	return []FileEntry{
		{Name: "zebra.txt", Size: 100, ModTime: 300},
		{Name: "Apple.txt", Size: 300, ModTime: 100},
		{Name: "mango.txt", Size: 200, ModTime: 200},
		{Name: "videos", IsDir: true, ModTime: 50},
		{Name: "Backups", IsDir: true, ModTime: 400},
	}
}

func names(entries []FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSortDirectoriesAlwaysFirst(t *testing.T) {
	orders := []SortOrder{
		SortNameAsc, SortNameDesc,
		SortSizeAsc, SortSizeDesc,
		SortDateAsc, SortDateDesc,
	}
	for _, order := range orders {
		entries := sortFixture()
		SortEntries(entries, order)
		assert.True(t, entries[0].IsDir, "order %v: first entry should be a directory", order)
		assert.True(t, entries[1].IsDir, "order %v: second entry should be a directory", order)
		for _, e := range entries[2:] {
			assert.False(t, e.IsDir, "order %v: files must follow directories", order)
		}
	}
}

func TestSortNameCaseInsensitive(t *testing.T) {
	entries := sortFixture()
	SortEntries(entries, SortNameAsc)
	assert.Equal(t, []string{"Backups", "videos", "Apple.txt", "mango.txt", "zebra.txt"}, names(entries))

	entries = sortFixture()
	SortEntries(entries, SortNameDesc)
	assert.Equal(t, []string{"videos", "Backups", "zebra.txt", "mango.txt", "Apple.txt"}, names(entries))
}

func TestSortBySize(t *testing.T) {
	entries := sortFixture()
	SortEntries(entries, SortSizeAsc)
	assert.Equal(t, []string{"zebra.txt", "mango.txt", "Apple.txt"}, names(entries)[2:])

	entries = sortFixture()
	SortEntries(entries, SortSizeDesc)
	assert.Equal(t, []string{"Apple.txt", "mango.txt", "zebra.txt"}, names(entries)[2:])
}

func TestSortByDate(t *testing.T) {
	entries := sortFixture()
	SortEntries(entries, SortDateAsc)
	assert.Equal(t, []string{"Apple.txt", "mango.txt", "zebra.txt"}, names(entries)[2:])

	entries = sortFixture()
	SortEntries(entries, SortDateDesc)
	assert.Equal(t, []string{"zebra.txt", "mango.txt", "Apple.txt"}, names(entries)[2:])
}

func TestSortStable(t *testing.T) {
	entries := []FileEntry{
		{Name: "b.txt", Size: 10},
		{Name: "a.txt", Size: 10},
		{Name: "c.txt", Size: 10},
	}
	SortEntries(entries, SortSizeAsc)
	// Equal sizes keep their original order
	assert.Equal(t, []string{"b.txt", "a.txt", "c.txt"}, names(entries))
}

func TestSortOrderLabels(t *testing.T) {
	for order := SortNameAsc; order <= SortDateDesc; order++ {
		assert.NotEmpty(t, order.Label())
	}
}
