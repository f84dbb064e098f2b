package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExtensionList(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []string
	}{
		{"single", "*.txt", []string{".txt"}},
		{"multiple semicolon", "*.txt;*.md", []string{".txt", ".md"}},
		{"multiple comma", "*.jpg,*.png", []string{".jpg", ".png"}},
		{"lowercased", "*.TXT;*.Md", []string{".txt", ".md"}},
		{"match all wildcard", "*.*", nil},
		{"wildcard among others", "*.txt;*.*", nil},
		{"no wildcard tokens", "everything", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FileFilter{Description: "Test", Extensions: tt.spec}
			assert.Equal(t, tt.want, f.GetExtensionList())
		})
	}
}

func TestFilterDisplayStrings(t *testing.T) {
	f := FileFilter{Description: "Text Files", Extensions: "*.txt;*.md"}
	assert.Equal(t, "Text Files (*.txt;*.md)", f.ToDisplayString())
	assert.Equal(t, "Text Files|*.txt;*.md", f.ToFilterString())
}
