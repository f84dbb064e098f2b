package dialog

import (
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const maxFontCacheSize = 24

var (
	fontLoadOnce  sync.Once
	parsedFont    *opentype.Font
	fontLoadError error

	fontCache    = make(map[float64]font.Face)
	fontCacheMux sync.RWMutex
)

func initFont() {
	parsedFont, fontLoadError = opentype.Parse(goregular.TTF)
	if fontLoadError != nil {
		log.Printf("[FONT] Failed to parse bundled font: %v, using fallback", fontLoadError)
	}
}

// loadFont returns a cached face at the given size, falling back to the
// basic bitmap font if the bundled TTF cannot be used.
func loadFont(size float64) font.Face {
	fontLoadOnce.Do(initFont)

	fontCacheMux.RLock()
	if cached, exists := fontCache[size]; exists {
		fontCacheMux.RUnlock()
		return cached
	}
	fontCacheMux.RUnlock()

	if fontLoadError != nil || parsedFont == nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(parsedFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("[FONT] Failed to create font face: %v, using fallback", err)
		return basicfont.Face7x13
	}

	fontCacheMux.Lock()
	if len(fontCache) >= maxFontCacheSize {
		for key := range fontCache {
			delete(fontCache, key)
			break
		}
	}
	fontCache[size] = face
	fontCacheMux.Unlock()

	return face
}
