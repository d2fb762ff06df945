// internal/assets/font_manager.go
package assets

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager загружает TTF один раз и кэширует начертания по размеру.
type FontManager struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager парсит шрифт из файла path. Пустой путь — встроенный Go Regular.
func NewFontManager(path string) (*FontManager, error) {
	data := goregular.TTF
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", path, err)
		}
		data = raw
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontManager{
		font:  tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face возвращает начертание заданного размера, создавая его при первом запросе.
func (m *FontManager) Face(size float64) font.Face {
	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// размер из конфига, ошибка тут означает битый шрифт
		log.Printf("WARNING: failed to create font face of size %.0f: %v", size, err)
		return nil
	}
	m.faces[size] = face
	return face
}

// Close освобождает все созданные начертания.
func (m *FontManager) Close() {
	for size, face := range m.faces {
		if err := face.Close(); err != nil {
			log.Printf("WARNING: failed to close font face %.0f: %v", size, err)
		}
		delete(m.faces, size)
	}
}
