package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"giftbag/internal/config"
)

// Fonts holds the faces used by the HUD and the game-over screen.
type Fonts struct {
	Regular *text.GoTextFace
	Large   *text.GoTextFace
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := loadSource("goregular", goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := loadSource("gobold", gobold.TTF)
	if err != nil {
		return nil, err
	}

	return &Fonts{
		Regular: &text.GoTextFace{Source: regular, Size: config.FontSize},
		Large:   &text.GoTextFace{Source: bold, Size: config.LargeFontSize},
	}, nil
}

func loadSource(name string, ttf []byte) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", name, err)
	}
	return src, nil
}
