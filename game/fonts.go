package game

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type fonts struct {
	// hud is the small bitmap face for status text.
	hud text.Face
	// title and body are TrueType faces for the end screen.
	title font.Face
	body  font.Face
}

func loadFonts() (*fonts, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &fonts{
		hud:   text.NewGoXFace(basicfont.Face7x13),
		title: truetype.NewFace(tt, &truetype.Options{Size: 48, Hinting: font.HintingFull}),
		body:  truetype.NewFace(tt, &truetype.Options{Size: 20, Hinting: font.HintingFull}),
	}, nil
}
