package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/trvswgnr/gopher-doom/model"
)

// Renderer draws complete frames of a world off screen.
type Renderer struct {
	sim  *model.Simulation
	comp *Compositor
	hud  *HUD
	fb   *Framebuffer
}

func NewRenderer(sim *model.Simulation, textureSize int, fontSize float64) (*Renderer, error) {
	text, err := NewText(fontSize)
	if err != nil {
		return nil, err
	}
	cfg := sim.Scene().Config
	tex := NewTextures(textureSize)
	return &Renderer{
		sim:  sim,
		comp: NewCompositor(tex),
		hud:  NewHUD(text, sim.Scene().Grid, tex),
		fb:   NewFramebuffer(cfg.ScreenWidth, cfg.ScreenHeight),
	}, nil
}

// Draw renders w into the renderer's framebuffer and returns it. The buffer
// is reused by the next call.
func (r *Renderer) Draw(w model.World) (*Framebuffer, error) {
	r.comp.Compose(r.fb, r.sim.Render(w))
	if err := r.hud.Draw(r.fb, w); err != nil {
		return nil, err
	}
	return r.fb, nil
}

func WritePNG(out io.Writer, img image.Image) error {
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WritePNG(f, img)
}
