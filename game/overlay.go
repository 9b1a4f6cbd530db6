package game

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"github.com/trvswgnr/gopher-doom/model"
)

// overlay is the game-over / win screen.
type overlay struct {
	ui    *ebitenui.UI
	title *widget.Text
	score *widget.Text
	high  *widget.Text
	kills *widget.Text
}

func newOverlay(f *fonts) *overlay {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(color.RGBA{0, 0, 0, 128})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(30)),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	root.AddChild(panel)

	line := func(face font.Face, c color.Color) *widget.Text {
		t := widget.NewText(
			widget.TextOpts.Text("", face, c),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			})),
		)
		panel.AddChild(t)
		return t
	}

	o := &overlay{ui: &ebitenui.UI{Container: root}}
	o.title = line(f.title, color.White)
	o.score = line(f.body, color.White)
	o.high = line(f.body, color.White)
	o.kills = line(f.body, color.White)
	line(f.body, color.White).Label = "Press R to Restart"
	line(f.body, color.White).Label = "Press ESC to Quit"
	return o
}

func (o *overlay) set(w model.World) {
	o.title.Label = "GAME OVER"
	o.title.Color = color.RGBA{255, 0, 0, 255}
	if w.State == model.Win {
		o.title.Label = "YOU WIN"
		o.title.Color = color.RGBA{0, 255, 0, 255}
	}
	o.score.Label = fmt.Sprintf("Score: %d", w.Score)
	o.high.Label = fmt.Sprintf("High Score: %d", w.HighScore)
	o.kills.Label = fmt.Sprintf("Kills: %d/%d", w.Kills, len(w.Entities))
}

func (o *overlay) Update() { o.ui.Update() }

func (o *overlay) Draw(screen *ebiten.Image) { o.ui.Draw(screen) }
