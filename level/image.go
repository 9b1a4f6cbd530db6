package level

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-doom/model"
)

// Entity is what a single pixel of a level image stands for.
type Entity int

const (
	EntityEmpty Entity = iota
	EntityWall
	EntityPlayer
	EntityImp
	EntityCacodemon
	EntityBaron
	EntityHealth
	EntityArmor
	EntityAmmo
)

var (
	ColorEmpty     = color.RGBA{255, 255, 255, 255}
	ColorWall      = color.RGBA{0, 0, 0, 255}
	ColorPlayer    = color.RGBA{0, 0, 255, 255}
	ColorImp       = color.RGBA{255, 0, 0, 255}
	ColorCacodemon = color.RGBA{255, 0, 255, 255}
	ColorBaron     = color.RGBA{139, 0, 0, 255}
	ColorHealth    = color.RGBA{0, 255, 0, 255}
	ColorArmor     = color.RGBA{0, 255, 255, 255}
	ColorAmmo      = color.RGBA{255, 255, 0, 255}
)

var entityColors = map[color.RGBA]Entity{
	ColorEmpty:     EntityEmpty,
	ColorWall:      EntityWall,
	ColorPlayer:    EntityPlayer,
	ColorImp:       EntityImp,
	ColorCacodemon: EntityCacodemon,
	ColorBaron:     EntityBaron,
	ColorHealth:    EntityHealth,
	ColorArmor:     EntityArmor,
	ColorAmmo:      EntityAmmo,
}

// LoadImage reads a color-coded level image from disk.
func LoadImage(path string, cellSize float64) (Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return Level{}, fmt.Errorf("open level image: %w", err)
	}
	defer f.Close()

	l, err := Decode(f, cellSize)
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Decode turns an image into a level, one pixel per cell. Every pixel other
// than wall becomes an empty cell; colored pixels also place the player, an
// enemy or a power-up at that cell's center.
func Decode(r io.Reader, cellSize float64) (Level, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Level{}, fmt.Errorf("decode level image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	l := Level{
		Codes:    make([][]int, height),
		CellSize: cellSize,
	}
	foundPlayer := false

	for y := 0; y < height; y++ {
		l.Codes[y] = make([]int, width)
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			ent, ok := entityColors[c]
			if !ok {
				return Level{}, fmt.Errorf("%w: %v at %d,%d", ErrUnknownColor, c, x, y)
			}

			center := geom.Vector2{X: (float64(x) + 0.5) * cellSize, Y: (float64(y) + 0.5) * cellSize}
			switch ent {
			case EntityWall:
				l.Codes[y][x] = 1
			case EntityPlayer:
				// first player pixel wins
				if !foundPlayer {
					l.Spawn.Start = center
					foundPlayer = true
				}
			case EntityImp:
				l.Spawn.Enemies = append(l.Spawn.Enemies, model.EnemySpawn{Kind: model.Imp, Position: center})
			case EntityCacodemon:
				l.Spawn.Enemies = append(l.Spawn.Enemies, model.EnemySpawn{Kind: model.Cacodemon, Position: center})
			case EntityBaron:
				l.Spawn.Enemies = append(l.Spawn.Enemies, model.EnemySpawn{Kind: model.Baron, Position: center})
			case EntityHealth:
				l.Spawn.PowerUps = append(l.Spawn.PowerUps, model.PowerUpSpawn{Kind: model.HealthPack, Position: center})
			case EntityArmor:
				l.Spawn.PowerUps = append(l.Spawn.PowerUps, model.PowerUpSpawn{Kind: model.ArmorPack, Position: center})
			case EntityAmmo:
				l.Spawn.PowerUps = append(l.Spawn.PowerUps, model.PowerUpSpawn{Kind: model.AmmoPack, Position: center})
			}
		}
	}

	if !foundPlayer {
		return Level{}, ErrNoPlayer
	}
	return l, nil
}
