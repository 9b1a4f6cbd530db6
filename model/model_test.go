package model

import (
	"math"
	"testing"
	"time"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvswgnr/gopher-doom/engine"
)

const cell = 64.0

func at(cx, cy float64) geom.Vector2 {
	return geom.Vector2{X: cx * cell, Y: cy * cell}
}

func roomCodes(w, h int) [][]int {
	codes := make([][]int, h)
	for y := range codes {
		codes[y] = make([]int, w)
		for x := range codes[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				codes[y][x] = 1
			}
		}
	}
	return codes
}

func newGrid(t *testing.T, codes [][]int) *engine.Grid {
	t.Helper()
	g, err := engine.NewGrid(codes, cell)
	require.NoError(t, err)
	return g
}

func TestPlayer_MoveStopsAtWallMargin(t *testing.T) {
	g := newGrid(t, roomCodes(10, 10))
	p := NewPlayer(96, 96, math.Pi, DefaultPlayerStats())

	for i := 0; i < 10; i++ {
		p.Move(g, 1, 0)
	}
	assert.InDelta(t, 76.0, p.Position.X, 1e-9)
	assert.InDelta(t, 96.0, p.Position.Y, 1e-9)
}

func TestPlayer_MoveSlidesAlongWall(t *testing.T) {
	g := newGrid(t, roomCodes(10, 10))
	p := NewPlayer(76, 96, 3*math.Pi/4, DefaultPlayerStats())

	moved := p.Move(g, 1, 0)
	require.True(t, moved)
	assert.InDelta(t, 76.0, p.Position.X, 1e-9, "x is blocked by the west wall")
	assert.InDelta(t, 96+5*math.Sin(3*math.Pi/4), p.Position.Y, 1e-9)
	assert.True(t, p.Moved)
}

func TestPlayer_Strafe(t *testing.T) {
	g := newGrid(t, roomCodes(10, 10))
	p := NewPlayer(5*cell, 5*cell, 0, DefaultPlayerStats())

	p.Move(g, 0, 1)
	assert.InDelta(t, 5*cell, p.Position.X, 1e-9)
	assert.InDelta(t, 5*cell+5, p.Position.Y, 1e-9)

	p.Move(g, 0, -2)
	assert.InDelta(t, 5*cell-5, p.Position.Y, 1e-9)
}

func TestPlayer_Place(t *testing.T) {
	g := newGrid(t, roomCodes(6, 6))
	p := NewPlayer(96, 96, 0, DefaultPlayerStats())

	require.NoError(t, p.Place(g, at(3.5, 2.5), -math.Pi/2))
	assert.Equal(t, at(3.5, 2.5), p.Position)
	assert.InDelta(t, 3*math.Pi/2, p.Angle, 1e-12)

	require.NoError(t, p.Place(g, at(2.5, 2.5), 5*math.Pi))
	assert.InDelta(t, math.Pi, p.Angle, 1e-9)

	for _, pos := range []geom.Vector2{at(0.5, 0.5), at(-3, 2), at(2.5, 40)} {
		err := p.Place(g, pos, 0)
		assert.ErrorIs(t, err, ErrBlocked)
		assert.Equal(t, at(2.5, 2.5), p.Position, "rejected placement keeps the old position")
	}
}

func TestPlayer_RotateWraps(t *testing.T) {
	p := NewPlayer(0, 0, 0.05, DefaultPlayerStats())
	p.Rotate(-0.1)
	assert.InDelta(t, 2*math.Pi-0.05, p.Angle, 1e-12)

	p.Rotate(0.2)
	assert.InDelta(t, 0.15, p.Angle, 1e-12)
}

func TestPlayer_DamageHitsArmorFirst(t *testing.T) {
	tests := []struct {
		name                  string
		health, armor, damage int
		wantHealth, wantArmor int
		wantTaken             int
	}{
		{"no armor", 100, 0, 25, 75, 0, 25},
		{"armor absorbs all", 100, 30, 10, 100, 20, 0},
		{"armor absorbs part", 100, 20, 25, 95, 0, 5},
		{"lethal", 10, 0, 25, -15, 0, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, 0, 0, DefaultPlayerStats())
			p.Health, p.Armor = tt.health, tt.armor
			assert.Equal(t, tt.wantTaken, p.TakeDamage(tt.damage))
			assert.Equal(t, tt.wantHealth, p.Health)
			assert.Equal(t, tt.wantArmor, p.Armor)
		})
	}
}

func TestPlayer_PickupsAreCapped(t *testing.T) {
	p := NewPlayer(0, 0, 0, DefaultPlayerStats())
	p.Health = 90
	p.Heal(25)
	assert.Equal(t, 100, p.Health)

	p.AddArmor(25)
	p.AddArmor(90)
	assert.Equal(t, 100, p.Armor)
}

func TestWeapon_FireCooldownAndReload(t *testing.T) {
	w := NewWeapon(Pistol)
	require.Equal(t, 12, w.Ammo)

	require.True(t, w.Fire())
	assert.Equal(t, 11, w.Ammo)
	assert.True(t, w.Firing)
	assert.False(t, w.Fire(), "still cooling down")

	ticks := 0
	for !w.CanFire() {
		w.Update(Tick)
		ticks++
	}
	assert.Equal(t, 16, ticks)
	assert.False(t, w.Firing)

	require.True(t, w.Reload())
	assert.False(t, w.Reload(), "already reloading")
	assert.False(t, w.Fire(), "cannot fire while reloading")

	ticks = 0
	for !w.Update(Tick) {
		ticks++
	}
	assert.Equal(t, 60, ticks)
	assert.Equal(t, 12, w.Ammo)
	assert.False(t, w.Reloading)
	assert.False(t, w.Reload(), "full magazine")
}

func TestWeapon_TextureFollowsFiring(t *testing.T) {
	w := NewWeapon(Shotgun)
	idle := w.TextureID()
	require.True(t, w.Fire())
	assert.Equal(t, Shotgun.TextureID(true), w.TextureID())
	assert.NotEqual(t, idle, w.TextureID())

	w.Update(Tick)
	assert.Equal(t, idle, w.TextureID())

	seen := map[int]bool{Baron.TextureID(): true, AmmoPack.TextureID(): true}
	for _, k := range []WeaponKind{Pistol, Shotgun, Plasma} {
		for _, firing := range []bool{false, true} {
			id := k.TextureID(firing)
			assert.False(t, seen[id], "texture %d reused", id)
			seen[id] = true
		}
	}
}

func TestWeapon_Empty(t *testing.T) {
	w := NewWeapon(Shotgun)
	w.Ammo = 0
	assert.False(t, w.CanFire())
	assert.False(t, w.Fire())

	w.Refill()
	assert.Equal(t, 8, w.Ammo)
}

func TestKinds(t *testing.T) {
	k, err := ParseKind("Cacodemon")
	require.NoError(t, err)
	assert.Equal(t, Cacodemon, k)
	assert.Equal(t, 200, k.Stats().Score)

	_, err = ParseKind("cyberdemon")
	assert.ErrorIs(t, err, ErrUnknownKind)

	wk, err := ParseWeaponKind("plasma")
	require.NoError(t, err)
	assert.Equal(t, 60, wk.Stats().Damage)

	pk, err := ParsePowerUpKind("AMMO")
	require.NoError(t, err)
	assert.Equal(t, AmmoPack, pk)
	assert.NotEqual(t, Imp.TextureID(), HealthPack.TextureID())
}

func TestEntity_ChaseAndAttack(t *testing.T) {
	g := newGrid(t, roomCodes(10, 10))

	t.Run("out of range stays put", func(t *testing.T) {
		e := NewEntity(1, Imp, 200, 200, cell)
		assert.False(t, e.Update(g, geom.Vector2{X: 500, Y: 200}, Tick))
		assert.Equal(t, geom.Vector2{X: 200, Y: 200}, e.Position)
	})

	t.Run("in range moves toward player", func(t *testing.T) {
		e := NewEntity(1, Imp, 200, 200, cell)
		assert.False(t, e.Update(g, geom.Vector2{X: 350, Y: 200}, Tick))
		assert.InDelta(t, 202.0, e.Position.X, 1e-9)
		assert.InDelta(t, 200.0, e.Position.Y, 1e-9)
	})

	t.Run("close enough attacks on cooldown", func(t *testing.T) {
		e := NewEntity(1, Imp, 200, 200, cell)
		player := geom.Vector2{X: 250, Y: 200}
		assert.True(t, e.Update(g, player, Tick))
		assert.Equal(t, time.Second, e.Cooldown)
		assert.False(t, e.Update(g, player, Tick))
	})

	t.Run("dead entities do nothing", func(t *testing.T) {
		e := NewEntity(1, Imp, 200, 200, cell)
		assert.True(t, e.TakeDamage(150))
		assert.False(t, e.TakeDamage(10), "already dead")
		assert.False(t, e.Update(g, geom.Vector2{X: 210, Y: 200}, Tick))
		assert.False(t, e.Body().Alive)
	})
}

func TestEntity_DoesNotWalkThroughWalls(t *testing.T) {
	codes := roomCodes(10, 5)
	codes[2][4] = 1
	g := newGrid(t, codes)

	e := NewEntity(1, Cacodemon, 3.5*cell, 2.5*cell, cell)
	for i := 0; i < 100; i++ {
		e.Update(g, at(5.5, 2.5), Tick)
	}
	assert.Less(t, e.Position.X, 4*cell)
}
