package model

import (
	"fmt"
	"strings"
	"time"
)

type WeaponKind int

const (
	Pistol WeaponKind = iota
	Shotgun
	Plasma
)

var weaponNames = [...]string{"Pistol", "Shotgun", "Plasma"}

func (k WeaponKind) String() string {
	if k < 0 || int(k) >= len(weaponNames) {
		return fmt.Sprintf("weapon(%d)", int(k))
	}
	return weaponNames[k]
}

func ParseWeaponKind(name string) (WeaponKind, error) {
	for i, n := range weaponNames {
		if strings.EqualFold(n, name) {
			return WeaponKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: weapon %q", ErrUnknownKind, name)
}

// TextureID is the first-person view texture, with the muzzle flash frame
// when firing.
func (k WeaponKind) TextureID(firing bool) int {
	id := WeaponTextureBase + 2*int(k)
	if firing {
		id++
	}
	return id
}

type WeaponStats struct {
	Damage     int
	FireRate   time.Duration
	Capacity   int
	ReloadTime time.Duration
}

var weaponStats = map[WeaponKind]WeaponStats{
	Pistol:  {Damage: 20, FireRate: 250 * time.Millisecond, Capacity: 12, ReloadTime: 1000 * time.Millisecond},
	Shotgun: {Damage: 40, FireRate: 800 * time.Millisecond, Capacity: 8, ReloadTime: 1500 * time.Millisecond},
	Plasma:  {Damage: 60, FireRate: 400 * time.Millisecond, Capacity: 50, ReloadTime: 2000 * time.Millisecond},
}

func (k WeaponKind) Stats() WeaponStats {
	return weaponStats[k]
}

type Weapon struct {
	Kind       WeaponKind
	Stats      WeaponStats
	Ammo       int
	Cooldown   time.Duration
	Reloading  bool
	ReloadLeft time.Duration
	// Firing stays set for one tick after a shot and selects the muzzle flash frame.
	Firing bool
}

func NewWeapon(kind WeaponKind) Weapon {
	stats := kind.Stats()
	return Weapon{Kind: kind, Stats: stats, Ammo: stats.Capacity}
}

// DefaultArsenal is the weapon set a new world starts with, in slot order.
func DefaultArsenal() []Weapon {
	return []Weapon{NewWeapon(Pistol), NewWeapon(Shotgun), NewWeapon(Plasma)}
}

// TextureID is the view texture for the weapon's current frame.
func (w *Weapon) TextureID() int {
	return w.Kind.TextureID(w.Firing)
}

func (w *Weapon) CanFire() bool {
	return w.Cooldown <= 0 && !w.Reloading && w.Ammo > 0
}

// Fire consumes a round and starts the cooldown. It reports false when the
// weapon is cooling down, reloading or empty.
func (w *Weapon) Fire() bool {
	if !w.CanFire() {
		return false
	}
	w.Ammo--
	w.Cooldown = w.Stats.FireRate
	w.Firing = true
	return true
}

// Reload starts a reload unless one is running or the magazine is full.
func (w *Weapon) Reload() bool {
	if w.Reloading || w.Ammo >= w.Stats.Capacity {
		return false
	}
	w.Reloading = true
	w.ReloadLeft = w.Stats.ReloadTime
	return true
}

// Refill tops the magazine up and cancels any reload in progress.
func (w *Weapon) Refill() {
	w.Ammo = w.Stats.Capacity
	w.Reloading = false
	w.ReloadLeft = 0
}

// Update advances the weapon clock and reports whether a reload just finished.
func (w *Weapon) Update(dt time.Duration) bool {
	w.Firing = false
	if w.Cooldown > 0 {
		w.Cooldown -= dt
	}
	if !w.Reloading {
		return false
	}
	w.ReloadLeft -= dt
	if w.ReloadLeft <= 0 {
		w.Refill()
		return true
	}
	return false
}
