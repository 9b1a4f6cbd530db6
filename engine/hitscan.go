package engine

import "math"

// Target is something a shot can damage.
type Target interface {
	Body() Body
	// TakeDamage applies damage and reports whether it killed the target.
	TakeDamage(amount int) bool
}

// HitEvent describes the single target damaged by a shot.
type HitEvent struct {
	TargetID int
	Damage   int
	Killed   bool
	Distance float64
}

// Resolver decides which target, if any, a hit-scan shot from the viewer strikes.
type Resolver struct {
	cfg    Config
	caster *Caster
}

func NewResolver(cfg Config, caster *Caster) *Resolver {
	return &Resolver{cfg: cfg, caster: caster}
}

// InSight reports whether the body is inside the firing cone, within range
// and not occluded by a wall.
func (r *Resolver) InSight(v Viewer, b Body) (float64, bool) {
	dist, rel, abs := bearing(v, b.Position)
	if dist <= 0 || math.Abs(rel) > r.cfg.HalfFOV() || dist > r.cfg.MaxDistance() {
		return dist, false
	}
	hit := r.caster.Cast(v.Position, abs)
	return dist, hit.Distance >= dist
}

// Fire damages the first alive target, in slice order, that the shot can
// reach. It reports false when nothing was hit.
func (r *Resolver) Fire(v Viewer, targets []Target, damage int) (HitEvent, bool) {
	for _, t := range targets {
		b := t.Body()
		if !b.Alive {
			continue
		}
		dist, ok := r.InSight(v, b)
		if !ok {
			continue
		}
		return HitEvent{
			TargetID: b.ID,
			Damage:   damage,
			Killed:   t.TakeDamage(damage),
			Distance: dist,
		}, true
	}
	return HitEvent{}, false
}
