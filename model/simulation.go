package model

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/gopher-doom/engine"
)

const TickRate = 60

// Tick is the simulated time one Step advances.
const Tick = time.Second / TickRate

type EventKind int

const (
	EventShot EventKind = iota
	EventHit
	EventKill
	EventHurt
	EventPickup
	EventReloadStart
	EventReloaded
	EventWeaponSwitch
	EventStateChange
)

var eventNames = [...]string{"shot", "hit", "kill", "hurt", "pickup", "reload_start", "reloaded", "weapon_switch", "state_change"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(k))
	}
	return eventNames[k]
}

// Event reports something that happened during a Step. ID is the entity,
// power-up or weapon slot involved and Amount the damage or value.
type Event struct {
	Kind   EventKind
	ID     int
	Amount int
	State  State
}

// Simulation advances a World one tick at a time against a fixed scene.
type Simulation struct {
	scene *engine.Scene
	spawn Spawn
	rules Rules
	log   logrus.FieldLogger
}

func NewSimulation(scene *engine.Scene, spawn Spawn, rules Rules, log logrus.FieldLogger) *Simulation {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Simulation{scene: scene, spawn: spawn, rules: rules, log: log}
}

func (s *Simulation) Scene() *engine.Scene { return s.scene }

// NewWorld builds the level's starting world.
func (s *Simulation) NewWorld() World {
	return NewWorld(s.spawn, s.rules)
}

// Render projects the world through the scene.
func (s *Simulation) Render(w World) engine.Frame {
	return s.scene.Render(w.Player.Viewer(), w.Bodies())
}

// Step returns the world one tick after w given the input. w is never modified.
func (s *Simulation) Step(w World, in Input) (World, []Event) {
	if w.State != Playing {
		if !in.Restart {
			return w, nil
		}
		next := s.NewWorld()
		next.HighScore = w.HighScore
		s.log.WithField("high_score", next.HighScore).Info("level restarted")
		return next, []Event{{Kind: EventStateChange, State: Playing}}
	}

	next := w.Clone()
	next.Tick++
	next.Elapsed += Tick

	var events []Event
	emit := func(e Event) { events = append(events, e) }

	s.updateWeapons(&next, in, emit)

	grid := s.scene.Grid
	next.Player.Moved = false
	next.Player.Rotate(in.Turn)
	next.Player.Move(grid, in.Move, in.Strafe)

	s.pickup(&next, emit)

	for i := range next.Entities {
		e := &next.Entities[i]
		if !e.Update(grid, next.Player.Position, Tick) {
			continue
		}
		taken := next.Player.TakeDamage(e.Stats.Damage)
		emit(Event{Kind: EventHurt, ID: e.ID, Amount: e.Stats.Damage})
		s.log.WithFields(logrus.Fields{
			"entity": e.ID,
			"kind":   e.Kind,
			"damage": taken,
			"health": next.Player.Health,
			"armor":  next.Player.Armor,
		}).Debug("player hurt")

		if !next.Player.Alive() {
			s.setState(&next, GameOver, emit)
			return next, events
		}
	}

	if in.Fire {
		s.fire(&next, emit)
	}

	if next.Remaining() == 0 {
		s.setState(&next, Win, emit)
	}
	return next, events
}

func (s *Simulation) updateWeapons(w *World, in Input, emit func(Event)) {
	if in.Select > 0 && in.Select <= len(w.Weapons) && in.Select-1 != w.Current {
		w.Current = in.Select - 1
		emit(Event{Kind: EventWeaponSwitch, ID: w.Current})
	}

	for i := range w.Weapons {
		if w.Weapons[i].Update(Tick) {
			emit(Event{Kind: EventReloaded, ID: i, Amount: w.Weapons[i].Ammo})
		}
	}

	if in.Reload {
		if wpn := w.Weapon(); wpn != nil && wpn.Reload() {
			emit(Event{Kind: EventReloadStart, ID: w.Current})
		}
	}
}

func (s *Simulation) pickup(w *World, emit func(Event)) {
	for i := range w.PowerUps {
		pu := &w.PowerUps[i]
		if !pu.InReach(w.Player.Position, s.rules.PickupReach) {
			continue
		}
		switch pu.Kind {
		case HealthPack:
			w.Player.Heal(pu.Kind.Value())
		case ArmorPack:
			w.Player.AddArmor(pu.Kind.Value())
		case AmmoPack:
			for j := range w.Weapons {
				w.Weapons[j].Refill()
			}
		}
		pu.Active = false
		emit(Event{Kind: EventPickup, ID: pu.ID, Amount: pu.Kind.Value()})
		s.log.WithField("powerup", pu.Kind).Debug("picked up")
	}
}

func (s *Simulation) fire(w *World, emit func(Event)) {
	damage := s.rules.FallbackDamage
	if wpn := w.Weapon(); wpn != nil {
		if !wpn.Fire() {
			return
		}
		damage = wpn.Stats.Damage
	}
	emit(Event{Kind: EventShot, ID: w.Current, Amount: damage})

	hit, ok := s.scene.Resolver.Fire(w.Player.Viewer(), w.Targets(), damage)
	if !ok {
		return
	}
	emit(Event{Kind: EventHit, ID: hit.TargetID, Amount: hit.Damage})
	if !hit.Killed {
		return
	}

	e := w.Entity(hit.TargetID)
	w.Kills++
	w.AddScore(e.Stats.Score)
	emit(Event{Kind: EventKill, ID: e.ID, Amount: e.Stats.Score})
	s.log.WithFields(logrus.Fields{
		"entity": e.ID,
		"kind":   e.Kind,
		"score":  w.Score,
	}).Info("enemy killed")
}

func (s *Simulation) setState(w *World, state State, emit func(Event)) {
	w.State = state
	emit(Event{Kind: EventStateChange, State: state})
	s.log.WithFields(logrus.Fields{
		"state": state,
		"score": w.Score,
		"kills": w.Kills,
	}).Info("game state changed")
}

// Replay folds a script of inputs over w and returns the final world with
// every event produced along the way.
func Replay(s *Simulation, w World, inputs []Input) (World, []Event) {
	var all []Event
	for _, in := range inputs {
		var events []Event
		w, events = s.Step(w, in)
		all = append(all, events...)
	}
	return w, all
}
