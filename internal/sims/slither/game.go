package slither

import (
	"log/slog"

	"slither/internal/core"
	"slither/internal/geom"
)

const (
	// maxTickDelta caps a single integration step at one 60 Hz frame.
	maxTickDelta = 1.0 / 60.0
	// refillRatio is the active-food fraction below which one pellet is
	// added per tick.
	refillRatio = 0.8
)

// Game owns the player and the food pool and advances them one tick at a
// time. It is not safe for concurrent use.
type Game struct {
	cfg    Config
	center geom.Vec
	radius float64

	player *Player
	foods  [MaxFood]Food
	rng    *core.RNG
	log    *slog.Logger

	running bool
	paused  bool
	elapsed float64
	delta   float64
	cause   string
}

// New returns a game using DefaultConfig.
func New() *Game { return NewWithConfig(DefaultConfig()) }

// NewWithConfig builds a running session with a full food pool.
func NewWithConfig(cfg Config) *Game {
	cfg = cfg.normalized()
	cx, cy := core.Size{W: cfg.Width, H: cfg.Height}.Center()
	g := &Game{
		cfg:     cfg,
		center:  geom.V(cx, cy),
		radius:  cfg.ArenaRadius,
		rng:     core.NewRNG(cfg.Seed),
		log:     slog.Default(),
		running: true,
	}
	g.player = NewPlayer(g.center)
	g.fillPool()
	return g
}

// SetLogger replaces the logger used for session events. Nil restores the
// slog default.
func (g *Game) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	g.log = l
}

// Name returns the game identifier.
func (g *Game) Name() string { return "slither" }

// Size returns the screen dimensions the game lays itself out for.
func (g *Game) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Player exposes the player entity.
func (g *Game) Player() *Player { return g.player }

// Foods exposes the whole pool, inactive slots included.
func (g *Game) Foods() []Food { return g.foods[:] }

// Center returns the arena center in world coordinates.
func (g *Game) Center() geom.Vec { return g.center }

// ArenaRadius returns the radius of the playable circle.
func (g *Game) ArenaRadius() float64 { return g.radius }

// Running reports whether the session is still active.
func (g *Game) Running() bool { return g.running }

// Paused reports whether simulation is frozen.
func (g *Game) Paused() bool { return g.paused }

// Elapsed returns the simulated seconds since the last reset.
func (g *Game) Elapsed() float64 { return g.elapsed }

// GameOverCause names what killed the player ("wall" or "self"), or returns
// an empty string while the player is alive.
func (g *Game) GameOverCause() string { return g.cause }

// Delta returns the clamped delta of the most recent tick.
func (g *Game) Delta() float64 { return g.delta }

// CameraOffset maps world coordinates to screen coordinates with the head
// at the screen center.
func (g *Game) CameraOffset() geom.Vec {
	return g.center.Sub(g.player.Head())
}

// ActiveFood counts active pellets.
func (g *Game) ActiveFood() int {
	n := 0
	for i := range g.foods {
		if g.foods[i].Active {
			n++
		}
	}
	return n
}

// HandleEvents drains src and applies every pending event.
func (g *Game) HandleEvents(src InputSource) {
	if src == nil {
		return
	}
	for _, ev := range src.Poll() {
		g.Apply(ev)
	}
}

// Apply reacts to a single input event.
func (g *Game) Apply(ev Event) {
	switch ev.Kind {
	case EventQuit:
		g.running = false
	case EventTogglePause:
		g.paused = !g.paused
	case EventReset:
		g.Reset()
	case EventPointerMoved:
		if g.paused {
			return
		}
		g.player.SetTarget(g.player.Head().Add(geom.V(ev.DX, ev.DY)))
	}
}

// Tick advances the simulation by dt seconds, capped at one 60 Hz frame.
// A paused game only keeps its clock.
func (g *Game) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if dt > maxTickDelta {
		dt = maxTickDelta
	}
	g.delta = dt
	if g.paused {
		return
	}
	g.elapsed += dt
	g.step(dt)
}

// step runs one unpaused tick: move, constrain, collide, refill.
func (g *Game) step(dt float64) {
	if p := g.player; p.Alive {
		p.Update(dt)
		// Overshooting the wall during integration is the wall hit. The clamp
		// only keeps the head inside for drawing.
		hitWall := p.CheckWallCollision(g.center, g.radius)
		p.LimitToMap(g.center, g.radius)
		g.checkCollisions(hitWall)
	}

	if float64(g.ActiveFood()) < MaxFood*refillRatio {
		g.SpawnFood()
	}
}

// checkCollisions resolves at most one terminal collision, then lets the
// head eat every pellet it overlaps.
func (g *Game) checkCollisions(hitWall bool) {
	p := g.player
	if !p.Alive {
		return
	}
	if hitWall {
		g.gameOver("wall")
		return
	}
	if p.CheckSelfCollision() {
		g.gameOver("self")
		return
	}
	head := p.Head()
	for i := range g.foods {
		f := &g.foods[i]
		if !f.IsColliding(head, p.Radius) {
			continue
		}
		p.Grow()
		f.Reset()
		g.SpawnFood()
	}
}

func (g *Game) gameOver(cause string) {
	g.player.Alive = false
	g.cause = cause
	g.log.Info("game over", "cause", cause, "score", g.player.Score, "length", len(g.player.Body))
}

// Render hands the current state to r.
func (g *Game) Render(r Renderer) {
	if r == nil {
		return
	}
	cam := g.CameraOffset()
	r.BeginFrame()
	r.DrawArenaBoundary(g.center.Add(cam), g.radius)
	for i := range g.foods {
		if g.foods[i].Active {
			r.DrawFood(&g.foods[i], cam)
		}
	}
	if p := g.player; p.Alive {
		r.DrawPlayerBody(p.Body, p.SegmentRadii(), p.SegmentColors(), cam)
	}
	r.DrawScoreAndStatus(g.player.Score, g.player.Alive)
	r.EndFrame()
}

// Frame runs one full loop iteration: input, simulation, drawing.
func (g *Game) Frame(src InputSource, r Renderer, dt float64) {
	g.HandleEvents(src)
	g.Tick(dt)
	g.Render(r)
}

// Run drives frames at the clock's pace until a quit event arrives.
func (g *Game) Run(src InputSource, r Renderer, clock *core.FrameClock) {
	for g.running {
		g.Frame(src, r, clock.Delta())
		if !g.running {
			return
		}
		clock.Wait()
	}
}

// Reset restores the player and refills the pool without reallocating.
func (g *Game) Reset() {
	g.player.Reset()
	for i := range g.foods {
		g.foods[i].Reset()
	}
	g.fillPool()
	g.elapsed = 0
	g.cause = ""
	g.log.Info("session reset", "food", g.ActiveFood())
}

func (g *Game) fillPool() {
	for i := 0; i < MaxFood; i++ {
		g.SpawnFood()
	}
}
