package engine

import (
	"sort"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/termunator/core"
)

// State is the lifecycle state of a World
type State int

const (
	StateUninitialized State = iota // constructed, no environment claimed
	StateActive                     // environment claimed, ticking
	StateClosed                     // environment released
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// World owns entity allocation, the component store and the system registry
// It drives the per-tick update protocol; all calls are expected from a single goroutine
type World struct {
	nextEntityID core.Entity
	entities     map[core.Entity]struct{}

	store   *ComponentStore
	systems *Registry

	env    Environment
	clock  Clock
	logger zerolog.Logger

	state         State
	width, height int
	tick          uint64
}

// Option configures a World
type Option func(*World)

// WithEnvironment attaches the environment claimed by Init
func WithEnvironment(env Environment) Option {
	return func(w *World) { w.env = env }
}

// WithClock replaces the pacing clock
func WithClock(c Clock) Option {
	return func(w *World) { w.clock = c }
}

// WithLogger sets the world logger
func WithLogger(l zerolog.Logger) Option {
	return func(w *World) { w.logger = l }
}

// NewWorld creates a new world in the Uninitialized state
func NewWorld(opts ...Option) *World {
	w := &World{
		nextEntityID: 1,
		entities:     make(map[core.Entity]struct{}),
		store:        NewComponentStore(),
		clock:        NewSystemClock(),
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.systems = NewRegistry(w.logger)
	w.logger = w.logger.With().Str("component", "world").Logger()
	return w
}

// CreateEntity allocates a new live entity
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.entities[id] = struct{}{}
	return id
}

// IsAlive reports whether e was created and not yet deleted
func (w *World) IsAlive(e core.Entity) bool {
	_, ok := w.entities[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// Entities returns the live entities in ascending id order
func (w *World) Entities() []core.Entity {
	result := make([]core.Entity, 0, len(w.entities))
	for e := range w.entities {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// DeleteEntity purges e from the live set and from every kind-bucket
func (w *World) DeleteEntity(e core.Entity) {
	delete(w.entities, e)
	w.store.RemoveEntity(e)
}

// Store returns the component store, for setup code and tests
func (w *World) Store() *ComponentStore {
	return w.store
}

// AddComponent attaches c to e, replacing any component of the same kind
// Attaching to an entity that is not alive is ignored
func AddComponent[T any](w *World, e core.Entity, c T) {
	if !w.IsAlive(e) {
		w.logger.Debug().Stringer("entity", e).Stringer("kind", KindOf[T]()).Msg("component ignored for dead entity")
		return
	}
	Insert(w.store, e, c)
}

// GetComponent returns a copy of e's component of kind T
func GetComponent[T any](w *World, e core.Entity) (T, bool) {
	return Get[T](w.store, e)
}

// GetComponentMut returns a pointer to e's component of kind T, nil when absent
func GetComponentMut[T any](w *World, e core.Entity) *T {
	return GetMut[T](w.store, e)
}

// RemoveComponent detaches e's component of kind T; no-op when absent
func RemoveComponent[T any](w *World, e core.Entity) {
	Remove[T](w.store, e)
}

// AddSystem registers s under name; the first registration of a name wins
func (w *World) AddSystem(name string, s System) bool {
	return w.systems.Add(name, s)
}

// RemoveSystem unregisters the system under name; no-op when absent
func (w *World) RemoveSystem(name string) bool {
	return w.systems.Remove(name)
}

// Systems returns the system registry
func (w *World) Systems() *Registry {
	return w.systems
}

// State returns the lifecycle state
func (w *World) State() State {
	return w.state
}

// Size returns the negotiated work area, zero before Init
func (w *World) Size() (int, int) {
	return w.width, w.height
}

// Tick returns the number of completed Update calls
func (w *World) Tick() uint64 {
	return w.tick
}

// Init claims the environment and negotiates the work area
// The requested dimensions are scaled down to the environment capacity when they do not fit
func (w *World) Init(width, height int) (int, int, error) {
	switch {
	case w.state == StateActive:
		return 0, 0, ErrAlreadyActive
	case w.state == StateClosed:
		return 0, 0, ErrWorldClosed
	case w.env == nil:
		return 0, 0, ErrNoEnvironment
	}

	if err := w.env.Claim(); err != nil {
		return 0, 0, eris.Wrapf(ErrInit, "claim exclusive display mode: %v", err)
	}

	capW, capH, err := w.env.Capacity()
	if err != nil {
		if rerr := w.env.Release(); rerr != nil {
			w.logger.Warn().Err(rerr).Msg("release after failed capacity query")
		}
		return 0, 0, eris.Wrapf(ErrInit, "report capacity: %v", err)
	}

	w.width, w.height = ScaleDimensions(width, height, capW, capH)
	w.state = StateActive

	w.logger.Info().
		Int("requested_width", width).Int("requested_height", height).
		Int("capacity_width", capW).Int("capacity_height", capH).
		Int("width", w.width).Int("height", w.height).
		Msg("environment claimed")

	return w.width, w.height, nil
}

// Resize records a renegotiated work area after the environment changed size
// Ignored unless the World is Active or when either dimension is not positive
func (w *World) Resize(width, height int) {
	if w.state != StateActive || width <= 0 || height <= 0 {
		return
	}
	w.width, w.height = width, height
	w.logger.Debug().Int("width", width).Int("height", height).Msg("work area resized")
}

// Close releases the environment; safe to call more than once and from deferred crash paths
// A World that was never initialized moves straight to Closed
func (w *World) Close() error {
	if w.state == StateClosed {
		return nil
	}
	wasActive := w.state == StateActive
	w.state = StateClosed

	if !wasActive || w.env == nil {
		return nil
	}
	if err := w.env.Release(); err != nil {
		w.logger.Warn().Err(err).Msg("environment restore failed")
		return eris.Wrap(err, "release environment")
	}
	w.logger.Info().Msg("environment released")
	return nil
}

// Update drives one tick: every registered system runs once in registration order,
// then the frame is shown, leftover input is drained and the loop is paced to ticksPerSecond
// ticksPerSecond <= 0 disables pacing
func (w *World) Update(ticksPerSecond int) {
	start := w.clock.Now()

	w.systems.Run(w.store, w.settle)

	if w.state == StateActive && w.env != nil {
		w.env.Show()
		w.env.Drain()
	}

	w.tick++

	if budget := FrameDuration(ticksPerSecond); budget > 0 {
		if elapsed := w.clock.Now().Sub(start); elapsed < budget {
			w.clock.Sleep(budget - elapsed)
		}
	}
}

// settle hands back buckets a system failed to return
func (w *World) settle(system string) {
	if !w.store.Taken() {
		return
	}
	kinds := w.store.Restore()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	w.logger.Warn().Str("system", system).Strs("kinds", names).Msg("system returned without putting back taken buckets")
}
