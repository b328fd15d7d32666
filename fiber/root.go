// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"sync"
	"time"

	"github.com/changqingniubi/react-three-fiber/three"
	"github.com/google/uuid"
)

// Frameloop selects when frames are rendered for a root.
type Frameloop int32

const (
	// FrameloopAlways renders every pass unconditionally.
	FrameloopAlways Frameloop = iota

	// FrameloopDemand renders only when something changed or
	// [RootState.Invalidate] was called.
	FrameloopDemand

	// FrameloopNever leaves frame execution entirely to external code.
	FrameloopNever
)

var frameloopNames = []string{"always", "demand", "never"}

func (fl Frameloop) String() string {
	if fl < 0 || int(fl) >= len(frameloopNames) {
		return fmt.Sprintf("Frameloop(%d)", int32(fl))
	}
	return frameloopNames[fl]
}

// MarshalText implements [encoding.TextMarshaler].
func (fl Frameloop) MarshalText() ([]byte, error) {
	return []byte(fl.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (fl *Frameloop) UnmarshalText(text []byte) error {
	for i, nm := range frameloopNames {
		if string(text) == nm {
			*fl = Frameloop(i)
			return nil
		}
	}
	return fmt.Errorf("fiber: invalid frameloop mode %q", text)
}

// Size is the logical size of a root's drawing surface.
type Size struct {
	Width  float32
	Height float32
}

// Viewport is the resolved viewport of a root: its pixel dimensions
// and device pixel ratio state.
type Viewport struct {
	Width  float32
	Height float32

	// InitialDpr is the device pixel ratio established at
	// construction, after any configured clamp range was applied.
	InitialDpr float32

	// Dpr is the device pixel ratio currently in effect. Requests
	// after construction apply directly; the clamp range is not
	// reapplied.
	Dpr float32
}

// Clock tracks elapsed time for a root; portals share their
// enclosing root's clock by reference.
type Clock struct {
	start time.Time
}

// NewClock returns a new [Clock] starting now.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// Elapsed returns the time since the clock started.
func (ck *Clock) Elapsed() time.Duration {
	return time.Since(ck.start)
}

// Performance is the adaptive quality state of a root. External
// subsystems lower Current to shed load and read it to scale work;
// recovery back to full quality is timer-driven.
type Performance struct {
	mu sync.Mutex

	// Current is the current throttling factor; 1 is full quality.
	Current float32

	// Min is the lower bound that [Performance.Regress] throttles to.
	Min float32

	// Debounce is how long after the last regression full quality
	// is restored.
	Debounce time.Duration

	timer *time.Timer
}

// Regress drops Current to Min and schedules recovery to full
// quality after Debounce. It is re-entrant safe: regressing while
// already throttled restarts the recovery timer instead of stacking
// additional timers.
func (pf *Performance) Regress() {
	pf.mu.Lock()
	defer pf.mu.Unlock()
	pf.Current = pf.Min
	if pf.timer != nil {
		pf.timer.Stop()
	}
	pf.timer = time.AfterFunc(pf.Debounce, func() {
		pf.mu.Lock()
		pf.Current = 1
		pf.mu.Unlock()
	})
}

// Factor returns the current throttling factor.
func (pf *Performance) Factor() float32 {
	pf.mu.Lock()
	defer pf.mu.Unlock()
	return pf.Current
}

// RootState is the mutable state record of one render root or portal
// enclave: the object graph entry point, renderer, camera, sizing,
// and auxiliary subsystems. It is mutated only by render passes and
// [Root.Configure]; external readers must treat it as a snapshot
// that can change on the next pass.
type RootState struct {

	// ID identifies the root in logs; portals share it.
	ID uuid.UUID

	// GraphRoot is the object graph entry: a [*three.Scene] by
	// default, or the externally supplied container for portals.
	GraphRoot any

	// Renderer is the rendering configuration surface.
	Renderer *three.Renderer

	// Camera is the view camera.
	Camera three.Camera

	// Size is the logical surface size.
	Size Size

	// Viewport is the resolved viewport and device pixel ratio state.
	Viewport Viewport

	// Performance is the adaptive quality state, shared by reference
	// with portal enclaves.
	Performance *Performance

	// Events tracks the instances eligible for interaction dispatch;
	// each portal enclave gets its own registry.
	Events *EventRegistry

	// Frameloop selects when frames are rendered.
	Frameloop Frameloop

	// Clock tracks elapsed time, shared by reference with portals.
	Clock *Clock

	// Invalidate requests a frame when Frameloop is demand mode.
	Invalidate func()

	// Legacy is whether the process-wide color management
	// compatibility mode is enabled.
	Legacy bool

	// Linear is whether gamma-correct output encoding is disabled.
	Linear bool

	// Flat is whether tone mapping is disabled.
	Flat bool

	// Shadows is whether the default soft shadow technique is enabled.
	Shadows bool

	// Previous is the enclosing state for portal enclaves,
	// nil for true roots.
	Previous *RootState

	// mu serializes reconciliation passes and configuration merges:
	// no two passes for the same root run concurrently.
	mu sync.Mutex

	// dprMin and dprMax clamp the initial device pixel ratio when
	// dprClamped is set; later requests are not clamped.
	dprMin, dprMax float32
	dprClamped     bool
	dprSet         bool
}

// SetSize sets the logical surface size and viewport dimensions.
func (st *RootState) SetSize(width, height float32) {
	st.Size = Size{Width: width, Height: height}
	st.Viewport.Width = width * st.Viewport.Dpr
	st.Viewport.Height = height * st.Viewport.Dpr
}

// SetDpr applies a device pixel ratio request. The first request
// establishes [Viewport.InitialDpr], clamped to any configured
// range; subsequent requests take effect directly with no clamping
// reapplied.
func (st *RootState) SetDpr(request float32) {
	if !st.dprSet {
		if st.dprClamped {
			request = min(max(request, st.dprMin), st.dprMax)
		}
		st.Viewport.InitialDpr = request
		st.dprSet = true
	}
	st.Viewport.Dpr = request
	if st.Renderer != nil {
		st.Renderer.SetPixelRatio(request)
	}
}

// Root is the handle for rendering into one target surface. All
// methods are safe for sequential use; reconciliation for one root
// is strictly serialized.
type Root struct {
	state     *RootState
	container *Instance
	registry  *Registry
	surface   any
	mounted   bool
}

var (
	rootsMu sync.Mutex
	roots   = map[any]*Root{}
)

// NewRoot returns the render root for the given target surface,
// creating it on first use. It is idempotent per surface: calling it
// again for the same (comparable) surface returns the same root
// rather than constructing a second renderer.
func NewRoot(surface any) *Root {
	rootsMu.Lock()
	defer rootsMu.Unlock()
	if rt, ok := roots[surface]; ok {
		return rt
	}
	scene := three.NewScene()
	st := &RootState{
		ID:          uuid.New(),
		GraphRoot:   scene,
		Performance: &Performance{Current: 1, Min: 0.5, Debounce: 200 * time.Millisecond},
		Events:      NewEventRegistry(),
		Clock:       NewClock(),
		Viewport:    Viewport{InitialDpr: 1, Dpr: 1},
	}
	rt := &Root{
		state:    st,
		registry: DefaultRegistry,
		surface:  surface,
		mounted:  true,
	}
	rt.container = &Instance{Kind: "root", Target: scene, root: st, mounted: true}
	st.Invalidate = func() {
		if st.Renderer != nil && st.Frameloop == FrameloopDemand {
			rt.renderFrame()
		}
	}
	roots[surface] = rt
	return rt
}

// GetState returns the root's state container. Treat it as a
// snapshot: render passes and configuration merges mutate it.
func (rt *Root) GetState() *RootState {
	return rt.state
}

// Container returns the root's top-level instance. Its Children are
// the instances created from the most recently rendered tree, in
// declaration order; external dispatchers walk these to target events.
func (rt *Root) Container() *Instance {
	return rt.container
}

// Render runs one reconciliation pass projecting the given
// declarative children onto the root's object graph. All graph
// mutations commit synchronously within the pass; a no-op diff is
// tolerated and changes nothing. It returns the root handle and the
// first error encountered, which aborts the pass without corrupting
// siblings committed before it.
func (rt *Root) Render(specs ...*NodeSpec) (*Root, error) {
	st := rt.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if !rt.mounted {
		return rt, ErrUnmounted
	}
	rt.ensureDefaults()
	err := rt.reconcileChildren(rt.container, specs)
	if err == nil && st.Frameloop == FrameloopAlways {
		rt.renderFrame()
	}
	return rt, err
}

// renderFrame records one frame when the graph root is a scene.
func (rt *Root) renderFrame() {
	st := rt.state
	if sc, ok := st.GraphRoot.(*three.Scene); ok && st.Renderer != nil {
		st.Renderer.Render(sc, st.Camera)
	}
}

// ensureDefaults lazily constructs the renderer and camera for roots
// rendered without prior configuration.
func (rt *Root) ensureDefaults() {
	st := rt.state
	if st.Renderer == nil {
		st.Renderer = three.NewRenderer(rt.surface)
		st.Renderer.SetPixelRatio(st.Viewport.Dpr)
	}
	if st.Camera == nil {
		cam := three.NewPerspectiveCamera(75, aspect(st.Size))
		cam.Position.Set(0, 0, 5)
		st.Camera = cam
	}
}

func aspect(sz Size) float32 {
	if sz.Height == 0 {
		return 1
	}
	return sz.Width / sz.Height
}

// Unmount destroys the root: it disposes all owned instances
// bottom-up, releases the renderer, and forgets the target surface
// so a later [NewRoot] starts fresh.
func (rt *Root) Unmount() {
	st := rt.state
	st.mu.Lock()
	for _, child := range rt.container.Children {
		rt.removeChild(rt.container, child)
	}
	rt.container.Children = nil
	if st.Renderer != nil {
		st.Renderer.Dispose()
	}
	rt.mounted = false
	st.mu.Unlock()

	rootsMu.Lock()
	delete(roots, rt.surface)
	rootsMu.Unlock()
}
