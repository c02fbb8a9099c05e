package pipeline

import (
	"fmt"
	"sort"

	"github.com/automoto/skyraid/world"
)

// Runner executes systems in layer order each tick. Systems sharing a layer run in
// registration order.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 24),
	}
}

func (r *Runner) Register(systems ...System) {
	r.systems = append(r.systems, systems...)
	r.sorted = false
}

// Tick begins a new frame and runs every system once. The first error aborts the tick.
func (r *Runner) Tick(w *world.World, dtMs float64) error {
	r.ensureSorted()
	w.BeginFrame(dtMs)
	for _, s := range r.systems {
		if err := s.Run(w); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	return nil
}

// Order returns the system names in execution order.
func (r *Runner) Order() []string {
	r.ensureSorted()
	names := make([]string, len(r.systems))
	for i, s := range r.systems {
		names[i] = s.Name
	}
	return names
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Layer < r.systems[j].Layer
		})
		r.sorted = true
	}
}
