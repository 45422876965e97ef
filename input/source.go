// Package input abstracts the device layer behind named analog axes and
// binary actions, so the controller systems never touch a concrete backend.
package input

// Source provides named analog axes in [-1, 1] and binary actions.
// A name with no backing binding reads as 0 (or false) rather than
// failing; unresolved-axis tolerance is part of this contract.
type Source interface {
	Axis(name string) float64
	Held(name string) bool
}

// StaticSource is a fixed-value Source backed by maps. Tests and input
// replays use it in place of a live device backend.
type StaticSource struct {
	Axes    map[string]float64
	Actions map[string]bool
}

func (s *StaticSource) Axis(name string) float64 {
	return s.Axes[name]
}

func (s *StaticSource) Held(name string) bool {
	return s.Actions[name]
}
