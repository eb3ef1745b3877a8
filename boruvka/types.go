// Package boruvka defines the solver's sentinel errors and internal
// constants.
package boruvka

import (
	"errors"
	"math"
)

// ErrStateNil is returned when a nil graph state is passed to the solver.
var ErrStateNil = errors.New("boruvka: graph state is nil")

// unclaimed is the per-round ceiling the reduction pass parks Successor and
// TempIndex slots at before the discovery and selection passes run their
// atomic-minimum arbitration. Any real vertex or arc id proposed by a pass
// is smaller, so the first proposal always claims the slot and the lowest
// proposal wins. Slots still at the ceiling after the pass barrier mean "no
// candidate" (isolated vertex, nothing selected); the reduction pass never
// parks a vertex that has live arcs without the discovery pass being able
// to claim it back into [0, NumVerts).
const unclaimed = int32(math.MaxInt32)
