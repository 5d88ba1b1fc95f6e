package bandrep

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bandstruct/bandrep/character"
	"github.com/bandstruct/bandrep/corep"
	"github.com/bandstruct/bandrep/latmat"
	"github.com/bandstruct/bandrep/pwbasis"
	"github.com/bandstruct/bandrep/symmetry"
)

// OperationSource supplies the space group's full operation table:
// integer and Cartesian rotations, fractional translations, spin-1/2
// rotations and time-reversal flags. The slice is treated as read-only
// and its order is preserved end to end.
type OperationSource interface {
	Operations() []symmetry.Operation
}

// WavefunctionSource supplies per-k-point wavefunction data. KPoint may
// be called concurrently for distinct indices.
type WavefunctionSource interface {
	NumKPoints() int
	KPoint(i int) (KPointData, error)
}

// TableProvider resolves the reference character table for one little
// group. The returned table's columns must be positionally aligned with
// lg.Unitary; labels and character rows come from an external
// group-theory data source, never computed here.
type TableProvider interface {
	Table(k latmat.Vec3, lg symmetry.LittleGroup) (corep.Table, error)
}

// KPointData is everything one wavevector's processing reads. The basis
// G-vectors may over-allocate past Active (reserved capacity); the
// coefficients are never mutated.
type KPointData struct {
	K        latmat.Vec3
	G        []latmat.Vec3i
	Active   int
	Energies []float64
	Coeff    character.Coefficients
	Window   character.Window
}

// Result is one wavevector's resolved labeling. Blocks carry the final
// characters with the per-operation k-phase folded in; Relations is nil
// when the little group has no antiunitary coset.
type Result struct {
	Index       int
	K           latmat.Vec3
	LittleGroup symmetry.LittleGroup
	Action      *pwbasis.Action
	Blocks      []character.Block
	Assignments []corep.Assignment
	Relations   []corep.Relation
}

// KPointError attributes a wavevector-fatal failure to its k-point.
type KPointError struct {
	Index int
	K     latmat.Vec3
	Err   error
}

// Error implements error.
func (e KPointError) Error() string {
	return fmt.Sprintf("k-point %d (%g, %g, %g): %v", e.Index, e.K[0], e.K[1], e.K[2], e.Err)
}

// Unwrap exposes the underlying stage error to errors.Is/As.
func (e KPointError) Unwrap() error { return e.Err }

// Collector accumulates per-wavevector outcomes of a batch run. It is
// caller-owned and safe for concurrent use; the zero value is ready.
type Collector struct {
	mu       sync.Mutex
	results  []Result
	failures []KPointError
}

func (c *Collector) add(res Result) {
	c.mu.Lock()
	c.results = append(c.results, res)
	c.mu.Unlock()
}

func (c *Collector) fail(kerr KPointError) {
	c.mu.Lock()
	c.failures = append(c.failures, kerr)
	c.mu.Unlock()
}

// Results returns the collected results ordered by k-point index.
func (c *Collector) Results() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Result, len(c.results))
	copy(out, c.results)
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })

	return out
}

// Failures returns the recorded failures ordered by k-point index.
func (c *Collector) Failures() []KPointError {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]KPointError, len(c.failures))
	copy(out, c.failures)
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })

	return out
}
