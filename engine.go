package bandrep

import (
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/bandstruct/bandrep/character"
	"github.com/bandstruct/bandrep/corep"
	"github.com/bandstruct/bandrep/pwbasis"
	"github.com/bandstruct/bandrep/symmetry"
)

const (
	panicOperationSourceNil    = "bandrep: New: operation source must not be nil"
	panicWavefunctionSourceNil = "bandrep: New: wavefunction source must not be nil"
	panicTableProviderNil      = "bandrep: New: table provider must not be nil"
	panicCollectorNil          = "bandrep: Run: collector must not be nil"
)

// Engine runs the per-wavevector labeling pipeline. It holds no
// per-wavevector state: every call to ProcessWavevector allocates its
// own little group, basis action and blocks, so one Engine may serve
// concurrent k-points.
type Engine struct {
	ops    OperationSource
	wfs    WavefunctionSource
	tables TableProvider
	o      options
}

// New builds an Engine over the three collaborators. Panics on a nil
// collaborator; tolerances and logging come from opts.
func New(ops OperationSource, wfs WavefunctionSource, tables TableProvider, opts ...Option) *Engine {
	if ops == nil {
		panic(panicOperationSourceNil)
	}
	if wfs == nil {
		panic(panicWavefunctionSourceNil)
	}
	if tables == nil {
		panic(panicTableProviderNil)
	}

	return &Engine{ops: ops, wfs: wfs, tables: tables, o: gatherOptions(opts...)}
}

// ProcessWavevector runs the full pipeline for one k-point: little
// group, basis symmetry action, character blocks, reference-table
// projection and, when an antiunitary coset exists, the time-reversal
// classification.
//
// Errors from the little-group, basis-mapping and character stages are
// fatal for the wavevector and returned; decomposition mismatches are
// block-scoped and land as unresolved assignments inside the Result.
//
// Characters are computed convention-pure and the per-operation k-phase
// is multiplied in here, after the reference table has fixed the
// operation order, immediately before projection. The returned Blocks
// hold the recombined characters.
func (e *Engine) ProcessWavevector(idx int, data KPointData) (Result, error) {
	ops := e.ops.Operations()

	lg, err := symmetry.FindLittleGroup(ops, data.K, symmetry.WithTolerance(e.o.kTol))
	if err != nil {
		return Result{}, fmt.Errorf("little group: %w", err)
	}
	unitary := symmetry.Select(ops, lg.Unitary)

	act, err := pwbasis.Setup(
		pwbasis.Basis{K: data.K, G: data.G, Active: data.Active},
		unitary,
		pwbasis.WithMatchTolerance(e.o.matchTol),
	)
	if err != nil {
		return Result{}, fmt.Errorf("basis symmetry: %w", err)
	}

	blocks, err := character.Compute(unitary, act, data.Coeff, data.Energies, data.Window,
		character.WithDegeneracyTolerance(e.o.degTol))
	if err != nil {
		return Result{}, fmt.Errorf("characters: %w", err)
	}

	tbl, err := e.tables.Table(data.K, lg)
	if err != nil {
		return Result{}, fmt.Errorf("reference table: %w", err)
	}

	blocks = recombineKPhase(blocks, act.KPhase)

	asgs, err := corep.Decompose(blocks, tbl, unitary,
		corep.WithProjectionTolerance(e.o.projTol),
		corep.WithLogger(e.o.log))
	if err != nil {
		return Result{}, fmt.Errorf("decomposition: %w", err)
	}

	res := Result{
		Index:       idx,
		K:           data.K,
		LittleGroup: lg,
		Action:      act,
		Blocks:      blocks,
		Assignments: asgs,
	}

	if len(lg.Antiunitary) > 0 {
		anti := symmetry.Select(ops, lg.Antiunitary)
		rels, err := corep.Classify(tbl, unitary, anti, corep.WithWavevector(data.K))
		if err != nil {
			return Result{}, fmt.Errorf("corepresentation classification: %w", err)
		}
		res.Relations = rels
	}

	return res, nil
}

// recombineKPhase folds the per-operation translation phase into each
// block's character vector, leaving the inputs untouched.
func recombineKPhase(blocks []character.Block, kphase []complex128) []character.Block {
	out := make([]character.Block, len(blocks))
	for b, blk := range blocks {
		chars := make([]complex128, len(blk.Chars))
		for r, ch := range blk.Chars {
			chars[r] = ch * kphase[r]
		}
		out[b] = character.Block{Bands: blk.Bands, Chars: chars}
	}

	return out
}

// Run processes every k-point of the wavefunction source over a bounded
// worker pool, accumulating outcomes in col. A failed wavevector is
// recorded on the collector and does not stop the batch; Run returns
// ErrAllWavevectorsFailed only when no k-point succeeded.
func (e *Engine) Run(col *Collector) error {
	if col == nil {
		panic(panicCollectorNil)
	}

	n := e.wfs.NumKPoints()
	p := pool.New().WithMaxGoroutines(e.o.workers)
	for i := 0; i < n; i++ {
		i := i
		p.Go(func() {
			data, err := e.wfs.KPoint(i)
			if err != nil {
				kerr := KPointError{Index: i, Err: fmt.Errorf("wavefunction source: %w", err)}
				e.o.log.Warn("wavevector failed", zap.Int("k_point", i), zap.Error(kerr.Err))
				col.fail(kerr)

				return
			}

			res, err := e.ProcessWavevector(i, data)
			if err != nil {
				e.o.log.Warn("wavevector failed",
					zap.Int("k_point", i),
					zap.Float64s("k", data.K[:]),
					zap.Error(err))
				col.fail(KPointError{Index: i, K: data.K, Err: err})

				return
			}

			e.o.log.Info("wavevector resolved",
				zap.Int("k_point", i),
				zap.Float64s("k", data.K[:]),
				zap.Int("little_group_order", res.LittleGroup.Order()),
				zap.Int("blocks", len(res.Blocks)))
			col.add(res)
		})
	}
	p.Wait()

	if n > 0 && len(col.Results()) == 0 {
		return ErrAllWavevectorsFailed
	}

	return nil
}
