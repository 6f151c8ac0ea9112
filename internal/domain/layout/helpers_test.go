package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mingzhangyang/bond-lab/internal/domain/element"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

type rig struct {
	graph   *molecule.Graph
	store   *Store
	relaxer *Relaxer
}

func newRig(t *testing.T, preset string, seed int64) *rig {
	t.Helper()
	g := molecule.NewGraph(molecule.WithIDGenerator(molecule.SequentialIDs("a")))
	if preset != "" {
		require.NoError(t, molecule.LoadPreset(g, preset))
	}
	src := rand.New(rand.NewSource(seed))
	p := DefaultParams()
	return &rig{
		graph:   g,
		store:   NewStore(src, p.SpawnHalfExtent),
		relaxer: NewRelaxer(p, src),
	}
}

func (r *rig) step(ctl Control) StepReport {
	snap := r.graph.Snapshot()
	r.store.Sync(snap)
	return r.relaxer.Step(snap, r.store, ctl)
}

func (r *rig) run(n int, dt float64) {
	for i := 0; i < n; i++ {
		r.step(Control{Dt: dt})
	}
}

func (r *rig) idsOf(sym element.Symbol) []molecule.AtomID {
	var out []molecule.AtomID
	for _, a := range r.graph.Atoms() {
		if a.Element == sym {
			out = append(out, a.ID)
		}
	}
	return out
}

//Personal.AI order the ending
