package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingzhangyang/bond-lab/internal/application/simulation"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
	httpapi "github.com/mingzhangyang/bond-lab/internal/interfaces/http"
	"github.com/mingzhangyang/bond-lab/internal/interfaces/http/handlers"
	"github.com/mingzhangyang/bond-lab/pkg/client"
)

func newServer(t *testing.T) (*client.Client, *simulation.Session) {
	t.Helper()
	cfg := simulation.DefaultConfig()
	cfg.Seed = 11
	session := simulation.NewSession(cfg, nil,
		simulation.WithGraph(molecule.NewGraph(molecule.WithIDGenerator(molecule.SequentialIDs("n")))))
	router := httpapi.NewRouter(httpapi.RouterConfig{
		SimulationHandler: handlers.NewSimulationHandler(session, cfg.BondOverlap, cfg.MinBondLength),
		HealthHandler:     handlers.NewHealthHandler("e2e"),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	c, err := client.NewClient(srv.URL, client.WithRetryMax(0))
	require.NoError(t, err)
	return c, session
}

func TestE2E_BuildAndRelaxAmmonia(t *testing.T) {
	c, _ := newServer(t)
	ctx := context.Background()
	mol, sim := c.Molecule(), c.Simulation()

	n, err := mol.AddAtom(ctx, "N")
	require.NoError(t, err)
	var hs []string
	for i := 0; i < 3; i++ {
		h, err := mol.AddAtom(ctx, "H")
		require.NoError(t, err)
		_, err = mol.AddBond(ctx, n.ID, h.ID, 0)
		require.NoError(t, err)
		hs = append(hs, h.ID)
	}

	for i := 0; i < 3000; i++ {
		_, err := sim.Tick(ctx, 0.05)
		require.NoError(t, err)
	}

	deg, err := sim.BondAngle(ctx, hs[0], n.ID, hs[1])
	require.NoError(t, err)
	assert.InDelta(t, 107, deg, 8)

	f, err := sim.Frame(ctx)
	require.NoError(t, err)
	assert.Len(t, f.Atoms, 4)
	assert.Len(t, f.Bonds, 3)
	nf, ok := f.Atom(n.ID)
	require.True(t, ok)
	assert.Len(t, nf.LonePairs, 1)
	for _, b := range f.Bonds {
		require.NotNil(t, b.Placement)
		assert.Positive(t, b.Placement.Length)
	}
}

func TestE2E_GraphErrors(t *testing.T) {
	c, _ := newServer(t)
	ctx := context.Background()
	mol := c.Molecule()

	a, err := mol.AddAtom(ctx, "O")
	require.NoError(t, err)

	var apiErr *client.APIError
	_, err = mol.AddAtom(ctx, "Xx")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "GRAPH_006", apiErr.Code)

	_, err = mol.AddBond(ctx, a.ID, a.ID, 1)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "GRAPH_003", apiErr.Code)

	err = mol.RemoveAtom(ctx, "missing")
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())

	_, err = mol.EndDrag(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsConflict())
}

func TestE2E_PresetRotateAndParams(t *testing.T) {
	c, session := newServer(t)
	ctx := context.Background()
	mol, sim := c.Molecule(), c.Simulation()

	presets, err := sim.Presets(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, presets)
	elements, err := sim.Elements(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, elements)

	f, err := mol.LoadPreset(ctx, "ethylene")
	require.NoError(t, err)
	assert.Len(t, f.Atoms, 6)
	session.Tick(0.016)

	var double string
	for _, b := range f.Bonds {
		if b.Order == 2 {
			double = b.ID
		}
	}
	require.NotEmpty(t, double)
	moved, err := mol.RotateBond(ctx, double, 90)
	require.NoError(t, err)
	assert.Len(t, moved, 3, "carbon and its two hydrogens")

	require.NoError(t, mol.SetRotating(ctx, true))
	report, err := sim.Tick(ctx, 0.016)
	require.NoError(t, err)
	assert.True(t, report.Suspended)
	require.NoError(t, mol.SetRotating(ctx, false))

	p, err := sim.UpdateParams(ctx, client.Params{Damping: client.Float(0.8)})
	require.NoError(t, err)
	assert.Equal(t, 0.8, *p.Damping)
	require.NotNil(t, p.BondLength)
	assert.Equal(t, 1.5, *p.BondLength)

	_, err = sim.UpdateParams(ctx, client.Params{Damping: client.Float(1)})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsBadRequest())

	pl, err := sim.Placement(ctx, 3, 0.5, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 2.4, pl.Length, 1e-9)

	require.NoError(t, mol.Clear(ctx))
	f, err = sim.Frame(ctx)
	require.NoError(t, err)
	assert.Empty(t, f.Atoms)
}

func TestE2E_DragRelease(t *testing.T) {
	c, session := newServer(t)
	ctx := context.Background()
	mol := c.Molecule()

	a, err := mol.AddAtom(ctx, "C")
	require.NoError(t, err)
	b, err := mol.AddAtom(ctx, "H")
	require.NoError(t, err)
	session.Tick(0.016)

	fr, err := c.Simulation().Frame(ctx)
	require.NoError(t, err)
	af, ok := fr.Atom(a.ID)
	require.True(t, ok)
	require.NotNil(t, af.Position)

	require.NoError(t, mol.BeginDrag(ctx, b.ID))
	target := client.Vec3{X: af.Position.X + 0.3, Y: af.Position.Y, Z: af.Position.Z}
	require.NoError(t, mol.DragTo(ctx, target))
	bond, err := mol.EndDrag(ctx)
	require.NoError(t, err)
	require.NotNil(t, bond)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, []string{bond.Source, bond.Target})
}

//Personal.AI order the ending
