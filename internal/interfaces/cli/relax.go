package cli

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mingzhangyang/bond-lab/internal/application/simulation"
	"github.com/mingzhangyang/bond-lab/internal/domain/element"
	"github.com/mingzhangyang/bond-lab/internal/domain/layout"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/logging"
	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

// AngleRow is one measured bond angle against its VSEPR target.
type AngleRow struct {
	Center        molecule.AtomID `json:"center"`
	CenterElement element.Symbol  `json:"center_element"`
	A             molecule.AtomID `json:"a"`
	B             molecule.AtomID `json:"b"`
	Degrees       float64         `json:"degrees"`
	IdealDegrees  float64         `json:"ideal_degrees"`
}

// BondRow is one bond with its current length.
type BondRow struct {
	ID     molecule.BondID `json:"id"`
	Source molecule.AtomID `json:"source"`
	Target molecule.AtomID `json:"target"`
	Order  int             `json:"order"`
	Length float64         `json:"length"`
}

// RelaxResult is the outcome of a headless run.
type RelaxResult struct {
	Preset string            `json:"preset"`
	Steps  int               `json:"steps"`
	Dt     float64           `json:"dt"`
	Final  layout.StepReport `json:"final"`
	Angles []AngleRow        `json:"angles"`
	Bonds  []BondRow         `json:"bonds"`
}

// TableHeaders implements tabular.
func (r RelaxResult) TableHeaders() []string {
	return []string{"Center", "A", "B", "Angle", "Ideal", "Δ"}
}

// TableRows implements tabular.
func (r RelaxResult) TableRows(p *palette) [][]string {
	rows := make([][]string, 0, len(r.Angles))
	for _, a := range r.Angles {
		rows = append(rows, []string{
			fmt.Sprintf("%s (%s)", a.Center, a.CenterElement),
			string(a.A),
			string(a.B),
			fmt.Sprintf("%.1f", a.Degrees),
			fmt.Sprintf("%.1f", a.IdealDegrees),
			p.deviation(a.Degrees - a.IdealDegrees),
		})
	}
	return rows
}

type relaxOptions struct {
	preset string
	steps  int
	dt     float64
	seed   int64
}

// NewRelaxCmd creates the relax command.
func NewRelaxCmd() *cobra.Command {
	opts := &relaxOptions{}
	cmd := &cobra.Command{
		Use:   "relax",
		Short: "Relax a preset molecule headlessly and report its bond angles",
		Example: "  bondlab relax --preset ammonia --steps 5000\n" +
			"  bondlab relax --preset water -o json",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg := SessionConfig(cliCtx.Config)
			if cmd.Flags().Changed("seed") {
				cfg.Seed = opts.seed
			}
			if opts.preset == "" {
				opts.preset = cliCtx.Config.Simulation.Preset
			}
			if opts.dt == 0 {
				opts.dt = cliCtx.Config.Simulation.TickInterval.Seconds()
			}
			res, err := RunRelax(cfg, cliCtx.Logger, opts.preset, opts.steps, opts.dt)
			if err != nil {
				return err
			}
			if cliCtx.OutputFormat != "json" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps of %.3fs, kinetic energy %.3g\n",
					res.Preset, res.Steps, res.Dt, res.Final.KineticEnergy)
			}
			return PrintResult(cmd, res)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.preset, "preset", "p", "", "preset molecule (see `bondlab presets`; default from config or water)")
	f.IntVarP(&opts.steps, "steps", "n", 3000, "number of relaxation steps")
	f.Float64Var(&opts.dt, "dt", 0, "step delta in seconds (default: simulation.tick_interval)")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (default from config)")
	return cmd
}

// RunRelax loads preset into a fresh session, ticks it steps times and
// measures the result.
func RunRelax(cfg simulation.Config, logger logging.Logger, preset string, steps int, dt float64) (RelaxResult, error) {
	if preset == "" {
		preset = "water"
	}
	if steps <= 0 {
		return RelaxResult{}, errors.InvalidParam("steps must be positive")
	}
	if dt <= 0 || math.IsNaN(dt) {
		return RelaxResult{}, errors.InvalidParam("dt must be positive")
	}

	s := simulation.NewSession(cfg, logger)
	if err := s.LoadPreset(preset); err != nil {
		return RelaxResult{}, err
	}
	var last layout.StepReport
	for i := 0; i < steps; i++ {
		last = s.Tick(dt)
	}

	frame := s.Frame()
	return RelaxResult{
		Preset: preset,
		Steps:  steps,
		Dt:     dt,
		Final:  last,
		Angles: measureAngles(s, frame),
		Bonds:  measureBonds(frame),
	}, nil
}

func measureAngles(s *simulation.Session, frame simulation.Frame) []AngleRow {
	elements := make(map[molecule.AtomID]element.Symbol, len(frame.Atoms))
	for _, a := range frame.Atoms {
		elements[a.ID] = a.Element
	}
	adj := make(map[molecule.AtomID][]molecule.AtomID)
	for _, b := range frame.Bonds {
		adj[b.Source] = append(adj[b.Source], b.Target)
		adj[b.Target] = append(adj[b.Target], b.Source)
	}

	var rows []AngleRow
	for _, atom := range frame.Atoms {
		nbrs := adj[atom.ID]
		if len(nbrs) < 2 {
			continue
		}
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })
		lp := element.LonePairs(atom.Element)
		ideal := layout.IdealAngle(len(nbrs)+lp, layout.BondedDomain, layout.BondedDomain, lp).Ideal * 180 / math.Pi
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				deg, ok := s.BondAngle(nbrs[i], atom.ID, nbrs[j])
				if !ok {
					continue
				}
				rows = append(rows, AngleRow{
					Center:        atom.ID,
					CenterElement: elements[atom.ID],
					A:             nbrs[i],
					B:             nbrs[j],
					Degrees:       deg,
					IdealDegrees:  ideal,
				})
			}
		}
	}
	return rows
}

func measureBonds(frame simulation.Frame) []BondRow {
	pos := make(map[molecule.AtomID]simulation.AtomFrame, len(frame.Atoms))
	for _, a := range frame.Atoms {
		pos[a.ID] = a
	}
	rows := make([]BondRow, 0, len(frame.Bonds))
	for _, b := range frame.Bonds {
		row := BondRow{ID: b.ID, Source: b.Source, Target: b.Target, Order: b.Order}
		if s, t := pos[b.Source].Position, pos[b.Target].Position; s != nil && t != nil {
			row.Length = s.DistanceTo(*t)
		}
		rows = append(rows, row)
	}
	return rows
}

//Personal.AI order the ending
