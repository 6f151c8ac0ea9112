package cli

import (
	"github.com/spf13/cobra"

	"github.com/mingzhangyang/bond-lab/internal/domain/element"
	"github.com/mingzhangyang/bond-lab/internal/domain/layout"
	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

// PlacementResult is a bond placement with its inputs.
type PlacementResult struct {
	Distance     float64 `json:"distance"`
	SourceRadius float64 `json:"source_radius"`
	TargetRadius float64 `json:"target_radius"`
	layout.Placement
}

func (r PlacementResult) TableHeaders() []string {
	return []string{"Distance", "Source r", "Target r", "Length", "Center offset"}
}

func (r PlacementResult) TableRows(_ *palette) [][]string {
	return [][]string{{f3(r.Distance), f3(r.SourceRadius), f3(r.TargetRadius), f3(r.Length), f3(r.CenterOffset)}}
}

type placeOptions struct {
	distance     float64
	source       string
	target       string
	sourceRadius float64
	targetRadius float64
}

// NewPlaceCmd evaluates the bond placement projector.  Radii come from the
// element table unless given explicitly.
func NewPlaceCmd() *cobra.Command {
	opts := &placeOptions{}
	cmd := &cobra.Command{
		Use:     "place",
		Short:   "Compute the visible segment of a bond between two atoms",
		Example: "  bondlab place --distance 1.5 --source C --target H",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			srcR, err := radius(opts.source, opts.sourceRadius)
			if err != nil {
				return err
			}
			tgtR, err := radius(opts.target, opts.targetRadius)
			if err != nil {
				return err
			}
			sim := cliCtx.Config.Simulation
			return PrintResult(cmd, PlacementResult{
				Distance:     opts.distance,
				SourceRadius: srcR,
				TargetRadius: tgtR,
				Placement:    layout.PlaceBond(opts.distance, srcR, tgtR, sim.BondOverlap, sim.MinBondLength),
			})
		},
	}
	f := cmd.Flags()
	f.Float64VarP(&opts.distance, "distance", "d", 0, "center-to-center distance")
	f.StringVar(&opts.source, "source", "C", "source element")
	f.StringVar(&opts.target, "target", "C", "target element")
	f.Float64Var(&opts.sourceRadius, "source-radius", 0, "explicit source radius (overrides --source)")
	f.Float64Var(&opts.targetRadius, "target-radius", 0, "explicit target radius (overrides --target)")
	_ = cmd.MarkFlagRequired("distance")
	return cmd
}

func radius(symbol string, explicit float64) (float64, error) {
	if explicit > 0 {
		return explicit, nil
	}
	sym, ok := element.Parse(symbol)
	if !ok {
		return 0, errors.New(errors.ErrCodeUnknownElement, "unknown element symbol").WithDetail(symbol)
	}
	return element.VisualRadius(sym), nil
}

//Personal.AI order the ending
