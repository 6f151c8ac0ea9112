package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mingzhangyang/bond-lab/internal/domain/element"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
)

type elementTable []element.Info

func (t elementTable) TableHeaders() []string {
	return []string{"Symbol", "Name", "Z", "vdW radius", "Visual radius", "Valence", "Lone pairs", "Color"}
}

func (t elementTable) TableRows(_ *palette) [][]string {
	rows := make([][]string, 0, len(t))
	for _, e := range t {
		rows = append(rows, []string{
			string(e.Symbol),
			e.Name,
			strconv.Itoa(e.Number),
			fmt.Sprintf("%.2f", e.VdWRadius),
			f3(e.VisualRadius()),
			strconv.Itoa(e.Valence),
			strconv.Itoa(e.LonePairs),
			e.Color,
		})
	}
	return rows
}

// NewElementsCmd lists the element table.
func NewElementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the supported elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return PrintResult(cmd, elementTable(element.All()))
		},
	}
}

type presetTable []molecule.PresetInfo

func (t presetTable) TableHeaders() []string {
	return []string{"Name", "Title", "Atoms", "Bonds"}
}

func (t presetTable) TableRows(_ *palette) [][]string {
	rows := make([][]string, 0, len(t))
	for _, p := range t {
		rows = append(rows, []string{p.Name, p.Title, strconv.Itoa(p.Atoms), strconv.Itoa(p.Bonds)})
	}
	return rows
}

// NewPresetsCmd lists the built-in molecules.
func NewPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in molecules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return PrintResult(cmd, presetTable(molecule.Presets()))
		},
	}
}

//Personal.AI order the ending
