package molecule

import (
	"sort"

	"github.com/mingzhangyang/bond-lab/internal/domain/element"
	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

type presetBond struct {
	a, b  int
	order int
}

type preset struct {
	title string
	atoms []element.Symbol
	bonds []presetBond
}

var presets = map[string]preset{
	"water": {
		title: "Water (H2O)",
		atoms: []element.Symbol{element.O, element.H, element.H},
		bonds: []presetBond{{0, 1, 1}, {0, 2, 1}},
	},
	"ammonia": {
		title: "Ammonia (NH3)",
		atoms: []element.Symbol{element.N, element.H, element.H, element.H},
		bonds: []presetBond{{0, 1, 1}, {0, 2, 1}, {0, 3, 1}},
	},
	"methane": {
		title: "Methane (CH4)",
		atoms: []element.Symbol{element.C, element.H, element.H, element.H, element.H},
		bonds: []presetBond{{0, 1, 1}, {0, 2, 1}, {0, 3, 1}, {0, 4, 1}},
	},
	"carbon-dioxide": {
		title: "Carbon dioxide (CO2)",
		atoms: []element.Symbol{element.C, element.O, element.O},
		bonds: []presetBond{{0, 1, 2}, {0, 2, 2}},
	},
	"formaldehyde": {
		title: "Formaldehyde (CH2O)",
		atoms: []element.Symbol{element.C, element.O, element.H, element.H},
		bonds: []presetBond{{0, 1, 2}, {0, 2, 1}, {0, 3, 1}},
	},
	"hydrogen-cyanide": {
		title: "Hydrogen cyanide (HCN)",
		atoms: []element.Symbol{element.H, element.C, element.N},
		bonds: []presetBond{{0, 1, 1}, {1, 2, 3}},
	},
	"ethylene": {
		title: "Ethylene (C2H4)",
		atoms: []element.Symbol{element.C, element.C, element.H, element.H, element.H, element.H},
		bonds: []presetBond{{0, 1, 2}, {0, 2, 1}, {0, 3, 1}, {1, 4, 1}, {1, 5, 1}},
	},
}

// PresetInfo describes one built-in molecule.
type PresetInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Atoms int    `json:"atoms"`
	Bonds int    `json:"bonds"`
}

// Presets lists the built-in molecules sorted by name.
func Presets() []PresetInfo {
	out := make([]PresetInfo, 0, len(presets))
	for name, p := range presets {
		out = append(out, PresetInfo{Name: name, Title: p.title, Atoms: len(p.atoms), Bonds: len(p.bonds)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LoadPreset clears g and fills it with the named molecule.
func LoadPreset(g *Graph, name string) error {
	p, ok := presets[name]
	if !ok {
		return errors.New(errors.ErrCodeUnknownPreset, "unknown molecule preset").WithDetail(name)
	}
	g.Clear()
	ids := make([]AtomID, len(p.atoms))
	for i, sym := range p.atoms {
		a, err := g.AddAtom(sym)
		if err != nil {
			return errors.Wrap(err, errors.CodeUnknown, "load preset "+name)
		}
		ids[i] = a.ID
	}
	for _, b := range p.bonds {
		if _, err := g.AddBond(ids[b.a], ids[b.b], b.order); err != nil {
			return errors.Wrap(err, errors.CodeUnknown, "load preset "+name)
		}
	}
	return nil
}

//Personal.AI order the ending
