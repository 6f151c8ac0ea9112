// Package element holds the static element metadata consumed by the layout
// engine and the molecule graph: radii, valence and lone-pair counts for the
// small set of elements the editor offers.
package element

import (
	"sort"
	"strings"
)

// Symbol is an element symbol such as "C" or "Cl".
type Symbol string

const (
	H  Symbol = "H"
	C  Symbol = "C"
	N  Symbol = "N"
	O  Symbol = "O"
	F  Symbol = "F"
	P  Symbol = "P"
	S  Symbol = "S"
	Cl Symbol = "Cl"
)

// visualScale converts a van der Waals radius in ångström into scene units,
// where the shared ideal bond length is 1.5.
const visualScale = 0.25

// Info is the metadata for one element.
type Info struct {
	Symbol Symbol  `json:"symbol"`
	Name   string  `json:"name"`
	Number int     `json:"number"`
	// VdWRadius is the van der Waals radius in ångström (Bondi).
	VdWRadius float64 `json:"vdw_radius"`
	// Valence is the total bond order the atom normally forms.
	Valence int `json:"valence"`
	// LonePairs is the number of non-bonding domains modelled by VSEPR.
	LonePairs int    `json:"lone_pairs"`
	Color     string `json:"color"`
}

// VisualRadius is the sphere radius used by renderers and by bond placement.
func (i Info) VisualRadius() float64 { return i.VdWRadius * visualScale }

var table = map[Symbol]Info{
	H:  {Symbol: H, Name: "Hydrogen", Number: 1, VdWRadius: 1.20, Valence: 1, LonePairs: 0, Color: "#FFFFFF"},
	C:  {Symbol: C, Name: "Carbon", Number: 6, VdWRadius: 1.70, Valence: 4, LonePairs: 0, Color: "#909090"},
	N:  {Symbol: N, Name: "Nitrogen", Number: 7, VdWRadius: 1.55, Valence: 3, LonePairs: 1, Color: "#3050F8"},
	O:  {Symbol: O, Name: "Oxygen", Number: 8, VdWRadius: 1.52, Valence: 2, LonePairs: 2, Color: "#FF0D0D"},
	F:  {Symbol: F, Name: "Fluorine", Number: 9, VdWRadius: 1.47, Valence: 1, LonePairs: 3, Color: "#90E050"},
	P:  {Symbol: P, Name: "Phosphorus", Number: 15, VdWRadius: 1.80, Valence: 3, LonePairs: 1, Color: "#FF8000"},
	S:  {Symbol: S, Name: "Sulfur", Number: 16, VdWRadius: 1.80, Valence: 2, LonePairs: 2, Color: "#FFFF30"},
	Cl: {Symbol: Cl, Name: "Chlorine", Number: 17, VdWRadius: 1.75, Valence: 1, LonePairs: 3, Color: "#1FF01F"},
}

// Lookup returns the metadata for sym.
func Lookup(sym Symbol) (Info, bool) {
	info, ok := table[sym]
	return info, ok
}

// Parse resolves a user-supplied symbol case-insensitively ("cl" → Cl).
func Parse(s string) (Symbol, bool) {
	s = strings.TrimSpace(s)
	for sym := range table {
		if strings.EqualFold(string(sym), s) {
			return sym, true
		}
	}
	return "", false
}

// LonePairs returns the lone-pair count for sym, zero for unknown symbols.
func LonePairs(sym Symbol) int {
	return table[sym].LonePairs
}

// VisualRadius returns the render radius for sym.  Unknown symbols get the
// carbon radius so that placement never divides by a zero-sized atom.
func VisualRadius(sym Symbol) float64 {
	if info, ok := table[sym]; ok {
		return info.VisualRadius()
	}
	return table[C].VisualRadius()
}

// All returns every known element ordered by atomic number.
func All() []Info {
	out := make([]Info, 0, len(table))
	for _, info := range table {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

//Personal.AI order the ending
