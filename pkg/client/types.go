package client

// Vec3 is a point or direction in layout space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Atom struct {
	ID      string `json:"id"`
	Element string `json:"element"`
}

type Bond struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Order  int    `json:"order"`
}

// Placement is where a bond's visual segment sits between two atom
// spheres.
type Placement struct {
	Length       float64 `json:"length"`
	CenterOffset float64 `json:"center_offset"`
}

// StepReport summarises one relaxation step.
type StepReport struct {
	Suspended     bool    `json:"suspended"`
	Dt            float64 `json:"dt"`
	Atoms         int     `json:"atoms"`
	KineticEnergy float64 `json:"kinetic_energy"`
	Degenerate    int     `json:"degenerate"`
}

// AtomFrame is one atom of a Frame.  Position is nil until the server has
// ticked at least once since the atom was added.
type AtomFrame struct {
	ID        string  `json:"id"`
	Element   string  `json:"element"`
	Radius    float64 `json:"radius"`
	Color     string  `json:"color"`
	Position  *Vec3   `json:"position,omitempty"`
	Velocity  *Vec3   `json:"velocity,omitempty"`
	LonePairs []Vec3  `json:"lone_pairs,omitempty"`
}

type BondFrame struct {
	ID        string     `json:"id"`
	Source    string     `json:"source"`
	Target    string     `json:"target"`
	Order     int        `json:"order"`
	Placement *Placement `json:"placement,omitempty"`
	Direction *Vec3      `json:"direction,omitempty"`
}

// Frame is a consistent snapshot of the server's molecule.
type Frame struct {
	Tick     uint64      `json:"tick"`
	Atoms    []AtomFrame `json:"atoms"`
	Bonds    []BondFrame `json:"bonds"`
	Dragged  string      `json:"dragged,omitempty"`
	Rotating bool        `json:"rotating"`
	Last     StepReport  `json:"last_step"`
}

// Atom looks up an atom by id.
func (f *Frame) Atom(id string) (AtomFrame, bool) {
	for _, a := range f.Atoms {
		if a.ID == id {
			return a, true
		}
	}
	return AtomFrame{}, false
}

// Params are the relaxation constants.  In UpdateParams a nil field keeps
// the server's current value.
type Params struct {
	MaxDt             *float64 `json:"max_dt,omitempty"`
	MinDistance       *float64 `json:"min_distance,omitempty"`
	Repulsion         *float64 `json:"repulsion,omitempty"`
	BondLength        *float64 `json:"bond_length,omitempty"`
	BondStiffness     *float64 `json:"bond_stiffness,omitempty"`
	AngleStiffness    *float64 `json:"angle_stiffness,omitempty"`
	LonePairDistance  *float64 `json:"lone_pair_distance,omitempty"`
	LonePairStiffness *float64 `json:"lone_pair_stiffness,omitempty"`
	CenteringStrength *float64 `json:"centering_strength,omitempty"`
	CenteringDeadzone *float64 `json:"centering_deadzone,omitempty"`
	Damping           *float64 `json:"damping,omitempty"`
	SpawnHalfExtent   *float64 `json:"spawn_half_extent,omitempty"`
}

// Float is a helper for building Params literals.
func Float(v float64) *float64 { return &v }

type Element struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Number    int     `json:"number"`
	VdWRadius float64 `json:"vdw_radius"`
	Valence   int     `json:"valence"`
	LonePairs int     `json:"lone_pairs"`
	Color     string  `json:"color"`
}

type Preset struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Atoms int    `json:"atoms"`
	Bonds int    `json:"bonds"`
}

//Personal.AI order the ending
