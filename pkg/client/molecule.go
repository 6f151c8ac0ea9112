package client

import (
	"context"
	"net/url"
)

// MoleculeClient edits the server's molecule graph and drives user
// interaction.
type MoleculeClient struct {
	client *Client
}

func (m *MoleculeClient) AddAtom(ctx context.Context, element string) (*Atom, error) {
	var atom Atom
	if err := m.client.post(ctx, "/atoms", map[string]string{"element": element}, &atom); err != nil {
		return nil, err
	}
	return &atom, nil
}

// RemoveAtom deletes an atom together with its bonds.
func (m *MoleculeClient) RemoveAtom(ctx context.Context, id string) error {
	return m.client.delete(ctx, "/atoms/"+url.PathEscape(id), nil)
}

// AddBond bonds two atoms; order 0 means a single bond.
func (m *MoleculeClient) AddBond(ctx context.Context, source, target string, order int) (*Bond, error) {
	req := struct {
		Source string `json:"source"`
		Target string `json:"target"`
		Order  int    `json:"order,omitempty"`
	}{source, target, order}
	var bond Bond
	if err := m.client.post(ctx, "/bonds", req, &bond); err != nil {
		return nil, err
	}
	return &bond, nil
}

func (m *MoleculeClient) RemoveBond(ctx context.Context, id string) error {
	return m.client.delete(ctx, "/bonds/"+url.PathEscape(id), nil)
}

func (m *MoleculeClient) SetBondOrder(ctx context.Context, id string, order int) error {
	return m.client.put(ctx, "/bonds/"+url.PathEscape(id)+"/order", map[string]int{"order": order}, nil)
}

// RotateBond twists the smaller side of a bond about its axis and returns
// the ids of the atoms that moved.
func (m *MoleculeClient) RotateBond(ctx context.Context, id string, degrees float64) ([]string, error) {
	var resp struct {
		Moved []string `json:"moved"`
	}
	err := m.client.post(ctx, "/bonds/"+url.PathEscape(id)+"/rotate", map[string]float64{"angle_degrees": degrees}, &resp)
	return resp.Moved, err
}

// LoadPreset replaces the molecule with a built-in one and returns the new
// frame.
func (m *MoleculeClient) LoadPreset(ctx context.Context, name string) (*Frame, error) {
	var f Frame
	if err := m.client.post(ctx, "/presets/"+url.PathEscape(name), nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (m *MoleculeClient) Clear(ctx context.Context) error {
	return m.client.delete(ctx, "/molecule", nil)
}

// BeginDrag pins an atom to the pointer until EndDrag.
func (m *MoleculeClient) BeginDrag(ctx context.Context, atomID string) error {
	return m.client.post(ctx, "/drag", map[string]string{"atom_id": atomID}, nil)
}

func (m *MoleculeClient) DragTo(ctx context.Context, pos Vec3) error {
	return m.client.put(ctx, "/drag", map[string]Vec3{"position": pos}, nil)
}

// EndDrag releases the dragged atom.  The returned bond is non-nil when the
// release formed a proximity bond.
func (m *MoleculeClient) EndDrag(ctx context.Context) (*Bond, error) {
	var resp struct {
		Bond *Bond `json:"bond"`
	}
	if err := m.client.delete(ctx, "/drag", &resp); err != nil {
		return nil, err
	}
	return resp.Bond, nil
}

// SetRotating toggles whole-molecule rotation, which suspends relaxation.
func (m *MoleculeClient) SetRotating(ctx context.Context, rotating bool) error {
	return m.client.put(ctx, "/rotation", map[string]bool{"rotating": rotating}, nil)
}

//Personal.AI order the ending
