package instance

import (
	"fmt"

	"github.com/katalvlaran/cablenet/core"
)

func (in *Instance) length(a core.Arc) (float64, error) {
	d, ok := in.distance[a]
	if !ok {
		return 0, fmt.Errorf("instance: %w: %s", core.ErrArcNotFound, a)
	}
	return d, nil
}

// StaticCableCost prices a purely static cable of capacity along a.
func (in *Instance) StaticCableCost(a core.Arc, capacity int) (float64, error) {
	d, err := in.length(a)
	if err != nil {
		return 0, err
	}
	return in.model.StaticCableCost(d, capacity)
}

// DynamicCableCost prices a purely dynamic cable of capacity along a.
func (in *Instance) DynamicCableCost(a core.Arc, capacity int) (float64, error) {
	d, err := in.length(a)
	if err != nil {
		return 0, err
	}
	return in.model.DynamicCableCost(d, capacity)
}

// RealCableCost prices the hybrid cable of capacity along a, counting the
// required endpoints of a. Errors match cable.ErrUndefinedCost when the
// catalog cannot price capacity, core.ErrArcNotFound for a foreign arc.
func (in *Instance) RealCableCost(a core.Arc, capacity int) (float64, error) {
	d, err := in.length(a)
	if err != nil {
		return 0, err
	}
	return in.model.RealCableCost(d, in.RequiredEndpoints(a), capacity)
}

// LayoutCost sums RealCableCost over every arc of asg, in canonical arc order.
func (in *Instance) LayoutCost(asg Assignment) (float64, error) {
	total := 0.0
	for _, a := range asg.Arcs() {
		c, err := in.RealCableCost(a, asg[a])
		if err != nil {
			return 0, fmt.Errorf("instance: cost of %s: %w", a, err)
		}
		total += c
	}
	return total, nil
}
