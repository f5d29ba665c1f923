package cable

// StaticCableCost returns distance · static[capacity].
func (m Model) StaticCableCost(distance float64, capacity int) (float64, error) {
	price, ok := m.Catalog.StaticCost(capacity)
	if !ok {
		return 0, &UndefinedCostError{Kind: Static, Capacity: capacity}
	}
	return distance * price, nil
}

// DynamicCableCost returns distance · dynamic[capacity].
func (m Model) DynamicCableCost(distance float64, capacity int) (float64, error) {
	price, ok := m.Catalog.DynamicCost(capacity)
	if !ok {
		return 0, &UndefinedCostError{Kind: Dynamic, Capacity: capacity}
	}
	return distance * price, nil
}

// RealCableCost prices a cable of the given capacity along an arc of
// length, nb of whose endpoints are required nodes.
//
// A static entry for capacity is mandatory for every nb. The dynamic table is
// consulted only when the dynamic section has positive length
// (nb·DistanceMin > 0); a missing exact entry falls back to the smallest
// larger dynamic capacity.
//
// Complexity: O(1) with an exact dynamic entry, O(|dynamic|) on fallback.
func (m Model) RealCableCost(length float64, nb, capacity int) (float64, error) {
	if nb < 0 || nb > 2 {
		return 0, ErrInvalidEndpointCount
	}
	static, ok := m.Catalog.StaticCost(capacity)
	if !ok {
		return 0, &UndefinedCostError{Kind: Static, Capacity: capacity}
	}

	dynLen := float64(nb) * m.DistanceMin
	var dynamic float64
	if dynLen > 0 {
		if _, dynamic, ok = m.Catalog.DynamicAtLeast(capacity); !ok {
			return 0, &UndefinedCostError{Kind: Dynamic, Capacity: capacity}
		}
	}

	return (length-dynLen)*static + dynLen*dynamic + float64(nb)*m.DynamicStaticBranching, nil
}
