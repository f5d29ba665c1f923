package cable

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for cost evaluation.
var (
	// ErrUndefinedCost is matched by every *UndefinedCostError.
	ErrUndefinedCost = errors.New("cable: undefined cost")

	// ErrInvalidEndpointCount is returned when nb is outside [0, 2].
	ErrInvalidEndpointCount = errors.New("cable: required endpoint count must be 0, 1 or 2")
)

// Kind distinguishes the two cable tables.
type Kind int

const (
	// Static cables lie on the sea bed between foundations.
	Static Kind = iota
	// Dynamic cables hang from a floating turbine down to the sea bed.
	Dynamic
)

// String returns "static" or "dynamic".
func (k Kind) String() string {
	if k == Dynamic {
		return "dynamic"
	}
	return "static"
}

// UndefinedCostError reports a capacity the catalog cannot price.
type UndefinedCostError struct {
	Kind     Kind
	Capacity int
}

func (e *UndefinedCostError) Error() string {
	return fmt.Sprintf("cable: no %s cable of capacity %d", e.Kind, e.Capacity)
}

// Unwrap lets errors.Is match ErrUndefinedCost.
func (e *UndefinedCostError) Unwrap() error { return ErrUndefinedCost }

// Catalog maps cable capacities to a cost per unit length.
type Catalog struct {
	// Static holds the sea-bed cable prices.
	Static map[int]float64 `validate:"required,min=1,dive,keys,min=1,endkeys,gte=0"`

	// Dynamic holds the hanging cable prices.
	Dynamic map[int]float64 `validate:"dive,keys,min=1,endkeys,gte=0"`
}

// StaticCost returns the static price of capacity.
func (c Catalog) StaticCost(capacity int) (float64, bool) {
	v, ok := c.Static[capacity]
	return v, ok
}

// DynamicCost returns the dynamic price of capacity.
func (c Catalog) DynamicCost(capacity int) (float64, bool) {
	v, ok := c.Dynamic[capacity]
	return v, ok
}

// DynamicAtLeast returns the exact dynamic entry for capacity if present,
// else the smallest dynamic capacity ≥ capacity together with its price.
func (c Catalog) DynamicAtLeast(capacity int) (int, float64, bool) {
	if v, ok := c.Dynamic[capacity]; ok {
		return capacity, v, true
	}
	best, found := 0, false
	for capa := range c.Dynamic {
		if capa >= capacity && (!found || capa < best) {
			best, found = capa, true
		}
	}
	if !found {
		return 0, 0, false
	}

	return best, c.Dynamic[best], true
}

// StaticCapacities lists the static capacities in ascending order.
func (c Catalog) StaticCapacities() []int { return sortedKeys(c.Static) }

// DynamicCapacities lists the dynamic capacities in ascending order.
func (c Catalog) DynamicCapacities() []int { return sortedKeys(c.Dynamic) }

// MaxStaticCapacity returns the largest static capacity, or 0 for an empty table.
func (c Catalog) MaxStaticCapacity() int {
	m := 0
	for capa := range c.Static {
		if capa > m {
			m = capa
		}
	}
	return m
}

// Clone returns a deep copy of c.
func (c Catalog) Clone() Catalog {
	out := Catalog{
		Static:  make(map[int]float64, len(c.Static)),
		Dynamic: make(map[int]float64, len(c.Dynamic)),
	}
	for k, v := range c.Static {
		out.Static[k] = v
	}
	for k, v := range c.Dynamic {
		out.Dynamic[k] = v
	}
	return out
}

func sortedKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Model bundles a Catalog with the parameters of the hybrid cost formula.
type Model struct {
	Catalog Catalog

	// DistanceMin is the dynamic cable length at every required endpoint.
	DistanceMin float64 `validate:"gte=0"`

	// StaticStaticBranching is the price of a static–static joint. It is
	// carried for reporting and not part of RealCableCost.
	StaticStaticBranching float64 `validate:"gte=0"`

	// DynamicStaticBranching is the price of a dynamic–static joint, paid
	// once per required endpoint.
	DynamicStaticBranching float64 `validate:"gte=0"`
}
