package builder

import "github.com/katalvlaran/cablenet/cable"

// DefaultModel returns a monotone cable model pricing every capacity in
// [1, maxCap]: static cables cost 20 + 5c per metre, dynamic cables exist
// for even capacities only (the first even capacity ≥ maxCap included) and
// cost 60 + 12c per metre. DistanceMin is 30 m and each dynamic–static joint
// costs 2000.
//
// Panics if maxCap < 1.
func DefaultModel(maxCap int) cable.Model {
	if maxCap < 1 {
		panic("builder: DefaultModel(maxCap<1)")
	}
	cat := cable.Catalog{
		Static:  make(map[int]float64, maxCap),
		Dynamic: make(map[int]float64, maxCap/2+1),
	}
	for c := 1; c <= maxCap; c++ {
		cat.Static[c] = 20 + 5*float64(c)
	}
	for c := 2; c < maxCap+2; c += 2 {
		cat.Dynamic[c] = 60 + 12*float64(c)
	}

	return cable.Model{
		Catalog:                cat,
		DistanceMin:            30,
		StaticStaticBranching:  1500,
		DynamicStaticBranching: 2000,
	}
}
