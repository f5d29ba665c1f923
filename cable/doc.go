// Package cable implements the hybrid static/dynamic cable cost model of a
// wind-farm collection network.
//
// A cable following an arc is mostly static (laid on the sea bed). Each
// endpoint that is a turbine adds a dynamic section of length DistanceMin
// (hanging from the floating foundation) and a dynamic–static branching
// joint. Costs are per unit length and indexed by integer capacity, the
// number of turbines a cable can carry.
//
// Cost functions:
//
//	StaticCableCost(d, c)  = d · static[c]
//	DynamicCableCost(d, c) = d · dynamic[c]
//	RealCableCost(L, nb, c) =
//	    (L − nb·DistanceMin) · static[c]
//	  + nb·DistanceMin · dynamic[c']
//	  + nb · DynamicStaticBranching
//
// where nb ∈ {0,1,2} counts the required endpoints of the arc and c' is c
// when a dynamic entry exists, else the smallest dynamic capacity ≥ c.
//
// Lookups return (value, ok) pairs; cost functions return (float64, error)
// with a *UndefinedCostError (errors.Is ErrUndefinedCost) when the catalog
// cannot price the request. No numeric sentinel is ever returned.
//
// All functions are pure; Catalog and Model are values that are safe to share
// once built.
package cable
