// Package consolidate chooses cable capacities for a tree layout under a
// limit on the number of distinct cable types.
//
// Given a flow map (arc → turbines served) and maxNbSec ≥ 1, Consolidate
// returns an assignment with capacity(a) ≥ flow(a), at most maxNbSec
// distinct capacities and minimum total instance.RealCableCost.
//
// Algorithm Outline:
//  1. Sort arcs by descending flow (ties in canonical arc order); F is the
//     largest flow and K = min(maxNbSec, F, n).
//  2. dp[i][j][k] is the cheapest cost of the first i+1 arcs when arc i gets
//     capacity j+1 and k+1 distinct capacities are in use. Capacities never
//     increase along the sorted order, so arc i either reuses the previous
//     capacity (same k) or opens a smaller one than the previous arc (k+1):
//
//     dp[i][j][k] = cost(i, j) + min(dp[i-1][j][k], min_{j' > j} dp[i-1][j'][k-1])
//
//     The first arc carries F and only j = F−1 is admissible for it.
//  3. Take the minimum over the last row, then backtrack through int32
//     back-pointers to recover the capacity of every arc.
//
// Capacities the catalog cannot price cost +Inf; if no finite assignment
// exists Consolidate fails with an error matching cable.ErrUndefinedCost.
//
// Storage is one flat arena of n·F·K float64 values plus n·F·K int32
// back-pointers. The inner minimum over j' > j is kept as a running suffix
// minimum, so the fill runs in O(n·F·K) instead of O(n·F²·K).
package consolidate
