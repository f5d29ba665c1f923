// Package builder generates synthetic wind farms for tests, examples and
// benchmarks.
//
// A Farm is a planar layout: the substation (root, node 0) plus turbines and
// optional junction points, each with a position in metres. Farms are
// composed from Constructors applied in order by BuildFarm:
//
//   - Grid(rows, cols): a regular rows×cols turbine array.
//   - Line(n):          a single string of n turbines.
//   - Scatter(n):       n turbines at random positions (needs an RNG).
//   - Junctions(n):     n non-required junction points (needs an RNG).
//
// Each constructor lays its turbines on fresh rows below the previous ones,
// so compositions never overlap.
//
// From a Farm:
//
//   - Instance(opts...) returns an instance.Instance over the complete
//     digraph of the farm (no arc enters the substation) with Euclidean
//     lengths, the configured cable model, degree limits and maxNbSec.
//   - TreeFlows(merges) returns a random flow-conserving arborescence rooted
//     at the substation with up to merges injected merge nodes, the raw
//     input flow.Repair expects.
//   - PrimFlows() returns the flows of a degree-capped minimum spanning
//     arborescence grown from the substation, a deterministic baseline.
//
// DefaultModel(maxCap) is a monotone catalog pricing every capacity up to
// maxCap, so any demand a farm produces can be cabled.
//
// Options follow the functional style: WithSeed/WithRand for determinism,
// WithSpacing, WithSubstationAt, WithModel, WithMaxNbSec, WithRootDegree,
// WithTurbineDegree. Option constructors panic on meaningless values;
// constructors return sentinel errors and never panic.
package builder
