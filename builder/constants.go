package builder

// Method name constants prefix errors with the constructor name.
const (
	MethodGrid      = "Grid"
	MethodLine      = "Line"
	MethodScatter   = "Scatter"
	MethodJunctions = "Junctions"
	MethodInstance  = "Instance"
	MethodTreeFlows = "TreeFlows"
	MethodPrimFlows = "PrimFlows"
)

// RootNode is the substation of every generated farm.
const RootNode = 0

// MinGridDim is the smallest allowed grid dimension.
const MinGridDim = 1

// MinLineNodes is the smallest allowed string length.
const MinLineNodes = 1

// DefaultSpacing is the distance in metres between neighbouring turbines.
const DefaultSpacing = 500.0

// DefaultMaxCapacity is the largest cable capacity of the default catalog.
const DefaultMaxCapacity = 16

// DefaultMaxNbSec is the default limit on distinct cable types.
const DefaultMaxNbSec = 3

// maxMergeAttempts bounds the random draws spent per requested merge.
const maxMergeAttempts = 64
