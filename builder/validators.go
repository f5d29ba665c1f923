package builder

// validateMin returns "<method>: parameter must be ≥ <min>, got <got>"
// wrapping ErrTooFewVertices when got < min.
//
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "parameter must be ≥ %d, got %d: %w", min, got, ErrTooFewVertices)
	}

	return nil
}

// validateRand returns ErrNeedRandSource when cfg carries no RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, "%w", ErrNeedRandSource)
	}

	return nil
}
