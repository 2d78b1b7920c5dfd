package cubestack

import "errors"

// Sentinel errors for the cubestack package.
var (
	// Whole-solve outcomes
	ErrNoDirectionSets  = errors.New("cubestack: no valid direction sets")
	ErrNoCompatiblePair = errors.New("cubestack: no compatible direction-set pair")
	ErrUnresolvable     = errors.New("cubestack: no flip assignment yields six distinct faces")

	// Per-cube outcomes
	ErrImpossibleGeometry = errors.New("cubestack: target faces are not adjacent on this cube")
)
