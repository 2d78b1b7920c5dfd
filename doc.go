// Package cubestack solves the six-cube stacking puzzle: given six
// cubes with labeled faces, find a rotation for each cube so that the
// stack shows every label exactly once on its front column and exactly
// once on its left column.
//
// # Quick Start
//
// Solve a set of cubes and inspect the arrangement:
//
//	cubes := [6]cubestack.Cube{
//	    cubestack.New(4, 1, 2, 5, 6, 3),
//	    cubestack.New(6, 4, 5, 2, 3, 1),
//	    cubestack.New(6, 3, 5, 2, 1, 4),
//	    cubestack.New(5, 3, 4, 6, 2, 1),
//	    cubestack.New(3, 6, 2, 1, 4, 5),
//	    cubestack.New(4, 5, 6, 3, 1, 2),
//	}
//
//	sol, err := cubestack.Solve(cubes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, p := range sol.Placements {
//	    fmt.Printf("#%d %s\n", i+1, p.Cube)
//	}
//
// # How it works
//
// Each cube decomposes into three opposing-face pairs, a property that
// whole-cube rotation cannot change. The solver enumerates every
// per-cube pair choice (3^6), keeps the "direction sets" whose twelve
// values cover 1..6 exactly twice, and looks for two sets that never
// claim the same pair of any cube. One set becomes the front/back
// axis, the other the left/right axis; a flip search then decides
// which member of each pair faces the viewer. Finally RotateTo walks
// the 24-element rotation group of each original cube to the unique
// orientation showing the required front and left values.
//
// The search takes the first hit at every stage in a fixed enumeration
// order, so the returned arrangement is deterministic. Failures are
// ordinary values: ErrNoDirectionSets and ErrNoCompatiblePair mean the
// input has no solution, while a single cube whose targets turn out
// non-adjacent carries ErrImpossibleGeometry in its Placement without
// aborting the rest.
package cubestack
