package cubestack

import "fmt"

// NumCubes is the stack height the puzzle is defined over.
const NumCubes = 6

// NumValues is the face value range; every completed axis must show
// each value in 1..NumValues exactly twice across its opposing pairs.
const NumValues = 6

// DirectionSet is a per-cube choice of one opposing pair each,
// claiming one physical axis of every cube for a single viewing
// direction. It is valid when the 12 chosen values cover 1..6 exactly
// twice each.
type DirectionSet struct {
	Axes  [NumCubes]Axis // which opposing pair each cube contributes
	Pairs [NumCubes]Pair // the contributed pairs, cube order
}

// Collides reports whether the two sets claim the same opposing pair
// of any cube. Non-colliding sets can be assigned to orthogonal
// viewing axes without reusing a physical pair of faces.
func (d DirectionSet) Collides(other DirectionSet) bool {
	for i := 0; i < NumCubes; i++ {
		if d.Axes[i] == other.Axes[i] {
			return true
		}
	}
	return false
}

// EnumerateDirectionSets walks the full Cartesian product of per-cube
// pair choices (3^6 combinations, last cube varying fastest) and
// keeps every combination whose 12 values cover 1..6 exactly twice.
// Output order is the enumeration order; downstream first-match
// policies depend on it staying ascending lexicographic.
func EnumerateDirectionSets(cubes [NumCubes]Cube) []DirectionSet {
	var pairs [NumCubes][3]Pair
	for i, c := range cubes {
		pairs[i] = c.OpposingPairs()
	}

	var sets []DirectionSet
	var axes [NumCubes]Axis

	for {
		var counts [NumValues + 1]int
		var chosen [NumCubes]Pair
		ok := true
		for i, a := range axes {
			p := pairs[i][a]
			chosen[i] = p
			for _, v := range p {
				if v < 1 || v > NumValues {
					ok = false
					break
				}
				counts[v]++
			}
		}
		if ok {
			for v := 1; v <= NumValues; v++ {
				if counts[v] != 2 {
					ok = false
					break
				}
			}
		}
		if ok {
			sets = append(sets, DirectionSet{Axes: axes, Pairs: chosen})
		}

		// Odometer increment, last position fastest.
		i := NumCubes - 1
		for ; i >= 0; i-- {
			axes[i]++
			if axes[i] < 3 {
				break
			}
			axes[i] = 0
		}
		if i < 0 {
			return sets
		}
	}
}

// FirstCompatiblePair scans all unordered pairs of direction sets in
// enumeration order (outer index strictly below inner) and returns
// the first non-colliding pair. ok is false when every pairing
// collides, or fewer than two sets exist.
func FirstCompatiblePair(sets []DirectionSet) (a, b DirectionSet, ok bool) {
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			if !sets[i].Collides(sets[j]) {
				return sets[i], sets[j], true
			}
		}
	}
	return DirectionSet{}, DirectionSet{}, false
}

// CompatiblePairs returns every non-colliding unordered pair of
// direction sets, in the same scan order FirstCompatiblePair uses.
// The first element, when any exist, is the solver's default choice.
func CompatiblePairs(sets []DirectionSet) [][2]DirectionSet {
	var out [][2]DirectionSet
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			if !sets[i].Collides(sets[j]) {
				out = append(out, [2]DirectionSet{sets[i], sets[j]})
			}
		}
	}
	return out
}

// ResolveOrientation picks, for each of the six pairs, which member
// faces the viewer so that the six chosen values are pairwise
// distinct. All 64 flip combinations are tried in ascending order
// (last cube flipping fastest) and the first hit wins.
//
// Returns ErrUnresolvable when no flip combination produces six
// distinct values; a direction set can be valid yet unresolvable.
func ResolveOrientation(pairs [NumCubes]Pair) ([NumCubes]int, error) {
	for flips := 0; flips < 1<<NumCubes; flips++ {
		var primary [NumCubes]int
		seen := make(map[int]bool, NumCubes)
		distinct := true
		for k := 0; k < NumCubes; k++ {
			v := pairs[k][(flips>>(NumCubes-1-k))&1]
			if seen[v] {
				distinct = false
				break
			}
			seen[v] = true
			primary[k] = v
		}
		if distinct {
			return primary, nil
		}
	}
	return [NumCubes]int{}, ErrUnresolvable
}

// Placement is the final state of one cube in the stack, or the
// reason it could not be oriented.
type Placement struct {
	Cube Cube  // fully determined orientation; zero when Err is set
	Err  error // ErrImpossibleGeometry when the targets are not adjacent
}

// Solution is a complete solved arrangement of the stack.
type Solution struct {
	DirectionSets int          // count of valid single-axis direction sets
	FrontBack     DirectionSet // set assigned to the front/back axis
	LeftRight     DirectionSet // set assigned to the left/right axis
	Fronts        [NumCubes]int
	Lefts         [NumCubes]int
	Placements    [NumCubes]Placement
}

// Solve finds an arrangement of the six cubes such that the six Front
// values and the six Left values are each a permutation of 1..6, with
// Back and Right forced by the opposing-pair structure. The input
// cubes are never mutated; each placement is a rotation of the
// corresponding input cube.
//
// The default policy takes the first compatible direction-set pair in
// enumeration order and the first workable flip assignment per axis,
// so repeated runs on the same input return the same arrangement.
// Use WithPairSelector to substitute a different tie-break.
//
// A per-cube geometry failure is recorded in its Placement and does
// not abort the remaining cubes. Whole-solve failures are returned as
// ErrNoDirectionSets, ErrNoCompatiblePair, or a wrapped
// ErrUnresolvable naming the affected axis.
func Solve(cubes [NumCubes]Cube, opts ...Option) (*Solution, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	sets := EnumerateDirectionSets(cubes)
	if len(sets) == 0 {
		return nil, ErrNoDirectionSets
	}

	fb, lr, ok := cfg.selectPair(sets)
	if !ok {
		return nil, ErrNoCompatiblePair
	}

	fronts, err := ResolveOrientation(fb.Pairs)
	if err != nil {
		return nil, fmt.Errorf("front/back axis: %w", err)
	}
	lefts, err := ResolveOrientation(lr.Pairs)
	if err != nil {
		return nil, fmt.Errorf("left/right axis: %w", err)
	}

	sol := &Solution{
		DirectionSets: len(sets),
		FrontBack:     fb,
		LeftRight:     lr,
		Fronts:        fronts,
		Lefts:         lefts,
	}

	for i := range cubes {
		rotated, err := cubes[i].RotateTo(fronts[i], lefts[i])
		sol.Placements[i] = Placement{Cube: rotated, Err: err}
	}

	return sol, nil
}
