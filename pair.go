package cubestack

import "fmt"

// Pair is an unordered pair of face values sitting on opposite slots
// of a cube. Stored low value first so equal pairs compare equal.
type Pair [2]int

// NewPair creates a normalized pair from two face values.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{a, b}
}

// Has reports whether v is one of the pair's values.
func (p Pair) Has(v int) bool {
	return p[0] == v || p[1] == v
}

// Other returns the pair member opposite v. If v is not in the pair
// the first member is returned.
func (p Pair) Other(v int) int {
	if p[0] == v {
		return p[1]
	}
	return p[0]
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d %d)", p[0], p[1])
}

// Axis identifies one of the three opposing-pair slots of a cube in
// its original orientation.
type Axis int

const (
	AxisTopBottom Axis = 0
	AxisFrontBack Axis = 1
	AxisLeftRight Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisTopBottom:
		return "top/bottom"
	case AxisFrontBack:
		return "front/back"
	case AxisLeftRight:
		return "left/right"
	default:
		return "?"
	}
}

// OpposingPairs decomposes the cube into its three opposing-face
// pairs, indexed by Axis. Rotating a cube moves values between slots
// but never changes which values are opposite each other, so this
// decomposition only makes sense on the original, unrotated data.
func (c Cube) OpposingPairs() [3]Pair {
	return [3]Pair{
		AxisTopBottom: NewPair(c[Top], c[Bottom]),
		AxisFrontBack: NewPair(c[Front], c[Back]),
		AxisLeftRight: NewPair(c[Left], c[Right]),
	}
}
