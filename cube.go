package cubestack

import "fmt"

// Slot identifies one of the six face positions of a cube.
type Slot int

const (
	Top    Slot = 0
	Bottom Slot = 1
	Front  Slot = 2
	Back   Slot = 3
	Left   Slot = 4
	Right  Slot = 5
)

func (s Slot) String() string {
	switch s {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "?"
	}
}

// Cube holds the six face values of one cube in fixed slot order:
// Top, Bottom, Front, Back, Left, Right. A Cube is a value; rotations
// return new Cubes and never mutate the receiver.
type Cube [6]int

// New creates a cube from its six face values in slot order.
func New(top, bottom, front, back, left, right int) Cube {
	return Cube{top, bottom, front, back, left, right}
}

// Pitch rotates the cube 90 degrees about the Left-Right axis.
// Back->Front, Front->Top, Top->Back, Bottom closes the cycle.
func (c Cube) Pitch() Cube {
	return Cube{c[Front], c[Back], c[Bottom], c[Top], c[Left], c[Right]}
}

// Yaw rotates the cube 90 degrees about the Top-Bottom axis.
// Front->Left, Left->Back, Back->Right, Right->Front.
func (c Cube) Yaw() Cube {
	return Cube{c[Top], c[Bottom], c[Left], c[Right], c[Back], c[Front]}
}

// Roll rotates the cube 90 degrees about the Front-Back axis.
// Top->Right, Right->Bottom, Bottom->Left, Left->Top.
func (c Cube) Roll() Cube {
	return Cube{c[Left], c[Right], c[Front], c[Back], c[Bottom], c[Top]}
}

// Orientations returns every state reachable from c by whole-cube
// rotation, in breadth-first discovery order. A cube with six distinct
// face values has exactly 24; repeated values collapse states.
func (c Cube) Orientations() []Cube {
	queue := []Cube{c}
	seen := make(map[Cube]bool, 24)
	var out []Cube

	for i := 0; i < len(queue); i++ {
		state := queue[i]
		if seen[state] {
			continue
		}
		seen[state] = true
		out = append(out, state)

		// The rotation group has 24 elements; stop expanding once
		// they have all been discovered.
		if len(seen) < 24 {
			queue = append(queue, state.Pitch(), state.Yaw(), state.Roll())
		}
	}

	return out
}

// RotateTo searches the reachable orientations of c for the one whose
// Front slot holds front and Left slot holds left. The search is
// breadth-first with generators applied in pitch, yaw, roll order, so
// the result is deterministic; once Front and Left are fixed the other
// four slots are forced by the rotation group anyway.
//
// Returns ErrImpossibleGeometry when no reachable orientation matches,
// which happens when the two target values sit on opposite faces of
// this cube (opposite faces can never be Front and Left at once).
func (c Cube) RotateTo(front, left int) (Cube, error) {
	queue := []Cube{c}
	seen := make(map[Cube]bool, 24)

	for i := 0; i < len(queue); i++ {
		state := queue[i]
		if seen[state] {
			continue
		}
		seen[state] = true

		if state[Front] == front && state[Left] == left {
			return state, nil
		}

		if len(seen) < 24 {
			queue = append(queue, state.Pitch(), state.Yaw(), state.Roll())
		}
	}

	return Cube{}, fmt.Errorf("%w: front=%d left=%d", ErrImpossibleGeometry, front, left)
}

// String returns a compact slot dump, e.g. "[T:4 B:1 F:2 Bk:5 L:6 R:3]".
func (c Cube) String() string {
	return fmt.Sprintf("[T:%d B:%d F:%d Bk:%d L:%d R:%d]",
		c[Top], c[Bottom], c[Front], c[Back], c[Left], c[Right])
}
