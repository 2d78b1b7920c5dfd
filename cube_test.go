package cubestack

import (
	"errors"
	"sort"
	"testing"
)

func classicCubes() [6]Cube {
	return [6]Cube{
		New(4, 1, 2, 5, 6, 3),
		New(6, 4, 5, 2, 3, 1),
		New(6, 3, 5, 2, 1, 4),
		New(5, 3, 4, 6, 2, 1),
		New(3, 6, 2, 1, 4, 5),
		New(4, 5, 6, 3, 1, 2),
	}
}

func sortedFaces(c Cube) []int {
	faces := append([]int(nil), c[:]...)
	sort.Ints(faces)
	return faces
}

func sameFaces(a, b Cube) bool {
	fa, fb := sortedFaces(a), sortedFaces(b)
	for i := range fa {
		if fa[i] != fb[i] {
			return false
		}
	}
	return true
}

func TestGeneratorsFourTimesIdentity(t *testing.T) {
	c := New(4, 1, 2, 5, 6, 3)

	generators := []struct {
		name string
		turn func(Cube) Cube
	}{
		{"pitch", Cube.Pitch},
		{"yaw", Cube.Yaw},
		{"roll", Cube.Roll},
	}

	for _, g := range generators {
		t.Run(g.name, func(t *testing.T) {
			state := c
			for i := 0; i < 4; i++ {
				state = g.turn(state)
			}
			if state != c {
				t.Errorf("%s x 4 should be identity, got %s", g.name, state)
			}
		})
	}
}

func TestGeneratorsPreserveFaces(t *testing.T) {
	for _, c := range classicCubes() {
		if !sameFaces(c, c.Pitch()) || !sameFaces(c, c.Yaw()) || !sameFaces(c, c.Roll()) {
			t.Errorf("rotation changed the face multiset of %s", c)
		}
	}
}

func TestRotationsDoNotMutate(t *testing.T) {
	c := New(4, 1, 2, 5, 6, 3)
	orig := c
	c.Pitch()
	c.Yaw()
	c.Roll()
	if c != orig {
		t.Errorf("receiver mutated: %s != %s", c, orig)
	}
}

func TestOrientationsCount(t *testing.T) {
	for _, c := range classicCubes() {
		states := c.Orientations()
		if len(states) != 24 {
			t.Errorf("cube %s: got %d orientations, want 24", c, len(states))
		}
		seen := make(map[Cube]bool)
		for _, s := range states {
			if seen[s] {
				t.Errorf("cube %s: duplicate orientation %s", c, s)
			}
			seen[s] = true
			if !sameFaces(c, s) {
				t.Errorf("cube %s: orientation %s changed face multiset", c, s)
			}
		}
	}
}

func TestOrientationsCollapseForRepeatedValues(t *testing.T) {
	uniform := New(1, 1, 1, 1, 1, 1)
	if n := len(uniform.Orientations()); n != 1 {
		t.Errorf("uniform cube should have 1 distinct orientation, got %d", n)
	}
}

func TestRotateToAdjacentFaces(t *testing.T) {
	for ci, c := range classicCubes() {
		pairs := c.OpposingPairs()
		members := c.Orientations()
		memberSet := make(map[Cube]bool, len(members))
		for _, m := range members {
			memberSet[m] = true
		}

		for _, front := range c[:] {
			for _, left := range c[:] {
				if front == left {
					continue
				}
				opposite := false
				for _, p := range pairs {
					if p.Has(front) && p.Has(left) {
						opposite = true
					}
				}
				if opposite {
					continue
				}

				rotated, err := c.RotateTo(front, left)
				if err != nil {
					t.Errorf("cube %d: RotateTo(%d, %d) failed: %v", ci+1, front, left, err)
					continue
				}
				if rotated[Front] != front || rotated[Left] != left {
					t.Errorf("cube %d: RotateTo(%d, %d) returned %s", ci+1, front, left, rotated)
				}
				if !memberSet[rotated] {
					t.Errorf("cube %d: %s is not a reachable orientation", ci+1, rotated)
				}
			}
		}
	}
}

func TestRotateToOppositeFaces(t *testing.T) {
	for ci, c := range classicCubes() {
		for _, p := range c.OpposingPairs() {
			if _, err := c.RotateTo(p[0], p[1]); !errors.Is(err, ErrImpossibleGeometry) {
				t.Errorf("cube %d: RotateTo(%d, %d) should report impossible geometry, got %v",
					ci+1, p[0], p[1], err)
			}
		}
	}
}

func TestRotateToDeterministic(t *testing.T) {
	c := New(4, 1, 2, 5, 6, 3)
	first, err := c.RotateTo(2, 6)
	if err != nil {
		t.Fatalf("RotateTo failed: %v", err)
	}
	second, err := c.RotateTo(2, 6)
	if err != nil {
		t.Fatalf("RotateTo failed: %v", err)
	}
	if first != second {
		t.Errorf("RotateTo not deterministic: %s vs %s", first, second)
	}
}
