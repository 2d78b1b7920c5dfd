package cubestack

import (
	"errors"
	"reflect"
	"testing"
)

func isPermutation(vals [NumCubes]int) bool {
	var seen [NumValues + 1]bool
	for _, v := range vals {
		if v < 1 || v > NumValues || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func TestOpposingPairsCoverFaces(t *testing.T) {
	for ci, c := range classicCubes() {
		pairs := c.OpposingPairs()
		var collected []int
		for _, p := range pairs {
			collected = append(collected, p[0], p[1])
		}
		counts := make(map[int]int)
		for _, v := range collected {
			counts[v]++
		}
		for _, v := range c[:] {
			counts[v]--
		}
		for v, n := range counts {
			if n != 0 {
				t.Errorf("cube %d: pair decomposition mismatched on value %d", ci+1, v)
			}
		}
	}
}

func TestDirectionSetsValuesTwiceEach(t *testing.T) {
	cubes := classicCubes()
	sets := EnumerateDirectionSets(cubes)
	if len(sets) == 0 {
		t.Fatal("classic set should have valid direction sets")
	}
	t.Logf("found %d valid direction sets", len(sets))

	for si, set := range sets {
		var counts [NumValues + 1]int
		for i, p := range set.Pairs {
			if p != cubes[i].OpposingPairs()[set.Axes[i]] {
				t.Errorf("set %d: pair %d does not match its axis choice", si, i)
			}
			counts[p[0]]++
			counts[p[1]]++
		}
		for v := 1; v <= NumValues; v++ {
			if counts[v] != 2 {
				t.Errorf("set %d: value %d occurs %d times, want 2", si, v, counts[v])
			}
		}
	}
}

func TestCompatiblePairDisjointAxes(t *testing.T) {
	sets := EnumerateDirectionSets(classicCubes())
	a, b, ok := FirstCompatiblePair(sets)
	if !ok {
		t.Fatal("classic set should have a compatible pair")
	}
	if a.Collides(b) {
		t.Errorf("compatible pair shares an axis choice:\n  %v\n  %v", a.Axes, b.Axes)
	}

	for pi, pair := range CompatiblePairs(sets) {
		if pair[0].Collides(pair[1]) {
			t.Errorf("pair %d collides", pi)
		}
	}
}

func TestFirstCompatiblePairIsScanOrder(t *testing.T) {
	sets := EnumerateDirectionSets(classicCubes())
	a, b, ok := FirstCompatiblePair(sets)
	if !ok {
		t.Fatal("classic set should have a compatible pair")
	}
	all := CompatiblePairs(sets)
	if len(all) == 0 {
		t.Fatal("CompatiblePairs returned nothing")
	}
	if all[0][0] != a || all[0][1] != b {
		t.Error("FirstCompatiblePair disagrees with CompatiblePairs order")
	}
}

func TestResolveOrientationPermutation(t *testing.T) {
	sets := EnumerateDirectionSets(classicCubes())
	a, b, ok := FirstCompatiblePair(sets)
	if !ok {
		t.Fatal("classic set should have a compatible pair")
	}

	for _, set := range []DirectionSet{a, b} {
		primary, err := ResolveOrientation(set.Pairs)
		if err != nil {
			t.Fatalf("ResolveOrientation failed: %v", err)
		}
		if !isPermutation(primary) {
			t.Errorf("primary values %v are not a permutation of 1..6", primary)
		}
		for k, v := range primary {
			if !set.Pairs[k].Has(v) {
				t.Errorf("primary %d for cube %d is not in its pair %s", v, k+1, set.Pairs[k])
			}
		}
	}
}

func TestResolveOrientationUnresolvable(t *testing.T) {
	var pairs [NumCubes]Pair
	for i := range pairs {
		pairs[i] = NewPair(1, 2)
	}
	if _, err := ResolveOrientation(pairs); !errors.Is(err, ErrUnresolvable) {
		t.Errorf("expected ErrUnresolvable, got %v", err)
	}
}

func TestSolveClassic(t *testing.T) {
	cubes := classicCubes()
	sol, err := Solve(cubes)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if sol.DirectionSets == 0 {
		t.Error("direction set count should be positive")
	}
	if !isPermutation(sol.Fronts) {
		t.Errorf("fronts %v are not a permutation of 1..6", sol.Fronts)
	}
	if !isPermutation(sol.Lefts) {
		t.Errorf("lefts %v are not a permutation of 1..6", sol.Lefts)
	}

	for i, p := range sol.Placements {
		if p.Err != nil {
			t.Errorf("cube %d: placement failed: %v", i+1, p.Err)
			continue
		}
		if p.Cube[Front] != sol.Fronts[i] || p.Cube[Left] != sol.Lefts[i] {
			t.Errorf("cube %d: placement %s does not show front=%d left=%d",
				i+1, p.Cube, sol.Fronts[i], sol.Lefts[i])
		}

		// Front/back and left/right columns must come from the
		// cube's original opposing pairs.
		pairs := cubes[i].OpposingPairs()
		fb := NewPair(p.Cube[Front], p.Cube[Back])
		lr := NewPair(p.Cube[Left], p.Cube[Right])
		tb := NewPair(p.Cube[Top], p.Cube[Bottom])
		for _, want := range []Pair{fb, lr, tb} {
			found := false
			for _, have := range pairs {
				if have == want {
					found = true
				}
			}
			if !found {
				t.Errorf("cube %d: %s is not an opposing pair of %s", i+1, want, cubes[i])
			}
		}

		// Re-deriving the orientation from the targets must
		// reproduce the reported state exactly.
		again, err := cubes[i].RotateTo(sol.Fronts[i], sol.Lefts[i])
		if err != nil {
			t.Errorf("cube %d: re-derivation failed: %v", i+1, err)
		} else if again != p.Cube {
			t.Errorf("cube %d: re-derivation %s != placement %s", i+1, again, p.Cube)
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	cubes := classicCubes()
	first, err := Solve(cubes)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	second, err := Solve(cubes)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two solves of the same input disagree")
	}
}

func TestSolveIdenticalCubes(t *testing.T) {
	// Six identical cubes with distinct faces still solve: each axis
	// takes each opposing pair exactly twice.
	var cubes [NumCubes]Cube
	for i := range cubes {
		cubes[i] = New(1, 2, 3, 4, 5, 6)
	}
	sol, err := Solve(cubes)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !isPermutation(sol.Fronts) || !isPermutation(sol.Lefts) {
		t.Errorf("fronts %v / lefts %v not permutations", sol.Fronts, sol.Lefts)
	}
}

func TestSolveNoSolution(t *testing.T) {
	var cubes [NumCubes]Cube
	for i := range cubes {
		cubes[i] = New(1, 1, 1, 1, 1, 1)
	}
	_, err := Solve(cubes)
	if !errors.Is(err, ErrNoDirectionSets) {
		t.Errorf("expected ErrNoDirectionSets, got %v", err)
	}
}

func TestSolveWithPairSelector(t *testing.T) {
	cubes := classicCubes()

	// Swap the axis assignment of the default pair.
	swapped := func(sets []DirectionSet) (DirectionSet, DirectionSet, bool) {
		a, b, ok := FirstCompatiblePair(sets)
		return b, a, ok
	}

	sol, err := Solve(cubes, WithPairSelector(swapped))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	a, b, ok := FirstCompatiblePair(EnumerateDirectionSets(cubes))
	if !ok {
		t.Fatal("classic set should have a compatible pair")
	}
	if sol.FrontBack != b || sol.LeftRight != a {
		t.Error("solver ignored the configured pair selector")
	}
	if !isPermutation(sol.Fronts) || !isPermutation(sol.Lefts) {
		t.Errorf("fronts %v / lefts %v not permutations", sol.Fronts, sol.Lefts)
	}
}
