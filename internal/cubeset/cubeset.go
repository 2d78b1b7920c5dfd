// Package cubeset defines named six-cube puzzle inputs and loads them
// from YAML files.
package cubeset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seamusw/cubestack"
)

// Set is a named collection of exactly six cubes.
type Set struct {
	Name  string
	Cubes [cubestack.NumCubes]cubestack.Cube
}

// Classic returns the built-in puzzle set.
func Classic() Set {
	return Set{
		Name: "classic",
		Cubes: [cubestack.NumCubes]cubestack.Cube{
			cubestack.New(4, 1, 2, 5, 6, 3),
			cubestack.New(6, 4, 5, 2, 3, 1),
			cubestack.New(6, 3, 5, 2, 1, 4),
			cubestack.New(5, 3, 4, 6, 2, 1),
			cubestack.New(3, 6, 2, 1, 4, 5),
			cubestack.New(4, 5, 6, 3, 1, 2),
		},
	}
}

// fileFormat is the YAML shape of a set file:
//
//	name: classic
//	cubes:
//	  - [4, 1, 2, 5, 6, 3]   # top, bottom, front, back, left, right
//	  ...
type fileFormat struct {
	Name  string  `yaml:"name"`
	Cubes [][]int `yaml:"cubes"`
}

// Load reads a cube set from a YAML file. The file must define
// exactly six cubes with six faces each, in slot order top, bottom,
// front, back, left, right. Face values are not range-checked here;
// an unsolvable set simply yields no solution downstream.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read set file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a cube set from YAML bytes.
func Parse(data []byte) (Set, error) {
	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return Set{}, fmt.Errorf("failed to parse set file: %w", err)
	}

	if len(ff.Cubes) != cubestack.NumCubes {
		return Set{}, fmt.Errorf("set %q: expected %d cubes, got %d",
			ff.Name, cubestack.NumCubes, len(ff.Cubes))
	}

	set := Set{Name: ff.Name}
	if set.Name == "" {
		set.Name = "unnamed"
	}
	for i, faces := range ff.Cubes {
		if len(faces) != 6 {
			return Set{}, fmt.Errorf("set %q: cube %d has %d faces, want 6",
				ff.Name, i+1, len(faces))
		}
		set.Cubes[i] = cubestack.New(faces[0], faces[1], faces[2], faces[3], faces[4], faces[5])
	}

	return set, nil
}
