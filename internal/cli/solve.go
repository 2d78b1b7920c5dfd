package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubestack"
	"github.com/seamusw/cubestack/internal/storage"
)

var noRecord bool

var solveCmd = &cobra.Command{
	Use:   "solve [set-file]",
	Short: "Solve a cube set",
	Long: `Solve a six-cube set and print the resulting arrangement.

Without an argument the built-in classic set is solved. With an
argument, the set is loaded from a YAML file:

  name: my-set
  cubes:
    - [4, 1, 2, 5, 6, 3]   # top, bottom, front, back, left, right
    ...

Each run is recorded in the history database unless --no-record is
given. An unsolvable set is an ordinary outcome, not a failure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not record this run in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	set, err := loadSet(args)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Solving %q with 3D geometry validation...", set.Name)))

	sets := cubestack.EnumerateDirectionSets(set.Cubes)
	fmt.Printf("Found %d valid single-direction sets.\n", len(sets))
	fmt.Println()

	sol, solveErr := cubestack.Solve(set.Cubes)
	if solveErr != nil {
		fmt.Println(errorStyle.Render("NO SOLUTION FOUND."))
		if verbose {
			fmt.Println(dimStyle.Render(solveErr.Error()))
		}
	} else {
		fmt.Println(renderSolution(sol))
		if verbose {
			fmt.Println()
			fmt.Printf("Front/back axes: %v\n", sol.FrontBack.Axes)
			fmt.Printf("Left/right axes: %v\n", sol.LeftRight.Axes)
		}
	}

	if noRecord {
		return nil
	}

	runID, err := recordRun(set.Name, len(sets), sol, solveErr)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("Recorded run %s (cubestack show %s)", runID, runID)))

	return nil
}

// recordRun persists one solve attempt, successful or not.
func recordRun(setName string, directionSets int, sol *cubestack.Solution, solveErr error) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	run := storage.Run{
		SetName:       setName,
		DirectionSets: directionSets,
		Solved:        solveErr == nil,
	}
	if solveErr != nil {
		run.Message = strPtr(noSolutionMessage(solveErr))
	} else {
		for i, p := range sol.Placements {
			row := storage.Placement{CubeIdx: i}
			if p.Err != nil {
				row.Error = strPtr(fmt.Sprintf("impossible geometry for F=%d, L=%d",
					sol.Fronts[i], sol.Lefts[i]))
			} else {
				row.Front = intPtr(p.Cube[cubestack.Front])
				row.Back = intPtr(p.Cube[cubestack.Back])
				row.Left = intPtr(p.Cube[cubestack.Left])
				row.Right = intPtr(p.Cube[cubestack.Right])
				row.Top = intPtr(p.Cube[cubestack.Top])
				row.Bottom = intPtr(p.Cube[cubestack.Bottom])
			}
			run.Placements = append(run.Placements, row)
		}
	}

	repo := storage.NewRunRepository(db)
	runID, err := repo.Save(run)
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}
	return runID, nil
}

// noSolutionMessage maps solver errors to short stored messages.
func noSolutionMessage(err error) string {
	switch {
	case errors.Is(err, cubestack.ErrNoDirectionSets):
		return "no valid direction sets"
	case errors.Is(err, cubestack.ErrNoCompatiblePair):
		return "no compatible direction-set pair"
	case errors.Is(err, cubestack.ErrUnresolvable):
		return err.Error()
	default:
		return err.Error()
	}
}
