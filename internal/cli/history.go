package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubestack/internal/storage"
)

var (
	listLimit int
	showLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent solve runs",
	Long:  `Display recent solve runs recorded in the history database.`,
	RunE:  runHistory,
}

var showCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show a recorded solve run",
	Long: `Display a recorded solve run, including its placement table when the
run was solved.

Use --last to show the most recent run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of runs to display")

	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent run")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewRunRepository(db)
	runs, err := repo.List(listLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet")
		fmt.Println("Solve a set with: cubestack solve")
		return nil
	}

	fmt.Printf("Recent runs (showing %d):\n", len(runs))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-10s  %-6s  %s\n", "ID", "When", "Set", "Sets", "Outcome")
	fmt.Println("------------------------------------  --------------------  ----------  ------  -------")

	for _, r := range runs {
		outcome := okStyle.Render("solved")
		if !r.Solved {
			outcome = errorStyle.Render("no solution")
			if r.Message != nil {
				outcome += dimStyle.Render(" (" + *r.Message + ")")
			}
		}

		fmt.Printf("%-36s  %-20s  %-10s  %-6d  %s\n",
			r.RunID,
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.SetName,
			r.DirectionSets,
			outcome,
		)
	}

	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewRunRepository(db)

	var runID string
	switch {
	case showLast:
		last, err := repo.GetLast()
		if err != nil {
			return fmt.Errorf("failed to get latest run: %w", err)
		}
		if last == nil {
			return fmt.Errorf("no runs found")
		}
		runID = last.RunID
	case len(args) > 0:
		runID = args[0]
	default:
		return fmt.Errorf("please provide a run ID or use --last")
	}

	run, err := repo.Get(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", runID)
	}

	fmt.Println(titleStyle.Render("Solve Run"))
	fmt.Println()
	fmt.Printf("ID:             %s\n", run.RunID)
	fmt.Printf("When:           %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Set:            %s\n", run.SetName)
	fmt.Printf("Direction sets: %d\n", run.DirectionSets)
	fmt.Println()

	if !run.Solved {
		fmt.Println(errorStyle.Render("NO SOLUTION FOUND."))
		if run.Message != nil {
			fmt.Println(dimStyle.Render(*run.Message))
		}
		return nil
	}

	fmt.Println(renderStoredPlacements(run.Placements))
	return nil
}
