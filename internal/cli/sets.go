package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubestack"
	"github.com/seamusw/cubestack/internal/cubeset"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Show the built-in cube set",
	Long: `Print the built-in classic cube set in the YAML format accepted by
'solve' and 'browse', ready to copy into your own set files.`,
	RunE: runSets,
}

func init() {
	rootCmd.AddCommand(setsCmd)
}

func runSets(cmd *cobra.Command, args []string) error {
	set := cubeset.Classic()

	fmt.Printf("name: %s\n", set.Name)
	fmt.Println("cubes:")
	for _, c := range set.Cubes {
		fmt.Printf("  - [%d, %d, %d, %d, %d, %d]\n",
			c[cubestack.Top], c[cubestack.Bottom],
			c[cubestack.Front], c[cubestack.Back],
			c[cubestack.Left], c[cubestack.Right])
	}
	fmt.Println()
	fmt.Println(dimStyle.Render("# face order per cube: top, bottom, front, back, left, right"))

	return nil
}
