package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubestack"
	"github.com/seamusw/cubestack/internal/cubeset"
)

var browseCmd = &cobra.Command{
	Use:   "browse [set-file]",
	Short: "Browse alternative arrangements interactively",
	Long: `Step through every compatible direction-set pair of a cube set in an
interactive TUI. The first pair is the arrangement 'solve' prints;
later pairs are equally valid alternatives.

Keyboard shortcuts:
  left/h  - previous pair
  right/l - next pair
  q/Esc   - quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	set, err := loadSet(args)
	if err != nil {
		return err
	}

	sets := cubestack.EnumerateDirectionSets(set.Cubes)
	pairs := cubestack.CompatiblePairs(sets)
	if len(pairs) == 0 {
		fmt.Println(errorStyle.Render("NO SOLUTION FOUND."))
		fmt.Printf("Found %d valid single-direction sets, none compatible.\n", len(sets))
		return nil
	}

	model := newBrowseModel(set, len(sets), pairs)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse error: %w", err)
	}

	return nil
}

// Model
type browseModel struct {
	set      cubeset.Set
	setCount int
	pairs    [][2]cubestack.DirectionSet
	idx      int
	quitting bool
}

func newBrowseModel(set cubeset.Set, setCount int, pairs [][2]cubestack.DirectionSet) *browseModel {
	return &browseModel{
		set:      set,
		setCount: setCount,
		pairs:    pairs,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			if m.idx > 0 {
				m.idx--
			}
		case "right", "l":
			if m.idx < len(m.pairs)-1 {
				m.idx++
			}
		}
	}
	return m, nil
}

func (m *browseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("cubestack browse — set %q", m.set.Name)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Direction sets: %d   Compatible pairs: %d   Showing pair %d/%d\n\n",
		m.setCount, len(m.pairs), m.idx+1, len(m.pairs)))
	b.WriteString(m.renderPair(m.pairs[m.idx]))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("left/right: change pair   q: quit"))
	b.WriteString("\n")
	return b.String()
}

// renderPair resolves one compatible pair into an arrangement table,
// or explains why it cannot be resolved.
func (m *browseModel) renderPair(pair [2]cubestack.DirectionSet) string {
	fronts, err := cubestack.ResolveOrientation(pair[0].Pairs)
	if err != nil {
		return errorStyle.Render("front/back axis unresolvable: no flip gives six distinct faces")
	}
	lefts, err := cubestack.ResolveOrientation(pair[1].Pairs)
	if err != nil {
		return errorStyle.Render("left/right axis unresolvable: no flip gives six distinct faces")
	}

	sol := &cubestack.Solution{Fronts: fronts, Lefts: lefts}
	for i, c := range m.set.Cubes {
		rotated, err := c.RotateTo(fronts[i], lefts[i])
		sol.Placements[i] = cubestack.Placement{Cube: rotated, Err: err}
	}
	return renderSolution(sol)
}
