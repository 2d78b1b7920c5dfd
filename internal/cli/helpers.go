package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/cubestack"
	"github.com/seamusw/cubestack/internal/cubeset"
	"github.com/seamusw/cubestack/internal/storage"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// loadSet resolves the cube set for a command: the optional file
// argument, or the built-in classic set.
func loadSet(args []string) (cubeset.Set, error) {
	if len(args) == 0 {
		return cubeset.Classic(), nil
	}
	return cubeset.Load(args[0])
}

// openDB opens the history database and applies migrations.
func openDB() (*storage.DB, error) {
	path := getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

const tableHeader = "CUBE  | FRONT  BACK   | LEFT   RIGHT  | TOP    BOTTOM"

// renderSolution formats a solved arrangement as the report table.
func renderSolution(sol *cubestack.Solution) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(tableHeader))
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(strings.Repeat("=", len(tableHeader))))
	b.WriteByte('\n')

	for i, p := range sol.Placements {
		if p.Err != nil {
			b.WriteString(fmt.Sprintf("#%-4d | %s\n", i+1,
				errorStyle.Render(fmt.Sprintf("impossible geometry for F=%d, L=%d",
					sol.Fronts[i], sol.Lefts[i]))))
			continue
		}
		c := p.Cube
		b.WriteString(fmt.Sprintf("#%-4d | %-6d %-6d | %-6d %-6d | %-6d %-6d\n",
			i+1,
			c[cubestack.Front], c[cubestack.Back],
			c[cubestack.Left], c[cubestack.Right],
			c[cubestack.Top], c[cubestack.Bottom]))
	}

	b.WriteString(dimStyle.Render(strings.Repeat("-", len(tableHeader))))
	return b.String()
}

// renderStoredPlacements formats the placement rows of a stored run.
func renderStoredPlacements(placements []storage.Placement) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(tableHeader))
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(strings.Repeat("=", len(tableHeader))))
	b.WriteByte('\n')

	for _, p := range placements {
		if p.Error != nil {
			b.WriteString(fmt.Sprintf("#%-4d | %s\n", p.CubeIdx+1, errorStyle.Render(*p.Error)))
			continue
		}
		b.WriteString(fmt.Sprintf("#%-4d | %-6d %-6d | %-6d %-6d | %-6d %-6d\n",
			p.CubeIdx+1,
			deref(p.Front), deref(p.Back),
			deref(p.Left), deref(p.Right),
			deref(p.Top), deref(p.Bottom)))
	}

	b.WriteString(dimStyle.Render(strings.Repeat("-", len(tableHeader))))
	return b.String()
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func intPtr(v int) *int {
	return &v
}

func strPtr(s string) *string {
	return &s
}
