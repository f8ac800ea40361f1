package cmd

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/config"
)

// Level badge palette, matching the original app:
// slate / yellow / orange / green / blue.
var levelColors = map[competency.Level]color.Color{
	competency.LevelNone: lipgloss.Color("#334155"),
	competency.Level1:    lipgloss.Color("#EAB308"),
	competency.Level2:    lipgloss.Color("#F97316"),
	competency.Level3:    lipgloss.Color("#16A34A"),
	competency.Level4:    lipgloss.Color("#2563EB"),
}

// levelBadge renders a colored badge with the configured level name.
func levelBadge(l competency.Level, cfg *config.Config) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F8FAFC")).
		Background(levelColors[l]).
		Padding(0, 1).
		Bold(true).
		Render(cfg.LevelName(l))
}
