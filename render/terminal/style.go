package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorOK    = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"} // emerald
	colorError = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"} // red
	colorWarn  = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"} // amber

	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
)

var (
	styleOK    = lipgloss.NewStyle().Foreground(colorOK).Bold(true)
	styleError = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleWarn  = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)

	stylePath  = lipgloss.NewStyle().Foreground(colorBright)
	styleCount = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta  = lipgloss.NewStyle().Foreground(colorDim)
)
