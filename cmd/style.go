package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all command output.
const (
	ColorPrimary   = lipgloss.Color("#2563EB")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#0EA5E9")
)

var (
	// TitleStyle is for report titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle marks passing checks.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// WarningStyle marks results that need attention.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for names the user can type back in.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

const rule = "───────────────────────────────────────────────────────────────"

var out io.Writer = os.Stdout

func printHeader(title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     "+TitleStyle.Render(title))
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

func printSection(title string) {
	fmt.Fprintln(out, title+":")
	fmt.Fprintln(out, rule)
}

func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}
