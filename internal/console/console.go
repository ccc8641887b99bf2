package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	emphasisStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimmedStyle   = lipgloss.NewStyle().Faint(true)
)

// Success prints a green checkmarked line.
func Success(format string, args ...any) {
	fmt.Println(successStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// Info prints an informational line.
func Info(format string, args ...any) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Warning prints a yellow warning line.
func Warning(format string, args ...any) {
	fmt.Println(warningStyle.Render("⚠ " + fmt.Sprintf(format, args...)))
}

// Error prints a red error line to stderr.
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Emphasis prints a bold heading line.
func Emphasis(format string, args ...any) {
	fmt.Println(emphasisStyle.Render(fmt.Sprintf(format, args...)))
}

// Dimmed prints a faint line.
func Dimmed(format string, args ...any) {
	fmt.Println(dimmedStyle.Render(fmt.Sprintf(format, args...)))
}

// Text prints a plain line.
func Text(format string, args ...any) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// Mask hides all but the last four characters of a secret. Unexpanded
// ${VAR} references are returned verbatim since they contain no secret.
func Mask(secret string) string {
	if strings.HasPrefix(secret, "${") && strings.HasSuffix(secret, "}") {
		return secret
	}
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
