// Package ui holds the small terminal-presentation helpers shared by
// dcminspect's subcommands.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
)

// BannerStyle defines the styling for the ASCII banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#5436bd")).
	Bold(true)

// SubtleStyle is used for the de-emphasized separator between a rendered
// element table and the Basic Offset Table summary.
var SubtleStyle = lipgloss.NewStyle().Faint(true)

// PrintBanner prints the "DCM Inspect" ASCII art banner to stderr.
func PrintBanner() {
	banner := figure.NewFigure("DCM Inspect", "banner3", true)
	fmt.Fprintln(os.Stderr, BannerStyle.Render(banner.String()))
	fmt.Fprintln(os.Stderr)
}
