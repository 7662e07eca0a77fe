package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

func renderListing(listings []m.ModuleListing, width int) string {
	if len(listings) == 0 {
		return summaryStyle.Render("No modules found") + "\n"
	}

	moduleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	aliasStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	var (
		b          strings.Builder
		references int
	)

	for _, listing := range listings {
		references += len(listing.References)
	}

	b.WriteString(titleStyle.Render("barrelgen registry modules"))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Modules: %s   Imports: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(listings))),
		accentStyle.Render(fmt.Sprintf("%d", references)),
	)))
	b.WriteString("\n")

	for _, listing := range listings {
		b.WriteString("  ")
		b.WriteString(moduleStyle.Render(listing.Module.BaseName))
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render(shortHash(listing.Hash)))
		b.WriteString("\n")

		if len(listing.References) == 0 {
			b.WriteString(mutedStyle.Render("    (no imports)"))
			b.WriteString("\n")

			continue
		}

		for i, ref := range listing.References {
			alias := string(listing.Aliases[i])
			specifier := truncateToWidth(ref.Specifier, width-lipgloss.Width(alias)-8)
			b.WriteString(fmt.Sprintf("    %s → %s", specifier, aliasStyle.Render(alias)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
