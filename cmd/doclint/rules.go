package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"doclint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered style rules",
	RunE:  runRules,
}

var (
	ruleIDStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	ruleNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	ruleOffStyle  = lipgloss.NewStyle().Faint(true)
)

func runRules(cmd *cobra.Command, _ []string) error {
	styled := useColor(cmd, os.Stdout)
	for _, r := range rules.All() {
		desc := r.Descriptor()

		id := desc.Code.ID()
		name := desc.Name
		state := "enabled by default"
		if !desc.EnabledByDefault {
			state = "disabled by default"
		}
		if styled {
			id = ruleIDStyle.Render(id)
			name = ruleNameStyle.Render(name)
			if !desc.EnabledByDefault {
				state = ruleOffStyle.Render(state)
			}
		}

		fmt.Fprintf(os.Stdout, "%s %s (%s, %s, %s)\n", id, name, desc.Category, desc.DefaultSeverity, state)
		fmt.Fprintf(os.Stdout, "    %s\n", desc.Description)
		if desc.HelpURI != "" {
			fmt.Fprintf(os.Stdout, "    see %s\n", desc.HelpURI)
		}
	}
	return nil
}
