package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gerunddev/miles/internal/prompt"
	"github.com/gerunddev/miles/internal/tui"
)

// sectionsCmd lists the built-in registry.
func sectionsCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List the built-in prompt sections",
		Long: `List the built-in prompt sections in the order they are emitted.

Example:
  miles sections
  miles sections --raw identity`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := prompt.BuiltinSections()

			if len(args) == 0 {
				_, err := fmt.Fprint(cmd.OutOrStdout(), tui.RenderSectionList(sections))
				return err
			}

			for _, s := range sections {
				if s.Name != args[0] {
					continue
				}
				content := prompt.Normalize(s.Content)
				if !raw {
					content = tui.RenderSectionList([]prompt.Section{s}) + "\n" + content
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
				return err
			}

			return fmt.Errorf("unknown section: %s", args[0])
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the normalized section text")

	return cmd
}
