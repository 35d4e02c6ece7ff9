package cli

import (
	"fmt"

	"czjira/internal/core"

	"github.com/spf13/cobra"
)

func newTypesCmd(o *rootOptions) *cobra.Command {
	var statuses bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the commit types offered by the prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), o.configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			out := cmd.OutOrStdout()
			if statuses {
				for _, st := range core.IssueStatuses {
					tag := st.Tag
					if tag == "" {
						tag = "-"
					}
					fmt.Fprintf(out, "%-12s %s\n", tag, st.Name)
				}
				return nil
			}

			for _, c := range e.core.Choices() {
				fmt.Fprintln(out, c.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&statuses, "statuses", false, "list issue status tags instead")
	return cmd
}
