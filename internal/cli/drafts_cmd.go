package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newDraftsCmd(o *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "List messages saved after a failed commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), o.configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			store, err := e.openDrafts()
			if err != nil {
				return err
			}
			drafts, err := store.List(cmd.Context(), e.root, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(drafts) == 0 {
				fmt.Fprintln(out, "No drafts.")
				return nil
			}
			for _, d := range drafts {
				fmt.Fprintf(out, "%s  %s  %s\n",
					shortID(d.ID),
					d.CreatedAt.Local().Format(time.DateTime),
					firstLine(d.Message),
				)
				if d.Reason != "" {
					fmt.Fprintf(out, "          %s\n", firstLine(d.Reason))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of drafts to show (0 for all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the saved drafts of this repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), o.configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			store, err := e.openDrafts()
			if err != nil {
				return err
			}
			n, err := store.Clear(cmd.Context(), e.root)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d draft(s).\n", n)
			return nil
		},
	})

	return cmd
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
