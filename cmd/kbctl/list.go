package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aicruise/cruise-bot/internal/services/knowledgerepo"
	"github.com/spf13/cobra"
)

type lister interface {
	ListAll(ctx context.Context) ([]*knowledgerepo.Entry, error)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every knowledge entry",
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		repo := openRepository(cmd.Context(), settings, newLogger(settings))
		return printEntries(cmd.Context(), cmd.OutOrStdout(), repo)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func printEntries(ctx context.Context, out io.Writer, repo lister) error {
	entries, err := repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tQUESTION\tANSWER")
	for _, entry := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\n", entry.ID, oneLine(entry.Question), oneLine(entry.Answer))
	}
	return w.Flush()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
