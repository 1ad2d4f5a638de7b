package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rowgroup/internal/matching"
)

type runFlags struct {
	config     string
	logLevel   string
	logFormat  string
	settle     bool
	summary    bool
	initConfig bool
}

func newRootCommand() *cobra.Command {
	var flags runFlags

	ctx := newCommandContext(&flags.config)

	rootCmd := &cobra.Command{
		Use:           "rowgroup <file> <matching_type>",
		Short:         "Group CSV rows that share an email address or phone number",
		Long:          longDescription(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.initConfig {
				return runInitConfig(cmd, ctx)
			}
			return runAnnotate(cmd, ctx, &flags, args)
		},
	}

	rootCmd.Flags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flags.logFormat, "log-format", "", "Log format override (console, json)")
	rootCmd.Flags().BoolVar(&flags.settle, "settle", false, "Read identifiers after all rows are grouped so each final group prints one ID")
	rootCmd.Flags().BoolVar(&flags.summary, "summary", false, "Print a grouping summary to stderr")
	rootCmd.Flags().BoolVar(&flags.initConfig, "init-config", false, "Write a sample configuration file to --config (or the default path) and exit")

	return rootCmd
}

func longDescription() string {
	var b strings.Builder
	b.WriteString("Reads a CSV file and prepends an ID column that is shared by rows\n")
	b.WriteString("matching on the selected identity fields, directly or transitively.\n\n")
	b.WriteString("Matching types:\n")
	for _, mt := range matching.MatchingTypes() {
		groups, _ := matching.FieldGroupsFor(string(mt))
		names := make([]string, 0, len(groups))
		for _, g := range groups {
			names = append(names, string(g))
		}
		fmt.Fprintf(&b, "  %-22s %s\n", mt, strings.Join(names, ", "))
	}
	return b.String()
}
