package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"rowgroup/internal/annotate"
	"rowgroup/internal/config"
	"rowgroup/internal/logging"
	"rowgroup/internal/matching"
	"rowgroup/internal/table"
)

func runAnnotate(cmd *cobra.Command, ctx *commandContext, flags *runFlags, args []string) error {
	if len(args) < 2 {
		return UsageError{}
	}
	path, matchingType := args[0], args[1]

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileNotFoundError{Path: path}
		}
		return fmt.Errorf("inspect %q: %w", path, err)
	}
	groups, err := matching.FieldGroupsFor(matchingType)
	if err != nil {
		return err
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg, flags)

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	tbl, err := table.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("input loaded",
		logging.String("path", path),
		logging.Int("rows", tbl.Len()),
		logging.String("matching_type", matchingType),
	)

	mode := annotate.Streaming
	if cfg.Output.Settle {
		mode = annotate.Settled
	}
	annotator := annotate.New(annotate.Options{
		Groups:   groups,
		Columns:  cfg.Columns(),
		IDHeader: cfg.Output.IDHeader,
		Mode:     mode,
		Logger:   logger,
	})

	writer := table.NewWriter(cmd.OutOrStdout())
	summary, err := annotator.Annotate(tbl, writer.Write)
	if err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	if cfg.Output.Summary {
		renderSummary(cmd.ErrOrStderr(), summary)
	}
	return nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, flags *runFlags) {
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Logging.Format = flags.logFormat
	}
	if cmd.Flags().Changed("settle") {
		cfg.Output.Settle = flags.settle
	}
	if cmd.Flags().Changed("summary") {
		cfg.Output.Summary = flags.summary
	}
}

func runInitConfig(cmd *cobra.Command, ctx *commandContext) error {
	target := ctx.configPath()
	if target == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("determine default config path: %w", err)
		}
		target = defaultPath
	} else {
		expanded, err := config.ExpandPath(target)
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		target = expanded
	}

	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("config file already exists at %s", target)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check config path: %w", err)
	}

	if err := config.CreateSample(target); err != nil {
		return fmt.Errorf("create sample config: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote sample configuration to %s\n", target)
	return nil
}
