package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsplain/internal/diagfmt"
	"tsplain/internal/driver"
)

// errDiagnosticsReported signals a non-zero exit after diagnostics were
// explained, mirroring tsc's own exit behavior.
var errDiagnosticsReported = errors.New("diagnostics reported")

var explainCmd = &cobra.Command{
	Use:   "explain [flags] [logfile|-]",
	Short: "Explain tsc diagnostics from a log file or stdin",
	Long: `Explain parses tsc output, classifies each error, and prints
plain-language suggestions next to the original diagnostic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().String("format", "", "output format (pretty|json|short)")
	explainCmd.Flags().Int("jobs", 0, "parallel suggestion workers (0 = all CPUs)")
	explainCmd.Flags().Bool("no-help", false, "omit help lines from pretty output")
	explainCmd.Flags().Bool("token-cache", false, "cache scanned tokens on disk")
	explainCmd.Flags().String("cache-dir", "", "override the token cache directory")
	explainCmd.Flags().Bool("fullpath", false, "print absolute file paths")
	explainCmd.Flags().Bool("progress", false, "show a progress UI while explaining")
}

func runExplain(cmd *cobra.Command, args []string) error {
	log, closeLog, err := openLog(args)
	if err != nil {
		return err
	}
	defer closeLog()

	// Manifest values apply where the flag was not set explicitly.
	manifest, hasManifest, err := loadProjectManifest("")
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		if hasManifest && manifest.Config.Output.Format != "" {
			format = manifest.Config.Output.Format
		} else {
			format = "pretty"
		}
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	if !cmd.Flags().Changed("jobs") && hasManifest {
		jobs = manifest.Config.Explain.Jobs
	}
	useCache, _ := cmd.Flags().GetBool("token-cache")
	if !cmd.Flags().Changed("token-cache") && hasManifest {
		useCache = manifest.Config.Explain.TokenCache
	}

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	if !cmd.Root().PersistentFlags().Changed("color") && hasManifest && manifest.Config.Output.Color != "" {
		colorFlag = manifest.Config.Output.Color
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	color.NoColor = !useColor

	maxErrors, _ := cmd.Root().PersistentFlags().GetInt("max-errors")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	noHelp, _ := cmd.Flags().GetBool("no-help")
	fullPath, _ := cmd.Flags().GetBool("fullpath")
	showProgress, _ := cmd.Flags().GetBool("progress")

	var cache *driver.TokenCache
	if useCache {
		cacheDir, _ := cmd.Flags().GetString("cache-dir")
		if cacheDir != "" {
			cache, err = driver.NewTokenCache(cacheDir)
		} else {
			cache, err = driver.OpenTokenCache("tsplain")
		}
		if err != nil {
			return fmt.Errorf("failed to open token cache: %w", err)
		}
	}

	// Parse up front so the progress UI knows the file list.
	diags, skipped, err := driver.ParseLog(log)
	if err != nil {
		return fmt.Errorf("failed to read log: %w", err)
	}

	opts := driver.Options{
		Jobs:       jobs,
		MaxErrors:  maxErrors,
		TokenCache: cache,
	}

	ctx := cmd.Context()
	var res *driver.Result
	if showProgress && isTerminal(os.Stdout) && len(diags) > 0 {
		res, err = runExplainWithUI(ctx, "tsplain explain", driver.LogFiles(diags), diags, opts)
	} else {
		res, err = driver.ExplainDiagnostics(ctx, diags, opts)
	}
	switch {
	case errors.Is(err, driver.ErrNoDiagnostics):
		if !quiet {
			fmt.Fprintf(os.Stderr, "no diagnostics found (%d lines skipped)\n", skipped)
		}
		return nil
	case err != nil:
		return err
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, res.Entries, res.FileSet, diagfmt.PrettyOpts{
			Color:    useColor,
			ShowHelp: !noHelp,
			PathMode: pathMode,
		})
	case "json":
		if err := diagfmt.JSON(os.Stdout, res.Entries, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
		}); err != nil {
			return err
		}
	case "short":
		diagfmt.Short(os.Stdout, res.Entries, res.FileSet)
	}

	if !quiet {
		for _, failed := range res.FailedFiles {
			fmt.Fprintf(os.Stderr, "warning: could not read %s; positional lookup disabled for it\n", failed)
		}
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return errDiagnosticsReported
}

// openLog resolves the explain input: a named log file, or stdin for "-"
// and for no argument at all.
func openLog(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log: %w", err)
	}
	return f, func() { f.Close() }, nil
}
