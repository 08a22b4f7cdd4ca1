package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"galaxy/internal/diag"
	"galaxy/internal/diagfmt"
	"galaxy/internal/driver"
	"galaxy/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.galaxy|directory]",
	Short: "Analyze galaxy scripts",
	Long: `Check runs the full front end (lexer, parser, semantic analyzer) over one
script or over every *.galaxy file under a directory. With no argument the
current directory is checked. Settings come from the nearest galaxy.toml
when one exists; flags override it.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().StringSlice("include", nil, "extra include search paths")
	checkCmd.Flags().String("natives", "", "native prototype catalog (overrides galaxy.toml)")
	checkCmd.Flags().String("manifest", "", "explicit galaxy.toml path (skips the walk-up search)")
	checkCmd.Flags().Bool("no-common-natives", false, "do not register the built-in native subset")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
	checkCmd.Flags().Bool("no-warnings", false, "drop warnings from the output")
	checkCmd.Flags().Bool("warnings-as-errors", false, "exit non-zero on warnings too")
	checkCmd.Flags().Bool("fullpath", false, "print full file paths instead of basenames")
	checkCmd.Flags().Bool("cache", true, "cache parsed native catalogs on disk")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	noWarnings, _ := cmd.Flags().GetBool("no-warnings")
	warningsAsErrors, _ := cmd.Flags().GetBool("warnings-as-errors")
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors cannot be used together")
	}

	d, err := buildDriver(cmd, path, info.IsDir())
	if err != nil {
		return err
	}

	ctx := context.Background()
	var results []*driver.CheckResult
	if info.IsDir() {
		results, err = d.CheckDir(ctx, path)
		if err != nil {
			return err
		}
	} else {
		res, err := d.CheckFile(ctx, path)
		if err != nil {
			return err
		}
		results = []*driver.CheckResult{res}
	}

	fullPath, _ := cmd.Flags().GetBool("fullpath")
	pathMode := diagfmt.PathModeBasename
	if fullPath {
		pathMode = diagfmt.PathModeFull
	}

	merged := diag.NewBag(len(results) * driver.DefaultMaxDiags)
	for _, res := range results {
		bag := res.Bag
		if noWarnings {
			bag = dropWarnings(bag)
		}
		merged.Merge(bag)
		if bag.Len() == 0 {
			continue
		}
		switch format {
		case "pretty":
			diagfmt.Pretty(os.Stdout, bag, res.Files, diagfmt.PrettyOpts{
				Color:      useColor(cmd, os.Stdout),
				PathMode:   pathMode,
				ShowSource: true,
				ShowNotes:  true,
			})
		case "json":
			if err := diagfmt.JSON(os.Stdout, bag, res.Files, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
				PathMode:         pathMode,
			}); err != nil {
				return err
			}
		}
	}

	if format == "pretty" {
		diagfmt.Summary(os.Stdout, merged, useColor(cmd, os.Stdout))
	}
	if merged.HasErrors() || (warningsAsErrors && merged.HasWarnings()) {
		os.Exit(1)
	}
	return nil
}

// buildDriver layers flag overrides over the nearest manifest.
func buildDriver(cmd *cobra.Command, path string, isDir bool) (*driver.Driver, error) {
	startDir := path
	if !isDir {
		startDir = filepath.Dir(path)
	}
	cfg := driver.Config{CommonNatives: true}
	var m *project.Manifest
	if manifestPath, _ := cmd.Flags().GetString("manifest"); manifestPath != "" {
		loaded, err := project.Load(manifestPath)
		if err != nil {
			return nil, err
		}
		m = loaded
	} else if loaded, ok, err := project.LoadFrom(startDir); err != nil {
		return nil, err
	} else if ok {
		m = loaded
	}
	if m != nil {
		cfg.IncludePaths = m.IncludePaths()
		cfg.NativesFile = m.NativesPath()
		cfg.CommonNatives = m.NativesPath() == ""
		cfg.MaxDiags = m.Config.Check.MaxDiags
	}

	if extra, _ := cmd.Flags().GetStringSlice("include"); len(extra) > 0 {
		cfg.IncludePaths = append(extra, cfg.IncludePaths...)
	}
	if natives, _ := cmd.Flags().GetString("natives"); natives != "" {
		cfg.NativesFile = natives
		cfg.CommonNatives = false
	}
	if noCommon, _ := cmd.Flags().GetBool("no-common-natives"); noCommon {
		cfg.CommonNatives = false
	}
	if maxDiags, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); maxDiags > 0 {
		cfg.MaxDiags = maxDiags
	}
	cfg.Jobs, _ = cmd.Flags().GetInt("jobs")

	if useCache, _ := cmd.Flags().GetBool("cache"); useCache && cfg.NativesFile != "" {
		if cache, err := driver.OpenNativesCache("galaxy"); err == nil {
			cfg.Cache = cache
		}
	}
	return driver.New(cfg), nil
}

func dropWarnings(bag *diag.Bag) *diag.Bag {
	out := diag.NewBag(bag.Len())
	for _, d := range bag.Items() {
		if d.Severity != diag.SevWarning {
			out.Add(d)
		}
	}
	return out
}
