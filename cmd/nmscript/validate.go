package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nmscript/internal/diag"
	"nmscript/internal/diagfmt"
	"nmscript/internal/driver"
	"nmscript/internal/project"
	"nmscript/internal/source"
	"nmscript/internal/version"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] <file.nms|directory>",
	Short: "Validate NMScript files",
	Long:  `Run lexical, syntax and semantic checks on a script file or all *.nms files within a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif)")
	validateCmd.Flags().Bool("no-warnings", false, "hide warnings in output")
	validateCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors for the exit code")
	validateCmd.Flags().Bool("no-unused", false, "disable unused-symbol warnings")
	validateCmd.Flags().Bool("no-dead-code", false, "disable dead-code and reachability warnings")
	validateCmd.Flags().Bool("assets", false, "validate asset references against the project")
	validateCmd.Flags().String("project", "", "project root for asset validation (defaults to the script's directory)")
	validateCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	validateCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
	validateCmd.Flags().Int("suggest-distance", 2, "max edit distance for did-you-mean suggestions")
	validateCmd.Flags().Int("suggest-count", 3, "max number of did-you-mean suggestions")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	flags := cmd.Flags()

	format, _ := flags.GetString("format")
	noWarnings, _ := flags.GetBool("no-warnings")
	warningsAsErrors, _ := flags.GetBool("warnings-as-errors")
	noUnused, _ := flags.GetBool("no-unused")
	noDeadCode, _ := flags.GetBool("no-dead-code")
	assets, _ := flags.GetBool("assets")
	projectRoot, _ := flags.GetString("project")
	jobs, _ := flags.GetInt("jobs")
	useCache, _ := flags.GetBool("cache")
	suggestDistance, _ := flags.GetInt("suggest-distance")
	suggestCount, _ := flags.GetInt("suggest-count")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	opts := driver.DefaultOptions()
	opts.ReportUnused = !noUnused
	opts.ReportDeadCode = !noDeadCode
	opts.ValidateAssets = assets
	opts.MaxDiagnostics = maxDiagnostics
	opts.Suggest = diag.SuggestOptions{MaxDistance: suggestDistance, MaxResults: suggestCount}

	if assets {
		root := projectRoot
		if root == "" {
			if info.IsDir() {
				root = path
			} else {
				root = "."
			}
		}
		ctx, err := project.OpenDir(root)
		if err != nil {
			return fmt.Errorf("open project %s: %w", root, err)
		}
		opts.Project = ctx
	}
	if useCache {
		cache, err := driver.OpenCache("nmscript")
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		opts.Cache = cache
	}

	var (
		fileSet *source.FileSet
		results []driver.FileResult
	)
	if info.IsDir() {
		fileSet, results, err = driver.ValidateDir(cmd.Context(), path, opts, jobs)
		if err != nil {
			return err
		}
	} else {
		fileSet = source.NewFileSet()
		res, err := driver.ValidateFile(fileSet, path, opts)
		if err != nil {
			return err
		}
		results = []driver.FileResult{res}
	}

	merged := diag.NewErrorList(maxDiagnostics)
	for _, res := range results {
		merged.Merge(res.Errors)
	}
	merged.Sort()

	switch format {
	case "pretty":
		popts := diagfmt.DefaultPrettyOpts()
		popts.Color = useColor(cmd)
		popts.NoWarnings = noWarnings
		diagfmt.Pretty(os.Stdout, merged, fileSet, popts)
	case "json":
		jopts := diagfmt.JSONOpts{IncludeSuggestions: true, IncludeRelated: true, NoWarnings: noWarnings}
		if err := diagfmt.JSON(os.Stdout, merged, jopts); err != nil {
			return err
		}
	case "sarif":
		meta := diagfmt.SarifMeta{ToolName: "nmscript", ToolVersion: version.Plain()}
		if err := diagfmt.Sarif(os.Stdout, merged, meta); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want pretty|json|sarif)", format)
	}

	if merged.HasErrors() || (warningsAsErrors && merged.HasWarnings()) {
		os.Exit(1)
	}
	return nil
}
