// Package cmd provides the root command and CLI setup for checkcodedoc.
package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/checkcodedoc/internal/adapter"
	"github.com/mouse-blink/checkcodedoc/internal/config"
	"github.com/mouse-blink/checkcodedoc/internal/controller"
	"github.com/mouse-blink/checkcodedoc/internal/domain"
	"github.com/mouse-blink/checkcodedoc/internal/logging"
	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore

// workflow replaces the workflow built for each run when set.
var workflow domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

type rootOptions struct {
	configPath       string
	reporter         string
	output           string
	verbose          bool
	quiet            bool
	paramPattern     string
	shortDocWarnings bool
	strictTypes      bool
	include          []string
	exclude          []string
	parallel         int
	cache            string
	failOn           string
	logLevel         string
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "checkcodedoc [paths...]",
		Short: "Check that functions carry matching documentation blocks",
		Long: `checkcodedoc scans source files for function assignments such as
"name: function(a, b)" or "var name = function(a, b)" and checks that each one
is preceded by a /** ... */ block whose @param tags match the declared
parameters, use valid types and come with a multi-line description.

Paths may be files or directories:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./lib app.js   scan the lib directory and a single file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			settings, err := resolveSettings(cmd, opts)
			if err != nil {
				return err
			}

			if err := logging.SetLevel(settings.LogLevel); err != nil {
				return err
			}

			defer func() { _ = logging.Sync() }()

			rules, err := settings.Validate()
			if err != nil {
				return err
			}

			if !slices.Contains(m.ReporterKinds, settings.Reporter) {
				logging.Logger().Warnw("Unknown reporter, using text", "reporter", settings.Reporter)
				settings.Reporter = m.ReporterText
			}

			paths := make([]m.Path, 0, len(args))
			for _, arg := range args {
				paths = append(paths, m.Path(arg))
			}

			if len(paths) == 0 {
				paths = []m.Path{"./..."}
			}

			wf, closeWorkflow, err := buildWorkflow(cmd, settings.Cache)
			if err != nil {
				return err
			}
			defer closeWorkflow()

			_, err = wf.Check(domain.CheckArgs{
				Paths:    paths,
				Filter:   adapter.FileFilter{Include: settings.Include, Exclude: settings.Exclude},
				Rules:    rules,
				Threads:  settings.Jobs,
				Reporter: settings.Reporter,
				Output:   settings.ReporterOutput,
				Verbose:  settings.Verbose,
				FailOn:   settings.FailOn,
			})

			return err
		},
	}

	defaults := config.Defaults()

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: .checkcodedoc.{yaml,yml,toml,json} or $"+config.EnvConfig+")")
	flags.StringVarP(&opts.reporter, "reporter", "r", string(defaults.Reporter), "report format: "+reporterNames())
	flags.StringVarP(&opts.output, "output", "o", string(defaults.ReporterOutput), "file the rendered report is written to")
	flags.BoolVar(&opts.verbose, "verbose", defaults.Verbose, "echo the report to the console")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "do not echo the report to the console")
	flags.StringVar(&opts.paramPattern, "param-pattern", defaults.ParamDocPattern, "regular expression capturing the type and description of a parameter tag")
	flags.BoolVar(&opts.shortDocWarnings, "short-doc-warnings", defaults.ShortDocWarnings, "warn about one-line descriptions")
	flags.BoolVar(&opts.strictTypes, "strict-types", defaults.EnforceStrictTypes, "warn about parameter types outside the valid set")
	flags.StringSliceVar(&opts.include, "include", defaults.Include, "glob of files to scan inside directories")
	flags.StringSliceVarP(&opts.exclude, "exclude", "x", defaults.Exclude, "glob of files or directories to skip")
	flags.IntVarP(&opts.parallel, "parallel", "p", defaults.Jobs, "number of files scanned in parallel")
	flags.StringVar(&opts.cache, "cache", "", "path of the scan cache database (disabled when empty)")
	flags.StringVar(&opts.failOn, "fail-on", string(defaults.FailOn), "lowest severity that fails the run: none, warning or error")
	flags.StringVar(&opts.logLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn or error")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveSettings layers the config file and then the flags the user set
// explicitly over the defaults.
func resolveSettings(cmd *cobra.Command, opts *rootOptions) (config.Settings, error) {
	path, err := config.Find(".", opts.configPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("find config: %w", err)
	}

	fileLayer, err := config.Load(path)
	if err != nil {
		return config.Settings{}, fmt.Errorf("load config: %w", err)
	}

	if path != "" {
		logging.Logger().Debugw("Loaded config", "path", path)
	}

	return config.Merge(config.Defaults(), fileLayer, flagLayer(cmd, opts)), nil
}

func flagLayer(cmd *cobra.Command, opts *rootOptions) config.Config {
	var layer config.Config

	changed := cmd.Flags().Changed

	if changed("param-pattern") {
		layer.ParamDocPattern = &opts.paramPattern
	}

	if changed("short-doc-warnings") {
		layer.ShortDocWarnings = &opts.shortDocWarnings
	}

	if changed("strict-types") {
		layer.EnforceStrictTypes = &opts.strictTypes
	}

	if changed("reporter") {
		layer.Reporter = &opts.reporter
	}

	if changed("output") {
		layer.ReporterOutput = &opts.output
	}

	if changed("verbose") {
		layer.Verbose = &opts.verbose
	}

	if changed("quiet") && opts.quiet {
		verbose := false
		layer.Verbose = &verbose
	}

	if changed("include") {
		layer.Include = &opts.include
	}

	if changed("exclude") {
		layer.Exclude = &opts.exclude
	}

	if changed("parallel") {
		layer.Jobs = &opts.parallel
	}

	if changed("cache") {
		layer.Cache = &opts.cache
	}

	if changed("fail-on") {
		layer.FailOn = &opts.failOn
	}

	if changed("log-level") {
		layer.LogLevel = &opts.logLevel
	}

	return layer
}

// buildWorkflow wires the adapters of one run. The returned func releases
// the scan cache.
func buildWorkflow(cmd *cobra.Command, cachePath m.Path) (domain.Workflow, func(), error) {
	if workflow != nil {
		return workflow, func() {}, nil
	}

	cache := adapter.NewNoopCacheStore()

	if cachePath != "" {
		bolt, err := adapter.OpenBoltCacheStore(cachePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open cache: %w", err)
		}

		cache = bolt
	}

	log := logging.Logger()
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	closeFn := func() {
		if err := cache.Close(); err != nil {
			log.Warnw("Closing cache failed", "error", err)
		}
	}

	return domain.NewWorkflow(fsAdapter, reportStore, cache, ui, log), closeFn, nil
}

func reporterNames() string {
	names := make([]string, 0, len(m.ReporterKinds))
	for _, kind := range m.ReporterKinds {
		names = append(names, string(kind))
	}

	return strings.Join(names, ", ")
}
