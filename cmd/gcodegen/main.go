// gcodegen writes G-code for 3D printers and CNC machines.
//
// Usage:
//
//	gcodegen run job.yaml [-o out.gcode] [--config gcodegen.cfg] [--catalog extra.cfg]
//	gcodegen encode G1 X=10 Y=20.005 [--flag X] [--text Hello] [--comment note]
//	gcodegen catalog [--catalog extra.cfg]
//
// Logging is configured with GCODEGEN_LOG_LEVEL, GCODEGEN_LOG_FORMAT,
// GCODEGEN_LOG_CALLER and NO_COLOR, or --verbose.
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gcodegen/pkg/catalog"
	"gcodegen/pkg/config"
	"gcodegen/pkg/gcode"
	"gcodegen/pkg/log"
	"gcodegen/pkg/metrics"
	"gcodegen/pkg/program"
	"gcodegen/pkg/sink"
)

var (
	verbose bool

	outputPath   string
	configPath   string
	catalogPaths []string
	crlf         bool
	showMetrics  bool

	encodeFlags   []string
	encodeText    string
	encodeComment string
)

var rootCmd = &cobra.Command{
	Use:   "gcodegen",
	Short: "Generate G-code from named operations",
	Long: `gcodegen turns named machine operations into G-code text.

Programs are YAML step lists; extra operations can be declared in
INI-style catalog files with [command <name>] sections.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.GetLogger("").SetLevel(log.DEBUG)
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run PROGRAM.yaml",
	Short: "Emit a YAML program as G-code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.GetLogger("run")

		cat, opts, err := setup(logger)
		if err != nil {
			return err
		}
		prog, err := program.Load(args[0])
		if err != nil {
			return err
		}

		out, err := sink.Open(outputPath)
		if err != nil {
			return err
		}
		m := metrics.NewRunMetrics()
		w := gcode.NewWriter(out, opts...)
		runErr := prog.Run(w, cat, program.WithLogger(log.GetLogger("program")), program.WithMetrics(m))
		if err := out.Close(); err != nil && runErr == nil {
			runErr = err
		}
		if showMetrics {
			fmt.Fprint(cmd.ErrOrStderr(), m.Gather())
		}
		if runErr != nil {
			return runErr
		}
		logger.Info("wrote %d lines to %s", w.Lines(), out.Path())
		return nil
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode HEAD [NAME=VALUE...]",
	Short: "Encode a single command from raw tokens",
	Long: `Encode a single command. HEAD is a letter and code such as G1, M117 or
G38.2. NAME=VALUE pairs become parameters in the order given: numbers are
numeric, true/false are valued booleans and anything else is text.`,
	Example: `  gcodegen encode G1 X=10 Y=20.005
  gcodegen encode G28 --flag X --flag Y
  gcodegen encode M117 --text Hello --comment status`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCommand(args[0], args[1:], encodeFlags, cmd.Flags().Changed("text"), encodeText)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("comment") {
			c.Comment = gcode.Some(encodeComment)
		}

		var opts []gcode.Option
		if crlf {
			opts = append(opts, gcode.WithLineEnding("\r\n"))
		}
		return gcode.NewWriter(cmd.OutOrStdout(), opts...).Encode(c)
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the available operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := setup(log.GetLogger("catalog"))
		if err != nil {
			return err
		}
		return listCatalog(cmd.OutOrStdout(), cat)
	},
}

// setup builds the catalog and writer options from --config, --catalog
// and --crlf.
func setup(logger *log.Logger) (*catalog.Catalog, []gcode.Option, error) {
	cat := catalog.Default()
	lineEnding := "\n"

	if configPath != "" {
		cfg, err := loadCatalogConfig(cat, configPath)
		if err != nil {
			return nil, nil, err
		}
		if sec := cfg.GetSectionOptional("output"); sec != nil {
			le, err := sec.GetChoice("line_ending", []string{"lf", "crlf"}, "lf")
			if err != nil {
				return nil, nil, err
			}
			if le == "crlf" {
				lineEnding = "\r\n"
			}
		}
		for _, name := range cfg.GetUnusedSections() {
			logger.Warn("%s: unused section [%s]", configPath, name)
		}
		if err := cfg.CheckUnusedOptions(); err != nil {
			logger.WithError(err).Warn("%s has unused options", configPath)
		}
	}
	for _, path := range catalogPaths {
		if _, err := loadCatalogConfig(cat, path); err != nil {
			return nil, nil, err
		}
	}
	if crlf {
		lineEnding = "\r\n"
	}
	logger.Debug("catalog has %d operations", cat.Len())
	return cat, []gcode.Option{gcode.WithLineEnding(lineEnding)}, nil
}

func loadCatalogConfig(cat *catalog.Catalog, path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cat.LoadConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func listCatalog(w io.Writer, cat *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range cat.Names() {
		d, _ := cat.Lookup(name)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, d.Usage(), d.Summary)
	}
	return tw.Flush()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at DEBUG level")

	runCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output file (- for stdout)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Config file with [output] and [command <name>] sections")
	runCmd.Flags().StringArrayVar(&catalogPaths, "catalog", nil, "Extra catalog file with [command <name>] sections (repeatable)")
	runCmd.Flags().BoolVar(&crlf, "crlf", false, "End lines with CRLF")
	runCmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print run metrics to stderr")

	encodeCmd.Flags().StringArrayVar(&encodeFlags, "flag", nil, "Bare flag parameter, e.g. X (repeatable)")
	encodeCmd.Flags().StringVar(&encodeText, "text", "", "Trailing unnamed text, e.g. a message or filename")
	encodeCmd.Flags().StringVar(&encodeComment, "comment", "", "Trailing comment")
	encodeCmd.Flags().BoolVar(&crlf, "crlf", false, "End the line with CRLF")

	catalogCmd.Flags().StringVar(&configPath, "config", "", "Config file with [command <name>] sections")
	catalogCmd.Flags().StringArrayVar(&catalogPaths, "catalog", nil, "Extra catalog file (repeatable)")

	rootCmd.AddCommand(runCmd, encodeCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
