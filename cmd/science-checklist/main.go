package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tkbletsc/ksp-science-checklist/internal/checklist"
	"github.com/tkbletsc/ksp-science-checklist/internal/refdata"
)

type options struct {
	dataPath      string
	outHTML       string
	outJSON       string
	checksumsPath string
	runLogPath    string
	verbose       bool

	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "science-checklist error:", err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "science-checklist",
		Short: "Render the KSP science checklist as an HTML table",
		Long: `Builds the per-body science checklist from the reference tables and writes
it as HTML. The built-in KSP 1.0 tables are used unless --data names a file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.dataPath, "data", "", "Path to reference data YAML (default: built-in KSP 1.0 tables)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	f := root.Flags()
	f.StringVar(&opts.outHTML, "out-html", checklist.StdoutPath, "Output HTML path, - for stdout")
	f.StringVar(&opts.outJSON, "out-json", "", "Output table JSON path")
	f.StringVar(&opts.checksumsPath, "checksums", "", "Output checksums.sha256 path for written files")
	f.StringVar(&opts.runLogPath, "run-log", "", "Output JSON lines run log path")

	root.AddCommand(newValidateCmd(opts))
	return root
}

func runRender(cmd *cobra.Command, opts *options) error {
	res, err := checklist.Run(checklist.Config{
		DataPath:      opts.dataPath,
		OutHTMLPath:   opts.outHTML,
		OutJSONPath:   opts.outJSON,
		ChecksumsPath: opts.checksumsPath,
		RunLogPath:    opts.runLogPath,
		Stdout:        cmd.OutOrStdout(),
		Logger:        opts.logger,
	})
	if err != nil {
		return err
	}
	if len(res.Artifacts) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "bodies=%d rows=%d values=%d disallowed=%d data_sha256=%s artifacts=%s\n",
			res.Bodies, res.Rows, res.ValueCells, res.DisallowedCells, res.Input.SHA256, strings.Join(res.Artifacts, ","))
	}
	return nil
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a reference data file without rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, in, err := refdata.Load(opts.dataPath)
			if err != nil {
				return err
			}
			if opts.logger != nil {
				opts.logger.Info("validate.ok", zap.String("path", in.Path), zap.String("sha256", in.SHA256))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok %s bodies=%d tests=%d sha256=%s\n", in.Path, len(cat.Bodies), len(cat.Tests), in.SHA256)
			return nil
		},
	}
}
