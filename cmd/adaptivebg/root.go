package main

import (
	"fmt"
	"io"
	"log/slog"

	"adaptivebg"
	"adaptivebg/version"

	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
)

type app struct {
	size    int
	color   string
	verbose bool
	logger  *slog.Logger
	genOpts []adaptivebg.Option
}

func newApp(genOpts ...adaptivebg.Option) *app {
	return &app{
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		genOpts: genOpts,
	}
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, genOpts ...adaptivebg.Option) int {
	a := newApp(genOpts...)
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		a.logger.Debug("command failed", slog.Any("stack_traces", errors.StackTraces(err)))
		printError(stderr, err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "adaptivebg [OUTPUT_PATH]",
		Short:         "adaptivebg creates a solid color adaptive icon background",
		Long:          fmt.Sprintf("adaptivebg creates a solid color PNG used as the background layer of an adaptive app icon.\nOUTPUT_PATH defaults to %s. Use -- before a path that starts with a dash.", adaptivebg.DefaultOutputPath),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath := adaptivebg.DefaultOutputPath
			if len(args) > 0 {
				outputPath = args[0]
			}
			c, err := adaptivebg.ParseColor(a.color)
			if err != nil {
				return err
			}
			opts := append([]adaptivebg.Option{adaptivebg.WithLogger(a.logger)}, a.genOpts...)
			g, err := adaptivebg.New(opts...)
			if err != nil {
				return err
			}
			res, err := g.Generate(a.size, c, outputPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// --help still works; "help" as an argument is an output path.
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "print debug logs to stderr")
	rootCmd.Flags().IntVarP(&a.size, "size", "s", adaptivebg.DefaultSize, "edge length in pixels")
	rootCmd.Flags().StringVarP(&a.color, "color", "c", adaptivebg.DefaultColor.Hex(), "fill color as #RRGGBB or r,g,b")

	rootCmd.AddCommand(a.inspectCmd())
	return rootCmd
}
