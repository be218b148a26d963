package main

import (
	"fmt"

	"adaptivebg/inspect"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PATH",
		Short: "check that a PNG is a single solid color",
		Long:  `check that a PNG is a single solid color and print its size and fill.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			rep, err := inspect.File(path)
			if err != nil {
				return err
			}
			a.logger.Debug("inspected", "path", path, "width", rep.Width, "height", rep.Height, "distinct", rep.Distinct)

			out := cmd.OutOrStdout()
			if rep.Uniform() {
				_, _ = fmt.Fprintf(out, "%s: %dx%d, %s %s\n", path, rep.Width, rep.Height, color.GreenString("uniform color"), rep.Fill)
				return nil
			}
			_, _ = fmt.Fprintf(out, "%s: %dx%d, %s\n", path, rep.Width, rep.Height, color.YellowString("%d distinct colors", rep.Distinct))
			return fmt.Errorf("%s is not a solid color image", path)
		},
	}
}
