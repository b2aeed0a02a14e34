// Command taskviz renders task tracker datasets to SVG charts, either
// one chart at a time or a whole dashboard declared in a YAML file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/midbel/taskviz/dash"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "taskviz",
		Short:         "Render task tracker charts to SVG",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(renderCmd())
	for _, kind := range []string{dash.TypeLine, dash.TypeArea, dash.TypeBar, dash.TypeDonut, dash.TypeMatrix} {
		cmd.AddCommand(chartCmd(kind))
	}
	return cmd
}

func renderCmd() *cobra.Command {
	var (
		config string
		debug  bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every chart of a dashboard config",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(debug)
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg, err := dash.Load(config)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return cfg.Render(ctx, logger)
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "dashboard.yml", "dashboard config file")
	cmd.Flags().BoolVar(&debug, "debug", false, "debug logging")
	return cmd
}

func chartCmd(kind string) *cobra.Command {
	var ch dash.Chart
	var pad, rangeMin, rangeMax float64

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <data.csv>", kind),
		Short: fmt.Sprintf("Render a %s chart from a CSV file", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch.Type = kind
			ch.Data = args[0]
			ch.Padding = &dash.Sides{Top: pad, Right: pad, Bottom: pad, Left: pad}
			if kind == dash.TypeMatrix {
				ch.Range = &dash.Range{Min: rangeMin, Max: rangeMax}
			}
			return dash.RenderChart(ch)
		},
	}
	cmd.Flags().StringVarP(&ch.Output, "file", "f", "out.svg", "output file")
	cmd.Flags().StringVar(&ch.Title, "title", "", "chart title")
	cmd.Flags().Float64Var(&ch.Width, "width", dash.DefaultWidth, "chart width")
	cmd.Flags().Float64Var(&ch.Height, "height", dash.DefaultHeight, "chart height")
	cmd.Flags().Float64Var(&pad, "padding", dash.DefaultPad, "padding on all sides")
	cmd.Flags().Float64Var(&ch.Max, "max", 0, "maximum value, derived from the data when zero")
	switch kind {
	case dash.TypeLine, dash.TypeArea:
		cmd.Flags().StringVar(&ch.Periodicity, "periodicity", "daily", "axis label periodicity (daily, weekly, monthly)")
	case dash.TypeBar:
		cmd.Flags().Float64Var(&ch.BarWidth, "bar-width", 0.6, "bar width as a fraction of its slot")
	case dash.TypeDonut:
		cmd.Flags().Float64Var(&ch.Thickness, "thickness", 0, "ring thickness, a third of the radius when zero")
	case dash.TypeMatrix:
		cmd.Flags().Float64Var(&rangeMin, "range-min", 0, "lower bound of the score range")
		cmd.Flags().Float64Var(&rangeMax, "range-max", 10, "upper bound of the score range")
	}
	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
