package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pixelmask.klederson.com/internal/animator"
	"pixelmask.klederson.com/internal/app"
	"pixelmask.klederson.com/internal/config"
	"pixelmask.klederson.com/internal/masking"
	"pixelmask.klederson.com/internal/render"
)

var (
	flagText      string
	flagAlgorithm string
	flagDemo      bool
	flagOnce      bool
	flagLogFile   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pixelmask",
		Short: "PIXELMASK - Dot-matrix text drawn with flickering masking symbols",
		Long: `PIXELMASK draws text as 5x7 dot-matrix glyphs where every cell is a
decorative symbol. Glyph pixels come from a fast-changing dynamic layer,
everything else from a static layer, so the letters stay readable while the
whole grid flickers.

Masking algorithms: Random, Wave, Block.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              run,
	}

	rootCmd.Flags().StringVarP(&flagText, "text", "t", config.DefaultText, "Text to display")
	rootCmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", masking.Default().Name(), "Masking algorithm (Random, Wave, Block)")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Cycle through demo phrases and algorithms")
	rootCmd.Flags().BoolVar(&flagOnce, "once", false, "Print a single frame to stdout and exit")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(newAlgorithmsCmd())
	return rootCmd
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the masking algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, a := range masking.Algorithms() {
				fmt.Fprintf(out, "%-8s %s\n", a.Name(), a.Description())
			}
		},
	}
}

// setupLogging routes logrus to --log-file. Without it logs are discarded,
// since the TUI owns the terminal.
func setupLogging(cmd *cobra.Command, args []string) error {
	if flagLogFile == "" {
		logrus.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	alg, err := masking.Lookup(flagAlgorithm)
	if err != nil {
		return err
	}

	if flagOnce {
		return printFrame(cmd.OutOrStdout(), flagText, alg)
	}

	model := app.New(app.Options{
		Text:      flagText,
		Algorithm: alg,
		Demo:      flagDemo,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	if err := model.Start(p); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer model.Shutdown()

	logrus.WithFields(logrus.Fields{
		"algorithm": alg.Name(),
		"demo":      flagDemo,
	}).Info("starting")

	_, err = p.Run()
	return err
}

// printFrame renders one frame without the TUI: the grid is generated and
// refreshed once at the current time.
func printFrame(w io.Writer, text string, alg masking.Algorithm) error {
	sched := animator.NewManualScheduler(time.Now())
	var d *animator.Driver
	d = animator.New(sched, func(t animator.Tick) { d.HandleTick(t) }, alg)
	defer d.Stop()

	d.Configure(strings.ToUpper(text), alg)
	sched.Advance(config.TickInterval)

	frame := render.Compose(d.Text(), d.Snapshot())
	for _, line := range frame.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
