package cmd

import (
	"errors"
	"fmt"
	"os"

	"fincast/internal/config"
	"fincast/internal/forecast"
	"fincast/internal/ledger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagQuiet bool

var rootCmd = &cobra.Command{
	Use:   "fincast <config>",
	Short: "Account balance forecaster",
	Long: "Simulate recurring and one-time budget items day by day over a date\n" +
		"range and write a ledger of every triggered transaction.",
	Args: cobra.ExactArgs(1),
	RunE: runForecast,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print warnings and errors")
}

// newLogger builds the shared stderr logger. Quiet mode keeps item-drop
// warnings visible but hides informational chatter.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if flagQuiet {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func runForecast(_ *cobra.Command, args []string) error {
	log := newLogger()

	budget, err := config.Load(args[0], log)
	if err != nil {
		if errors.Is(err, config.ErrNoExpenses) {
			log.Warn(err.Error())
			return nil
		}
		return err
	}

	csvSink, err := ledger.NewCSVWriter(budget.Outfile)
	if err != nil {
		return err
	}

	var sink forecast.Sink = csvSink
	var store *ledger.Store
	if budget.DBFile != "" {
		store, err = ledger.OpenStore(budget.DBFile)
		if err != nil {
			_ = csvSink.Close()
			_ = csvSink.Remove()
			return err
		}
		defer func() { _ = store.Close() }()
		sink = ledger.Tee{csvSink, store}
	}

	eng := forecast.New(budget.OpeningBalance, budget.Start, budget.End, budget.Items, log)
	if err := eng.Run(sink); err != nil {
		// do not leave a partial ledger behind
		_ = csvSink.Close()
		_ = csvSink.Remove()
		return err
	}

	if err := csvSink.Close(); err != nil {
		return fmt.Errorf("finalizing ledger: %w", err)
	}

	fmt.Printf("wrote: %s\n", budget.Outfile)
	return nil
}
