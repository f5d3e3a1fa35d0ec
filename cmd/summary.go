package cmd

import (
	"errors"
	"fmt"

	"fincast/internal/cli"
	"fincast/internal/config"
	"fincast/internal/forecast"
	"fincast/internal/ledger"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <config>",
	Short: "Run the forecast in memory and show per-item totals",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, args []string) error {
	log := newLogger()

	budget, err := config.Load(args[0], log)
	if err != nil {
		if errors.Is(err, config.ErrNoExpenses) {
			log.Warn(err.Error())
			return nil
		}
		return err
	}

	eng := forecast.New(budget.OpeningBalance, budget.Start, budget.End, budget.Items, log)
	var mem ledger.Memory
	if err := eng.Run(&mem); err != nil {
		return err
	}

	firings := make(map[string]int, len(budget.Items))
	for _, row := range mem.Rows {
		firings[row.Name]++
	}

	rows := make([][]string, 0, len(budget.Items))
	for _, it := range eng.Items() {
		remaining := ""
		if it.RemainingBalance != nil {
			remaining = cli.FormatMoney(*it.RemainingBalance)
		}
		state := "open"
		if it.Done {
			state = "done"
		}
		rows = append(rows, []string{
			it.DisplayName(),
			it.Type.String(),
			fmt.Sprintf("%d", firings[it.DisplayName()]),
			cli.FormatMoney(it.TotalPaid),
			cli.FormatMoney(it.InterestPaid),
			remaining,
			state,
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FORECAST  %s .. %s",
		budget.Start.Format(config.DateLayout),
		budget.End.Format(config.DateLayout))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Item", "Type", "Rows", "Total Paid", "Interest", "Remaining", "State"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Printf("  opening balance  %s\n", cli.FormatMoney(budget.OpeningBalance))
	fmt.Printf("  final balance    %s\n", cli.FormatMoney(eng.Balance()))
	fmt.Printf("  transactions     %s\n", cli.FormatCount(int64(len(mem.Rows))))
	fmt.Println()

	return nil
}
