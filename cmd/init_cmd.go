package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fincast/internal/config"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter budget document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	path := "budget.toml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", path)
	}

	reader := bufio.NewReader(os.Stdin)
	now := time.Now()

	fmt.Println()
	fmt.Println("  New budget document")
	fmt.Println()

	balance := prompt(reader, "Opening balance", "1000.00")
	if _, err := strconv.ParseFloat(balance, 64); err != nil {
		return fmt.Errorf("bad balance %q: %w", balance, err)
	}

	start := prompt(reader, "Start date (YYYY-MM-DD)", now.Format(config.DateLayout))
	if _, err := config.ParseDate(start); err != nil {
		return fmt.Errorf("bad start date %q: %w", start, err)
	}

	end := prompt(reader, "End date (YYYY-MM-DD)", now.AddDate(1, 0, 0).Format(config.DateLayout))
	if _, err := config.ParseDate(end); err != nil {
		return fmt.Errorf("bad end date %q: %w", end, err)
	}

	outfile := prompt(reader, "Ledger output file", "budget_output.csv")

	doc := fmt.Sprintf(`[global]
balance = %s
start_date = %q
end_date = %q
outfile = %q
# db_file = "budget.db"   # also write the ledger to SQLite

[income.paycheck]
amount = 2000.00
interval = "biweekly"

[expenses.rent]
amount = 1200.00
interval = "monthly"
day = 1

# An amortizing loan: remaining_balance makes it finite, interest is a
# per-payment fraction, and move_payment_to redirects the freed budget
# once it is paid off.
#[expenses.car_loan]
#amount = 350.00
#interval = "monthly"
#day = 15
#interest = 0.04
#remaining_balance = 8000.00
#move_payment_to = "rent"
`, balance, start, end, outfile)

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Println()
	fmt.Printf("  Wrote %s\n", path)
	fmt.Printf("  Run `fincast %s` to forecast.\n", path)
	fmt.Println()
	return nil
}

func prompt(reader *bufio.Reader, label, def string) string {
	fmt.Printf("  %s [%s]\n  > ", label, def)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}
