package cmd

import (
	"fmt"

	"fincast/internal/config"
	"fincast/internal/model"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config>",
	Short: "Check a budget document without writing output",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate loads the document and additionally checks the cross-item
// references up front; the run path only discovers those lazily, when
// the referencing item fires.
func runValidate(_ *cobra.Command, args []string) error {
	log := newLogger()

	budget, err := config.Load(args[0], log)
	if err != nil {
		return err
	}

	byName := make(map[string]*model.Item, len(budget.Items))
	income, expenses := 0, 0
	for _, it := range budget.Items {
		byName[it.Name] = it
		if it.Type == model.Income {
			income++
		} else {
			expenses++
		}
	}

	var bad []string
	for _, it := range budget.Items {
		if t := it.Interval.Target; t != "" {
			if _, ok := byName[t]; !ok {
				bad = append(bad, fmt.Sprintf("item %q: onetime target %q is not defined", it.Name, t))
			}
		}
		if m := it.MovePaymentTo; m != "" {
			if _, ok := byName[m]; !ok {
				bad = append(bad, fmt.Sprintf("item %q: move_payment_to %q is not defined", it.Name, m))
			}
		}
	}
	if len(bad) > 0 {
		for _, msg := range bad {
			log.Error(msg)
		}
		return fmt.Errorf("%d dangling reference(s)", len(bad))
	}

	fmt.Printf("configuration OK: %d income, %d expense items, %s to %s\n",
		income, expenses,
		budget.Start.Format(config.DateLayout),
		budget.End.Format(config.DateLayout),
	)
	return nil
}
