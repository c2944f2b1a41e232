package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/koperasi/finance-engine/money"
)

// format <amount>: print the display form of an amount.
func formatCmd() *cobra.Command {
	var compact, hideSymbol bool

	cmd := &cobra.Command{
		Use:   "format <amount>",
		Short: "Format a Rupiah amount for display",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("amount must be numeric: %w", err)
			}
			fmt.Println(money.FormatWith(amount, money.Options{
				Compact:    compact,
				HideSymbol: hideSymbol,
			}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "use K/M/B compact notation")
	cmd.Flags().BoolVar(&hideSymbol, "no-symbol", false, "omit the Rp prefix")
	return cmd
}

// words <amount>: print the terbilang expansion of an amount.
func wordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <amount>",
		Short: "Spell an amount in Indonesian words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("amount must be an integer: %w", err)
			}
			fmt.Println(money.ToWords(amount))
			return nil
		},
	}
}
