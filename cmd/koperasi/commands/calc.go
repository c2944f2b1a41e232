package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/koperasi/finance-engine/factory"
	"github.com/koperasi/finance-engine/interest"
	"github.com/koperasi/finance-engine/loan"
	"github.com/koperasi/finance-engine/member"
	"github.com/koperasi/finance-engine/savings"
	"github.com/koperasi/finance-engine/shu"
)

// interest <principal> <annual-rate%> <term-months>
func interestCmd() *cobra.Command {
	var frequency string
	var breakdown bool

	cmd := &cobra.Command{
		Use:   "interest <principal> <annual-rate%> <term-months>",
		Short: "Compute a compound savings interest schedule",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("principal must be an integer: %w", err)
			}
			rate, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("rate must be numeric: %w", err)
			}
			term, err := strconv.Atoi(args[2])
			if err != nil || term <= 0 {
				return fmt.Errorf("term must be a positive month count")
			}

			freq := interest.Frequency(frequency)
			switch freq {
			case interest.Daily, interest.Monthly, interest.Quarterly, interest.Yearly:
			default:
				return fmt.Errorf("unknown frequency %q", frequency)
			}

			r := interest.Calculate(interest.Config{
				Principal:         principal,
				AnnualRatePercent: rate,
				Frequency:         freq,
				TermMonths:        term,
			})

			fmt.Printf("Principal: %s\n", r.FormattedPrincipal)
			fmt.Printf("Interest:  %s\n", r.FormattedInterest)
			fmt.Printf("Final:     %s\n", r.FormattedFinal)
			if breakdown {
				for _, mb := range r.MonthlyBreakdown {
					fmt.Printf("  month %2d: %d\n", mb.Month, mb.Balance)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "compounding: daily, monthly, quarterly, yearly")
	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "print the monthly balance breakdown")
	return cmd
}

// loan <principal> <annual-rate%> <term-months>
func loanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loan <principal> <annual-rate%> <term-months>",
		Short: "Compute a fixed-payment loan schedule",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("principal must be an integer: %w", err)
			}
			rate, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("rate must be numeric: %w", err)
			}
			term, err := strconv.Atoi(args[2])
			if err != nil || term <= 0 {
				return fmt.Errorf("term must be a positive month count")
			}

			r := loan.Calculate(principal, rate, term)
			fmt.Printf("Monthly payment: %s\n", r.FormattedMonthly)
			fmt.Printf("Total payment:   %s\n", r.FormattedTotal)
			fmt.Printf("Total interest:  %s\n", r.FormattedInterest)
			return nil
		},
	}
}

// shu --scheme <file>: distribute a pool from a JSON scheme definition.
func shuCmd() *cobra.Command {
	var schemePath string

	cmd := &cobra.Command{
		Use:   "shu",
		Short: "Distribute an SHU pool from a JSON scheme file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(schemePath)
			if err != nil {
				return err
			}
			cfg, err := factory.ParseDistributionScheme(data)
			if err != nil {
				return err
			}
			result, err := shu.Distribute(cfg)
			if err != nil {
				return err
			}

			for _, a := range result.Breakdown {
				fmt.Printf("%-12s %-20s %s\n", a.MemberID, a.MemberName, a.FormattedTotal)
			}
			fmt.Printf("Total distributed: %s\n", result.FormattedTotal)
			return nil
		},
	}
	cmd.Flags().StringVar(&schemePath, "scheme", "", "path to a distribution scheme JSON file")
	_ = cmd.MarkFlagRequired("scheme")
	return cmd
}

// savings <tier>: mandatory monthly savings for a membership tier.
func savingsCmd() *cobra.Command {
	var base int64

	cmd := &cobra.Command{
		Use:   "savings <tier>",
		Short: "Compute tier-based mandatory monthly savings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier := member.Type(args[0])
			if !tier.Valid() {
				return fmt.Errorf("tier must be regular, premium or investor")
			}
			r := savings.MandatoryMonthlyWithBase(tier, base)
			fmt.Println(r.Formatted)
			return nil
		},
	}
	cmd.Flags().Int64Var(&base, "base", savings.DefaultBase, "base contribution in Rupiah")
	return cmd
}
