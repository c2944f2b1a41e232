package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "koperasi",
		Short: "Cooperative financial calculations (IDR)",
	}

	root.AddCommand(
		formatCmd(),
		wordsCmd(),
		interestCmd(),
		loanCmd(),
		shuCmd(),
		savingsCmd(),
	)
	return root.Execute()
}
