package main

import (
	"github.com/spf13/cobra"

	"github.com/basimkhajwal/arithmoi/recurrences"
)

var fibonacciCmd = &cobra.Command{
	Use:   "fibonacci [n]",
	Short: "Print Fibonacci numbers.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSequence(cmd, args, recurrences.Fibonaccis())
	},
}

var factorialCmd = &cobra.Command{
	Use:   "factorial [n]",
	Short: "Print factorials.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSequence(cmd, args, recurrences.Factorials())
	},
}

func init() {
	fibonacciCmd.Flags().Int("count", 10, "print the first N Fibonacci numbers")
	factorialCmd.Flags().Int("count", 10, "print the first N factorials")
	rootCmd.AddCommand(fibonacciCmd)
	rootCmd.AddCommand(factorialCmd)
}
