package main

import (
	"github.com/spf13/cobra"

	"github.com/basimkhajwal/arithmoi/recurrences"
)

var partitionCmd = &cobra.Command{
	Use:   "partition [n]",
	Short: "Print partition numbers p(n).",
	Long: "`partition n` prints the number of partitions of n. " +
		"`partition --count N` prints p(0) through p(N-1), one per line.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSequence(cmd, args, recurrences.Partitions())
	},
}

func init() {
	partitionCmd.Flags().Int("count", 10, "print the first N partition numbers")
	rootCmd.AddCommand(partitionCmd)
}
