package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basimkhajwal/arithmoi/recurrences"
)

var pentagonalCmd = &cobra.Command{
	Use:   "pentagonal",
	Short: "Print generalized pentagonal numbers.",
	Long: "`pentagonal --count N` prints the first N generalized pentagonal " +
		"numbers in the canonical interleaved index order. With --indices it " +
		"prints the index order 0, 1, -1, 2, -2, ... itself.",
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		indices, _ := cmd.Flags().GetBool("indices")

		if indices {
			it := recurrences.PentagonalIndices[int64]()
			for i := 0; i < count; i++ {
				fmt.Println(it.Next())
			}
			return
		}

		it := recurrences.PentagonalNumbers[int64]()
		for i := 0; i < count; i++ {
			fmt.Println(it.Next())
		}
	},
}

func init() {
	pentagonalCmd.Flags().Int("count", 10, "print the first N elements")
	pentagonalCmd.Flags().Bool("indices", false, "print the index sequence instead of the numbers")
	rootCmd.AddCommand(pentagonalCmd)
}
