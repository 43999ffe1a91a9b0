// Command arithmoi prints exact integer sequence values from the command
// line.
package main

import (
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/basimkhajwal/arithmoi/recurrences"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "arithmoi",
	Short: "Compute exact integer sequences: partitions, pentagonals, and friends.",
	Long: `arithmoi computes classical integer sequences with exact arbitrary ` +
		`precision arithmetic. Each subcommand prints either the first --count ` +
		`elements of its sequence, or the single element at the given index.`,
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runSequence prints either the element at the positional index, or the
// first --count elements one per line.
func runSequence(cmd *cobra.Command, args []string, seq *recurrences.Sequence[*big.Int]) {
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("Error: index must be an integer: %v", err)
		}
		v, err := seq.Value(n)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Println(v)
		return
	}

	count, _ := cmd.Flags().GetInt("count")
	for i := 0; i < count; i++ {
		fmt.Println(seq.Next())
	}
}
