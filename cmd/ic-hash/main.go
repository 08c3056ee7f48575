// Command ic-hash runs the folding-hash collision demo: it inserts batches
// of generated IC numbers into chained hash tables of different sizes and
// reports per-round and average collision statistics.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/stat"

	"github.com/nadhir/social-graph/pkg/icnum"
)

func main() {
	f := pflag.NewFlagSet("ic-hash", pflag.ExitOnError)
	rounds := f.Int("rounds", 10, "Number of rounds to run")
	count := f.Int("count", 1000, "IC numbers generated per round")
	sizes := f.IntSlice("sizes", []int{1009, 2003}, "Hash table sizes to compare")
	preview := f.Int("preview", 20, "Bucket lines shown in the first-round table dump")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, size := range *sizes {
		if size < 1 {
			fmt.Fprintf(os.Stderr, "Error: table size must be positive, got %d\n", size)
			os.Exit(1)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	bold := color.New(color.Bold)

	collisions := make(map[int][]float64)
	rates := make(map[int][]float64)

	for round := 1; round <= *rounds; round++ {
		bold.Printf("\n========== ROUND %d ==========\n", round)

		ics := make([]string, *count)
		for i := range ics {
			ics[i] = icnum.GenerateIC(rng)
		}

		for _, size := range *sizes {
			table := icnum.NewChainedTable(size)
			for _, ic := range ics {
				if err := table.Insert(ic); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
			}

			collisions[size] = append(collisions[size], float64(table.Collisions()))
			rates[size] = append(rates[size], table.CollisionRate())

			fmt.Printf("\nHash Table Size %d:\n", size)
			fmt.Printf("Total Collisions: %d\n", table.Collisions())
			fmt.Printf("Collision Rate: %.4f\n", table.CollisionRate())
			fmt.Printf("Load Factor: %.4f\n", table.LoadFactor())

			if round == 1 {
				printTable(table, *preview)
			}
		}
	}

	bold.Printf("\n========== AVERAGE SUMMARY (after %d rounds) ==========\n", *rounds)
	for _, size := range *sizes {
		fmt.Printf("\nHash Table Size %d:\n", size)
		fmt.Printf("Average Collisions: %.2f\n", stat.Mean(collisions[size], nil))
		fmt.Printf("Average Collision Rate: %.4f\n", stat.Mean(rates[size], nil))
	}
}

func printTable(table *icnum.ChainedTable, maxLines int) {
	fmt.Printf("Hash Table with size %d:\n", table.Size())
	lines := table.Size()
	if maxLines < lines {
		lines = maxLines
	}
	for i := 0; i < lines; i++ {
		chain := table.Bucket(i)
		if len(chain) > 0 {
			fmt.Printf("table[%d] --> %s\n", i, strings.Join(chain, " --> "))
		} else {
			fmt.Printf("table[%d] --> [empty]\n", i)
		}
	}
}
