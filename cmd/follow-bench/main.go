// Command follow-bench compares running a synthetic arithmetic workload on
// three goroutines against running it sequentially, over a number of
// rounds, and reports per-round and average timings.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/stat"
)

const (
	workers        = 3
	numbersPerTask = 100
	stepsPerNumber = 1000
)

// generateNumbers is the workload: CPU-bound arithmetic over random values.
func generateNumbers(rng *rand.Rand) []int {
	numbers := make([]int, 0, numbersPerTask)
	for i := 0; i < numbersPerTask; i++ {
		num := rng.Intn(10001)
		for j := 0; j < stepsPerNumber; j++ {
			temp := rng.Float64() * float64(num)
			num = (num + int(temp)) % 10000
		}
		numbers = append(numbers, num)
	}
	return numbers
}

func concurrentRun() time.Duration {
	results := make([][]int, workers)
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(idx)))
			results[idx] = generateNumbers(rng)
		}(i)
	}
	wg.Wait()
	return time.Since(start)
}

func sequentialRun() time.Duration {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	start := time.Now()
	results := make([][]int, 0, workers)
	for i := 0; i < workers; i++ {
		results = append(results, generateNumbers(rng))
	}
	return time.Since(start)
}

func main() {
	f := pflag.NewFlagSet("follow-bench", pflag.ExitOnError)
	rounds := f.Int("rounds", 10, "Number of comparison rounds")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bold := color.New(color.Bold)
	bold.Println("Round-by-Round Performance Comparison:")
	fmt.Println()
	fmt.Printf("%-8s %-24s %-24s %-24s\n", "Round", "Concurrent (ns)", "Sequential (ns)", "Difference (ns)")

	concurrent := make([]float64, 0, *rounds)
	sequential := make([]float64, 0, *rounds)

	for i := 1; i <= *rounds; i++ {
		ct := concurrentRun()
		st := sequentialRun()

		concurrent = append(concurrent, float64(ct.Nanoseconds()))
		sequential = append(sequential, float64(st.Nanoseconds()))

		fmt.Printf("%-8d %-24d %-24d %-24d\n",
			i, ct.Nanoseconds(), st.Nanoseconds(), ct.Nanoseconds()-st.Nanoseconds())
	}

	avgConcurrent := stat.Mean(concurrent, nil)
	avgSequential := stat.Mean(sequential, nil)
	diff := avgConcurrent - avgSequential

	fmt.Println()
	bold.Println("Summary of Results:")
	fmt.Printf("Average Concurrent:  %.1f ns\n", avgConcurrent)
	fmt.Printf("Average Sequential:  %.1f ns\n", avgSequential)

	if diff > 0 {
		color.New(color.FgYellow).Printf("Goroutines are SLOWER on average by %.1f ns\n", diff)
	} else {
		color.New(color.FgGreen).Printf("Goroutines are FASTER on average by %.1f ns\n", -diff)
	}
}
