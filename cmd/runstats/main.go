package main

import (
	"flag"
	"fmt"
	"log"

	rb "nickandperla.net/rustedbrain"
)

var toolConfigPath = flag.String("config", "./config.toml", "The config file for rustedbrain tools to use")

func main() {
	flag.Parse()

	toolConfig, err := rb.LoadToolConfig(*toolConfigPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	metrics, err := rb.QueryRunMetrics(toolConfig.Persistence)
	if err != nil {
		log.Fatalf("Failed to query run metrics: %v", err)
	}

	fmt.Printf("Run records: %d\n", metrics.TotalRuns)
	fmt.Printf("  Completed:     %d\n", metrics.Completed)
	fmt.Printf("  Faulted:       %d\n", metrics.Faulted)
	fmt.Printf("  Limited:       %d\n", metrics.Limited)
	fmt.Printf("  Avg steps:     %.1f\n", metrics.AvgSteps)
	fmt.Printf("  Max steps:     %d\n", metrics.MaxSteps)
	fmt.Printf("  Avg fidelity:  %.1f%%\n", metrics.AvgFidelity)
}
