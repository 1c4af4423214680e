package main

import (
	"fmt"

	"github.com/owowisp/mosswright/internal/seedoutput"
)

func printStats(universe *seedoutput.SeedUniverse) {
	fmt.Println("\nGeneration Statistics:")
	fmt.Printf("  Worlds: %d\n", len(universe.Worlds))
	for _, w := range universe.Worlds {
		fmt.Printf("  World %d: %d events\n", w.Index, len(w.Events))
	}
	if universe.Spoiler != nil {
		fmt.Printf("  Placement groups: %d\n", len(universe.Spoiler.Groups))
		fmt.Printf("  Preplacements: %d\n", len(universe.Spoiler.Preplacements))
	}
	if len(universe.ShopPrices) > 0 {
		fmt.Printf("  Shop prices set: %d\n", len(universe.ShopPrices))
	}
}

func printUsage() {
	fmt.Println("\nUsage: mosswright -config <config.yaml> [options]")
	fmt.Println("\nRun 'mosswright -help' for detailed help")
}

func printHelp() {
	fmt.Printf("mosswright version %s\n\n", version)
	fmt.Println("A command-line tool for generating randomized item placement seeds.")
	fmt.Println("\nUsage:")
	fmt.Println("  mosswright -config <config.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, svg, or all (default: json)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Generate a seed with default JSON export")
	fmt.Println("  mosswright -config seed.yaml")
	fmt.Println("\n  # Generate with all export formats and verbose logging")
	fmt.Println("  mosswright -config seed.yaml -format all -verbose -output ./out")
	fmt.Println("\nConfiguration File:")
	fmt.Println("  The YAML configuration file specifies generation parameters including:")
	fmt.Println("  - seed (a string; hashed into the deterministic master seed)")
	fmt.Println("  - difficulty, tricks, hard mode")
	fmt.Println("  - goals, spawn mode")
	fmt.Println("  - worldCount and per-world overrides")
}
