// Command mosswright is the CLI entry point for the seed generator: it
// loads a YAML configuration, drives placement against the bundled example
// world, and writes the resulting seed universe out as JSON and/or an SVG
// spoiler map.
package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/owowisp/mosswright/internal/exampleworld"
	"github.com/owowisp/mosswright/internal/genconfig"
	"github.com/owowisp/mosswright/internal/orbs"
	"github.com/owowisp/mosswright/internal/placement"
	"github.com/owowisp/mosswright/internal/pool"
	"github.com/owowisp/mosswright/internal/seedrng"
	"github.com/owowisp/mosswright/internal/settings"
)

const version = "0.1.0"

func main() {
	flag := parseFlags(os.Args[1:])

	if flag.version {
		fmt.Printf("mosswright version %s\n", version)
		os.Exit(0)
	}
	if flag.help {
		printHelp()
		os.Exit(0)
	}
	if flag.configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}
	if !validFormats[flag.format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, all\n", flag.format)
		os.Exit(1)
	}

	if err := run(flag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flag cliFlags) error {
	if flag.verbose {
		fmt.Printf("Loading configuration from %s\n", flag.configPath)
	}
	cfg, err := genconfig.LoadConfig(flag.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := cfg.ToSettings()
	if err != nil {
		return fmt.Errorf("failed to resolve settings: %w", err)
	}

	worldSettings := make([]settings.WorldSettings, st.WorldCount)
	for i := range worldSettings {
		worldSettings[i] = st.ForWorld(i)
	}

	graph, defaultSpawn, doors := exampleworld.Build()

	// Validate every world's spawn configuration against the bundled graph
	// concurrently; this is the one sanctioned use of concurrency in the
	// generator, and it completes entirely before the placement driver's
	// loop starts.
	var eg errgroup.Group
	for i, ws := range worldSettings {
		i, ws := i, ws
		eg.Go(func() error {
			_, err := resolveSpawnIndex(graph, defaultSpawn, ws, seedrng.New(1, fmt.Sprintf("validate-spawn-%d", i), nil))
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	if flag.verbose {
		fmt.Printf("Seed: %s\n", cfg.Seed)
		fmt.Printf("Worlds: %d\n", st.WorldCount)
		fmt.Printf("Difficulty: %s\n", st.Difficulty)
	}

	configHash := cfg.Hash()
	masterSeed := cfg.MasterSeed()

	start := time.Now()
	build := func(r *seedrng.RNG) ([]*placement.WorldContext, error) {
		worlds := make([]*placement.WorldContext, st.WorldCount)
		for i := range worlds {
			ws := worldSettings[i]
			spawnIdx, err := resolveSpawnIndex(graph, defaultSpawn, ws, r.Split(fmt.Sprintf("spawn-world-%d", i)))
			if err != nil {
				return nil, fmt.Errorf("world %d: %w", i, err)
			}
			p := pool.StandardPreset()
			worlds[i] = placement.NewWorldContext(i, graph, ws, spawnIdx, orbs.Orbs{Health: 30, Energy: 3}, p, doors)
		}
		return worlds, nil
	}

	universe, err := placement.Run(st, masterSeed, configHash, nil, build)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	elapsed := time.Since(start)

	if flag.verbose {
		fmt.Printf("Generation completed in %v\n", elapsed)
		printStats(universe)
	}

	if err := os.MkdirAll(flag.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	baseName := fmt.Sprintf("seed_%s", sanitizeFilename(cfg.Seed))

	if flag.format == "json" || flag.format == "all" {
		if err := exportJSON(universe, flag, baseName); err != nil {
			return err
		}
	}
	if flag.format == "svg" || flag.format == "all" {
		if err := exportSVG(graph, universe, flag, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully generated seed %q (%d world(s)) in %v\n", cfg.Seed, st.WorldCount, elapsed)
	return nil
}

func sanitizeFilename(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
