package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/owowisp/mosswright/internal/export"
	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/seedoutput"
)

func exportJSON(universe *seedoutput.SeedUniverse, flag cliFlags, baseName string) error {
	filename := filepath.Join(flag.outputDir, baseName+".json")
	if flag.verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	if err := export.SaveJSONToFile(universe, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	if flag.verbose {
		reportSize(filename)
	}

	spoilerFile := filepath.Join(flag.outputDir, baseName+".spoiler.json")
	if err := export.SaveSpoilerJSONToFile(universe.Spoiler, spoilerFile); err != nil {
		return fmt.Errorf("failed to export spoiler JSON: %w", err)
	}
	if flag.verbose {
		fmt.Printf("Exporting spoiler JSON to %s\n", spoilerFile)
		reportSize(spoilerFile)
	}
	return nil
}

func exportSVG(g *logic.Graph, universe *seedoutput.SeedUniverse, flag cliFlags, baseName string) error {
	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Seed %s", baseName)

	for _, w := range universe.Worlds {
		filename := filepath.Join(flag.outputDir, fmt.Sprintf("%s.world%d.svg", baseName, w.Index))
		if flag.verbose {
			fmt.Printf("Exporting SVG to %s\n", filename)
		}
		if err := export.SaveSVGToFile(g, w.Index, universe.Spoiler, filename, opts); err != nil {
			return fmt.Errorf("failed to export SVG for world %d: %w", w.Index, err)
		}
		if flag.verbose {
			reportSize(filename)
		}
	}
	return nil
}

func reportSize(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	fmt.Printf("  Wrote %s\n", humanize.Bytes(uint64(info.Size())))
}
