package main

import "flag"

var validFormats = map[string]bool{"json": true, "svg": true, "all": true}

type cliFlags struct {
	configPath string
	outputDir  string
	format     string
	verbose    bool
	version    bool
	help       bool
}

func parseFlags(args []string) cliFlags {
	fs := flag.NewFlagSet("mosswright", flag.ExitOnError)
	f := cliFlags{}
	fs.StringVar(&f.configPath, "config", "", "Path to YAML configuration file (required)")
	fs.StringVar(&f.outputDir, "output", ".", "Output directory for generated files")
	fs.StringVar(&f.format, "format", "json", "Export format: json, svg, or all")
	fs.BoolVar(&f.verbose, "verbose", false, "Enable verbose output")
	fs.BoolVar(&f.version, "version", false, "Print version and exit")
	fs.BoolVar(&f.help, "help", false, "Show help message")
	_ = fs.Parse(args)
	return f
}
