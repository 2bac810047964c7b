// Command cursec is the compiler's CLI driver: it compiles one source
// file, prints whatever diagnostics every stage produced, and — unless
// told otherwise — evaluates a `main` function when compilation is
// clean, the way scenario walkthroughs expect to see a real result on
// stdout rather than just a silent success.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"curse/internal/compiler"
	"curse/internal/config"
	"curse/internal/diag"
	"curse/internal/evaluator"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: cursec <file%s> [--no-run]\n", config.SourceFileExt)
		return 2
	}

	path := args[0]
	noRun := false
	for _, a := range args[1:] {
		if a == "--no-run" {
			noRun = true
		}
	}

	cfg, err := config.LoadProjectConfig(filepath.Join(filepath.Dir(path), "curse.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cursec: reading curse.yaml: %s\n", err)
		return 1
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cursec: %s\n", err)
		return 1
	}

	result := compiler.Compile(string(source))
	diag.Render(os.Stderr, result.Diagnostics, diag.ParseColorMode(cfg.Color))

	if result.HadErrors() {
		fmt.Fprintf(os.Stderr, "cursec: %s (session %s)\n", diag.Summary(result.Diagnostics), result.SessionID)
		return 1
	}

	if noRun {
		return 0
	}
	if _, ok := result.Program.Functions["main"]; !ok {
		return 0
	}

	eval := evaluator.New(result.Program, os.Stdout)
	if _, err := eval.RunFunction("main"); err != nil {
		fmt.Fprintf(os.Stderr, "cursec: %s\n", err)
		return 1
	}
	return 0
}
