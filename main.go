package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/grendel/chainid/internal/cli"
	"github.com/grendel/chainid/pkg/identify"
	"github.com/grendel/chainid/pkg/ui"
)

func main() {
	quiet := flag.Bool("q", false, "Quiet output: one line per candidate, no boxes")
	help := flag.Bool("help", false, "Display help information")
	flag.Parse()

	// Initialize color scheme for consistent formatting
	cs := ui.DefaultColorScheme()

	if *help || (flag.NArg() == 0 && isTerminal()) {
		cli.DisplayHelp(cs)
		return
	}

	if !*quiet {
		ui.PrintHeader(cs, "chainid - Blockchain Address & Public Key Identifier")
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		// Read one input per line from stdin
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				inputs = append(inputs, line)
			}
		}
	}

	failures := 0
	for _, input := range inputs {
		result, err := identify.Identify(input)
		if err != nil {
			failures++
			if *quiet {
				fmt.Fprintf(os.Stderr, "%s: %v\n", input, err)
			} else {
				ui.PrintError(cs, input, err)
			}
			continue
		}
		if *quiet {
			for _, cand := range result.Candidates {
				fmt.Printf("%s\t%s\t%.2f\t%s\n", input, cand.Chain, cand.Confidence, result.Normalized)
			}
		} else {
			ui.PrintResult(cs, input, result)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func isTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return true
	}
	return info.Mode()&os.ModeCharDevice != 0
}
