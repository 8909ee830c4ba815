package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/grendel/chainid/pkg/identify"
)

const (
	// BoxWidth is the standard width for display boxes
	BoxWidth = 80
)

// ColorScheme defines a set of colors for consistent UI formatting
type ColorScheme struct {
	Header   *color.Color // For box borders and section headers
	Title    *color.Color // For main titles
	Subtitle *color.Color // For section titles
	Normal   *color.Color // For normal text
	Param    *color.Color // For parameter names
	Chain    *color.Color // For chain identifiers
	Match    *color.Color // For match indicators
	Result   *color.Color // For result messages
	Key      *color.Color // For derived addresses and normalized forms
	Example  *color.Color // For example commands
	Success  *color.Color // For high-confidence candidates
	Error    *color.Color // For errors and low-confidence candidates
}

// DefaultColorScheme returns the default color scheme for the application
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:   color.New(color.FgBlue, color.Bold),
		Title:    color.New(color.FgHiWhite, color.Bold),
		Subtitle: color.New(color.FgBlue),
		Normal:   color.New(color.FgWhite),
		Param:    color.New(color.FgCyan),
		Chain:    color.New(color.FgHiWhite, color.Bold),
		Match:    color.New(color.FgYellow),
		Result:   color.New(color.FgBlue),
		Key:      color.New(color.FgHiCyan),
		Example:  color.New(color.FgGreen),
		Success:  color.New(color.FgGreen, color.Bold),
		Error:    color.New(color.FgRed),
	}
}

// PrintHeader prints a formatted header box with the given title
func PrintHeader(cs *ColorScheme, title string) {
	padding := BoxWidth - 4 - len(title)
	if padding < 0 {
		padding = 0
	}

	fmt.Println()
	cs.Header.Println("╭─────────────────────────────────────────────────────────────────────────────╮")
	cs.Header.Printf("│  ")
	cs.Title.Print(title)
	cs.Header.Printf("%s│\n", strings.Repeat(" ", padding))
	cs.Header.Println("╰─────────────────────────────────────────────────────────────────────────────╯")
	fmt.Println()
}

// PrintResult prints one identification result: the normalized form
// followed by every candidate, best first.
func PrintResult(cs *ColorScheme, input string, result *identify.IdentificationResult) {
	cs.Result.Print("Input:      ")
	cs.Normal.Println(input)
	cs.Result.Print("Normalized: ")
	cs.Key.Println(result.Normalized)
	fmt.Println()

	for i, cand := range result.Candidates {
		PrintCandidate(cs, i+1, cand)
	}
	fmt.Println()
}

// PrintCandidate prints a single candidate line with confidence coloring.
func PrintCandidate(cs *ColorScheme, number int, cand identify.Candidate) {
	cs.Match.Printf("  #%-2d ", number)
	cs.Chain.Printf("%-12s", cand.Chain)

	conf := cs.Error
	if cand.Confidence >= 0.90 {
		conf = cs.Success
	} else if cand.Confidence >= 0.75 {
		conf = cs.Match
	}
	conf.Printf(" %.2f  ", cand.Confidence)
	cs.Normal.Println(cand.Reasoning)

	if cand.DerivedAddress != "" {
		cs.Normal.Print("      derived: ")
		cs.Key.Println(cand.DerivedAddress)
	}
}

// PrintError prints an identification failure.
func PrintError(cs *ColorScheme, input string, err error) {
	cs.Result.Print("Input:      ")
	cs.Normal.Println(input)
	cs.Error.Printf("  %v\n", err)
	fmt.Println()
}

// PrintOption prints a command line option with description
func PrintOption(cs *ColorScheme, flag, description string) {
	cs.Normal.Print("  ")
	cs.Param.Print(flag)
	cs.Normal.Println(description)
}

// PrintExample prints a usage example
func PrintExample(cs *ColorScheme, example, description string) {
	cs.Example.Printf("  %s", example)
	if description != "" {
		cs.Example.Printf("  # %s", description)
	}
	fmt.Println()
}

// PrintSectionHeader prints a section header
func PrintSectionHeader(cs *ColorScheme, title string) {
	cs.Subtitle.Println(title)
}
