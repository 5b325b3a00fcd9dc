// Command tempertab prints note frequency tables for musical temperaments.
//
// Usage:
//
//	tempertab [flags] [temperament-name ...]
//
// Without arguments it prints the table for all known temperaments.
//
// Examples:
//
//	tempertab just
//	tempertab -min 4 -max 6 equal just pythagorean
//	tempertab -ref A4 -freq 442 meantone
//	tempertab -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-tuner/temperament"
)

func main() {
	minOctave := flag.Int("min", 4, "lowest octave to print")
	maxOctave := flag.Int("max", 6, "highest octave to print")
	ref := flag.String("ref", "A4", "reference note, e.g. A4 or C#3")
	freq := flag.Float64("freq", 440, "reference frequency in Hz")
	list := flag.Bool("list", false, "list available temperament names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tempertab [flags] [temperament-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints note frequency tables for musical temperaments.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints all temperaments.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tempertab just\n")
		fmt.Fprintf(os.Stderr, "  tempertab -min 4 -max 6 equal just\n")
		fmt.Fprintf(os.Stderr, "  tempertab -ref A4 -freq 442 meantone\n")
		fmt.Fprintf(os.Stderr, "  tempertab -list\n")
	}
	flag.Parse()

	if *list {
		for _, key := range temperament.Keys() {
			fmt.Println(key)
		}
		return
	}

	refNote, err := temperament.ParseNote(*ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	defs := resolveDefinitions(flag.Args())
	if len(defs) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching temperaments\n")
		os.Exit(1)
	}

	engines := make([]*temperament.Temperament, 0, len(defs))
	for _, def := range defs {
		tmp, err := temperament.New(def,
			temperament.WithReference(refNote, *freq),
			temperament.WithOctaveRange(*minOctave, *maxOctave),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		engines = append(engines, tmp)
	}

	printTable(engines)
}

func resolveDefinitions(names []string) []temperament.Definition {
	if len(names) == 0 {
		return temperament.Definitions()
	}

	var defs []temperament.Definition
	for _, name := range names {
		def, ok := temperament.Lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown temperament %q (use -list to see available)\n", name)
			continue
		}
		defs = append(defs, def)
	}
	return defs
}

func printTable(engines []*temperament.Temperament) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Note")
	for _, tmp := range engines {
		fmt.Fprintf(tw, "\t%s [Hz]", tmp.Name())
	}
	fmt.Fprintln(tw)

	notes := engines[0].Notes()
	tables := make([][]float64, len(engines))
	for i, tmp := range engines {
		tables[i] = tmp.Frequencies()
	}

	for row, n := range notes {
		fmt.Fprintf(tw, "%s", n)
		for _, freqs := range tables {
			fmt.Fprintf(tw, "\t%.3f", freqs[row])
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
