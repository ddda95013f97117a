// Command neighbors reports, for every point of a set, the distance to its
// nearest other point and how many points lie within twice that distance.
//
// Usage:
//
//	neighbors [flags] [file]
//
// With a file (argument, --input or the input config key) points are read
// from it, one "X Y" pair per line, and any malformed line aborts the run.
// Otherwise points are typed interactively until a line reading "end";
// malformed lines are reported and skipped.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/vkarpachev/neighbors/config"
	"github.com/vkarpachev/neighbors/pointio"
	"github.com/vkarpachev/neighbors/report"
)

const banner = "Print two coordinates through whitespace. Type 'end' to view result"

// errBadInput marks a run aborted by a malformed input file; it is already reported.
var errBadInput = errors.New("malformed input file")

func main() {
	log.SetFlags(0)
	log.SetPrefix("neighbors: ")

	fs := pflag.NewFlagSet("neighbors", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatal(err)
	}
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}

	if cfg.Input != "" {
		err = runFile(cfg, os.Stdout)
	} else {
		lr := pointio.NewTerminalLineReader(cfg.HistoryFile)
		err = runInteractive(cfg, lr, os.Stdout)
		if cerr := lr.Close(); cerr != nil {
			log.Printf("close terminal: %v", cerr)
		}
	}
	if errors.Is(err, errBadInput) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// runFile reports on the points in cfg.Input.
func runFile(cfg *config.Config, out io.Writer) error {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	points, err := pointio.ReadPoints(f)
	if errors.Is(err, pointio.ErrParse) {
		fmt.Fprintf(out, "Invalid input file format(%v).\n", err)
		return errBadInput
	}
	if err != nil {
		return err
	}

	return report.Write(out, points, cfg.ReportOptions())
}

// runInteractive reads points from lr and reports on them.
func runInteractive(cfg *config.Config, lr pointio.LineReader, out io.Writer) error {
	fmt.Fprintln(out, banner)
	points, err := pointio.ReadInteractive(lr, cfg.Prompt, func(_ string, err error) {
		fmt.Fprintf(out, "Invalid input(%v).\n", err)
	})
	if err != nil {
		return err
	}

	return report.Write(out, points, cfg.ReportOptions())
}
