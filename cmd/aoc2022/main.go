// Command aoc2022 solves one Advent of Code 2022 puzzle read from stdin.
//
//	aoc2022 -day 9 < input.txt
//
// Answers go to stdout; timing and diagnostics are logged to stderr.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("aoc2022", flag.ContinueOnError)
	day := fs.String("day", "", "day to solve; empty means the latest available day")
	configFile := fs.String("config", "", "YAML file with per-day parameters")
	knots := fs.String("knots", "", "comma separated tail lengths for day 9, overrides the config")
	prof := fs.String("profile", "", "write a cpu or mem profile to the working directory")
	verbose := fs.Bool("v", false, "log debug output")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}
	if *knots != "" {
		if cfg.RopeKnots, err = parseInts(*knots); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	n, solve, err := lookup(*day)
	if err != nil {
		return err
	}

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q (want cpu or mem)", *prof)
	}

	start := time.Now()
	ans, err := solve(stdin, cfg)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("day %d: %w", n, err)
	}
	log.WithFields(logrus.Fields{"day": n, "elapsed": elapsed}).Info("solved")
	_, err = fmt.Fprintln(stdout, ans)
	return err
}

// readLines returns the non-blank lines of r with surrounding space trimmed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
