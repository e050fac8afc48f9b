package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sys/unix"

	caseiterable "github.com/ianbrault/case-iterable"
)

var (
	typeFlag   = flag.String("type", "", "comma-separated list of enum type names; required")
	outputFlag = flag.String("output", "", "combine everything into this file instead of one file per type")
	seqFlag    = flag.Bool("seq", false, "also generate a Seq method returning an iter.Seq")
	tagsFlag   = flag.String("tags", "", "comma-separated build tags")
	testsFlag  = flag.Bool("tests", false, "include test files")
	colorFlag  = flag.String("c", "auto", "colorize errors (auto|always|never)")
)

func main() {
	flag.Parse()

	if *typeFlag == "" {
		fmt.Fprintln(os.Stderr, "caseiter: the -type flag is required")
		os.Exit(1)
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch *colorFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *colorFlag)
		os.Exit(1)
	}

	opts := caseiterable.Options{
		Types:   splitTypes(*typeFlag),
		Seq:     *seqFlag,
		OutFile: *outputFlag,
		Tags:    *tagsFlag,
		Tests:   *testsFlag,
		Args:    os.Args[1:],
	}

	outs, err := caseiterable.Generate(context.Background(), wd, os.Environ(), opts, flag.Args()...)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
}

func splitTypes(list string) []string {
	var types []string
	for _, t := range strings.Split(list, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var rePos = regexp.MustCompile(`(?m)^(\S+:\d+(?::\d+)?:) `)

// colorize prints position prefixes in bold, the way compilers do.
func colorize(message string) string {
	const (
		bold  = "\033[1m"
		reset = "\033[0m"
	)
	return rePos.ReplaceAllString(message, bold+"$1"+reset+" ")
}
