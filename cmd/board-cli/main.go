package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/programme-lv/scoreboard/cli"
	"github.com/programme-lv/scoreboard/contestfile"
	"github.com/programme-lv/scoreboard/scoreboard"
)

// board-cli replays a contest command stream (ADDTEAM, START, SUBMIT,
// FLUSH, FREEZE, SCROLL, QUERY_RANKING, QUERY_SUBMISSION, END) from
// stdin or a file and prints the judge protocol to stdout.
func main() {
	input := flag.String("input", "", "command stream file (default: stdin)")
	contestPath := flag.String("contest", "", "optional contest.toml to preload teams and start the contest")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	boardSrvc := scoreboard.NewScoreboard()

	if *contestPath != "" {
		contest, err := contestfile.Read(*contestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := contest.Setup(boardSrvc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	in := os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	runner := cli.New(boardSrvc, os.Stdout)
	if err := runner.Run(in); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
