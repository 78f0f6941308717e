package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/programme-lv/scoreboard/contestfile"
	"github.com/programme-lv/scoreboard/scoreboard"
)

// board-tui is an interactive scoreboard console: type contest commands
// on the input line and watch the board update.
func main() {
	contestPath := flag.String("contest", "", "optional contest.toml to preload teams and start the contest")
	flag.Parse()

	boardSrvc := scoreboard.NewScoreboard()

	if *contestPath != "" {
		contest, err := contestfile.Read(*contestPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := contest.Setup(boardSrvc); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(initialModel(boardSrvc))
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
