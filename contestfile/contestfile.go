// Package contestfile reads a contest definition from a contest.toml
// file and applies it to a scoreboard engine.
package contestfile

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/programme-lv/scoreboard/scoreboard"
)

type Contest struct {
	Name            string   `toml:"name"`
	DurationMinutes int      `toml:"duration_minutes"`
	ProblemCount    int      `toml:"problem_count"`
	Teams           []string `toml:"teams"`
}

func Read(path string) (*Contest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading contest file: %w", err)
	}

	c := &Contest{}
	if err := toml.Unmarshal(content, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contest file: %w", err)
	}

	if c.ProblemCount < 1 || c.ProblemCount > 26 {
		return nil, fmt.Errorf("problem_count must be between 1 and 26, got %d", c.ProblemCount)
	}
	if c.DurationMinutes < 1 {
		return nil, fmt.Errorf("duration_minutes must be positive, got %d", c.DurationMinutes)
	}

	return c, nil
}

// Setup registers every team of the contest definition and starts the
// contest on the given engine.
func (c *Contest) Setup(srvc *scoreboard.ScoreboardSrvc) error {
	for _, name := range c.Teams {
		if err := srvc.RegisterTeam(name); err != nil {
			return fmt.Errorf("failed to register team %s: %w", name, err)
		}
	}
	if err := srvc.StartContest(c.DurationMinutes, c.ProblemCount); err != nil {
		return fmt.Errorf("failed to start contest: %w", err)
	}
	return nil
}
