// Package render turns scoreboard values into the contest's textual
// line format. The grammar is fixed, graders diff it byte for byte.
package render

import (
	"fmt"
	"strings"

	"github.com/programme-lv/scoreboard/scoreboard"
)

// Cell renders one per-problem scoreboard cell:
//
//	solved          "+" or "+<wrong>"
//	frozen pending  "0/<pending>" or "-<wrong>/<pending>"
//	untried         "." or "-<wrong>"
func Cell(c scoreboard.ProblemCell) string {
	switch c.Kind {
	case scoreboard.CellSolved:
		if c.WrongBefore == 0 {
			return "+"
		}
		return fmt.Sprintf("+%d", c.WrongBefore)
	case scoreboard.CellFrozen:
		if c.WrongBefore == 0 {
			return fmt.Sprintf("0/%d", c.FrozenPending)
		}
		return fmt.Sprintf("-%d/%d", c.WrongBefore, c.FrozenPending)
	default:
		if c.WrongBefore == 0 {
			return "."
		}
		return fmt.Sprintf("-%d", c.WrongBefore)
	}
}

// Row renders one scoreboard row: name, rank, solved count, penalty,
// then one cell per problem.
func Row(row scoreboard.TeamStanding) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d %d %d", row.Team, row.Rank, row.Solved, row.Penalty)
	for _, c := range row.Cells {
		sb.WriteByte(' ')
		sb.WriteString(Cell(c))
	}
	return sb.String()
}

// Scoreboard renders a full snapshot, one row per line.
func Scoreboard(snap scoreboard.Snapshot) []string {
	lines := make([]string, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		lines = append(lines, Row(row))
	}
	return lines
}

// Change renders one scroll ranking-change event.
func Change(ch scoreboard.RankingChange) string {
	return fmt.Sprintf("%s %s %d %d", ch.Team, ch.Displaced, ch.Solved, ch.Penalty)
}

// Submission renders a query-submission result.
func Submission(sub scoreboard.Submission) string {
	return fmt.Sprintf("%s %s %s %d", sub.Team, sub.Problem, sub.Verdict, sub.Time)
}
