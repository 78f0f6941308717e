package http

import (
	"github.com/programme-lv/scoreboard/render"
	"github.com/programme-lv/scoreboard/scoreboard"
)

type standingRow struct {
	Team    string   `json:"team"`
	Rank    int      `json:"rank"`
	Solved  int      `json:"solved"`
	Penalty int      `json:"penalty"`
	Cells   []string `json:"cells"`
}

type scoreboardResponse struct {
	Frozen   bool          `json:"frozen"`
	Problems []string      `json:"problems"`
	Rows     []standingRow `json:"rows"`
}

type rankingChange struct {
	Team      string `json:"team"`
	Displaced string `json:"displaced"`
	Solved    int    `json:"solved"`
	Penalty   int    `json:"penalty"`
}

type scrollResponse struct {
	Before  scoreboardResponse `json:"before"`
	Changes []rankingChange    `json:"changes"`
	Final   scoreboardResponse `json:"final"`
}

type submissionView struct {
	UUID    string `json:"uuid"`
	Team    string `json:"team"`
	Problem string `json:"problem"`
	Verdict string `json:"verdict"`
	Time    int    `json:"time"`
}

func mapSnapshot(snap scoreboard.Snapshot, frozen bool) scoreboardResponse {
	rows := make([]standingRow, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, render.Cell(c))
		}
		rows = append(rows, standingRow{
			Team:    row.Team,
			Rank:    row.Rank,
			Solved:  row.Solved,
			Penalty: row.Penalty,
			Cells:   cells,
		})
	}
	return scoreboardResponse{
		Frozen:   frozen,
		Problems: snap.Problems,
		Rows:     rows,
	}
}

func mapChanges(changes []scoreboard.RankingChange) []rankingChange {
	out := make([]rankingChange, 0, len(changes))
	for _, ch := range changes {
		out = append(out, rankingChange{
			Team:      ch.Team,
			Displaced: ch.Displaced,
			Solved:    ch.Solved,
			Penalty:   ch.Penalty,
		})
	}
	return out
}

func mapSubmission(sub scoreboard.Submission) submissionView {
	return submissionView{
		UUID:    sub.UUID.String(),
		Team:    sub.Team,
		Problem: sub.Problem,
		Verdict: sub.Verdict.String(),
		Time:    sub.Time,
	}
}
