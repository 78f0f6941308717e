package scoreboard

import "github.com/google/uuid"

// Submission is one immutable entry of the submission log.
type Submission struct {
	UUID    uuid.UUID
	Team    string
	Problem string
	Verdict Verdict
	Time    int
	// ReceivedFrozen marks submissions that arrived while the board was
	// frozen. The scroll replay keys off this tag instead of guessing
	// from timestamps.
	ReceivedFrozen bool
}

// CellKind classifies how a per-problem scoreboard cell is shown.
type CellKind int

const (
	CellUntried CellKind = iota // no accepted result, not frozen-pending
	CellSolved
	CellFrozen // has a frozen pending accepted result awaiting scroll
)

// ProblemCell is the visible state of one problem for one team.
type ProblemCell struct {
	Kind          CellKind
	WrongBefore   int // wrong attempts before first acceptance (or so far)
	FrozenPending int // submissions parked during freeze, CellFrozen only
}

// TeamStanding is one scoreboard row.
type TeamStanding struct {
	Team    string
	Rank    int
	Solved  int
	Penalty int
	Cells   []ProblemCell
}

// Snapshot is a full scoreboard at one point in time, rows in ranking
// order.
type Snapshot struct {
	Problems []string
	Rows     []TeamStanding
}

// RankingChange reports one scroll reveal that changed the revealed
// team's immediate predecessor in the ranking.
type RankingChange struct {
	Team      string // team whose frozen result was revealed
	Displaced string // team now immediately ahead of it
	Solved    int
	Penalty   int
}

// ScrollResult is everything a scroll produces: the board as it stood
// when the scroll began, the ordered ranking changes, and the fully
// unfrozen board.
type ScrollResult struct {
	Before  Snapshot
	Changes []RankingChange
	Final   Snapshot
}

// SubmissionFilter narrows QuerySubmission. Nil fields match anything.
type SubmissionFilter struct {
	Problem *string
	Verdict *Verdict
}
