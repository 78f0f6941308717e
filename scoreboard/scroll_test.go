package scoreboard_test

import (
	"math/rand"
	"testing"

	"github.com/programme-lv/scoreboard/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollFailsWhenNotFrozen(t *testing.T) {
	srvc := setupContest(t, []string{"alpha"}, 1)
	submit(t, srvc, "A", "alpha", "Accepted", 10)
	before := srvc.Flush()

	res, err := srvc.Scroll()
	assert.Nil(t, res)
	assert.Equal(t, scoreboard.ErrCodeNotFrozen, errCodeOf(t, err))
	assert.Equal(t, before, srvc.Flush())
}

func TestFreezeTwice(t *testing.T) {
	srvc := setupContest(t, []string{"alpha"}, 1)
	require.NoError(t, srvc.Freeze())

	err := srvc.Freeze()
	assert.Equal(t, scoreboard.ErrCodeAlreadyFrozen, errCodeOf(t, err))
}

func TestFrozenAcceptedIsParkedUntilScroll(t *testing.T) {
	srvc := setupContest(t, []string{"c"}, 1)
	require.NoError(t, srvc.Freeze())
	submit(t, srvc, "A", "c", "Accepted", 150)

	row := rowOf(t, srvc.Flush(), "c")
	assert.Equal(t, 0, row.Solved)
	assert.Equal(t, scoreboard.CellFrozen, row.Cells[0].Kind)
	assert.Equal(t, 1, row.Cells[0].FrozenPending)

	res, err := srvc.Scroll()
	require.NoError(t, err)
	row = rowOf(t, res.Final, "c")
	assert.Equal(t, 1, row.Solved)
	assert.Equal(t, 150, row.Penalty)
	assert.False(t, srvc.Frozen())
}

func TestScrollDiscardsFrozenWrongAttempts(t *testing.T) {
	srvc := setupContest(t, []string{"alpha"}, 1)
	submit(t, srvc, "A", "alpha", "Wrong_Answer", 10)
	require.NoError(t, srvc.Freeze())
	submit(t, srvc, "A", "alpha", "Wrong_Answer", 20)
	submit(t, srvc, "A", "alpha", "Runtime_Error", 25)
	submit(t, srvc, "A", "alpha", "Accepted", 30)

	res, err := srvc.Scroll()
	require.NoError(t, err)

	// only the pre-freeze wrong attempt counts: 20*1+30
	row := rowOf(t, res.Final, "alpha")
	assert.Equal(t, 1, row.Solved)
	assert.Equal(t, 50, row.Penalty)
	assert.Equal(t, 1, row.Cells[0].WrongBefore)
}

func TestFrozenWrongAttemptsOnlyProblemStaysUnsolved(t *testing.T) {
	srvc := setupContest(t, []string{"alpha"}, 1)
	submit(t, srvc, "A", "alpha", "Wrong_Answer", 10)
	require.NoError(t, srvc.Freeze())
	submit(t, srvc, "A", "alpha", "Wrong_Answer", 20)

	// no frozen accepted result: the cell is not frozen-pending
	row := rowOf(t, srvc.Flush(), "alpha")
	assert.Equal(t, scoreboard.CellUntried, row.Cells[0].Kind)
	assert.Equal(t, 1, row.Cells[0].WrongBefore)

	res, err := srvc.Scroll()
	require.NoError(t, err)
	row = rowOf(t, res.Final, "alpha")
	assert.Equal(t, 0, row.Solved)
	assert.Equal(t, scoreboard.CellUntried, row.Cells[0].Kind)
	assert.Equal(t, 1, row.Cells[0].WrongBefore)
	assert.Empty(t, res.Changes)
}

func TestScrollRevealOrderAndEvents(t *testing.T) {
	srvc := setupContest(t, []string{"top", "mid", "mid2", "bot"}, 2)
	submit(t, srvc, "A", "top", "Accepted", 5)
	submit(t, srvc, "B", "top", "Accepted", 6)
	submit(t, srvc, "A", "mid", "Accepted", 10)
	for i := 0; i < 5; i++ {
		submit(t, srvc, "A", "mid2", "Wrong_Answer", 20+i)
	}
	submit(t, srvc, "A", "mid2", "Accepted", 60)
	require.NoError(t, srvc.Freeze())
	submit(t, srvc, "A", "bot", "Accepted", 100)
	submit(t, srvc, "B", "bot", "Accepted", 110)
	submit(t, srvc, "B", "mid2", "Accepted", 120)

	res, err := srvc.Scroll()
	require.NoError(t, err)

	assert.Equal(t, []string{"top", "mid", "mid2", "bot"}, order(res.Before))

	// reveals go lowest rank first, alphabetically smallest problem
	// first, rescanning the order after every reveal
	require.Len(t, res.Changes, 3)
	assert.Equal(t, scoreboard.RankingChange{Team: "bot", Displaced: "mid", Solved: 1, Penalty: 100}, res.Changes[0])
	assert.Equal(t, scoreboard.RankingChange{Team: "mid2", Displaced: "top", Solved: 2, Penalty: 280}, res.Changes[1])
	assert.Equal(t, scoreboard.RankingChange{Team: "bot", Displaced: "top", Solved: 2, Penalty: 210}, res.Changes[2])

	assert.Equal(t, []string{"top", "bot", "mid2", "mid"}, order(res.Final))
}

func TestScrollNoEventWhenRevealedTeamTakesLead(t *testing.T) {
	srvc := setupContest(t, []string{"alpha", "beta"}, 1)
	submit(t, srvc, "A", "alpha", "Wrong_Answer", 40)
	submit(t, srvc, "A", "alpha", "Accepted", 50) // penalty 70
	require.NoError(t, srvc.Freeze())
	submit(t, srvc, "A", "beta", "Accepted", 60) // penalty 60, overtakes

	res, err := srvc.Scroll()
	require.NoError(t, err)

	// the order changed but the revealed team has no predecessor
	assert.Equal(t, []string{"beta", "alpha"}, order(res.Final))
	assert.Empty(t, res.Changes)
}

func TestScrollCanFreezeAgainAfterwards(t *testing.T) {
	srvc := setupContest(t, []string{"alpha"}, 1)
	require.NoError(t, srvc.Freeze())
	_, err := srvc.Scroll()
	require.NoError(t, err)

	require.NoError(t, srvc.Freeze())
	submit(t, srvc, "A", "alpha", "Accepted", 200)
	res, err := srvc.Scroll()
	require.NoError(t, err)
	assert.Equal(t, 1, rowOf(t, res.Final, "alpha").Solved)
}

// referenceStanding recomputes one team/problem outcome straight from
// the submission log, using the frozen tags, without going through the
// scroll state machine.
type referenceStanding struct {
	solved     bool
	acceptTime int
	wrong      int
}

func referenceReplay(subms []scoreboard.Submission, team, problem string) referenceStanding {
	var out referenceStanding
	frozenAccept := -1
	for _, sub := range subms {
		if sub.Team != team || sub.Problem != problem || out.solved {
			continue
		}
		if !sub.ReceivedFrozen {
			if sub.Verdict == scoreboard.VerdictAccepted {
				out.solved = true
				out.acceptTime = sub.Time
			} else {
				out.wrong++
			}
			continue
		}
		// frozen wrong attempts are discarded on reveal; frozen
		// accepts resolve to the earliest timestamp
		if sub.Verdict == scoreboard.VerdictAccepted {
			if frozenAccept == -1 || sub.Time < frozenAccept {
				frozenAccept = sub.Time
			}
		}
	}
	if !out.solved && frozenAccept >= 0 {
		out.solved = true
		out.acceptTime = frozenAccept
	}
	return out
}

func TestScrollMatchesDirectReplayOfSubmissionLog(t *testing.T) {
	teams := []string{"ant", "bee", "cat", "dog", "eel"}
	problemCount := 4
	problems := []string{"A", "B", "C", "D"}
	statuses := []string{"Accepted", "Wrong_Answer", "Runtime_Error", "Time_Limit_Exceed"}

	srvc := setupContest(t, teams, problemCount)

	rng := rand.New(rand.NewSource(42))
	now := 1
	feed := func(n int) {
		for i := 0; i < n; i++ {
			now += rng.Intn(3)
			submit(t, srvc,
				problems[rng.Intn(len(problems))],
				teams[rng.Intn(len(teams))],
				statuses[rng.Intn(len(statuses))],
				now)
		}
	}

	feed(120)
	require.NoError(t, srvc.Freeze())
	feed(80)

	res, err := srvc.Scroll()
	require.NoError(t, err)

	subms := srvc.Submissions()
	for _, team := range teams {
		row := rowOf(t, res.Final, team)
		wantSolved := 0
		wantPenalty := 0
		for i, problem := range problems {
			ref := referenceReplay(subms, team, problem)
			if ref.solved {
				wantSolved++
				wantPenalty += 20*ref.wrong + ref.acceptTime
				assert.Equal(t, scoreboard.CellSolved, row.Cells[i].Kind,
					"team %s problem %s", team, problem)
				assert.Equal(t, ref.wrong, row.Cells[i].WrongBefore,
					"team %s problem %s", team, problem)
			} else {
				assert.NotEqual(t, scoreboard.CellSolved, row.Cells[i].Kind,
					"team %s problem %s", team, problem)
			}
		}
		assert.Equal(t, wantSolved, row.Solved, "team %s", team)
		assert.Equal(t, wantPenalty, row.Penalty, "team %s", team)
	}
}
