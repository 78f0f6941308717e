package scoreboard

import "sort"

// problemState is one team's bookkeeping for one problem. The per-team
// problem slice is stamped at contest start and indexed by problem
// index, so iteration order is the problem order itself.
type problemState struct {
	solved           bool
	firstAcceptTime  int // valid only if solved
	wrongCount       int // wrong attempts strictly before the first acceptance
	totalSubmissions int
	frozenPending    int  // submissions parked while frozen and unsolved
	inFrozenSet      bool // has a frozen accepted result awaiting reveal
}

type team struct {
	name     string
	solved   int
	penalty  int
	problems []problemState
}

// problemPenalty is the penalty contribution of one solved problem:
// 20 minutes per wrong attempt before the first acceptance, plus the
// acceptance timestamp.
func (t *team) problemPenalty(idx int) int {
	ps := &t.problems[idx]
	if !ps.solved {
		return 0
	}
	return 20*ps.wrongCount + ps.firstAcceptTime
}

// solveTimesDesc returns the acceptance timestamps of all solved
// problems, sorted descending. Used by the third ranking tie-break.
func (t *team) solveTimesDesc() []int {
	var times []int
	for i := range t.problems {
		if t.problems[i].solved {
			times = append(times, t.problems[i].firstAcceptTime)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(times)))
	return times
}

// markSolved applies the full solved-state transition for one problem.
// Callers guarantee the problem is not yet solved.
func (t *team) markSolved(idx int, acceptTime int) {
	ps := &t.problems[idx]
	ps.solved = true
	ps.firstAcceptTime = acceptTime
	t.solved++
	t.penalty += t.problemPenalty(idx)
}

// smallestFrozenIdx returns the lowest problem index still in the frozen
// set, or -1 if the set is empty. Problem names are assigned in index
// order, so the lowest index is the alphabetically smallest problem.
func (t *team) smallestFrozenIdx() int {
	for i := range t.problems {
		if t.problems[i].inFrozenSet {
			return i
		}
	}
	return -1
}
