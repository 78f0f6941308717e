package scoreboard

import "slices"

// compareTeams is the ranking order: negative means a ranks ahead of b.
// Four levels, in priority order:
//
//  1. more solved problems;
//  2. less penalty time;
//  3. descending solve-time lists compared position by position, the
//     smaller value at the first difference wins;
//  4. ascending team name, which makes the order strict.
func compareTeams(a, b *team) int {
	if a.solved != b.solved {
		if a.solved > b.solved {
			return -1
		}
		return 1
	}
	if a.penalty != b.penalty {
		if a.penalty < b.penalty {
			return -1
		}
		return 1
	}

	timesA := a.solveTimesDesc()
	timesB := b.solveTimesDesc()
	n := len(timesA)
	if len(timesB) < n {
		n = len(timesB)
	}
	for i := 0; i < n; i++ {
		if timesA[i] != timesB[i] {
			if timesA[i] < timesB[i] {
				return -1
			}
			return 1
		}
	}

	if a.name < b.name {
		return -1
	}
	if a.name > b.name {
		return 1
	}
	return 0
}

// updateRankingLocked recomputes the cached ranking order with a full
// stable resort. Ranking is never updated incrementally.
func (s *ScoreboardSrvc) updateRankingLocked() {
	slices.SortStableFunc(s.ranked, func(x, y string) int {
		return compareTeams(s.teams[x], s.teams[y])
	})
}

// snapshotLocked renders the current board into an immutable Snapshot,
// rows in the last computed ranking order.
func (s *ScoreboardSrvc) snapshotLocked() Snapshot {
	problems := make([]string, len(s.problems))
	copy(problems, s.problems)

	rows := make([]TeamStanding, 0, len(s.ranked))
	for i, name := range s.ranked {
		t := s.teams[name]
		cells := make([]ProblemCell, len(t.problems))
		for j := range t.problems {
			ps := &t.problems[j]
			switch {
			case ps.solved:
				cells[j] = ProblemCell{Kind: CellSolved, WrongBefore: ps.wrongCount}
			case ps.inFrozenSet:
				cells[j] = ProblemCell{
					Kind:          CellFrozen,
					WrongBefore:   ps.wrongCount,
					FrozenPending: ps.frozenPending,
				}
			default:
				cells[j] = ProblemCell{Kind: CellUntried, WrongBefore: ps.wrongCount}
			}
		}
		rows = append(rows, TeamStanding{
			Team:    name,
			Rank:    i + 1,
			Solved:  t.solved,
			Penalty: t.penalty,
			Cells:   cells,
		})
	}
	return Snapshot{Problems: problems, Rows: rows}
}

// Flush recomputes the ranking order and returns the full scoreboard.
func (s *ScoreboardSrvc) Flush() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateRankingLocked()
	return s.snapshotLocked()
}
