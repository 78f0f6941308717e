package scoreboard

import "slices"

// Scroll unfreezes the board by revealing frozen results one problem at
// a time: always the lowest-ranked team that still has a frozen result,
// and among its frozen problems the alphabetically smallest one. The
// ranking is recomputed after every reveal that changes solved state,
// and a RankingChange is recorded whenever the reveal changed the
// revealed team's immediate predecessor. The whole scroll runs as one
// atomic operation.
func (s *ScoreboardSrvc) Scroll() (*ScrollResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.frozen {
		return nil, newErrNotFrozen()
	}

	s.updateRankingLocked()
	res := &ScrollResult{Before: s.snapshotLocked()}

	for {
		var revealed *team
		idx := -1
		for i := len(s.ranked) - 1; i >= 0; i-- {
			cand := s.teams[s.ranked[i]]
			if j := cand.smallestFrozenIdx(); j >= 0 {
				revealed, idx = cand, j
				break
			}
		}
		if revealed == nil {
			break
		}

		ps := &revealed.problems[idx]
		ps.inFrozenSet = false

		// Earliest accepted submission received while frozen; equal
		// timestamps resolve to the earliest log position because the
		// log is scanned oldest first.
		acceptTime := -1
		for i := range s.subms {
			sub := &s.subms[i]
			if sub.Team != revealed.name || sub.Problem != s.problems[idx] {
				continue
			}
			if sub.Verdict != VerdictAccepted || !sub.ReceivedFrozen {
				continue
			}
			if acceptTime == -1 || sub.Time < acceptTime {
				acceptTime = sub.Time
			}
		}

		if acceptTime >= 0 {
			prev := slices.Clone(s.ranked)
			revealed.markSolved(idx, acceptTime)
			s.updateRankingLocked()
			if !slices.Equal(prev, s.ranked) {
				pos := slices.Index(s.ranked, revealed.name)
				if pos > 0 {
					res.Changes = append(res.Changes, RankingChange{
						Team:      revealed.name,
						Displaced: s.ranked[pos-1],
						Solved:    revealed.solved,
						Penalty:   revealed.penalty,
					})
				}
			}
		}

		// Win or lose, the frozen contribution of this problem is fully
		// consumed. Pending wrong attempts are discarded, they never
		// convert to permanent wrong counts.
		ps.frozenPending = 0
	}

	// Problems that only saw non-accepted submissions during the freeze
	// were never revealed; drop their pending counters too.
	for _, t := range s.teams {
		for j := range t.problems {
			t.problems[j].frozenPending = 0
		}
	}

	s.frozen = false
	s.logger.Info("scoreboard scrolled", "ranking_changes", len(res.Changes))

	res.Final = s.snapshotLocked()
	return res, nil
}
