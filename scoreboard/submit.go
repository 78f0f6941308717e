package scoreboard

import "github.com/google/uuid"

// Submit applies one submission to the board. The freeze status is
// evaluated at the moment the submission is applied, never
// retroactively, and the order of checks below is load-bearing:
//
//  1. frozen and unsolved: park the submission as frozen-pending,
//     remember accepted ones for the scroll reveal;
//  2. already solved: only the total submission counter moves;
//  3. otherwise: accepted marks the problem solved, anything else is a
//     wrong attempt.
func (s *ScoreboardSrvc) Submit(problem string, teamName string, verdict Verdict, atMin int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[teamName]
	if !ok {
		return newErrTeamNotFound()
	}
	idx := s.problemIdx(problem)
	if idx < 0 {
		return newErrProblemNotFound()
	}

	s.subms = append(s.subms, Submission{
		UUID:           uuid.New(),
		Team:           teamName,
		Problem:        problem,
		Verdict:        verdict,
		Time:           atMin,
		ReceivedFrozen: s.frozen,
	})

	ps := &t.problems[idx]
	ps.totalSubmissions++

	switch {
	case s.frozen && !ps.solved:
		ps.frozenPending++
		if verdict == VerdictAccepted {
			ps.inFrozenSet = true
		}
	case ps.solved:
		// informational only, solved state never reverts
	case verdict == VerdictAccepted:
		t.markSolved(idx, atMin)
	default:
		ps.wrongCount++
	}

	return nil
}
