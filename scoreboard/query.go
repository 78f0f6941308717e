package scoreboard

// QueryRank returns a team's 1-based position in the last computed
// ranking order. While the board is frozen the cached order may lag
// behind reality; that staleness is reported to the caller as a flag,
// not an error.
func (s *ScoreboardSrvc) QueryRank(teamName string) (rank int, stale bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamName]; !ok {
		return 0, false, newErrTeamNotFound()
	}

	for i, name := range s.ranked {
		if name == teamName {
			return i + 1, s.frozen, nil
		}
	}
	// unreachable: ranked is always a permutation of the registry
	return 0, s.frozen, nil
}

// QuerySubmission returns the newest submission of a team matching the
// filter, or nil if the log holds no match. A missing match is not an
// error.
func (s *ScoreboardSrvc) QuerySubmission(teamName string, filter SubmissionFilter) (*Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamName]; !ok {
		return nil, newErrTeamNotFound()
	}

	for i := len(s.subms) - 1; i >= 0; i-- {
		sub := s.subms[i]
		if sub.Team != teamName {
			continue
		}
		if filter.Problem != nil && sub.Problem != *filter.Problem {
			continue
		}
		if filter.Verdict != nil && sub.Verdict != *filter.Verdict {
			continue
		}
		return &sub, nil
	}
	return nil, nil
}
