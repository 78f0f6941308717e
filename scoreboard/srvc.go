package scoreboard

import (
	"log/slog"
	"sync"
)

// ScoreboardSrvc is one contest's scoreboard engine. It owns the team
// registry, the submission log and the freeze/scroll state machine.
// All operations serialize behind a single mutex; internally each
// operation runs to completion as one atomic unit.
type ScoreboardSrvc struct {
	mu     sync.Mutex
	logger *slog.Logger

	started     bool
	frozen      bool
	durationMin int
	problems    []string // "A", "B", ... assigned at contest start

	teams    map[string]*team
	regOrder []string // registration order, the pre-flush ranking

	ranked []string // last explicitly computed ranking order

	subms []Submission // append-only log
}

func NewScoreboard() *ScoreboardSrvc {
	return &ScoreboardSrvc{
		logger: slog.Default().With("service", "scoreboard"),
		teams:  make(map[string]*team),
	}
}

// RegisterTeam adds a team before the contest starts. Registration
// order is the board's order until the first ranking computation.
func (s *ScoreboardSrvc) RegisterTeam(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return newErrCompetitionStarted()
	}
	if _, ok := s.teams[name]; ok {
		return newErrDuplicateTeam()
	}

	s.teams[name] = &team{name: name}
	s.regOrder = append(s.regOrder, name)
	s.ranked = append(s.ranked, name)
	s.logger.Debug("team registered", "team", name)
	return nil
}

// StartContest stamps every registered team with per-problem slots for
// problems A..(A+problemCount-1) and closes registration. The duration
// is informational only, submissions past it are accepted as given.
func (s *ScoreboardSrvc) StartContest(durationMin int, problemCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return newErrCompetitionStarted()
	}

	s.durationMin = durationMin
	s.problems = make([]string, problemCount)
	for i := 0; i < problemCount; i++ {
		s.problems[i] = string(rune('A' + i))
	}

	for _, t := range s.teams {
		t.problems = make([]problemState, problemCount)
	}

	s.started = true
	s.logger.Info("contest started",
		"duration_min", durationMin, "problems", problemCount)
	return nil
}

// Freeze switches the board into frozen mode: from now on submissions
// on unsolved problems are parked instead of applied.
func (s *ScoreboardSrvc) Freeze() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return newErrAlreadyFrozen()
	}
	s.frozen = true
	s.logger.Info("scoreboard frozen")
	return nil
}

// Frozen reports whether the board is currently frozen.
func (s *ScoreboardSrvc) Frozen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frozen
}

// Problems returns the problem names assigned at contest start.
func (s *ScoreboardSrvc) Problems() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.problems))
	copy(out, s.problems)
	return out
}

// Submissions returns a copy of the full submission log, oldest first.
func (s *ScoreboardSrvc) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Submission, len(s.subms))
	copy(out, s.subms)
	return out
}

func (s *ScoreboardSrvc) problemIdx(problem string) int {
	for i, p := range s.problems {
		if p == problem {
			return i
		}
	}
	return -1
}
