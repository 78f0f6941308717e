package scoreboard_test

import (
	"errors"
	"testing"

	"github.com/programme-lv/scoreboard/scoreboard"
	"github.com/programme-lv/scoreboard/srvcerror"
	"github.com/stretchr/testify/require"
)

// setupContest registers the given teams and starts a 300 minute
// contest with the given number of problems.
func setupContest(t *testing.T, teams []string, problemCount int) *scoreboard.ScoreboardSrvc {
	t.Helper()
	srvc := scoreboard.NewScoreboard()
	for _, name := range teams {
		require.NoError(t, srvc.RegisterTeam(name))
	}
	require.NoError(t, srvc.StartContest(300, problemCount))
	return srvc
}

func submit(t *testing.T, srvc *scoreboard.ScoreboardSrvc, problem, team, status string, at int) {
	t.Helper()
	require.NoError(t, srvc.Submit(problem, team, scoreboard.ParseVerdict(status), at))
}

// rowOf finds a team's row in a snapshot.
func rowOf(t *testing.T, snap scoreboard.Snapshot, team string) scoreboard.TeamStanding {
	t.Helper()
	for _, row := range snap.Rows {
		if row.Team == team {
			return row
		}
	}
	t.Fatalf("team %s not found in snapshot", team)
	return scoreboard.TeamStanding{}
}

// order returns the team names of a snapshot in ranking order.
func order(snap scoreboard.Snapshot) []string {
	names := make([]string, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		names = append(names, row.Team)
	}
	return names
}

func errCodeOf(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.True(t, errors.As(err, &srvcErr), "expected a service error, got %v", err)
	return srvcErr.ErrorCode()
}
