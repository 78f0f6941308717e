package scoreboard

import (
	"net/http"

	"github.com/programme-lv/scoreboard/srvcerror"
)

const ErrCodeDuplicateTeam = "duplicate_team"

func newErrDuplicateTeam() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDuplicateTeam,
		"a team with this name is already registered",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeCompetitionStarted = "competition_started"

func newErrCompetitionStarted() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCompetitionStarted,
		"the competition has already started",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeAlreadyFrozen = "already_frozen"

func newErrAlreadyFrozen() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAlreadyFrozen,
		"the scoreboard is already frozen",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeNotFrozen = "not_frozen"

func newErrNotFrozen() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotFrozen,
		"the scoreboard has not been frozen",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeTeamNotFound = "team_not_found"

func newErrTeamNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamNotFound,
		"cannot find the team",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeProblemNotFound = "problem_not_found"

func newErrProblemNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotFound,
		"cannot find the problem",
	).SetHttpStatusCode(http.StatusNotFound)
}
