package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/programme-lv/scoreboard/logger"
	"github.com/programme-lv/scoreboard/scoreboard"
)

// querySubmission returns the newest submission of a team matching the
// optional problem and status query parameters. An empty result is a
// success with null data, not an error.
func (httpserver *HttpServer) querySubmission(w http.ResponseWriter, r *http.Request) {
	teamName := chi.URLParam(r, "name")

	filter := scoreboard.SubmissionFilter{}
	if problem := r.URL.Query().Get("problem"); problem != "" && problem != "ALL" {
		filter.Problem = &problem
	}
	if status := r.URL.Query().Get("status"); status != "" && status != "ALL" {
		v := scoreboard.ParseVerdict(status)
		filter.Verdict = &v
	}

	sub, err := httpserver.boardSrvc.QuerySubmission(teamName, filter)
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	if sub == nil {
		writeJsonSuccessResponse(w, nil)
		return
	}
	writeJsonSuccessResponse(w, mapSubmission(*sub))
}
