package http

import (
	"encoding/json"
	"net/http"

	"github.com/programme-lv/scoreboard/logger"
)

func (httpserver *HttpServer) startContest(w http.ResponseWriter, r *http.Request) {
	type startContestRequest struct {
		DurationMinutes int `json:"duration_minutes"`
		ProblemCount    int `json:"problem_count"`
	}

	var request startContestRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if request.ProblemCount < 1 || request.ProblemCount > 26 {
		writeJsonErrorResponse(w, "problem count must be between 1 and 26",
			http.StatusBadRequest, "invalid_problem_count")
		return
	}
	if request.DurationMinutes < 1 {
		writeJsonErrorResponse(w, "duration must be positive",
			http.StatusBadRequest, "invalid_duration")
		return
	}

	err := httpserver.boardSrvc.StartContest(request.DurationMinutes, request.ProblemCount)
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, map[string]any{
		"duration_minutes": request.DurationMinutes,
		"problems":         httpserver.boardSrvc.Problems(),
	})
}
