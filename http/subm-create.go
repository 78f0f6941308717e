package http

import (
	"encoding/json"
	"net/http"

	"github.com/programme-lv/scoreboard/logger"
	"github.com/programme-lv/scoreboard/scoreboard"
)

func (httpserver *HttpServer) createSubmission(w http.ResponseWriter, r *http.Request) {
	type createSubmissionRequest struct {
		Problem string `json:"problem"`
		Team    string `json:"team"`
		Status  string `json:"status"`
		Time    int    `json:"time"`
	}

	var request createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if request.Time < 0 {
		writeJsonErrorResponse(w, "submission time must not be negative",
			http.StatusBadRequest, "invalid_submission_time")
		return
	}

	// unknown status tokens deliberately fall back to Wrong_Answer
	verdict := scoreboard.ParseVerdict(request.Status)

	err := httpserver.boardSrvc.Submit(request.Problem, request.Team, verdict, request.Time)
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
