package http

import (
	"encoding/json"
	"net/http"

	"github.com/programme-lv/scoreboard/logger"
)

func (httpserver *HttpServer) registerTeam(w http.ResponseWriter, r *http.Request) {
	type registerTeamRequest struct {
		Name string `json:"name"`
	}

	var request registerTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if request.Name == "" {
		writeJsonErrorResponse(w, "team name must not be empty",
			http.StatusBadRequest, "empty_team_name")
		return
	}

	if err := httpserver.boardSrvc.RegisterTeam(request.Name); err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, map[string]string{"name": request.Name})
}
