package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/programme-lv/scoreboard/logger"
)

func (httpserver *HttpServer) queryRank(w http.ResponseWriter, r *http.Request) {
	teamName := chi.URLParam(r, "name")

	rank, stale, err := httpserver.boardSrvc.QueryRank(teamName)
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, map[string]any{
		"team":  teamName,
		"rank":  rank,
		"stale": stale,
	})
}
