package http

import (
	"net/http"

	"github.com/programme-lv/scoreboard/logger"
)

func (httpserver *HttpServer) flushScoreboard(w http.ResponseWriter, r *http.Request) {
	snap := httpserver.boardSrvc.Flush()
	writeJsonSuccessResponse(w, mapSnapshot(snap, httpserver.boardSrvc.Frozen()))
}

func (httpserver *HttpServer) freezeScoreboard(w http.ResponseWriter, r *http.Request) {
	if err := httpserver.boardSrvc.Freeze(); err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}
	writeJsonSuccessResponse(w, map[string]bool{"frozen": true})
}

func (httpserver *HttpServer) scrollScoreboard(w http.ResponseWriter, r *http.Request) {
	res, err := httpserver.boardSrvc.Scroll()
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}
	writeJsonSuccessResponse(w, scrollResponse{
		Before:  mapSnapshot(res.Before, true),
		Changes: mapChanges(res.Changes),
		Final:   mapSnapshot(res.Final, false),
	})
}
