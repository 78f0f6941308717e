package http

import (
	"net/http"

	"github.com/programme-lv/scoreboard/logger"
)

// exportResults publishes the current standings and the full submission
// log to the configured object store.
func (httpserver *HttpServer) exportResults(w http.ResponseWriter, r *http.Request) {
	if httpserver.exporter == nil {
		writeJsonErrorResponse(w, "result export is not configured",
			http.StatusNotImplemented, "export_not_configured")
		return
	}

	ctx := logger.WithContest(r.Context(), httpserver.exporter.Prefix())

	standingsURL, err := httpserver.exporter.ExportStandings(httpserver.boardSrvc.Flush())
	if err != nil {
		logger.FromContext(ctx).Error("failed to export standings", "error", err)
		writeJsonInternalServerError(w)
		return
	}

	logURL, err := httpserver.exporter.ExportSubmissionLog(httpserver.boardSrvc.Submissions())
	if err != nil {
		logger.FromContext(ctx).Error("failed to export submission log", "error", err)
		writeJsonInternalServerError(w)
		return
	}

	writeJsonSuccessResponse(w, map[string]string{
		"standings_url":      standingsURL,
		"submission_log_url": logURL,
	})
}
