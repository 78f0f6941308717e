package http

import (
	"encoding/json"
	"net/http"

	"github.com/programme-lv/scoreboard/auth"
)

func (httpserver *HttpServer) authLogin(w http.ResponseWriter, r *http.Request) {
	type loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if request.Username != httpserver.adminUsername ||
		auth.CheckAdminPassword(httpserver.adminPwdBcrypt, request.Password) != nil {
		writeJsonErrorResponse(w, "invalid username or password",
			http.StatusUnauthorized, "invalid_credentials")
		return
	}

	token, err := auth.GenerateAdminJWT(request.Username, httpserver.jwtKey)
	if err != nil {
		writeJsonInternalServerError(w)
		return
	}

	writeJsonSuccessResponse(w, map[string]string{"token": token})
}
