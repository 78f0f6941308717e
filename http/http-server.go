package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/programme-lv/scoreboard/auth"
	"github.com/programme-lv/scoreboard/export"
	mylogger "github.com/programme-lv/scoreboard/logger"
	"github.com/programme-lv/scoreboard/scoreboard"
)

type HttpServer struct {
	boardSrvc *scoreboard.ScoreboardSrvc
	exporter  *export.Exporter // nil disables the export endpoint

	jwtKey         []byte
	adminUsername  string
	adminPwdBcrypt []byte

	router *chi.Mux
}

func NewHttpServer(
	boardSrvc *scoreboard.ScoreboardSrvc,
	exporter *export.Exporter,
	jwtKey []byte,
	adminUsername string,
	adminPwdBcrypt []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("scoreboard", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := mylogger.WithLogger(r.Context(), logger.Logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		boardSrvc:      boardSrvc,
		exporter:       exporter,
		jwtKey:         jwtKey,
		adminUsername:  adminUsername,
		adminPwdBcrypt: adminPwdBcrypt,
		router:         router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Router() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/auth/login", httpserver.authLogin)
	r.Post("/teams", httpserver.registerTeam)
	r.Post("/contest/start", httpserver.requireAdmin(httpserver.startContest))
	r.Post("/submissions", httpserver.createSubmission)
	r.Get("/scoreboard", httpserver.flushScoreboard)
	r.Post("/scoreboard/freeze", httpserver.requireAdmin(httpserver.freezeScoreboard))
	r.Post("/scoreboard/scroll", httpserver.requireAdmin(httpserver.scrollScoreboard))
	r.Get("/teams/{name}/rank", httpserver.queryRank)
	r.Get("/teams/{name}/submissions/latest", httpserver.querySubmission)
	r.Post("/contest/export", httpserver.requireAdmin(httpserver.exportResults))
}

// requireAdmin rejects requests whose JWT claims lack the admin flag.
func (httpserver *HttpServer) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFromContext(r.Context())
		if claims == nil {
			writeJsonErrorResponse(w, "authentication required",
				http.StatusUnauthorized, "unauthenticated")
			return
		}
		if !claims.Admin {
			writeJsonErrorResponse(w, "admin privileges required",
				http.StatusForbidden, "forbidden")
			return
		}
		next(w, r)
	}
}
