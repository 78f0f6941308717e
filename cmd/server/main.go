package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/programme-lv/scoreboard/conf"
	"github.com/programme-lv/scoreboard/contestfile"
	"github.com/programme-lv/scoreboard/export"
	"github.com/programme-lv/scoreboard/http"
	"github.com/programme-lv/scoreboard/s3bucket"
	"github.com/programme-lv/scoreboard/scoreboard"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		panic("Error loading .env file")
	}

	config, err := conf.GetServerConfFromEnv()
	if err != nil {
		slog.Error("failed to read config", "error", err)
		os.Exit(1)
	}

	boardSrvc := scoreboard.NewScoreboard()

	contestName := "contest"
	if config.ContestFilePath != "" {
		contest, err := contestfile.Read(config.ContestFilePath)
		if err != nil {
			slog.Error("failed to read contest file", "path", config.ContestFilePath, "error", err)
			os.Exit(1)
		}
		if err := contest.Setup(boardSrvc); err != nil {
			slog.Error("failed to set up contest", "error", err)
			os.Exit(1)
		}
		if contest.Name != "" {
			contestName = contest.Name
		}
		slog.Info("contest loaded", "name", contestName,
			"teams", len(contest.Teams), "problems", contest.ProblemCount)
	}

	var exporter *export.Exporter
	if config.ResultsS3Bucket != "" {
		bucket, err := s3bucket.NewS3Bucket(config.AwsRegion, config.ResultsS3Bucket)
		if err != nil {
			slog.Error("failed to set up results bucket", "error", err)
			os.Exit(1)
		}
		exporter = export.NewExporter(bucket, contestName)
	}

	httpServer := http.NewHttpServer(
		boardSrvc, exporter,
		config.JwtKey, config.AdminUsername, config.AdminPwdBcrypt)

	log.Printf("Starting server on %s", config.HttpAddress)
	err = httpServer.Start(config.HttpAddress)
	log.Printf("Server stopped with error: %v", err)
}
