package conf

import (
	"fmt"
	"os"
)

// ServerConf is everything the scoreboard server reads from the
// environment. Secrets (JWT key, admin password hash) come from env
// vars, usually loaded from a .env file by the caller.
type ServerConf struct {
	HttpAddress    string
	JwtKey         []byte
	AdminUsername  string
	AdminPwdBcrypt []byte

	ContestFilePath string // optional, preloads teams and starts the contest
	ResultsS3Bucket string // optional, enables result export
	AwsRegion       string
}

func GetServerConfFromEnv() (*ServerConf, error) {
	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_KEY is not set")
	}
	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME is not set")
	}
	adminPwdBcrypt := os.Getenv("ADMIN_PASSWORD_BCRYPT")
	if adminPwdBcrypt == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_BCRYPT is not set")
	}

	address := os.Getenv("HTTP_ADDRESS")
	if address == "" {
		address = ":8080"
	}
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "eu-central-1"
	}

	return &ServerConf{
		HttpAddress:     address,
		JwtKey:          []byte(jwtKey),
		AdminUsername:   adminUsername,
		AdminPwdBcrypt:  []byte(adminPwdBcrypt),
		ContestFilePath: os.Getenv("CONTEST_FILE"),
		ResultsS3Bucket: os.Getenv("RESULTS_S3_BUCKET"),
		AwsRegion:       region,
	}, nil
}
