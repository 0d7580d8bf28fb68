package env

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	Env        string
	ServerPort string
)

func loadServerEnv() {
	Env = os.Getenv("ENV")
	if Env == "" {
		Env = "local"
	}

	ServerPort = os.Getenv("SERVER_PORT")
	if ServerPort == "" {
		ServerPort = "3000"
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Server environment %s on port %s", Env, ServerPort),
	)
}

func IsLocal() bool {
	return Env == "local"
}
