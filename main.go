package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/chart-csv/cmd/batch"
	"fjacquet/chart-csv/cmd/build"
	"fjacquet/chart-csv/cmd/preview"
	"fjacquet/chart-csv/cmd/root"
	"fjacquet/chart-csv/cmd/themes"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Environment first, so the log level below can come from .env
	loadEnvSilently()
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(build.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(preview.Cmd)
	root.Cmd.AddCommand(themes.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the level of the command logger before the
// configuration is read.
func configureLogLevelDirectly() {
	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv("CHART_LOG_LEVEL")))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	root.Log.SetLevel(level)
	root.Log.SetOutput(os.Stderr)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
