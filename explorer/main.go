package main

import (
	"fmt"
	"os"

	"bikeshare/explorer/config"
	"bikeshare/utils"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	logLevelEnv   = "LOG_LEVEL"
	configPathEnv = "EXPLORER_CONFIG"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err)
	}

	configPath := os.Getenv(configPathEnv)
	if configPath == "" {
		configPath = config.DefaultConfigFilepath
	}

	explorerConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("error loading explorer config: %s", err)
	}

	logLevel := os.Getenv(logLevelEnv)
	if logLevel == "" {
		logLevel = explorerConfig.LogLevel
	}
	if err := InitLogger(logLevel); err != nil {
		log.Fatalf("%s", err)
	}

	signalChannel := utils.GetSignalChannel()
	go func() {
		sig := <-signalChannel
		log.Debugf("signal received: %s", sig)
		fmt.Println()
		fmt.Println(farewell)
		os.Exit(0)
	}()

	explorer := NewExplorer(explorerConfig, os.Stdin, os.Stdout)
	if err := explorer.Run(); err != nil {
		log.Fatalf("%s", err)
	}
}
