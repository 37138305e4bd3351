package main

import (
	"fmt"
	"os"
	"time"

	logger "github.com/sirupsen/logrus"

	"tradequality/cmd/checker"
	"tradequality/src/checks"
	"tradequality/src/database"
	"tradequality/src/pipeline"
	"tradequality/src/repository"
	"tradequality/src/server"
	"tradequality/src/utils"
)

var APP_NAME = os.Getenv("APP_NAME")

func main() {
	dbConfig := database.GetConfig()
	utils.SetupLogger(dbConfig.LogLevel, dbConfig.LogFormat)
	defer handlePanic()

	p := &pipeline.Pipeline{
		Source: pipeline.DatabaseSource{DB: dbConfig, Tables: repository.GetConfig()},
		Rules:  checks.DefaultRules(checker.GetConfig().RuleOptions()),
	}

	server.StartServer(server.GetConfig(), p)
}

func handlePanic() {
	if r := recover(); r != nil {
		logger.WithError(fmt.Errorf("%+v", r)).Error(fmt.Sprintf("Application %s panic", APP_NAME))
	}
	//nolint
	time.Sleep(time.Second * 5)
}
