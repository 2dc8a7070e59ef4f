package main

import (
	"strconv"

	"github.com/joho/godotenv"

	"github.com/taskboard/taskboard/config"
	v1 "github.com/taskboard/taskboard/internal/api/v1/routes"
	"github.com/taskboard/taskboard/internal/app"
	"github.com/taskboard/taskboard/internal/db"
	"github.com/taskboard/taskboard/internal/logger"
)

func main() {
	logger.Initialize()

	// .env is optional; env vars win either way
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded")
	}

	dbPort, err := strconv.Atoi(config.GetEnv("DB_PORT", "5432"))
	if err != nil {
		logger.Fatal("invalid DB_PORT: ", err)
	}

	database, err := db.New(db.Options{
		Host:     config.GetEnv("DB_HOST", ""),
		User:     config.GetEnv("DB_USER", ""),
		Password: config.GetEnv("DB_PASSWORD", ""),
		DBName:   config.GetEnv("DB_NAME", ""),
		Port:     dbPort,
	})
	if err != nil {
		logger.Fatal("failed to connect to database: ", err)
	}

	server := app.New(database)

	port := config.GetEnv("PORT", v1.DefaultPort)
	logger.Infof("listening on :%s", port)
	logger.Fatal(server.Listen(":" + port))
}
