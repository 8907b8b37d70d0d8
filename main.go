package main

import (
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/zkmint-labs/minting-backend/app"
	"github.com/zkmint-labs/minting-backend/models"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	var configFile string
	var envFile string
	flag.StringVar(&configFile, "config", "", "path to yaml config file")
	flag.StringVar(&envFile, "env", "", "path to env file")
	flag.Parse()

	if configFile == "" && envFile == "" {
		log.Fatal("Please provide a config file or an env file")
	}
	absConfigFile := ""
	if configFile != "" {
		absConfigFile, _ = filepath.Abs(configFile)
	}
	absEnvFile := ""
	if envFile != "" {
		absEnvFile, _ = filepath.Abs(envFile)
	}

	app.InitConfig(absConfigFile, absEnvFile)
	app.InitLogger()
	app.InitDB()

	var wg sync.WaitGroup
	services := CreateServices(&wg)

	wg.Add(1)
	healthService := app.NewHealthCheck(&wg, services)
	services = append(services, healthService)

	if app.Config.HealthCheck.ReadLastHealth {
		if lastHealth, err := app.FindLastHealth(); err == nil {
			log.Info("[MAIN] Last health posted at: ", lastHealth.UpdatedAt)
		}
	}

	for _, service := range services {
		go service.Start()
	}
	log.Info("[MAIN] Started all services")

	gracefulStop := make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-gracefulStop

	log.Debug("[MAIN] Got signal: ", sig, ", shutting down")
	stopServices(services)
	wg.Wait()
	app.DB.Disconnect()
	log.Info("[MAIN] Stopped all services")
}

func stopServices(services []models.Service) {
	for _, service := range services {
		service.Stop()
	}
}
