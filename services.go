package main

import (
	"sync"

	"github.com/zkmint-labs/minting-backend/mint"
	"github.com/zkmint-labs/minting-backend/models"
	"github.com/zkmint-labs/minting-backend/webhook"
)

type ServiceFactory func(*sync.WaitGroup) models.Service

func GetServiceFactories() map[string]ServiceFactory {
	return map[string]ServiceFactory{
		mint.MintSubmitterName:      mint.NewSubmitter,
		mint.MintSweeperName:        mint.NewSweeper,
		webhook.WebhookListenerName: webhook.NewServer,
	}
}

func CreateServices(wg *sync.WaitGroup) []models.Service {
	factories := GetServiceFactories()
	services := make([]models.Service, 0, len(factories))
	for _, factory := range factories {
		wg.Add(1)
		services = append(services, factory(wg))
	}
	return services
}
