package app

import (
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zkmint-labs/minting-backend/models"
	"go.mongodb.org/mongo-driver/bson"
)

const HealthServiceName = "health"

type HealthService struct {
	wg       *sync.WaitGroup
	hostname string
	interval time.Duration
	services []models.Service
	stop     chan struct{}
	stopOnce sync.Once

	lastSyncTime time.Time
}

func (h *HealthService) Stop() {
	log.Debug("[HEALTH] Stopping service")
	h.stopOnce.Do(func() { close(h.stop) })
}

func (h *HealthService) ServiceHealths() []models.ServiceHealth {
	var serviceHealths []models.ServiceHealth
	for _, service := range h.services {
		health := service.Health()
		if health.Name == models.EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

func (h *HealthService) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	filter := bson.M{"hostname": h.hostname}
	onInsert := bson.M{
		"hostname":   h.hostname,
		"created_at": time.Now(),
	}
	update := bson.M{
		"$set": bson.M{
			"environment":     Config.MintAPI.Environment,
			"service_healths": h.ServiceHealths(),
			"updated_at":      time.Now(),
		},
		"$setOnInsert": onInsert,
	}

	err := DB.UpsertOne(models.CollectionHealthChecks, filter, update)
	if err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Info("[HEALTH] Posted health")
	return true
}

func (h *HealthService) FindLastHealth() (models.Health, error) {
	var health models.Health
	filter := bson.M{"hostname": h.hostname}
	err := DB.FindOne(models.CollectionHealthChecks, filter, &health)
	return health, err
}

// FindLastHealth returns the last health document posted by this host.
func FindLastHealth() (models.Health, error) {
	var health models.Health
	hostname, err := os.Hostname()
	if err != nil {
		return health, err
	}
	err = DB.FindOne(models.CollectionHealthChecks, bson.M{"hostname": hostname}, &health)
	return health, err
}

func (h *HealthService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         HealthServiceName,
		LastSyncTime: h.lastSyncTime,
		NextSyncTime: h.lastSyncTime.Add(h.interval),
		Healthy:      true,
	}
}

func (h *HealthService) Start() {
	log.Info("[HEALTH] Starting service")
	stop := false
	for !stop {
		log.Debug("[HEALTH] Starting health sync")
		h.lastSyncTime = time.Now()

		h.PostHealth()

		log.Debug("[HEALTH] Finished health sync, sleeping for ", h.interval)
		select {
		case <-h.stop:
			stop = true
			log.Info("[HEALTH] Stopped service")
		case <-time.After(h.interval):
		}
	}
	h.wg.Done()
}

func NewHealthCheck(wg *sync.WaitGroup, services []models.Service) *HealthService {
	log.Debug("[HEALTH] Initializing health service")

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	h := &HealthService{
		wg:       wg,
		hostname: hostname,
		interval: time.Duration(Config.HealthCheck.IntervalMillis) * time.Millisecond,
		services: services,
		stop:     make(chan struct{}),
	}

	log.Info("[HEALTH] Initialized health service")
	return h
}
