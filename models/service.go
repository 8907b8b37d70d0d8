package models

import (
	"sync"
	"time"
)

type Service interface {
	Start()
	Health() ServiceHealth
	Stop()
}

type Runner interface {
	Run()
	Status() RunnerStatus
}

type RunnerStatus struct {
	RemainingQuota string
	LastEventId    string
}

type ServiceHealth struct {
	Name           string    `bson:"name" json:"name"`
	LastSyncTime   time.Time `bson:"last_sync_time" json:"last_sync_time"`
	NextSyncTime   time.Time `bson:"next_sync_time" json:"next_sync_time"`
	RemainingQuota string    `bson:"remaining_quota" json:"remaining_quota"`
	LastEventId    string    `bson:"last_event_id" json:"last_event_id"`
	Healthy        bool      `bson:"healthy" json:"healthy"`
}

type EmptyService struct {
	wg *sync.WaitGroup
}

func (e *EmptyService) Start() {}

func (e *EmptyService) Stop() {
	e.wg.Done()
}

const EmptyServiceName = "empty"

func (e *EmptyService) Health() ServiceHealth {
	return ServiceHealth{
		Name:         EmptyServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func NewEmptyService(wg *sync.WaitGroup) *EmptyService {
	return &EmptyService{
		wg: wg,
	}
}
