package app

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zkmint-labs/minting-backend/models"
)

// RunnerService drives a Runner on a fixed interval. A tick fully
// settles before the stop channel is drained, so an in-flight run is
// never abandoned mid-way.
type RunnerService struct {
	name     string
	runner   models.Runner
	interval time.Duration

	wg       *sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once

	healthMu     sync.RWMutex
	lastSyncTime time.Time
}

func (s *RunnerService) Start() {
	log.Info("[", s.name, "] Starting service")
	stop := false
	for !stop {
		log.Debug("[", s.name, "] Starting run")
		s.healthMu.Lock()
		s.lastSyncTime = time.Now()
		s.healthMu.Unlock()

		s.runner.Run()

		log.Debug("[", s.name, "] Finished run, sleeping for ", s.interval)
		select {
		case <-s.stop:
			stop = true
			log.Info("[", s.name, "] Stopped service")
		case <-time.After(s.interval):
		}
	}
	s.wg.Done()
}

func (s *RunnerService) Health() models.ServiceHealth {
	s.healthMu.RLock()
	lastSyncTime := s.lastSyncTime
	s.healthMu.RUnlock()

	status := s.runner.Status()

	return models.ServiceHealth{
		Name:           s.name,
		LastSyncTime:   lastSyncTime,
		NextSyncTime:   lastSyncTime.Add(s.interval),
		RemainingQuota: status.RemainingQuota,
		LastEventId:    status.LastEventId,
		Healthy:        true,
	}
}

func (s *RunnerService) Stop() {
	log.Debug("[", s.name, "] Stopping service")
	s.stopOnce.Do(func() { close(s.stop) })
}

func NewRunnerService(name string, runner models.Runner, wg *sync.WaitGroup, interval time.Duration) *RunnerService {
	if name == "" || runner == nil || interval == 0 {
		log.Error("[RUNNER] Invalid parameters for runner service")
		return nil
	}
	return &RunnerService{
		name:     name,
		runner:   runner,
		interval: interval,
		wg:       wg,
		stop:     make(chan struct{}),
	}
}
