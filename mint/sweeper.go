package mint

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zkmint-labs/minting-backend/app"
	"github.com/zkmint-labs/minting-backend/db"
	"github.com/zkmint-labs/minting-backend/metrics"
	"github.com/zkmint-labs/minting-backend/models"
)

const (
	MintSweeperName = "MINT SWEEPER"

	sweeperLockId = "mint-sweeper"
)

// SweeperRunner returns mint requests stuck in the submitting state to
// the queue. A request can be orphaned there when an instance dies
// between claiming and reconciling; the stale window has to exceed the
// longest plausible submission round-trip.
type SweeperRunner struct {
	store      db.MintStore
	staleAfter time.Duration
}

func (x *SweeperRunner) Run() {
	x.SweepStaleSubmitting()
}

func (x *SweeperRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

func (x *SweeperRunner) SweepStaleSubmitting() {
	lockId, err := app.DB.XLock(sweeperLockId)
	if err != nil {
		log.Warn("[MINT SWEEPER] Could not acquire lock, skipping tick: ", err)
		return
	}
	defer func() {
		if err := app.DB.Unlock(lockId); err != nil {
			log.Error("[MINT SWEEPER] Error releasing lock: ", err)
		}
	}()

	reset, err := x.store.ResetStaleSubmitting(x.staleAfter)
	if err != nil {
		log.Error("[MINT SWEEPER] Error resetting stale mint requests: ", err)
		return
	}
	if reset == 0 {
		log.Debug("[MINT SWEEPER] No stale mint requests")
		return
	}
	metrics.StaleSubmittingReset.Add(float64(reset))
	log.Warn("[MINT SWEEPER] Reset ", reset, " stale mint requests to unsubmitted")
}

func newSweeper() *SweeperRunner {
	return &SweeperRunner{
		store:      db.NewMintStore(),
		staleAfter: time.Duration(app.Config.MintSweeper.StaleAfterMillis) * time.Millisecond,
	}
}

func NewSweeper(wg *sync.WaitGroup) models.Service {
	if !app.Config.MintSweeper.Enabled {
		log.Debug("[MINT SWEEPER] Sweeper disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[MINT SWEEPER] Initializing sweeper")
	x := newSweeper()
	log.Info("[MINT SWEEPER] Initialized sweeper")

	return app.NewRunnerService(
		MintSweeperName,
		x,
		wg,
		time.Duration(app.Config.MintSweeper.IntervalMillis)*time.Millisecond,
	)
}
