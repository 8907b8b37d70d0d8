package mint

import (
	log "github.com/sirupsen/logrus"

	"github.com/zkmint-labs/minting-backend/db"
	"github.com/zkmint-labs/minting-backend/metrics"
	"github.com/zkmint-labs/minting-backend/models"
)

// Record queues a mint request for asynchronous submission. Recording
// the same (contract, reference id) pair twice returns
// db.ErrDuplicateRequest and leaves the original row untouched.
func Record(store db.MintStore, request models.MintRequest) error {
	if err := store.RecordMint(request); err != nil {
		return err
	}
	metrics.MintsRecorded.Inc()
	log.Info("[MINT RECORD] Recorded mint request, contract: ", request.ContractAddress, ", reference id: ", request.ReferenceId)
	return nil
}
