package mint

import (
	"errors"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zkmint-labs/minting-backend/app"
	"github.com/zkmint-labs/minting-backend/client"
	"github.com/zkmint-labs/minting-backend/db"
	"github.com/zkmint-labs/minting-backend/metrics"
	"github.com/zkmint-labs/minting-backend/models"
)

const (
	MintSubmitterName = "MINT SUBMITTER"
)

// SubmitterRunner claims pending mint requests and submits them to the
// minting API in per-contract batches, honoring the API's remaining
// quota. Ticks never overlap within one instance; across instances the
// store's claim operation is the only coordination needed.
type SubmitterRunner struct {
	store     db.MintStore
	client    client.MintingClient
	batchSize int64
	maxBatch  int64
	maxTries  int64

	rateMu    sync.Mutex
	rateLimit *client.RateLimit
}

func (x *SubmitterRunner) Run() {
	x.SubmitBatches()
}

func (x *SubmitterRunner) Status() models.RunnerStatus {
	x.rateMu.Lock()
	defer x.rateMu.Unlock()
	if x.rateLimit == nil {
		return models.RunnerStatus{}
	}
	return models.RunnerStatus{
		RemainingQuota: strconv.FormatInt(x.rateLimit.Remaining, 10),
	}
}

// nextBatchSize folds the last-known quota window into the configured
// batch size. Returns 0 when the quota is exhausted and its reset time
// has not passed yet.
func (x *SubmitterRunner) nextBatchSize() int64 {
	x.rateMu.Lock()
	defer x.rateMu.Unlock()

	batchSize := x.batchSize
	if x.rateLimit != nil {
		if !x.rateLimit.ResetTime.After(time.Now()) {
			// window rolled over, quota unknown again
			x.rateLimit = nil
		} else if x.rateLimit.Remaining <= 0 {
			return 0
		} else if x.rateLimit.Remaining < batchSize {
			batchSize = x.rateLimit.Remaining
		}
	}
	if batchSize > x.maxBatch {
		batchSize = x.maxBatch
	}
	return batchSize
}

func (x *SubmitterRunner) setRateLimit(rateLimit *client.RateLimit) {
	if rateLimit == nil {
		return
	}
	x.rateMu.Lock()
	x.rateLimit = rateLimit
	x.rateMu.Unlock()
	metrics.RemainingQuota.Set(float64(rateLimit.Remaining))
}

func (x *SubmitterRunner) SubmitBatches() {
	batchSize := x.nextBatchSize()
	if batchSize == 0 {
		log.Info("[MINT SUBMITTER] Quota exhausted, skipping tick")
		return
	}

	claimed, err := x.store.ClaimNextBatch(batchSize)
	if err != nil {
		log.Error("[MINT SUBMITTER] Error claiming batch: ", err)
	}
	if len(claimed) == 0 {
		log.Debug("[MINT SUBMITTER] No pending mint requests")
		return
	}
	log.Info("[MINT SUBMITTER] Claimed ", len(claimed), " mint requests")

	partitions := make(map[string][]models.MintRequest)
	for _, request := range claimed {
		partitions[request.ContractAddress] = append(partitions[request.ContractAddress], request)
	}

	// partitions are independent; a failure in one must not block or
	// corrupt another, but the tick waits for all of them
	var wg sync.WaitGroup
	for contractAddress, requests := range partitions {
		wg.Add(1)
		go func(contractAddress string, requests []models.MintRequest) {
			defer wg.Done()
			x.SubmitPartition(contractAddress, requests)
		}(contractAddress, requests)
	}
	wg.Wait()
}

// SubmitPartition submits one contract's claimed rows, capping each
// outgoing request at the API's own maximum regardless of local
// configuration drift.
func (x *SubmitterRunner) SubmitPartition(contractAddress string, requests []models.MintRequest) {
	for len(requests) > 0 {
		chunk := requests
		if int64(len(chunk)) > x.maxBatch {
			chunk = requests[:x.maxBatch]
		}
		requests = requests[len(chunk):]
		x.submitChunk(contractAddress, chunk)
	}
}

func (x *SubmitterRunner) submitChunk(contractAddress string, chunk []models.MintRequest) {
	assets := make([]client.AssetRequest, 0, len(chunk))
	for _, request := range chunk {
		assets = append(assets, client.AssetRequest{
			ReferenceId:  request.ReferenceId,
			OwnerAddress: request.OwnerAddress,
			Metadata:     request.Metadata,
		})
	}

	log.Info("[MINT SUBMITTER] Submitting ", len(assets), " mint requests for contract: ", contractAddress)
	metrics.BatchesSubmitted.WithLabelValues(contractAddress).Inc()

	res, err := x.client.CreateMintRequests(contractAddress, assets)
	if err != nil {
		x.HandleSubmissionError(contractAddress, chunk, err)
		return
	}

	if err := x.store.MarkSubmitted(requestIds(chunk)); err != nil {
		log.Error("[MINT SUBMITTER] Error marking mint requests submitted for contract ", contractAddress, ": ", err)
		return
	}
	metrics.RequestsSubmitted.WithLabelValues(contractAddress).Add(float64(len(chunk)))
	x.setRateLimit(res.RateLimit)
	log.Info("[MINT SUBMITTER] Submitted ", len(chunk), " mint requests for contract: ", contractAddress)
}

// HandleSubmissionError reconciles a failed batch call. A conflict is
// terminal for exactly the offending reference ids; their siblings go
// back to the queue without being charged a try. Any other error splits
// the chunk by each row's own retry budget.
func (x *SubmitterRunner) HandleSubmissionError(contractAddress string, chunk []models.MintRequest, err error) {
	var conflictErr *client.ConflictError
	if errors.As(err, &conflictErr) {
		x.handleConflict(contractAddress, chunk, conflictErr)
		return
	}

	log.Error("[MINT SUBMITTER] Error submitting batch for contract ", contractAddress, ": ", err)

	var retryIds []primitive.ObjectID
	var failedIds []primitive.ObjectID
	for _, request := range chunk {
		if request.TriedCount+1 >= x.maxTries {
			failedIds = append(failedIds, *request.Id)
		} else {
			retryIds = append(retryIds, *request.Id)
		}
	}

	if len(retryIds) > 0 {
		if err := x.store.MarkForRetry(retryIds, x.maxTries); err != nil {
			log.Error("[MINT SUBMITTER] Error marking mint requests for retry for contract ", contractAddress, ": ", err)
		} else {
			metrics.RetriesScheduled.WithLabelValues(contractAddress).Add(float64(len(retryIds)))
			log.Info("[MINT SUBMITTER] Scheduled ", len(retryIds), " mint requests for retry for contract: ", contractAddress)
		}
	}
	if len(failedIds) > 0 {
		if err := x.store.MarkSubmissionFailed(failedIds); err != nil {
			log.Error("[MINT SUBMITTER] Error marking mint requests failed for contract ", contractAddress, ": ", err)
		} else {
			metrics.PermanentFailures.WithLabelValues(contractAddress).Add(float64(len(failedIds)))
			log.Warn("[MINT SUBMITTER] Marked ", len(failedIds), " mint requests as failed after retry budget for contract: ", contractAddress, ", ids: ", failedIds)
		}
	}
}

func (x *SubmitterRunner) handleConflict(contractAddress string, chunk []models.MintRequest, conflictErr *client.ConflictError) {
	log.Warn("[MINT SUBMITTER] Conflict submitting batch for contract ", contractAddress, ", reference ids: ", conflictErr.ReferenceIds)

	offending := make(map[string]bool, len(conflictErr.ReferenceIds))
	for _, referenceId := range conflictErr.ReferenceIds {
		offending[referenceId] = true
	}

	var conflictingRefs []string
	var siblingIds []primitive.ObjectID
	for _, request := range chunk {
		if offending[request.ReferenceId] {
			conflictingRefs = append(conflictingRefs, request.ReferenceId)
		} else {
			siblingIds = append(siblingIds, *request.Id)
		}
	}

	if err := x.store.MarkConflicting(conflictingRefs, contractAddress, ""); err != nil {
		log.Error("[MINT SUBMITTER] Error marking mint requests conflicting for contract ", contractAddress, ": ", err)
	} else {
		metrics.RequestsConflicting.WithLabelValues(contractAddress).Add(float64(len(conflictingRefs)))
	}

	// siblings were not the cause, send them back without charging a try
	if err := x.store.ResetForRetry(siblingIds); err != nil {
		log.Error("[MINT SUBMITTER] Error resetting mint requests for contract ", contractAddress, ": ", err)
	}
}

func requestIds(requests []models.MintRequest) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(requests))
	for _, request := range requests {
		ids = append(ids, *request.Id)
	}
	return ids
}

func newSubmitter() *SubmitterRunner {
	return &SubmitterRunner{
		store:     db.NewMintStore(),
		client:    client.NewClient(),
		batchSize: app.Config.MintSubmitter.BatchSize,
		maxBatch:  app.Config.MintAPI.MaxBatchSize,
		maxTries:  app.Config.MintSubmitter.MaxTries,
	}
}

func NewSubmitter(wg *sync.WaitGroup) models.Service {
	if !app.Config.MintSubmitter.Enabled {
		log.Debug("[MINT SUBMITTER] Submitter disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[MINT SUBMITTER] Initializing submitter")
	x := newSubmitter()
	log.Info("[MINT SUBMITTER] Initialized submitter")

	return app.NewRunnerService(
		MintSubmitterName,
		x,
		wg,
		time.Duration(app.Config.MintSubmitter.IntervalMillis)*time.Millisecond,
	)
}
