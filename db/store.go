package db

import (
	"errors"
	"fmt"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"github.com/zkmint-labs/minting-backend/app"
	"github.com/zkmint-labs/minting-backend/metrics"
	"github.com/zkmint-labs/minting-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDuplicateRequest is returned when a (contract, reference id)
	// pair has already been recorded. Not retryable.
	ErrDuplicateRequest = errors.New("mint request already recorded for contract and reference id")

	ErrNotFound = errors.New("mint request not found")
)

// MintStore is the persistence port for mint requests. ClaimNextBatch is
// the sole mutual-exclusion mechanism between submitter instances: a
// claimed row is never handed to a second claimant.
type MintStore interface {
	RecordMint(request models.MintRequest) error
	ClaimNextBatch(limit int64) ([]models.MintRequest, error)
	MarkSubmitted(ids []primitive.ObjectID) error
	MarkSubmissionFailed(ids []primitive.ObjectID) error
	MarkConflicting(referenceIds []string, contractAddress string, eventId string) error
	ResetForRetry(ids []primitive.ObjectID) error
	MarkForRetry(ids []primitive.ObjectID, maxTries int64) error
	SyncStatus(update models.StatusUpdate) error
	GetByReference(contractAddress string, referenceId string) (models.MintRequest, error)
	ResetStaleSubmitting(olderThan time.Duration) (int64, error)
}

type mintStore struct{}

func NewMintStore() MintStore {
	return &mintStore{}
}

// NormalizeAddress canonicalizes a hex address so that idempotency keys
// and lookups agree regardless of caller casing.
func NormalizeAddress(address string) (string, error) {
	if !ethcommon.IsHexAddress(address) {
		return "", fmt.Errorf("invalid address: %q", address)
	}
	return ethcommon.HexToAddress(address).Hex(), nil
}

func (s *mintStore) RecordMint(request models.MintRequest) error {
	contractAddress, err := NormalizeAddress(request.ContractAddress)
	if err != nil {
		return err
	}
	ownerAddress, err := NormalizeAddress(request.OwnerAddress)
	if err != nil {
		return err
	}
	if request.ReferenceId == "" {
		return errors.New("reference id is required")
	}

	request.ContractAddress = contractAddress
	request.OwnerAddress = ownerAddress
	request.Status = models.MintStatusUnsubmitted
	request.TriedCount = 0
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()

	err = app.DB.InsertOne(models.CollectionMintRequests, request)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateRequest
		}
		return err
	}
	return nil
}

// ClaimNextBatch atomically flips up to limit unsubmitted rows to
// submitting, one document at a time. Concurrent claimants never receive
// overlapping rows since each flip matches on the unsubmitted status.
func (s *mintStore) ClaimNextBatch(limit int64) ([]models.MintRequest, error) {
	filter := bson.M{"status": models.MintStatusUnsubmitted}

	var claimed []models.MintRequest
	for int64(len(claimed)) < limit {
		update := bson.M{
			"$set": bson.M{
				"status":     models.MintStatusSubmitting,
				"updated_at": time.Now(),
			},
		}

		var request models.MintRequest
		err := app.DB.FindOneAndUpdate(models.CollectionMintRequests, filter, update, &request)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				break
			}
			return claimed, err
		}
		claimed = append(claimed, request)
	}
	return claimed, nil
}

func (s *mintStore) MarkSubmitted(ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	filter := bson.M{
		"_id":    bson.M{"$in": ids},
		"status": models.MintStatusSubmitting,
	}
	update := bson.M{
		"$set": bson.M{
			"status":     models.MintStatusSubmitted,
			"updated_at": time.Now(),
		},
	}
	_, err := app.DB.UpdateMany(models.CollectionMintRequests, filter, update)
	return err
}

func (s *mintStore) MarkSubmissionFailed(ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	// re-marking a terminal row is a no-op, not an error
	filter := bson.M{
		"_id":    bson.M{"$in": ids},
		"status": bson.M{"$in": []string{models.MintStatusSubmitting, models.MintStatusUnsubmitted}},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     models.MintStatusSubmissionFailed,
			"updated_at": time.Now(),
		},
	}
	_, err := app.DB.UpdateMany(models.CollectionMintRequests, filter, update)
	return err
}

// MarkConflicting marks rows as permanently conflicting. When eventId is
// set, rows whose stored event id is already newer are left alone.
func (s *mintStore) MarkConflicting(referenceIds []string, contractAddress string, eventId string) error {
	if len(referenceIds) == 0 {
		return nil
	}
	contractAddress, err := NormalizeAddress(contractAddress)
	if err != nil {
		return err
	}

	filter := bson.M{
		"contract_address": contractAddress,
		"reference_id":     bson.M{"$in": referenceIds},
		// a row already finalized by a status event stays finalized
		"status": bson.M{"$nin": []string{models.MintStatusSucceeded, models.MintStatusFailed}},
	}
	set := bson.M{
		"status":     models.MintStatusConflicting,
		"updated_at": time.Now(),
	}
	if eventId != "" {
		filter["$or"] = eventIdGuard(eventId)
		set["last_event_id"] = eventId
	}

	_, err = app.DB.UpdateMany(models.CollectionMintRequests, filter, bson.M{"$set": set})
	return err
}

// ResetForRetry returns rows to unsubmitted without charging their retry
// budget, for rows swept up in a batch failure they did not cause.
func (s *mintStore) ResetForRetry(ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	filter := bson.M{
		"_id":    bson.M{"$in": ids},
		"status": models.MintStatusSubmitting,
	}
	update := bson.M{
		"$set": bson.M{
			"status":     models.MintStatusUnsubmitted,
			"updated_at": time.Now(),
		},
	}
	_, err := app.DB.UpdateMany(models.CollectionMintRequests, filter, update)
	return err
}

// MarkForRetry returns rows to unsubmitted and increments their tried
// count. Rows already at maxTries are excluded; the caller routes those
// to MarkSubmissionFailed.
func (s *mintStore) MarkForRetry(ids []primitive.ObjectID, maxTries int64) error {
	if len(ids) == 0 {
		return nil
	}
	filter := bson.M{
		"_id":         bson.M{"$in": ids},
		"status":      models.MintStatusSubmitting,
		"tried_count": bson.M{"$lt": maxTries},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     models.MintStatusUnsubmitted,
			"updated_at": time.Now(),
		},
		"$inc": bson.M{"tried_count": 1},
	}
	_, err := app.DB.UpdateMany(models.CollectionMintRequests, filter, update)
	return err
}

func eventIdGuard(eventId string) []bson.M {
	// event ids are ULIDs, ordered lexicographically; an unset id always loses
	return []bson.M{
		{"last_event_id": bson.M{"$exists": false}},
		{"last_event_id": ""},
		{"last_event_id": bson.M{"$lt": eventId}},
	}
}

// SyncStatus applies an authoritative upstream status. The update only
// lands when its event id is strictly newer than the stored one; a stale
// or duplicate event is a silent no-op. A row not recorded locally is
// created from the event data.
func (s *mintStore) SyncStatus(update models.StatusUpdate) error {
	contractAddress, err := NormalizeAddress(update.ContractAddress)
	if err != nil {
		return err
	}
	if update.ReferenceId == "" {
		return errors.New("reference id is required")
	}
	if update.EventId == "" {
		return errors.New("event id is required")
	}

	filter := bson.M{
		"contract_address": contractAddress,
		"reference_id":     update.ReferenceId,
		"$or":              eventIdGuard(update.EventId),
	}
	set := bson.M{
		"status":        update.Status,
		"last_event_id": update.EventId,
		"updated_at":    time.Now(),
	}
	ownerAddress := ""
	if update.OwnerAddress != "" {
		ownerAddress, err = NormalizeAddress(update.OwnerAddress)
		if err != nil {
			return err
		}
		set["owner_address"] = ownerAddress
	}
	if update.TokenId != "" {
		set["token_id"] = update.TokenId
	}
	if update.MetadataId != "" {
		set["metadata_id"] = update.MetadataId
	}
	if update.Error != "" {
		set["error"] = update.Error
	}

	modified, err := app.DB.UpdateMany(models.CollectionMintRequests, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if modified > 0 {
		return nil
	}

	// nothing matched: either the event is stale or the row was never
	// recorded locally
	_, err = s.GetByReference(contractAddress, update.ReferenceId)
	if err == nil {
		metrics.StatusSyncsStale.Inc()
		log.Debug("[STORE] Ignoring stale status event: ", update.EventId)
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	doc := models.MintRequest{
		ContractAddress: contractAddress,
		OwnerAddress:    ownerAddress,
		ReferenceId:     update.ReferenceId,
		Status:          update.Status,
		LastEventId:     update.EventId,
		TokenId:         update.TokenId,
		MetadataId:      update.MetadataId,
		Error:           update.Error,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	err = app.DB.InsertOne(models.CollectionMintRequests, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// lost a race against a concurrent insert; the guard above
			// already decided this event is not newer
			return nil
		}
		return err
	}
	return nil
}

func (s *mintStore) GetByReference(contractAddress string, referenceId string) (models.MintRequest, error) {
	var request models.MintRequest

	contractAddress, err := NormalizeAddress(contractAddress)
	if err != nil {
		return request, err
	}

	filter := bson.M{
		"contract_address": contractAddress,
		"reference_id":     referenceId,
	}
	err = app.DB.FindOne(models.CollectionMintRequests, filter, &request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return request, ErrNotFound
		}
		return request, err
	}
	return request, nil
}

// ResetStaleSubmitting returns rows stuck in submitting beyond olderThan
// to unsubmitted. Bounds the damage of a submitter dying mid-tick.
func (s *mintStore) ResetStaleSubmitting(olderThan time.Duration) (int64, error) {
	filter := bson.M{
		"status":     models.MintStatusSubmitting,
		"updated_at": bson.M{"$lt": time.Now().Add(-olderThan)},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     models.MintStatusUnsubmitted,
			"updated_at": time.Now(),
		},
	}
	return app.DB.UpdateMany(models.CollectionMintRequests, filter, update)
}
