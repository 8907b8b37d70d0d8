package webhook

import (
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/zkmint-labs/minting-backend/db"
	"github.com/zkmint-labs/minting-backend/metrics"
	"github.com/zkmint-labs/minting-backend/models"
)

// ErrMissingCorrelation is returned for an event that cannot be tied to
// a mint request because it lacks a reference id or contract address.
var ErrMissingCorrelation = errors.New("event is missing reference id or contract address")

// Synchronizer applies mint request updated events to the local store,
// making the upstream status authoritative for succeeded and failed.
type Synchronizer struct {
	store db.MintStore
}

func NewSynchronizer(store db.MintStore) *Synchronizer {
	return &Synchronizer{store: store}
}

func (s *Synchronizer) HandleMintRequestUpdated(event *Event) error {
	var data MintRequestUpdatedData
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return fmt.Errorf("error parsing mint request updated data: %s", err.Error())
	}
	if data.ReferenceId == "" || data.ContractAddress == "" {
		return ErrMissingCorrelation
	}
	if event.EventId == "" {
		return errors.New("event is missing event id")
	}

	status := ""
	switch data.Status {
	case EventStatusSucceeded:
		status = models.MintStatusSucceeded
	case EventStatusFailed:
		status = models.MintStatusFailed
	default:
		log.Debug("[WEBHOOK SYNC] Ignoring non-terminal status: ", data.Status, ", reference id: ", data.ReferenceId)
		return nil
	}

	// the stored owner is authoritative when the row exists; the event's
	// owner only seeds rows recorded elsewhere
	ownerAddress := data.OwnerAddress
	stored, err := s.store.GetByReference(data.ContractAddress, data.ReferenceId)
	if err == nil {
		ownerAddress = stored.OwnerAddress
	} else if errors.Is(err, db.ErrNotFound) {
		log.Warn("[WEBHOOK SYNC] Status event for unrecorded mint request, contract: ", data.ContractAddress, ", reference id: ", data.ReferenceId)
	} else {
		return err
	}

	update := models.StatusUpdate{
		ContractAddress: data.ContractAddress,
		ReferenceId:     data.ReferenceId,
		OwnerAddress:    ownerAddress,
		Status:          status,
		TokenId:         data.TokenId,
		MetadataId:      data.MetadataId,
		EventId:         event.EventId,
	}
	if data.Error != nil {
		update.Error = data.Error.Message
	}

	if err := s.store.SyncStatus(update); err != nil {
		return err
	}
	metrics.StatusSyncsApplied.Inc()
	log.Info("[WEBHOOK SYNC] Synced mint request status: ", status, ", reference id: ", data.ReferenceId)
	return nil
}
