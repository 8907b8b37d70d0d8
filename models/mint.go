package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionMintRequests = "mint_requests"
)

// types of minting status
const (
	MintStatusUnsubmitted      = "unsubmitted"
	MintStatusSubmitting       = "submitting"
	MintStatusSubmitted        = "submitted"
	MintStatusConflicting      = "conflicting"
	MintStatusSubmissionFailed = "submission_failed"
	MintStatusSucceeded        = "succeeded"
	MintStatusFailed           = "failed"
)

// MintRequest is a single asset to be minted to an owner on a contract.
// ReferenceId is unique per contract and doubles as the upstream
// idempotency key.
type MintRequest struct {
	Id              *primitive.ObjectID    `bson:"_id,omitempty"`
	ContractAddress string                 `bson:"contract_address"`
	OwnerAddress    string                 `bson:"owner_address"`
	ReferenceId     string                 `bson:"reference_id"`
	Metadata        map[string]interface{} `bson:"metadata,omitempty"`
	Status          string                 `bson:"status"`
	TriedCount      int64                  `bson:"tried_count"`
	LastEventId     string                 `bson:"last_event_id,omitempty"`
	TokenId         string                 `bson:"token_id,omitempty"`
	MetadataId      string                 `bson:"metadata_id,omitempty"`
	Error           string                 `bson:"error,omitempty"`
	CreatedAt       time.Time              `bson:"created_at"`
	UpdatedAt       time.Time              `bson:"updated_at"`
}

// StatusUpdate carries an authoritative upstream status back into a mint
// request row. EventId orders updates; a stale event must be a no-op.
type StatusUpdate struct {
	ContractAddress string
	ReferenceId     string
	OwnerAddress    string
	Status          string
	TokenId         string
	MetadataId      string
	Error           string
	EventId         string
}
