package webhook

import (
	"encoding/json"
)

// notification envelope types
const (
	TypeNotification             = "Notification"
	TypeSubscriptionConfirmation = "SubscriptionConfirmation"
	TypeUnsubscribeConfirmation  = "UnsubscribeConfirmation"
)

// signature algorithm versions carried in the envelope
const (
	SignatureVersion1 = "1"
	SignatureVersion2 = "2"
)

// Notification is the signed envelope delivered to the webhook endpoint.
// Message carries the JSON-encoded event payload; the remaining fields
// exist to verify where the envelope came from.
type Notification struct {
	Type             string `json:"Type"`
	MessageId        string `json:"MessageId"`
	Token            string `json:"Token,omitempty"`
	TopicArn         string `json:"TopicArn"`
	Subject          string `json:"Subject,omitempty"`
	Message          string `json:"Message"`
	Timestamp        string `json:"Timestamp"`
	SignatureVersion string `json:"SignatureVersion"`
	Signature        string `json:"Signature"`
	SigningCertURL   string `json:"SigningCertURL"`
	SubscribeURL     string `json:"SubscribeURL,omitempty"`
	UnsubscribeURL   string `json:"UnsubscribeURL,omitempty"`
}

const (
	EventNameMintRequestUpdated = "imtbl_zkevm_mint_request_updated"
	EventNameActivityMint       = "imtbl_zkevm_activity_mint"
	EventNameActivityBurn       = "imtbl_zkevm_activity_burn"
	EventNameActivityTransfer   = "imtbl_zkevm_activity_transfer"
	EventNameActivitySale       = "imtbl_zkevm_activity_sale"
	EventNameCollectionUpdated  = "imtbl_zkevm_collection_updated"
	EventNameNFTUpdated         = "imtbl_zkevm_nft_updated"
	EventNameMetadataUpdated    = "imtbl_zkevm_metadata_updated"
	EventNameOrderUpdated       = "imtbl_zkevm_order_updated"
	EventNameTradeCreated       = "imtbl_zkevm_trade_created"
	EventNameTokenUpdated       = "imtbl_zkevm_token_updated"
)

var knownEventNames = map[string]bool{
	EventNameMintRequestUpdated: true,
	EventNameActivityMint:       true,
	EventNameActivityBurn:       true,
	EventNameActivityTransfer:   true,
	EventNameActivitySale:       true,
	EventNameCollectionUpdated:  true,
	EventNameNFTUpdated:         true,
	EventNameMetadataUpdated:    true,
	EventNameOrderUpdated:       true,
	EventNameTradeCreated:       true,
	EventNameTokenUpdated:       true,
}

// KnownEventName reports whether the upstream publishes events under
// this name. Unknown names are still delivered to catch-all handlers.
func KnownEventName(name string) bool {
	return knownEventNames[name]
}

// Event is the payload inside a Notification's Message. Data is left raw
// so each event name can carry its own shape.
type Event struct {
	EventName string          `json:"event_name"`
	EventId   string          `json:"event_id"`
	Chain     string          `json:"chain"`
	Data      json.RawMessage `json:"data"`
}

// upstream terminal statuses reported by the mint request updated event
const (
	EventStatusSucceeded = "succeeded"
	EventStatusFailed    = "failed"
)

type MintRequestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MintRequestUpdatedData is the data payload of a mint request updated
// event. ContractAddress and ReferenceId together correlate the event
// with a locally recorded mint request.
type MintRequestUpdatedData struct {
	ContractAddress string            `json:"contract_address"`
	ReferenceId     string            `json:"reference_id"`
	OwnerAddress    string            `json:"owner_address"`
	Status          string            `json:"status"`
	TokenId         string            `json:"token_id"`
	MetadataId      string            `json:"metadata_id"`
	Error           *MintRequestError `json:"error"`
}
