package client

import (
	"fmt"
	"strings"
	"time"
)

// AssetRequest is a single asset within a batch create-mint-requests
// call. ReferenceId is the upstream idempotency key.
type AssetRequest struct {
	ReferenceId  string                 `json:"reference_id"`
	OwnerAddress string                 `json:"owner_address"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

type createMintRequestsBody struct {
	Assets []AssetRequest `json:"assets"`
}

// RateLimit is the submission quota reported by the most recent API
// response. Remaining is the number of requests left in the current
// window; ResetTime is when the window rolls over.
type RateLimit struct {
	Remaining int64
	ResetTime time.Time
}

type CreateResponse struct {
	AssetCount int
	RateLimit  *RateLimit
}

type apiErrorBody struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details *apiErrorDetail `json:"details,omitempty"`
}

type apiErrorDetail struct {
	ReferenceIds []string `json:"reference_ids"`
}

// APIError is a structured non-conflict error from the minting API.
// Treated as transient by the reconciler.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("minting api error: status %d, code %q, message %q", e.StatusCode, e.Code, e.Message)
}

// ConflictError identifies reference ids already present upstream with
// different values. Terminal for exactly those ids.
type ConflictError struct {
	ContractAddress string
	ReferenceIds    []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("minting api conflict on contract %s for reference ids: %s",
		e.ContractAddress, strings.Join(e.ReferenceIds, ", "))
}
