package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zkmint-labs/minting-backend/app"
	"github.com/zkmint-labs/minting-backend/models"
)

const (
	sandboxBaseURL    = "https://api.sandbox.immutable.com"
	productionBaseURL = "https://api.immutable.com"

	headerAPIKey           = "x-immutable-api-key"
	headerRemainingQuota   = "imx-remaining-mint-requests"
	headerQuotaLimitReset  = "imx-mint-requests-limit-reset"
	conflictErrorCode      = "CONFLICT_ERROR"
	mintRequestsPathFormat = "%s/v1/chains/%s/collections/%s/nfts/mint-requests"
)

type MintingClient interface {
	CreateMintRequests(contractAddress string, assets []AssetRequest) (*CreateResponse, error)
}

type mintingHTTPClient struct {
	baseURL   string
	chainName string
	apiKey    string
	client    *http.Client
}

// BaseURLForEnvironment resolves the API host from the deployment
// environment selector unless an explicit override is configured.
func BaseURLForEnvironment(environment string, override string) string {
	if override != "" {
		return override
	}
	if environment == models.EnvironmentProduction {
		return productionBaseURL
	}
	return sandboxBaseURL
}

func (c *mintingHTTPClient) CreateMintRequests(contractAddress string, assets []AssetRequest) (*CreateResponse, error) {
	url := fmt.Sprintf(mintRequestsPathFormat, c.baseURL, c.chainName, contractAddress)

	body, err := json.Marshal(createMintRequestsBody{Assets: assets})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bz, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &CreateResponse{
			AssetCount: len(assets),
			RateLimit:  parseRateLimit(resp.Header),
		}, nil
	}

	var errBody apiErrorBody
	if err := json.Unmarshal(bz, &errBody); err != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(bz),
		}
	}

	if errBody.Code == conflictErrorCode && errBody.Details != nil && len(errBody.Details.ReferenceIds) > 0 {
		return nil, &ConflictError{
			ContractAddress: contractAddress,
			ReferenceIds:    errBody.Details.ReferenceIds,
		}
	}

	return nil, &APIError{
		StatusCode: resp.StatusCode,
		Code:       errBody.Code,
		Message:    errBody.Message,
	}
}

func parseRateLimit(header http.Header) *RateLimit {
	remainingHeader := header.Get(headerRemainingQuota)
	resetHeader := header.Get(headerQuotaLimitReset)
	if remainingHeader == "" || resetHeader == "" {
		return nil
	}

	remaining, err := strconv.ParseInt(remainingHeader, 10, 64)
	if err != nil {
		log.Warn("[MINT CLIENT] Error parsing remaining quota header: ", err)
		return nil
	}
	resetUnix, err := strconv.ParseInt(resetHeader, 10, 64)
	if err != nil {
		log.Warn("[MINT CLIENT] Error parsing quota reset header: ", err)
		return nil
	}

	return &RateLimit{
		Remaining: remaining,
		ResetTime: time.Unix(resetUnix, 0),
	}
}

func NewClient() MintingClient {
	return &mintingHTTPClient{
		baseURL:   BaseURLForEnvironment(app.Config.MintAPI.Environment, app.Config.MintAPI.BaseURL),
		chainName: app.Config.MintAPI.ChainName,
		apiKey:    app.Config.MintAPI.APIKey,
		client: &http.Client{
			Timeout: time.Duration(app.Config.MintAPI.TimeoutMillis) * time.Millisecond,
		},
	}
}
