package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-chat-accounts/internal/config"
	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/utils"
)

const (
	defaultCloudinaryEndpoint = "https://api.cloudinary.com"
	cloudinaryDestroyPath     = "/v1_1/{cloud}/image/destroy"
	assetRequestTimeout       = 10 * time.Second
)

// Results reported by the Cloudinary destroy API that leave the asset gone.
const (
	cloudinaryResultOK       = "ok"
	cloudinaryResultNotFound = "not found"
)

type cloudinaryAssetStorage struct {
	client    *utils.HTTPClient
	cloudName string
	apiKey    string
	apiSecret string
	now       func() time.Time
	logger    *logger.Logger
}

type cloudinaryDestroyResponse struct {
	Result string `json:"result"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func newCloudinaryAssetStorage(cfg config.Assets, log *logger.Logger) *cloudinaryAssetStorage {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultCloudinaryEndpoint
	}

	return &cloudinaryAssetStorage{
		client:    utils.NewHTTPClient(endpoint, assetRequestTimeout),
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		now:       time.Now,
		logger:    log,
	}
}

// Destroy calls the signed image destroy endpoint. A "not found" result
// counts as success.
func (c *cloudinaryAssetStorage) Destroy(ctx context.Context, assetID string) error {
	log := logger.FromContext(ctx)

	params := map[string]string{
		"public_id": assetID,
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	signature := utils.SignParams(params, c.apiSecret)

	var body cloudinaryDestroyResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("cloud", c.cloudName).
		SetFormData(map[string]string{
			"public_id": params["public_id"],
			"timestamp": params["timestamp"],
			"api_key":   c.apiKey,
			"signature": signature,
		}).
		SetResult(&body).
		SetError(&body).
		Post(cloudinaryDestroyPath)
	if err != nil {
		log.Err(err).Str("func", "*cloudinaryAssetStorage.Destroy").Str("asset_id", assetID).Msg("destroy request failed")
		return fmt.Errorf("%w: %w", ErrAssetDestroyFailed, err)
	}

	if resp.IsError() {
		message := resp.Status()
		if body.Error != nil && body.Error.Message != "" {
			message = body.Error.Message
		}
		log.Error().Str("func", "*cloudinaryAssetStorage.Destroy").
			Str("asset_id", assetID).
			Int("status", resp.StatusCode()).
			Str("message", message).
			Msg("destroy rejected")
		return fmt.Errorf("%w: status %d: %s", ErrAssetDestroyFailed, resp.StatusCode(), message)
	}

	switch body.Result {
	case cloudinaryResultOK, cloudinaryResultNotFound:
		log.Debug().Str("func", "*cloudinaryAssetStorage.Destroy").Str("asset_id", assetID).Str("result", body.Result).Msg("asset destroyed")
		return nil
	default:
		return fmt.Errorf("%w: unexpected result %q", ErrAssetDestroyFailed, body.Result)
	}
}
