package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"wellnest-be/internal/logger"
)

const stripeBaseURL = "https://api.stripe.com"

type stripeGateway struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewStripeGateway returns a Gateway backed by the Stripe payment intents API.
func NewStripeGateway(secretKey string) Gateway {
	if secretKey == "" {
		logger.L().Warn("stripe secret key is empty")
	}

	return &stripeGateway{
		secretKey: secretKey,
		baseURL:   stripeBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type stripeErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent converts the amount to cents (truncated) and posts a
// form-encoded payment intent request. No retry, no idempotency key; any
// processor rejection is surfaced verbatim.
func (g *stripeGateway) CreateIntent(ctx context.Context, userID string, amount float64) (*Intent, error) {
	cents := int64(amount * 100)

	log := logger.L().With(
		zap.String("user_id", userID),
		zap.Int64("amount_cents", cents),
	)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(cents, 10))
	form.Set("currency", "usd")
	form.Set("metadata[user_id]", userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("stripe request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read stripe response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("stripe returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)

		var errResp stripeErrorResponse
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, &ProviderError{Message: errResp.Error.Message}
		}
		return nil, &ProviderError{Message: string(bodyBytes)}
	}

	var res stripeIntentResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("failed decoding stripe response", zap.Error(err))
		return nil, err
	}

	log.Info("payment intent created", zap.String("intent_id", res.ID))
	return &Intent{ID: res.ID, ClientSecret: res.ClientSecret}, nil
}
