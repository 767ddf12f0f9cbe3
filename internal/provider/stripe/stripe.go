package stripe

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

	"github.com/EhsanEIK/rythm-bazar-server/config"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"
)

// StripeProvider talks to the Stripe PaymentIntents API. The amount is in
// minor currency units (cents).
type StripeProvider struct {
	config     config.StripeConfig
	baseURL    string
	httpClient *http.Client
}

func NewStripeProvider(cfg config.StripeConfig) *StripeProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.stripe.com"
	}

	return &StripeProvider{
		config:     cfg,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// PaymentIntent is the subset of Stripe's response this system uses.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent reserves a card charge for amountCents and returns the
// client secret the caller completes payment with. No local state is touched;
// the call is safe to retry.
func (s *StripeProvider) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	endpoint := fmt.Sprintf("%s/v1/payment_intents", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.config.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrPaymentGateway, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", xerrors.ErrPaymentGateway, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s", xerrors.ErrPaymentGateway, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: status %d", xerrors.ErrPaymentGateway, resp.StatusCode)
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", xerrors.ErrPaymentGateway, err)
	}

	return &intent, nil
}
