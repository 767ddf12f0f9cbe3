package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EhsanEIK/rythm-bazar-server/config"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	var gotPath, gotAuth string
	var gotForm map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
            "id": "pi_abc123",
            "client_secret": "pi_abc123_secret_xyz",
            "amount": 2000,
            "currency": "usd",
            "status": "requires_payment_method"
        }`))
	}))
	defer srv.Close()

	provider := NewStripeProvider(config.StripeConfig{
		SecretKey: "sk_test_123",
		BaseURL:   srv.URL,
	})

	intent, err := provider.CreatePaymentIntent(context.Background(), 2000, "usd")
	require.NoError(t, err)

	assert.Equal(t, "/v1/payment_intents", gotPath)
	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.Equal(t, []string{"2000"}, gotForm["amount"])
	assert.Equal(t, []string{"usd"}, gotForm["currency"])
	assert.Equal(t, []string{"card"}, gotForm["payment_method_types[]"])

	assert.Equal(t, "pi_abc123", intent.ID)
	assert.Equal(t, "pi_abc123_secret_xyz", intent.ClientSecret)
	assert.Equal(t, int64(2000), intent.Amount)
}

func TestCreatePaymentIntentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"type": "card_error", "message": "Your card was declined."}}`))
	}))
	defer srv.Close()

	provider := NewStripeProvider(config.StripeConfig{SecretKey: "sk_test_123", BaseURL: srv.URL})

	_, err := provider.CreatePaymentIntent(context.Background(), 2000, "usd")
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrPaymentGateway)
	assert.Contains(t, err.Error(), "declined")
}

func TestCreatePaymentIntentUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	provider := NewStripeProvider(config.StripeConfig{SecretKey: "sk_test_123", BaseURL: srv.URL})

	_, err := provider.CreatePaymentIntent(context.Background(), 2000, "usd")
	assert.ErrorIs(t, err, xerrors.ErrPaymentGateway)
}

func TestDefaultBaseURL(t *testing.T) {
	provider := NewStripeProvider(config.StripeConfig{SecretKey: "sk_test_123"})
	assert.Equal(t, "https://api.stripe.com", provider.baseURL)
}
