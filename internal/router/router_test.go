package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/EhsanEIK/rythm-bazar-server/config"
	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	"github.com/EhsanEIK/rythm-bazar-server/internal/handler"
	"github.com/EhsanEIK/rythm-bazar-server/internal/provider/stripe"
	"github.com/EhsanEIK/rythm-bazar-server/internal/repository"
	"github.com/EhsanEIK/rythm-bazar-server/internal/usecase"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/jwtutil"
	appmw "github.com/EhsanEIK/rythm-bazar-server/pkg/middleware"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testSecret = []byte("test-secret")

const testIssuer = "rythm-bazar-server"

// Compact fakes: only the methods these flows reach are implemented, the
// embedded interface covers the rest.

type stubUsers struct {
	repository.UserRepository
	byEmail map[string]*domain.User
}

func (s *stubUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, xerrors.ErrUserNotFound
}

type stubOrders struct {
	repository.OrderRepository
	byID map[string]*domain.Order
}

func (s *stubOrders) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if order, ok := s.byID[id]; ok {
		return order, nil
	}
	return nil, xerrors.ErrOrderNotFound
}

func (s *stubOrders) MarkPaid(_ context.Context, id, transactionID string) error {
	order, ok := s.byID[id]
	if !ok {
		return xerrors.ErrOrderNotFound
	}
	order.Paid = true
	order.TransactionID = transactionID
	return nil
}

type stubProducts struct {
	repository.ProductRepository
	byID map[string]*domain.Product
}

func (s *stubProducts) MarkSold(_ context.Context, id string) error {
	product, ok := s.byID[id]
	if !ok {
		return xerrors.ErrProductNotFound
	}
	product.SalesStatus = domain.StatusSold
	product.Advertised = false
	return nil
}

type stubCategories struct {
	repository.CategoryRepository
}

func (s *stubCategories) List(_ context.Context) ([]domain.Category, error) {
	return nil, nil
}

type stubPayments struct {
	repository.PaymentRepository
	inserted []domain.Payment
}

func (s *stubPayments) Insert(_ context.Context, payment *domain.Payment) error {
	s.inserted = append(s.inserted, *payment)
	return nil
}

type stubGateway struct {
	lastAmount   int64
	lastCurrency string
}

func (g *stubGateway) CreatePaymentIntent(_ context.Context, amountCents int64, currency string) (*stripe.PaymentIntent, error) {
	g.lastAmount = amountCents
	g.lastCurrency = currency
	return &stripe.PaymentIntent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	srv      *httptest.Server
	users    *stubUsers
	orders   *stubOrders
	products *stubProducts
	payments *stubPayments
	gateway  *stubGateway
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()

	f := &fixture{
		users: &stubUsers{byEmail: map[string]*domain.User{
			"buyer@example.com":  {Email: "buyer@example.com", Role: domain.RoleBuyer},
			"seller@example.com": {Email: "seller@example.com", Role: domain.RoleBuyer}, // stored role is buyer
		}},
		orders: &stubOrders{byID: map[string]*domain.Order{
			"order-1": {ID: "order-1", BuyerEmail: "buyer@example.com", ProductID: "prod-1", Price: 20},
		}},
		products: &stubProducts{byID: map[string]*domain.Product{
			"prod-1": {ID: "prod-1", SellerEmail: "someone@example.com", SalesStatus: domain.StatusAvailable, Advertised: true},
		}},
		payments: &stubPayments{},
		gateway:  &stubGateway{},
	}

	signer := jwtutil.NewSigner(testSecret, testIssuer, time.Hour)
	verifier := jwtutil.NewVerifier(testSecret, testIssuer)

	authUC := usecase.NewAuthUsecase(f.users, signer, logger)
	userUC := usecase.NewUserUsecase(f.users, logger)
	catalogUC := usecase.NewCatalogUsecase(&stubCategories{}, f.products, logger)
	orderUC := usecase.NewOrderUsecase(f.orders, f.products, logger)
	settlementUC := usecase.NewSettlementUsecase(
		f.payments, f.orders, f.products, f.gateway, passthroughTx{}, "usd", logger,
	)

	handlers := Handlers{
		Auth:     handler.NewAuthHandler(authUC, logger),
		User:     handler.NewUserHandler(userUC, logger),
		Category: handler.NewCategoryHandler(catalogUC, logger),
		Product:  handler.NewProductHandler(catalogUC, logger),
		Order:    handler.NewOrderHandler(orderUC, logger),
		Payment:  handler.NewPaymentHandler(settlementUC, logger),
	}

	cfg := &config.Config{
		RateLimit: config.RateLimitConfig{Limit: 100, Window: time.Minute, BlockDuration: time.Minute},
	}

	// Unreachable redis: the limiter fails open.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})

	auth := appmw.NewAuthMiddleware(verifier, f.users, logger)
	f.srv = httptest.NewServer(SetupRoutes(handlers, auth, rdb, cfg, logger))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fixture) token(t *testing.T, email string) string {
	t.Helper()
	token, err := jwtutil.NewSigner(testSecret, testIssuer, time.Hour).Sign(email)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, f.srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodPost, "/api/v1/payments/create-payment-intent", "", `{"price": 20}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, f.gateway.lastAmount)
}

func TestSellerRouteWithBuyerRole(t *testing.T) {
	// seller@example.com holds a valid credential but the store says buyer.
	f := newFixture(t)

	resp := f.do(t, http.MethodPost, "/api/v1/products", f.token(t, "seller@example.com"), `{"name": "Strat"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Message, "forbidden")
}

func TestCreateIntentAsBuyer(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodPost, "/api/v1/payments/create-payment-intent",
		f.token(t, "buyer@example.com"), `{"price": 20}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			ClientSecret string `json:"clientSecret"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Data.ClientSecret)
	assert.Equal(t, int64(2000), f.gateway.lastAmount)
	assert.Equal(t, "usd", f.gateway.lastCurrency)
}

func TestConfirmSettlement(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodPost, "/api/v1/payments", f.token(t, "buyer@example.com"),
		`{"orderId": "order-1", "productId": "prod-1", "transactionId": "txn_9"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	order := f.orders.byID["order-1"]
	assert.True(t, order.Paid)
	assert.Equal(t, "txn_9", order.TransactionID)

	product := f.products.byID["prod-1"]
	assert.Equal(t, domain.StatusSold, product.SalesStatus)
	assert.False(t, product.Advertised)

	require.Len(t, f.payments.inserted, 1)
	assert.Equal(t, "order-1", f.payments.inserted[0].OrderID)
	assert.Equal(t, "txn_9", f.payments.inserted[0].TransactionID)
}

func TestConfirmUnknownOrderIs404(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodPost, "/api/v1/payments", f.token(t, "buyer@example.com"),
		`{"orderId": "ghost", "productId": "prod-1", "transactionId": "txn_9"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, f.payments.inserted)
}

func TestRoleFlagEndpointUnauthenticated(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodGet, "/api/v1/users/buyer/buyer@example.com", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			IsBuyer bool `json:"isBuyer"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Data.IsBuyer)
}

func TestIssueTokenForKnownAccount(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodPost, "/api/v1/jwt", "", `{"email": "buyer@example.com"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Data.Token)

	claims, err := jwtutil.NewVerifier(testSecret, testIssuer).ParseAndValidate(body.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", claims.Email)
}

func TestIssueTokenForUnknownAccount(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodPost, "/api/v1/jwt", "", `{"email": "ghost@example.com"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
