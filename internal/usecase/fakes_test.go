package usecase

import (
	"context"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	"github.com/EhsanEIK/rythm-bazar-server/internal/provider/stripe"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"
)

// In-memory fakes for the repository interfaces and the gateway.

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := r.users[email]; ok {
		return user, nil
	}
	return nil, xerrors.ErrUserNotFound
}

func (r *fakeUserRepo) Upsert(_ context.Context, user *domain.User) error {
	if r.users == nil {
		r.users = map[string]*domain.User{}
	}
	if existing, ok := r.users[user.Email]; ok {
		existing.Name = user.Name
		if user.PasswordHash != "" {
			existing.PasswordHash = user.PasswordHash
		}
		*user = *existing
		return nil
	}
	clone := *user
	r.users[user.Email] = &clone
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, role domain.Role) ([]domain.User, error) {
	var users []domain.User
	for _, user := range r.users {
		if role == "" || user.Role == role {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) SetVerified(_ context.Context, email string, verified bool) error {
	user, ok := r.users[email]
	if !ok {
		return xerrors.ErrUserNotFound
	}
	user.Verified = verified
	return nil
}

func (r *fakeUserRepo) DeleteByEmail(_ context.Context, email string) error {
	if _, ok := r.users[email]; !ok {
		return xerrors.ErrUserNotFound
	}
	delete(r.users, email)
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*domain.Order
}

func (r *fakeOrderRepo) Insert(_ context.Context, order *domain.Order) error {
	if r.orders == nil {
		r.orders = map[string]*domain.Order{}
	}
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if order, ok := r.orders[id]; ok {
		clone := *order
		return &clone, nil
	}
	return nil, xerrors.ErrOrderNotFound
}

func (r *fakeOrderRepo) ListByBuyer(_ context.Context, buyerEmail string) ([]domain.Order, error) {
	var orders []domain.Order
	for _, order := range r.orders {
		if order.BuyerEmail == buyerEmail {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) MarkPaid(_ context.Context, id, transactionID string) error {
	order, ok := r.orders[id]
	if !ok {
		return xerrors.ErrOrderNotFound
	}
	order.Paid = true
	order.TransactionID = transactionID
	return nil
}

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func (r *fakeProductRepo) Insert(_ context.Context, product *domain.Product) error {
	if r.products == nil {
		r.products = map[string]*domain.Product{}
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if product, ok := r.products[id]; ok {
		clone := *product
		return &clone, nil
	}
	return nil, xerrors.ErrProductNotFound
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, categoryID string) ([]domain.Product, error) {
	var products []domain.Product
	for _, product := range r.products {
		if product.CategoryID == categoryID && product.SalesStatus == domain.StatusAvailable {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) ListBySeller(_ context.Context, sellerEmail string) ([]domain.Product, error) {
	var products []domain.Product
	for _, product := range r.products {
		if product.SellerEmail == sellerEmail {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) ListAdvertised(_ context.Context) ([]domain.Product, error) {
	var products []domain.Product
	for _, product := range r.products {
		if product.Advertised && product.SalesStatus == domain.StatusAvailable {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) ListReported(_ context.Context) ([]domain.Product, error) {
	var products []domain.Product
	for _, product := range r.products {
		if product.Reported {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) SetAdvertised(_ context.Context, id string, advertised bool) error {
	product, ok := r.products[id]
	if !ok {
		return xerrors.ErrProductNotFound
	}
	product.Advertised = advertised
	return nil
}

func (r *fakeProductRepo) SetReported(_ context.Context, id string, reported bool) error {
	product, ok := r.products[id]
	if !ok {
		return xerrors.ErrProductNotFound
	}
	product.Reported = reported
	return nil
}

func (r *fakeProductRepo) MarkSold(_ context.Context, id string) error {
	product, ok := r.products[id]
	if !ok {
		return xerrors.ErrProductNotFound
	}
	product.SalesStatus = domain.StatusSold
	product.Advertised = false
	return nil
}

func (r *fakeProductRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return xerrors.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*domain.Category
}

func (r *fakeCategoryRepo) Insert(_ context.Context, category *domain.Category) error {
	if r.categories == nil {
		r.categories = map[string]*domain.Category{}
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if category, ok := r.categories[id]; ok {
		clone := *category
		return &clone, nil
	}
	return nil, xerrors.ErrNotFound
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	for _, category := range r.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

type fakePaymentRepo struct {
	payments  []domain.Payment
	insertErr error
}

func (r *fakePaymentRepo) Insert(_ context.Context, payment *domain.Payment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *fakePaymentRepo) ListByOrder(_ context.Context, orderID string) ([]domain.Payment, error) {
	var payments []domain.Payment
	for _, payment := range r.payments {
		if payment.OrderID == orderID {
			payments = append(payments, payment)
		}
	}
	return payments, nil
}

type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	calls        int
	err          error
}

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, amountCents int64, currency string) (*stripe.PaymentIntent, error) {
	g.calls++
	g.lastAmount = amountCents
	g.lastCurrency = currency
	if g.err != nil {
		return nil, g.err
	}
	return &stripe.PaymentIntent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       amountCents,
		Currency:     currency,
		Status:       "requires_payment_method",
	}, nil
}

// fakeTx runs the function directly; rollback on error is exercised by the
// pgx-backed Store, not here.
type fakeTx struct {
	calls int
}

func (t *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}
