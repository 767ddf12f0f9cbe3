package domain

import "time"

// Payment is an immutable settlement record. One row per successful gateway
// charge; it always references the Order and Product as they existed at
// settlement time.
type Payment struct {
	ID            string    `json:"_id"`
	PaymentRef    string    `json:"paymentRef"`
	OrderID       string    `json:"orderId"`
	ProductID     string    `json:"productId"`
	TransactionID string    `json:"transactionId"`
	AmountCents   int64     `json:"amountCents"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdAt"`
}
