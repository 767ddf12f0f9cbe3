package domain

import "time"

// Order is a buyer's intent to purchase a product. paid and transactionId
// are written only by the settlement workflow.
type Order struct {
	ID            string    `json:"_id"`
	BuyerEmail    string    `json:"buyerEmail"`
	ProductID     string    `json:"productId"`
	ProductName   string    `json:"productName"`
	Price         float64   `json:"price"`
	Paid          bool      `json:"paid"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}
