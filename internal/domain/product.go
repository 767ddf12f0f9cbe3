package domain

import "time"

type SalesStatus string

const (
	StatusAvailable SalesStatus = "available"
	StatusSold      SalesStatus = "sold"
)

type Product struct {
	ID            string      `json:"_id"`
	SellerEmail   string      `json:"sellerEmail"`
	CategoryID    string      `json:"categoryId"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"originalPrice"`
	YearsOfUse    int         `json:"yearsOfUse"`
	Condition     string      `json:"condition"`
	Location      string      `json:"location"`
	Phone         string      `json:"phone"`
	ImageURL      string      `json:"imageURL"`
	SalesStatus   SalesStatus `json:"salesStatus"`
	Advertised    bool        `json:"advertised"`
	Reported      bool        `json:"reported"`
	PostedAt      time.Time   `json:"postedAt"`
}
