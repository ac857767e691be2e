package entity

// Item is one line item recovered from receipt text.
type Item struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Confidence float64 `json:"confidence"`
}

// LineTotal returns the extended amount (unit price times quantity).
func (i Item) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Summary holds the receipt-level monetary aggregates. Each field is
// independently optional and defaults to 0 when the receipt never
// declares it.
type Summary struct {
	Tax      float64 `json:"tax"`
	Tip      float64 `json:"tip"`
	Total    float64 `json:"total"`
	Subtotal float64 `json:"subtotal"`
}

// Metadata carries the non-monetary receipt header fields. Date is in
// YYYY-MM-DD form when normalization succeeded, otherwise the raw
// matched token, otherwise empty.
type Metadata struct {
	Merchant string `json:"merchant"`
	Date     string `json:"date"`
}

// ParsedReceipt is the terminal aggregate returned by a parse. It is
// fully populated on every return (zero values, never absent fields)
// and is not mutated afterwards.
type ParsedReceipt struct {
	Merchant   string  `json:"merchant"`
	Date       string  `json:"date"`
	Items      []Item  `json:"items"`
	Tax        float64 `json:"tax"`
	Tip        float64 `json:"tip"`
	Total      float64 `json:"total"`
	Subtotal   float64 `json:"subtotal"`
	Confidence float64 `json:"confidence"`
}
