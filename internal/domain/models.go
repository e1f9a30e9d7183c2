package domain

// Product represents one record in the changelist
type Product struct {
	ID      int64
	Name    string
	SKU     string
	Price   float64
	Stock   int
	InStock bool
}

// Variant represents one repeatable sub-record of a product
type Variant struct {
	ID        int64
	ProductID int64
	Position  int // 0-based, contiguous within a product
	Label     string
	SKUSuffix string
	Stock     int
}

// Page represents one page of changelist results
type Page struct {
	Products []Product
	Offset   int
	Total    int // total records matching the current filter
}
