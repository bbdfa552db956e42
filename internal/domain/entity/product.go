package entity

// Product is the generic, merchant-independent description of a good.
// Location-specific pricing lives on Variant.
type Product struct {
	ID         int64
	Name       string
	Picture    string
	CategoryID int64
}

// Variant is a product as sold at one specific location, carrying its own
// price and weight. The Product association is populated by the repository
// when the query joins through to the generic product.
type Variant struct {
	ID         int64
	ProductID  int64
	LocationID int64
	Price      float64
	Weight     float64

	Product *Product
}
