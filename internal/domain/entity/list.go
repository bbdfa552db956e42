package entity

// ProductList is a user-owned shopping list. Lists hold generic products,
// never variants.
type ProductList struct {
	ID      int64
	Name    string
	OwnerID int64
}

// ProductListItem is the join row between a list and a generic product.
// Items carry their own identity so a single entry can be referenced or
// removed without touching the rest of the list.
type ProductListItem struct {
	ID            int64
	ProductListID int64
	ProductID     int64

	Product *Product
}
