package usecase

// The output DTOs carry opaque, scope-encoded IDs and are ready to be used as
// the parent object of a nested resolution.

// Category is the external view of a product category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MerchantLocation is the address block of a storefront.
type MerchantLocation struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// Merchant is the external view of a single storefront location joined with
// its owning merchant's name. Its ID is location-scoped.
type Merchant struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Location MerchantLocation `json:"location"`
}

// Product is the external view of a product. Generic results carry a
// product-scoped ID and nil price fields; merchant-scoped results flatten the
// variant into the same shape with a variant-scoped ID, the price and weight
// of the sold instance, and the selling location's ID.
type Product struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Picture    string   `json:"picture"`
	CategoryID string   `json:"categoryId"`
	Price      *float64 `json:"price,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	MerchantID *string  `json:"merchantId,omitempty"`
}

// List is the external view of a product list.
type List struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the external view of an account. The ID is exposed as a raw
// integer for compatibility with existing clients; every other entity is
// scope-encoded.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	MobileNumber string `json:"mobileNumber"`
}
