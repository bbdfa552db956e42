package entity

import "strconv"

// Storefront is a merchant location joined with its owning merchant's name.
// The public API calls this a "Merchant", but a legal merchant can own many
// storefronts; the conflation is preserved at the API boundary only.
type Storefront struct {
	LocationID   int64
	MerchantID   int64
	MerchantName string
	StreetNumber int
	StreetName   string
	City         string
	State        string
	Zip          int
}

// Address renders the street portion of the storefront's address.
func (s *Storefront) Address() string {
	return strconv.Itoa(s.StreetNumber) + " " + s.StreetName
}
