package usecase

// contextKind tags which parent, if any, invoked the product resolver.
type contextKind int

const (
	kindStandalone contextKind = iota
	kindMerchant
	kindCategory
	kindList
)

// ResolutionContext is the single parent reference passed into the product
// resolver. Construct it with one of Standalone, WithinMerchant,
// WithinCategory, or WithinList; the tagged union makes two simultaneous
// parents unrepresentable.
type ResolutionContext struct {
	kind     contextKind
	merchant *Merchant
	category *Category
	list     *List
}

// Standalone resolves products with no parent object.
func Standalone() ResolutionContext {
	return ResolutionContext{kind: kindStandalone}
}

// WithinMerchant resolves the variants sold at the parent storefront.
func WithinMerchant(m *Merchant) ResolutionContext {
	return ResolutionContext{kind: kindMerchant, merchant: m}
}

// WithinCategory resolves the products of the parent category.
func WithinCategory(c *Category) ResolutionContext {
	return ResolutionContext{kind: kindCategory, category: c}
}

// WithinList resolves the items of the parent product list.
func WithinList(l *List) ResolutionContext {
	return ResolutionContext{kind: kindList, list: l}
}

// Merchant returns the parent storefront, if that is the active kind.
func (r ResolutionContext) Merchant() (*Merchant, bool) {
	return r.merchant, r.kind == kindMerchant
}

// Category returns the parent category, if that is the active kind.
func (r ResolutionContext) Category() (*Category, bool) {
	return r.category, r.kind == kindCategory
}

// List returns the parent list, if that is the active kind.
func (r ResolutionContext) List() (*List, bool) {
	return r.list, r.kind == kindList
}
