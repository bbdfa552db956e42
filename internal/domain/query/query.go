// Package query defines backend-neutral predicate values passed from the
// resolution layer to the persistence layer. Predicates are immutable values;
// the storage implementation decides how to translate them into its own
// query dialect.
package query

// Match constrains a single string column. Present fields combine
// conjunctively; the zero value imposes no constraint. There is no OR or
// precedence between the parts.
type Match struct {
	StartsWith *string
	EndsWith   *string
	Equals     *string
}

// IsZero reports whether the match imposes no constraint at all.
func (m Match) IsZero() bool {
	return m.StartsWith == nil && m.EndsWith == nil && m.Equals == nil
}

// CategoryCriteria restricts a category search. All present fields must hold.
type CategoryCriteria struct {
	ID          *int64
	Name        Match
	Description Match
}

// AddressCriteria restricts a storefront search by its address columns.
// Each field accumulates onto the combined predicate conjunctively.
type AddressCriteria struct {
	StreetName Match
	City       Match
	State      Match
	Zip        Match
}

// ProductCriteria is the normalized product filter shared by every branch of
// the product resolver. CategoryIDs is an inclusion set (IN); CategoryID is
// an exact restriction imposed by a parent category. When both are present
// they intersect rather than union.
type ProductCriteria struct {
	ID          *int64
	Name        Match
	CategoryIDs []int64
	CategoryID  *int64
}
