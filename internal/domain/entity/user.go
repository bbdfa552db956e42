package entity

// User is an account that can own product lists. Users are the only entity
// whose ID crosses the API boundary as a raw integer; every other entity is
// scope-encoded.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Password     string
	MobileNumber string
}

// FullName joins the first and last names for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
