package usecase

import "context"

// UserUsecase defines the user resolution contract.
type UserUsecase interface {
	// ResolveUser looks a user up by exact email match. A miss returns
	// nil, not an error.
	ResolveUser(ctx context.Context, email string) (*User, error)
}
