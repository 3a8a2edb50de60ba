package user

import "context"

// Repository provides storage for the ingested user collection.
type Repository interface {
	ReplaceAll(ctx context.Context, users []User) error
	List(ctx context.Context) ([]User, error)
	First(ctx context.Context) (*User, error)
}
