package project

import "context"

// Repository provides storage for the ordered project collection.
type Repository interface {
	ReplaceAll(ctx context.Context, projects []Project) error
	Prepend(ctx context.Context, proj *Project) error
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (*Project, error)
	Count(ctx context.Context) (int, error)
}

// UserDirectory exposes the slice of the user collection the project
// service needs: the default creator.
type UserDirectory interface {
	FirstID(ctx context.Context) (int, error)
}
