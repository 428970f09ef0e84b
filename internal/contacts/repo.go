package contacts

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "contact not found" }

type Repo interface {
	Create(ctx context.Context, contact Contact) error
	GetByID(ctx context.Context, contactID string) (Contact, error)
	List(ctx context.Context) ([]Contact, error)
	Update(ctx context.Context, contact Contact) error
	Delete(ctx context.Context, contactID string) error
}
