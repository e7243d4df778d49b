package billing

import "context"

type Repository interface {
	List() []*Record
	GetByID(id int) (*Record, bool)
	Insert(ctx context.Context, r *Record) error
	Replace(ctx context.Context, r *Record) error
	Remove(ctx context.Context, id int) error
}
