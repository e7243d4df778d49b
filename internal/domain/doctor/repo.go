package doctor

import "context"

type Repository interface {
	List() []*Doctor
	GetByID(id int) (*Doctor, bool)
	Insert(ctx context.Context, d *Doctor) error
	Replace(ctx context.Context, d *Doctor) error
	Remove(ctx context.Context, id int) error
}
