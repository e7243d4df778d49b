package patient

import "context"

type Repository interface {
	List() []*Patient
	GetByID(id int) (*Patient, bool)
	Insert(ctx context.Context, p *Patient) error
	Replace(ctx context.Context, p *Patient) error
	Remove(ctx context.Context, id int) error
}
