package appointment

import "context"

type Repository interface {
	List() []*Appointment
	GetByID(id int) (*Appointment, bool)
	Insert(ctx context.Context, a *Appointment) error
	Replace(ctx context.Context, a *Appointment) error
	Remove(ctx context.Context, id int) error
}
