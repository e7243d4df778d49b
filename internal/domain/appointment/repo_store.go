package appointment

import (
	"context"

	"github.com/clinichq/hms/internal/domain/record"
	"github.com/clinichq/hms/internal/platform/store"
)

// StorageKey is the store key the appointment collection is persisted under.
const StorageKey = "appointments"

type storeRepo struct {
	coll *record.Collection[*Appointment]
}

// NewRepo hydrates the appointment collection from the store, seeding it
// on first run. A *record.PersistenceError from seeding leaves the repo
// usable in memory; any other error is fatal.
func NewRepo(ctx context.Context, st store.Store) (Repository, error) {
	coll := record.NewCollection[*Appointment]("appointment", StorageKey, st)
	err := coll.Hydrate(ctx, Seed())
	if err != nil && !record.IsPersistence(err) {
		return nil, err
	}
	return &storeRepo{coll: coll}, err
}

func (r *storeRepo) List() []*Appointment { return r.coll.List() }

func (r *storeRepo) GetByID(id int) (*Appointment, bool) { return r.coll.Get(id) }

func (r *storeRepo) Insert(ctx context.Context, a *Appointment) error { return r.coll.Insert(ctx, a) }

func (r *storeRepo) Replace(ctx context.Context, a *Appointment) error { return r.coll.Replace(ctx, a) }

func (r *storeRepo) Remove(ctx context.Context, id int) error { return r.coll.Remove(ctx, id) }
