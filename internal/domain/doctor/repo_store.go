package doctor

import (
	"context"

	"github.com/clinichq/hms/internal/domain/record"
	"github.com/clinichq/hms/internal/platform/store"
)

// StorageKey is the store key the doctor collection is persisted under.
const StorageKey = "doctors"

type storeRepo struct {
	coll *record.Collection[*Doctor]
}

// NewRepo hydrates the doctor collection from the store, seeding it on
// first run. A *record.PersistenceError from seeding leaves the repo usable
// in memory; any other error is fatal.
func NewRepo(ctx context.Context, st store.Store) (Repository, error) {
	coll := record.NewCollection[*Doctor]("doctor", StorageKey, st)
	err := coll.Hydrate(ctx, Seed())
	if err != nil && !record.IsPersistence(err) {
		return nil, err
	}
	return &storeRepo{coll: coll}, err
}

func (r *storeRepo) List() []*Doctor { return r.coll.List() }

func (r *storeRepo) GetByID(id int) (*Doctor, bool) { return r.coll.Get(id) }

func (r *storeRepo) Insert(ctx context.Context, d *Doctor) error { return r.coll.Insert(ctx, d) }

func (r *storeRepo) Replace(ctx context.Context, d *Doctor) error { return r.coll.Replace(ctx, d) }

func (r *storeRepo) Remove(ctx context.Context, id int) error { return r.coll.Remove(ctx, id) }
