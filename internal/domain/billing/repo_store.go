package billing

import (
	"context"

	"github.com/clinichq/hms/internal/domain/record"
	"github.com/clinichq/hms/internal/platform/store"
)

// StorageKey is the store key the billing collection is persisted under.
const StorageKey = "billing"

type storeRepo struct {
	coll *record.Collection[*Record]
}

// NewRepo hydrates the billing collection from the store, seeding it on
// first run. A *record.PersistenceError from seeding leaves the repo usable
// in memory; any other error is fatal.
func NewRepo(ctx context.Context, st store.Store) (Repository, error) {
	coll := record.NewCollection[*Record]("billing record", StorageKey, st)
	err := coll.Hydrate(ctx, Seed())
	if err != nil && !record.IsPersistence(err) {
		return nil, err
	}
	return &storeRepo{coll: coll}, err
}

func (r *storeRepo) List() []*Record { return r.coll.List() }

func (r *storeRepo) GetByID(id int) (*Record, bool) { return r.coll.Get(id) }

func (r *storeRepo) Insert(ctx context.Context, rec *Record) error { return r.coll.Insert(ctx, rec) }

func (r *storeRepo) Replace(ctx context.Context, rec *Record) error { return r.coll.Replace(ctx, rec) }

func (r *storeRepo) Remove(ctx context.Context, id int) error { return r.coll.Remove(ctx, id) }
