package repository

import "github.com/aulanet/aulanet-backend/internal/store"

// Collections is the persistence contract the repositories ask for: whole
// collection load/save, a per-collection writer lock, and identifier
// reservation. *store.Store provides it.
type Collections interface {
	Load(name string, dst any) error
	Save(name string, records any) error
	Lock(name string) func()
	NextID(name string) (int, error)
}

var _ Collections = (*store.Store)(nil)
