package repository

import (
	"errors"
	"time"

	"github.com/aulanet/aulanet-backend/internal/model"
)

const userCollection = "usuarios"

// Sentinels for AppendUnique, so callers can tell which uniqueness rule a
// rejected registration tripped.
var (
	ErrDuplicateID    = errors.New("user id already registered")
	ErrDuplicateEmail = errors.New("user email already registered")
)

type UserRepository struct {
	store Collections
}

func NewUserRepository(s Collections) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) All() ([]model.User, error) {
	var users []model.User
	if err := r.store.Load(userCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID returns the first user with the given ID, or nil. IDs are unique
// by the registration invariant, so first match is definitive.
func (r *UserRepository) FindByID(id string) (*model.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// AppendUnique adds a user and persists the collection, holding the writer
// lock across the uniqueness check and the write so two concurrent
// registrations cannot both pass the check. The ID is checked before the
// email: the first rule tripped decides the sentinel.
func (r *UserRepository) AppendUnique(u model.User) error {
	unlock := r.store.Lock(userCollection)
	defer unlock()

	var users []model.User
	if err := r.store.Load(userCollection, &users); err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == u.ID {
			return ErrDuplicateID
		}
	}
	for i := range users {
		if users[i].Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	users = append(users, u)
	return r.store.Save(userCollection, users)
}

// TouchLastAccess stamps the user's last-access time. The collection is
// re-read under the lock so a registration racing in between is not dropped.
func (r *UserRepository) TouchLastAccess(id string, t time.Time) error {
	unlock := r.store.Lock(userCollection)
	defer unlock()

	var users []model.User
	if err := r.store.Load(userCollection, &users); err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].LastAccessAt = &t
			break
		}
	}
	return r.store.Save(userCollection, users)
}
