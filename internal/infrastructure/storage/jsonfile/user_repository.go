package jsonfile

import (
	"context"
	"strings"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository stores user accounts in the users collection.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if _, err := r.store.Read(usersCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.store.Mutate(usersCollection, func() error {
		users := []domain.User{}
		if _, err := r.store.Read(usersCollection, &users); err != nil {
			return err
		}
		for i := range users {
			if strings.EqualFold(users[i].Username, user.Username) {
				return domain.ErrUsernameTaken
			}
		}
		users = append(users, *user)
		return r.store.Write(usersCollection, users)
	})
}

func (r *UserRepository) Delete(ctx context.Context, id string, guard func(target domain.User, all []domain.User) error) error {
	return r.store.Mutate(usersCollection, func() error {
		users := []domain.User{}
		if _, err := r.store.Read(usersCollection, &users); err != nil {
			return err
		}
		idx := -1
		for i := range users {
			if users[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrUserNotFound
		}
		if guard != nil {
			if err := guard(users[idx], users); err != nil {
				return err
			}
		}
		users = append(users[:idx], users[idx+1:]...)
		return r.store.Write(usersCollection, users)
	})
}
