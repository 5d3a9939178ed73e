package repository

import (
	"context"
	"strings"

	"eduportal/internal/domain"
)

type UserRepository struct {
	db    *userTable
	newID func(string) string
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.users, newID: db.newID}
}

// Create stores usr under a fresh id. Emails are unique, compared case-insensitively.
func (r *UserRepository) Create(ctx context.Context, usr domain.User) (*domain.User, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if r.indexByEmail(usr.Email) >= 0 {
		return nil, ErrEmailExists
	}

	usr = usr.Clone()
	usr.ID = r.newID(userPrefix)
	r.db.rows = append(r.db.rows, usr)

	created := usr.Clone()
	return &created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, usr := range r.db.rows {
		if usr.ID == id {
			found := usr.Clone()
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if idx := r.indexByEmail(email); idx >= 0 {
		usr := r.db.rows[idx].Clone()
		return &usr, nil
	}
	return nil, ErrNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	users := make([]*domain.User, 0, len(r.db.rows))
	for _, row := range r.db.rows {
		usr := row.Clone()
		users = append(users, &usr)
	}
	return users, nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	var users []*domain.User
	for _, row := range r.db.rows {
		if row.Role == role {
			usr := row.Clone()
			users = append(users, &usr)
		}
	}
	return users, nil
}

func (r *UserRepository) indexByEmail(email string) int {
	email = strings.TrimSpace(email)
	for i, usr := range r.db.rows {
		if strings.EqualFold(usr.Email, email) {
			return i
		}
	}
	return -1
}
