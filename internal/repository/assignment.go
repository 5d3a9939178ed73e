package repository

import (
	"context"
	"slices"
	"time"

	"eduportal/internal/domain"
)

type AssignmentRepository struct {
	db    *assignmentTable
	now   func() time.Time
	newID func(string) string
}

func NewAssignmentRepository(db *DB) *AssignmentRepository {
	return &AssignmentRepository{db: db.assignments, now: db.now, newID: db.newID}
}

// Create assigns id and creation time and appends the assignment.
func (r *AssignmentRepository) Create(ctx context.Context, assignment domain.Assignment) *domain.Assignment {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	assignment = assignment.Clone()
	assignment.ID = r.newID(assignmentPrefix)
	assignment.CreatedAt = r.now()
	r.db.rows = append(r.db.rows, assignment)

	created := assignment.Clone()
	return &created
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	idx := r.index(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	assignment := r.db.rows[idx].Clone()
	return &assignment, nil
}

// List returns every assignment in insertion order.
func (r *AssignmentRepository) List(ctx context.Context) []*domain.Assignment {
	return r.ListByFilter(ctx, domain.AssignmentFilter{})
}

func (r *AssignmentRepository) ListByTeacher(ctx context.Context, teacherID string) []*domain.Assignment {
	return r.ListByFilter(ctx, domain.AssignmentFilter{CreatedBy: teacherID})
}

func (r *AssignmentRepository) ListByFilter(ctx context.Context, filter domain.AssignmentFilter) []*domain.Assignment {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	assignments := make([]*domain.Assignment, 0, len(r.db.rows))
	for _, row := range r.db.rows {
		if filter.CreatedBy != "" && row.CreatedBy != filter.CreatedBy {
			continue
		}
		assignment := row.Clone()
		assignments = append(assignments, &assignment)
	}
	return assignments
}

// Update merges upd into the stored assignment. Id, creator and creation time never change.
func (r *AssignmentRepository) Update(ctx context.Context, id string, upd domain.AssignmentUpdate) (*domain.Assignment, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	idx := r.index(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	upd.Apply(&r.db.rows[idx])

	updated := r.db.rows[idx].Clone()
	return &updated, nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	idx := r.index(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.db.rows = slices.Delete(r.db.rows, idx, idx+1)
	return nil
}

func (r *AssignmentRepository) index(id string) int {
	return slices.IndexFunc(r.db.rows, func(a domain.Assignment) bool { return a.ID == id })
}
