package repository

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
)

// mockStore is the in-memory analogue of crud for tests and demos. Rows are
// kept in insertion order so GetAll and the lecture filters observe the same
// natural ordering the real store exposes. Returned values are independent
// copies; mutating them never touches stored state.
type mockStore[T any] struct {
	mutex sync.RWMutex
	seq   int64
	order []int64
	rows  map[int64]T

	noun  string
	id    func(*T) int64
	setID func(*T, int64)
	dup   func(a, b *T) bool
	refs  func(e *T) error
	clone func(T) T
}

func newMockStore[T any](noun string, id func(*T) int64, setID func(*T, int64), dup func(a, b *T) bool) mockStore[T] {
	return mockStore[T]{
		rows:  make(map[int64]T),
		noun:  noun,
		id:    id,
		setID: setID,
		dup:   dup,
	}
}

func (s *mockStore[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s id %d", domain.ErrNotFound, s.noun, id)
	}
	row = s.copyRow(row)
	return &row, nil
}

// getBy returns the first row matching the predicate, in insertion order.
func (s *mockStore[T]) getBy(match func(*T) bool) (*T, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, id := range s.order {
		row := s.rows[id]
		if match(&row) {
			row = s.copyRow(row)
			return &row, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, s.noun)
}

func (s *mockStore[T]) GetAll(ctx context.Context) ([]*T, error) {
	return s.snapshot(func(*T) bool { return true }), nil
}

func (s *mockStore[T]) Insert(ctx context.Context, e *T) error {
	if e == nil {
		return fmt.Errorf("%w: nil %s", domain.ErrInvalidArgument, s.noun)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, id := range s.order {
		row := s.rows[id]
		if s.dup(&row, e) {
			return fmt.Errorf("%w: %s", domain.ErrConflict, s.noun)
		}
	}
	if s.refs != nil {
		if err := s.refs(e); err != nil {
			return err
		}
	}

	s.seq++
	s.setID(e, s.seq)
	s.rows[s.seq] = s.copyRow(*e)
	s.order = append(s.order, s.seq)
	return nil
}

func (s *mockStore[T]) Update(ctx context.Context, e *T) error {
	if e == nil {
		return fmt.Errorf("%w: nil %s", domain.ErrInvalidArgument, s.noun)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := s.id(e)
	if _, ok := s.rows[id]; !ok {
		return fmt.Errorf("%w: %s id %d", domain.ErrInconsistentState, s.noun, id)
	}
	if s.refs != nil {
		if err := s.refs(e); err != nil {
			return err
		}
	}
	s.rows[id] = s.copyRow(*e)
	return nil
}

func (s *mockStore[T]) Delete(ctx context.Context, e *T) (*T, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil %s", domain.ErrInvalidArgument, s.noun)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := s.id(e)
	row, ok := s.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s id %d", domain.ErrInconsistentState, s.noun, id)
	}
	delete(s.rows, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	row = s.copyRow(row)
	return &row, nil
}

func (s *mockStore[T]) exists(id int64) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.rows[id]
	return ok
}

// mutate applies fn to the stored row in place; false when the row is gone.
func (s *mockStore[T]) mutate(id int64, fn func(*T)) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return false
	}
	fn(&row)
	s.rows[id] = row
	return true
}

// snapshot copies matching rows in insertion order.
func (s *mockStore[T]) snapshot(match func(*T) bool) []*T {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]*T, 0, len(s.order))
	for _, id := range s.order {
		row := s.rows[id]
		if match(&row) {
			copied := s.copyRow(row)
			out = append(out, &copied)
		}
	}
	return out
}

// copyRow detaches a row from stored state. Entities carrying slice fields
// set clone so those are copied too, not just the struct value.
func (s *mockStore[T]) copyRow(row T) T {
	if s.clone != nil {
		return s.clone(row)
	}
	return row
}
