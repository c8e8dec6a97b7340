package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"boxes/infras/otel"
	"boxes/shared/constant"
	"boxes/shared/timezone"
)

// Entity is the capability set the store needs from a persisted type:
// explicit id and timestamp accessors, no reflection.
type Entity interface {
	GetID() int
	SetID(id int)
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
	SetUpdatedAt(t time.Time)
}

// ListQuery narrows and shapes a List call. Every part is optional; the
// default ordering is newest-first by creation time.
type ListQuery[T Entity] struct {
	Predicate func(T) bool
	OrderBy   func(a, b T) int
	Select    func(T) T
}

// InMemory is a keyed in-process store for one entity type. State lives for
// the process lifetime only.
type InMemory[T Entity] struct {
	entitas string
	otel    otel.Otel

	mu     sync.RWMutex
	store  map[int]T
	nextID int
}

func NewInMemory[T Entity](entitasName string, ot otel.Otel) *InMemory[T] {
	return &InMemory[T]{
		entitas: entitasName,
		otel:    ot,
		store:   map[int]T{},
		nextID:  1,
	}
}

// Add assigns the next sequential id when the entity has none, stamps the
// timestamps and inserts. Id assignment and insertion happen atomically
// under one lock so concurrent adds never collide.
func (repo *InMemory[T]) Add(ctx context.Context, entity T) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Add", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if entity.GetID() == 0 {
		entity.SetID(repo.nextID)
		repo.nextID++
	}

	now := timezone.Now().UTC()
	if entity.GetCreatedAt().IsZero() {
		entity.SetCreatedAt(now)
	}

	entity.SetUpdatedAt(now)

	repo.store[entity.GetID()] = entity

	return entity, nil
}

// Find returns the stored entity, or false when absent.
func (repo *InMemory[T]) Find(ctx context.Context, id int) (T, bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Find", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	entity, found := repo.store[id]

	return entity, found, nil
}

// List materializes a snapshot of the store at call time, filtered, ordered
// and projected per the query.
func (repo *InMemory[T]) List(ctx context.Context, query ListQuery[T]) ([]T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.List", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()

	entities := make([]T, 0, len(repo.store))
	for _, entity := range repo.store {
		if query.Predicate != nil && !query.Predicate(entity) {
			continue
		}

		entities = append(entities, entity)
	}

	repo.mu.RUnlock()

	orderBy := query.OrderBy
	if orderBy == nil {
		orderBy = func(a, b T) int {
			return b.GetCreatedAt().Compare(a.GetCreatedAt())
		}
	}

	slices.SortStableFunc(entities, orderBy)

	if query.Select != nil {
		for i, entity := range entities {
			entities[i] = query.Select(entity)
		}
	}

	return entities, nil
}

// Exist reports whether any stored entity matches the predicate.
func (repo *InMemory[T]) Exist(ctx context.Context, predicate func(T) bool) (bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, entity := range repo.store {
		if predicate(entity) {
			return true, nil
		}
	}

	return false, nil
}
