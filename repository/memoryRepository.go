package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ShriyanshSinghPatel/AngularForm/helper"
	"github.com/ShriyanshSinghPatel/AngularForm/models"
)

// MemoryStore keeps both collections in process. It backs STORE=memory and the
// HTTP tests; contents are lost on restart.
type MemoryStore struct {
	Menu   *MemoryMenuRepository
	Orders *MemoryOrderRepository
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Menu:   NewMemoryMenuRepository(),
		Orders: NewMemoryOrderRepository(),
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

type MemoryMenuRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]models.MenuItem
}

func NewMemoryMenuRepository() *MemoryMenuRepository {
	return &MemoryMenuRepository{items: make(map[string]models.MenuItem)}
}

func (r *MemoryMenuRepository) Insert(ctx context.Context, item models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return helper.ValidationError{Field: "id", Message: "menu item id already exists"}
	}
	r.items[item.ID] = copyMenuItem(item)
	r.order = append(r.order, item.ID)
	return nil
}

func (r *MemoryMenuRepository) FindByID(ctx context.Context, id string) (models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return models.MenuItem{}, helper.NotFoundError{Resource: "menu item", ID: id}
	}
	return copyMenuItem(item), nil
}

func (r *MemoryMenuRepository) List(ctx context.Context, category models.MenuCategory, limit int64) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.MenuItem{}
	for _, id := range r.order {
		if limit > 0 && int64(len(result)) >= limit {
			break
		}
		item := r.items[id]
		if category != "" && item.Category != category {
			continue
		}
		result = append(result, copyMenuItem(item))
	}
	return result, nil
}

func (r *MemoryMenuRepository) Replace(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return models.MenuItem{}, helper.NotFoundError{Resource: "menu item", ID: item.ID}
	}
	r.items[item.ID] = copyMenuItem(item)
	return copyMenuItem(item), nil
}

func (r *MemoryMenuRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return helper.NotFoundError{Resource: "menu item", ID: id}
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryMenuRepository) ReplaceAll(ctx context.Context, items []models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make(map[string]models.MenuItem, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if _, exists := next[item.ID]; exists {
			return helper.ValidationError{Field: "id", Message: "menu item id already exists: " + item.ID}
		}
		next[item.ID] = copyMenuItem(item)
		order = append(order, item.ID)
	}

	// Swap only once the whole set is known to be valid.
	r.items = next
	r.order = order
	return nil
}

var errDuplicateID = errors.New("duplicate id")

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Insert(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.ID == order.ID {
			return helper.InfrastructureError{Op: "insert order", Err: errDuplicateID}
		}
	}
	r.orders = append(r.orders, copyOrder(order))
	return nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, id string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.ID == id {
			return copyOrder(order), nil
		}
	}
	return models.Order{}, helper.NotFoundError{Resource: "order", ID: id}
}

func (r *MemoryOrderRepository) ListNewestFirst(ctx context.Context, limit int64) ([]models.Order, error) {
	r.mu.RLock()
	sorted := make([]models.Order, len(r.orders))
	for i, order := range r.orders {
		sorted[i] = copyOrder(order)
	}
	r.mu.RUnlock()

	// Reverse first so later inserts lead when timestamps tie.
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if limit > 0 && int64(len(sorted)) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func copyMenuItem(item models.MenuItem) models.MenuItem {
	item.Ingredients = append([]string{}, item.Ingredients...)
	if item.ImageURL != nil {
		url := *item.ImageURL
		item.ImageURL = &url
	}
	return item
}

func copyOrder(order models.Order) models.Order {
	order.Items = append([]models.OrderLineItem{}, order.Items...)
	return order
}
