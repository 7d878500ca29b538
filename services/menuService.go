package services

import (
	"context"

	"github.com/ShriyanshSinghPatel/AngularForm/helper"
	"github.com/ShriyanshSinghPatel/AngularForm/metrics"
	"github.com/ShriyanshSinghPatel/AngularForm/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ListLimit caps every listing; there is no pagination.
const ListLimit int64 = 1000

type MenuStore interface {
	Insert(ctx context.Context, item models.MenuItem) error
	FindByID(ctx context.Context, id string) (models.MenuItem, error)
	List(ctx context.Context, category models.MenuCategory, limit int64) ([]models.MenuItem, error)
	Replace(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type MenuService struct {
	store MenuStore
	log   logrus.FieldLogger
	newID func() string
}

func NewMenuService(store MenuStore, log logrus.FieldLogger) *MenuService {
	return &MenuService{
		store: store,
		log:   log,
		newID: uuid.NewString,
	}
}

func (s *MenuService) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.List(ctx, "", ListLimit)
}

func (s *MenuService) ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	c := models.MenuCategory(category)
	if !c.Valid() {
		return nil, helper.ValidationError{Field: "category", Message: "unknown menu category: " + category}
	}
	return s.store.List(ctx, c, ListLimit)
}

func (s *MenuService) Create(ctx context.Context, in models.MenuItemCreate) (models.MenuItem, error) {
	if err := helper.Validate(in); err != nil {
		return models.MenuItem{}, err
	}

	item := in.ToMenuItem(s.newID())
	if err := s.store.Insert(ctx, item); err != nil {
		return models.MenuItem{}, err
	}

	metrics.MenuItemsChanged.WithLabelValues("create").Inc()
	s.log.WithFields(logrus.Fields{
		"menu_item_id": item.ID,
		"category":     item.Category,
	}).Info("menu item created")
	return item, nil
}

// Update replaces every field of the item except its id. Concurrent updates
// are last-write-wins.
func (s *MenuService) Update(ctx context.Context, id string, in models.MenuItemCreate) (models.MenuItem, error) {
	if err := helper.Validate(in); err != nil {
		return models.MenuItem{}, err
	}

	updated, err := s.store.Replace(ctx, in.ToMenuItem(id))
	if err != nil {
		return models.MenuItem{}, err
	}

	metrics.MenuItemsChanged.WithLabelValues("update").Inc()
	s.log.WithField("menu_item_id", id).Info("menu item updated")
	return updated, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	metrics.MenuItemsChanged.WithLabelValues("delete").Inc()
	s.log.WithField("menu_item_id", id).Info("menu item deleted")
	return nil
}
