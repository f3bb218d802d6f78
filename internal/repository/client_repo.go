package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sales-service/internal/model"
	"sales-service/prometheus"

	"gorm.io/gorm"
)

// ClientRepo implements client persistence on GORM
type ClientRepo struct {
	table
}

// NewClientRepo creates a new ClientRepo
func NewClientRepo(db *gorm.DB) *ClientRepo {
	return &ClientRepo{table{db: db, entity: "client", columns: []string{"name", "email"}}}
}

// List returns every client ordered by id
func (r *ClientRepo) List(ctx context.Context) ([]model.Client, error) {
	clients := []model.Client{}
	if err := r.list(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Get returns the client with the given id or ErrNotFound
func (r *ClientRepo) Get(ctx context.Context, id uint) (*model.Client, error) {
	var client model.Client
	if err := r.get(ctx, id, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// Exists reports whether the client exists
func (r *ClientRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return existsIn(r.session(ctx), &model.Client{}, id)
}

// Insert creates the client and sets its assigned id
func (r *ClientRepo) Insert(ctx context.Context, client *model.Client) error {
	return r.insert(ctx, client, nil)
}

// Replace overwrites every field of the client with the given id
func (r *ClientRepo) Replace(ctx context.Context, id uint, client *model.Client) error {
	client.ID = id
	return r.replace(ctx, id, client, nil)
}

// Delete removes the client. Clients with orders cannot be deleted.
func (r *ClientRepo) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id, &model.Client{}, func(tx *gorm.DB) error {
		return restrict(tx, &model.Order{}, r.entity, id, "client_id")
	})
}

// SearchByNamePrefix returns clients whose name starts with prefix, ignoring case
func (r *ClientRepo) SearchByNamePrefix(ctx context.Context, prefix string) ([]model.Client, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	clients := []model.Client{}
	err := r.session(ctx).
		Where("LOWER(name) LIKE LOWER(?) ESCAPE '!'", escapeLike(prefix)+"%").
		Order("id").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clients, nil
}

// MostOrders returns the client with the most orders, lowest id first on
// ties. Clients without orders count zero. ErrNotFound means no clients.
func (r *ClientRepo) MostOrders(ctx context.Context) (*model.ClientOrderCount, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var rows []model.ClientOrderCount
	err := r.session(ctx).
		Model(&model.Client{}).
		Select("clients.id AS client_id, clients.name, clients.email, COUNT(orders.id) AS orders_count").
		Joins("LEFT JOIN orders ON orders.client_id = clients.id").
		Group("clients.id, clients.name, clients.email").
		Order("orders_count DESC, clients.id ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count client orders: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no clients: %w", ErrNotFound)
	}
	return &rows[0], nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike neutralises LIKE wildcards so the input matches literally
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
