package testutil

import (
	"testing"
	"time"

	"sales-service/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateClient inserts a client directly in the database
func CreateClient(t *testing.T, db *gorm.DB, name, email string) model.Client {
	t.Helper()

	client := model.Client{Name: name, Email: email}
	require.NoError(t, db.Create(&client).Error, "failed to create test client")
	return client
}

// CreateProduct inserts a product directly in the database. An empty
// description is stored as NULL.
func CreateProduct(t *testing.T, db *gorm.DB, name, price, description string) model.Product {
	t.Helper()

	product := model.Product{Name: name, Price: decimal.RequireFromString(price)}
	if description != "" {
		product.Description = &description
	}
	require.NoError(t, db.Create(&product).Error, "failed to create test product")
	return product
}

// CreateOrder inserts an order for the client at the given time
func CreateOrder(t *testing.T, db *gorm.DB, clientID uint, at time.Time) model.Order {
	t.Helper()

	order := model.Order{ClientID: clientID, OrderDate: at}
	require.NoError(t, db.Omit(clause.Associations).Create(&order).Error, "failed to create test order")
	return order
}

// CreateOrderDetail inserts a line item
func CreateOrderDetail(t *testing.T, db *gorm.DB, orderID, productID uint, quantity int) model.OrderDetail {
	t.Helper()

	detail := model.OrderDetail{OrderID: orderID, ProductID: productID, Quantity: quantity}
	require.NoError(t, db.Omit(clause.Associations).Create(&detail).Error, "failed to create test order detail")
	return detail
}

// Date returns midnight UTC of the given day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Dataset is a small, fully linked store used across report tests
type Dataset struct {
	Ana, Bruno, Carla        model.Client
	Mouse, Keyboard, Cable   model.Product
	Order1, Order2, Order3   model.Order
	EmptyOrder               model.Order
	Order1Mouse, Order2Mouse model.OrderDetail
	Order1Cable, Order3Keys  model.OrderDetail
}

// SeedDataset creates:
//
//	Ana:   order1 (mouse x2, cable x1), order2 (mouse x3)
//	Bruno: order3 (keyboard x4), empty order
//	Carla: no orders
func SeedDataset(t *testing.T, db *gorm.DB) Dataset {
	t.Helper()

	var d Dataset
	d.Ana = CreateClient(t, db, "Ana Torres", "ana@example.com")
	d.Bruno = CreateClient(t, db, "Bruno Diaz", "bruno@example.com")
	d.Carla = CreateClient(t, db, "carla ruiz", "carla@example.com")

	d.Mouse = CreateProduct(t, db, "Mouse", "20.00", "")
	d.Keyboard = CreateProduct(t, db, "Keyboard", "45.50", "Mechanical keyboard")
	d.Cable = CreateProduct(t, db, "Cable", "20.01", "")

	d.Order1 = CreateOrder(t, db, d.Ana.ID, Date(2025, time.April, 20))
	d.Order2 = CreateOrder(t, db, d.Ana.ID, Date(2025, time.May, 1))
	d.Order3 = CreateOrder(t, db, d.Bruno.ID, Date(2025, time.May, 10))
	d.EmptyOrder = CreateOrder(t, db, d.Bruno.ID, Date(2025, time.June, 2))

	d.Order1Mouse = CreateOrderDetail(t, db, d.Order1.ID, d.Mouse.ID, 2)
	d.Order1Cable = CreateOrderDetail(t, db, d.Order1.ID, d.Cable.ID, 1)
	d.Order2Mouse = CreateOrderDetail(t, db, d.Order2.ID, d.Mouse.ID, 3)
	d.Order3Keys = CreateOrderDetail(t, db, d.Order3.ID, d.Keyboard.ID, 4)

	return d
}
