package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sales-service/internal/model"
	"sales-service/internal/repository"
	"sales-service/prometheus"

	"github.com/shopspring/decimal"
)

// ClientReader is the client data the reports need
type ClientReader interface {
	Exists(ctx context.Context, id uint) (bool, error)
	SearchByNamePrefix(ctx context.Context, prefix string) ([]model.Client, error)
	MostOrders(ctx context.Context) (*model.ClientOrderCount, error)
}

// ProductReader is the product data the reports need
type ProductReader interface {
	Exists(ctx context.Context, id uint) (bool, error)
	PricedAbove(ctx context.Context, minPrice decimal.Decimal) ([]model.Product, error)
	MostExpensive(ctx context.Context) (*model.Product, error)
	PriceStats(ctx context.Context) (model.PriceStats, error)
	WithoutDescription(ctx context.Context) ([]model.Product, error)
}

// OrderReader is the order data the reports need
type OrderReader interface {
	Exists(ctx context.Context, id uint) (bool, error)
	After(ctx context.Context, after time.Time) ([]model.Order, error)
	ListWithClients(ctx context.Context) ([]model.OrderClientRow, error)
}

// LineItemReader is the order detail data the reports need
type LineItemReader interface {
	ForOrder(ctx context.Context, orderID uint) ([]model.LineItem, error)
	ForAllOrders(ctx context.Context) ([]model.OrderLineItem, error)
	TotalQuantity(ctx context.Context, orderID uint) (int64, error)
	ProductNamesForClient(ctx context.Context, clientID uint) ([]string, error)
	ProductTotalsForClient(ctx context.Context, clientID uint) ([]model.ProductQuantity, error)
	BuyersOfProduct(ctx context.Context, productID uint) ([]model.Buyer, error)
	BuyerTotalsForProduct(ctx context.Context, productID uint) ([]model.BuyerQuantity, error)
}

// Service computes the derived sales views. It holds no state of its own.
type Service struct {
	clients  ClientReader
	products ProductReader
	orders   OrderReader
	items    LineItemReader
}

// NewService creates a report service over the given readers
func NewService(clients ClientReader, products ProductReader, orders OrderReader, items LineItemReader) *Service {
	return &Service{clients: clients, products: products, orders: orders, items: items}
}

// NewServiceFromStore wires a report service to the repositories of store
func NewServiceFromStore(store *repository.Store) *Service {
	return NewService(store.Clients, store.Products, store.Orders, store.OrderDetails)
}

// SearchClientsByNamePrefix returns clients whose name starts with prefix, ignoring case
func (s *Service) SearchClientsByNamePrefix(ctx context.Context, prefix string) (clients []model.Client, err error) {
	defer observe("clients_by_name", &err)

	if strings.TrimSpace(prefix) == "" {
		return nil, fmt.Errorf("a name to filter by is required: %w", ErrInvalidArgument)
	}
	clients, err = s.clients.SearchByNamePrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, fmt.Errorf("no clients named %q: %w", prefix, ErrNoResults)
	}
	return clients, nil
}

// ProductsAbovePrice returns products priced strictly above minPrice
func (s *Service) ProductsAbovePrice(ctx context.Context, minPrice decimal.Decimal) (products []model.Product, err error) {
	defer observe("products_above_price", &err)

	products, err = s.products.PricedAbove(ctx, minPrice)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("no products priced above %s: %w", minPrice.StringFixed(2), ErrNoResults)
	}
	return products, nil
}

// MostExpensiveProduct returns the highest priced product, lowest id on ties
func (s *Service) MostExpensiveProduct(ctx context.Context) (product *model.Product, err error) {
	defer observe("most_expensive_product", &err)

	product, err = s.products.MostExpensive(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("no products registered: %w", ErrNoResults)
	}
	return product, err
}

// AveragePriceReport returns the product count and the average price rounded
// to cents. An empty catalogue reports zero for both.
func (s *Service) AveragePriceReport(ctx context.Context) (stats model.PriceStats, err error) {
	defer observe("average_price", &err)

	stats, err = s.products.PriceStats(ctx)
	if err != nil {
		return model.PriceStats{}, err
	}
	if stats.ProductCount == 0 {
		stats.AveragePrice = decimal.Zero
	}
	stats.AveragePrice = stats.AveragePrice.Round(2)
	return stats, nil
}

// ProductsWithoutDescription returns products with a missing or empty description
func (s *Service) ProductsWithoutDescription(ctx context.Context) (products []model.Product, err error) {
	defer observe("products_without_description", &err)

	products, err = s.products.WithoutDescription(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("every product has a description: %w", ErrNoResults)
	}
	return products, nil
}

// ClientWithMostOrders returns the client with the most orders, lowest id on
// ties. It fails with ErrNoOrders rather than return a client with none.
func (s *Service) ClientWithMostOrders(ctx context.Context) (top *model.ClientOrderCount, err error) {
	defer observe("client_most_orders", &err)

	top, err = s.clients.MostOrders(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("no clients registered: %w", ErrNoResults)
	}
	if err != nil {
		return nil, err
	}
	if top.OrdersCount == 0 {
		return nil, ErrNoOrders
	}
	return top, nil
}

// OrdersAfterDate returns orders placed strictly after the given time
func (s *Service) OrdersAfterDate(ctx context.Context, after time.Time) (orders []model.Order, err error) {
	defer observe("orders_after_date", &err)

	orders, err = s.orders.After(ctx, after)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("no orders after %s: %w", after.Format(time.DateOnly), ErrNoResults)
	}
	return orders, nil
}

// OrderProducts returns the line items of an existing order
func (s *Service) OrderProducts(ctx context.Context, orderID uint) (items []model.LineItem, err error) {
	defer observe("order_products", &err)

	if err = s.requireOrder(ctx, orderID); err != nil {
		return nil, err
	}
	items, err = s.items.ForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("order %d has no products: %w", orderID, ErrNoResults)
	}
	return items, nil
}

// OrderTotalQuantity sums the quantities of an existing order. An order
// without line items totals zero.
func (s *Service) OrderTotalQuantity(ctx context.Context, orderID uint) (total model.OrderTotal, err error) {
	defer observe("order_total_quantity", &err)

	if err = s.requireOrder(ctx, orderID); err != nil {
		return model.OrderTotal{}, err
	}
	quantity, err := s.items.TotalQuantity(ctx, orderID)
	if err != nil {
		return model.OrderTotal{}, err
	}
	return model.OrderTotal{OrderID: orderID, TotalQuantity: quantity}, nil
}

// AllOrdersWithItems returns every order with its client and line items,
// ordered by order id. An empty store yields an empty list.
func (s *Service) AllOrdersWithItems(ctx context.Context) (result []model.OrderWithItems, err error) {
	defer observe("orders_with_items", &err)

	rows, err := s.orders.ListWithClients(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := s.items.ForAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	byOrder := make(map[uint][]model.LineItem, len(rows))
	for _, line := range lines {
		byOrder[line.OrderID] = append(byOrder[line.OrderID], line.LineItem)
	}

	result = make([]model.OrderWithItems, 0, len(rows))
	for _, row := range rows {
		items := byOrder[row.OrderID]
		if items == nil {
			items = []model.LineItem{}
		}
		result = append(result, model.OrderWithItems{
			OrderID:   row.OrderID,
			OrderDate: row.OrderDate,
			Client: model.ClientSummary{
				ClientID: row.ClientID,
				Name:     row.Name,
				Email:    row.Email,
			},
			Items: items,
		})
	}
	return result, nil
}

// ProductsSoldToClient returns the distinct names of products the client
// bought, alphabetically
func (s *Service) ProductsSoldToClient(ctx context.Context, clientID uint) (names []string, err error) {
	defer observe("products_sold_to_client", &err)

	if err = s.requireClient(ctx, clientID); err != nil {
		return nil, err
	}
	names, err = s.items.ProductNamesForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("client %d has no products sold: %w", clientID, ErrNoResults)
	}
	return names, nil
}

// ProductsSoldToClientWithQuantity returns the products the client bought with
// the quantity summed over its orders, largest first then by name
func (s *Service) ProductsSoldToClientWithQuantity(ctx context.Context, clientID uint) (totals []model.ProductQuantity, err error) {
	defer observe("products_sold_to_client_with_qty", &err)

	if err = s.requireClient(ctx, clientID); err != nil {
		return nil, err
	}
	totals, err = s.items.ProductTotalsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(totals) == 0 {
		return nil, fmt.Errorf("client %d has no products sold: %w", clientID, ErrNoResults)
	}
	return totals, nil
}

// BuyersOfProduct returns each client that bought the product once, by id
func (s *Service) BuyersOfProduct(ctx context.Context, productID uint) (buyers []model.Buyer, err error) {
	defer observe("buyers_of_product", &err)

	if err = s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}
	buyers, err = s.items.BuyersOfProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(buyers) == 0 {
		return nil, fmt.Errorf("product %d has no buyers: %w", productID, ErrNoResults)
	}
	return buyers, nil
}

// BuyersOfProductWithQuantity returns each buyer of the product with the
// quantity summed over its orders, largest first then by client id
func (s *Service) BuyersOfProductWithQuantity(ctx context.Context, productID uint) (buyers []model.BuyerQuantity, err error) {
	defer observe("buyers_of_product_with_qty", &err)

	if err = s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}
	buyers, err = s.items.BuyerTotalsForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(buyers) == 0 {
		return nil, fmt.Errorf("product %d has no buyers: %w", productID, ErrNoResults)
	}
	return buyers, nil
}

func (s *Service) requireClient(ctx context.Context, id uint) error {
	return mustExist(ctx, s.clients.Exists, "client", id)
}

func (s *Service) requireProduct(ctx context.Context, id uint) error {
	return mustExist(ctx, s.products.Exists, "product", id)
}

func (s *Service) requireOrder(ctx context.Context, id uint) error {
	return mustExist(ctx, s.orders.Exists, "order", id)
}

// mustExist fails with repository.ErrNotFound when exists reports no row
func mustExist(ctx context.Context, exists func(context.Context, uint) (bool, error), entity string, id uint) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %d does not exist: %w", entity, id, repository.ErrNotFound)
	}
	return nil
}

// observe records the outcome of a report query
func observe(report string, errp *error) {
	prometheus.RecordReportQuery(report, outcome(*errp))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid"
	case errors.Is(err, ErrNoResults):
		return "empty"
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	}
	return "error"
}
