package handler

import (
	"fmt"
	"net/http"

	"sales-service/internal/model"
	"sales-service/internal/report"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ClientRequest defines the structure for client creation/update requests
type ClientRequest struct {
	ID    uint   `json:"id"`
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,max=100"`
}

func (r ClientRequest) toModel() model.Client {
	return model.Client{Name: r.Name, Email: r.Email}
}

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name" validate:"required,max=100"`
	Description *string         `json:"description" validate:"omitempty,max=100"`
	Price       decimal.Decimal `json:"price"`
}

func (r ProductRequest) toModel() model.Product {
	return model.Product{Name: r.Name, Description: r.Description, Price: r.Price.Round(2)}
}

// OrderRequest defines the structure for order creation/update requests.
// order_date accepts YYYY-MM-DD, YYYY-MM-DDTHH:MM:SS or RFC 3339.
type OrderRequest struct {
	ID        uint   `json:"id"`
	ClientID  uint   `json:"client_id" validate:"required"`
	OrderDate string `json:"order_date" validate:"required"`
}

func (r OrderRequest) toModel() (model.Order, error) {
	at, err := report.ParseDate(r.OrderDate)
	if err != nil {
		return model.Order{}, err
	}
	return model.Order{ClientID: r.ClientID, OrderDate: at}, nil
}

// OrderDetailRequest defines the structure for line item creation/update requests
type OrderDetailRequest struct {
	ID        uint `json:"id"`
	OrderID   uint `json:"order_id" validate:"required"`
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity"`
}

func (r OrderDetailRequest) toModel() model.OrderDetail {
	return model.OrderDetail{OrderID: r.OrderID, ProductID: r.ProductID, Quantity: r.Quantity}
}

// bindRequest decodes the JSON body into req and validates it
func bindRequest(c echo.Context, req interface{}, entity string) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: malformed %s body", errInvalidRequest, entity)
	}
	return c.Validate(req)
}

// checkBodyID rejects a body id that names another row than the path. A
// missing body id takes the path id.
func checkBodyID(bodyID, pathID uint) error {
	if bodyID != 0 && bodyID != pathID {
		return fmt.Errorf("%w: body id %d does not match path id %d", errInvalidRequest, bodyID, pathID)
	}
	return nil
}

// created writes a 201 response pointing at the new row
func created(c echo.Context, path string, id uint, body interface{}) error {
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("%s/%d", path, id))
	return c.JSON(http.StatusCreated, body)
}
