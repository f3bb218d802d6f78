package handler

import (
	"context"
	"net/http"

	"sales-service/internal/model"
	"sales-service/pkg/logger"
	"sales-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ClientStore is the client persistence used by ClientHandler
type ClientStore interface {
	List(ctx context.Context) ([]model.Client, error)
	Get(ctx context.Context, id uint) (*model.Client, error)
	Insert(ctx context.Context, client *model.Client) error
	Replace(ctx context.Context, id uint, client *model.Client) error
	Delete(ctx context.Context, id uint) error
}

// ClientHandler serves the /clients CRUD endpoints
type ClientHandler struct {
	clients ClientStore
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clients ClientStore) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// ListClients handles retrieving all clients
func (h *ClientHandler) ListClients(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("client", "list")

	clients, err := h.clients.List(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to list clients", err)
	}

	log.Info("Clients retrieved successfully", zap.Int("count", len(clients)))
	return c.JSON(http.StatusOK, clients)
}

// GetClient handles retrieving a single client by ID
func (h *ClientHandler) GetClient(c echo.Context) error {
	prometheus.RecordEntityOperation("client", "get")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid client id", err)
	}

	client, err := h.clients.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "Client not found", err)
	}
	return c.JSON(http.StatusOK, client)
}

// CreateClient handles creating a new client
func (h *ClientHandler) CreateClient(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("client", "create")

	var req ClientRequest
	if err := bindRequest(c, &req, "client"); err != nil {
		return respondError(c, "Invalid client request", err)
	}

	client := req.toModel()
	if err := h.clients.Insert(c.Request().Context(), &client); err != nil {
		return respondError(c, "Failed to create client", err)
	}

	log.Info("Client created successfully",
		zap.Uint("client_id", client.ID),
		zap.String("name", client.Name))
	return created(c, "/clients", client.ID, client)
}

// UpdateClient handles replacing an existing client
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("client", "update")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid client id", err)
	}

	var req ClientRequest
	if err := bindRequest(c, &req, "client"); err != nil {
		return respondError(c, "Invalid client request", err)
	}
	if err := checkBodyID(req.ID, id); err != nil {
		return respondError(c, "Mismatched client id", err)
	}

	client := req.toModel()
	if err := h.clients.Replace(c.Request().Context(), id, &client); err != nil {
		return respondError(c, "Failed to update client", err)
	}

	log.Info("Client updated successfully", zap.Uint("client_id", id))
	return c.NoContent(http.StatusNoContent)
}

// DeleteClient handles deleting a client without orders
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("client", "delete")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid client id", err)
	}

	if err := h.clients.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, "Failed to delete client", err)
	}

	log.Info("Client deleted successfully", zap.Uint("client_id", id))
	return c.NoContent(http.StatusNoContent)
}
