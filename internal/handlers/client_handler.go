package handlers

import (
	"log"

	"cadastro/internal/models"
	"cadastro/internal/services"

	"github.com/gofiber/fiber/v2"
)

const messageClientNotFound = "Client not found"

// ClientHandler handles HTTP requests for clients.
type ClientHandler struct {
	service *services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{
		service: service,
	}
}

// RegisterRoutes registers the client routes with the Fiber app.
func (h *ClientHandler) RegisterRoutes(router fiber.Router) {
	clientRoutes := router.Group("/clients")
	clientRoutes.Post("/", h.HandleCreate)
	clientRoutes.Get("/", h.HandleFindAll)
	clientRoutes.Get("/:id", h.HandleFindOne)
	clientRoutes.Put("/:id", h.HandleUpdate)
	clientRoutes.Delete("/:id", h.HandleRemove)
}

// HandleCreate godoc
// @Summary Create a client
// @Description Validates the email and CPF document, then stores the client.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body models.CreateClientInput true "Client to create"
// @Success 201 {object} handlers.Envelope{data=models.Client}
// @Failure 400 {object} handlers.Envelope
// @Failure 500 {object} handlers.Envelope
// @Router /clients [post]
func (h *ClientHandler) HandleCreate(c *fiber.Ctx) error {
	var input models.CreateClientInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing client body: %v", err)
		return respond(c, fiber.StatusBadRequest, MessageInvalidBody, nil)
	}

	client, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "")
	}
	return respond(c, fiber.StatusCreated, MessageCreated, client)
}

// HandleFindAll godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {object} handlers.Envelope{data=[]models.Client}
// @Failure 500 {object} handlers.Envelope
// @Router /clients [get]
func (h *ClientHandler) HandleFindAll(c *fiber.Ctx) error {
	clients, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return respond(c, fiber.StatusOK, "", clients)
}

// HandleFindOne godoc
// @Summary Get a client by id
// @Tags clients
// @Produce json
// @Param id path int true "Client id"
// @Success 200 {object} handlers.Envelope{data=models.Client}
// @Failure 400 {object} handlers.Envelope
// @Failure 404 {object} handlers.Envelope "Client not found"
// @Failure 500 {object} handlers.Envelope
// @Router /clients/{id} [get]
func (h *ClientHandler) HandleFindOne(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respond(c, fiber.StatusBadRequest, MessageInvalidID, nil)
	}

	client, err := h.service.FindOne(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, messageClientNotFound)
	}
	return respond(c, fiber.StatusOK, "", client)
}

// HandleUpdate godoc
// @Summary Update a client
// @Description Only the fields present in the body are written. A present email or document is validated.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path int true "Client id"
// @Param client body models.UpdateClientInput true "Fields to change"
// @Success 200 {object} handlers.Envelope{data=models.AffectedResult}
// @Failure 400 {object} handlers.Envelope
// @Failure 500 {object} handlers.Envelope
// @Router /clients/{id} [put]
func (h *ClientHandler) HandleUpdate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respond(c, fiber.StatusBadRequest, MessageInvalidID, nil)
	}

	var input models.UpdateClientInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing client update body for %d: %v", id, err)
		return respond(c, fiber.StatusBadRequest, MessageInvalidBody, nil)
	}

	affected, err := h.service.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err, "")
	}
	return respond(c, fiber.StatusOK, MessageUpdated, models.AffectedResult{Affected: affected})
}

// HandleRemove godoc
// @Summary Delete a client
// @Tags clients
// @Produce json
// @Param id path int true "Client id"
// @Success 200 {object} handlers.Envelope{data=models.AffectedResult}
// @Failure 400 {object} handlers.Envelope
// @Failure 500 {object} handlers.Envelope
// @Router /clients/{id} [delete]
func (h *ClientHandler) HandleRemove(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respond(c, fiber.StatusBadRequest, MessageInvalidID, nil)
	}

	affected, err := h.service.Remove(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "")
	}
	return respond(c, fiber.StatusOK, MessageDeleted, models.AffectedResult{Affected: affected})
}
