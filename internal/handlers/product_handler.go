package handlers

import (
	"log"

	"cadastro/internal/models"
	"cadastro/internal/services"

	"github.com/gofiber/fiber/v2"
)

const messageProductNotFound = "Product not found"

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Get("/", h.HandleFindAll)
	productRoutes.Get("/:id", h.HandleFindOne)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleRemove)
}

// HandleCreate godoc
// @Summary Create a product
// @Description Stores the product. value defaults to 0.
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.CreateProductInput true "Product to create"
// @Success 201 {object} handlers.Envelope{data=models.Product}
// @Failure 400 {object} handlers.Envelope
// @Failure 500 {object} handlers.Envelope
// @Router /products [post]
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return respond(c, fiber.StatusBadRequest, MessageInvalidBody, nil)
	}

	product, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "")
	}
	return respond(c, fiber.StatusCreated, MessageCreated, product)
}

// HandleFindAll godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {object} handlers.Envelope{data=[]models.Product}
// @Failure 500 {object} handlers.Envelope
// @Router /products [get]
func (h *ProductHandler) HandleFindAll(c *fiber.Ctx) error {
	products, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return respond(c, fiber.StatusOK, "", products)
}

// HandleFindOne godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} handlers.Envelope{data=models.Product}
// @Failure 400 {object} handlers.Envelope
// @Failure 404 {object} handlers.Envelope "Product not found"
// @Failure 500 {object} handlers.Envelope
// @Router /products/{id} [get]
func (h *ProductHandler) HandleFindOne(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respond(c, fiber.StatusBadRequest, MessageInvalidID, nil)
	}

	product, err := h.service.FindOne(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, messageProductNotFound)
	}
	return respond(c, fiber.StatusOK, "", product)
}

// HandleUpdate godoc
// @Summary Update a product
// @Description Only the fields present in the body are written.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product id"
// @Param product body models.UpdateProductInput true "Fields to change"
// @Success 200 {object} handlers.Envelope{data=models.AffectedResult}
// @Failure 400 {object} handlers.Envelope
// @Failure 500 {object} handlers.Envelope
// @Router /products/{id} [put]
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respond(c, fiber.StatusBadRequest, MessageInvalidID, nil)
	}

	var input models.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing product update body for %d: %v", id, err)
		return respond(c, fiber.StatusBadRequest, MessageInvalidBody, nil)
	}

	affected, err := h.service.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err, "")
	}
	return respond(c, fiber.StatusOK, MessageUpdated, models.AffectedResult{Affected: affected})
}

// HandleRemove godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} handlers.Envelope{data=models.AffectedResult}
// @Failure 400 {object} handlers.Envelope
// @Failure 500 {object} handlers.Envelope
// @Router /products/{id} [delete]
func (h *ProductHandler) HandleRemove(c *fiber.Ctx) error {
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
