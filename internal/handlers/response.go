package handlers

import (
	"errors"
	"log"

	"cadastro/internal/repositories"
	"cadastro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Messages shared by every resource.
const (
	MessageCreated = "Created!"
	MessageUpdated = "Updated!"
	MessageDeleted = "Deleted!"

	MessageFailed      = "Sorry, it was not possible to perform this task"
	MessageInvalidID   = "Invalid id"
	MessageInvalidBody = "Invalid request body"
)

// Envelope wraps every response body.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Envelope{Message: message, Data: data})
}

// respondError maps err to the matching status. Only validation messages
// and notFoundMessage reach the client; anything else is logged and replaced
// by MessageFailed.
func respondError(c *fiber.Ctx, err error, notFoundMessage string) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return respond(c, fiber.StatusBadRequest, ve.Message, nil)
	case errors.Is(err, repositories.ErrNotFound) && notFoundMessage != "":
		return respond(c, fiber.StatusNotFound, notFoundMessage, nil)
	default:
		log.Printf("Error handling %s %s: %v", c.Method(), c.OriginalURL(), err)
		return respond(c, fiber.StatusInternalServerError, MessageFailed, nil)
	}
}

// parseID reads the ":id" path parameter as a positive integer.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// ErrorHandler renders errors that escape the handlers (unknown routes,
// recovered panics) in the same envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return respond(c, fe.Code, fe.Message, nil)
	}
	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.OriginalURL(), err)
	return respond(c, fiber.StatusInternalServerError, MessageFailed, nil)
}
