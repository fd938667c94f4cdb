package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sandwichapi/internal/http/middleware"
	"sandwichapi/internal/model"
	"sandwichapi/internal/repository"
	"sandwichapi/internal/service"
)

// CatalogHandler exposes one CatalogService over HTTP.
// It is the single place where a missing record becomes a 404.
type CatalogHandler[E any, C repository.Creatable[E], U repository.Patchable] struct {
	name     string
	svc      service.CatalogService[E, C, U]
	validate *Validator
	log      *zap.Logger
}

// NewCatalogHandler builds a handler; name is used in not-found messages and logs.
func NewCatalogHandler[E any, C repository.Creatable[E], U repository.Patchable](name string, svc service.CatalogService[E, C, U], v *Validator, log *zap.Logger) *CatalogHandler[E, C, U] {
	return &CatalogHandler[E, C, U]{
		name:     name,
		svc:      svc,
		validate: v,
		log:      log.With(zap.String("component", "http"), zap.String("entity", name)),
	}
}

func NewResourceHandler(svc service.ResourceService, v *Validator, log *zap.Logger) *CatalogHandler[model.Resource, model.ResourceCreate, model.ResourceUpdate] {
	return NewCatalogHandler[model.Resource, model.ResourceCreate, model.ResourceUpdate]("resource", svc, v, log)
}

func NewSandwichHandler(svc service.SandwichService, v *Validator, log *zap.Logger) *CatalogHandler[model.Sandwich, model.SandwichCreate, model.SandwichUpdate] {
	return NewCatalogHandler[model.Sandwich, model.SandwichCreate, model.SandwichUpdate]("sandwich", svc, v, log)
}

// Register mounts the five CRUD routes under prefix (e.g. "/sandwiches").
func (h *CatalogHandler[E, C, U]) Register(r fiber.Router, prefix string) {
	r.Post(prefix, h.Create())
	r.Get(prefix, h.ReadAll())
	r.Get(prefix+"/:id", h.ReadOne())
	r.Put(prefix+"/:id", h.Update())
	r.Delete(prefix+"/:id", h.Delete())
}

// Create decodes and validates the create shape, then stores it. Responds 201 with the record.
func (h *CatalogHandler[E, C, U]) Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in C
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}

		fields, err := h.validate.Validate(in)
		if err != nil {
			return h.internalError(c, err)
		}
		if len(fields) > 0 {
			return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "missing or invalid fields", fields...)
		}

		row, err := h.svc.Create(c.UserContext(), in)
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(row)
	}
}

func (h *CatalogHandler[E, C, U]) ReadAll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := h.svc.ReadAll(c.UserContext())
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(rows)
	}
}

func (h *CatalogHandler[E, C, U]) ReadOne() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		row, found, err := h.svc.ReadOne(c.UserContext(), id)
		if err != nil {
			return h.fail(c, err)
		}
		if !found {
			return h.notFound(c)
		}
		return c.JSON(row)
	}
}

// Update applies a partial update; fields absent from the body keep their values.
func (h *CatalogHandler[E, C, U]) Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in U
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}

		row, err := h.svc.Update(c.UserContext(), id, in)
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(row)
	}
}

func (h *CatalogHandler[E, C, U]) Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := h.svc.Delete(c.UserContext(), id); err != nil {
			return h.fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func (h *CatalogHandler[E, C, U]) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return h.notFound(c)
	}
	return h.internalError(c, err)
}

func (h *CatalogHandler[E, C, U]) notFound(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusNotFound, "NOT_FOUND", h.name+" not found")
}

func (h *CatalogHandler[E, C, U]) internalError(c *fiber.Ctx, err error) error {
	h.log.Error("catalog_request_failed",
		zap.String("request_id", middleware.RequestIDFromCtx(c)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// parseID accepts positive base-10 integers only.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
