package artifacts

import (
	"errors"
	"io"

	"artifact-store/core/logger"
	"artifact-store/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for artifact operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the artifact routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/artifacts/:bucket")
	group.Get("/resolve", h.HandleResolve)
	group.Get("/object", h.HandleReadObject)
	group.Get("/model", h.HandleLoadModel)
	group.Put("/folder", h.HandleEnsureFolder)
}

// HandleResolve lists the objects matching a prefix.
// @Summary Resolve Prefix
// @Description Lists objects whose key starts with the prefix. Exactly one match is returned as "single", anything else as "many".
// @Tags artifacts
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param prefix query string false "Key prefix"
// @Success 200 {object} map[string]interface{} "Resolution"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /artifacts/{bucket}/resolve [get]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	b, err := h.service.Bucket(c.Params("bucket"))
	if err != nil {
		return h.fail(c, l, "Bucket lookup failed", err)
	}

	res, err := b.Resolve(c.Context(), c.Query("prefix"))
	if err != nil {
		return h.fail(c, l, "Resolve failed", err)
	}

	if obj, ok := res.Single(); ok {
		return c.JSON(fiber.Map{"kind": "single", "object": obj})
	}
	objects, _ := res.Many()
	return c.JSON(fiber.Map{"kind": "many", "objects": objects})
}

// HandleReadObject returns the body of one object.
// @Summary Read Object
// @Description Reads a whole object. decode=true returns UTF-8 text, decode=false returns raw bytes.
// @Tags artifacts
// @Produce plain
// @Produce octet-stream
// @Param bucket path string true "Bucket name"
// @Param key query string true "Object key"
// @Param decode query boolean false "Decode as UTF-8 (default true)"
// @Param readable query boolean false "Stream the decoded text"
// @Success 200 {string} string "Object body"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /artifacts/{bucket}/object [get]
func (h *Handler) HandleReadObject(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	b, err := h.service.Bucket(c.Params("bucket"))
	if err != nil {
		return h.fail(c, l, "Bucket lookup failed", err)
	}

	obj := Object{Bucket: b.Name(), Key: c.Query("key")}
	opts := Decoding(c.QueryBool("decode", true), c.QueryBool("readable", false))

	p, err := b.Read(c.Context(), obj, opts...)
	if err != nil {
		return h.fail(c, l, "Read failed", err)
	}

	switch v := p.(type) {
	case Text:
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(string(v))
	case TextStream:
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendStream(io.Reader(v.Reader), int(v.Size()))
	case Binary:
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
		return c.Send(v)
	default:
		return h.fail(c, l, "Read failed", errors.New("unexpected payload"))
	}
}

// HandleLoadModel returns the raw bytes of a model file.
// @Summary Load Model
// @Description Loads the model stored at dir/name (or name when dir is empty). The key must match exactly one object.
// @Tags artifacts
// @Produce octet-stream
// @Param bucket path string true "Bucket name"
// @Param name query string true "Model file name"
// @Param dir query string false "Model directory"
// @Success 200 {string} string "Model bytes"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Ambiguous model key"
// @Router /artifacts/{bucket}/model [get]
func (h *Handler) HandleLoadModel(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	b, err := h.service.Bucket(c.Params("bucket"))
	if err != nil {
		return h.fail(c, l, "Bucket lookup failed", err)
	}

	data, err := b.LoadModel(c.Context(), c.Query("name"), c.Query("dir"))
	if err != nil {
		return h.fail(c, l, "Model load failed", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(data)
}

// HandleEnsureFolder creates a folder marker when the folder is missing.
// @Summary Ensure Folder
// @Description Creates the zero-length marker name/ unless the folder already exists.
// @Tags artifacts
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param name query string true "Folder name"
// @Success 200 {object} map[string]string "Folder ensured"
// @Failure 502 {object} map[string]string "Probe failed"
// @Router /artifacts/{bucket}/folder [put]
func (h *Handler) HandleEnsureFolder(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	b, err := h.service.Bucket(c.Params("bucket"))
	if err != nil {
		return h.fail(c, l, "Bucket lookup failed", err)
	}

	name := c.Query("name")
	if err := b.EnsureFolder(c.Context(), name); err != nil {
		return h.fail(c, l, "Ensure folder failed", err)
	}

	return c.JSON(fiber.Map{"status": "ensured", "folder": name})
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps a storage error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, storage.ErrModelNotFound), storage.IsNotFound(err):
		return fiber.StatusNotFound
	case errors.Is(err, storage.ErrAmbiguousModel):
		return fiber.StatusConflict
	case errors.Is(err, storage.ErrMissingCredential):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, storage.ErrProbe):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
