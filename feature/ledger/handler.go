package ledger

import (
	"artifact-store/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the transfer ledger over HTTP.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new ledger handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the ledger routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/ledger/transfers", h.HandleList)
}

// HandleList godoc
// @Summary List recorded transfers
// @Description Returns the most recent uploads and downloads, newest first.
// @Tags ledger
// @Produce json
// @Param bucket query string false "Only transfers of this bucket"
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {array} Transfer
// @Failure 500 {object} map[string]string
// @Router /ledger/transfers [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	rows, err := h.repo.List(c.Context(), c.Query("bucket"), c.QueryInt("limit", DefaultLimit))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to list transfers", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}
