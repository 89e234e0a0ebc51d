package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/celera/directory/api/http/presenter"
	"github.com/celera/directory/pkg/directory"
)

type InsightsHandler struct {
	members *MembersHandler
}

func NewInsightsHandler(members *MembersHandler) *InsightsHandler {
	return &InsightsHandler{members: members}
}

// @Summary     Estadísticas de la comunidad
// @Description Acepta los mismos filtros que /members.
// @Tags        Insights
// @Produce     json
// @Success     200 {object} directory.Insights
// @Failure     503 {object} presenter.ErrorResponse
// @Router      /insights [get]
func (h *InsightsHandler) Get(c *fiber.Ctx) error {
	r, err := h.members.load(c)
	if r == nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, directory.Summarize(directory.Filter(r.Records, parseQuery(c))))
}
