package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/celera/directory/api/http/presenter"
	"github.com/celera/directory/pkg/directory"
	"github.com/celera/directory/pkg/matchmaking"
	"github.com/celera/directory/pkg/member"
	"github.com/celera/directory/pkg/roster"
)

// RosterSource loads the current ingested roster and drops it after writes.
type RosterSource interface {
	Load(ctx context.Context) (*roster.Roster, error)
	Invalidate()
}

type MembersHandler struct {
	source  RosterSource
	repo    member.Repository
	matches matchmaking.UseCase
	log     zerolog.Logger
}

func NewMembersHandler(source RosterSource, repo member.Repository, matches matchmaking.UseCase, log zerolog.Logger) *MembersHandler {
	return &MembersHandler{source: source, repo: repo, matches: matches, log: log}
}

type listResponse struct {
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
	Items  []member.Record `json:"items"`
}

type eligibleResponse struct {
	Names    []string `json:"names"`
	Excluded int      `json:"excluded"`
}

type matchResponse struct {
	matchmaking.Result
	BestScore float64 `json:"bestScore"`
	MeanScore float64 `json:"meanScore"`
}

func (h *MembersHandler) load(c *fiber.Ctx) (*roster.Roster, error) {
	r, err := h.source.Load(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("roster load failed")
		return nil, presenter.ErrorDetail(c, http.StatusServiceUnavailable, "el directorio no está disponible", err)
	}
	return r, nil
}

// @Summary     Directorio normalizado
// @Description Lista los miembros con los campos normalizados. Los filtros de lista se repiten (?industry=a&industry=b).
// @Tags        Miembros
// @Produce     json
// @Param       cohort query []int false "Generación" collectionFormat(multi)
// @Param       industry query []string false "Industria normalizada" collectionFormat(multi)
// @Param       roleCategory query []string false "Categoría de rol" collectionFormat(multi)
// @Param       role query string false "Texto en el rol actual"
// @Param       location query []string false "Ubicación normalizada" collectionFormat(multi)
// @Param       minExperience query number false "Años mínimos"
// @Param       maxExperience query number false "Años máximos"
// @Param       actionArea query []string false "Área de acción" collectionFormat(multi)
// @Param       superpower query []string false "Superpoder" collectionFormat(multi)
// @Param       fieldOfStudy query []string false "Área de estudio" collectionFormat(multi)
// @Param       motivation query []string false "Motivación" collectionFormat(multi)
// @Param       limit query int false "Límite (1-200)"
// @Param       offset query int false "Desplazamiento"
// @Success     200 {object} listResponse
// @Failure     503 {object} presenter.ErrorResponse
// @Router      /members [get]
func (h *MembersHandler) List(c *fiber.Ctx) error {
	r, err := h.load(c)
	if r == nil {
		return err
	}
	items := directory.Filter(r.Records, parseQuery(c))
	limit, offset := parseLimitOffset(c, 50)
	resp := listResponse{Total: len(items), Limit: limit, Offset: offset, Items: []member.Record{}}
	if offset < len(items) {
		resp.Items = items[offset:min(offset+limit, len(items))]
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

// @Summary     Añadir miembro
// @Description Valida y guarda un nuevo perfil en el directorio.
// @Tags        Miembros
// @Accept      json
// @Produce     json
// @Param       input body member.NewMember true "Perfil"
// @Success     201 {object} map[string]string
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /members [post]
func (h *MembersHandler) Create(c *fiber.Ctx) error {
	var req member.NewMember
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "JSON inválido")
	}
	id, err := h.repo.Append(c.Context(), req)
	if err != nil {
		var verr member.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		h.log.Error().Err(err).Msg("append member failed")
		return presenter.Error(c, http.StatusInternalServerError, "no se pudo guardar el perfil")
	}
	h.source.Invalidate()
	return presenter.JSON(c, http.StatusCreated, fiber.Map{"id": id.String(), "name": strings.TrimSpace(req.Name)})
}

// @Summary Perfiles aptos para matchmaking
// @Tags    Matchmaking
// @Produce json
// @Success 200 {object} eligibleResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /members/eligible [get]
func (h *MembersHandler) Eligible(c *fiber.Ctx) error {
	r, err := h.load(c)
	if r == nil {
		return err
	}
	eligible, excluded := matchmaking.Eligible(r.Records)
	names := make([]string, 0, len(eligible))
	for _, rec := range eligible {
		names = append(names, rec.Name)
	}
	return presenter.JSON(c, http.StatusOK, eligibleResponse{Names: names, Excluded: excluded})
}

// @Summary     Matches de un miembro
// @Description Ranking híbrido (texto + experiencia y generación) con razones del match.
// @Tags        Matchmaking
// @Produce     json
// @Param       name path string true "Nombre y apellido"
// @Success     200 {object} matchResponse
// @Failure     404 {object} matchResponse
// @Failure     422 {object} matchResponse
// @Failure     500 {object} matchResponse
// @Failure     503 {object} presenter.ErrorResponse
// @Router      /members/{name}/matches [get]
func (h *MembersHandler) Matches(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || strings.TrimSpace(name) == "" {
		return presenter.Error(c, http.StatusBadRequest, "nombre inválido")
	}
	r, err := h.load(c)
	if r == nil {
		return err
	}
	res := h.matches.FindMatches(c.Context(), r.Records, name)
	status := http.StatusOK
	switch res.Status {
	case matchmaking.StatusNotFound:
		status = http.StatusNotFound
	case matchmaking.StatusInsufficientData:
		status = http.StatusUnprocessableEntity
	case matchmaking.StatusComputationError:
		status = http.StatusInternalServerError
	}
	return presenter.JSON(c, status, matchResponse{Result: res, BestScore: res.BestScore(), MeanScore: res.MeanScore()})
}

func parseQuery(c *fiber.Ctx) directory.Query {
	q := directory.Query{
		Industries:     multi(c, "industry"),
		RoleCategories: multi(c, "roleCategory"),
		RoleText:       strings.TrimSpace(c.Query("role")),
		Locations:      multi(c, "location"),
		MinExperience:  floatParam(c, "minExperience"),
		MaxExperience:  floatParam(c, "maxExperience"),
		ActionAreas:    multi(c, "actionArea"),
		Superpowers:    multi(c, "superpower"),
		FieldsOfStudy:  multi(c, "fieldOfStudy"),
		Motivations:    multi(c, "motivation"),
	}
	for _, v := range multi(c, "cohort") {
		if n, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(v), "G")); err == nil {
			q.Cohorts = append(q.Cohorts, n)
		}
	}
	return q
}

func multi(c *fiber.Ctx, key string) []string {
	var out []string
	for _, b := range c.Context().QueryArgs().PeekMulti(key) {
		if v := strings.TrimSpace(string(b)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func floatParam(c *fiber.Ctx, key string) *float64 {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
