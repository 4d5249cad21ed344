package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/clinicdesk/agenda-api/internal/httperr"
	"github.com/clinicdesk/agenda-api/internal/httpresp"
	ucSchedule "github.com/clinicdesk/agenda-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	register  *ucSchedule.RegisterClient
	cascade   *ucSchedule.Cascade
	overviews *ucSchedule.ListClientOverviews
}

func NewClientHandler(
	register *ucSchedule.RegisterClient,
	cascade *ucSchedule.Cascade,
	overviews *ucSchedule.ListClientOverviews,
) *ClientHandler {
	return &ClientHandler{
		register:  register,
		cascade:   cascade,
		overviews: overviews,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	// Primeiro agendamento opcional na mesma chamada
	Appointment *time.Time      `json:"appointment"`
	Control     *time.Time      `json:"control"`
	Price       decimal.Decimal `json:"price"`
	Technician  string          `json:"technician"`
	Treatment   string          `json:"treatment"`
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	overviews, err := h.overviews.Execute(c.Request.Context())
	if err != nil {
		writeCoreError(c, err, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, overviews, "Clientes carregados.")
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucSchedule.RegisterClientInput{
		Name:    req.Name,
		Surname: req.Surname,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if req.Appointment != nil {
		in.Appointment = &ucSchedule.AddAppointmentInput{
			Date:       *req.Appointment,
			Price:      req.Price,
			Technician: req.Technician,
			Treatment:  req.Treatment,
			Control:    req.Control,
		}
	}

	if _, err := h.register.Execute(c.Request.Context(), in); err != nil {
		writeCoreError(c, err, "failed_to_create_client", "Erro ao cadastrar cliente.")
		return
	}

	// A visão de leitura é re-derivada a cada mutação
	overviews, err := h.overviews.Execute(c.Request.Context())
	if err != nil {
		writeCoreError(c, err, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, overviews, "Cliente cadastrado.")
}

// ======================================================
// DELETE (CASCADE)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	clientID := c.Param("id")

	if err := h.cascade.DeleteClient(c.Request.Context(), clientID); err != nil {
		writeCoreError(c, err, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	overviews, err := h.overviews.Execute(c.Request.Context())
	if err != nil {
		writeCoreError(c, err, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, overviews, "Cliente removido.")
}
