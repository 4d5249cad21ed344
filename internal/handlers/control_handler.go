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

type ControlHandler struct {
	modify   *ucSchedule.ModifyControl
	cascade  *ucSchedule.Cascade
	timeline *ucSchedule.GlobalTimeline
}

func NewControlHandler(
	modify *ucSchedule.ModifyControl,
	cascade *ucSchedule.Cascade,
	timeline *ucSchedule.GlobalTimeline,
) *ControlHandler {
	return &ControlHandler{
		modify:   modify,
		cascade:  cascade,
		timeline: timeline,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ModifyControlRequest struct {
	// Atualização da data atual, no lugar
	Date *time.Time `json:"date"`

	// Data de revisão: cria um controle sucessor na cadeia
	Control *time.Time `json:"control"`

	Price      *decimal.Decimal `json:"price"`
	Technician *string          `json:"technician"`
	Treatment  *string          `json:"treatment"`
}

// ======================================================
// MODIFY
// ======================================================

func (h *ControlHandler) Modify(c *gin.Context) {
	var req ModifyControlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucSchedule.ModifyControlInput{
		ID:         c.Param("id"),
		Date:       req.Date,
		Revision:   req.Control,
		Price:      req.Price,
		Technician: req.Technician,
		Treatment:  req.Treatment,
	}

	if _, err := h.modify.Execute(c.Request.Context(), in); err != nil {
		writeCoreError(c, err, "failed_to_modify_control", "Erro ao alterar controle.")
		return
	}

	h.respondWithAgenda(c, "Controle alterado.")
}

// ======================================================
// DELETE
// ======================================================

func (h *ControlHandler) Delete(c *gin.Context) {
	if err := h.cascade.DeleteControl(c.Request.Context(), c.Param("id")); err != nil {
		writeCoreError(c, err, "failed_to_delete_control", "Erro ao remover controle.")
		return
	}

	h.respondWithAgenda(c, "Controle removido.")
}

// --------------------------------------------------

func (h *ControlHandler) respondWithAgenda(c *gin.Context, message string) {
	entries, err := h.timeline.Execute(c.Request.Context())
	if err != nil {
		writeCoreError(c, err, "failed_to_load_agenda", "Erro ao carregar agenda.")
		return
	}

	httpresp.List(c, entries, message)
}
