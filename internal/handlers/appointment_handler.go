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

type AppointmentHandler struct {
	add      *ucSchedule.AddAppointment
	modify   *ucSchedule.ModifyAppointment
	cascade  *ucSchedule.Cascade
	timeline *ucSchedule.GlobalTimeline
}

func NewAppointmentHandler(
	add *ucSchedule.AddAppointment,
	modify *ucSchedule.ModifyAppointment,
	cascade *ucSchedule.Cascade,
	timeline *ucSchedule.GlobalTimeline,
) *AppointmentHandler {
	return &AppointmentHandler{
		add:      add,
		modify:   modify,
		cascade:  cascade,
		timeline: timeline,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AddAppointmentRequest struct {
	Date       time.Time       `json:"appointment" binding:"required"`
	Control    *time.Time      `json:"control"`
	Price      decimal.Decimal `json:"price"`
	Technician string          `json:"technician"`
	Treatment  string          `json:"treatment"`
}

type ModifyAppointmentRequest struct {
	Date       *time.Time       `json:"appointment"`
	Control    *time.Time       `json:"control"`
	Price      *decimal.Decimal `json:"price"`
	Technician *string          `json:"technician"`
	Treatment  *string          `json:"treatment"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.Param("clientId")

	var req AddAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucSchedule.AddAppointmentInput{
		ClientID:   clientID,
		Date:       req.Date,
		Price:      req.Price,
		Technician: req.Technician,
		Treatment:  req.Treatment,
		Control:    req.Control,
	}

	if _, err := h.add.Execute(c.Request.Context(), in); err != nil {
		writeCoreError(c, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	h.respondWithAgenda(c, "Agendamento criado.")
}

// ======================================================
// MODIFY
// ======================================================

func (h *AppointmentHandler) Modify(c *gin.Context) {
	var req ModifyAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucSchedule.ModifyAppointmentInput{
		ID:         c.Param("id"),
		Date:       req.Date,
		FollowUp:   req.Control,
		Price:      req.Price,
		Technician: req.Technician,
		Treatment:  req.Treatment,
	}

	if _, err := h.modify.Execute(c.Request.Context(), in); err != nil {
		writeCoreError(c, err, "failed_to_modify_appointment", "Erro ao alterar agendamento.")
		return
	}

	h.respondWithAgenda(c, "Agendamento alterado.")
}

// ======================================================
// DELETE (CASCADE)
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.cascade.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		writeCoreError(c, err, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}

	h.respondWithAgenda(c, "Agendamento removido.")
}

// ======================================================
// AGENDA (TIMELINE GLOBAL)
// ======================================================

func (h *AppointmentHandler) Agenda(c *gin.Context) {
	h.respondWithAgenda(c, "Agenda carregada.")
}

func (h *AppointmentHandler) respondWithAgenda(c *gin.Context, message string) {
	entries, err := h.timeline.Execute(c.Request.Context())
	if err != nil {
		writeCoreError(c, err, "failed_to_load_agenda", "Erro ao carregar agenda.")
		return
	}

	httpresp.List(c, entries, message)
}
