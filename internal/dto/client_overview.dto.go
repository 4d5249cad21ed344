package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Linhas normalizadas da visão por cliente: cada lado resolve a data do
// contraparte; referências penduradas viram campo ausente, nunca erro.

type AppointmentRow struct {
	ID         string          `json:"id"`
	Date       time.Time       `json:"appointment"`
	Control    *time.Time      `json:"control,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Technician string          `json:"technician"`
	Treatment  string          `json:"treatment"`
}

type ControlRow struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Appointment *time.Time      `json:"appointment,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Technician  string          `json:"technician"`
	Treatment   string          `json:"treatment"`
}

type ClientOverview struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	Appointments []AppointmentRow `json:"appointments"`
	Controls     []ControlRow     `json:"controls"`
}
