package schedule

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ===============================
// Timeline (agenda mesclada)
// ===============================

const (
	EntryAppointment = "appointment"
	EntryControl     = "control"
)

// TimelineEntry é a linha denormalizada da agenda: um agendamento carrega
// a data do controle vinculado, um controle carrega a data do agendamento
// de origem; ambos carregam a identidade do cliente.
type TimelineEntry struct {
	Type string `json:"type"`
	ID   string `json:"id"`

	// Data do agendamento (própria ou do agendamento de origem)
	Appointment *time.Time `json:"appointment,omitempty"`

	// Data do controle (apenas em linhas de controle)
	Date *time.Time `json:"date,omitempty"`

	// Data do controle vinculado (apenas em linhas de agendamento)
	Control *time.Time `json:"control,omitempty"`

	Price      decimal.Decimal `json:"price"`
	Technician string          `json:"technician"`
	Treatment  string          `json:"treatment"`

	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// EffectiveDate reduz a comparação entre tipos a uma comparação de datas:
// agendamentos comparam pela própria data, controles pela data do controle.
func (e TimelineEntry) EffectiveDate() time.Time {
	if e.Type == EntryControl {
		if e.Date != nil {
			return *e.Date
		}
		return time.Time{}
	}
	if e.Appointment != nil {
		return *e.Appointment
	}
	return time.Time{}
}

// MergeByDate ordena as linhas por data efetiva ascendente. A ordenação é
// estável; empates ficam na ordem em que as linhas chegaram.
func MergeByDate(entries []TimelineEntry) []TimelineEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EffectiveDate().Before(entries[j].EffectiveDate())
	})
	return entries
}
