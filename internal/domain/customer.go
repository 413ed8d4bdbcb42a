package domain

import "time"

type Priority string

const (
	PriorityHigh   Priority = "Hoch"
	PriorityMedium Priority = "Mittel"
	PriorityLow    Priority = "Niedrig"
)

func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type PaymentStatus string

const (
	PaymentPaid        PaymentStatus = "Bezahlt"
	PaymentPending     PaymentStatus = "Ausstehend"
	PaymentOverdue     PaymentStatus = "Überfällig"
	PaymentInstalments PaymentStatus = "Raten"
)

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPaid, PaymentPending, PaymentOverdue, PaymentInstalments:
		return true
	}
	return false
}

type ActionStep string

const (
	ActionStepContact   ActionStep = "Kontakt aufnehmen"
	ActionStepSchedule  ActionStep = "Termin vereinbaren"
	ActionStepOffer     ActionStep = "Angebot senden"
	ActionStepFollowUp  ActionStep = "Nachfassen"
	ActionStepClosing   ActionStep = "Abschluss"
	ActionStepAftercare ActionStep = "Betreuung"
)

// IsValid aceita vazio: o próximo passo é opcional
func (a ActionStep) IsValid() bool {
	switch a {
	case "", ActionStepContact, ActionStepSchedule, ActionStepOffer, ActionStepFollowUp, ActionStepClosing, ActionStepAftercare:
		return true
	}
	return false
}

const (
	DefaultSatisfaction = 5
	MinSatisfaction     = 1
	MaxSatisfaction     = 10
)

type Customer struct {
	ID                    string        `json:"id"`
	Name                  string        `json:"name"`
	Contact               string        `json:"contact"`
	Email                 string        `json:"email"`
	Phone                 string        `json:"phone"`
	Priority              Priority      `json:"priority"`
	PaymentStatus         PaymentStatus `json:"payment_status"`
	ActionStep            ActionStep    `json:"action_step"`
	PipelineStage         Stage         `json:"pipeline_stage"`
	Satisfaction          int           `json:"satisfaction"`
	BookedAppointments    int           `json:"booked_appointments"`
	CompletedAppointments int           `json:"completed_appointments"`
	IsActive              bool          `json:"is_active"`
	Notes                 string        `json:"notes"`
	DashboardName         *string       `json:"dashboard_name"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

// ApplyDefaults preenche os campos padrão de um cliente novo
func (c *Customer) ApplyDefaults() {
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	if c.PaymentStatus == "" {
		c.PaymentStatus = PaymentPending
	}
	if c.PipelineStage == "" {
		c.PipelineStage = StagePending
	}
	if c.Satisfaction == 0 {
		c.Satisfaction = DefaultSatisfaction
	}
	c.BookedAppointments = 0
	c.CompletedAppointments = 0
	c.IsActive = true
}

type CreateCustomerRequest struct {
	Name          string        `json:"name"`
	Contact       string        `json:"contact"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Priority      Priority      `json:"priority"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	ActionStep    ActionStep    `json:"action_step"`
	Satisfaction  int           `json:"satisfaction"`
	Notes         string        `json:"notes"`
	DashboardName *string       `json:"dashboard_name"`
}

type UpdateCustomerRequest struct {
	ID            string         `json:"id"`
	Name          *string        `json:"name,omitempty"`
	Contact       *string        `json:"contact,omitempty"`
	Email         *string        `json:"email,omitempty"`
	Phone         *string        `json:"phone,omitempty"`
	Priority      *Priority      `json:"priority,omitempty"`
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty"`
	ActionStep    *ActionStep    `json:"action_step,omitempty"`
	PipelineStage *Stage         `json:"pipeline_stage,omitempty"`
	Satisfaction  *int           `json:"satisfaction,omitempty"`
	IsActive      *bool          `json:"is_active,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	DashboardName *string        `json:"dashboard_name,omitempty"`
}

// IsEmpty indica que nenhum campo foi enviado para atualização
func (r *UpdateCustomerRequest) IsEmpty() bool {
	return r.Name == nil && r.Contact == nil && r.Email == nil && r.Phone == nil &&
		r.Priority == nil && r.PaymentStatus == nil && r.ActionStep == nil &&
		r.PipelineStage == nil && r.Satisfaction == nil && r.IsActive == nil &&
		r.Notes == nil && r.DashboardName == nil
}
