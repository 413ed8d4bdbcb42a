package domain

import "time"

type Appointment struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	TeamMemberID *string   `json:"team_member_id"`
	Date         Date      `json:"date"`
	Time         string    `json:"time"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Result       Stage     `json:"result"`
	CreatedAt    time.Time `json:"created_at"`

	// Preenchidos em consultas com join
	CustomerName   string `json:"customer_name,omitempty"`
	TeamMemberName string `json:"team_member_name,omitempty"`
}

func (a Appointment) EntryDate() time.Time {
	return a.Date.Time
}

type CreateAppointmentRequest struct {
	CustomerID   string  `json:"customer_id"`
	TeamMemberID *string `json:"team_member_id"`
	Date         Date    `json:"date"`
	Time         string  `json:"time"`
	Type         string  `json:"type"`
	Description  string  `json:"description"`
	Result       Stage   `json:"result"`
}

type UpdateAppointmentRequest struct {
	ID           string  `json:"id"`
	TeamMemberID *string `json:"team_member_id,omitempty"`
	Date         *Date   `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	Type         *string `json:"type,omitempty"`
	Description  *string `json:"description,omitempty"`
	Result       *Stage  `json:"result,omitempty"`
}

func (r *UpdateAppointmentRequest) IsEmpty() bool {
	return r.TeamMemberID == nil && r.Date == nil && r.Time == nil &&
		r.Type == nil && r.Description == nil && r.Result == nil
}

// AppointmentFilter restringe a listagem de compromissos
type AppointmentFilter struct {
	CustomerID   string
	TeamMemberID string
	Stages       []Stage
}

// MoveStageRequest é o gesto de arrastar um cartão para outra coluna
type MoveStageRequest struct {
	AppointmentID string `json:"appointment_id"`
	Destination   Stage  `json:"destination"`
}

type MoveStageResponse struct {
	Appointment *Appointment `json:"appointment"`
	Moved       bool         `json:"moved"`
}

// AppointmentHistory registra compromissos agendados por um membro da equipe
type AppointmentHistory struct {
	ID              string    `json:"id"`
	TeamMemberID    string    `json:"team_member_id"`
	AppointmentID   string    `json:"appointment_id"`
	CustomerID      string    `json:"customer_id"`
	AppointmentDate Date      `json:"appointment_date"`
	CreatedAt       time.Time `json:"created_at"`
}
