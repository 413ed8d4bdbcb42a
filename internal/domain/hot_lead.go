package domain

import "time"

type HotLead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Priority  Priority  `json:"priority"`
	Notes     string    `json:"notes"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateHotLeadRequest struct {
	Name     string   `json:"name"`
	Contact  string   `json:"contact"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Priority Priority `json:"priority"`
	Notes    string   `json:"notes"`
	Source   string   `json:"source"`
}

type UpdateHotLeadRequest struct {
	ID       string    `json:"id"`
	Name     *string   `json:"name,omitempty"`
	Contact  *string   `json:"contact,omitempty"`
	Email    *string   `json:"email,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	Priority *Priority `json:"priority,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
	Source   *string   `json:"source,omitempty"`
}

// ToCustomer monta o cliente resultante da promoção do lead
func (l *HotLead) ToCustomer() *Customer {
	customer := &Customer{
		Name:     l.Name,
		Contact:  l.Contact,
		Email:    l.Email,
		Phone:    l.Phone,
		Priority: l.Priority,
		Notes:    l.Notes,
	}
	customer.ApplyDefaults()
	return customer
}

type PromoteHotLeadResponse struct {
	Customer *Customer `json:"customer"`
	LeadID   string    `json:"lead_id"`
}
