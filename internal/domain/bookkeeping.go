package domain

import "time"

type Revenue struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        Date      `json:"date"`
	CustomerID  *string   `json:"customer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r Revenue) EntryDate() time.Time { return r.Date.Time }
func (r Revenue) EntryAmount() float64 { return r.Amount }

type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        Date      `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e Expense) EntryDate() time.Time { return e.Date.Time }
func (e Expense) EntryAmount() float64 { return e.Amount }

// CreateRevenueRequest usa Amount como texto bruto para validar entradas não numéricas
type CreateRevenueRequest struct {
	Description string  `json:"description"`
	Amount      any     `json:"amount"`
	Date        Date    `json:"date"`
	CustomerID  *string `json:"customer_id"`
}

type CreateExpenseRequest struct {
	Description string `json:"description"`
	Amount      any    `json:"amount"`
	Date        Date   `json:"date"`
}
