package domain

import (
	"math"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TeamMember struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	PasswordHash      string    `json:"-"`
	UserRole          Role      `json:"user_role"`
	CustomerDashboard *string   `json:"customer_dashboard"`
	AppointmentCount  int       `json:"appointment_count"`
	Payouts           float64   `json:"payouts"`
	Performance       int       `json:"performance"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

type CreateTeamMemberRequest struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Password          string  `json:"password"`
	UserRole          Role    `json:"user_role"`
	CustomerDashboard *string `json:"customer_dashboard"`
}

type UpdateTeamMemberRequest struct {
	ID                string   `json:"id"`
	Name              *string  `json:"name,omitempty"`
	Email             *string  `json:"email,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	Password          *string  `json:"password,omitempty"`
	UserRole          *Role    `json:"user_role,omitempty"`
	CustomerDashboard *string  `json:"customer_dashboard,omitempty"`
	Payouts           *float64 `json:"payouts,omitempty"`
	Performance       *int     `json:"performance,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

// TeamMemberEarning substitui os procedimentos get/add_team_member_earning
type TeamMemberEarning struct {
	ID           string    `json:"id"`
	TeamMemberID string    `json:"team_member_id"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	Date         Date      `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

func (e TeamMemberEarning) EntryDate() time.Time { return e.Date.Time }
func (e TeamMemberEarning) EntryAmount() float64 { return e.Amount }

// TeamMemberExpense substitui os procedimentos get/add_team_member_expense
type TeamMemberExpense struct {
	ID           string    `json:"id"`
	TeamMemberID string    `json:"team_member_id"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	Date         Date      `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

func (e TeamMemberExpense) EntryDate() time.Time { return e.Date.Time }
func (e TeamMemberExpense) EntryAmount() float64 { return e.Amount }

// MemberLedgerEntryRequest usa Amount como texto bruto, como nas receitas
type MemberLedgerEntryRequest struct {
	Amount      any    `json:"amount"`
	Description string `json:"description"`
	Date        Date   `json:"date"`
}

// MemberFinance resume ganhos e despesas de um membro
type MemberFinance struct {
	TeamMemberID string  `json:"team_member_id"`
	Earnings     float64 `json:"earnings"`
	Expenses     float64 `json:"expenses"`
	Balance      float64 `json:"balance"`
}

// NewMemberFinance calcula o saldo com os totais exatos e arredonda só o resultado
func NewMemberFinance(memberID string, earnings, expenses float64) *MemberFinance {
	return &MemberFinance{
		TeamMemberID: memberID,
		Earnings:     math.Round(earnings),
		Expenses:     math.Round(expenses),
		Balance:      math.Round(earnings - expenses),
	}
}

// CreateTeamMemberResponse traz a senha gerada quando nenhuma foi enviada
type CreateTeamMemberResponse struct {
	Member            *TeamMember `json:"member"`
	GeneratedPassword string      `json:"generated_password,omitempty"`
}

// LoginResponse segue o envelope {success, user?, error?} do login
type LoginResponse struct {
	Success bool        `json:"success"`
	User    *TeamMember `json:"user,omitempty"`
	Token   string      `json:"token,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type Claims struct {
	UserID            string
	UserName          string
	UserEmail         string
	UserRole          Role
	CustomerDashboard string
	jwt.RegisteredClaims
}
