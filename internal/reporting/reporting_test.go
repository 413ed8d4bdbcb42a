package reporting

import (
	"testing"
	"time"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string { return &s }

func TestSumAverage_RevenueAndExpense(t *testing.T) {
	revenues := []*domain.Revenue{
		{Description: "Invoice 1", Amount: 100, Date: domain.NewDate(2025, 1, 1)},
	}
	expenses := []*domain.Expense{
		{Description: "Ads", Amount: 40, Date: domain.NewDate(2025, 1, 1)},
	}

	totalRevenue := Sum(revenues)
	totalExpenses := Sum(expenses)

	assert.Equal(t, 100.0, totalRevenue)
	assert.Equal(t, 40.0, totalExpenses)
	assert.Equal(t, 60.0, totalRevenue-totalExpenses)

	reserve := ComputeTaxReserve(totalRevenue, totalExpenses, 19)
	assert.InDelta(t, 11.4, reserve.Reserve, 0.0001)
	assert.Equal(t, 11.0, RoundCurrency(reserve.Reserve))
	assert.Empty(t, reserve.Notice)

	display := reserve.Rounded()
	assert.Equal(t, 11.0, display.Reserve)
	assert.Equal(t, 60.0, display.Net)
	assert.Equal(t, 19.0, display.Rate)
	assert.InDelta(t, 11.4, reserve.Reserve, 0.0001)
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average([]*domain.Revenue{}))

	revenues := []*domain.Revenue{{Amount: 10}, {Amount: 20}, {Amount: 45}}
	assert.Equal(t, 25.0, Average(revenues))
}

func TestSum_IsNotRoundedWhileAccumulating(t *testing.T) {
	revenues := []*domain.Revenue{{Amount: 0.4}, {Amount: 0.4}, {Amount: 0.4}}

	assert.InDelta(t, 1.2, Sum(revenues), 0.0001)
	assert.Equal(t, 1.0, RoundCurrency(Sum(revenues)))
}

func TestComputeTaxReserve(t *testing.T) {
	tests := []struct {
		name          string
		revenue       float64
		expenses      float64
		rate          float64
		expectReserve float64
		expectNotice  bool
	}{
		{name: "lucro positivo", revenue: 1000, expenses: 200, rate: 19, expectReserve: 152},
		{name: "lucro zero", revenue: 500, expenses: 500, rate: 19, expectReserve: 0, expectNotice: true},
		{name: "prejuízo", revenue: 100, expenses: 400, rate: 19, expectReserve: 0, expectNotice: true},
		{name: "sem movimento", revenue: 0, expenses: 0, rate: 25, expectReserve: 0, expectNotice: true},
		{name: "taxa diferente", revenue: 200, expenses: 0, rate: 30, expectReserve: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeTaxReserve(tt.revenue, tt.expenses, tt.rate)

			assert.InDelta(t, tt.expectReserve, result.Reserve, 0.0001)
			assert.Equal(t, tt.revenue-tt.expenses, result.Net)
			assert.GreaterOrEqual(t, result.Reserve, 0.0)
			if tt.expectNotice {
				assert.NotEmpty(t, result.Notice)
			} else {
				assert.Empty(t, result.Notice)
			}
		})
	}
}

func TestCutoffAndFilterSince(t *testing.T) {
	now := time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC)

	revenues := []*domain.Revenue{
		{ID: "hoje", Amount: 1, Date: domain.NewDate(2025, 3, 31)},
		{ID: "ontem", Amount: 2, Date: domain.NewDate(2025, 3, 30)},
		{ID: "semana", Amount: 4, Date: domain.NewDate(2025, 3, 25)},
		{ID: "mes", Amount: 8, Date: domain.NewDate(2025, 3, 2)},
		{ID: "ano", Amount: 16, Date: domain.NewDate(2024, 4, 1)},
		{ID: "antigo", Amount: 32, Date: domain.NewDate(2020, 1, 1)},
		{ID: "oito dias", Amount: 64, Date: domain.NewDate(2025, 3, 24)},
		{ID: "trinta e um dias", Amount: 128, Date: domain.NewDate(2025, 3, 1)},
	}

	tests := []struct {
		window      Window
		expectedSum float64
	}{
		{WindowToday, 1},
		{WindowWeek, 7},
		{WindowMonth, 15 + 64},
		{WindowYear, 31 + 64 + 128},
		{WindowAll, 255},
	}

	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			filtered := FilterWindow(revenues, tt.window, now)
			assert.Equal(t, tt.expectedSum, Sum(filtered))
		})
	}

	assert.True(t, Cutoff(WindowAll, now).IsZero())
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), Cutoff(WindowToday, now))
	assert.Equal(t, time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC), Cutoff(WindowWeek, now))
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Cutoff(WindowMonth, now))
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Cutoff(WindowYear, now))
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowAll, w)

	for _, valid := range Windows {
		parsed, err := ParseWindow(string(valid))
		require.NoError(t, err)
		assert.Equal(t, valid, parsed)
	}

	_, err = ParseWindow("quarter")
	assert.Error(t, err)
}

func TestTopPerformer(t *testing.T) {
	members := []*domain.TeamMember{
		{ID: "m1", Name: "Lena"},
		{ID: "m2", Name: "Anna"},
		{ID: "m3", Name: "Tom"},
	}

	tests := []struct {
		name         string
		appointments []*domain.Appointment
		expectedID   string
		expectedNil  bool
		expectedHits int
	}{
		{
			name:        "sem compromissos",
			expectedNil: true,
		},
		{
			name: "apenas etapas sem sucesso",
			appointments: []*domain.Appointment{
				{TeamMemberID: stringPtr("m1"), Result: domain.StagePending},
				{TeamMemberID: stringPtr("m1"), Result: domain.StageCancelled},
			},
			expectedNil: true,
		},
		{
			name: "maior contagem vence",
			appointments: []*domain.Appointment{
				{TeamMemberID: stringPtr("m1"), Result: domain.StageClosed},
				{TeamMemberID: stringPtr("m1"), Result: domain.StageAttended},
				{TeamMemberID: stringPtr("m3"), Result: domain.StageClosed},
				{TeamMemberID: nil, Result: domain.StageClosed},
			},
			expectedID:   "m1",
			expectedHits: 2,
		},
		{
			name: "empate resolvido por ordem alfabética",
			appointments: []*domain.Appointment{
				{TeamMemberID: stringPtr("m1"), Result: domain.StageClosed},
				{TeamMemberID: stringPtr("m2"), Result: domain.StageAttended},
				{TeamMemberID: stringPtr("m3"), Result: domain.StageClosed},
			},
			expectedID:   "m2",
			expectedHits: 1,
		},
		{
			name: "responsável desconhecido é ignorado",
			appointments: []*domain.Appointment{
				{TeamMemberID: stringPtr("removido"), Result: domain.StageClosed},
				{TeamMemberID: stringPtr("removido"), Result: domain.StageClosed},
				{TeamMemberID: stringPtr("m3"), Result: domain.StageClosed},
			},
			expectedID:   "m3",
			expectedHits: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// a ordem de entrada não pode mudar o resultado
			for i := 0; i < 5; i++ {
				result := TopPerformer(tt.appointments, members)
				if tt.expectedNil {
					assert.Nil(t, result)
					continue
				}
				require.NotNil(t, result)
				assert.Equal(t, tt.expectedID, result.TeamMemberID)
				assert.Equal(t, tt.expectedHits, result.Count)
			}
		})
	}
}
