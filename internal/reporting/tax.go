package reporting

import "fmt"

const DefaultTaxRate = 19.0

type TaxReserve struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
	Rate     float64 `json:"rate"`
	Reserve  float64 `json:"reserve"`
	Notice   string  `json:"notice,omitempty"`
}

// ComputeTaxReserve calcula a reserva sobre o lucro líquido. Sem lucro não
// há reserva, e o aviso explica o motivo.
func ComputeTaxReserve(revenue, expenses, rate float64) TaxReserve {
	result := TaxReserve{
		Revenue:  revenue,
		Expenses: expenses,
		Net:      revenue - expenses,
		Rate:     rate,
	}

	if result.Net <= 0 {
		result.Notice = fmt.Sprintf(
			"Kein Gewinn: Ausgaben (%.0f €) übersteigen oder erreichen die Einnahmen (%.0f €), daher keine Steuerrücklage.",
			RoundCurrency(expenses), RoundCurrency(revenue),
		)
		return result
	}

	result.Reserve = result.Net * rate / 100
	return result
}

// Rounded devolve os valores arredondados para exibição; o cálculo acima
// usa os valores sem arredondar.
func (t TaxReserve) Rounded() TaxReserve {
	t.Revenue = RoundCurrency(t.Revenue)
	t.Expenses = RoundCurrency(t.Expenses)
	t.Net = RoundCurrency(t.Net)
	t.Reserve = RoundCurrency(t.Reserve)
	return t
}
