// Package reporting reúne as agregações do painel: somas, médias, janelas
// de tempo, reserva de impostos e o destaque da equipe.
package reporting

import (
	"math"
	"time"
)

// Dated é qualquer registro com data de referência
type Dated interface {
	EntryDate() time.Time
}

// Amounted é um registro datado com valor monetário
type Amounted interface {
	Dated
	EntryAmount() float64
}

// Sum acumula sem arredondar; use RoundCurrency apenas na exibição
func Sum[T Amounted](items []T) float64 {
	var total float64
	for _, item := range items {
		total += item.EntryAmount()
	}
	return total
}

// Average devolve 0 para lista vazia
func Average[T Amounted](items []T) float64 {
	if len(items) == 0 {
		return 0
	}
	return Sum(items) / float64(len(items))
}

// FilterSince mantém os registros com data igual ou posterior ao corte
func FilterSince[T Dated](items []T, cutoff time.Time) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if !item.EntryDate().Before(cutoff) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterWindow aplica FilterSince com o corte da janela
func FilterWindow[T Dated](items []T, w Window, now time.Time) []T {
	return FilterSince(items, Cutoff(w, now))
}

// RoundCurrency arredonda para a unidade inteira mais próxima
func RoundCurrency(value float64) float64 {
	return math.Round(value)
}
