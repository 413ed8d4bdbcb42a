package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("valor deve ser um número maior que zero")

// ParseAmount aceita número JSON ou texto ("12.50", "12,50") e rejeita
// valores não numéricos, zero e negativos.
func ParseAmount(raw any) (float64, error) {
	var amount float64

	switch v := raw.(type) {
	case float64:
		amount = v
	case float32:
		amount = float64(v)
	case int:
		amount = float64(v)
	case int64:
		amount = float64(v)
	case interface{ Float64() (float64, error) }:
		f, err := v.Float64()
		if err != nil {
			return 0, ErrInvalidAmount
		}
		amount = f
	case string:
		value := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		amount = f
	default:
		return 0, ErrInvalidAmount
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}

	return RoundWithTwoDecimalPlace(amount), nil
}

// RoundWithTwoDecimalPlace guarda valores em centavos
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
