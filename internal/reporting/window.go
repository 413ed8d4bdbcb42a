package reporting

import (
	"fmt"
	"time"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

// Window é o período relativo usado nos filtros do painel
type Window string

const (
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
	WindowAll   Window = "all"
)

// Windows na ordem em que aparecem no painel
var Windows = []Window{WindowToday, WindowWeek, WindowMonth, WindowYear, WindowAll}

var windowDays = map[Window]int{
	WindowToday: 0,
	WindowWeek:  7,
	WindowMonth: 30,
	WindowYear:  365,
}

func ParseWindow(value string) (Window, error) {
	if value == "" {
		return WindowAll, nil
	}

	w := Window(value)
	if _, ok := windowDays[w]; ok || w == WindowAll {
		return w, nil
	}

	return "", fmt.Errorf("período inválido: %q", value)
}

// Cutoff devolve a primeira data incluída na janela. A janela conta hoje
// como um dos dias: "week" cobre hoje e os seis dias anteriores. Para
// WindowAll o resultado é o instante zero, que não exclui nenhum registro.
func Cutoff(w Window, now time.Time) time.Time {
	days, ok := windowDays[w]
	if !ok {
		return time.Time{}
	}

	today := domain.DateOf(now).Time
	if days == 0 {
		return today
	}
	return today.AddDate(0, 0, -(days - 1))
}
