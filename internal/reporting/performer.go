package reporting

import (
	"sort"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

type Performer struct {
	TeamMemberID string `json:"team_member_id"`
	Name         string `json:"name"`
	Count        int    `json:"count"`
}

// TopPerformer conta compromissos bem-sucedidos por responsável. Empates
// ficam com o nome em ordem alfabética. Devolve nil quando ninguém pontuou.
func TopPerformer(appointments []*domain.Appointment, members []*domain.TeamMember) *Performer {
	ranking := RankPerformers(appointments, members)
	if len(ranking) == 0 {
		return nil
	}
	return &ranking[0]
}

// RankPerformers ordena os membros com pelo menos um compromisso bem-sucedido
func RankPerformers(appointments []*domain.Appointment, members []*domain.TeamMember) []Performer {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	counts := make(map[string]int)
	for _, a := range appointments {
		if a == nil || a.TeamMemberID == nil || *a.TeamMemberID == "" {
			continue
		}
		if !a.Result.IsSuccessful() {
			continue
		}
		counts[*a.TeamMemberID]++
	}

	ranking := make([]Performer, 0, len(counts))
	for id, count := range counts {
		name, ok := names[id]
		if !ok {
			continue
		}
		ranking = append(ranking, Performer{TeamMemberID: id, Name: name, Count: count})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		if ranking[i].Name != ranking[j].Name {
			return ranking[i].Name < ranking[j].Name
		}
		return ranking[i].TeamMemberID < ranking[j].TeamMemberID
	})

	return ranking
}
