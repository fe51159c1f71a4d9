package store

import "context"

// EstatisticasGerais aggregates the collections. The collected amount is the
// installment value of each contract's plano times its paid installments; contracts
// whose plano no longer exists contribute nothing.
func (s *Store) EstatisticasGerais(context.Context) Estatisticas {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Estatisticas{
		TotalPessoas:           len(s.db.Pessoas),
		TotalPlanos:            len(s.db.Planos),
		TotalPlanosContratados: len(s.db.PlanosContratados),
	}

	planos := make(map[int]Plano, len(s.db.Planos))
	for _, p := range s.db.Planos {
		stats.ValorTotalCredito += p.ValorCredito
		planos[p.ID] = p
	}

	for _, pc := range s.db.PlanosContratados {
		switch pc.Status {
		case StatusAtivo:
			stats.PlanosAtivos++
		case StatusContemplado:
			stats.PlanosContemplados++
		case StatusInadimplente:
			stats.PlanosInadimplentes++
		case StatusQuitado:
			stats.PlanosQuitados++
		}
		if plano, ok := planos[pc.PlanoID]; ok {
			stats.ValorTotalArrecadado += plano.ValorParcela() * float64(pc.ParcelasPagas)
		}
	}
	return stats
}
