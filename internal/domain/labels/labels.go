// Package labels maps domain codes to the pt-BR strings shown in reports.
//
// Every lookup is total: a code without a translation is returned as is.
package labels

var quoteStatus = map[string]string{
	"draft":       "Rascunho",
	"sent":        "Enviado",
	"viewed":      "Visualizado",
	"negotiation": "Em negociação",
	"approved":    "Aprovado",
	"rejected":    "Rejeitado",
	"expired":     "Expirado",
}

var frequency = map[string]string{
	"daily":   "Diário",
	"weekly":  "Semanal",
	"monthly": "Mensal",
	"yearly":  "Anual",
}

var scope = map[string]string{
	"client":   "Cliente",
	"supplier": "Fornecedor",
	"both":     "Cliente e fornecedor",
}

var personType = map[string]string{
	"individual":   "Pessoa física",
	"organization": "Pessoa jurídica",
}

var priority = map[string]string{
	"low":    "Baixa",
	"medium": "Média",
	"high":   "Alta",
	"urgent": "Urgente",
}

var contractState = map[string]string{
	"active":   "Ativo",
	"inactive": "Inativo",
}

var dashboardTile = map[string]string{
	"open_quotes":      "Orçamentos em aberto",
	"overdue_quotes":   "Orçamentos vencidos",
	"approved_quotes":  "Orçamentos aprovados",
	"expired_quotes":   "Orçamentos expirados",
	"active_contracts": "Contratos ativos",
	"ending_contracts": "Contratos a encerrar",
}

func lookup(table map[string]string, code string) string {
	if v, ok := table[code]; ok {
		return v
	}
	return code
}

func QuoteStatus(code string) string   { return lookup(quoteStatus, code) }
func Frequency(code string) string     { return lookup(frequency, code) }
func Scope(code string) string         { return lookup(scope, code) }
func PersonType(code string) string    { return lookup(personType, code) }
func Priority(code string) string      { return lookup(priority, code) }
func ContractState(code string) string { return lookup(contractState, code) }
func DashboardTile(code string) string { return lookup(dashboardTile, code) }

// Active labels a contract's active flag.
func Active(active bool) string {
	if active {
		return ContractState("active")
	}
	return ContractState("inactive")
}

// Tables returns a copy of every translation table keyed by table name.
func Tables() map[string]map[string]string {
	out := map[string]map[string]string{
		"quote_status":   quoteStatus,
		"frequency":      frequency,
		"scope":          scope,
		"person_type":    personType,
		"priority":       priority,
		"contract_state": contractState,
		"dashboard_tile": dashboardTile,
	}
	for name, table := range out {
		cp := make(map[string]string, len(table))
		for k, v := range table {
			cp[k] = v
		}
		out[name] = cp
	}
	return out
}
