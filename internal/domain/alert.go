package domain

// AlertSeverity indica a criticidade de um alerta
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityInfo     AlertSeverity = "info"
)

// Referências de navegação que a UI resolve para uma tela. O core apenas
// carrega a referência, nunca executa a navegação.
const (
	AlertActionOutOfStockProducts = "products/out-of-stock"
	AlertActionLowStockProducts   = "products/low-stock"
	AlertActionPendingPayments    = "sales/pending-payments"
	AlertActionDeliveryProblems   = "deliveries/problems"
	AlertActionDelayedDeliveries  = "deliveries/delayed"
	AlertActionUnreadDeliveries   = "deliveries/unread"
)

// Alert é um aviso acionável derivado do estado atual dos registros
type Alert struct {
	ID        string        `json:"id"`
	Severity  AlertSeverity `json:"severity"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Count     int           `json:"count,omitempty"`
	ActionRef string        `json:"action_ref,omitempty"`
}

// severityRank ordena critical < warning < info para priorização do feed
var severityRank = map[AlertSeverity]int{
	AlertSeverityCritical: 0,
	AlertSeverityWarning:  1,
	AlertSeverityInfo:     2,
}

// LessSevere informa se a severidade a é menos prioritária que b
func LessSevere(a, b AlertSeverity) bool {
	return severityRank[a] > severityRank[b]
}
