package domain

// PendingPayments resume as vendas com pagamento pendente
type PendingPayments struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// SalesMetrics agrupa os indicadores financeiros do dashboard
type SalesMetrics struct {
	MonthTotal             float64               `json:"month_total"`
	LastMonthTotal         float64               `json:"last_month_total"`
	TodayTotal             float64               `json:"today_total"`
	AverageTicket          float64               `json:"average_ticket"`
	PendingPayments        PendingPayments       `json:"pending_payments"`
	TotalSalesCount        int                   `json:"total_sales_count"`
	PaymentMethodHistogram map[PaymentMethod]int `json:"payment_method_histogram"`
	TopPaymentMethod       PaymentMethod         `json:"top_payment_method"`
	MonthlyGoal            float64               `json:"monthly_goal"`
	GoalPercentage         float64               `json:"goal_percentage"`
}

// DeliveryMetrics agrupa os indicadores operacionais de entrega
type DeliveryMetrics struct {
	PendingDeliveries int     `json:"pending_deliveries"`
	ScheduledToday    int     `json:"scheduled_today"`
	InSeparation      int     `json:"in_separation"`
	DelayedDeliveries int     `json:"delayed_deliveries"`
	CompletedOnTime   int     `json:"completed_on_time"`
	TotalDeliveries   int     `json:"total_deliveries"`
	OnTimePercentage  float64 `json:"on_time_percentage"`
}

// RankedProduct é um produto ranqueado por quantidade vendida
type RankedProduct struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// ProductMetrics agrupa os indicadores de catálogo e estoque
type ProductMetrics struct {
	TotalProducts              int             `json:"total_products"`
	ActiveProducts             int             `json:"active_products"`
	LowStockProducts           int             `json:"low_stock_products"`
	OutOfStockProducts         int             `json:"out_of_stock_products"`
	TotalCategories            int             `json:"total_categories"`
	TotalStockValue            float64         `json:"total_stock_value"`
	ActivePromotions           int             `json:"active_promotions"`
	TotalSavingsFromPromotions float64         `json:"total_savings_from_promotions"`
	TopSellingLast7Days        []RankedProduct `json:"top_selling_last_7_days"`
	NoMovement30Days           int             `json:"no_movement_30_days"`
}

// RankedClient é um cliente ranqueado por volume de compras
type RankedClient struct {
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Total      float64 `json:"total"`
	SalesCount int     `json:"sales_count"`
}

// ClientMetrics agrupa os indicadores da base de clientes
type ClientMetrics struct {
	TotalActiveClients            int            `json:"total_active_clients"`
	ClientsWithPurchasesLastMonth int            `json:"clients_with_purchases_last_month"`
	NewClientsThisMonth           int            `json:"new_clients_this_month"`
	ClientsWithPendingPayments    int            `json:"clients_with_pending_payments"`
	TopClientsByVolume            []RankedClient `json:"top_clients_by_volume"`
}

// DailySalesPoint é um ponto da série diária de vendas
type DailySalesPoint struct {
	Day   string  `json:"day"` // chave de dia no formato 2006-01-02
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// DailySalesSeries é a série de vendas por dia, do mais antigo para o mais recente
type DailySalesSeries []DailySalesPoint

// CategorySales é a fatia de uma categoria na receita do período
type CategorySales struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
	Percentage   float64 `json:"percentage"`
}

// CategorySalesBreakdown é a distribuição de receita por categoria,
// ordenada da maior para a menor fatia
type CategorySalesBreakdown []CategorySales

// LowStockPoint é um ponto da série de produtos com estoque baixo
type LowStockPoint struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// LowStockTrend é a série dos últimos dias de produtos com estoque baixo.
// Sem histórico persistido a série é um placeholder plano com a contagem atual.
type LowStockTrend []LowStockPoint
