package domain

import "time"

// PaymentStatus representa a situação do pagamento de uma venda
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PaymentMethod representa a forma de pagamento de uma venda
type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// DeliveryStatus representa a situação da entrega de uma venda
type DeliveryStatus string

const (
	DeliveryStatusUnread         DeliveryStatus = "unread"
	DeliveryStatusPreparing      DeliveryStatus = "preparing"
	DeliveryStatusOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryStatusDelivered      DeliveryStatus = "delivered"
	DeliveryStatusCancelled      DeliveryStatus = "cancelled"
	DeliveryStatusOutOfStock     DeliveryStatus = "out_of_stock"
)

// DeliverySLADays é a janela em dias para classificar uma entrega como atrasada ou no prazo
const DeliverySLADays = 2

// SaleRecord é o registro bruto de uma venda, como lido do banco.
// O core trata esses registros como somente leitura.
type SaleRecord struct {
	ID             string         `json:"id"`
	Date           time.Time      `json:"date"`
	GrossTotal     float64        `json:"gross_total"`
	DiscountTotal  float64        `json:"discount_total"`
	FinalTotal     float64        `json:"final_total"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	PaymentStatus  PaymentStatus  `json:"payment_status"`
	ClientID       *string        `json:"client_id,omitempty"`
	IsDelivery     bool           `json:"is_delivery"`
	DeliveryStatus DeliveryStatus `json:"delivery_status,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// Cancelled indica se a venda foi cancelada. Vendas canceladas nunca
// entram em agregados de receita ou contagem.
func (s SaleRecord) Cancelled() bool {
	return s.PaymentStatus == PaymentStatusCancelled
}

// SaleSummary é o resumo da venda embutido em um item de venda
// (embedding raso de relação: item → venda)
type SaleSummary struct {
	Date          time.Time     `json:"date"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// SaleItemRecord é o registro bruto de um item de venda
type SaleItemRecord struct {
	SaleID      string       `json:"sale_id"`
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	Quantity    int          `json:"quantity"`
	UnitPrice   float64      `json:"unit_price"`
	Subtotal    float64      `json:"subtotal"`
	Sale        *SaleSummary `json:"sale,omitempty"`
}

// FromCancelledSale indica se o item pertence a uma venda cancelada.
// Itens sem resumo de venda embutido são tratados como cancelados para
// nunca inflar métricas com dados órfãos.
func (i SaleItemRecord) FromCancelledSale() bool {
	return i.Sale == nil || i.Sale.PaymentStatus == PaymentStatusCancelled
}
