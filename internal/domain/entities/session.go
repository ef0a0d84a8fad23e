package entities

import "time"

// Step is the conversation finite-state-machine state for a customer session.
type Step string

const (
	StepGreeting        Step = "greeting"
	StepOrdering        Step = "ordering"
	StepDeliveryType    Step = "delivery_type"
	StepAddressStreet   Step = "address_street"
	StepAddressNumber   Step = "address_number"
	StepAddressDistrict Step = "address_district"
	StepAddressCity     Step = "address_city"
	StepAddressRef      Step = "address_reference"
	StepCustomerName    Step = "customer_name"
	StepPaymentMethod   Step = "payment_method"
	StepCashAmount      Step = "cash_amount"
	StepWaitingPixProof Step = "waiting_pix_proof"
	StepCompleted       Step = "completed"
)

// Valid reports whether s belongs to the defined state set.
func (s Step) Valid() bool {
	switch s {
	case StepGreeting, StepOrdering, StepDeliveryType,
		StepAddressStreet, StepAddressNumber, StepAddressDistrict,
		StepAddressCity, StepAddressRef, StepCustomerName,
		StepPaymentMethod, StepCashAmount, StepWaitingPixProof,
		StepCompleted:
		return true
	}
	return false
}

type DeliveryType string

const (
	DeliveryTypeEntrega  DeliveryType = "entrega"
	DeliveryTypeRetirada DeliveryType = "retirada"
)

type PaymentMethod string

const (
	PaymentMethodPix      PaymentMethod = "PIX"
	PaymentMethodDinheiro PaymentMethod = "CASH"
	PaymentMethodCartao   PaymentMethod = "CARD"
)

type MessageType string

const (
	MessageTypeCustomer MessageType = "customer"
	MessageTypeBot      MessageType = "bot"
)

// Message is one entry of the session's chronological chat log.
type Message struct {
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	ImageURL  string      `json:"image_url,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// CustomerData holds the slot-filling fields collected during the flow.
// Change is only set once PaymentMethod is CASH and a validated
// CashAmount >= total exists.
type CustomerData struct {
	Name          string        `json:"name,omitempty"`
	Street        string        `json:"street,omitempty"`
	Number        string        `json:"number,omitempty"`
	District      string        `json:"district,omitempty"`
	City          string        `json:"city,omitempty"`
	Reference     string        `json:"reference,omitempty"`
	Address       string        `json:"address,omitempty"`
	DeliveryType  DeliveryType  `json:"delivery_type,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	CashAmount    float64       `json:"cash_amount,omitempty"`
	Change        float64       `json:"change,omitempty"`
}

// CustomerSession is the only mutable entity of the conversational core.
// One session exists per phone; it is created on the first inbound message
// and cleared by the caller shortly after an order is finalized.
type CustomerSession struct {
	Phone          string       `json:"phone"`
	Cart           Cart         `json:"cart"`
	Step           Step         `json:"step"`
	CustomerData   CustomerData `json:"customer_data"`
	Messages       []Message    `json:"messages"`
	CreatedAt      time.Time    `json:"created_at"`
	LastActivityAt time.Time    `json:"last_activity_at"`
}

// NewCustomerSession returns a fresh session in the greeting step.
func NewCustomerSession(phone string, now time.Time) *CustomerSession {
	return &CustomerSession{
		Phone:          phone,
		Step:           StepGreeting,
		CreatedAt:      now,
		LastActivityAt: now,
	}
}

// AppendMessage records one chat-log entry.
func (s *CustomerSession) AppendMessage(t MessageType, content, imageURL string, at time.Time) {
	s.Messages = append(s.Messages, Message{
		Type:      t,
		Content:   content,
		ImageURL:  imageURL,
		Timestamp: at,
	})
}

// CustomerMessageCount counts inbound (customer) entries of the chat log.
// The greeting step uses it to decide whether a turn is still a "first
// contact" turn.
func (s *CustomerSession) CustomerMessageCount() int {
	n := 0
	for _, m := range s.Messages {
		if m.Type == MessageTypeCustomer {
			n++
		}
	}
	return n
}
