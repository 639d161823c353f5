package types

// PaymentGateways toggles which checkout payment methods the store
// advertises. Nothing here charges anyone.
type PaymentGateways struct {
	Cash bool `json:"cash"`
	UPI  bool `json:"upi"`
	Card bool `json:"card"`
}

// ContactInfo is the store's public contact block.
type ContactInfo struct {
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	BusinessHours string `json:"business_hours"`
	WhatsApp      string `json:"whatsapp,omitempty"`
}
