package model

import (
	"encoding/json"
	"time"
)

// Known content sections consumed by the consultation page.  The payment
// section is the only one the booking flow reads for behavior (fee and
// payment instructions); the rest are display copy.
const (
	SectionPayment  = "payment"
	SectionHero     = "hero"
	SectionVideo    = "video"
	SectionBenefits = "benefits"
)

// ContentSection is an administrator-edited document keyed by section
// name.  The document is stored as raw JSON and never interpreted by the
// server beyond the payment section's fee lookup.
type ContentSection struct {
	ID        uint64          `json:"id"`         // consultation_content.id
	Section   string          `json:"section"`    // consultation_content.section
	Content   json.RawMessage `json:"content"`    // consultation_content.content
	UpdatedAt time.Time       `json:"updated_at"` // consultation_content.updated_at
}

// PaymentConfig is the structured form of the payment content section.
type PaymentConfig struct {
	Amount      uint32 `json:"amount"`       // consultation fee in BDT
	BkashNumber string `json:"bkash_number"` // bKash account clients send money to
	BankDetails string `json:"bank_details"` // free-text bank transfer instructions
}

// DefaultPaymentConfig returns the payment configuration used when the
// administrator has not saved a payment section yet.  The placeholders
// mirror what the booking page shows before setup.
func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{
		Amount:      5000,
		BkashNumber: "01XXXXXXXXX",
		BankDetails: "Bank Name: ...\nAccount: ...\nRouting: ...",
	}
}

// PaymentConfigFrom decodes a payment section document, falling back to
// the defaults for the whole document when it is absent or malformed.
func PaymentConfigFrom(doc json.RawMessage) PaymentConfig {
	cfg := DefaultPaymentConfig()
	if len(doc) == 0 {
		return cfg
	}
	var parsed PaymentConfig
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return cfg
	}
	if parsed.Amount != 0 {
		cfg.Amount = parsed.Amount
	}
	if parsed.BkashNumber != "" {
		cfg.BkashNumber = parsed.BkashNumber
	}
	if parsed.BankDetails != "" {
		cfg.BankDetails = parsed.BankDetails
	}
	return cfg
}
