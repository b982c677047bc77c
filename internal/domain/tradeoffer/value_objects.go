package tradeoffer

import "strings"

const MaxMessageLength = 1000

// CashAmount is the optional cash top-up in minor units (cents, kuruş).
// Zero means pure barter.
type CashAmount struct {
	cents int64
}

func NewCashAmount(cents int64) (CashAmount, error) {
	if cents < 0 {
		return CashAmount{}, ErrNegativeCashAmount
	}
	return CashAmount{cents: cents}, nil
}

func (a CashAmount) Cents() int64 { return a.cents }
func (a CashAmount) IsZero() bool { return a.cents == 0 }

// Message is an optional free-text note. Empty after trimming means absent.
type Message struct {
	text string
}

func NewMessage(s string) (Message, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{text: t}, nil
}

func (m Message) String() string { return m.text }
func (m Message) IsEmpty() bool  { return m.text == "" }

// SpecialConditions carries the proposer's handover preferences. All fields
// optional; the zero value means no conditions.
type SpecialConditions struct {
	MeetupPreferred   bool   `json:"meetup_preferred,omitempty"`
	MeetupLocation    string `json:"meetup_location,omitempty"`
	ShippingPreferred bool   `json:"shipping_preferred,omitempty"`
	ShippingDetails   string `json:"shipping_details,omitempty"`
	AdditionalNotes   string `json:"additional_notes,omitempty"`
}

func (sc SpecialConditions) IsZero() bool {
	return sc == SpecialConditions{}
}
