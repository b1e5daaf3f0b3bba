package amqp

import (
	"encoding/json"
	"time"

	"kudi/internal/core"
)

// RecordMessage carries one appended record to the sync worker. The full
// row travels in the message so the worker needs no access to the
// session's store.
type RecordMessage struct {
	Date        string    `json:"date"`
	Description string    `json:"description"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Kind        string    `json:"kind"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewRecordMessage builds a sync message from a validated record.
func NewRecordMessage(r core.Record) *RecordMessage {
	return &RecordMessage{
		Date:        r.Date.String(),
		Description: r.Description,
		AmountCents: r.Amount.Cents,
		Category:    r.Category,
		Kind:        string(r.Kind),
		Timestamp:   time.Now(),
	}
}

// ToRecord reconstructs and re-validates the record on the consuming side.
func (m *RecordMessage) ToRecord() (core.Record, error) {
	date, err := core.ParseDate(m.Date)
	if err != nil {
		return core.Record{}, err
	}
	return core.NewRecord(date, m.Description, core.Money{Cents: m.AmountCents}, m.Category, core.Kind(m.Kind))
}

// ToJSON converts the message to JSON bytes.
func (m *RecordMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordMessageFromJSON creates a message from JSON bytes.
func RecordMessageFromJSON(data []byte) (*RecordMessage, error) {
	var msg RecordMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
