package core

// Tabular serialization: every Record maps to one 5-field row in the fixed
// column order date, description, amount, category, type. This is the
// durable storage contract shared by the CSV store, the SQLite store and
// the sheets exporter.

// Header returns the column names written on save and skipped on load.
func Header() []string {
	return []string{"date", "description", "amount", "category", "type"}
}

// Row serializes the record: date as YYYY-MM-DD, amount as a plain decimal
// with no currency symbol or thousands separator, kind canonical.
func (r Record) Row() []string {
	return []string{
		r.Date.String(),
		r.Description,
		r.Amount.String(),
		r.Category,
		string(r.Kind),
	}
}

// RecordFromRow is the inverse of Row. It applies the full construction
// validation; parsing is strict: no currency or thousands-separator cleanup
// happens on this path, that tolerance belongs to raw-line import only.
func RecordFromRow(row []string) (Record, error) {
	if len(row) != len(Header()) {
		return Record{}, ErrInvalidRow
	}
	date, err := ParseDate(row[0])
	if err != nil {
		return Record{}, err
	}
	amount, err := ParseAmount(row[2])
	if err != nil {
		return Record{}, err
	}
	kind, err := ParseKind(row[4])
	if err != nil {
		return Record{}, err
	}
	return NewRecord(date, row[1], amount, row[3], kind)
}
