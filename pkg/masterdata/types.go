package masterdata

// AttributeRecord is a single master data entry as it travels on the wire.
// Value is populated only for the tax (percentage) and warranty (duration)
// attribute types; it is absent for every other type.
type AttributeRecord struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Result is the normalized outcome of every attribute operation. Success is
// the only field callers need to branch on: Data is set when Success is true,
// Message when it is false. Err carries the underlying transport or server
// error for logging; it is never required to interpret the result.
type Result struct {
	Success bool              `json:"success"`
	Data    []AttributeRecord `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Err     error             `json:"-"`
}

// DeleteResult extends Result with the collection as it stands after the
// delete, so callers can refresh their table without a second round trip.
type DeleteResult struct {
	Result
	UpdatedList []AttributeRecord `json:"updatedList,omitempty"`
}

// Option is the select-input shape UI callers map attribute records into.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options maps attribute records to select options (_id → value, name → label).
func Options(records []AttributeRecord) []Option {
	options := make([]Option, 0, len(records))
	for _, record := range records {
		options = append(options, Option{Value: record.ID, Label: record.Name})
	}
	return options
}

func failure(message string, err error) Result {
	return Result{Success: false, Message: message, Err: err}
}
