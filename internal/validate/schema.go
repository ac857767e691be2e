package validate

// BuildReceiptJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// for a serialized ParsedReceipt as a generic map. Every field is
// required: a parse always returns fully populated records, with zero
// values rather than absent fields.
func BuildReceiptJSONSchema() map[string]any {
	itemSchema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":       map[string]any{"type": "string", "minLength": 1},
			"price":      nonNegativeNumber(),
			"quantity":   map[string]any{"type": "integer", "minimum": 1},
			"confidence": unitInterval(),
		},
		"required": []string{"name", "price", "quantity", "confidence"},
	}

	props := map[string]any{
		"merchant": map[string]any{"type": "string"},
		"date":     map[string]any{"type": "string"},
		"items":    map[string]any{"type": "array", "items": itemSchema},
		"tax":      nonNegativeNumber(),
		"tip":      nonNegativeNumber(),
		"total":    nonNegativeNumber(),
		// subtotal may go negative when derived from inconsistent totals
		"subtotal":   map[string]any{"type": "number"},
		"confidence": unitInterval(),
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required": []string{
			"merchant", "date", "items",
			"tax", "tip", "total", "subtotal", "confidence",
		},
	}
}

func nonNegativeNumber() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0}
}

func unitInterval() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
}
