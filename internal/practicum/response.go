package practicum

// CheckResponse validates the decoded payload shape and returns the homework
// records as delivered by the endpoint: order significant, element 0 most
// recent, possibly empty.
func CheckResponse(v any) ([]any, error) {
	resp, ok := v.(map[string]any)
	if !ok {
		return nil, &FormatError{Msg: "response is not a JSON object"}
	}
	if _, ok := resp["current_date"]; !ok {
		return nil, &MissingFieldError{Key: "current_date"}
	}
	raw, ok := resp["homeworks"]
	if !ok {
		return nil, &FormatError{Msg: `missing key "homeworks"`}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &FormatError{Msg: `key "homeworks" is not a list`}
	}
	return list, nil
}
