package utils

import "encoding/json"

// ConvertString renders any value as JSON for log metadata.
func ConvertString(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
