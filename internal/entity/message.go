package entity

import (
	"encoding/json"
	"fmt"
)

// UnknownErrorMessage is the fallback when no displayable message can be
// extracted from an error value.
const UnknownErrorMessage = "Unknown error"

// MessageOf extracts a displayable message from an arbitrary error value.
// Upload clients and recovered panics can surface errors, strings or any
// other shape; tried in order: error, string, Stringer, JSON, fallback.
func MessageOf(v interface{}) string {
	switch e := v.(type) {
	case nil:
		return UnknownErrorMessage
	case error:
		if msg := e.Error(); msg != "" {
			return msg
		}
	case string:
		if e != "" {
			return e
		}
	case fmt.Stringer:
		if msg := e.String(); msg != "" {
			return msg
		}
	default:
		if data, err := json.Marshal(v); err == nil {
			msg := string(data)
			if msg != "" && msg != "null" && msg != "{}" {
				return msg
			}
		}
	}
	return UnknownErrorMessage
}
