package sumup

import (
	"encoding/json"
	"strconv"
	"time"
)

// SumUp's response shapes are loosely specified and have drifted over API
// versions. Every tolerated variant is declared here as an ordered rule
// table; extraction tries each rule in sequence and takes the first hit.
// Adding or retiring an upstream shape is one line in one table.

// merchantCodePaths are the known locations of the merchant identifier in
// the profile response, most specific first.
var merchantCodePaths = [][]string{
	{"merchant_profile", "merchant_code"},
	{"merchant_code"},
	{"account", "merchant_code"},
}

// listEnvelopeKeys are the wrapper fields under which the history endpoint
// has been seen to nest its transaction list. A bare JSON array is also
// accepted.
var listEnvelopeKeys = []string{"items", "data"}

// Per-field fallback names for one transaction object.
var (
	transactionIDKeys = []string{"id", "transaction_id", "transaction_code"}
	amountKeys        = []string{"amount", "total_amount"}
	currencyKeys      = []string{"currency", "currency_code"}
	statusKeys        = []string{"status", "simple_status"}
	descriptionKeys   = []string{"description", "product_summary"}
	merchantNameKeys  = []string{"merchant_name", "business_name"}
	timestampKeys     = []string{"timestamp", "local_time", "created_at"}
)

// Defaults applied when upstream omits the field entirely.
const (
	defaultCurrency = "EUR"
	defaultStatus   = "SUCCESSFUL"
)

// timestampLayouts are tried in order when the timestamp is not RFC3339.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// lookupPath walks nested objects along path and returns the leaf value.
func lookupPath(payload map[string]any, path []string) (any, bool) {
	current := any(payload)
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// firstStringPath returns the first non-empty string found at any of the paths.
func firstStringPath(payload map[string]any, paths [][]string) (string, bool) {
	for _, path := range paths {
		value, ok := lookupPath(payload, path)
		if !ok {
			continue
		}
		if s, ok := value.(string); ok && s != "" {
			return s, true
		}
	}

	return "", false
}

// firstString returns the first non-empty string under any of the top-level keys.
func firstString(payload map[string]any, keys []string) (string, bool) {
	for _, key := range keys {
		if s, ok := payload[key].(string); ok && s != "" {
			return s, true
		}
	}

	return "", false
}

// firstNumber returns the first value under keys that parses as a number.
// Upstream sends amounts both as JSON numbers and as numeric strings.
func firstNumber(payload map[string]any, keys []string) (float64, bool) {
	for _, key := range keys {
		value, ok := payload[key]
		if !ok {
			continue
		}

		switch v := value.(type) {
		case float64:
			return v, true
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return f, true
			}
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f, true
			}
		}
	}

	return 0, false
}

// firstTimestamp returns the first value under keys that parses as a time.
func firstTimestamp(payload map[string]any, keys []string) (time.Time, bool) {
	for _, key := range keys {
		s, ok := payload[key].(string)
		if !ok || s == "" {
			continue
		}
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, true
			}
		}
	}

	return time.Time{}, false
}

// extractMerchantCode applies merchantCodePaths to a profile payload.
func extractMerchantCode(payload map[string]any) (string, bool) {
	return firstStringPath(payload, merchantCodePaths)
}

// unwrapTransactionList extracts the logical transaction list from a history
// response body, whichever of the tolerated shapes it arrived in.
func unwrapTransactionList(body []byte) ([]map[string]any, bool) {
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err == nil {
		for _, key := range listEnvelopeKeys {
			if list, ok := envelope[key].([]any); ok {
				return toObjectList(list)
			}
		}

		return nil, false
	}

	var bare []any
	if err := json.Unmarshal(body, &bare); err == nil {
		return toObjectList(bare)
	}

	return nil, false
}

func toObjectList(list []any) ([]map[string]any, bool) {
	objects := make([]map[string]any, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		objects = append(objects, obj)
	}

	return objects, true
}
