package graphql

import (
	"fmt"
	"strconv"
)

// parseID coerces a GraphQL ID argument to a store identifier. IDs that
// are not numeric cannot match any row, so callers treat a false return
// as "no such row" rather than an error.
func parseID(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case string:
		id, err := strconv.ParseInt(t, 10, 64)
		return id, err == nil
	case int:
		return int64(t), true
	case int64:
		return t, true
	}
	return 0, false
}

func idArg(args map[string]interface{}, key string) (int64, bool) {
	v, ok := args[key]
	if !ok {
		return 0, false
	}
	return parseID(v)
}

// optionalIDArg distinguishes "absent" (nil, nil) from "present but not
// an id" (error). Reference arguments use it so a typo fails loudly
// instead of silently matching nothing.
func optionalIDArg(args map[string]interface{}, key string) (*int64, error) {
	v, ok := args[key]
	if !ok {
		return nil, nil
	}
	id, ok := parseID(v)
	if !ok {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &id, nil
}

func stringArg(args map[string]interface{}, key string) *string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return &s
		}
	}
	return nil
}

func intArg(args map[string]interface{}, key string) *int {
	if v, ok := args[key]; ok {
		if n, ok := v.(int); ok {
			return &n
		}
	}
	return nil
}
