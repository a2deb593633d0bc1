package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Quantity accepts the loose quantity encodings storefront clients send:
// a JSON number, a numeric string, or the empty string (treated as zero).
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*q = 0
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*q = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("quantity %q is not a number", s)
		}
		*q = Quantity(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*q = Quantity(n)
	return nil
}

func (q Quantity) Int() int { return int(q) }
