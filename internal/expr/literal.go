package expr

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// formatLiteral renders a constant value in its OData literal form. Strings
// are single-quoted with embedded quotes doubled, nil renders as the null
// token, and time, decimal and guid values follow their Edm literal forms.
func formatLiteral(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'", nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		// Edm.DateTimeOffset literals are unquoted ISO 8601 timestamps.
		return v.UTC().Format(time.RFC3339Nano), nil
	case decimal.Decimal:
		return v.String(), nil
	case uuid.UUID:
		// Edm.Guid literals are unquoted.
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedLiteral, value)
	}
}
