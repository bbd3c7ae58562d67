package renderers

import (
	"fmt"
	"strings"
)

// textPayload coerces the payload shapes seen in notebook bundles into a
// string. Multi-line values arrive as string arrays and are joined as-is.
func textPayload(mimetype string, data any) (string, error) {
	switch v := data.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case []string:
		return strings.Join(v, ""), nil
	case []any:
		var b strings.Builder
		for i, part := range v {
			s, ok := part.(string)
			if !ok {
				return "", fmt.Errorf("%s: line %d is %T, want string", mimetype, i, part)
			}
			b.WriteString(s)
		}
		return b.String(), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%s: unsupported payload type %T", mimetype, data)
	}
}
