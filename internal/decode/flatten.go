package decode

// flattenValue collapses single-key wrapper objects produced by the union
// encoding into their inner value, recursing through maps and slices. It is a
// pure transform: the input is never mutated.
func flattenValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		if len(t) == 1 {
			for _, inner := range t {
				return flattenValue(inner)
			}
		}
		out := make(map[string]interface{}, len(t))
		for k, vv := range t {
			out[k] = flattenValue(vv)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, vv := range t {
			out[i] = flattenValue(vv)
		}
		return out
	default:
		return v
	}
}
