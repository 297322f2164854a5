package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// SanitizeModelJSON makes a best effort at repairing model output so it can
// pass schema validation:
//   - strips markdown code fences around the JSON body
//   - drops null values and empty/whitespace-only strings (at every level)
//   - leaves unknown keys alone; extras must survive to the merge
//
// It returns the cleaned JSON and the list of dropped key paths.
func SanitizeModelJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	trimmed := stripFences(raw)
	var m map[string]any
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var dropped []string
	cleanMap(m, "", &dropped)

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.sanitized", "dropped", dropped)
	}
	return out, dropped, nil
}

func cleanMap(m map[string]any, prefix string, dropped *[]string) {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			*dropped = append(*dropped, path+"(null)")
		case string:
			if strings.TrimSpace(t) == "" || strings.EqualFold(strings.TrimSpace(t), "null") {
				delete(m, k)
				*dropped = append(*dropped, path+"(empty)")
			}
		case map[string]any:
			cleanMap(t, path, dropped)
			if len(t) == 0 {
				delete(m, k)
				*dropped = append(*dropped, path+"(empty)")
			}
		}
	}
}

// stripFences removes a surrounding ```json ... ``` fence if present. Models
// in json_object mode rarely emit one, but the cost of tolerance is nil.
func stripFences(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return raw
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}
