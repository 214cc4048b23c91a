// Package prospect generates, recovers, and exports prospect company lists.
package prospect

import (
	"encoding/json"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/omnilinks/outreach-cli/internal/model"
)

// minPlausibleJSON is the shortest response that could hold a usable JSON
// payload; anything shorter signals a truncated upstream response.
const minPlausibleJSON = 50

// containerKeys are the alternate top-level array keys seen in the wild,
// checked in priority order.
var containerKeys = []string{"companies", "results", "data", "items"}

var (
	trailingCommaRE = regexp.MustCompile(`,(\s*[}\]])`)
	fragmentSplitRE = regexp.MustCompile(`\{[^}]*\\?"name\\?"`)
	// Fragments produced by fragmentSplitRE begin right after the "name"
	// key, so the leading value is matched without its key.
	leadingValueRE = regexp.MustCompile(`^\s*:\s*\\?"([^"\\]+)`)
	quotedStringRE = regexp.MustCompile(`\\?"([^"\\]+)\\?"`)
)

// recordFields are the seven non-name fields searched for during manual
// extraction, in record order.
var recordFields = []string{
	"website", "country", "industry",
	"contact_name", "contact_title", "contact_email", "description",
}

var fieldPatterns = buildFieldPatterns()

func buildFieldPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(recordFields))
	for _, f := range recordFields {
		// Tolerates both "field": "value" and the over-escaped
		// \"field\": \"value\" some providers emit.
		patterns[f] = regexp.MustCompile(`\\?"` + f + `\\?":\s*\\?"([^"\\]+)`)
	}
	return patterns
}

// Recover converts a raw, possibly malformed model response into valid
// company records. Stages degrade from strict JSON parsing down to a
// regex scrape; each stage's failure is absorbed and the next attempted.
// An empty result means total failure and the caller should substitute
// the fallback catalog. Recover never panics and is deterministic.
func Recover(raw string) []model.Company {
	if len(strings.TrimSpace(raw)) < minPlausibleJSON {
		zap.L().Warn("response too short to recover", zap.Int("len", len(raw)))
		return nil
	}

	text := unwrapFence(raw)
	text = trimToBraces(text)
	text = repairJSON(text)

	if records := parseStrict(text); len(records) > 0 {
		return records
	}

	zap.L().Warn("strict parse yielded no valid records, attempting manual extraction")
	return extractManually(raw)
}

// unwrapFence extracts the contents of the first triple-backtick code block
// (optionally tagged json). Text without a fence passes through unchanged.
func unwrapFence(text string) string {
	for _, marker := range []string{"```json", "```"} {
		start := strings.Index(text, marker)
		if start < 0 {
			continue
		}
		rest := text[start+len(marker):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return rest[:end]
		}
		return rest
	}
	return text
}

// trimToBraces slices to the outermost JSON value, discarding prose the
// model wrapped around it. A bracket before the first brace means the
// payload is a bare array. No-op when neither delimiter is present.
func trimToBraces(text string) string {
	opener, closer := "{", "}"
	brace := strings.Index(text, "{")
	bracket := strings.Index(text, "[")
	if bracket >= 0 && (brace < 0 || bracket < brace) {
		opener, closer = "[", "]"
	}

	start := strings.Index(text, opener)
	end := strings.LastIndex(text, closer)
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}

// repairJSON applies textual fixups for the two most common provider
// mistakes: trailing commas before a closing brace or bracket, and
// over-escaped double quotes.
func repairJSON(text string) string {
	text = trailingCommaRE.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, `\"`, `"`)
	return text
}

// parseStrict parses the repaired text as JSON and maps entries to records.
// Accepts an object holding the array under one of the known container keys,
// or a bare top-level array. Invalid entries are discarded.
func parseStrict(text string) []model.Company {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		zap.L().Debug("strict json parse failed", zap.Error(err))
		return nil
	}

	switch v := value.(type) {
	case map[string]any:
		for _, key := range containerKeys {
			entries, ok := v[key].([]any)
			if !ok || len(entries) == 0 {
				continue
			}
			if records := mapEntries(entries); len(records) > 0 {
				return records
			}
		}
		return nil
	case []any:
		return mapEntries(v)
	default:
		return nil
	}
}

func mapEntries(entries []any) []model.Company {
	var records []model.Company
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		record := model.Company{
			Name:         stringField(obj, "name"),
			Website:      stringField(obj, "website"),
			Country:      stringField(obj, "country"),
			Industry:     stringField(obj, "industry"),
			ContactName:  stringField(obj, "contact_name"),
			ContactTitle: stringField(obj, "contact_title"),
			ContactEmail: stringField(obj, "contact_email"),
			Description:  stringField(obj, "description"),
		}
		if !record.Valid() {
			zap.L().Debug("discarding invalid record", zap.String("name", record.Name))
			continue
		}
		records = append(records, record)
	}
	return records
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return strings.TrimSpace(s)
}

// extractManually scrapes object-like fragments from the raw text when
// strict parsing failed. It is a best-effort text scrape, not a parser:
// fragments are delimited by "name"-keyed field starts and each field is
// searched independently with a quote-tolerant pattern. Records missing
// required contact fields are still discarded.
func extractManually(raw string) []model.Company {
	blocks := fragmentSplitRE.Split(raw, -1)
	if len(blocks) <= 1 {
		return nil
	}

	var records []model.Company
	for _, block := range blocks[1:] {
		name := fragmentName(block)
		if name == "" {
			continue
		}
		record := model.Company{
			Name:         name,
			Website:      fragmentField(block, "website"),
			Country:      fragmentField(block, "country"),
			Industry:     fragmentField(block, "industry"),
			ContactName:  fragmentField(block, "contact_name"),
			ContactTitle: fragmentField(block, "contact_title"),
			ContactEmail: fragmentField(block, "contact_email"),
			Description:  fragmentField(block, "description"),
		}
		if !record.Valid() {
			continue
		}
		records = append(records, record)
	}
	return records
}

// fragmentName recovers the company name from a fragment whose "name" key
// was consumed by the splitter. Falls back to the first quoted string that
// is not a field name or URL.
func fragmentName(block string) string {
	if m := leadingValueRE.FindStringSubmatch(block); m != nil {
		return m[1]
	}
	for _, m := range quotedStringRE.FindAllStringSubmatch(block, -1) {
		candidate := m[1]
		if isFieldName(candidate) || strings.HasPrefix(candidate, "http") {
			continue
		}
		return candidate
	}
	return ""
}

func fragmentField(block, field string) string {
	if m := fieldPatterns[field].FindStringSubmatch(block); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func isFieldName(s string) bool {
	for _, f := range recordFields {
		if s == f {
			return true
		}
	}
	return s == "name"
}
