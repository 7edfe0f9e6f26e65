// Package pgdsn reads and adjusts Postgres connection strings in either URL
// or key=value form. Key=value DSNs are never rewritten.
package pgdsn

import (
	"net/url"
	"strings"
)

const preparedBinaryParam = "disable_prepared_binary_result"

// Normalize turns off binary results for prepared statements unless the URL
// already sets the parameter. Poolers in transaction mode reject them.
func Normalize(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}

	parsed, ok := parseURL(raw)
	if !ok {
		return raw
	}

	query := parsed.Query()
	if query.Has(preparedBinaryParam) {
		return raw
	}
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// DatabaseName reads the database name from either form.
func DatabaseName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, ok := parseURL(trimmed); ok {
		if name := strings.TrimPrefix(parsed.Path, "/"); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		name, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(name, `"'`); name != "" {
			return name
		}
	}
	return ""
}

// Redact hides the password so the DSN can be logged. Key=value DSNs are
// replaced wholesale.
func Redact(raw string) string {
	parsed, ok := parseURL(strings.TrimSpace(raw))
	if !ok {
		return "[dsn]"
	}
	return parsed.Redacted()
}

func parseURL(raw string) (*url.URL, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return nil, false
	}
	return parsed, true
}
