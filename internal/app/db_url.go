package app

import (
	"net/url"
	"strings"
)

// postgresTarget is the DSN handed to lib/pq plus the database name reported
// on query spans.
type postgresTarget struct {
	DSN    string
	DBName string
}

func resolvePostgresTarget(raw, serviceName string, disablePreparedBinary bool) postgresTarget {
	dsn := withConnParams(raw, serviceName, disablePreparedBinary)
	return postgresTarget{DSN: dsn, DBName: databaseName(dsn)}
}

// withConnParams adds connection parameters to a URL-style DSN unless the URL
// already sets them. Keyword/value DSNs are returned as is.
func withConnParams(raw, serviceName string, disablePreparedBinary bool) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	changed := false
	setDefault := func(key, value string) {
		if value == "" || query.Has(key) {
			return
		}
		query.Set(key, value)
		changed = true
	}
	if disablePreparedBinary {
		setDefault("disable_prepared_binary_result", "yes")
	}
	setDefault("application_name", strings.TrimSpace(serviceName))

	if !changed {
		return raw
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func databaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}
	for _, token := range strings.Fields(dsn) {
		if name, ok := strings.CutPrefix(token, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}
	return ""
}
