package db

import (
	"fmt"
	"os"
)

// Recognized environment variables, in priority order. A complete URL under
// any of the first-tier names wins outright; otherwise a URL is assembled
// from the discrete second-tier fields.
var (
	connectionURLVars = []string{
		"DATABASE_URL",
		"NEON_DATABASE_URL",
		"POSTGRES_URL",
		"POSTGRES_CONNECTION_STRING",
	}
	hostVars     = []string{"POSTGRES_HOST", "PGHOST", "NEON_HOST"}
	databaseVars = []string{"POSTGRES_DATABASE", "PGDATABASE", "NEON_DATABASE"}
	userVars     = []string{"POSTGRES_USER", "PGUSER", "NEON_USER"}
	passwordVars = []string{"POSTGRES_PASSWORD", "PGPASSWORD", "NEON_PASSWORD"}
	portVars     = []string{"POSTGRES_PORT", "PGPORT", "NEON_PORT"}
)

const (
	defaultDatabase = "neondb"
	defaultUser     = "neondb_owner"
	defaultPort     = "5432"
)

// ConfigResolver derives a connection descriptor from the environment.
// Resolution is pure: no network I/O, no errors, and the same environment
// always yields the same result.
type ConfigResolver struct {
	lookup func(key string) (string, bool)
}

// NewConfigResolver returns a resolver backed by the process environment.
func NewConfigResolver() *ConfigResolver {
	return &ConfigResolver{lookup: os.LookupEnv}
}

// NewConfigResolverFromLookup returns a resolver backed by a custom lookup,
// used by tests to pin the environment.
func NewConfigResolverFromLookup(lookup func(key string) (string, bool)) *ConfigResolver {
	return &ConfigResolver{lookup: lookup}
}

// Resolve returns the connection descriptor, or ok=false when the
// environment holds no usable configuration. Absence is a normal outcome,
// not an error.
func (r *ConfigResolver) Resolve() (descriptor string, ok bool) {
	if url := r.first(connectionURLVars, ""); url != "" {
		return url, true
	}

	host := r.first(hostVars, "")
	password := r.first(passwordVars, "")
	if host == "" || password == "" {
		return "", false
	}

	database := r.first(databaseVars, defaultDatabase)
	user := r.first(userVars, defaultUser)
	port := r.first(portVars, defaultPort)

	// Neon requires SSL, so it is baked into the assembled URL.
	url := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=require",
		user, password, host, port, database)
	return url, true
}

// Configured reports whether the environment holds usable configuration,
// without exposing the descriptor.
func (r *ConfigResolver) Configured() bool {
	_, ok := r.Resolve()
	return ok
}

// first returns the first non-empty value among the given variables, or
// fallback when none is set.
func (r *ConfigResolver) first(keys []string, fallback string) string {
	for _, key := range keys {
		if val, found := r.lookup(key); found && val != "" {
			return val
		}
	}
	return fallback
}
