package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "time"    // time parses duration values
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The front-end keeps no state of its own, so the
// configuration covers the listen address, the backend API location, the
// session cookie and the optional cache/broker integrations.
type Config struct {
    Env           string        // application environment (e.g. "dev", "prod")
    Port          string        // HTTP port to listen on
    APIBaseURL    string        // base URL of the backend reservation API
    APITimeout    time.Duration // per-request timeout for backend calls
    SessionSecret string        // secret used to sign the session cookie
    SessionTTL    time.Duration // lifetime of an issued session cookie
    TimeZone      string        // IANA zone used to render and compose booking times
    AMQPURL       string        // RabbitMQ URL for booking events (empty disables publishing)
}

// Load reads configuration values from environment variables and returns a
// Config.  Only SESSION_SECRET is required; everything else falls back to a
// development default.  A missing required variable causes the program to
// exit with a fatal log message.
func Load() Config {
    return Config{
        Env:           getenv("APP_ENV", "dev"),
        Port:          getenv("APP_PORT", "3000"),
        APIBaseURL:    getenv("API_BASE_URL", "http://127.0.0.1:8000"),
        APITimeout:    getdur("API_TIMEOUT", 10*time.Second),
        SessionSecret: must("SESSION_SECRET"),
        SessionTTL:    time.Duration(getint("SESSION_TTL_MIN", 720)) * time.Minute,
        TimeZone:      getenv("TIME_ZONE", "Asia/Tokyo"),
        AMQPURL:       firstenv("RABBITMQ_URL", "AMQP_URL"),
    }
}

// Location resolves the configured time zone.  An unknown zone name falls
// back to UTC rather than aborting startup, since every page can still
// function with a different rendering zone.
func (c Config) Location() *time.Location {
    loc, err := time.LoadLocation(c.TimeZone)
    if err != nil {
        log.Printf("unknown TIME_ZONE %q, falling back to UTC", c.TimeZone)
        return time.UTC
    }
    return loc
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func getint(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, v)
    }
    return n
}

func getdur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    d, err := time.ParseDuration(v)
    if err != nil {
        log.Fatalf("invalid duration for %s: %q", key, v)
    }
    return d
}

// firstenv returns the first non-empty value among the given variables.
func firstenv(keys ...string) string {
    for _, k := range keys {
        if v := os.Getenv(k); v != "" {
            return v
        }
    }
    return ""
}
