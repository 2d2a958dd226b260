package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "time"    // time is used for cache TTL durations

    "github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// DevJWTSecret is the signing secret used when APP_ENV=dev and no JWT_SECRET
// is provided.  It is intentionally recognizable so that a deployment running
// on the default can never be mistaken for one holding a real secret.
// Outside of dev the secret is required and startup fails without it.
const DevJWTSecret = "dev-secret-change-in-production"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.  The same struct is shared by all services; each service simply
// ignores the fields it does not need.
type Config struct {
    Env              string        // application environment (e.g. "dev", "prod")
    Port             string        // HTTP port to listen on
    DBUser           string        // database username
    DBPass           string        // database password (optional)
    DBHost           string        // database host address
    DBPort           string        // database port number
    DBName           string        // database name
    MongoURI         string        // MongoDB connection string (insight store)
    MongoDB          string        // MongoDB database name
    JWTSecret        string        // secret used to sign JWTs
    AccessTTLMin     int           // access token time-to-live in minutes
    RefreshTTLDays   int           // refresh token time-to-live in days
    BcryptCost       int           // bcrypt cost for password hashing
    NLPAgentURL      string        // analyze endpoint of the nlp service
    AnalysisCacheTTL time.Duration // lifetime of cached analysis results
}

// Load reads configuration values from environment variables and returns a
// Config.  A local .env file is applied first when present.  Required
// variables are enforced by must() and missing values cause the program to
// exit with a fatal log message; tunables fall back to the same defaults the
// deployment manifests use.
func Load() Config {
    _ = godotenv.Load() // absent .env is fine; real env vars win

    return Config{
        Env:              envStr("APP_ENV", "dev"), // environment (dev/test/prod)
        Port:             must("APP_PORT"),         // port to bind the HTTP server
        DBUser:           must("DB_USER"),          // database user
        DBPass:           os.Getenv("DB_PASS"),     // database password (empty allowed)
        DBHost:           must("DB_HOST"),          // database host
        DBPort:           must("DB_PORT"),          // database port
        DBName:           must("DB_NAME"),          // database name
        MongoURI:         envStr("MONGODB_URI", "mongodb://localhost:27017"),
        MongoDB:          envStr("MONGODB_DATABASE", "aura_journal"),
        JWTSecret:        jwtSecret(),                          // signing secret (dev default allowed)
        AccessTTLMin:     envInt("ACCESS_TOKEN_TTL_MIN", 30),   // TTL for access tokens in minutes
        RefreshTTLDays:   envInt("REFRESH_TOKEN_TTL_DAYS", 7),  // TTL for refresh tokens in days
        BcryptCost:       envInt("BCRYPT_COST", 12),            // bcrypt cost factor
        NLPAgentURL:      envStr("NLP_AGENT_URL", "http://localhost:8001/analyze"),
        AnalysisCacheTTL: envDur("ANALYSIS_CACHE_TTL", time.Hour),
    }
}

// jwtSecret resolves the token signing secret.  In dev a fixed default is
// tolerated (with a loud warning); everywhere else JWT_SECRET is mandatory.
func jwtSecret() string {
    if v := os.Getenv("JWT_SECRET"); v != "" {
        return v
    }
    if envStr("APP_ENV", "dev") == "dev" {
        log.Printf("WARNING: JWT_SECRET not set, using the dev-only default secret")
        return DevJWTSecret
    }
    log.Fatalf("missing required env var: JWT_SECRET")
    return ""
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

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
