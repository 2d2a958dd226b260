package config

// This file defines a Redis client constructor for the nlp service.  Redis
// backs the analysis result cache so repeated analysis of identical text does
// not hit the cloud provider twice.  The client parameters are loaded from
// environment variables.  If the connection fails during startup the function
// returns nil and callers degrade gracefully by running without a cache.

import (
    "context"
    "crypto/tls"
    "os"
    "strings"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client using environment variables.
// Supported variables are:
//   REDIS_ADDR - host:port of the Redis server
//   REDIS_HOST and REDIS_PORT - used when REDIS_ADDR is not set
//   REDIS_PASSWORD - optional password
//   REDIS_DB - database number (default 0)
//   REDIS_TLS - enable TLS when "true" or "1"
// The returned client may be nil if a connection cannot be established.
func NewRedisClient() *redis.Client {
    addr := os.Getenv("REDIS_ADDR")
    if addr == "" {
        host := os.Getenv("REDIS_HOST")
        port := os.Getenv("REDIS_PORT")
        if host != "" && port != "" {
            addr = host + ":" + port
        }
    }
    if addr == "" {
        addr = "localhost:6379"
    }

    var tlsConf *tls.Config
    if tlsEnv := os.Getenv("REDIS_TLS"); strings.EqualFold(tlsEnv, "true") || tlsEnv == "1" {
        tlsConf = &tls.Config{InsecureSkipVerify: true}
    }

    client := redis.NewClient(&redis.Options{
        Addr:      addr,
        Password:  os.Getenv("REDIS_PASSWORD"),
        DB:        envInt("REDIS_DB", 0),
        TLSConfig: tlsConf,
    })

    // Ping the server with a short timeout.  Return nil on failure.
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
