package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx, sqlite3)
//	-c/-config json file path with configs
//	-log-level log level (debug, info, warn, error)
//	-not-found-policy GET policy for unknown ids (strict, legacy)
//	-password-hasher password hashing algorithm (bcrypt, argon2)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit requests per second
//	-skip-migrations do not apply migrations at startup
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-estate-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var logLevel, notFoundPolicy, passwordHasher string
	var requestTimeout time.Duration
	var rateLimit float64
	var skipMigrations bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&notFoundPolicy, "not-found-policy", "", "GET policy for unknown ids (strict, legacy)")
	fs.StringVar(&passwordHasher, "password-hasher", "", "Password hashing algorithm (bcrypt, argon2)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second")
	fs.BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply migrations at startup")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:       logLevel,
			NotFoundPolicy: notFoundPolicy,
			PasswordHasher: passwordHasher,
		},
		Storage: Storage{
			DB: DB{
				Driver:         databaseDriver,
				DSN:            databaseDSN,
				SkipMigrations: skipMigrations,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// address does not override other configuration sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
