package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The first iteration of this service hard-coded
// the port, the allowed browser origin and the database credentials; they
// are externalized here so the same binary runs in dev, test and prod.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	DBUser     string // database username
	DBPass     string // database password (optional)
	DBHost     string // database host address
	DBPort     string // database port number
	DBName     string // database name
	CORSOrigin string // single browser origin allowed to call the API
	ImageDir   string // local directory served read-only under /img
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:        must("APP_ENV"),                                // environment (dev/test/prod)
		Port:       must("APP_PORT"),                               // port to bind the HTTP server
		DBUser:     must("DB_USER"),                                // database user
		DBPass:     os.Getenv("DB_PASS"),                           // database password (empty allowed)
		DBHost:     must("DB_HOST"),                                // database host
		DBPort:     must("DB_PORT"),                                // database port
		DBName:     must("DB_NAME"),                                // database name
		CORSOrigin: getenv("CORS_ORIGIN", "http://localhost:8080"), // frontend origin
		ImageDir:   getenv("IMAGE_DIR", "assets/img"),              // spot image directory
	}
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
