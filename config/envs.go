package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Run modes.
const (
	ModeCLI    = "cli"    // Explore a maze file in the terminal.
	ModeServer = "server" // Serve the HTTP API.
	ModeToken  = "token"  // Print an operator token and exit.
)

// Renderers for CLI mode.
const (
	RendererText = "text" // Frames printed to stdout and the log file.
	RendererTUI  = "tui"  // Full screen terminal view.
)

// Config holds the application's configuration values.
type Config struct {
	Mode            string // One of ModeCLI, ModeServer, ModeToken
	MazeFile        string // Path of the maze source file
	LogFile         string // Path of the frame log, truncated on every run
	TickDelayMS     int    // Pause between exploration ticks in milliseconds
	MaxTicks        int    // Tick budget for a run, 0 for unlimited
	StartX          int    // Start override column
	StartY          int    // Start override row
	HasStart        bool   // Whether START_X and START_Y were both set
	Interactive     bool   // Ask for a start position on the console
	Renderer        string // One of RendererText, RendererTUI
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	DBHost          string // Hostname or IP address for the database
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
	RedisAddr       string // Address of the redis server holding replay frames
	RedisPassword   string // Password for redis
	FrameTTLSeconds int    // Lifetime of a run's replay frames
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	_, hasX := os.LookupEnv("START_X")
	_, hasY := os.LookupEnv("START_Y")

	return Config{
		Mode:            strings.ToLower(getEnvWithDefault("MODE", ModeCLI)),
		MazeFile:        getEnvWithDefault("MAZE_FILE", "Maze.txt"),
		LogFile:         getEnvWithDefault("MAZE_LOG_FILE", "Log.txt"),
		TickDelayMS:     getEnvAsIntWithDefault("TICK_DELAY_MS", 500),
		MaxTicks:        getEnvAsIntWithDefault("MAX_TICKS", 0),
		StartX:          getEnvAsIntWithDefault("START_X", 0),
		StartY:          getEnvAsIntWithDefault("START_Y", 0),
		HasStart:        hasX && hasY,
		Interactive:     getEnvAsBoolWithDefault("INTERACTIVE", false),
		Renderer:        strings.ToLower(getEnvWithDefault("RENDERER", RendererText)),
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		DBHost:          getEnvWithDefault("DB_HOST", ""),
		DBPort:          getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:          getEnvWithDefault("DB_USER", ""),
		DBPassword:      getEnvWithDefault("DB_PASS", ""),
		DBName:          getEnvWithDefault("DB_NAME", "maze_walker"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnvWithDefault("REDIS_PASS", ""),
		FrameTTLSeconds: getEnvAsIntWithDefault("FRAME_TTL_SECONDS", 3600),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:       getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "maze-walker"),
	}
}

// ValidateServer reports the settings server mode cannot run without.
func (c Config) ValidateServer() error {
	var missing []string
	if c.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.DBUser == "" {
		missing = append(missing, "DB_USER")
	}
	if c.DBPassword == "" {
		missing = append(missing, "DB_PASS")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return errors.New("environment variables not set: " + strings.Join(missing, ", "))
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to the default when unset
// and logging a fatal error when it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsBoolWithDefault retrieves a boolean environment variable, falling back to the default when unset or invalid.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[APP] [INFO] Environment variable %s is not a boolean, using %t: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
