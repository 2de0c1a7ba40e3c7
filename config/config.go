package config

import (
	"flag"
	"os"
	"strconv"
	"sync"
)

const (
	defaultServerAddr  = ":8080"
	defaultDatabaseDSN = ""
	defaultStorage     = StoragePostgres
	defaultSerialPort  = "/dev/ttyUSB0"
	defaultBaudRate    = 9600
	defaultTokenKey    = "f53ac685bbceebd75043e6be2e06ee07"
	defaultLogLevel    = "debug"
)

// storage variants
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	ServerAddr  string
	DatabaseDSN string
	Storage     string
	SerialPort  string
	BaudRate    int
	TokenKey    string
	LogLevel    string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddr, "brew station server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "brew station database DSN")
		flag.StringVar(&cfg.Storage, "s", defaultStorage, "order storage variant (postgres or memory)")
		flag.StringVar(&cfg.SerialPort, "p", defaultSerialPort, "serial port of the dispensing controller")
		flag.IntVar(&cfg.BaudRate, "b", defaultBaudRate, "serial baud rate")
		flag.StringVar(&cfg.TokenKey, "k", defaultTokenKey, "auth token signing key (hex)")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if storageEnv := os.Getenv("STORAGE"); storageEnv != "" {
			cfg.Storage = storageEnv
		}
		if serialPortEnv := os.Getenv("SERIAL_PORT"); serialPortEnv != "" {
			cfg.SerialPort = serialPortEnv
		}
		if baudRateEnv := os.Getenv("BAUD_RATE"); baudRateEnv != "" {
			if baudRate, err := strconv.Atoi(baudRateEnv); err == nil {
				cfg.BaudRate = baudRate
			}
		}
		if tokenKeyEnv := os.Getenv("AUTH_TOKEN_KEY"); tokenKeyEnv != "" {
			cfg.TokenKey = tokenKeyEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}

		singleton = &cfg
	})

	return singleton, nil
}
