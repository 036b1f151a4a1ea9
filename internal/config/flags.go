package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a vault server listen address in format [host]:[port]
//	-vault vault service address used by the client
//	-d database DSN
//	-db-driver database driver (sqlite3 | pgx)
//	-f ciphertext blob directory
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "30s")
//	-vault-timeout client request timeout (e.g., "5s")
//	-cipher-mode cipher mode for new encryptions (passphrase | sealed)
//	-max-file-size maximum selected file size in bytes
//	-max-upload-size maximum accepted upload size in bytes
//	-fallback-on-server-error also fall back on 5xx responses
//	-replay-interval fallback replay interval (e.g., "1m")
//	-log-file client log file
func ParseFlags() *StructuredConfig {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cfg, _ := parseFlags(fs, os.Args[1:])
	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var vaultAddress string
	var databaseDSN, databaseDriver string
	var fileStoragePath string
	var jsonConfigPath string
	var requestTimeout, vaultTimeout time.Duration
	var cipherMode string
	var maxFileSize, maxUploadSize int64
	var fallbackOnServerError bool
	var replayInterval time.Duration
	var logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&vaultAddress, "vault", "", "Vault service address")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&fileStoragePath, "f", "", "Ciphertext storage directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&vaultTimeout, "vault-timeout", 0, "Vault request timeout (e.g., 5s)")
	fs.StringVar(&cipherMode, "cipher-mode", "", "Cipher mode for new encryptions (passphrase, sealed)")
	fs.Int64Var(&maxFileSize, "max-file-size", 0, "Maximum selected file size in bytes")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Maximum accepted upload size in bytes")
	fs.BoolVar(&fallbackOnServerError, "fallback-on-server-error", false, "Fall back to local storage on 5xx responses")
	fs.DurationVar(&replayInterval, "replay-interval", 0, "Fallback replay interval (e.g., 1m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return &StructuredConfig{}, err
	}

	return &StructuredConfig{
		App: App{
			CipherMode:            cipherMode,
			MaxFileSize:           maxFileSize,
			FallbackOnServerError: fallbackOnServerError,
			LogFile:               logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
			Files: Files{
				BinaryDataDir: fileStoragePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress:    vaultAddress,
			RequestTimeout: vaultTimeout,
		},
		Workers: Workers{
			ReplayInterval: replayInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
