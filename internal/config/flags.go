package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// DefaultEnvFile is the dotenv file consulted when --env-file is not given.
const DefaultEnvFile = ".env"

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values bound to a command's flag set. Its fields are
// filled when cobra parses the command line.
type Flags struct {
	address        NetAddress
	requestTimeout time.Duration
	dsn            string
	jsonConfigPath string
	envFile        string
	defaultMatch   string
	sensitivity    string
	domainsURL     string
	adapterTimeout time.Duration
	syncInterval   time.Duration
}

// BindFlags registers the configuration flags on fs.
//
// Flags:
//
//	-a, --address                  HTTP server address in format [host]:[port]
//	    --request-timeout          inbound request timeout (e.g. "30s")
//	-d, --dsn                      database DSN
//	-c, --config                   JSON config file path
//	    --env-file                 dotenv file preloaded into the environment
//	    --default-match            default URI match type
//	-s, --sensitivity              duplicate sensitivity preset or threshold
//	    --domains-url              equivalent-domains service base URL
//	    --domains-timeout          equivalent-domains request timeout
//	    --sync-interval            equivalent-domains refresh period
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.address, "address", "a", "Net address host:port")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVarP(&f.dsn, "dsn", "d", "", "Database DSN (postgres:// URL or SQLite path)")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.envFile, "env-file", DefaultEnvFile, "Dotenv file to preload")
	fs.StringVar(&f.defaultMatch, "default-match", "", "Default URI match type")
	fs.StringVarP(&f.sensitivity, "sensitivity", "s", "", "Duplicate sensitivity (max, high, normal, low, min or a number)")
	fs.StringVar(&f.domainsURL, "domains-url", "", "Equivalent domains service URL")
	fs.DurationVar(&f.adapterTimeout, "domains-timeout", 0, "Equivalent domains request timeout")
	fs.DurationVar(&f.syncInterval, "sync-interval", 0, "Equivalent domains refresh interval")

	return f
}

func (f *Flags) dotEnvPath() string {
	if f == nil {
		return DefaultEnvFile
	}
	return f.envFile
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultMatch: f.defaultMatch,
			Sensitivity:  f.sensitivity,
		},
		Storage: Storage{
			DB: DB{DSN: f.dsn},
		},
		Server: Server{
			HTTPAddress:    f.address.String(),
			RequestTimeout: f.requestTimeout,
		},
		Adapter: Adapter{
			EquivalentDomainsURL: f.domainsURL,
			RequestTimeout:       f.adapterTimeout,
		},
		Workers: Workers{
			SyncInterval: f.syncInterval,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
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
		if net.ParseIP(host) == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
