// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a sink server listen address in format [host]:[port]
//	-d database DSN (SQLite file on the client, PostgreSQL URI on the server)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-sink sink adapter kind: http or workbook
//	-sink-address sink server base URL
//	-sink-timeout sink request timeout
//	-workbook workbook sink file path
//	-client-id client identifier
//	-client-secret client secret
//	-sync-interval background sync interval; 0 syncs once
//	-log-level log level
//	-log-path client log file
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var sinkKind string
	var sinkAddress string
	var sinkTimeout time.Duration
	var workbookPath string
	var clientID string
	var clientSecret string
	var syncInterval time.Duration
	var logLevel string
	var logPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&sinkKind, "sink", "", "Sink adapter: http or workbook")
	flag.StringVar(&sinkAddress, "sink-address", "", "Sink server base URL")
	flag.DurationVar(&sinkTimeout, "sink-timeout", 0, "Sink request timeout (e.g., 30s)")
	flag.StringVar(&workbookPath, "workbook", "", "Workbook sink file path")
	flag.StringVar(&clientID, "client-id", "", "Client identifier")
	flag.StringVar(&clientSecret, "client-secret", "", "Client secret")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (0 syncs once)")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.StringVar(&logPath, "log-path", "", "Client log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
			LogPath:       logPath,
		},
		Identity: Identity{
			ClientID:     clientID,
			ClientSecret: clientSecret,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Workbook: Workbook{
				Path: workbookPath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Kind:           sinkKind,
			HTTPAddress:    sinkAddress,
			RequestTimeout: sinkTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
