// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a emulator listen address in format [host]:[port]
//	-u cloud API base URL
//	-t cloud access token
//	-d SQLite cache path
//	-c/-config json file path with configs
//	-lang phrase language (en, ru)
//	-policy malformed device policy (fallback, skip)
//	-request-timeout outbound request timeout (e.g., "15s")
//	-refresh-interval pending list refresh interval (e.g., "5m")
//	-seed emulator seed file
//	-reject comma separated request ids the emulator rejects
//	-log-file client log file
//	-log-level zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("share-inbox", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var baseURL, token, dsn, jsonConfigPath string
	var language, policy, seedFile, reject string
	var logFile, logLevel string
	var requestTimeout, refreshInterval time.Duration

	fs.Var(&serverAddress, "a", "Emulator net address host:port")
	fs.StringVar(&baseURL, "u", "", "Cloud API base URL")
	fs.StringVar(&token, "t", "", "Cloud access token")
	fs.StringVar(&dsn, "d", "", "SQLite cache path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&language, "lang", "", "Phrase language (en, ru)")
	fs.StringVar(&policy, "policy", "", "Malformed device policy (fallback, skip)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Refresh interval (e.g., 5m)")
	fs.StringVar(&seedFile, "seed", "", "Emulator seed file")
	fs.StringVar(&reject, "reject", "", "Request ids rejected by the emulator")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var rejectIDs []string
	for _, id := range strings.Split(reject, ",") {
		if id = strings.TrimSpace(id); id != "" {
			rejectIDs = append(rejectIDs, id)
		}
	}

	return &StructuredConfig{
		App: App{
			Token:                 token,
			Language:              language,
			MalformedDevicePolicy: policy,
			LogFile:               logFile,
			LogLevel:              logLevel,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Server: Server{
			HTTPAddress:      serverAddress.String(),
			RequestTimeout:   requestTimeout,
			SeedFile:         seedFile,
			RejectRequestIDs: rejectIDs,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
