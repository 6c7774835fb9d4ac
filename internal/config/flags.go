// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is a host:port flag value. The host may be empty to listen on
// every interface, "localhost", or an IP literal. IPv6 hosts are written in
// brackets, as in [::1]:8080.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the process command line into a config layer.
//
//	-a               local API address, [host]:port
//	-d               SQLite database path for the history slot
//	-f               JSON history file path
//	-c, -config      JSON config file path
//	-share-url       share endpoint URL
//	-share-timeout   share upload timeout, e.g. 10s
//	-request-timeout local API request timeout, e.g. 30s
//	-export-dir      directory for downloaded symbols
//	-app-version     application version
func ParseFlags() *StructuredConfig {
	cfg := bindFlags(flag.CommandLine)
	flag.Parse()
	return cfg()
}

// bindFlags registers the config flags on fs and returns a func that builds
// the layer once fs has been parsed.
func bindFlags(fs *flag.FlagSet) func() *StructuredConfig {
	var (
		addr NetAddress
		cfg  StructuredConfig
	)

	fs.Var(&addr, "a", "local API address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "SQLite database path")
	fs.StringVar(&cfg.Storage.Files.HistoryFile, "f", "", "JSON history file path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")
	fs.StringVar(&cfg.Adapter.ShareURL, "share-url", "", "share endpoint URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "share-timeout", 0, "share upload timeout")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "local API request timeout")
	fs.StringVar(&cfg.Export.Dir, "export-dir", "", "directory for downloaded symbols")
	fs.StringVar(&cfg.App.Version, "app-version", "", "application version")

	return func() *StructuredConfig {
		cfg.Server.HTTPAddress = addr.String()
		return &cfg
	}
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, portText, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	port, err := strconv.Atoi(portText)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in 1..65535", ErrInvalidAddress, portText)
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is neither localhost nor an IP", ErrInvalidAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}
