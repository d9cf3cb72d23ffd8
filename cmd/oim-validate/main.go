// Package main implements oim-validate, which checks an OpenIndexMaps
// GeoJSON document against a versioned JSON Schema and reports every
// violation with its path.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/srappel/oimkit/errors"
	"github.com/srappel/oimkit/schema"
)

const (
	// Version is the build version
	Version = "0.1.0"
	appName = "oim-validate"
)

// Exit codes: 0 valid, 1 schema violations, 2 operational error.
const (
	exitValid       = 0
	exitViolations  = 1
	exitOperational = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	docPath := flag.String("doc", "", "GeoJSON document to validate")
	schemaPath := flag.String("schema", "", "JSON Schema to validate against")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "text", "Log format: json, text")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return exitValid
	}

	slog.SetDefault(setupLogger(*logLevel, *logFormat))

	if *docPath == "" || *schemaPath == "" {
		slog.Error("Both -doc and -schema are required")
		flag.Usage()
		return exitOperational
	}

	report, err := schema.ValidateFile(*docPath, *schemaPath)
	if err != nil {
		slog.Error("Validation could not run", "error", err, "class", errors.Classify(err).String())
		return exitOperational
	}

	if report.Valid() {
		slog.Info("Document conforms to schema", "doc", *docPath, "schema", *schemaPath)
		return exitValid
	}

	for _, v := range report {
		fmt.Printf("%s: %s\n", v.Path, v.Message)
	}
	slog.Error("Document does not conform", "violations", len(report))
	return exitViolations
}

func setupLogger(level, format string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler).With("service", appName, "version", Version)
}
