package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/zombor/receipt-processor/internal/receipt"
	"github.com/zombor/receipt-processor/internal/scoring"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("receipt-processor")
	var (
		port            = fs.IntLong("port", 8080, "HTTP server port")
		dbPath          = fs.StringLong("db", "", "Scratch bbolt file path (in-memory store when empty)")
		logLevel        = fs.StringLong("log-level", "info", "Log level: debug, info, warn or error")
		shutdownTimeout = fs.DurationLong("shutdown-timeout", 10*time.Second, "Time allowed for in-flight requests on shutdown")
		showVersion     = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("RECEIPT_PROCESSOR"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Check version flag after parsing
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid log level %q\n", *logLevel)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*port, *dbPath, *shutdownTimeout); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func run(port int, dbPath string, shutdownTimeout time.Duration) error {
	// Initialize database
	var db receipt.DB
	if dbPath == "" {
		slog.Info("Initializing in-memory store...")
		db = receipt.NewMemoryDB()
	} else {
		slog.Info("Initializing database...", "path", dbPath)
		boltDB, err := receipt.NewBoltDB(dbPath)
		if err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
		db = boltDB
	}
	defer db.Close()

	receiptService := receipt.NewService(db, scoring.NewEngine())
	server := receipt.NewServer(receiptService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", port)
	slog.Info("Server started", "address", fmt.Sprintf("http://localhost%s", addr), "version", version)

	return server.Start(ctx, addr, shutdownTimeout)
}
