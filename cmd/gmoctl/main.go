// gmoctl is a command line front-end for the GMO Coin public API client.
//
// Usage:
//
//	gmoctl trades -symbol BTC [-page 1] [-count 100] [-pages 1]
//	gmoctl ticker [-symbol BTC]
//	gmoctl orderbooks -symbol BTC
//	gmoctl status
//
// The library core performs one request per call with no retry or pacing;
// gmoctl, as the caller, owns those policies: multi-page exports are paced
// with a token-bucket limiter and transient transport failures are retried
// with exponential backoff.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/serinuntius/gmo-coin-go/gmocoin"
	"github.com/serinuntius/gmo-coin-go/gmocoin/public"
	"github.com/serinuntius/gmo-coin-go/internal/config"
	"github.com/serinuntius/gmo-coin-go/internal/logger"
)

// Exit codes following standard conventions.
const (
	ExitSuccess     = 0
	ExitUsageError  = 1
	ExitConfigError = 2
	ExitTransport   = 3
	ExitDecode      = 4
	ExitInterrupt   = 130
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(ExitUsageError)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	configPath := os.Getenv("GMO_CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	logManager, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(ExitConfigError)
	}
	defer logManager.Close()

	command := os.Args[1]
	args := os.Args[2:]
	log := logManager.CommandLogger(command)
	client := gmocoin.NewClient()

	switch command {
	case "trades":
		err = runTrades(ctx, client, cfg, log, args)
	case "ticker":
		err = runTicker(ctx, client, log, args)
	case "orderbooks":
		err = runOrderbooks(ctx, client, log, args)
	case "status":
		err = runStatus(ctx, client, log)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(ExitUsageError)
	}

	if err != nil {
		log.Error("command failed", "error", err)
		os.Exit(exitCode(ctx, err))
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `gmoctl - GMO Coin public API client

Commands:
  trades      fetch trade history (-symbol, -page, -count, -pages)
  ticker      fetch the 24h ticker (-symbol, omit for all symbols)
  orderbooks  fetch the order book snapshot (-symbol)
  status      fetch the exchange status
  help        show this message

Environment:
  GMO_CONFIG_PATH  path to a JSON configuration file
`)
}

func exitCode(ctx context.Context, err error) int {
	switch {
	case ctx.Err() != nil:
		return ExitInterrupt
	case gmocoin.IsDecode(err):
		return ExitDecode
	case gmocoin.IsTransport(err), gmocoin.IsUnknown(err):
		return ExitTransport
	default:
		return ExitUsageError
	}
}

// runTrades fetches one or more pages of trade history and prints each
// execution as a JSON line. Pages beyond the first are paced by the limiter;
// transient transport failures are retried, decode failures are not.
func runTrades(ctx context.Context, client gmocoin.HTTPClient, cfg *config.Config, log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("trades", flag.ExitOnError)
	symbol := fs.String("symbol", "BTC", "trading symbol")
	page := fs.Int("page", 1, "first page to fetch")
	count := fs.Int("count", cfg.Export.PageSize, "executions per page")
	pages := fs.Int("pages", 1, "number of pages to fetch")
	fs.Parse(args)

	sym := gmocoin.Symbol(*symbol)
	if err := sym.Validate(); err != nil {
		return err
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.Export.RequestsPerSecond), 1)
	encoder := json.NewEncoder(os.Stdout)

	for p := *page; p < *page+*pages; p++ {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		resp, err := fetchTradesPage(ctx, client, cfg.Export, sym, p, *count)
		if err != nil {
			return err
		}

		log.Info("fetched trade history page",
			"symbol", sym.String(),
			"page", resp.Pagination().CurrentPage,
			"trades", len(resp.Trades()),
			"http_status", resp.HTTPStatusCode)

		for _, trade := range resp.Trades() {
			if err := encoder.Encode(trade); err != nil {
				return err
			}
		}

		// A short page means the history is exhausted.
		if len(resp.Trades()) < *count {
			break
		}
	}

	return nil
}

// fetchTradesPage wraps a single page fetch in the caller-side retry policy.
// Decode failures and the opaque test-double error are permanent; transport
// failures back off and retry.
func fetchTradesPage(ctx context.Context, client gmocoin.HTTPClient, cfg config.ExportConfig, symbol gmocoin.Symbol, page, count int) (*public.TradesResponse, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = cfg.InitialRetryDelay()
	policy.MaxInterval = cfg.MaxRetryDelay()
	policy.MaxElapsedTime = 0

	var resp *public.TradesResponse
	operation := func() error {
		var err error
		resp, err = public.GetTradesWithOptions(ctx, client, symbol, page, count)
		if err != nil && !gmocoin.IsTransport(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(cfg.MaxAttempts-1)), ctx))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func runTicker(ctx context.Context, client gmocoin.HTTPClient, log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("ticker", flag.ExitOnError)
	symbol := fs.String("symbol", "", "trading symbol, omit for all symbols")
	fs.Parse(args)

	var resp *public.TickerResponse
	var err error
	if *symbol == "" {
		resp, err = public.GetTickers(ctx, client)
	} else {
		sym := gmocoin.Symbol(*symbol)
		if err := sym.Validate(); err != nil {
			return err
		}
		resp, err = public.GetTicker(ctx, client, sym)
	}
	if err != nil {
		return err
	}

	log.Info("fetched ticker", "entries", len(resp.Entries()), "http_status", resp.HTTPStatusCode)
	return printJSON(resp.Entries())
}

func runOrderbooks(ctx context.Context, client gmocoin.HTTPClient, log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("orderbooks", flag.ExitOnError)
	symbol := fs.String("symbol", "BTC", "trading symbol")
	fs.Parse(args)

	sym := gmocoin.Symbol(*symbol)
	if err := sym.Validate(); err != nil {
		return err
	}

	resp, err := public.GetOrderbooks(ctx, client, sym)
	if err != nil {
		return err
	}

	log.Info("fetched order book",
		"symbol", resp.Body.Data.Symbol,
		"asks", len(resp.Asks()),
		"bids", len(resp.Bids()),
		"http_status", resp.HTTPStatusCode)
	return printJSON(resp.Body.Data)
}

func runStatus(ctx context.Context, client gmocoin.HTTPClient, log *slog.Logger) error {
	resp, err := public.GetStatus(ctx, client)
	if err != nil {
		return err
	}

	log.Info("fetched exchange status",
		"exchange_status", resp.ExchangeStatus(),
		"http_status", resp.HTTPStatusCode)
	return printJSON(resp.Body.Data)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
