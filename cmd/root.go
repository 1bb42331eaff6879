package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vecha2468/stockquote/feed"
	"github.com/vecha2468/stockquote/logging"
	"github.com/vecha2468/stockquote/pkg/config"
	"github.com/vecha2468/stockquote/quote"
	"go.uber.org/zap"
)

var RootCmd = &cobra.Command{
	Use:   "stockquote",
	Short: "live stock quote viewer",
	Long: `Reads stock symbols from standard input, one per line, and prints the
current price with day-over-day change for each. An empty line exits.`,
	RunE: runPrompt,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	viper.SetDefault(logging.LOG_LEVEL, "debug")
	viper.AutomaticEnv()
}

// newFetcher builds the configured backend wrapped in the TTL cache.
func newFetcher(cfg config.Config) (*quote.Fetcher, feed.QuoteSource, error) {
	source, err := feed.NewQuoteSource(cfg)
	if err != nil {
		return nil, nil, err
	}
	cached := feed.NewCachedQuoteSource(source, time.Duration(cfg.CacheTTLSec)*time.Second)
	return quote.NewFetcher(cached), source, nil
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	logger := logging.SetupLogger(cfg.LogFile)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	fetcher, _, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	for {
		fmt.Fprintln(out, "Enter a stock symbol:")
		if !in.Scan() {
			break
		}
		symbol := in.Text()
		if symbol == "" {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTPTimeoutSec)*time.Second)
		q, err := fetcher.Fetch(ctx, symbol)
		cancel()
		if err != nil {
			if quote.IsQuoteError(err) {
				fmt.Fprintf(out, "Error: %v\n\n", err)
			} else {
				fmt.Fprintf(out, "Unexpected error: %v\n\n", err)
			}
			continue
		}
		fmt.Fprintln(out, quote.Render(q, time.Now()))
	}
	fmt.Fprintln(out, "Goodbye!")
	return nil
}
