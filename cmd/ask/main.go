package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"bookchat/internal/assistant"
	"bookchat/internal/config"
	"bookchat/internal/platform/bookservice"
)

func main() {
	config.LoadEnvFiles()
	cfg := config.Load()

	baseURL := flag.String("url", cfg.BookchatURL, "Base URL of the search/chat service")
	topK := flag.Int("top-k", cfg.SearchTopK, "Number of results to request per search")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := bookservice.NewClient(*baseURL, bookservice.Options{
		Dataset: bookservice.Dataset{
			NPZ:       cfg.SearchNPZ,
			Meta:      cfg.SearchMeta,
			SourceCSV: cfg.SearchSourceCSV,
			Randomize: cfg.SearchRandomize,
		},
		Timeout: cfg.UpstreamTimeout,
	})
	dispatcher := assistant.NewDispatcher(client, client, assistant.Options{TopK: *topK})

	if err := run(ctx, dispatcher, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("ask: %v", err)
	}
}

func run(ctx context.Context, d *assistant.Dispatcher, in io.Reader, out io.Writer) error {
	term := newTerminal(out)
	session := assistant.NewSession()
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "도서 검색이나 질문을 입력하세요. (:quit 종료)")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == ":quit" {
			return nil
		}
		if term.command(line) {
			continue
		}
		res := d.Ask(ctx, session, line, term)
		if res.Outcome == assistant.OutcomeCanceled {
			return nil
		}
	}
	return scanner.Err()
}
