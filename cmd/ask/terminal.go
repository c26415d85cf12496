package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookchat/internal/book"
)

// terminal renders the conversation as plain text lines.
type terminal struct {
	out     io.Writer
	records []book.Record
}

func newTerminal(out io.Writer) *terminal {
	return &terminal{out: out}
}

func (t *terminal) UserMessage(text string) {
	fmt.Fprintf(t.out, "나> %s\n", text)
}

func (t *terminal) AssistantMessage(text string) {
	fmt.Fprintf(t.out, "봇> %s\n", text)
}

func (t *terminal) StartLoading(text string) {
	fmt.Fprintf(t.out, "... %s\n", text)
}

func (t *terminal) StopLoading() {}

func (t *terminal) Gallery(records []book.Record) {
	t.records = records
	view := book.Gallery(records)
	for i, c := range view.Cards {
		fmt.Fprintf(t.out, "  [%d] %s / %s (%s)\n", i+1, c.DisplayTitle, c.DisplayAuthor, c.StatusLabel)
	}
	if view.MoreLabel != "" {
		fmt.Fprintf(t.out, "  %s  (:list)\n", view.MoreLabel)
	}
}

// command handles ":list" and ":detail N". It reports whether line was a command.
func (t *terminal) command(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], ":") {
		return false
	}

	switch fields[0] {
	case ":list":
		if len(t.records) == 0 {
			fmt.Fprintln(t.out, "표시할 검색 결과가 없습니다.")
			return true
		}
		view := book.List(t.records)
		fmt.Fprintln(t.out, view.Heading)
		for i, c := range view.Cards {
			fmt.Fprintf(t.out, "  [%d] %s / %s (%s)\n      %s\n", i+1, c.DisplayTitle, c.DisplayAuthor, c.StatusLabel, c.DisplayDescription)
		}
	case ":detail":
		n := 0
		if len(fields) > 1 {
			n, _ = strconv.Atoi(fields[1])
		}
		if n < 1 || n > len(t.records) {
			fmt.Fprintf(t.out, "사용법: :detail 1-%d\n", len(t.records))
			return true
		}
		fmt.Fprintln(t.out, book.Details(t.records[n-1]))
	default:
		fmt.Fprintln(t.out, "명령: :list, :detail N, :quit")
	}
	return true
}
