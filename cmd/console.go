package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"movie-review/internal/ui"

	"go.uber.org/zap"
)

const consoleHelp = `Commands:
  search <term>   search movies (empty term shows popular movies)
  more            load the next page
  open <n>        show movie n
  rate <1-10>     set your rating
  comment <text>  set your review
  submit          submit the review
  close           back to the list
  quit            exit`

var errUnknownCommand = errors.New("unknown command")

// ParseCommand turns one input line into a UI message. It returns nil, nil
// for a blank line.
func ParseCommand(line string) (ui.Msg, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "search":
		return ui.SearchSubmitted{Term: arg}, nil
	case "more":
		return ui.LoadMore{}, nil
	case "open":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("open expects a movie number, got %q", arg)
		}
		return ui.OpenMovie{Index: n - 1}, nil
	case "rate":
		n, err := strconv.Atoi(arg)
		if err != nil || n < ui.MinRating || n > ui.MaxRating {
			return nil, fmt.Errorf("rate expects %d-%d, got %q", ui.MinRating, ui.MaxRating, arg)
		}
		return ui.SetRating{Rating: n}, nil
	case "comment":
		return ui.SetComment{Text: arg}, nil
	case "submit":
		return ui.Submit{}, nil
	case "close", "back":
		return ui.CloseDetail{}, nil
	case "quit", "exit":
		return ui.Quit{}, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownCommand, name)
	}
}

// Console runs the front-end, reading commands from in and rendering to out
// until quit, end of input or ctx is done.
func Console(ctx context.Context, env ui.Env, in io.Reader, out io.Writer, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := &syncWriter{w: out}
	program := ui.NewProgram(env, func(s ui.State) {
		w.printf("\n%s> ", ui.Render(s))
	}, logger)

	readErr := make(chan error, 1)
	go func() {
		defer program.Send(ui.Quit{})

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			msg, err := ParseCommand(scanner.Text())
			switch {
			case err != nil:
				w.printf("%v\n%s\n> ", err, consoleHelp)
			case msg != nil:
				program.Send(msg)
			}
			if _, ok := msg.(ui.Quit); ok {
				break
			}
		}
		readErr <- scanner.Err()
	}()

	program.Run(ctx)

	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	default:
	}
	return nil
}

// syncWriter serialises output from the render loop and the input reader.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, format, args...)
}
