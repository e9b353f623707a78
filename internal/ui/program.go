package ui

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Program owns the State. Messages are applied one at a time on the Run
// goroutine and commands run on their own goroutines.
type Program struct {
	env  Env
	view func(State)
	log  *zap.Logger

	msgs chan Msg
	done chan struct{}
	wg   sync.WaitGroup
}

// NewProgram returns a program that calls view after every update.
func NewProgram(env Env, view func(State), log *zap.Logger) *Program {
	return &Program{
		env:  env,
		view: view,
		log:  log.With(zap.String("component", "ui")),
		msgs: make(chan Msg, 16),
		done: make(chan struct{}),
	}
}

// Send queues msg. It returns without effect once the program has stopped.
func (p *Program) Send(msg Msg) {
	select {
	case p.msgs <- msg:
	case <-p.done:
	}
}

// Run processes messages until Quit or ctx is done, then waits for
// running commands to return. It returns the final state.
func (p *Program) Run(ctx context.Context) State {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		close(p.done)
		cancel()
		p.wg.Wait()
	}()

	state, cmd := Update(p.env, State{}, Init{})
	p.view(state)
	p.exec(ctx, cmd)

	for {
		select {
		case <-ctx.Done():
			return state
		case msg := <-p.msgs:
			if _, ok := msg.(Quit); ok {
				return state
			}
			p.log.Debug("Update", zap.String("msg", msgName(msg)))
			state, cmd = Update(p.env, state, msg)
			p.view(state)
			p.exec(ctx, cmd)
		}
	}
}

func (p *Program) exec(ctx context.Context, cmd Cmd) {
	if cmd == nil {
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if msg := cmd(ctx); msg != nil {
			p.Send(msg)
		}
	}()
}

func msgName(msg Msg) string {
	switch msg.(type) {
	case SearchSubmitted:
		return "search"
	case LoadMore:
		return "load_more"
	case MoviesLoaded:
		return "movies_loaded"
	case OpenMovie:
		return "open_movie"
	case DetailLoaded:
		return "detail_loaded"
	case CloseDetail:
		return "close_detail"
	case SetRating:
		return "set_rating"
	case SetComment:
		return "set_comment"
	case Submit:
		return "submit"
	case SubmitDone:
		return "submit_done"
	case DismissNotice:
		return "dismiss_notice"
	default:
		return "unknown"
	}
}
