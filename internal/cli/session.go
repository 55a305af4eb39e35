package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/command"
)

// Session is one interactive duel on a terminal.
type Session struct {
	in         io.Reader
	out        io.Writer
	battle     *combat.Battle
	dispatcher *command.Dispatcher
	renderer   *Renderer
	logger     *zap.Logger
}

// NewSession creates a Session reading commands from in and writing to out.
//
// Precondition: all arguments must be non-nil.
func NewSession(in io.Reader, out io.Writer, battle *combat.Battle, dispatcher *command.Dispatcher, renderer *Renderer, logger *zap.Logger) *Session {
	return &Session{
		in:         in,
		out:        out,
		battle:     battle,
		dispatcher: dispatcher,
		renderer:   renderer,
		logger:     logger,
	}
}

// Run reads and dispatches commands until the battle ends, the player quits
// or the input is exhausted. End of input counts as fleeing. Cancelling ctx
// interrupts the session even while it waits for input.
//
// Postcondition: Returns the battle result, or an error from the input,
// the output or ctx.
func (s *Session) Run(ctx context.Context) (combat.Result, error) {
	if _, err := io.WriteString(s.out, s.renderer.Banner()); err != nil {
		return combat.ResultNone, fmt.Errorf("writing banner: %w", err)
	}

	stop := make(chan struct{})
	defer close(stop)
	lines, readErr := readLines(s.in, stop)

	for {
		if err := ctx.Err(); err != nil {
			return s.interrupted(err)
		}
		if _, err := io.WriteString(s.out, s.renderer.Prompt()); err != nil {
			return s.battle.Result(), fmt.Errorf("writing prompt: %w", err)
		}

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return s.interrupted(ctx.Err())
		case line, ok = <-lines:
		}
		if !ok {
			break
		}

		reply, err := s.dispatcher.Dispatch(line)
		if err != nil {
			s.logger.Error("dispatch failed", zap.Error(err))
			return s.battle.Result(), fmt.Errorf("dispatching %q: %w", line, err)
		}
		if _, err := io.WriteString(s.out, s.renderer.Reply(reply)); err != nil {
			return s.battle.Result(), fmt.Errorf("writing reply: %w", err)
		}
		if reply.Done {
			return s.finish()
		}
	}
	if err := <-readErr; err != nil {
		return s.battle.Result(), fmt.Errorf("reading input: %w", err)
	}

	s.logger.Info("input closed, fleeing")
	if !s.battle.Over() {
		text, err := s.battle.EndBattle()
		if err == nil {
			_, _ = io.WriteString(s.out, "\n"+s.renderer.Reply(command.Reply{Handler: command.HandlerQuit, Text: text}))
		}
	}
	return s.finish()
}

// readLines scans in on its own goroutine. lines is closed at end of input,
// after the scan error (possibly nil) has been sent on errc. Once stop is
// closed no further lines are delivered; a goroutine blocked in Read stays
// blocked until in returns.
func readLines(in io.Reader, stop <-chan struct{}) (lines <-chan string, errc <-chan error) {
	out := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case out <- scanner.Text():
			case <-stop:
				errs <- nil
				return
			}
		}
		errs <- scanner.Err()
	}()
	return out, errs
}

func (s *Session) interrupted(cause error) (combat.Result, error) {
	s.logger.Info("session interrupted", zap.Error(cause))
	res := s.battle.Result()
	_, _ = io.WriteString(s.out, "\n"+s.renderer.Result(res))
	return res, cause
}

func (s *Session) finish() (combat.Result, error) {
	res := s.battle.Result()
	if _, err := io.WriteString(s.out, s.renderer.Result(res)); err != nil {
		return res, fmt.Errorf("writing result: %w", err)
	}
	return res, nil
}
