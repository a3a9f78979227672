package web

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// sender delivers one server message to the client. *Conn implements it.
type sender interface {
	Send(msg any) error
}

// player runs one browser session. The loop goroutine owns the session;
// the read goroutine only feeds the input channel.
type player struct {
	id       string
	out      sender
	grid     snake.Grid
	interval time.Duration
	rng      *rand.Rand
	session  *snake.Session
	logger   *log.Logger
}

func newPlayer(id string, out sender, grid snake.Grid, interval time.Duration, seed int64, logger *log.Logger) (*player, error) {
	p := &player{
		id:       id,
		out:      out,
		grid:     grid,
		interval: interval,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   logger,
	}
	session, err := snake.NewSession(grid, p.rng.Int63())
	if err != nil {
		return nil, err
	}
	p.session = session
	return p, nil
}

// run sends the welcome and the starting board, then ticks at a fixed
// interval until in is closed or ctx is done. Ticking stops on game over and
// resumes on restart.
func (p *player) run(ctx context.Context, in <-chan ClientMessage) error {
	welcome := WelcomeMsg{
		Type:   MsgWelcome,
		ID:     p.id,
		Width:  p.grid.Width,
		Height: p.grid.Height,
		CellPx: p.grid.CellSize,
	}
	if err := p.out.Send(welcome); err != nil {
		return err
	}
	if err := p.out.Send(newStateMsg(p.session.Snapshot(), "")); err != nil {
		return err
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case msg, ok := <-in:
			if !ok {
				return nil
			}
			if err := p.handle(msg, ticker); err != nil {
				return err
			}

		case <-ticker.C:
			// select picks randomly among ready cases, so input that
			// arrived before this tick is applied here.
			closed, err := p.drain(in, ticker)
			if closed || err != nil {
				return err
			}
			if !p.session.Running() {
				continue
			}
			if err := p.tick(ticker); err != nil {
				return err
			}
		}
	}
}

// drain applies every queued message without blocking. It reports whether
// in was closed.
func (p *player) drain(in <-chan ClientMessage, ticker *time.Ticker) (bool, error) {
	for {
		select {
		case msg, ok := <-in:
			if !ok {
				return true, nil
			}
			if err := p.handle(msg, ticker); err != nil {
				return false, err
			}
		default:
			return false, nil
		}
	}
}

// handle applies one client message between ticks.
func (p *player) handle(msg ClientMessage, ticker *time.Ticker) error {
	if msg.Type == MsgRestart {
		if p.session.Running() {
			return nil
		}
		session, err := snake.NewSession(p.grid, p.rng.Int63())
		if err != nil {
			return err
		}
		p.session = session
		ticker.Reset(p.interval)
		p.logger.Debug("restart", "id", p.id)
		return p.out.Send(newStateMsg(p.session.Snapshot(), ""))
	}

	d, ok := msg.direction()
	if !ok {
		p.logger.Debug("ignored message", "id", p.id, "type", msg.Type)
		return nil
	}
	p.session.SetDirection(d)
	return nil
}

// tick advances the session and publishes the result.
func (p *player) tick(ticker *time.Ticker) error {
	res := p.session.Tick()
	if err := p.out.Send(newStateMsg(p.session.Snapshot(), res.Outcome.String())); err != nil {
		return err
	}
	if res.Running {
		return nil
	}

	ticker.Stop()
	p.logger.Debug("game over", "id", p.id, "score", res.Score)
	return p.out.Send(OverMsg{Type: MsgOver, Score: res.Score})
}
