package chat

import (
	"fmt"
	"io"
	"sync"

	"github.com/jpicht/vsel/lib/vsel"
	"go.uber.org/zap"
)

// Usage is replied when a command cannot be parsed
const Usage = `usage: encode "text" "secret" [full] | decode "text"`

// Replier delivers a reply to whoever sent the command
type Replier interface {
	Reply(text string) error
}

// Dispatcher routes chat commands to the codec
type Dispatcher struct {
	log  *zap.Logger
	lock sync.Mutex
	opts vsel.Options
}

// NewDispatcher creates a dispatcher; opts.FullTextPerChar is the default
// mode for encode commands that do not ask for `full`
func NewDispatcher(log *zap.Logger, opts vsel.Options) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		log:  log,
		opts: opts,
	}
}

// Handle parses one command line and replies with the result
func (d *Dispatcher) Handle(raw string, r Replier) error {
	cmd, err := ParseCommand(raw)
	if err != nil {
		d.log.Debug("Rejected command", zap.Error(err))
		if rerr := r.Reply(fmt.Sprintf("%s (%s)", Usage, err)); rerr != nil {
			return rerr
		}
		return err
	}

	var out string
	switch cmd.Name {
	case CMD_ENCODE:
		out = d.encode(cmd)
		d.log.Debug("Encoded",
			zap.Int("carrier_runes", len([]rune(cmd.Text))),
			zap.Int("secret_bytes", len(cmd.Secret)),
			zap.Bool("full", cmd.Full || d.opts.FullTextPerChar))
	case CMD_DECODE:
		out = vsel.Decode(cmd.Text)
		d.log.Debug("Decoded",
			zap.Int("input_runes", len([]rune(cmd.Text))),
			zap.Int("secret_bytes", len(out)))
	}
	return r.Reply(out)
}

func (d *Dispatcher) encode(cmd *Command) string {
	d.lock.Lock()
	defer d.lock.Unlock()

	opts := d.opts
	opts.FullTextPerChar = opts.FullTextPerChar || cmd.Full
	return vsel.Encode(cmd.Secret, cmd.Text, opts)
}

// WriterReplier writes every reply as one line
type WriterReplier struct {
	W io.Writer
}

func (w WriterReplier) Reply(text string) error {
	_, err := fmt.Fprintln(w.W, text)
	return err
}

// ReplierFunc adapts a function to the Replier interface
type ReplierFunc func(text string) error

func (f ReplierFunc) Reply(text string) error {
	return f(text)
}
