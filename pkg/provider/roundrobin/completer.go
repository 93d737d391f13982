package roundrobin

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/crosscheck-ai/crosscheck/pkg/provider"
)

var _ provider.Completer = (*Completer)(nil)

// Completer spreads completions over a set of equivalent backends.
type Completer struct {
	index      atomic.Uint64
	completers []provider.Completer
}

func NewCompleter(completers ...provider.Completer) (*Completer, error) {
	if len(completers) == 0 {
		return nil, errors.New("no completers configured")
	}

	return &Completer{
		completers: completers,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	index := c.index.Add(1) % uint64(len(c.completers))

	return c.completers[index].Complete(ctx, messages, options)
}
