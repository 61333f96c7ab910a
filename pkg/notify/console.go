package notify

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
)

// ConsoleChannel writes notifications as JSON lines to stdout. Useful for
// local runs and smoke tests without real credentials.
type ConsoleChannel struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleChannel() *ConsoleChannel {
	return &ConsoleChannel{out: os.Stdout}
}

func (c *ConsoleChannel) Name() string { return "console" }

func (c *ConsoleChannel) Send(ctx context.Context, n Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return json.NewEncoder(c.out).Encode(n)
}

func (c *ConsoleChannel) Close() error { return nil }
