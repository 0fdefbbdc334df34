package ws

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/parley-sh/parley/pkg/logger"
)

const (
	writeTimeout = 10 * time.Second
	readTimeout  = 60 * time.Second
)

// Options configures a client connection.
type Options struct {
	URL              string
	HandshakeTimeout time.Duration
	PingInterval     time.Duration
	// OnFrame receives every text frame read from the connection.
	OnFrame func(data []byte)
	// OnClose fires once when the read loop exits; err is nil on a clean close.
	OnClose func(err error)
}

// Client is a websocket connection with a read pump and heartbeat. Writes are
// serialized by a mutex; reads happen on a single goroutine.
type Client struct {
	opts   Options
	conn   *websocket.Conn
	connMu sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	closeOnce sync.Once
}

// Dial connects to the server and starts the read and heartbeat loops.
func Dial(ctx context.Context, opts Options) (*Client, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("server url is required")
	}
	if opts.HandshakeTimeout <= 0 {
		opts.HandshakeTimeout = 10 * time.Second
	}
	if opts.PingInterval <= 0 {
		opts.PingInterval = 30 * time.Second
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: opts.HandshakeTimeout,
	}

	conn, resp, err := dialer.DialContext(ctx, opts.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", opts.URL, err)
	}
	logger.Debug("WebSocket connected to %s, status: %s", opts.URL, resp.Status)

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})
	conn.SetPingHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		return conn.WriteMessage(websocket.PongMessage, []byte(appData))
	})

	c := &Client{
		opts: opts,
		conn: conn,
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())

	c.wg.Add(2)
	go c.readLoop()
	go c.heartbeat()

	return c, nil
}

// SendJSON writes one JSON frame.
func (c *Client) SendJSON(v interface{}) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("connection is closed")
	}

	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.conn.WriteJSON(v); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Close sends a close frame and tears the connection down. Safe to call more
// than once and concurrently with the read loop.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.cancel()

		c.connMu.Lock()
		if c.conn != nil {
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			c.conn.Close()
		}
		c.connMu.Unlock()
	})

	c.wg.Wait()
	return nil
}

func (c *Client) readLoop() {
	defer c.wg.Done()

	for {
		c.conn.SetReadDeadline(time.Now().Add(readTimeout))
		msgType, message, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.ctx.Done():
				c.notifyClose(nil)
			default:
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logger.Info("Connection closed by server")
					c.notifyClose(nil)
				} else {
					logger.Warn("Read error: %v", err)
					c.notifyClose(err)
				}
			}
			return
		}

		if msgType != websocket.TextMessage {
			logger.Debug("Ignoring non-text frame (type=%d, len=%d)", msgType, len(message))
			continue
		}

		if c.opts.OnFrame != nil {
			c.opts.OnFrame(message)
		}
	}
}

func (c *Client) heartbeat() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.sendPing()
		}
	}
}

func (c *Client) sendPing() {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return
	}

	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		logger.Debug("Failed to send ping: %v", err)
	}
}

func (c *Client) notifyClose(err error) {
	if c.opts.OnClose != nil {
		c.opts.OnClose(err)
	}
}
