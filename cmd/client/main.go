package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/omochice/chat-listener/internal/client"
	"github.com/omochice/chat-listener/internal/config"
	"github.com/omochice/chat-listener/internal/console"
	"github.com/omochice/chat-listener/internal/logger"
	"github.com/omochice/chat-listener/internal/session"
	"github.com/omochice/chat-listener/internal/transport/tcp"
	"github.com/omochice/chat-listener/internal/transport/ws"
)

const logoutTimeout = 5 * time.Second

var (
	errLoginRejected  = errors.New("login rejected by server")
	errConnectionLost = errors.New("connection to server lost")
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "chat-client: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	log := logger.NewLogger("client", level, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	transport, err := dial(ctx, cfg)
	if err != nil {
		return err
	}

	ui := console.New(out)
	c := client.New(transport, cfg.User.Name, ui, log)
	defer c.Close()

	log.Info().
		Str("address", cfg.Server.Address).
		Str("transport", cfg.Server.Transport).
		Str("user", cfg.User.Name).
		Msg("connected")

	if err := c.Login(ctx); err != nil {
		return err
	}

	lines := readLines(in)
	done := waitDone(c)

loop:
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				break loop
			}
			if !handleLine(ctx, c, ui, out, line) {
				break loop
			}
		case <-done:
			printStats(log, c)
			return unexpectedEnd(c.Session().Snapshot())
		case <-ctx.Done():
			break loop
		}
	}

	if err := c.Logout(context.WithoutCancel(ctx)); err != nil {
		log.Warn().Err(err).Msg("logout failed")
		return nil
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), logoutTimeout)
	defer cancel()
	if err := c.Wait(waitCtx); err != nil {
		log.Warn().Err(err).Msg("no logout confirmation from server")
	}
	printStats(log, c)
	return nil
}

// unexpectedEnd reports why a session ended without a logout request.
// Only a rejected login leaves such a session Unregistered.
func unexpectedEnd(snap session.Snapshot) error {
	if snap.Status == session.Unregistered {
		return fmt.Errorf("%w: user %s", errLoginRejected, snap.UserName)
	}
	return fmt.Errorf("%w (status %s)", errConnectionLost, snap.Status)
}

// dial connects with the configured transport.
func dial(ctx context.Context, cfg *config.ClientConfig) (client.Transport, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Server.DialTimeout)
	defer cancel()

	switch cfg.Server.Transport {
	case config.TransportWebSocket:
		conn, err := ws.Dial(ctx, serverURL(cfg.Server.Address))
		if err != nil {
			return nil, err
		}
		return conn, nil
	default:
		conn, err := tcp.Dial(ctx, cfg.Server.Address)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
}

// serverURL turns a bare host:port into the server's WebSocket endpoint.
func serverURL(address string) string {
	if strings.HasPrefix(address, "ws://") || strings.HasPrefix(address, "wss://") {
		return address
	}
	return "ws://" + address + "/ws"
}

// handleLine processes one input line and reports whether to keep reading.
func handleLine(ctx context.Context, c *client.Client, ui *console.Console, out io.Writer, line string) bool {
	text := strings.TrimSpace(line)
	switch text {
	case "":
		return true
	case "/quit", "/exit":
		return false
	case "/users":
		fmt.Fprintf(out, "users online: %s\n", strings.Join(ui.Users(), ", "))
		return true
	}

	if ui.Locked() {
		fmt.Fprintln(out, "previous message not confirmed yet")
		return true
	}

	err := c.SendMessage(ctx, text)
	switch {
	case errors.Is(err, client.ErrNotRegistered):
		fmt.Fprintln(out, "not logged in")
	case err != nil:
		fmt.Fprintf(out, "failed to send message: %v\n", err)
	}
	return true
}

func readLines(in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func waitDone(c *client.Client) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Wait(context.Background())
	}()
	return done
}

func printStats(log *logger.Logger, c *client.Client) {
	snap := c.Session().Snapshot()
	log.Info().
		Str("user", snap.UserName).
		Stringer("status", snap.Status).
		Uint64("events", snap.EventCounter).
		Uint64("confirms", snap.ConfirmCounter).
		Uint64("messages", snap.MessageCounter).
		Msg("session finished")
}
