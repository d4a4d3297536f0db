package tcp_test

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/omochice/chat-listener/internal/transport/tcp"
	"github.com/omochice/chat-listener/pkg/protocol"
)

func writeFrame(t *testing.T, w io.Writer, pdu protocol.ChatPDU) {
	t.Helper()
	data, err := pdu.Encode()
	if err != nil {
		t.Errorf("failed to encode pdu: %v", err)
		return
	}
	header := make([]byte, 4)
	binary.BigEndian.PutUint32(header, uint32(len(data)))
	if _, err := w.Write(append(header, data...)); err != nil {
		t.Errorf("failed to write frame: %v", err)
	}
}

func TestConn_Receive(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	conn := tcp.NewConn(client)

	go writeFrame(t, server, protocol.ChatPDU{
		Kind:          protocol.KindChatMessageEvent,
		EventUserName: "bob",
		Message:       "hi",
	})

	pdu, err := conn.Receive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pdu.Kind != protocol.KindChatMessageEvent || pdu.EventUserName != "bob" || pdu.Message != "hi" {
		t.Errorf("Receive() = %+v", pdu)
	}
}

func TestConn_ReceiveEOF(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	conn := tcp.NewConn(client)
	server.Close()

	_, err := conn.Receive(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Errorf("Receive() error = %v, want io.EOF", err)
	}
}

func TestConn_ReceiveFrameTooLarge(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	conn := tcp.NewConn(client)

	go func() {
		header := make([]byte, 4)
		binary.BigEndian.PutUint32(header, tcp.MaxFrameSize+1)
		server.Write(header)
	}()

	_, err := conn.Receive(context.Background())
	if !errors.Is(err, tcp.ErrFrameTooLarge) {
		t.Errorf("Receive() error = %v, want ErrFrameTooLarge", err)
	}
}

func TestConn_ReceiveCancelled(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	conn := tcp.NewConn(client)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := conn.Receive(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Receive() error = %v, want context.Canceled", err)
	}
}

func TestConn_Send(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	conn := tcp.NewConn(client)

	go func() {
		err := conn.Send(context.Background(), &protocol.ChatPDU{
			Kind:           protocol.KindChatMessageRequest,
			UserName:       "alice",
			Message:        "hello",
			SequenceNumber: 3,
		})
		if err != nil {
			t.Errorf("Send() error = %v", err)
		}
	}()

	header := make([]byte, 4)
	if _, err := io.ReadFull(server, header); err != nil {
		t.Fatalf("server read error: %v", err)
	}
	data := make([]byte, binary.BigEndian.Uint32(header))
	if _, err := io.ReadFull(server, data); err != nil {
		t.Fatalf("server read error: %v", err)
	}

	var got protocol.ChatPDU
	if err := got.Decode(data); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if got.Kind != protocol.KindChatMessageRequest || got.Message != "hello" || got.SequenceNumber != 3 {
		t.Errorf("server received %+v", got)
	}
}

func TestConn_SendUndefinedKind(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	conn := tcp.NewConn(client)

	err := conn.Send(context.Background(), &protocol.ChatPDU{UserName: "alice"})
	if !errors.Is(err, protocol.ErrUndefinedKind) {
		t.Errorf("Send() error = %v, want ErrUndefinedKind", err)
	}
}

func TestConn_CloseIdempotent(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()

	conn := tcp.NewConn(client)

	if err := conn.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if _, err := conn.Receive(context.Background()); err == nil {
		t.Error("expected error after close, got nil")
	}
}

func TestDial(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	defer ln.Close()

	go func() {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		defer c.Close()
		writeFrame(t, c, protocol.ChatPDU{Kind: protocol.KindLoginResponse, UserName: "alice"})
	}()

	conn, err := tcp.Dial(context.Background(), ln.Addr().String())
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	if conn.RemoteAddr() == "" {
		t.Error("RemoteAddr() returned empty string")
	}

	pdu, err := conn.Receive(context.Background())
	if err != nil {
		t.Fatalf("Receive() error = %v", err)
	}
	if pdu.Kind != protocol.KindLoginResponse {
		t.Errorf("Receive() kind = %v, want %v", pdu.Kind, protocol.KindLoginResponse)
	}
}
