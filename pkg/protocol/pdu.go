package protocol

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// PduKind identifies the purpose of a PDU.
type PduKind int

const (
	KindUndefined PduKind = iota
	KindLoginRequest
	KindLoginResponse
	KindLoginEvent
	KindLogoutRequest
	KindLogoutResponse
	KindLogoutEvent
	KindChatMessageRequest
	KindChatMessageResponse
	KindChatMessageEvent
)

// String returns the string representation of PduKind
func (k PduKind) String() string {
	switch k {
	case KindUndefined:
		return "UNDEFINED"
	case KindLoginRequest:
		return "LOGIN_REQUEST"
	case KindLoginResponse:
		return "LOGIN_RESPONSE"
	case KindLoginEvent:
		return "LOGIN_EVENT"
	case KindLogoutRequest:
		return "LOGOUT_REQUEST"
	case KindLogoutResponse:
		return "LOGOUT_RESPONSE"
	case KindLogoutEvent:
		return "LOGOUT_EVENT"
	case KindChatMessageRequest:
		return "CHAT_MESSAGE_REQUEST"
	case KindChatMessageResponse:
		return "CHAT_MESSAGE_RESPONSE"
	case KindChatMessageEvent:
		return "CHAT_MESSAGE_EVENT"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}

// IsEvent reports whether the kind is a server-initiated broadcast.
func (k PduKind) IsEvent() bool {
	return k == KindLoginEvent || k == KindLogoutEvent || k == KindChatMessageEvent
}

// ErrorCode is the server-reported outcome carried by a response PDU.
type ErrorCode int

const (
	NoError ErrorCode = iota
	LoginError
	LogoutError
)

// String returns the string representation of ErrorCode
func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "NO_ERROR"
	case LoginError:
		return "LOGIN_ERROR"
	case LogoutError:
		return "LOGOUT_ERROR"
	default:
		return fmt.Sprintf("UNKNOWN_ERROR(%d)", int(c))
	}
}

// ChatPDU is one protocol data unit exchanged between client and server.
type ChatPDU struct {
	Kind PduKind
	// UserName is the user the PDU was sent by or for.
	UserName string
	// EventUserName is the subject of a broadcast event.
	EventUserName  string
	Message        string
	SequenceNumber uint64
	// ServerTime is the processing time the server spent on the request.
	ServerTime time.Duration
	ErrorCode  ErrorCode
	// Clients lists the currently registered users on login/logout events.
	Clients []string
}

// Wire field numbers of ChatPDU.
const (
	fieldKind           protowire.Number = 1
	fieldUserName       protowire.Number = 2
	fieldEventUserName  protowire.Number = 3
	fieldMessage        protowire.Number = 4
	fieldSequenceNumber protowire.Number = 5
	fieldServerTime     protowire.Number = 6
	fieldErrorCode      protowire.Number = 7
	fieldClients        protowire.Number = 8
)

// ErrUndefinedKind is returned when encoding a PDU without a kind.
var ErrUndefinedKind = errors.New("pdu kind is undefined")

// Encode encodes the PDU into bytes using the protobuf wire format
func (p *ChatPDU) Encode() ([]byte, error) {
	if p.Kind == KindUndefined {
		return nil, fmt.Errorf("failed to encode pdu: %w", ErrUndefinedKind)
	}

	var b []byte
	b = appendVarintField(b, fieldKind, uint64(p.Kind))
	b = appendStringField(b, fieldUserName, p.UserName)
	b = appendStringField(b, fieldEventUserName, p.EventUserName)
	b = appendStringField(b, fieldMessage, p.Message)
	b = appendVarintField(b, fieldSequenceNumber, p.SequenceNumber)
	b = appendVarintField(b, fieldServerTime, uint64(p.ServerTime.Nanoseconds()))
	b = appendVarintField(b, fieldErrorCode, uint64(p.ErrorCode))
	for _, c := range p.Clients {
		b = protowire.AppendTag(b, fieldClients, protowire.BytesType)
		b = protowire.AppendString(b, c)
	}
	return b, nil
}

// Decode decodes bytes into the PDU. Unknown fields are skipped so that
// newer servers can extend the message.
func (p *ChatPDU) Decode(data []byte) error {
	*p = ChatPDU{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("failed to decode pdu: %w", protowire.ParseError(n))
		}
		data = data[n:]

		n, err := p.consumeField(num, typ, data)
		if err != nil {
			return fmt.Errorf("failed to decode pdu field %d: %w", num, err)
		}
		data = data[n:]
	}
	return nil
}

func (p *ChatPDU) consumeField(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
	switch num {
	case fieldKind, fieldSequenceNumber, fieldServerTime, fieldErrorCode:
		if typ != protowire.VarintType {
			return skipField(num, typ, data)
		}
		v, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		switch num {
		case fieldKind:
			p.Kind = PduKind(v)
		case fieldSequenceNumber:
			p.SequenceNumber = v
		case fieldServerTime:
			p.ServerTime = time.Duration(int64(v))
		case fieldErrorCode:
			p.ErrorCode = ErrorCode(v)
		}
		return n, nil
	case fieldUserName, fieldEventUserName, fieldMessage, fieldClients:
		if typ != protowire.BytesType {
			return skipField(num, typ, data)
		}
		v, n := protowire.ConsumeString(data)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		switch num {
		case fieldUserName:
			p.UserName = v
		case fieldEventUserName:
			p.EventUserName = v
		case fieldMessage:
			p.Message = v
		case fieldClients:
			p.Clients = append(p.Clients, v)
		}
		return n, nil
	default:
		return skipField(num, typ, data)
	}
}

func skipField(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, data)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

// appendVarintField omits zero values like proto3 scalars do.
func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendStringField(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}
