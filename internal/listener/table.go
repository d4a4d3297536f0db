package listener

import (
	"github.com/omochice/chat-listener/internal/session"
	"github.com/omochice/chat-listener/pkg/protocol"
)

// action handles one PDU that is legal in the current status.
type action func(l *Listener, pdu *protocol.ChatPDU)

// dispatchTable is the conversation state machine: for every status it
// lists the PDU kinds that may be received and the handler for each.
// Kinds missing from a row are discarded. Unregistered has no row.
var dispatchTable = map[session.Status]map[protocol.PduKind]action{
	session.Registering: {
		protocol.KindLoginResponse:    (*Listener).loginResponse,
		protocol.KindLoginEvent:       (*Listener).loginEvent,
		protocol.KindLogoutEvent:      (*Listener).logoutEvent,
		protocol.KindChatMessageEvent: (*Listener).chatMessageEvent,
	},
	session.Registered: {
		protocol.KindChatMessageResponse: (*Listener).chatMessageResponse,
		protocol.KindChatMessageEvent:    (*Listener).chatMessageEvent,
		protocol.KindLoginEvent:          (*Listener).loginEvent,
		protocol.KindLogoutEvent:         (*Listener).logoutEvent,
	},
	session.Unregistering: {
		protocol.KindChatMessageEvent: (*Listener).chatMessageEvent,
		protocol.KindLogoutResponse:   (*Listener).logoutResponse,
		protocol.KindLoginEvent:       (*Listener).loginEvent,
		protocol.KindLogoutEvent:      (*Listener).logoutEvent,
	},
}

func lookup(status session.Status, kind protocol.PduKind) (action, bool) {
	a, ok := dispatchTable[status][kind]
	return a, ok
}

// Accepts reports whether a PDU of the given kind is legal in status.
func Accepts(status session.Status, kind protocol.PduKind) bool {
	_, ok := lookup(status, kind)
	return ok
}
