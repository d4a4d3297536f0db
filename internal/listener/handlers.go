package listener

import (
	"fmt"

	"github.com/omochice/chat-listener/internal/session"
	"github.com/omochice/chat-listener/pkg/protocol"
)

// errorSource names the origin of errors reported to the presentation layer.
const errorSource = "chat server"

func (l *Listener) loginResponse(pdu *protocol.ChatPDU) {
	if pdu.ErrorCode == protocol.LoginError {
		l.log.Error().Str("user", pdu.UserName).Msg("login response with login error received")
		l.setStatus(session.Unregistered)
		l.present("ReportError", func() {
			l.ui.ReportError(errorSource,
				fmt.Sprintf("login rejected, user %s likely already in use", pdu.UserName),
				pdu.ErrorCode)
		})
		l.closeConn()
		l.finish()
		return
	}

	l.setStatus(session.Registered)
	l.present("LoginComplete", l.ui.LoginComplete)
	l.setLabel(fmt.Sprintf("%s-%s", defaultLabel, l.state.UserName()))
	l.log.Debug().Str("user", pdu.UserName).Msg("login response received")
}

func (l *Listener) loginEvent(pdu *protocol.ChatPDU) {
	l.state.IncrementEvents()
	l.updateUserList(pdu)
}

func (l *Listener) logoutEvent(pdu *protocol.ChatPDU) {
	l.state.IncrementEvents()
	l.updateUserList(pdu)
}

func (l *Listener) logoutResponse(pdu *protocol.ChatPDU) {
	l.log.Debug().Str("user", pdu.UserName).Msg("logout response received")
	l.setStatus(session.Unregistered)

	stats := Statistics{
		Events:   l.state.Events(),
		Confirms: l.state.Confirms(),
	}
	l.present("SessionStatistics", func() { l.ui.SessionStatistics(stats) })
	l.log.Debug().Uint64("sent", l.state.MessageCounter()).Msg("chat messages sent by client")

	l.finish()
	l.present("LogoutComplete", l.ui.LogoutComplete)
}

func (l *Listener) chatMessageResponse(pdu *protocol.ChatPDU) {
	expected := l.state.MessageCounter()
	l.log.Debug().
		Uint64("seq", pdu.SequenceNumber).
		Uint64("expected", expected).
		Dur("server_time", pdu.ServerTime).
		Msg("chat message response received")

	if pdu.SequenceNumber != expected {
		l.log.Debug().
			Uint64("seq", pdu.SequenceNumber).
			Uint64("expected", expected).
			Msg("chat message response sequence number mismatch, dropped")
		return
	}

	l.state.IncrementConfirms()
	l.present("RecordServerTime", func() { l.ui.RecordServerTime(pdu.ServerTime) })
	l.present("SetLock", func() { l.ui.SetLock(false) })
}

func (l *Listener) chatMessageEvent(pdu *protocol.ChatPDU) {
	l.log.Debug().Str("from", pdu.EventUserName).Msg("chat message event received")
	l.state.IncrementEvents()
	l.present("DisplayMessage", func() { l.ui.DisplayMessage(pdu.EventUserName, pdu.Message) })
}

func (l *Listener) updateUserList(pdu *protocol.ChatPDU) {
	l.present("UpdateUserList", func() {
		if err := l.ui.UpdateUserList(pdu.Clients); err != nil {
			l.log.Warn().Err(err).Stringer("kind", pdu.Kind).Msg("failed to update user list")
		}
	})
}

func (l *Listener) setStatus(to session.Status) {
	if err := l.state.Transition(to); err != nil {
		l.log.Warn().Err(err).Msg("status not changed")
	}
}

// present runs one call into the presentation layer. A panic inside it is
// logged and does not reach the loop.
func (l *Listener) present(call string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().Str("call", call).Interface("panic", r).Msg("presentation call failed")
		}
	}()
	fn()
}
