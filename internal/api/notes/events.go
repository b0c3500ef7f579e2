package notes

import (
	"context"
	"net/http"
	"time"

	"github.com/evgeniy-krivenko/ai-notes/internal/api/notes/converter"
	"github.com/evgeniy-krivenko/ai-notes/pkg/logger/slogx"
)

const writeWait = 5 * time.Second

// events streams store changes and assist loading transitions to a
// websocket client until either side goes away.
func (s *Service) events(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Subscribe before the handshake completes so no change is missed.
	storeEvents := s.notes.SubscribeToEvents(ctx)
	assistEvents := s.assist.SubscribeToEvents(ctx)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slogx.Warn(ctx, "websocket upgrade", slogx.Err(err))
		return
	}
	defer conn.Close()

	// Reads only detect the peer closing; incoming messages are ignored.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	slogx.Debug(ctx, "websocket client subscribed")

	for {
		var msg converter.Event

		select {
		case <-ctx.Done():
			return

		case ev, ok := <-storeEvents:
			if !ok {
				return
			}
			msg = converter.ConvertEventToDTO(ev, s.now())

		case ev, ok := <-assistEvents:
			if !ok {
				return
			}
			msg = converter.ConvertAssistEventToDTO(ev)
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			slogx.Debug(ctx, "websocket write", slogx.Err(err))
			return
		}
	}
}
