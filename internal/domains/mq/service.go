package mq

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
)

type Msg = nats.Msg

type Service struct {
	url      string
	conn     *nats.Conn
	handlers map[string]Handler
	subs     []*nats.Subscription
	mx       sync.Mutex
}

func NewService(url string) *Service {
	return &Service{
		url:      url,
		handlers: make(map[string]Handler),
	}
}

// RegisterHandlers adds request handlers, they are subscribed on Connect.
func (s *Service) RegisterHandlers(handlers map[string]Handler) {
	s.mx.Lock()
	defer s.mx.Unlock()

	for subject, handler := range handlers {
		s.handlers[subject] = handler
	}
}

// Connect connects to the broker and subscribes every registered handler.
func (s *Service) Connect() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.conn, err = nats.Connect(s.url,
		nats.Name(constants.MQClientName),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("Connect: disconnected from MQ broker")
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			log.Info().Str("url", conn.ConnectedUrl()).Msg("Connect: reconnected to MQ broker")
		}),
	); err != nil {
		return fmt.Errorf("Connect: %w", err)
	}

	for subject, handler := range s.handlers {
		sub, err := s.conn.Subscribe(subject, s.serve(subject, handler))
		if err != nil {
			return fmt.Errorf("Connect: subscribe %s: %w", subject, err)
		}

		s.subs = append(s.subs, sub)
	}

	return nil
}

func (s *Service) serve(subject string, handler Handler) nats.MsgHandler {
	return func(m *nats.Msg) {
		resp := handler(m)
		if m.Reply == "" {
			return
		}

		data, err := json.Marshal(resp)
		if err != nil {
			log.Error().
				Err(err).
				Str("subject", subject).
				Msg("serve: marshal response error")

			data, _ = json.Marshal(NewErrorResponse(err.Error()))
		}

		if err = m.Respond(data); err != nil {
			log.Error().
				Err(err).
				Str("subject", subject).
				Msg("serve: respond error")
		}
	}
}

// Close drains subscriptions and closes the connection.
func (s *Service) Close() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.conn == nil {
		return nil
	}

	if err = s.conn.Drain(); err != nil {
		return fmt.Errorf("Close: %w", err)
	}

	s.subs = nil
	return nil
}
