package audit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "aquaria/pkg/domain"
	"aquaria/pkg/requestcontext"
)

type recordingEmitter struct {
	events []Event
	err    error
}

func (m *recordingEmitter) Emit(_ context.Context, event Event) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

type LoggerSuite struct {
	suite.Suite
	emitter *recordingEmitter
	logger  *Logger
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerSuite))
}

func (s *LoggerSuite) SetupTest() {
	s.emitter = &recordingEmitter{}
	s.logger = NewLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), s.emitter)
}

func (s *LoggerSuite) TestEnrichesEvent() {
	ownerID := id.NewOwnerID()
	aquariumID := id.NewAquariumID()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(requestcontext.WithRequestID(context.Background(), "req-12345"), now)

	s.Require().NoError(s.logger.Log(ctx, EventAquariumCreated, "owner_id", ownerID, "aquarium_id", aquariumID.String()))

	s.Require().Len(s.emitter.events, 1)
	e := s.emitter.events[0]
	s.Equal("req-12345", e.RequestID)
	s.Equal(ownerID, e.OwnerID)
	s.Equal(aquariumID.String(), e.Subject)
	s.Equal("aquarium_created", e.Action)
	s.True(now.Equal(e.Timestamp))
}

func (s *LoggerSuite) TestSubjectPrefersItem() {
	inhabitantID := id.NewInhabitantID()
	s.Require().NoError(s.logger.Log(context.Background(), EventInhabitantAdded,
		"aquarium_id", id.NewAquariumID().String(), "inhabitant_id", inhabitantID.String()))
	s.Equal(inhabitantID.String(), s.emitter.events[0].Subject)
}

func (s *LoggerSuite) TestEmitterErrorIsReturned() {
	s.emitter.err = errors.New("db down")
	s.Error(s.logger.Log(context.Background(), EventAquariumDeleted))
}

func (s *LoggerSuite) TestNilSafe() {
	var l *Logger
	s.NoError(l.Log(context.Background(), EventAquariumDeleted))
	s.NoError(NewLogger(nil, nil).Log(context.Background(), EventAquariumDeleted))
}
