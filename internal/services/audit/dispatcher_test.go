package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/joingate/internal/common/clock"
	clockMocks "github.com/KirkDiggler/joingate/internal/common/clock/mocks"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type recordingSink struct {
	mu     sync.Mutex
	events []*Event
	fail   map[string]bool
}

func (r *recordingSink) Deliver(_ context.Context, event *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail[event.TargetUserID] {
		return errors.New("channel unreachable")
	}
	r.events = append(r.events, event)
	return nil
}

func (r *recordingSink) targets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.TargetUserID)
	}
	return out
}

type DispatcherTestSuite struct {
	suite.Suite
	testNow time.Time
	logger  *logrus.Logger
	hook    *test.Hook
	ctx     context.Context
}

func (s *DispatcherTestSuite) SetupTest() {
	s.testNow = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.logger, s.hook = test.NewNullLogger()
	s.ctx = context.Background()
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) newDispatcher(queueSize int) *Dispatcher {
	return New(&Config{
		QueueSize: queueSize,
		Clock:     clock.Fixed(s.testNow),
		Logger:    s.logger,
	})
}

func (s *DispatcherTestSuite) TestQueuedUntilReady() {
	d := s.newDispatcher(10)
	sink := &recordingSink{}

	d.Record(s.ctx, &Event{Type: EventWebLogin, TargetUserID: "1"})
	d.Record(s.ctx, &Event{Type: EventLogout, TargetUserID: "2"})
	s.Equal(2, d.Pending())

	d.Ready(sink)
	s.Equal(0, d.Pending())

	d.Record(s.ctx, &Event{Type: EventBlacklist, TargetUserID: "3"})
	d.Close()

	s.Equal([]string{"1", "2", "3"}, sink.targets())
	s.Equal(uint64(0), d.Dropped())
}

func (s *DispatcherTestSuite) TestBacklogDropsOldest() {
	d := s.newDispatcher(2)
	sink := &recordingSink{}

	d.Record(s.ctx, &Event{Type: EventWebLogin, TargetUserID: "1"})
	d.Record(s.ctx, &Event{Type: EventWebLogin, TargetUserID: "2"})
	d.Record(s.ctx, &Event{Type: EventWebLogin, TargetUserID: "3"})

	s.Equal(2, d.Pending())
	s.Equal(uint64(1), d.Dropped())

	d.Ready(sink)
	d.Close()

	s.Equal([]string{"2", "3"}, sink.targets())
}

func (s *DispatcherTestSuite) TestSinkFailureIsLoggedNotPropagated() {
	d := s.newDispatcher(10)
	sink := &recordingSink{fail: map[string]bool{"bad": true}}
	d.Ready(sink)

	d.Record(s.ctx, &Event{Type: EventUnblacklist, TargetUserID: "bad"})
	d.Record(s.ctx, &Event{Type: EventUnblacklist, TargetUserID: "good"})
	d.Close()

	s.Equal([]string{"good"}, sink.targets())

	var warned bool
	for _, entry := range s.hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == "audit delivery failed" {
			warned = true
		}
	}
	s.True(warned)
}

func (s *DispatcherTestSuite) TestTimestampAndLogEntry() {
	mockClock := clockMocks.NewMockClock(gomock.NewController(s.T()))
	mockClock.EXPECT().Now().Return(s.testNow).Times(1)

	d := New(&Config{
		QueueSize: 10,
		Clock:     mockClock,
		Logger:    s.logger,
	})
	sink := &recordingSink{}
	d.Ready(sink)

	event := &Event{
		Type:         EventSessionInvalidation,
		TargetUserID: "42",
		ActorID:      "7",
		Reason:       "alt account",
	}
	d.Record(s.ctx, event)
	d.Close()

	s.True(event.Timestamp.Equal(s.testNow))

	entry := s.hook.AllEntries()[0]
	s.Equal("audit event", entry.Message)
	s.Equal(EventSessionInvalidation, entry.Data["event_type"])
	s.Equal("42", entry.Data["target"])
	s.Equal("7", entry.Data["actor"])
}

func (s *DispatcherTestSuite) TestKeepsExplicitTimestamp() {
	// no Now expectation, the clock must not be read
	mockClock := clockMocks.NewMockClock(gomock.NewController(s.T()))

	d := New(&Config{
		QueueSize: 10,
		Clock:     mockClock,
		Logger:    s.logger,
	})
	defer d.Close()

	explicit := s.testNow.Add(-time.Hour)
	event := &Event{Type: EventLogout, TargetUserID: "1", Timestamp: explicit}
	d.Record(s.ctx, event)

	s.True(event.Timestamp.Equal(explicit))
}

func (s *DispatcherTestSuite) TestRecordAfterCloseIgnored() {
	d := s.newDispatcher(10)
	sink := &recordingSink{}
	d.Ready(sink)
	d.Close()

	d.Record(s.ctx, &Event{Type: EventLogout, TargetUserID: "late"})
	d.Record(s.ctx, nil)

	s.Empty(sink.targets())
	s.Equal(0, d.Pending())
}

func (s *DispatcherTestSuite) TestReadyOnlyOnce() {
	d := s.newDispatcher(10)
	first := &recordingSink{}
	second := &recordingSink{}

	d.Ready(first)
	d.Ready(second)
	d.Record(s.ctx, &Event{Type: EventLogout, TargetUserID: "1"})
	d.Close()

	s.Equal([]string{"1"}, first.targets())
	s.Empty(second.targets())
}

func (s *DispatcherTestSuite) TestDiscardSink() {
	d := s.newDispatcher(10)
	d.Ready(nil)
	d.Record(s.ctx, &Event{Type: EventLogout, TargetUserID: "1"})
	d.Close()

	s.Equal(uint64(0), d.Dropped())
}
