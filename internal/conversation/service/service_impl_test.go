package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/smallbiznis/leadflow/internal/assistant"
	"github.com/smallbiznis/leadflow/internal/clock"
	"github.com/smallbiznis/leadflow/internal/conversation/domain"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
	"github.com/smallbiznis/leadflow/internal/observability/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) SaveMessage(ctx context.Context, msg domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockRepo) GetConversation(ctx context.Context, leadID string) ([]domain.Message, error) {
	args := m.Called(ctx, leadID)
	messages, _ := args.Get(0).([]domain.Message)
	return messages, args.Error(1)
}

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) ColdMessage(ctx context.Context, lead leaddomain.Lead, extraContext string) (string, error) {
	args := m.Called(ctx, lead, extraContext)
	return args.String(0), args.Error(1)
}

func (m *mockWriter) Reply(ctx context.Context, history []assistant.Turn, message string) (string, error) {
	args := m.Called(ctx, history, message)
	return args.String(0), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendColdEmail(ctx context.Context, lead leaddomain.Lead, message string) error {
	return m.Called(ctx, lead, message).Error(0)
}

var now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

type fixture struct {
	svc     *Service
	repo    *mockRepo
	writer  *mockWriter
	mailer  *mockMailer
	metrics *metrics.Metrics
}

func newFixture() *fixture {
	f := &fixture{
		repo:    &mockRepo{},
		writer:  &mockWriter{},
		mailer:  &mockMailer{},
		metrics: metrics.New(),
	}
	f.svc = New(Params{
		Log:     zap.NewNop(),
		Repo:    f.repo,
		Writer:  f.writer,
		Mailer:  f.mailer,
		Clock:   clock.NewFakeClock(now),
		Metrics: f.metrics,
	}).(*Service)
	return f
}

func TestSendRequiresLead(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Send(context.Background(), domain.SendMessageRequest{Type: domain.TypeColdMessage, LeadID: "  "})
	assert.ErrorIs(t, err, domain.ErrLeadRequired)
}

func TestSendUnsupportedCombinations(t *testing.T) {
	lead := &leaddomain.Lead{ID: "1"}
	cases := []struct {
		name string
		req  domain.SendMessageRequest
	}{
		{"unknown type", domain.SendMessageRequest{LeadID: "1", Type: "fax", Message: "hi"}},
		{"cold without lead", domain.SendMessageRequest{LeadID: "1", Type: domain.TypeColdMessage}},
		{"conversation without message", domain.SendMessageRequest{LeadID: "1", Type: domain.TypeConversation}},
		{"conversation without lead id", domain.SendMessageRequest{Lead: lead, Type: domain.TypeConversation, Message: "hi"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.svc.Send(context.Background(), tc.req)
			assert.ErrorIs(t, err, domain.ErrUnsupportedMessage)
		})
	}
}

func TestSendColdMessageEmailed(t *testing.T) {
	f := newFixture()
	lead := leaddomain.Lead{ID: "42", Name: "Jane", Email: "jane@example.com"}

	f.writer.On("ColdMessage", mock.Anything, lead, "met at expo").Return("Hello Jane", nil).Once()
	f.mailer.On("SendColdEmail", mock.Anything, lead, "Hello Jane").Return(nil).Once()
	f.repo.On("SaveMessage", mock.Anything, mock.MatchedBy(func(msg domain.Message) bool {
		return msg.LeadID == "42" &&
			msg.Content == "Hello Jane" &&
			msg.Type == domain.MessageSent &&
			msg.Platform == domain.ChannelEmail &&
			msg.Timestamp.Equal(now) &&
			msg.ID != ""
	})).Return(nil).Once()

	res, err := f.svc.Send(context.Background(), domain.SendMessageRequest{
		Type:    domain.TypeColdMessage,
		Lead:    &lead,
		Message: "met at expo",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Hello Jane", res.Message)
	assert.Equal(t, domain.TypeColdMessage, res.Type)
	assert.Equal(t, int64(1), f.metrics.Snapshot().MessagesSent)

	f.repo.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
}

func TestSendColdMessageEmailFailureSkipsSave(t *testing.T) {
	f := newFixture()
	lead := leaddomain.Lead{ID: "42", Name: "Jane"}

	f.writer.On("ColdMessage", mock.Anything, lead, "").Return("Hello Jane", nil).Once()
	f.mailer.On("SendColdEmail", mock.Anything, lead, "Hello Jane").Return(errors.New("smtp down")).Once()

	res, err := f.svc.Send(context.Background(), domain.SendMessageRequest{
		Type: domain.TypeColdMessage,
		Lead: &lead,
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Hello Jane", res.Message)
	f.repo.AssertNotCalled(t, "SaveMessage", mock.Anything, mock.Anything)
	assert.Equal(t, int64(0), f.metrics.Snapshot().MessagesSent)
}

func TestSendColdMessageGenerationFailure(t *testing.T) {
	f := newFixture()
	lead := leaddomain.Lead{ID: "42"}
	f.writer.On("ColdMessage", mock.Anything, lead, "").Return("", errors.New("llm: status 502")).Once()

	_, err := f.svc.Send(context.Background(), domain.SendMessageRequest{Type: domain.TypeColdMessage, Lead: &lead})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	f.mailer.AssertNotCalled(t, "SendColdEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendConversation(t *testing.T) {
	f := newFixture()
	history := []domain.Message{
		{Content: "Hello Jane", Type: domain.MessageSent},
		{Content: "Tell me more", Type: domain.MessageReceived},
	}
	turns := []assistant.Turn{
		{Sent: true, Content: "Hello Jane"},
		{Sent: false, Content: "Tell me more"},
	}

	var saved []domain.Message
	f.repo.On("GetConversation", mock.Anything, "42").Return(history, nil).Once()
	f.writer.On("Reply", mock.Anything, turns, "What does it cost?").Return("It depends.", nil).Once()
	f.repo.On("SaveMessage", mock.Anything, mock.AnythingOfType("domain.Message")).
		Run(func(args mock.Arguments) { saved = append(saved, args.Get(1).(domain.Message)) }).
		Return(nil).Twice()

	res, err := f.svc.Send(context.Background(), domain.SendMessageRequest{
		LeadID:  "42",
		Type:    domain.TypeConversation,
		Message: "What does it cost?",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "It depends.", res.Message)
	assert.Equal(t, domain.TypeConversation, res.Type)

	require.Len(t, saved, 2)
	assert.Equal(t, domain.MessageReceived, saved[0].Type)
	assert.Equal(t, "What does it cost?", saved[0].Content)
	assert.Equal(t, domain.MessageSent, saved[1].Type)
	assert.Equal(t, "It depends.", saved[1].Content)
	for _, msg := range saved {
		assert.Equal(t, domain.ChannelChat, msg.Platform)
		assert.Equal(t, "42", msg.LeadID)
	}
	assert.NotEqual(t, saved[0].ID, saved[1].ID)
	assert.Equal(t, int64(1), f.metrics.Snapshot().MessagesSent)
}

func TestConversation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Conversation(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrLeadIDRequired)

	f.repo.On("GetConversation", mock.Anything, "42").Return(nil, nil).Once()
	messages, err := f.svc.Conversation(context.Background(), "42")
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestNewMessageIDsAreULIDs(t *testing.T) {
	f := newFixture()
	msg := f.svc.newMessage("1", "hi", domain.MessageSent, domain.ChannelChat, now)
	assert.Len(t, msg.ID, 26)
	assert.Equal(t, msg.ID, strings.ToUpper(msg.ID))
}
