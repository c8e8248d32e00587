package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinimagic-be/internal/constant"
	"cinimagic-be/internal/dto"
	"cinimagic-be/internal/pkg/apperrors"
	"cinimagic-be/internal/repository/memory"
	"cinimagic-be/pkg/chatbot"
	"cinimagic-be/pkg/navigation"
	"cinimagic-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture(t *testing.T, handler http.HandlerFunc) (IChatbotService, *memory.SessionRepository) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessionRepo := memory.NewSessionRepository()
	svc := NewChatbotService(sessionRepo, chatbot.NewClientWithBaseURL("key", srv.URL), nopLogger{})
	return svc, sessionRepo
}

func chatSession(repo *memory.SessionRepository) *store.Session {
	sess := store.NewSession("sid", "alice")
	sess.Screen = navigation.ScreenChat
	repo.Save(sess)
	return sess
}

func TestSendChatAppendsBothTurns(t *testing.T) {
	svc, sessionRepo := newChatFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Try Heat."}]}}]}`))
	})
	chatSession(sessionRepo)

	res, err := svc.SendChat(context.Background(), "sid", &dto.SendChatRequest{Message: "A heist movie?"})
	require.NoError(t, err)
	assert.Equal(t, "A heist movie?", res.Sent.Text)
	assert.Equal(t, "Try Heat.", res.Reply.Text)

	sess, _ := sessionRepo.Get("sid")
	require.Len(t, sess.Transcript, 3) // greeting, user, model
	assert.Equal(t, constant.ChatMessageRoleUser, sess.Transcript[1].Role)
	assert.Equal(t, "A heist movie?", sess.Transcript[1].Text)
	assert.Equal(t, constant.ChatMessageRoleModel, sess.Transcript[2].Role)
	assert.Equal(t, "Try Heat.", sess.Transcript[2].Text)
}

func TestSendChatSendsWholeTranscript(t *testing.T) {
	var captured chatbot.GeminiChatRequest
	svc, sessionRepo := newChatFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	})
	sess := chatSession(sessionRepo)
	sess.AppendTurn(constant.ChatMessageRoleUser, "earlier question")
	sess.AppendTurn(constant.ChatMessageRoleModel, "earlier answer")
	sessionRepo.Save(sess)

	_, err := svc.SendChat(context.Background(), "sid", &dto.SendChatRequest{Message: "followup"})
	require.NoError(t, err)

	// greeting + two earlier turns + the new user turn, in order.
	require.Len(t, captured.Contents, 4)
	assert.Equal(t, constant.CineMindGreeting, captured.Contents[0].Parts[0].Text)
	assert.Equal(t, "earlier question", captured.Contents[1].Parts[0].Text)
	assert.Equal(t, "earlier answer", captured.Contents[2].Parts[0].Text)
	assert.Equal(t, "followup", captured.Contents[3].Parts[0].Text)

	require.NotNil(t, captured.SystemInstruction)
	assert.Equal(t, constant.CineMindSystemDirective, captured.SystemInstruction.Parts[0].Text)
}

func TestSendChatFailureKeepsUserTurnOnly(t *testing.T) {
	svc, sessionRepo := newChatFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	chatSession(sessionRepo)

	res, err := svc.SendChat(context.Background(), "sid", &dto.SendChatRequest{Message: "hello?"})
	require.NoError(t, err)
	assert.Equal(t, constant.CineMindUnavailableReply, res.Reply.Text)

	// The user turn dangles in the transcript; the apology is not recorded.
	sess, _ := sessionRepo.Get("sid")
	require.Len(t, sess.Transcript, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, sess.Transcript[1].Role)
	assert.Equal(t, "hello?", sess.Transcript[1].Text)
}

func TestSendChatRejectsBlankMessage(t *testing.T) {
	svc, sessionRepo := newChatFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("the model must not be called for a blank message")
	})
	chatSession(sessionRepo)

	for _, message := range []string{"", " ", "   \t\n"} {
		_, err := svc.SendChat(context.Background(), "sid", &dto.SendChatRequest{Message: message})
		assert.True(t, apperrors.IsValidation(err))
	}

	// Nothing was appended to the transcript.
	sess, _ := sessionRepo.Get("sid")
	require.Len(t, sess.Transcript, 1)
}

func TestSendChatRequiresChatScreen(t *testing.T) {
	svc, sessionRepo := newChatFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("the model must not be called when the gate rejects")
	})
	sessionRepo.Save(store.NewSession("sid", "alice")) // still on HOME

	_, err := svc.SendChat(context.Background(), "sid", &dto.SendChatRequest{Message: "hi"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestSendChatUnknownSession(t *testing.T) {
	svc, _ := newChatFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := svc.SendChat(context.Background(), "missing", &dto.SendChatRequest{Message: "hi"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetChatHistoryReturnsTranscript(t *testing.T) {
	svc, sessionRepo := newChatFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	sess := chatSession(sessionRepo)
	sess.AppendTurn(constant.ChatMessageRoleUser, "q")
	sess.AppendTurn(constant.ChatMessageRoleModel, "a")
	sessionRepo.Save(sess)

	res, err := svc.GetChatHistory(context.Background(), "sid")
	require.NoError(t, err)
	require.Len(t, res.Turns, 3)
	assert.Equal(t, constant.CineMindGreeting, res.Turns[0].Text)
	assert.Equal(t, "q", res.Turns[1].Text)
	assert.Equal(t, "a", res.Turns[2].Text)
}
