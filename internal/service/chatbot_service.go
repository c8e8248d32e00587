package service

import (
	"context"
	"strings"

	"cinimagic-be/internal/constant"
	"cinimagic-be/internal/dto"
	"cinimagic-be/internal/pkg/apperrors"
	"cinimagic-be/internal/pkg/logger"
	"cinimagic-be/internal/repository/memory"
	"cinimagic-be/pkg/chatbot"
	"cinimagic-be/pkg/navigation"
)

// IChatbotService defines the chatbot service interface
type IChatbotService interface {
	SendChat(ctx context.Context, sessionID string, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetChatHistory(ctx context.Context, sessionID string) (*dto.GetChatHistoryResponse, error)
}

type chatbotService struct {
	sessionRepo *memory.SessionRepository
	llmClient   *chatbot.Client
	logger      logger.ILogger
}

func NewChatbotService(
	sessionRepo *memory.SessionRepository,
	llmClient *chatbot.Client,
	logger logger.ILogger,
) IChatbotService {
	return &chatbotService{
		sessionRepo: sessionRepo,
		llmClient:   llmClient,
		logger:      logger,
	}
}

// SendChat appends the user's message to the transcript and asks the model
// for a reply with the full history attached. When generation fails the
// user turn stays in the transcript, nothing is appended for the model,
// and the caller gets the fixed fallback line instead of an error.
func (cs *chatbotService) SendChat(ctx context.Context, sessionID string, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sess, err := loadSession(cs.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireScreen(sess, navigation.ScreenChat); err != nil {
		return nil, err
	}
	if strings.TrimSpace(request.Message) == "" {
		return nil, &apperrors.ValidationError{Message: "message must not be blank"}
	}

	sess.AppendTurn(constant.ChatMessageRoleUser, request.Message)

	history := make([]*chatbot.ChatHistory, 0, len(sess.Transcript))
	for _, turn := range sess.Transcript {
		history = append(history, &chatbot.ChatHistory{
			Chat: turn.Text,
			Role: turn.Role,
		})
	}

	reply, err := cs.llmClient.Generate(ctx, history, constant.CineMindSystemDirective)
	if err != nil {
		cs.logger.Error("chatbot", "generation failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		cs.sessionRepo.Save(sess)
		return &dto.SendChatResponse{
			Sent:  dto.ChatTurnDTO{Role: constant.ChatMessageRoleUser, Text: request.Message},
			Reply: dto.ChatTurnDTO{Role: constant.ChatMessageRoleModel, Text: constant.CineMindUnavailableReply},
		}, nil
	}

	sess.AppendTurn(constant.ChatMessageRoleModel, reply)
	cs.sessionRepo.Save(sess)

	return &dto.SendChatResponse{
		Sent:  dto.ChatTurnDTO{Role: constant.ChatMessageRoleUser, Text: request.Message},
		Reply: dto.ChatTurnDTO{Role: constant.ChatMessageRoleModel, Text: reply},
	}, nil
}

// GetChatHistory returns the transcript in order, greeting first.
func (cs *chatbotService) GetChatHistory(ctx context.Context, sessionID string) (*dto.GetChatHistoryResponse, error) {
	sess, err := loadSession(cs.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireScreen(sess, navigation.ScreenChat); err != nil {
		return nil, err
	}

	turns := make([]dto.ChatTurnDTO, 0, len(sess.Transcript))
	for _, turn := range sess.Transcript {
		turns = append(turns, dto.ChatTurnDTO{Role: turn.Role, Text: turn.Text})
	}

	return &dto.GetChatHistoryResponse{Turns: turns}, nil
}
