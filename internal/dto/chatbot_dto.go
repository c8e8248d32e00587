package dto

type SendChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatTurnDTO struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type SendChatResponse struct {
	Sent  ChatTurnDTO `json:"sent"`
	Reply ChatTurnDTO `json:"reply"`
}

type GetChatHistoryResponse struct {
	Turns []ChatTurnDTO `json:"turns"`
}
