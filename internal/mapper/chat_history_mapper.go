package mapper

import (
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/model"
)

type ChatHistoryMapper struct{}

func NewChatHistoryMapper() *ChatHistoryMapper {
	return &ChatHistoryMapper{}
}

func (m *ChatHistoryMapper) ToEntity(h *model.ChatHistory) *entity.ChatHistory {
	if h == nil {
		return nil
	}

	return &entity.ChatHistory{
		Id:        h.Id,
		UserId:    h.UserId,
		Question:  h.Question,
		Answer:    h.Answer,
		Language:  h.Language,
		CreatedAt: h.CreatedAt,
	}
}

func (m *ChatHistoryMapper) ToModel(h *entity.ChatHistory) *model.ChatHistory {
	if h == nil {
		return nil
	}

	return &model.ChatHistory{
		Id:        h.Id,
		UserId:    h.UserId,
		Question:  h.Question,
		Answer:    h.Answer,
		Language:  h.Language,
		CreatedAt: h.CreatedAt,
	}
}

func (m *ChatHistoryMapper) ToEntities(rows []*model.ChatHistory) []*entity.ChatHistory {
	entities := make([]*entity.ChatHistory, len(rows))
	for i, h := range rows {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
