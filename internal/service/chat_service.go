package service

import (
	"context"
	"time"

	"kisaan-academy-be/internal/constant"
	"kisaan-academy-be/internal/dto"
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/pkg/logger"
	"kisaan-academy-be/internal/repository/unitofwork"
	"kisaan-academy-be/pkg/assistant/compose"

	"github.com/google/uuid"
)

type IChatService interface {
	Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	composer   *compose.Composer
	log        logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, composer *compose.Composer, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		composer:   composer,
		log:        log,
	}
}

func (s *chatService) Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	language := req.Language
	if language == "" {
		language = constant.LanguageUrdu
	}

	answer := s.composer.Answer(ctx, compose.Question{
		Text:     req.Question,
		Language: language,
	})

	// History is kept only for known users. A failed insert must never
	// cost the farmer the answer.
	if req.UserId != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		history := entity.ChatHistory{
			Id:        uuid.New(),
			UserId:    req.UserId,
			Question:  req.Question,
			Answer:    answer.Text,
			Language:  language,
			CreatedAt: time.Now(),
		}
		if err := uow.ChatHistoryRepository().Create(ctx, &history); err != nil {
			s.log.Warn("ChatService", "chat history insert failed", map[string]interface{}{
				"user_id": req.UserId.String(),
				"error":   err.Error(),
			})
		}
	}

	return &dto.ChatResponse{
		Answer:   answer.Text,
		Language: language,
		Source:   answer.SourceTier,
	}, nil
}
