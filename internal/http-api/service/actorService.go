package service

import (
	"context"
	"log/slog"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"
	"cinelog/internal/http-api/repository"
	"cinelog/internal/storage"
)

type ActorService interface {
	Create(ctx context.Context, req *dto.PersonCreateRequest) (*dto.ActorResponse, error)
	Update(ctx context.Context, id int64, req *dto.PersonUpdateRequest) (*dto.ActorResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*dto.ActorResponse, error)
	GetPaginated(ctx context.Context, page, pageSize int) (*dto.PaginateResponse[dto.ActorResponse], error)
}

type actorService struct {
	actors repository.ActorRepository
	store  *storage.Store
	logger *slog.Logger
}

func NewActorService(actors repository.ActorRepository, store *storage.Store, logger *slog.Logger) ActorService {
	return &actorService{actors: actors, store: store, logger: logger}
}

func (s *actorService) Create(ctx context.Context, req *dto.PersonCreateRequest) (*dto.ActorResponse, error) {
	actor := &models.Actor{
		FullName:  req.FullName,
		BirthDate: req.BirthDate,
		Bio:       req.Bio,
	}

	if req.Image != nil {
		name, err := s.store.Save(req.Image, "actors")
		if err != nil {
			return nil, apperr.IOFailure(err, "failed to store actor image")
		}
		url := "/images/actors/" + name
		actor.ImageURL = &url
	}

	if err := s.actors.Create(ctx, actor); err != nil {
		return nil, err
	}
	s.logger.Info("actor created", "actor_id", actor.ID, "name", actor.FullName)
	return dto.FromModelToActorResponse(actor), nil
}

func (s *actorService) Update(ctx context.Context, id int64, req *dto.PersonUpdateRequest) (*dto.ActorResponse, error) {
	if err := requireID(id, "actor"); err != nil {
		return nil, err
	}
	actor, err := s.actors.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "actor %d not found", id)
	}

	if req.FullName != nil {
		actor.FullName = *req.FullName
	}
	if req.BirthDate != nil {
		actor.BirthDate = *req.BirthDate
	}
	if req.Bio != nil {
		actor.Bio = req.Bio
	}
	if req.Image != nil {
		name, err := s.store.Save(req.Image, "actors")
		if err != nil {
			return nil, apperr.IOFailure(err, "failed to store actor image")
		}
		url := "/images/actors/" + name
		actor.ImageURL = &url
	}

	if err := s.actors.Update(ctx, actor); err != nil {
		return nil, err
	}
	return dto.FromModelToActorResponse(actor), nil
}

func (s *actorService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "actor"); err != nil {
		return err
	}
	actor, err := s.actors.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "actor %d not found", id)
	}
	if err := s.actors.Delete(ctx, actor); err != nil {
		return err
	}
	s.logger.Info("actor deleted", "actor_id", id)
	return nil
}

func (s *actorService) GetByID(ctx context.Context, id int64) (*dto.ActorResponse, error) {
	if err := requireID(id, "actor"); err != nil {
		return nil, err
	}
	actor, err := s.actors.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "actor %d not found", id)
	}
	return dto.FromModelToActorResponse(actor), nil
}

func (s *actorService) GetPaginated(ctx context.Context, page, pageSize int) (*dto.PaginateResponse[dto.ActorResponse], error) {
	actors, total, err := s.actors.GetPaginated(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActorResponse, 0, len(actors))
	for i := range actors {
		out = append(out, *dto.FromModelToActorResponse(&actors[i]))
	}
	return dto.NewPaginateResponse(out, total, page, pageSize), nil
}
