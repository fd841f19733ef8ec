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

type DirectorService interface {
	Create(ctx context.Context, req *dto.PersonCreateRequest) (*dto.DirectorResponse, error)
	Update(ctx context.Context, id int64, req *dto.PersonUpdateRequest) (*dto.DirectorResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*dto.DirectorResponse, error)
	GetPaginated(ctx context.Context, page, pageSize int) (*dto.PaginateResponse[dto.DirectorResponse], error)
}

type directorService struct {
	directors repository.DirectorRepository
	store     *storage.Store
	logger    *slog.Logger
}

func NewDirectorService(directors repository.DirectorRepository, store *storage.Store, logger *slog.Logger) DirectorService {
	return &directorService{directors: directors, store: store, logger: logger}
}

func (s *directorService) Create(ctx context.Context, req *dto.PersonCreateRequest) (*dto.DirectorResponse, error) {
	director := &models.Director{
		FullName:  req.FullName,
		BirthDate: req.BirthDate,
		Bio:       req.Bio,
	}

	if req.Image != nil {
		name, err := s.store.Save(req.Image, "directors")
		if err != nil {
			return nil, apperr.IOFailure(err, "failed to store director photo")
		}
		url := "/images/directors/" + name
		director.PhotoURL = &url
	}

	if err := s.directors.Create(ctx, director); err != nil {
		return nil, err
	}
	s.logger.Info("director created", "director_id", director.ID, "name", director.FullName)
	return dto.FromModelToDirectorResponse(director), nil
}

func (s *directorService) Update(ctx context.Context, id int64, req *dto.PersonUpdateRequest) (*dto.DirectorResponse, error) {
	if err := requireID(id, "director"); err != nil {
		return nil, err
	}
	director, err := s.directors.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "director %d not found", id)
	}

	if req.FullName != nil {
		director.FullName = *req.FullName
	}
	if req.BirthDate != nil {
		director.BirthDate = *req.BirthDate
	}
	if req.Bio != nil {
		director.Bio = req.Bio
	}
	if req.Image != nil {
		name, err := s.store.Save(req.Image, "directors")
		if err != nil {
			return nil, apperr.IOFailure(err, "failed to store director photo")
		}
		url := "/images/directors/" + name
		director.PhotoURL = &url
	}

	if err := s.directors.Update(ctx, director); err != nil {
		return nil, err
	}
	return dto.FromModelToDirectorResponse(director), nil
}

func (s *directorService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "director"); err != nil {
		return err
	}
	director, err := s.directors.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "director %d not found", id)
	}
	if err := s.directors.Delete(ctx, director); err != nil {
		return err
	}
	s.logger.Info("director deleted", "director_id", id)
	return nil
}

func (s *directorService) GetByID(ctx context.Context, id int64) (*dto.DirectorResponse, error) {
	if err := requireID(id, "director"); err != nil {
		return nil, err
	}
	director, err := s.directors.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "director %d not found", id)
	}
	return dto.FromModelToDirectorResponse(director), nil
}

func (s *directorService) GetPaginated(ctx context.Context, page, pageSize int) (*dto.PaginateResponse[dto.DirectorResponse], error) {
	directors, total, err := s.directors.GetPaginated(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DirectorResponse, 0, len(directors))
	for i := range directors {
		out = append(out, *dto.FromModelToDirectorResponse(&directors[i]))
	}
	return dto.NewPaginateResponse(out, total, page, pageSize), nil
}
