package services

import (
	"context"
	"log"

	dm "gompa/internal/models/domain_models"
	"gompa/internal/models/response_models"
	"gompa/internal/repositories"
	"gompa/pkg/utils"
)

type MonasteryServiceInterface interface {
	GetMonasteryByID(ctx context.Context, id string) (*response_models.MonasteryResponse, error)
	ListMonasteries(ctx context.Context, page, pageSize int) ([]response_models.MonasteryResponse, error)
	SearchMonasteries(ctx context.Context, query, era, location string) ([]response_models.MonasteryResponse, error)
}

type MonasteryService struct {
	monasteryRepo repositories.MonasteryRepository
}

func NewMonasteryService(monasteryRepo repositories.MonasteryRepository) MonasteryServiceInterface {
	return &MonasteryService{
		monasteryRepo: monasteryRepo,
	}
}

func (s *MonasteryService) GetMonasteryByID(ctx context.Context, id string) (*response_models.MonasteryResponse, error) {
	m, err := s.monasteryRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching monastery %s: %v", id, err)
		return nil, err
	}
	if m == nil {
		return nil, utils.ErrMonasteryNotFound
	}
	out := buildMonasteryResponse(*m)
	return &out, nil
}

func (s *MonasteryService) ListMonasteries(ctx context.Context, page, pageSize int) ([]response_models.MonasteryResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	monasteries, err := s.monasteryRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return buildMonasteryResponses(monasteries), nil
}

func (s *MonasteryService) SearchMonasteries(ctx context.Context, query, era, location string) ([]response_models.MonasteryResponse, error) {
	monasteries, err := s.monasteryRepo.Search(ctx, query, era, location)
	if err != nil {
		return nil, err
	}
	return buildMonasteryResponses(monasteries), nil
}

func buildMonasteryResponse(m dm.Monastery) response_models.MonasteryResponse {
	return response_models.MonasteryResponse{
		ID:          m.ID,
		Name:        m.Name,
		Location:    m.Location,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Era:         m.Era,
		Founded:     m.Founded,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		AudioURL:    m.AudioURL,
	}
}

func buildMonasteryResponses(monasteries []dm.Monastery) []response_models.MonasteryResponse {
	out := make([]response_models.MonasteryResponse, 0, len(monasteries))
	for _, m := range monasteries {
		out = append(out, buildMonasteryResponse(m))
	}
	return out
}
