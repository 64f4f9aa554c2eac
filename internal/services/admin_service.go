package services

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"

	dm "gompa/internal/models/domain_models"
	"gompa/internal/models/request_models"
	"gompa/internal/repositories"
	"gompa/pkg/utils"
)

// AdminServiceInterface covers the management side of the catalog: a
// single shared-password login issuing an admin token, plus mutations on
// the in-memory monastery and event data.
type AdminServiceInterface interface {
	Login(ctx context.Context, password string) (string, error)
	UpsertMonastery(ctx context.Context, req request_models.UpsertMonasteryRequest) (string, error)
	DeleteMonastery(ctx context.Context, id string) error
	CreateEvent(ctx context.Context, req request_models.CreateEventRequest) (string, error)
	DeleteEvent(ctx context.Context, id string) error
}

type AdminService struct {
	monasteryRepo repositories.MonasteryRepository
	eventRepo     repositories.EventRepository
}

func NewAdminService(
	monasteryRepo repositories.MonasteryRepository,
	eventRepo repositories.EventRepository,
) AdminServiceInterface {
	return &AdminService{
		monasteryRepo: monasteryRepo,
		eventRepo:     eventRepo,
	}
}

func (s *AdminService) Login(ctx context.Context, password string) (string, error) {
	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		return "", utils.ErrUnauthorized
	}
	if err := utils.ComparePasswords(hash, password); err != nil {
		return "", utils.ErrUnauthorized
	}
	return utils.CreateToken(uuid.New(), "admin")
}

func (s *AdminService) UpsertMonastery(ctx context.Context, req request_models.UpsertMonasteryRequest) (string, error) {
	id := req.ID
	if id == "" {
		id = slugify(req.Name)
	}
	m := dm.Monastery{
		ID:          id,
		Name:        req.Name,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Era:         req.Era,
		Founded:     req.Founded,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AudioURL:    req.AudioURL,
	}
	if err := s.monasteryRepo.Upsert(ctx, m); err != nil {
		return "", err
	}
	return id, nil
}

func (s *AdminService) DeleteMonastery(ctx context.Context, id string) error {
	return s.monasteryRepo.Delete(ctx, id)
}

func (s *AdminService) CreateEvent(ctx context.Context, req request_models.CreateEventRequest) (string, error) {
	date, err := utils.ParseCalendarDate(req.Date)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	id := req.ID
	if id == "" {
		id = slugify(req.Title) + "-" + date.Format("2006")
	}
	e := dm.Event{
		ID:            id,
		Title:         req.Title,
		Date:          date,
		Location:      req.Location,
		Description:   req.Description,
		MonasteryName: req.MonasteryName,
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return "", err
	}
	return id, nil
}

func (s *AdminService) DeleteEvent(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}
