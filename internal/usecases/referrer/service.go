package referrer

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/influencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/influencer-stats-api/internal/config"
	"github.com/vfg2006/influencer-stats-api/internal/domain"
	"github.com/vfg2006/influencer-stats-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-stats-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Tentativas de gerar um ID livre antes de desistir
const maxCreateAttempts = 3

type ReferrerService interface {
	Create(ctx context.Context, request *domain.CreateReferrerRequest) (*domain.ReferrerResponse, error)
	Get(ctx context.Context, id string) (*domain.ReferrerResponse, error)
	List(ctx context.Context) ([]*domain.ReferrerResponse, error)
}

type Service struct {
	referrerRepository repository.ReferrerRepository
	cfg                *config.Config
	generateID         func() (string, error)
}

func NewService(referrerRepository repository.ReferrerRepository, cfg *config.Config) ReferrerService {
	return &Service{
		referrerRepository: referrerRepository,
		cfg:                cfg,
		generateID:         utils.GenerateID,
	}
}

// Create cadastra o influenciador com contadores zerados. O ID gerado também é a tag de atribuição.
func (s *Service) Create(ctx context.Context, request *domain.CreateReferrerRequest) (*domain.ReferrerResponse, error) {
	name := ""
	if request != nil {
		name = strings.TrimSpace(request.Name)
	}
	if name == "" {
		return nil, NewReferrerError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "", "Nome do influenciador é obrigatório")
	}

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		id, err := s.generateID()
		if err != nil {
			return nil, NewReferrerError(ErrGenerateID, apiErrors.ErrInternalServer, "", err.Error())
		}

		referrer := &domain.Referrer{
			ID:           id,
			Name:         name,
			TrackerID:    id,
			ReferralLink: domain.BuildReferralLink(s.cfg.AppMetrica.RedirectHost, s.cfg.AppMetrica.MasterTrackerID, id),
		}

		err = s.referrerRepository.Create(ctx, referrer)
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"referrer_id": referrer.ID,
				"name":        referrer.Name,
			}).Info("referrer: created")
			return domain.NewReferrerResponse(referrer), nil
		}

		if !errors.Is(err, repository.ErrDuplicateReferrer) {
			logrus.WithError(err).Error("referrer: failed to create")
			return nil, NewReferrerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao cadastrar influenciador")
		}

		logrus.WithFields(logrus.Fields{
			"referrer_id": id,
			"attempt":     attempt,
		}).Warn("referrer: generated ID already in use, retrying")
	}

	return nil, NewReferrerError(ErrGenerateID, apiErrors.ErrInternalServer, "", "Não foi possível gerar um ID livre")
}

func (s *Service) Get(ctx context.Context, id string) (*domain.ReferrerResponse, error) {
	referrer, err := s.referrerRepository.GetByID(ctx, id)
	if err != nil {
		return nil, NewReferrerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar influenciador")
	}

	if referrer == nil {
		return nil, NewReferrerError(ErrReferrerNotFound, apiErrors.ErrReferrerNotFound, id, "Influenciador não encontrado")
	}

	return domain.NewReferrerResponse(referrer), nil
}

func (s *Service) List(ctx context.Context) ([]*domain.ReferrerResponse, error) {
	referrers, err := s.referrerRepository.List(ctx)
	if err != nil {
		return nil, NewReferrerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao listar influenciadores")
	}

	response := make([]*domain.ReferrerResponse, 0, len(referrers))
	for _, referrer := range referrers {
		response = append(response, domain.NewReferrerResponse(referrer))
	}

	return response, nil
}
