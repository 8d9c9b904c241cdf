package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/smallbiznis/leadflow/internal/clock"
	"github.com/smallbiznis/leadflow/internal/lead/domain"
	"github.com/smallbiznis/leadflow/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Clock   clock.Clock
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	repo    domain.Repository
	clock   clock.Clock
	metrics *metrics.Metrics

	// intn picks an index in [0, n).
	intn func(n int) int
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("lead.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		clock:   p.Clock,
		metrics: p.Metrics,
		intn:    rand.IntN,
	}
}

// Generate produces mock leads for a platform. Keywords are accepted for
// parity with real sourcing but do not influence the mock output.
func (s *Service) Generate(ctx context.Context, req domain.GenerateLeadsRequest) ([]domain.Lead, error) {
	platform := strings.TrimSpace(req.Platform)
	if platform == "" {
		return nil, domain.ErrInvalidPlatform
	}
	if req.Keywords == nil {
		return nil, domain.ErrInvalidKeywords
	}

	count := req.Count
	if count <= 0 {
		count = domain.DefaultGenerateCount
	}
	if count > domain.MaxGenerateCount {
		count = domain.MaxGenerateCount
	}

	now := s.clock.Now()
	platformSlug := slug.Make(platform)
	leads := make([]domain.Lead, 0, count)
	for i := 0; i < count; i++ {
		company := sampleCompanies[s.intn(len(sampleCompanies))]
		leads = append(leads, domain.Lead{
			ID:         s.genID.Generate().String(),
			Name:       sampleNames[s.intn(len(sampleNames))],
			Email:      fmt.Sprintf("contact%d@%s.com", i, slug.Make(company)),
			Platform:   platform,
			ProfileURL: fmt.Sprintf("https://%s.com/profile/%d", platformSlug, i),
			Company:    company,
			Position:   samplePositions[s.intn(len(samplePositions))],
			Status:     domain.LeadStatusNew,
			CreatedAt:  now,
		})
	}

	if err := s.repo.SaveLeads(ctx, leads); err != nil {
		return nil, err
	}
	s.metrics.RecordLeadsGenerated(len(leads))

	s.log.Info("leads generated",
		zap.String("platform", platform),
		zap.Strings("keywords", req.Keywords),
		zap.Int("count", len(leads)),
	)

	return leads, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Lead, error) {
	leads, err := s.repo.GetLeads(ctx)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	return leads, nil
}
