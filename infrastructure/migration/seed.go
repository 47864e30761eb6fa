package migration

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/influencer-stats-api/internal/domain"
)

// ReferrerCreator é satisfeito pelo serviço de influenciadores
type ReferrerCreator interface {
	Create(ctx context.Context, request *domain.CreateReferrerRequest) (*domain.ReferrerResponse, error)
}

type SeedResult struct {
	Created []*domain.ReferrerResponse
	Failed  int
	Skipped int
}

// ReadNames lê um nome por linha, ignorando linhas vazias e comentários (#)
func ReadNames(r io.Reader) ([]string, error) {
	names := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}

	return names, scanner.Err()
}

// SeedReferrers cadastra em lote os influenciadores; falhas individuais não interrompem o lote
func SeedReferrers(ctx context.Context, creator ReferrerCreator, names []string) *SeedResult {
	logrus.Infof("Iniciando cadastro de %d influenciadores...", len(names))
	startTime := time.Now()

	result := &SeedResult{Created: make([]*domain.ReferrerResponse, 0, len(names))}
	seen := make(map[string]struct{}, len(names))

	for i, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := seen[key]; dup {
			logrus.WithField("name", name).Warn("Nome repetido no arquivo, ignorando")
			result.Skipped++
			continue
		}
		seen[key] = struct{}{}

		created, err := creator.Create(ctx, &domain.CreateReferrerRequest{Name: name})
		if err != nil {
			logrus.WithError(err).Errorf("Erro ao cadastrar influenciador [%d/%d] %s", i+1, len(names), name)
			result.Failed++
			continue
		}
		result.Created = append(result.Created, created)

		if i > 0 && i%10 == 0 {
			logrus.Infof("Progresso: %d/%d influenciadores processados", i+1, len(names))
		}
	}

	logrus.WithFields(logrus.Fields{
		"elapsed": time.Since(startTime).String(),
		"created": len(result.Created),
		"failed":  result.Failed,
		"skipped": result.Skipped,
	}).Info("Cadastro de influenciadores concluído")

	return result
}
