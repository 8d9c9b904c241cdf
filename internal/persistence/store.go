// Package persistence backs the lead and conversation repositories.
//
// No database is wired yet: writes are logged and dropped, reads come back
// empty. Callers must not rely on anything being stored.
package persistence

import (
	"context"

	convdomain "github.com/smallbiznis/leadflow/internal/conversation/domain"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
	"go.uber.org/zap"
)

type Store struct {
	log *zap.Logger
}

func NewStore(log *zap.Logger) *Store {
	return &Store{log: log.Named("persistence.store")}
}

func (s *Store) SaveLeads(ctx context.Context, leads []leaddomain.Lead) error {
	s.log.Debug("discarding leads", zap.Int("count", len(leads)))
	return nil
}

func (s *Store) GetLeads(ctx context.Context) ([]leaddomain.Lead, error) {
	return []leaddomain.Lead{}, nil
}

func (s *Store) SaveMessage(ctx context.Context, msg convdomain.Message) error {
	s.log.Debug("discarding message",
		zap.String("message_id", msg.ID),
		zap.String("lead_id", msg.LeadID),
		zap.String("direction", string(msg.Type)),
	)
	return nil
}

func (s *Store) GetConversation(ctx context.Context, leadID string) ([]convdomain.Message, error) {
	return []convdomain.Message{}, nil
}
