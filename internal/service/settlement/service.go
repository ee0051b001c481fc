package settlement

import (
	"context"
	"quantum_slots/internal/config"
	"quantum_slots/internal/model"
	"quantum_slots/internal/repository"
	"quantum_slots/internal/service"
	"quantum_slots/pkg/token"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

type serv struct {
	cfg       config.SettlementConfig
	repo      repository.SettlementRepository
	feed      repository.SettlementFeed
	txManager trm.Manager
	logger    *zap.Logger
	now       func() time.Time
}

// NewSettlementService feed может быть nil, тогда записи только сохраняются
func NewSettlementService(
	cfg config.SettlementConfig,
	repo repository.SettlementRepository,
	feed repository.SettlementFeed,
	txManager trm.Manager,
	logger *zap.Logger,
) service.SettlementService {
	return &serv{
		cfg:       cfg,
		repo:      repo,
		feed:      feed,
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// Settle подписывает и сохраняет факт, новую запись публикует в канал.
// Ошибка публикации только логируется: запись уже в базе.
func (s *serv) Settle(ctx context.Context, fact model.SettlementFact) (*model.Settlement, error) {
	st := &model.Settlement{
		SessionID:    fact.SessionID,
		SessionKey:   SessionKey(fact.SessionID),
		Kind:         fact.Kind,
		Level:        fact.Level,
		PostLevel5:   fact.PostLevel5(),
		FinalQuantum: quantumUnits(fact.FinalQuantum),
		EntryFeeWei:  EntryFeeWei(s.cfg.EntryFeeETH()),
	}

	receipt, err := token.GenerateSettlementReceipt(st, s.cfg.Secret(), s.cfg.ReceiptTTL(), s.now())
	if err != nil {
		return nil, err
	}
	st.Receipt = receipt

	var created bool
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Save(txCtx, st)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !created {
		s.logger.Debug("settlement already recorded",
			zap.String("session_id", st.SessionID),
			zap.String("kind", string(st.Kind)),
			zap.Int("level", st.Level))
		return st, nil
	}

	if s.feed != nil {
		if err := s.feed.Publish(ctx, *st); err != nil {
			s.logger.Warn("publish settlement", zap.Error(err), zap.Int64("id", st.ID))
		}
	}
	s.logger.Info("settlement recorded",
		zap.Int64("id", st.ID),
		zap.String("session_id", st.SessionID),
		zap.String("kind", string(st.Kind)),
		zap.Int("level", st.Level),
		zap.Bool("post_level5", st.PostLevel5))
	return st, nil
}

func (s *serv) List(ctx context.Context, sessionID string) ([]model.Settlement, error) {
	return s.repo.ListBySession(ctx, sessionID)
}
