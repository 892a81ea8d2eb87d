// Package officermerge publishes officer identity merge messages to the
// stream consumed by the external officer-merge service. Publishes must
// complete (or fail loudly) before a pipeline reports success: a lost merge
// message means the officer graph is inconsistent.
package officermerge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/registrydata/appointments-backend/internal/pkg/ctxutil"
	"github.com/registrydata/appointments-backend/internal/pkg/envutil"
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
)

type Publisher interface {
	Merge(ctx context.Context, newOfficerID, oldOfficerID string) error
	Close() error
}

// Message is the wire form of one merge request.
type Message struct {
	OfficerID         string `json:"officer_id"`
	PreviousOfficerID string `json:"previous_officer_id"`
	ContextID         string `json:"context_id,omitempty"`
}

type publisher struct {
	log    *logger.Logger
	rdb    *goredis.Client
	stream string
}

func NewFromEnv(log *logger.Logger) (Publisher, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := envutil.String("REDIS_ADDR", "")
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	stream := envutil.String("OFFICER_MERGE_STREAM", "officer-merge")

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &publisher{
		log:    log.With("client", "OfficerMergePublisher"),
		rdb:    rdb,
		stream: stream,
	}, nil
}

func (p *publisher) Merge(ctx context.Context, newOfficerID, oldOfficerID string) error {
	if p == nil || p.rdb == nil {
		return fmt.Errorf("officer merge publisher not initialized")
	}
	newOfficerID = strings.TrimSpace(newOfficerID)
	oldOfficerID = strings.TrimSpace(oldOfficerID)
	if newOfficerID == "" || oldOfficerID == "" {
		return fmt.Errorf("officer merge: both officer ids required")
	}

	raw, err := json.Marshal(Message{
		OfficerID:         newOfficerID,
		PreviousOfficerID: oldOfficerID,
		ContextID:         ctxutil.RequestID(ctx),
	})
	if err != nil {
		return fmt.Errorf("officer merge: marshal message: %w", err)
	}

	if err := p.rdb.XAdd(ctxutil.Default(ctx), &goredis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{"message": raw},
	}).Err(); err != nil {
		return fmt.Errorf("officer merge publish: %w", err)
	}

	p.log.Info("officer merge message published",
		"officer_id", newOfficerID,
		"previous_officer_id", oldOfficerID)
	return nil
}

func (p *publisher) Close() error {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Close()
}
