//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "aquaria/pkg/domain"
	audit "aquaria/pkg/platform/audit"
	txcontext "aquaria/pkg/platform/tx"
	"aquaria/pkg/testutil/containers"
)

type StoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *Store
	owner id.OwnerID
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	s.pg = containers.GetManager().GetPostgres(s.T())
	s.store = New(s.pg.DB)
	s.ctx = context.Background()
}

func (s *StoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateAll(s.ctx))
	s.owner = s.pg.CreateTestOwner(s.ctx, s.T())
}

func (s *StoreSuite) TestEmitAndList() {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.Emit(s.ctx, audit.Event{Timestamp: base, OwnerID: s.owner, Action: "aquarium_created", Subject: "a1"}))
	s.Require().NoError(s.store.Emit(s.ctx, audit.Event{Timestamp: base.Add(time.Minute), OwnerID: s.owner, Action: "aquarium_updated", Subject: "a1", RequestID: "req-1"}))

	events, err := s.store.ListByOwner(s.ctx, s.owner, 10)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal("aquarium_updated", events[0].Action)
	s.Equal("req-1", events[0].RequestID)
	s.Equal(s.owner, events[1].OwnerID)
}

func (s *StoreSuite) TestRolledBackEventIsDiscarded() {
	tx, err := s.pg.DB.BeginTx(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Emit(txcontext.WithTx(s.ctx, tx), audit.Event{Timestamp: time.Now(), OwnerID: s.owner, Action: "aquarium_deleted"}))
	s.Require().NoError(tx.Rollback())

	events, err := s.store.ListByOwner(s.ctx, s.owner, 10)
	s.Require().NoError(err)
	s.Empty(events)
}
