package testutil

import (
	"context"
	"riftstats/api/repositories"
	"riftstats/pkg/database/models"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockMatchReadRepository mocks the match read repository.
type MockMatchReadRepository struct {
	mock.Mock
}

func (m *MockMatchReadRepository) GetMatchupAggregates(ctx context.Context, playerId uint, minGames int, filters map[string]any) ([]*repositories.MatchupAggregate, error) {
	args := m.Called(ctx, playerId, minGames, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repositories.MatchupAggregate), args.Error(1)
}

func (m *MockMatchReadRepository) GetMatchupAggregate(ctx context.Context, playerId uint, opponent string, filters map[string]any) (*repositories.MatchupAggregate, error) {
	args := m.Called(ctx, playerId, opponent, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.MatchupAggregate), args.Error(1)
}

func (m *MockMatchReadRepository) GetRoleDistribution(ctx context.Context, playerId uint, opponent string, filters map[string]any) (map[string]int, error) {
	args := m.Called(ctx, playerId, opponent, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockMatchReadRepository) GetModeDistribution(ctx context.Context, playerId uint, opponent string, filters map[string]any) (map[string]int, error) {
	args := m.Called(ctx, playerId, opponent, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockMatchReadRepository) GetRecentMatchesVsOpponent(ctx context.Context, playerId uint, opponent string, filters map[string]any, limit int) ([]*models.MatchRecord, error) {
	args := m.Called(ctx, playerId, opponent, filters, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MatchRecord), args.Error(1)
}

func (m *MockMatchReadRepository) GetMatchHistory(ctx context.Context, playerId uint, queueId int, limit int, offset int) ([]*models.MatchRecord, error) {
	args := m.Called(ctx, playerId, queueId, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MatchRecord), args.Error(1)
}

func (m *MockMatchReadRepository) CountByPlayer(ctx context.Context, playerId uint) (int64, error) {
	args := m.Called(ctx, playerId)
	return args.Get(0).(int64), args.Error(1)
}

// MockPlayerReadRepository mocks the player read repository.
type MockPlayerReadRepository struct {
	mock.Mock
}

func (m *MockPlayerReadRepository) GetById(ctx context.Context, playerId uint) (*models.PlayerInfo, error) {
	args := m.Called(ctx, playerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlayerInfo), args.Error(1)
}

func (m *MockPlayerReadRepository) GetByNameTag(ctx context.Context, gameName string, tagLine string, region string) (*models.PlayerInfo, error) {
	args := m.Called(ctx, gameName, tagLine, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlayerInfo), args.Error(1)
}

// MockMasteryReadRepository mocks the mastery read repository.
type MockMasteryReadRepository struct {
	mock.Mock
}

func (m *MockMasteryReadRepository) GetByPlayer(ctx context.Context, playerId uint) ([]*models.MasteryRecord, error) {
	args := m.Called(ctx, playerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MasteryRecord), args.Error(1)
}

func (m *MockMasteryReadRepository) GetTopByPoints(ctx context.Context, playerId uint, minPoints int, limit int) ([]*models.MasteryRecord, error) {
	args := m.Called(ctx, playerId, minPoints, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MasteryRecord), args.Error(1)
}

func (m *MockMasteryReadRepository) LastRefreshedAt(ctx context.Context, playerId uint) (*time.Time, error) {
	args := m.Called(ctx, playerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}
