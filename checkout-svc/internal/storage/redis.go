package storage

import (
	"context"
	"fmt"
	"time"

	"coffeehouse/checkout-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const dailyRetention = 7 * 24 * time.Hour

// PopularityStore ranks drinks by order count in Redis sorted sets, per day
// and all time.
type PopularityStore struct {
	Client *redis.Client
}

func NewPopularityStore(client *redis.Client) *PopularityStore {
	return &PopularityStore{Client: client}
}

func DailyKey(day time.Time) string {
	return "analytics:daily:" + day.UTC().Format("2006-01-02")
}

const AllTimeKey = "analytics:alltime"

func (s *PopularityStore) RecordOrder(ctx context.Context, drink string, at time.Time) error {
	dailyKey := DailyKey(at)

	pipe := s.Client.TxPipeline()
	pipe.ZIncrBy(ctx, dailyKey, 1, drink)
	pipe.Expire(ctx, dailyKey, dailyRetention)
	pipe.ZIncrBy(ctx, AllTimeKey, 1, drink)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *PopularityStore) Top(ctx context.Context, period string, limit int) ([]domain.DrinkPopularity, error) {
	var key string
	switch period {
	case domain.PeriodToday:
		key = DailyKey(time.Now())
	case domain.PeriodAll:
		key = AllTimeKey
	default:
		return nil, fmt.Errorf("unknown period %q", period)
	}

	results, err := s.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.DrinkPopularity, 0, len(results))
	for _, result := range results {
		name, ok := result.Member.(string)
		if !ok {
			continue
		}
		top = append(top, domain.DrinkPopularity{Name: name, Score: result.Score})
	}
	return top, nil
}
