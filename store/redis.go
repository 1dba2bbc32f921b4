package store

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/BDP-team7/BDP-team7/core"
)

// RedisSink 把预测结果写入 Redis，供下游服务按商品查询。
// 键结构：hash `predict:{category}`，field 为 productId，value 为预测标签。
// 生产环境常用，支持持久化、集群、哨兵等。
type RedisSink struct {
	client *redis.Client
}

func NewRedisSink(addr string, db int) (*RedisSink, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeIO, "redis ping: "+err.Error())
	}
	return &RedisSink{client: client}, nil
}

func (r *RedisSink) Name() string { return "redis" }

func (r *RedisSink) Write(ctx context.Context, preds []core.Prediction) error {
	pipe := r.client.Pipeline()
	for _, p := range preds {
		pipe.HSet(ctx, "predict:"+p.Category, p.ProductID, strconv.Itoa(p.Predicted))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return core.NewDomainError(core.ModuleStore, core.ErrorCodeIO, "redis write: "+err.Error())
	}
	return nil
}

func (r *RedisSink) Close() error { return r.client.Close() }
