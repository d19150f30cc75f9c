package repository

import (
	"context"
	"encoding/json"

	"entrust_service/internal/chat/domain"
	"entrust_service/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisPubSub definition redis pub/sub
type RedisPubSub struct {
	client *redis.Client
}

// NewRedisPubSub create RedisPubSub
func NewRedisPubSub(client *redis.Client) *RedisPubSub {
	return &RedisPubSub{client: client}
}

// Publish 將 notification 序列化後，發布到指定 channel
func (r *RedisPubSub) Publish(ctx context.Context, channel string, n domain.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, channel, data).Err()
}

// Subscribe 訂閱 channel，收到訊息後呼叫 handler，ctx 結束時關閉訂閱
func (r *RedisPubSub) Subscribe(ctx context.Context, channel string, handler func(n domain.Notification)) error {
	sub := r.client.Subscribe(ctx, channel)
	// wait for the subscription confirmation so errors surface here
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return err
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()

		for {
			select {
			case m, ok := <-ch:
				if !ok {
					return
				}
				var n domain.Notification
				if err := json.Unmarshal([]byte(m.Payload), &n); err != nil {
					logger.Log.Error("pubsub decode", zap.String("channel", channel), zap.Error(err))
					continue
				}
				handler(n)
			case <-ctx.Done():
				logger.Log.Debug("sub close", zap.String("channel", channel))
				return
			}
		}
	}()
	return nil
}
