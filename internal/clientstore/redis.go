package clientstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/crime-gazette/internal/config"
)

const keyPrefix = "clientstore:"

// Redis хранит ключи сессии в hash "clientstore:{sid}" и публикует
// уведомления в канал "clientstore:{sid}:events".
type Redis struct {
	Db *redis.Client
}

// InitRedis подключается к redis и проверяет соединение.
func InitRedis(ctx context.Context, cfg config.RedisConnection) (*Redis, error) {
	const op = "clientstore.InitRedis"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Redis{Db: db}, nil
}

func hashKey(sid string) string {
	return keyPrefix + sid
}

func eventsChannel(sid string) string {
	return keyPrefix + sid + ":events"
}

// Get возвращает значение поля сессии.
func (r *Redis) Get(ctx context.Context, sid, key string) (string, bool, error) {
	const op = "clientstore.Redis.Get"
	if sid == "" {
		return "", false, fmt.Errorf("%s: %w", op, ErrEmptySession)
	}
	val, err := r.Db.HGet(ctx, hashKey(sid), key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

// Set сохраняет поле сессии и публикует уведомление.
func (r *Redis) Set(ctx context.Context, sid, key, value string) error {
	const op = "clientstore.Redis.Set"
	if sid == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptySession)
	}
	if err := r.Db.HSet(ctx, hashKey(sid), key, value).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return r.publish(ctx, op, Event{SessionID: sid, Key: key})
}

// Remove удаляет поля сессии и публикует уведомление по каждому ключу.
func (r *Redis) Remove(ctx context.Context, sid string, keys ...string) error {
	const op = "clientstore.Redis.Remove"
	if sid == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptySession)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.Db.HDel(ctx, hashKey(sid), keys...).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, key := range keys {
		if err := r.publish(ctx, op, Event{SessionID: sid, Key: key}); err != nil {
			return err
		}
	}
	return nil
}

// Watch подписывается на канал уведомлений сессии через pub/sub.
// Подписка закрывается, когда отменяется ctx.
func (r *Redis) Watch(ctx context.Context, sid string) (<-chan Event, error) {
	const op = "clientstore.Redis.Watch"
	if sid == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptySession)
	}
	sub := r.Db.Subscribe(ctx, eventsChannel(sid))
	// Ждём подтверждения подписки, чтобы не потерять события сразу после Watch.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(chan Event, watchBuffer)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				ev := Event{SessionID: sid}
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					ev = Event{SessionID: sid}
				}
				select {
				case out <- ev:
				default:
				}
			}
		}
	}()
	return out, nil
}

// Close закрывает соединение с redis.
func (r *Redis) Close() error {
	return r.Db.Close()
}

func (r *Redis) publish(ctx context.Context, op string, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.Db.Publish(ctx, eventsChannel(ev.SessionID), payload).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
