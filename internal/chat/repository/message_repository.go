package repository

import (
	"context"
	"errors"
	"fmt"

	"entrust_service/internal/chat/domain"
	errprocess "entrust_service/pkg/err"

	"github.com/go-redis/redis/v8"
	"github.com/samber/lo"
)

// ErrMisaligned the writers/messages/dates lists of a room have different lengths
var ErrMisaligned = errors.New("chat: room sequences misaligned")

// Lengths LLEN of the three sequences of a room
type Lengths struct {
	Writers  int64 `json:"writers"`
	Messages int64 `json:"messages"`
	Dates    int64 `json:"dates"`
}

// Aligned all three sequences have the same length
func (l Lengths) Aligned() bool {
	return l.Writers == l.Messages && l.Messages == l.Dates
}

// MessageRepository append-only message log per room
type MessageRepository interface {
	// Append push one record onto the three sequences of roomID
	Append(ctx context.Context, roomID, writer, date, message string) error
	// List LRANGE offset..limit (inclusive, redis index convention) zipped into records
	List(ctx context.Context, roomID string, limit, offset int64) ([]domain.MessageRecord, error)
	// Lengths LLEN of each sequence
	Lengths(ctx context.Context, roomID string) (Lengths, error)
}

type redisMessageRepository struct {
	client *redis.Client
}

// NewRedisMessageRepository create a MessageRepository on redis lists
func NewRedisMessageRepository(client *redis.Client) MessageRepository {
	return &redisMessageRepository{client: client}
}

// Append the three RPUSH run in one MULTI/EXEC, so they apply together
// and never interleave with another append on the same room.
func (r *redisMessageRepository) Append(ctx context.Context, roomID, writer, date, message string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, domain.SequenceKey(roomID, domain.PropertyWriters), writer)
		pipe.RPush(ctx, domain.SequenceKey(roomID, domain.PropertyDates), date)
		pipe.RPush(ctx, domain.SequenceKey(roomID, domain.PropertyMessages), message)
		return nil
	})
	return errprocess.Wrap(errprocess.KindStore, err, "append message")
}

func (r *redisMessageRepository) List(ctx context.Context, roomID string, limit, offset int64) ([]domain.MessageRecord, error) {
	var (
		writers, messages, dates *redis.StringSliceCmd
		lens                     [3]*redis.IntCmd
	)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		writers = pipe.LRange(ctx, domain.SequenceKey(roomID, domain.PropertyWriters), offset, limit)
		messages = pipe.LRange(ctx, domain.SequenceKey(roomID, domain.PropertyMessages), offset, limit)
		dates = pipe.LRange(ctx, domain.SequenceKey(roomID, domain.PropertyDates), offset, limit)
		lens = lenCmds(ctx, pipe, roomID)
		return nil
	})
	if err != nil {
		return nil, errprocess.Wrap(errprocess.KindStore, err, "list messages")
	}

	l := Lengths{Writers: lens[0].Val(), Messages: lens[1].Val(), Dates: lens[2].Val()}
	ws, ms, ds := writers.Val(), messages.Val(), dates.Val()
	if !l.Aligned() || len(ws) != len(ms) || len(ms) != len(ds) {
		return nil, misaligned(roomID, l)
	}

	return lo.Map(ws, func(w string, i int) domain.MessageRecord {
		return domain.MessageRecord{
			Writer:  w,
			Message: ms[i],
			Date:    ds[i],
		}
	}), nil
}

func (r *redisMessageRepository) Lengths(ctx context.Context, roomID string) (Lengths, error) {
	var lens [3]*redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lens = lenCmds(ctx, pipe, roomID)
		return nil
	})
	if err != nil {
		return Lengths{}, errprocess.Wrap(errprocess.KindStore, err, "sequence lengths")
	}
	return Lengths{Writers: lens[0].Val(), Messages: lens[1].Val(), Dates: lens[2].Val()}, nil
}

// CheckAlignment ErrMisaligned (wrapped) when the sequences of roomID differ in length
func CheckAlignment(ctx context.Context, repo MessageRepository, roomID string) (Lengths, error) {
	l, err := repo.Lengths(ctx, roomID)
	if err != nil {
		return l, err
	}
	if !l.Aligned() {
		return l, misaligned(roomID, l)
	}
	return l, nil
}

func lenCmds(ctx context.Context, pipe redis.Pipeliner, roomID string) [3]*redis.IntCmd {
	return [3]*redis.IntCmd{
		pipe.LLen(ctx, domain.SequenceKey(roomID, domain.PropertyWriters)),
		pipe.LLen(ctx, domain.SequenceKey(roomID, domain.PropertyMessages)),
		pipe.LLen(ctx, domain.SequenceKey(roomID, domain.PropertyDates)),
	}
}

func misaligned(roomID string, l Lengths) error {
	return errprocess.Wrap(errprocess.KindStore,
		fmt.Errorf("%w: writers=%d messages=%d dates=%d", ErrMisaligned, l.Writers, l.Messages, l.Dates),
		"room "+roomID+" is corrupted")
}
