package pendingStore

import (
	"context"
	"fmt"
	"time"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

var log = logger.GetOrCreate("storage/pendingStore")

const scanBatchSize = 100

// ArgsRedisPersister holds the arguments needed to create a new redis persister
type ArgsRedisPersister struct {
	Client           redis.UniversalClient
	KeyPrefix        string
	TTL              time.Duration
	OperationTimeout time.Duration
}

type redisPersister struct {
	client           redis.UniversalClient
	keyPrefix        string
	ttl              time.Duration
	operationTimeout time.Duration
}

// NewRedisPersister creates a pending records persister backed by redis. Records are msgpack encoded, one key
// per record. A zero TTL keeps the records until they are removed.
func NewRedisPersister(args ArgsRedisPersister) (*redisPersister, error) {
	if args.Client == nil {
		return nil, ErrNilRedisClient
	}
	if len(args.KeyPrefix) == 0 {
		return nil, ErrEmptyKeyPrefix
	}
	if args.OperationTimeout <= 0 {
		return nil, ErrInvalidOperationTimeout
	}

	return &redisPersister{
		client:           args.Client,
		keyPrefix:        args.KeyPrefix,
		ttl:              args.TTL,
		operationTimeout: args.OperationTimeout,
	}, nil
}

// Save stores or overwrites the record
func (rp *redisPersister) Save(record *pending.Record) error {
	if record == nil {
		return nil
	}

	buff, err := msgpack.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), rp.operationTimeout)
	defer cancel()

	return rp.client.Set(ctx, rp.key(record.TxID), buff, rp.ttl).Err()
}

// Remove deletes the record, a missing record is not an error
func (rp *redisPersister) Remove(txID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), rp.operationTimeout)
	defer cancel()

	return rp.client.Del(ctx, rp.key(txID)).Err()
}

// LoadAll returns every stored record. Undecodable entries are skipped.
func (rp *redisPersister) LoadAll() ([]*pending.Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rp.operationTimeout)
	defer cancel()

	keys := make([]string, 0)
	iter := rp.client.Scan(ctx, 0, rp.keyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	err := iter.Err()
	if err != nil {
		return nil, err
	}

	records := make([]*pending.Record, 0, len(keys))
	if len(keys) == 0 {
		return records, nil
	}

	values, err := rp.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, value := range values {
		record, errDecode := decodeRecord(value)
		if errDecode != nil {
			log.Warn("skipping persisted pending record", "key", keys[i], "error", errDecode)
			continue
		}
		if record == nil {
			continue
		}

		records = append(records, record)
	}

	log.Debug("loaded persisted pending records", "num", len(records))

	return records, nil
}

func decodeRecord(value interface{}) (*pending.Record, error) {
	var buff []byte
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		buff = []byte(v)
	case []byte:
		buff = v
	default:
		return nil, fmt.Errorf("unexpected value type %T", value)
	}

	record := &pending.Record{}
	err := msgpack.Unmarshal(buff, record)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (rp *redisPersister) key(txID string) string {
	return rp.keyPrefix + txID
}

// IsInterfaceNil returns true if there is no value under the interface
func (rp *redisPersister) IsInterfaceNil() bool {
	return rp == nil
}
