// Command simulator is a demo harness that wires a fake upstream, drives the
// cache through a scripted sequence of operations, and logs a summary.
//
// It plays the role of upstream-plus-consumer: for a handful of synthetic
// shards it generates monotonically increasing sequence-numbered records,
// rate-limited per shard (standing in for a real upstream's per-shard
// throughput limits), feeds them into a recordcache.Cache via PutRecords, and
// drives GetRecords scans that stitch across segments, including one shard
// seeded with a sequence number beyond int64 range.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/mtstreams/recordcache"
	"github.com/mtstreams/recordcache/config"
	"github.com/mtstreams/recordcache/internal/shared/rate"
	"github.com/mtstreams/recordcache/internal/telemetry"
	"github.com/mtstreams/recordcache/model"
)

// fakeRecord is a synthetic upstream record: a sequence number and a fixed
// payload size standing in for the real record's wire size.
type fakeRecord struct {
	seq  model.SequenceNumber
	size int64
}

func (r fakeRecord) SequenceNumber() model.SequenceNumber { return r.seq }
func (r fakeRecord) ByteSize() int64                      { return r.size }

const (
	numShards         = 4
	recordsPerFetch   = 20
	fetchesPerShard   = 50
	recordByteSize    = 256
	perShardRateLimit = 200 // records/sec, simulating upstream throughput caps
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := loadConfig(*configPath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	cache := recordcache.New(cfg)

	stop := telemetry.New(cfg.Telemetry, logger, cache, nil).Run(context.Background())
	defer stop()

	shards := make([]model.ShardID, numShards)
	for i := range shards {
		shards[i] = model.ShardID(fmt.Sprintf("shard-%02d", i))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, shardID := range shards {
		simulateShard(ctx, logger, cache, shardID)
	}
	simulateOversizedShard(logger, cache, model.ShardID("shard-oversized"))

	gets, puts, evictions, evictedBytes := cache.Metrics()
	logger.Info().
		Uint64("gets", gets).
		Uint64("puts", puts).
		Uint64("evictions", evictions).
		Uint64("evicted_bytes", evictedBytes).
		Int("shards_remaining", cache.Len()).
		Int64("bytes_cached", cache.Mem()).
		Msg("simulation complete")
}

// simulateShard feeds one shard's worth of synthetic upstream records into
// the cache, rate-limited to perShardRateLimit records/sec via a Jitter,
// then scans the cache back from the beginning to exercise segment
// stitching.
func simulateShard(ctx context.Context, logger zerolog.Logger, cache *recordcache.Cache, shardID model.ShardID) {
	jitter := rate.NewJitter(ctx, perShardRateLimit)

	next := model.NewSequenceNumber(0)
	for i := 0; i < fetchesPerShard; i++ {
		records := make([]model.Record, 0, recordsPerFetch)
		start := next
		for j := 0; j < recordsPerFetch; j++ {
			jitter.Take() // simulated upstream throughput cap
			records = append(records, fakeRecord{seq: next, size: recordByteSize})
			next = next.Next()
		}

		pos := model.NewPosition(shardID, start)
		if err := cache.PutRecords(pos, records); err != nil {
			logger.Error().Err(err).Str("shard", string(shardID)).Msg("putRecords failed")
		}
	}

	got, err := cache.GetRecords(model.NewPosition(shardID, model.NewSequenceNumber(0)), fetchesPerShard*recordsPerFetch)
	if err != nil {
		logger.Error().Err(err).Str("shard", string(shardID)).Msg("getRecords failed")
		return
	}

	resumeAt := model.NewPosition(shardID, model.NewSequenceNumber(0))
	if len(got) > 0 {
		resumeAt = model.After(shardID, got[len(got)-1])
	}

	logger.Info().
		Str("shard", string(shardID)).
		Int("records_fetched", len(got)).
		Str("resume_at", resumeAt.SequenceNumber.String()).
		Msg("shard scan complete")
}

// simulateOversizedShard demonstrates a shard whose upstream sequence
// numbers already exceed int64 — the reason SequenceNumber is backed by
// math/big rather than a machine word.
func simulateOversizedShard(logger zerolog.Logger, cache *recordcache.Cache, shardID model.ShardID) {
	const hugeSeq = "99999999999999999999999999999999999999"

	start, ok := model.SequenceNumberFromString(hugeSeq)
	if !ok {
		logger.Fatal().Str("shard", string(shardID)).Msg("failed to parse oversized sequence number")
	}

	records := []model.Record{fakeRecord{seq: start, size: recordByteSize}}
	pos := model.NewPosition(shardID, start)
	if err := cache.PutRecords(pos, records); err != nil {
		logger.Error().Err(err).Str("shard", string(shardID)).Msg("putRecords failed")
		return
	}

	got, err := cache.GetRecords(pos, 1)
	if err != nil {
		logger.Error().Err(err).Str("shard", string(shardID)).Msg("getRecords failed")
		return
	}

	logger.Info().
		Str("shard", string(shardID)).
		Str("sequence_number", start.String()).
		Int("records_fetched", len(got)).
		Msg("oversized sequence number shard scan complete")
}

func loadConfig(path string, logger zerolog.Logger) (*config.Config, error) {
	if path == "" {
		logger.Info().Msg("no config path given, using defaults")
		return &config.Config{MaxRecordsByteSize: 1 << 20}, nil
	}
	return config.LoadConfig(path)
}
