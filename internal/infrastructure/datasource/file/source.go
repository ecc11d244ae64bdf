package file

import (
	"context"
	"io"
	"os"
	"sort"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/icarogtavares/counter-strike/internal/domain/event"
	"github.com/icarogtavares/counter-strike/internal/domain/match"
	"github.com/icarogtavares/counter-strike/internal/platform/logging"
)

const defaultMaxWorkers = 4

var errNotLoaded = crerr.New("corpus not loaded")

type Config struct {
	// Paths are the JSON shard files making up the corpus.
	Paths      []string
	MaxWorkers int
	Logger     *logging.Logger
}

// Source reads a static corpus from JSON shard files. Shards are parsed
// concurrently but the assembled corpus keeps shard-path order, so two loads
// of the same files yield identical record sequences. Records that fail
// schema validation are logged and skipped; a shard that cannot be read or
// parsed fails the whole load.
type Source struct {
	paths      []string
	maxWorkers int
	logger     *logging.Logger
	validate   *validator.Validate

	mu      sync.RWMutex
	loaded  bool
	events  []event.Record
	matches []match.Match
}

func NewSource(cfg Config) *Source {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	maxWorkers := cfg.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	paths := append([]string(nil), cfg.Paths...)
	sort.Strings(paths)

	return &Source{
		paths:      paths,
		maxWorkers: maxWorkers,
		logger:     logger,
		validate:   validator.New(),
	}
}

// Load reads every shard. It must complete before Events or Matches are
// served; calling it again re-reads the files.
func (s *Source) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return crerr.Wrap(err, "load corpus")
	}
	if len(s.paths) == 0 {
		return crerr.New("no corpus shard paths configured")
	}

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return crerr.Wrap(err, "create shard worker pool")
	}
	defer pool.Release()

	docs := make([]shardDocument, len(s.paths))
	shardErrs := make([]error, len(s.paths))

	var wg sync.WaitGroup
	for i, path := range s.paths {
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			docs[i], shardErrs[i] = readShard(path)
		}); submitErr != nil {
			wg.Done()
			shardErrs[i] = crerr.Wrapf(submitErr, "submit shard %s", path)
		}
	}
	wg.Wait()

	var loadErr error
	for _, shardErr := range shardErrs {
		loadErr = crerr.CombineErrors(loadErr, shardErr)
	}
	if loadErr != nil {
		return loadErr
	}

	var events []event.Record
	var matches []match.Match
	for i, doc := range docs {
		path := s.paths[i]
		for _, rec := range doc.Events {
			if err := s.validate.Struct(rec); err != nil {
				s.logger.Warn("skipping invalid event record",
					"shard", path, "event_id", rec.EventID, "error", err)
				continue
			}
			events = append(events, rec.toRecord())
		}
		for _, rec := range doc.Matches {
			if err := s.validate.Struct(rec); err != nil {
				s.logger.Warn("skipping invalid match record",
					"shard", path, "start_time", rec.MatchStartTime, "error", err)
				continue
			}
			matches = append(matches, rec.toMatch())
		}
	}

	s.mu.Lock()
	s.events = events
	s.matches = matches
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("corpus loaded from shards",
		"shards", len(s.paths), "events", len(events), "matches", len(matches))
	return nil
}

func (s *Source) Events(_ context.Context) ([]event.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, errNotLoaded
	}
	out := make([]event.Record, 0, len(s.events))
	out = append(out, s.events...)
	return out, nil
}

func (s *Source) Matches(_ context.Context) ([]match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, errNotLoaded
	}
	out := make([]match.Match, 0, len(s.matches))
	out = append(out, s.matches...)
	return out, nil
}

func readShard(path string) (shardDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return shardDocument{}, crerr.Wrapf(err, "open corpus shard %s", path)
	}
	defer f.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := io.Copy(buf, f); err != nil {
		return shardDocument{}, crerr.Wrapf(err, "read corpus shard %s", path)
	}

	var doc shardDocument
	if err := sonic.Unmarshal(buf.Bytes(), &doc); err != nil {
		return shardDocument{}, crerr.Wrapf(err, "parse corpus shard %s", path)
	}
	return doc, nil
}
