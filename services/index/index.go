package index

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fmendezl/boolfind/db/indexdb"
	"github.com/fmendezl/boolfind/db/kvdb"
	"github.com/fmendezl/boolfind/logger"
	"github.com/fmendezl/boolfind/services/corpus"
)

const (
	ProgressStatusStarted  = 0
	ProgressStatusParsed   = 10
	ProgressStatusComplete = 100
	ProgressStatusFailed   = -1
)

const (
	metaKeyFingerprint = "corpus_fingerprint"
	metaKeyDocCount    = "doc_count"
	metaKeyBuiltAt     = "built_at"
	metaKeySnapshot    = "snapshot"
)

var ErrBuildInProgress = errors.New("indexing already in progress")

type Service struct {
	logger   logger.Logger
	store    indexdb.DB
	metadata MetadataStore
	buildC   chan buildRequest
}

type buildRequest struct {
	corpusPath string
	requestID  string
}

func New(ctx context.Context, logger logger.Logger, store indexdb.DB, metadata MetadataStore) *Service {
	indexService := &Service{
		logger:   logger,
		store:    store,
		metadata: metadata,
		buildC:   make(chan buildRequest),
	}

	go indexService.run(ctx)
	return indexService
}

// Bootstrap makes the index available at startup: if the persisted snapshot
// matches the current corpus file it is restored in place, otherwise a
// background rebuild is started. Returns the rebuild request ID, or "" when
// the snapshot was restored.
func (s *Service) Bootstrap(corpusPath string) (string, error) {
	if err := s.restoreSnapshot(corpusPath); err == nil {
		s.logger.Info("restored index from snapshot", "docs", s.store.DocCount())
		return "", nil
	} else {
		s.logger.Info("could not restore index snapshot, rebuilding", "reason", err.Error())
	}

	requestID := uuid.New().String()
	if err := s.Build(corpusPath, requestID); err != nil {
		return "", err
	}
	return requestID, nil
}

// Build queues a full index rebuild. Only one build runs at a time; a build
// requested while another is running is rejected rather than queued.
func (s *Service) Build(corpusPath string, requestID string) error {

	s.setRequestStatus(requestID, ProgressStatusStarted)

	select {
	case s.buildC <- buildRequest{corpusPath: corpusPath, requestID: requestID}:
		return nil
	default:
		s.logger.Warn("request to index while indexing is already in progress")
		return ErrBuildInProgress
	}
}

// GetStatus retrieves the progress status for an index build request.
func (s *Service) GetStatus(requestID string) (int, error) {
	value, err := s.metadata.Get(kvdb.RequestsBucket, requestID)
	if err != nil {
		return 0, fmt.Errorf("request not found: %w", err)
	}

	status, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid status value: %w", err)
	}

	return status, nil
}

// ListRequests returns the IDs of all index build requests seen so far.
func (s *Service) ListRequests() ([]string, error) {
	requestIDs, err := s.metadata.GetAllKeys(kvdb.RequestsBucket)
	if err != nil {
		return nil, fmt.Errorf("could not list build requests: %w", err)
	}

	return requestIDs, nil
}

func (s *Service) run(ctx context.Context) {
	for {
		select {
		case req := <-s.buildC:
			s.buildIndex(req.corpusPath, req.requestID)
		case <-ctx.Done():
			s.logger.Info("index service stopped", "reason", ctx.Err())
			return
		}
	}
}

func (s *Service) buildIndex(corpusPath string, requestID string) {
	s.logger.Info("building index from corpus", "path", corpusPath, "request_id", requestID)

	documents, err := corpus.Load(s.logger, corpusPath)
	if err != nil {
		s.logger.Error("failed to load corpus", "request_id", requestID, "err", err.Error())
		s.setRequestStatus(requestID, ProgressStatusFailed)
		return
	}
	s.setRequestStatus(requestID, ProgressStatusParsed)

	if err := s.store.BuildIndex(documents); err != nil {
		s.logger.Error("failed to build index", "request_id", requestID, "err", err.Error())
		s.setRequestStatus(requestID, ProgressStatusFailed)
		return
	}

	// Snapshot persistence is best-effort: a failure costs a rebuild on the
	// next startup, not correctness.
	if err := s.persistSnapshot(corpusPath); err != nil {
		s.logger.Warn("failed to persist index snapshot", "err", err.Error())
	}

	s.setRequestStatus(requestID, ProgressStatusComplete)
	s.logger.Info("finished building index", "request_id", requestID, "docs", len(documents))
}

func (s *Service) persistSnapshot(corpusPath string) error {
	fingerprint, err := corpusFingerprint(corpusPath)
	if err != nil {
		return err
	}

	snapshot, err := s.store.Snapshot()
	if err != nil {
		return err
	}

	if err := s.metadata.Set(kvdb.MetaBucket, metaKeySnapshot, string(snapshot)); err != nil {
		return err
	}
	if err := s.metadata.Set(kvdb.MetaBucket, metaKeyFingerprint, fingerprint); err != nil {
		return err
	}
	if err := s.metadata.Set(kvdb.MetaBucket, metaKeyDocCount, strconv.Itoa(s.store.DocCount())); err != nil {
		return err
	}
	return s.metadata.Set(kvdb.MetaBucket, metaKeyBuiltAt, time.Now().UTC().Format(time.RFC3339))
}

func (s *Service) restoreSnapshot(corpusPath string) error {
	fingerprint, err := corpusFingerprint(corpusPath)
	if err != nil {
		return err
	}

	storedFingerprint, err := s.metadata.Get(kvdb.MetaBucket, metaKeyFingerprint)
	if err != nil {
		return err
	}
	if storedFingerprint != fingerprint {
		return errors.New("corpus changed since last build")
	}

	snapshot, err := s.metadata.Get(kvdb.MetaBucket, metaKeySnapshot)
	if err != nil {
		return err
	}

	if err := s.store.Restore([]byte(snapshot)); err != nil {
		// A snapshot that cannot be restored is useless, drop it.
		if deleteErr := s.metadata.Delete(kvdb.MetaBucket, metaKeySnapshot); deleteErr != nil {
			s.logger.Error("failed to delete corrupt index snapshot", "err", deleteErr.Error())
		}
		return err
	}

	return nil
}

func (s *Service) setRequestStatus(requestID string, status int) {
	if err := s.metadata.Set(kvdb.RequestsBucket, requestID, strconv.Itoa(status)); err != nil {
		s.logger.Error("failed to update request status", "request_id", requestID, "status", status, "err", err.Error())
	}
}

func corpusFingerprint(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open corpus file %s: %w", path, err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("could not hash corpus file %s: %w", path, err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
