package service

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cliptrim/api/internal/metrics"
	"github.com/cliptrim/api/internal/model"
	"github.com/cliptrim/api/internal/storage"
	"github.com/cliptrim/api/internal/transcoder"
	"github.com/cliptrim/api/pkg/logger"
)

// VideoFetcher downloads a remote video to a local path.
type VideoFetcher interface {
	DownloadToFile(ctx context.Context, url, dest string) (int64, error)
}

// VideoTrimmer runs one trim-and-fade transcode pass.
type VideoTrimmer interface {
	Trim(ctx context.Context, spec transcoder.TrimSpec) error
}

// TrimService is the per-request trim pipeline: fetch, transcode, relocate
// into storage, report the public URL.
type TrimService struct {
	store   *storage.Store
	fetcher VideoFetcher
	trimmer VideoTrimmer
	tempDir string
	baseURL string
}

func NewTrimService(store *storage.Store, fetcher VideoFetcher, trimmer VideoTrimmer, tempDir, baseURL string) *TrimService {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &TrimService{
		store:   store,
		fetcher: fetcher,
		trimmer: trimmer,
		tempDir: tempDir,
		baseURL: baseURL,
	}
}

// Trim runs the whole pipeline for one request. Temp files are scoped to
// this call: whatever the outcome, none survive it. The storage directory
// only ever receives a fully transcoded file via the final relocation.
func (s *TrimService) Trim(ctx context.Context, p model.TrimParams) (*model.TrimResponse, error) {
	started := time.Now()

	jobID := uuid.New().String()
	inputPath := filepath.Join(s.tempDir, jobID+"_input.mp4")
	outputPath := filepath.Join(s.tempDir, jobID+"_output.mp4")
	finalName := jobID + ".mp4"

	log := logger.Log.With(zap.String("job_id", jobID))
	log.Info("downloading source video", zap.String("url", p.VideoURL))

	n, err := s.fetcher.DownloadToFile(ctx, p.VideoURL, inputPath)
	if err != nil {
		s.discard(log, inputPath, outputPath)
		metrics.TrimsTotal.WithLabelValues("fetch_error").Inc()
		return nil, err
	}
	log.Info("downloaded source video", zap.Int64("bytes", n))

	log.Info("trimming video",
		zap.Float64("start", p.Start),
		zap.Float64("end", p.End),
		zap.Float64("fade", p.Fade),
	)
	err = s.trimmer.Trim(ctx, transcoder.TrimSpec{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Start:      p.Start,
		End:        p.End,
		Fade:       p.Fade,
	})
	if err != nil {
		s.discard(log, inputPath, outputPath)
		metrics.TrimsTotal.WithLabelValues("transcode_error").Inc()
		return nil, err
	}

	if err := s.store.Put(outputPath, finalName); err != nil {
		s.discard(log, inputPath, outputPath)
		metrics.TrimsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	s.discard(log, inputPath)

	metrics.TrimsTotal.WithLabelValues("success").Inc()
	metrics.TrimDuration.Observe(time.Since(started).Seconds())
	if count, err := s.store.Count(); err == nil {
		metrics.VideosStored.Set(float64(count))
	}

	videoURL := s.baseURL + "/video/" + finalName
	log.Info("video stored", zap.String("video_url", videoURL), zap.Duration("took", time.Since(started)))

	return &model.TrimResponse{
		Success:  true,
		VideoURL: videoURL,
		Message:  "Video trimmed and hosted successfully",
	}, nil
}

// discard best-effort removes temp files. Failures are logged and swallowed
// so they never mask the error that triggered the cleanup.
func (s *TrimService) discard(log *zap.Logger, paths ...string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Warn("failed to remove temp file", zap.String("path", p), zap.Error(err))
		}
	}
}
