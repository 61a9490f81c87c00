package pipeline

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"convai/internal/app/storage"
)

// Progress receives one call per processed recording
type Progress interface {
	Start(total int)
	Done(name string, err error)
}

type noProgress struct{}

func (noProgress) Start(int)          {}
func (noProgress) Done(string, error) {}

// BackfillResult counts the recordings visited by Backfill
type BackfillResult struct {
	Transcribed []string
	Failed      []string
}

// Pending lists the recordings in the upload directory without a sidecar
func (p *Pipeline) Pending() ([]string, error) {
	names, err := p.uploads.List()
	if err != nil {
		return nil, err
	}
	return lo.Filter(names, func(name string, _ int) bool {
		return storage.IsAudio(name) && !p.uploads.Exists(storage.SidecarName(name))
	}), nil
}

// Backfill transcribes every pending recording one at a time. A recording whose
// transcription fails is reported as failed and gets no sidecar, so the next run
// picks it up again. Context cancellation stops the run between recordings.
func (p *Pipeline) Backfill(ctx context.Context, progress Progress) (*BackfillResult, error) {
	if progress == nil {
		progress = noProgress{}
	}

	pending, err := p.Pending()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending recordings: %w", err)
	}
	progress.Start(len(pending))

	result := &BackfillResult{}
	for _, name := range pending {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := p.backfillOne(ctx, name)
		progress.Done(name, err)
		if err != nil {
			p.logger.Warn("backfill failed", zap.String("file", name), zap.Error(err))
			result.Failed = append(result.Failed, name)
			continue
		}
		result.Transcribed = append(result.Transcribed, name)
	}

	p.logger.Info("backfill finished",
		zap.Int("transcribed", len(result.Transcribed)),
		zap.Int("failed", len(result.Failed)))
	return result, nil
}

func (p *Pipeline) backfillOne(ctx context.Context, name string) error {
	data, err := p.uploads.Read(name)
	if err != nil {
		return err
	}
	transcript, err := p.stt.Transcribe(ctx, data)
	if err != nil {
		return fmt.Errorf("transcription failed for %s: %w", name, err)
	}
	_, err = p.record(ctx, name, transcript)
	return err
}
