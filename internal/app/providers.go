// Package app wires configuration, adapters, stores and the web server together.
package app

import (
	"context"

	"go.uber.org/zap"

	"convai/internal/api/server"
	v1routes "convai/internal/api/v1/routes"
	"convai/internal/api/v1/dto"
	"convai/internal/api/v1/services"
	"convai/internal/app/logging"
	"convai/internal/app/pipeline"
	"convai/internal/app/speech"
	"convai/internal/app/storage"
	"convai/internal/config"
)

// Stores are the two flat-file directories of the configured variant
type Stores struct {
	Uploads *storage.Store
	Audio   *storage.Store
}

// Adapters are the cloud clients, built once and shared by every request
type Adapters struct {
	Transcriber speech.Transcriber
	Synthesizer speech.Synthesizer
	Sentiment   speech.SentimentAnalyzer
}

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := logging.NewLogger(cfg.Server.Environment)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideStores(cfg *config.Config) (*Stores, error) {
	uploads, err := storage.NewStore(cfg.Storage.UploadDir)
	if err != nil {
		return nil, err
	}
	audio, err := storage.NewStore(cfg.Storage.AudioDir)
	if err != nil {
		return nil, err
	}
	return &Stores{Uploads: uploads, Audio: audio}, nil
}

// provideAdapters creates the configured providers; the cleanup closes their
// client connections
func provideAdapters(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Adapters, func(), error) {
	stt, err := speech.NewTranscriber(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	tts, err := speech.NewSynthesizer(ctx, cfg)
	if err != nil {
		_ = speech.Close(stt)
		return nil, nil, err
	}
	sentiment, err := speech.NewSentimentAnalyzer(ctx, cfg)
	if err != nil {
		_ = speech.Close(stt)
		_ = speech.Close(tts)
		return nil, nil, err
	}

	logger.Info("speech adapters ready",
		zap.String("stt", cfg.Speech.STTProvider),
		zap.String("tts", cfg.Speech.TTSProvider),
		zap.Bool("sentiment", sentiment != nil),
		zap.Strings("api_keys", cfg.Keys.Available()),
	)

	adapters := &Adapters{Transcriber: stt, Synthesizer: tts, Sentiment: sentiment}
	cleanup := func() {
		for _, a := range []any{stt, tts, sentiment} {
			if err := speech.Close(a); err != nil {
				logger.Warn("failed to close speech client", zap.Error(err))
			}
		}
	}
	return adapters, cleanup, nil
}

func providePipeline(cfg *config.Config, stores *Stores, adapters *Adapters, logger *zap.Logger) *pipeline.Pipeline {
	return pipeline.New(stores.Uploads, stores.Audio,
		adapters.Transcriber, adapters.Synthesizer, adapters.Sentiment,
		pipeline.Options{
			SynthesisPrefix:  cfg.Storage.SynthesisPrefix,
			NeutralThreshold: cfg.Speech.NeutralThreshold,
		}, logger)
}

func provideServiceContainer(cfg *config.Config, p *pipeline.Pipeline, stores *Stores) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		MediaService: services.NewMediaService(p),
		FileService:  services.NewFileService(stores.Uploads, stores.Audio),
		Routes:       dto.RoutesFor(cfg.Variant),
		ScriptPath:   cfg.ScriptPath,
		MaxUploadMB:  cfg.Server.MaxUploadMB,
	}
}

func provideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Environment:  cfg.Server.Environment,
		SecretKey:    cfg.SecretKey,
	}
}
