package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Variant selects one of the two deployed flavours of the application.
type Variant string

const (
	// VariantClassic stores uploads in upload/ and synthesized speech in audio/.
	VariantClassic Variant = "classic"
	// VariantSentiment adds sentiment scoring and uses the uploads/ layout.
	VariantSentiment Variant = "sentiment"
)

// Provider names accepted by the speech settings
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	Environment  string        `yaml:"environment"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	MaxUploadMB  int64         `yaml:"max_upload_mb"`
}

// StorageConfig holds the flat-file directories
type StorageConfig struct {
	UploadDir       string `yaml:"upload_dir"`
	AudioDir        string `yaml:"audio_dir"`
	SynthesisPrefix string `yaml:"synthesis_prefix"`
}

// SpeechConfig holds cloud adapter selection and the fixed request parameters
type SpeechConfig struct {
	STTProvider       string  `yaml:"stt_provider"`
	TTSProvider       string  `yaml:"tts_provider"`
	SentimentProvider string  `yaml:"sentiment_provider"`
	LanguageCode      string  `yaml:"language_code"`
	SampleRateHertz   int32   `yaml:"sample_rate_hertz"`
	Encoding          string  `yaml:"encoding"`
	VoiceGender       string  `yaml:"voice_gender"`
	NeutralThreshold  float32 `yaml:"neutral_threshold"`
	OpenAIVoice       string  `yaml:"openai_voice"`
	GeminiModel       string  `yaml:"gemini_model"`
}

// Config is the immutable application configuration built once at startup
type Config struct {
	Variant    Variant       `yaml:"variant"`
	SecretKey  string        `yaml:"secret_key"`
	ScriptPath string        `yaml:"script_path"`
	Server     ServerConfig  `yaml:"server"`
	Storage    StorageConfig `yaml:"storage"`
	Speech     SpeechConfig  `yaml:"speech"`
	Keys       APIKeys       `yaml:"-"`
}

// SentimentEnabled reports whether the sentiment adapter takes part in requests
func (c *Config) SentimentEnabled() bool {
	return c.Variant == VariantSentiment
}

// Default returns the configuration for the given variant with every default filled in
func Default(variant Variant) *Config {
	cfg := &Config{
		Variant:   variant,
		SecretKey: "convai-dev-secret",
		Server: ServerConfig{
			Host:         "",
			Port:         "5000",
			Environment:  "development",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 2 * time.Minute,
			IdleTimeout:  2 * time.Minute,
			MaxUploadMB:  32,
		},
		Speech: SpeechConfig{
			STTProvider:     ProviderGoogle,
			TTSProvider:     ProviderGoogle,
			LanguageCode:    "en-US",
			SampleRateHertz: 24000,
			VoiceGender:     "NEUTRAL",
			OpenAIVoice:     "alloy",
			GeminiModel:     "gemini-2.0-flash",
		},
	}

	switch variant {
	case VariantSentiment:
		cfg.Storage = StorageConfig{
			UploadDir:       "uploads/text_files",
			AudioDir:        "uploads/audio_files",
			SynthesisPrefix: "synth_audio_",
		}
		cfg.Speech.Encoding = "LINEAR16"
		cfg.Speech.SentimentProvider = ProviderGoogle
	default:
		cfg.Storage = StorageConfig{
			UploadDir:       "upload",
			AudioDir:        "audio",
			SynthesisPrefix: "tts_",
		}
		cfg.Speech.Encoding = "MP3"
	}

	return cfg
}

// Load builds the configuration: variant defaults, then the optional YAML file at
// path, then environment overrides. The result is validated before it is returned.
func Load(path string) (*Config, error) {
	variant := Variant(strings.TrimSpace(os.Getenv("CONVAI_VARIANT")))

	var file *Config
	if path != "" {
		data, err := os.ReadFile(os.ExpandEnv(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		file = &Config{}
		if err := yaml.Unmarshal(data, file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if variant == "" {
			variant = file.Variant
		}
	}
	if variant == "" {
		variant = VariantClassic
	}

	cfg := Default(variant)
	if file != nil {
		cfg.merge(file)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	keys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}
	cfg.Keys = *keys

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies every non-zero field of the YAML document over the defaults
func (c *Config) merge(f *Config) {
	setString(&c.SecretKey, f.SecretKey)
	setString(&c.ScriptPath, f.ScriptPath)

	setString(&c.Server.Host, f.Server.Host)
	setString(&c.Server.Port, f.Server.Port)
	setString(&c.Server.Environment, f.Server.Environment)
	setDuration(&c.Server.ReadTimeout, f.Server.ReadTimeout)
	setDuration(&c.Server.WriteTimeout, f.Server.WriteTimeout)
	setDuration(&c.Server.IdleTimeout, f.Server.IdleTimeout)
	if f.Server.MaxUploadMB > 0 {
		c.Server.MaxUploadMB = f.Server.MaxUploadMB
	}

	setString(&c.Storage.UploadDir, f.Storage.UploadDir)
	setString(&c.Storage.AudioDir, f.Storage.AudioDir)
	setString(&c.Storage.SynthesisPrefix, f.Storage.SynthesisPrefix)

	setString(&c.Speech.STTProvider, f.Speech.STTProvider)
	setString(&c.Speech.TTSProvider, f.Speech.TTSProvider)
	setString(&c.Speech.SentimentProvider, f.Speech.SentimentProvider)
	setString(&c.Speech.LanguageCode, f.Speech.LanguageCode)
	setString(&c.Speech.Encoding, f.Speech.Encoding)
	setString(&c.Speech.VoiceGender, f.Speech.VoiceGender)
	setString(&c.Speech.OpenAIVoice, f.Speech.OpenAIVoice)
	setString(&c.Speech.GeminiModel, f.Speech.GeminiModel)
	if f.Speech.SampleRateHertz != 0 {
		c.Speech.SampleRateHertz = f.Speech.SampleRateHertz
	}
	if f.Speech.NeutralThreshold != 0 {
		c.Speech.NeutralThreshold = f.Speech.NeutralThreshold
	}
}

func (c *Config) applyEnv() error {
	setString(&c.SecretKey, os.Getenv("CONVAI_SECRET_KEY"))
	setString(&c.ScriptPath, os.Getenv("CONVAI_SCRIPT_PATH"))
	setString(&c.Server.Host, os.Getenv("CONVAI_HOST"))
	setString(&c.Server.Port, os.Getenv("CONVAI_PORT"))
	setString(&c.Server.Environment, os.Getenv("CONVAI_ENV"))
	setString(&c.Storage.UploadDir, os.Getenv("CONVAI_UPLOAD_DIR"))
	setString(&c.Storage.AudioDir, os.Getenv("CONVAI_AUDIO_DIR"))
	setString(&c.Speech.STTProvider, os.Getenv("CONVAI_STT_PROVIDER"))
	setString(&c.Speech.TTSProvider, os.Getenv("CONVAI_TTS_PROVIDER"))
	setString(&c.Speech.SentimentProvider, os.Getenv("CONVAI_SENTIMENT_PROVIDER"))
	setString(&c.Speech.LanguageCode, os.Getenv("CONVAI_LANGUAGE_CODE"))
	setString(&c.Speech.Encoding, os.Getenv("CONVAI_ENCODING"))

	if v := strings.TrimSpace(os.Getenv("CONVAI_SAMPLE_RATE_HERTZ")); v != "" {
		rate, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid CONVAI_SAMPLE_RATE_HERTZ %q: %w", v, err)
		}
		c.Speech.SampleRateHertz = int32(rate)
	}
	if v := strings.TrimSpace(os.Getenv("CONVAI_NEUTRAL_THRESHOLD")); v != "" {
		threshold, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("invalid CONVAI_NEUTRAL_THRESHOLD %q: %w", v, err)
		}
		c.Speech.NeutralThreshold = float32(threshold)
	}
	if v := strings.TrimSpace(os.Getenv("CONVAI_MAX_UPLOAD_MB")); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid CONVAI_MAX_UPLOAD_MB %q: %w", v, err)
		}
		c.Server.MaxUploadMB = size
	}
	return nil
}

// Validate checks the configuration for values the application cannot run with
func (c *Config) Validate() error {
	switch c.Variant {
	case VariantClassic, VariantSentiment:
	default:
		return fmt.Errorf("unknown variant %q (want %q or %q)", c.Variant, VariantClassic, VariantSentiment)
	}

	if strings.TrimSpace(c.Storage.UploadDir) == "" {
		return fmt.Errorf("upload directory must be set")
	}
	if strings.TrimSpace(c.Storage.AudioDir) == "" {
		return fmt.Errorf("audio directory must be set")
	}
	if c.Speech.SampleRateHertz <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.Speech.SampleRateHertz)
	}
	if c.Speech.NeutralThreshold < 0 || c.Speech.NeutralThreshold >= 1 {
		return fmt.Errorf("neutral threshold must be in [0, 1), got %v", c.Speech.NeutralThreshold)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	if err := ValidateTimeout(c.Server.ReadTimeout, "read"); err != nil {
		return err
	}
	if err := ValidateTimeout(c.Server.WriteTimeout, "write"); err != nil {
		return err
	}

	if err := c.validateProvider("stt", c.Speech.STTProvider, ProviderGoogle, ProviderOpenAI); err != nil {
		return err
	}
	if err := c.validateProvider("tts", c.Speech.TTSProvider, ProviderGoogle, ProviderOpenAI); err != nil {
		return err
	}
	if c.SentimentEnabled() {
		if err := c.validateProvider("sentiment", c.Speech.SentimentProvider, ProviderGoogle, ProviderGemini); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateProvider(kind, name string, allowed ...string) error {
	for _, a := range allowed {
		if name != a {
			continue
		}
		switch name {
		case ProviderOpenAI:
			return ValidateAPIKey(c.Keys.OpenAI, "OpenAI")
		case ProviderGemini:
			return ValidateAPIKey(c.Keys.Gemini, "Gemini")
		}
		return nil
	}
	return fmt.Errorf("unknown %s provider %q (allowed: %s)", kind, name, strings.Join(allowed, ", "))
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v > 0 {
		*dst = v
	}
}
