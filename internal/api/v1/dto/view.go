package dto

import "convai/internal/config"

// RouteSet holds the URLs the page links to. Both sets are always served; the
// variant decides which one the page uses.
type RouteSet struct {
	Upload     string
	UploadFile string
	Synthesize string
	AudioFile  string
	Script     string
}

var (
	ClassicRoutes = RouteSet{
		Upload:     "/upload",
		UploadFile: "/upload/",
		Synthesize: "/upload_text",
		AudioFile:  "/tts/",
		Script:     "/script.js",
	}
	SentimentRoutes = RouteSet{
		Upload:     "/upload_audio",
		UploadFile: "/text/",
		Synthesize: "/text_to_speech",
		AudioFile:  "/audio/",
		Script:     "/scripts.js",
	}
)

// RoutesFor returns the route set linked from the page for variant
func RoutesFor(variant config.Variant) RouteSet {
	if variant == config.VariantSentiment {
		return SentimentRoutes
	}
	return ClassicRoutes
}

// IndexView is the data rendered by the index template
type IndexView struct {
	Files         []string
	Audios        []string
	Flashes       []string
	Transcription string
	Sentiment     string
	Routes        RouteSet
}
