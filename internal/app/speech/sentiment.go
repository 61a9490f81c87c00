package speech

import "fmt"

// Sentiment labels
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Sentiment is a document level sentiment score.
// Score is in [-1, 1]; Magnitude is the unbounded overall emotional strength.
type Sentiment struct {
	Score     float32
	Magnitude float32
}

// Label maps a score to a coarse label. A score strictly greater than zero is
// positive and anything else negative. With a positive neutralThreshold, scores
// whose absolute value is below the threshold are neutral instead.
func Label(score, neutralThreshold float32) string {
	if neutralThreshold > 0 && score > -neutralThreshold && score < neutralThreshold {
		return LabelNeutral
	}
	if score > 0 {
		return LabelPositive
	}
	return LabelNegative
}

// Summary renders the one line sentiment summary appended to transcripts
func Summary(s Sentiment, neutralThreshold float32) string {
	return fmt.Sprintf("Sentiment: %s, Magnitude: %v, Score: %v",
		Label(s.Score, neutralThreshold), s.Magnitude, s.Score)
}
