package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	testCases := []struct {
		name      string
		score     float32
		threshold float32
		expected  string
	}{
		{"zero is negative", 0.0, 0, LabelNegative},
		{"small positive", 0.3, 0, LabelPositive},
		{"tiny positive", 0.0001, 0, LabelPositive},
		{"negative", -0.8, 0, LabelNegative},
		{"inside neutral band", 0.1, 0.25, LabelNeutral},
		{"zero inside neutral band", 0.0, 0.25, LabelNeutral},
		{"negative inside neutral band", -0.2, 0.25, LabelNeutral},
		{"above neutral band", 0.3, 0.25, LabelPositive},
		{"below neutral band", -0.25, 0.25, LabelNegative},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Label(tc.score, tc.threshold))
		})
	}
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Sentiment: positive, Magnitude: 0.6, Score: 0.3",
		Summary(Sentiment{Score: 0.3, Magnitude: 0.6}, 0))
	assert.Equal(t, "Sentiment: negative, Magnitude: 0, Score: 0",
		Summary(Sentiment{}, 0))

	s := Summary(Sentiment{Score: -0.5, Magnitude: 1.25}, 0)
	assert.Contains(t, s, "Magnitude: 1.25")
	assert.Contains(t, s, "Score: -0.5")
}
