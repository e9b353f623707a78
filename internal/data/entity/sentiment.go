package entity

import "strings"

// Sentiment is the closed set of labels a stored review can carry.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// ParseSentiment normalises a classifier label. Labels are matched
// case-insensitively by substring; anything unrecognised is Neutral.
func ParseSentiment(label string) Sentiment {
	lower := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(lower, "positive"):
		return SentimentPositive
	case strings.Contains(lower, "negative"):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func (s Sentiment) String() string {
	return string(s)
}

// Class is the display style of the sentiment: positive, negative or neutral.
func (s Sentiment) Class() string {
	return strings.ToLower(string(ParseSentiment(string(s))))
}
