package tokenize

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Mode selects the tokenizer implementation.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeProse Mode = "prose"
	ModeRegex Mode = "regex"
)

// Select builds the tokenizer for mode. Auto and prose both probe the prose
// model and degrade to the regex tokenizer with a warning when it is
// unavailable.
func Select(mode Mode, logger logrus.FieldLogger) (Tokenizer, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	switch mode {
	case ModeRegex:
		return NewRegexTokenizer(), nil
	case ModeAuto, ModeProse, "":
		tok, err := NewProseTokenizer()
		if err != nil {
			logger.WithError(err).Warn("linguistic model unavailable, using regex tokenizer")
			return NewRegexTokenizer(), nil
		}
		return tok, nil
	}
	return nil, fmt.Errorf("unknown tokenizer mode %q", mode)
}
