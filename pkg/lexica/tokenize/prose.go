package tokenize

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

const probeSentence = "The quick brown fox jumps over the lazy dog."

// ProseTokenizer segments and tags text with prose's sentence boundary
// detector and averaged perceptron tagger.
type ProseTokenizer struct {
	fallback *RegexTokenizer
}

// NewProseTokenizer loads the prose model and runs a probe sentence through
// it. An error means the model is unusable.
func NewProseTokenizer() (*ProseTokenizer, error) {
	if err := probeProse(); err != nil {
		return nil, err
	}
	return &ProseTokenizer{fallback: NewRegexTokenizer()}, nil
}

func probeProse() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("prose model panic: %v", r)
		}
	}()
	doc, err := prose.NewDocument(probeSentence, prose.WithExtraction(false))
	if err != nil {
		return fmt.Errorf("prose probe: %w", err)
	}
	if len(doc.Tokens()) == 0 {
		return fmt.Errorf("prose probe produced no tokens")
	}
	return nil
}

func (p *ProseTokenizer) Name() string { return "prose" }

func (p *ProseTokenizer) Tagged() bool { return true }

// Sentences segments text, then tags each sentence independently so token
// positions stay sentence-relative.
func (p *ProseTokenizer) Sentences(text string) []Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return p.fallback.Sentences(text)
	}

	var out []Sentence
	cursor := 0
	for _, s := range doc.Sentences() {
		body := strings.TrimSpace(s.Text)
		if body == "" {
			continue
		}
		start, end := -1, -1
		if idx := strings.Index(text[cursor:], body); idx >= 0 {
			start = cursor + idx
			end = start + len(body)
			cursor = end
		}
		out = append(out, Sentence{
			Text:   body,
			Start:  start,
			End:    end,
			Tokens: p.tag(body),
		})
	}
	return out
}

func (p *ProseTokenizer) tag(sentence string) []Token {
	doc, err := prose.NewDocument(sentence, prose.WithSegmentation(false), prose.WithExtraction(false))
	if err != nil {
		return whitespaceTokens(sentence)
	}
	raw := doc.Tokens()
	tokens := make([]Token, 0, len(raw))
	for _, tok := range raw {
		if tok.Text == "" {
			continue
		}
		tokens = append(tokens, Token{
			Text:  tok.Text,
			POS:   FromPenn(tok.Tag),
			Index: len(tokens),
		})
	}
	return tokens
}
