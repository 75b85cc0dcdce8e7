package dialect

import (
	"encoding/json"
	"fmt"
	"strings"

	"omnicode/internal/lang"
	"omnicode/internal/lexer"
	"omnicode/internal/token"
)

// Classification is the result of scoring evidence for a buffer.
type Classification struct {
	Lang            lang.ID
	Score           int
	TotalScore      int
	Confidence      float64
	RunnerUp        lang.ID
	RunnerUpScore   int
	ObservedSignals int
}

func (c Classification) String() string {
	if c.Lang == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s (score %d, %.0f%%)", c.Lang.Name(), c.Score, c.Confidence*100)
}

// Classifier scores evidence and chooses a dominant language.
// MinScore and MinConfidence gate Guess; the zero value uses 4 and 0.4.
type Classifier struct {
	MinScore      int
	MinConfidence float64
}

// Classify sums hint scores per language. Ties go to the language that
// sorts first, so the result is deterministic.
func (Classifier) Classify(e *Evidence) Classification {
	hints := e.Hints()
	if len(hints) == 0 {
		return Classification{}
	}
	scores := make(map[lang.ID]int)
	total := 0
	for _, h := range hints {
		if h.Score <= 0 || h.Lang == "" {
			continue
		}
		scores[h.Lang] += h.Score
		total += h.Score
	}

	var best, runner lang.ID
	bestScore, runnerScore := 0, 0
	for _, id := range lang.Known() {
		score := scores[id]
		if score > bestScore {
			runner, runnerScore = best, bestScore
			best, bestScore = id, score
			continue
		}
		if score > runnerScore {
			runner, runnerScore = id, score
		}
	}

	conf := 0.0
	if total > 0 {
		conf = float64(bestScore) / float64(total)
	}
	return Classification{
		Lang:            best,
		Score:           bestScore,
		TotalScore:      total,
		Confidence:      conf,
		RunnerUp:        runner,
		RunnerUpScore:   runnerScore,
		ObservedSignals: len(hints),
	}
}

// Collect gathers evidence over text.
func Collect(text string) *Evidence {
	e := NewEvidence()
	trimmed := strings.TrimSpace(text)
	if (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) && json.Valid([]byte(trimmed)) {
		e.Add(Hint{Lang: lang.JSON, Score: 20, Reason: "valid JSON document", Line: 1})
	}
	// таблицы JavaScript дают достаточно слов для большинства языков
	for i, toks := range lexer.Tokenize(text, lang.JavaScript) {
		line := i + 1
		var prev token.Token
		for _, tok := range toks {
			if tok.Kind == token.Whitespace {
				continue
			}
			if tok.IsWord() {
				RecordWord(e, tok.Text, line)
			}
			ObserveTokenPair(e, prev, tok, line)
			prev = tok
		}
	}
	for i, line := range strings.Split(text, "\n") {
		ObserveLine(e, line, i+1)
	}
	return e
}

// Guess classifies text and reports whether the winner clears the
// classifier's thresholds.
func (c Classifier) Guess(text string) (Classification, bool) {
	res := c.Classify(Collect(text))
	minScore, minConf := c.MinScore, c.MinConfidence
	if minScore <= 0 {
		minScore = 4
	}
	if minConf <= 0 {
		minConf = 0.4
	}
	ok := res.Lang != "" && res.Score >= minScore && res.Confidence >= minConf
	return res, ok
}

// Guess uses the default Classifier.
func Guess(text string) (Classification, bool) {
	return Classifier{}.Guess(text)
}
