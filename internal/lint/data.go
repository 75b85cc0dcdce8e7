package lint

import (
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"omnicode/internal/diag"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Data formats get one error diagnostic for the first parse failure.

func checkJSON(b *buffer, r diag.Reporter) {
	var v any
	err := json.Unmarshal([]byte(b.text), &v)
	if err == nil {
		return
	}
	rb := diag.ReportError(r, diag.RuleJSONSyntax, err.Error())
	var serr *json.SyntaxError
	if errors.As(err, &serr) && serr.Offset > 0 {
		line, col := position(b.text, int(serr.Offset)-1)
		rb.At(line, col)
	}
	rb.Emit()
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func checkYAML(b *buffer, r diag.Reporter) {
	dec := yaml.NewDecoder(strings.NewReader(b.text))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			rb := diag.ReportError(r, diag.RuleYAMLSyntax, err.Error())
			if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
				if n, convErr := strconv.Atoi(m[1]); convErr == nil {
					rb.AtLine(n)
				}
			}
			rb.Emit()
			return
		}
	}
}

func checkTOML(b *buffer, r diag.Reporter) {
	var v map[string]any
	_, err := toml.Decode(b.text, &v)
	if err == nil {
		return
	}
	var perr toml.ParseError
	if errors.As(err, &perr) {
		msg := perr.Message
		if msg == "" {
			msg = err.Error()
		}
		rb := diag.ReportError(r, diag.RuleTOMLSyntax, msg)
		if perr.Position.Line > 0 {
			rb.AtLine(perr.Position.Line)
		}
		rb.Emit()
		return
	}
	diag.ReportError(r, diag.RuleTOMLSyntax, err.Error()).Emit()
}

// position converts a byte offset into 1-based line and column.
func position(text string, off int) (line, col int) {
	if off > len(text) {
		off = len(text)
	}
	if off < 0 {
		off = 0
	}
	head := text[:off]
	line = strings.Count(head, "\n") + 1
	col = off - strings.LastIndexByte(head, '\n')
	return line, col
}
