package dialect

import (
	"regexp"
	"strings"

	"omnicode/internal/lang"
	"omnicode/internal/token"
)

// ObserveTokenPair records token-pattern evidence using a sliding 2-token
// window. Tokens come from one line, in order.
func ObserveTokenPair(e *Evidence, prev, tok token.Token, line int) {
	if e == nil {
		return
	}
	// ident!(...)
	if prev.Kind == token.Identifier && tok.Kind == token.Operator && strings.HasPrefix(tok.Text, "!") && !strings.HasPrefix(tok.Text, "!=") {
		score, reason := 4, "rust macro call syntax `ident!`"
		if prev.Text == "println" || prev.Text == "vec" {
			score, reason = 6, "rust macro call `"+prev.Text+"!`"
		}
		e.Add(Hint{Lang: lang.Rust, Score: score, Reason: reason, Line: line})
	}
	if tok.Kind == token.Operator {
		switch tok.Text {
		case ":=":
			e.Add(Hint{Lang: lang.Go, Score: 5, Reason: "go short variable declaration `:=`", Line: line})
		case "===", "!==":
			e.Add(Hint{Lang: lang.JavaScript, Score: 4, Reason: "javascript strict equality", Line: line})
		case "=>":
			e.Add(Hint{Lang: lang.JavaScript, Score: 2, Reason: "arrow function", Line: line})
		}
	}
	if prev.Kind == token.Identifier && tok.Kind == token.Operator && strings.HasPrefix(tok.Text, "::") {
		e.Add(Hint{Lang: lang.Rust, Score: 2, Reason: "path syntax `::`", Line: line})
		e.Add(Hint{Lang: lang.CPP, Score: 2, Reason: "scope syntax `::`", Line: line})
	}
}

type linePattern struct {
	re     *regexp.Regexp
	lang   lang.ID
	score  int
	reason string
}

var linePatterns = []linePattern{
	{regexp.MustCompile(`(?i)^<!doctype html`), lang.HTML, 10, "html doctype"},
	{regexp.MustCompile(`(?i)^</?(html|head|body|div|span|p|a|script)\b`), lang.HTML, 3, "html tag"},
	{regexp.MustCompile(`^<\?xml\b`), lang.XML, 10, "xml declaration"},
	{regexp.MustCompile(`^<\?php\b`), lang.PHP, 10, "php open tag"},
	{regexp.MustCompile(`\$[A-Za-z_]\w*\s*=`), lang.PHP, 2, "php variable assignment"},
	{regexp.MustCompile(`^#include\s*[<"]`), lang.CPP, 4, "#include directive"},
	{regexp.MustCompile(`^#include\s*<(stdio|stdlib|string)\.h>`), lang.C, 6, "c standard header"},
	{regexp.MustCompile(`^#include\s*<(iostream|vector|string|map)>`), lang.CPP, 6, "c++ standard header"},
	{regexp.MustCompile(`^package\s+[a-z]\w*\s*$`), lang.Go, 6, "go package clause"},
	{regexp.MustCompile(`^package\s+[\w.]+;\s*$`), lang.Java, 6, "java package declaration"},
	{regexp.MustCompile(`^import\s+"`), lang.Go, 4, "go import"},
	{regexp.MustCompile(`^using\s+System`), lang.CSharp, 8, "c# using System"},
	{regexp.MustCompile(`System\.out\.print`), lang.Java, 8, "java System.out"},
	{regexp.MustCompile(`Console\.Write`), lang.CSharp, 8, "c# Console.Write"},
	{regexp.MustCompile(`^(def|class)\s+\w+.*:\s*$`), lang.Python, 5, "python block header"},
	{regexp.MustCompile(`^(from\s+\w+\s+)?import\s+\w+\s*$`), lang.Python, 3, "python import"},
	{regexp.MustCompile(`^end\s*$`), lang.Ruby, 4, "ruby `end`"},
	{regexp.MustCompile(`\bdo\s*\|\w+\|`), lang.Ruby, 6, "ruby block parameters"},
	{regexp.MustCompile(`(?i)^select\b.*\bfrom\b`), lang.SQL, 6, "sql SELECT ... FROM"},
	{regexp.MustCompile(`(?i)^create\s+table\b`), lang.SQL, 8, "sql CREATE TABLE"},
	{regexp.MustCompile(`:\s*(string|number|boolean|any)\b`), lang.TypeScript, 4, "typescript type annotation"},
	{regexp.MustCompile(`^[.#]?[\w-]+(\s*[,>+~]\s*[.#]?[\w-]+)*\s*\{\s*$`), lang.CSS, 3, "css rule block"},
	{regexp.MustCompile(`^\s+[a-z-]+:\s*[^;]+;\s*$`), lang.CSS, 2, "css declaration"},
	{regexp.MustCompile(`^\$[\w-]+:\s*`), lang.SCSS, 6, "scss variable"},
	{regexp.MustCompile(`^@(mixin|include)\b`), lang.SCSS, 6, "scss mixin"},
	{regexp.MustCompile(`^---\s*$`), lang.YAML, 4, "yaml document marker"},
	{regexp.MustCompile(`^[A-Za-z_][\w-]*:(\s+[^{;]*)?$`), lang.YAML, 2, "yaml mapping key"},
	{regexp.MustCompile(`^-\s+\S`), lang.YAML, 1, "yaml sequence item"},
	{regexp.MustCompile(`^\[[\w.-]+\]\s*$`), lang.TOML, 5, "toml table header"},
	{regexp.MustCompile(`^[\w-]+\s*=\s*("|\d|\[|true|false)`), lang.TOML, 2, "toml key/value"},
	{regexp.MustCompile(`^#{1,6}\s+\S`), lang.Markdown, 3, "markdown heading"},
	{regexp.MustCompile("^```"), lang.Markdown, 4, "markdown code fence"},
}

// ObserveLine records line-pattern evidence for a trimmed line.
func ObserveLine(e *Evidence, raw string, line int) {
	if e == nil {
		return
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}
	for _, p := range linePatterns {
		subject := trimmed
		if p.lang == lang.CSS && p.reason == "css declaration" {
			subject = raw
		}
		if p.re.MatchString(subject) {
			e.Add(Hint{Lang: p.lang, Score: p.score, Reason: p.reason, Line: line})
		}
	}
}
