package dialect

import "omnicode/internal/lang"

type keywordSignal struct {
	Lang   lang.ID
	Score  int
	Reason string
}

var keywordSignals = map[string][]keywordSignal{
	// Rust
	"impl":  {{lang.Rust, 5, "rust keyword `impl`"}},
	"trait": {{lang.Rust, 5, "rust keyword `trait`"}},
	"crate": {{lang.Rust, 4, "rust keyword `crate`"}},
	"fn":    {{lang.Rust, 4, "rust keyword `fn`"}},
	"mut":   {{lang.Rust, 4, "rust keyword `mut`"}},
	"match": {{lang.Rust, 2, "rust keyword `match`"}},

	// Go
	"defer":   {{lang.Go, 5, "go keyword `defer`"}},
	"chan":    {{lang.Go, 4, "go keyword `chan`"}},
	"func":    {{lang.Go, 4, "go keyword `func`"}},
	"package": {{lang.Go, 2, "go keyword `package`"}, {lang.Java, 2, "java keyword `package`"}},

	// TypeScript and JavaScript
	"interface":  {{lang.TypeScript, 2, "typescript keyword `interface`"}, {lang.Go, 1, "go keyword `interface`"}},
	"implements": {{lang.TypeScript, 2, "typescript keyword `implements`"}, {lang.Java, 2, "java keyword `implements`"}},
	"readonly":   {{lang.TypeScript, 4, "typescript keyword `readonly`"}},
	"namespace":  {{lang.TypeScript, 3, "typescript keyword `namespace`"}, {lang.CSharp, 2, "c# keyword `namespace`"}},
	"const":      {{lang.JavaScript, 2, "javascript keyword `const`"}},
	"let":        {{lang.JavaScript, 2, "javascript keyword `let`"}},
	"function":   {{lang.JavaScript, 3, "javascript keyword `function`"}, {lang.PHP, 1, "php keyword `function`"}},
	"console":    {{lang.JavaScript, 4, "javascript global `console`"}},
	"undefined":  {{lang.JavaScript, 3, "javascript `undefined`"}},

	// Python
	"def":    {{lang.Python, 3, "python keyword `def`"}, {lang.Ruby, 3, "ruby keyword `def`"}},
	"elif":   {{lang.Python, 5, "python keyword `elif`"}},
	"None":   {{lang.Python, 4, "python `None`"}},
	"self":   {{lang.Python, 2, "python `self`"}},
	"lambda": {{lang.Python, 2, "python keyword `lambda`"}},

	// Ruby
	"elsif":   {{lang.Ruby, 5, "ruby keyword `elsif`"}},
	"puts":    {{lang.Ruby, 4, "ruby `puts`"}},
	"nil":     {{lang.Ruby, 3, "ruby `nil`"}, {lang.Go, 1, "go `nil`"}},
	"require": {{lang.Ruby, 2, "ruby `require`"}},

	// Java and C#
	"public":  {{lang.Java, 1, "java keyword `public`"}, {lang.CSharp, 1, "c# keyword `public`"}},
	"extends": {{lang.Java, 2, "java keyword `extends`"}, {lang.TypeScript, 1, "typescript keyword `extends`"}},
	"using":   {{lang.CSharp, 3, "c# keyword `using`"}},

	// C and C++
	"std":      {{lang.CPP, 3, "c++ namespace `std`"}},
	"template": {{lang.CPP, 3, "c++ keyword `template`"}},
	"printf":   {{lang.C, 3, "c `printf`"}},
	"malloc":   {{lang.C, 4, "c `malloc`"}},

	// PHP
	"echo": {{lang.PHP, 3, "php `echo`"}},

	// SQL, matched case-insensitively by RecordWord
	"select": {{lang.SQL, 3, "sql keyword `SELECT`"}},
	"from":   {{lang.SQL, 1, "sql keyword `FROM`"}},
	"where":  {{lang.SQL, 2, "sql keyword `WHERE`"}},
	"insert": {{lang.SQL, 3, "sql keyword `INSERT`"}},
}

// sqlWords are matched in upper case too.
var sqlWords = map[string]string{
	"SELECT": "select", "FROM": "from", "WHERE": "where", "INSERT": "insert",
}

// RecordWord collects keyword evidence for a word seen on line.
func RecordWord(e *Evidence, word string, line int) {
	if e == nil || word == "" {
		return
	}
	key := word
	if lower, ok := sqlWords[word]; ok {
		key = lower
	}
	for _, sig := range keywordSignals[key] {
		e.Add(Hint{Lang: sig.Lang, Score: sig.Score, Reason: sig.Reason, Line: line})
	}
}
