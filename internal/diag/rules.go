package diag

// Rule is the stable identifier of the check that produced a diagnostic.
type Rule string

const (
	RuleNone Rule = ""

	// Скобочные языки
	RuleSyntaxError       Rule = "syntax-error"
	RuleMissingSemicolon  Rule = "missing-semicolon"
	RuleExplicitUndefined Rule = "explicit-undefined"
	RuleNoAny             Rule = "no-any"
	RuleUnmatchedBrackets Rule = "unmatched-brackets"

	// Python / Ruby
	RuleIndentation   Rule = "indentation"
	RulePrintFunction Rule = "print-function"
	RuleMissingColon  Rule = "missing-colon"
	RuleMissingEnd    Rule = "missing-end"

	// Разметка и стили
	RuleMissingDoctype        Rule = "missing-doctype"
	RuleUnclosedTag           Rule = "unclosed-tag"
	RuleMissingXMLDeclaration Rule = "missing-xml-declaration"
	RuleUnmatchedTags         Rule = "unmatched-tags"
	RuleInvalidProperty       Rule = "invalid-property"

	// Данные
	RuleJSONSyntax Rule = "json-syntax"
	RuleYAMLSyntax Rule = "yaml-syntax"
	RuleTOMLSyntax Rule = "toml-syntax"

	// Проверки наличия
	RuleMissingIncludes Rule = "missing-includes"
	RuleMissingUsing    Rule = "missing-using"
	RuleMissingPackage  Rule = "missing-package"
	RuleMissingPHPTag   Rule = "missing-php-tag"

	RuleEmptyFile Rule = "empty-file"
)

var ruleTitles = map[Rule]string{
	RuleSyntaxError:           "Obvious call syntax error",
	RuleMissingSemicolon:      "Statement without terminator",
	RuleExplicitUndefined:     "Variable assigned undefined",
	RuleNoAny:                 "Use of the any type",
	RuleUnmatchedBrackets:     "Unbalanced curly braces",
	RuleIndentation:           "Indentation not a multiple of the unit",
	RulePrintFunction:         "Python 2 print statement",
	RuleMissingColon:          "Block header without colon",
	RuleMissingEnd:            "Block without end",
	RuleMissingDoctype:        "Missing DOCTYPE declaration",
	RuleUnclosedTag:           "Tag without closing counterpart",
	RuleMissingXMLDeclaration: "Missing XML declaration",
	RuleUnmatchedTags:         "Opening and closing tag counts differ",
	RuleInvalidProperty:       "Malformed CSS property name",
	RuleJSONSyntax:            "Invalid JSON",
	RuleYAMLSyntax:            "Invalid YAML",
	RuleTOMLSyntax:            "Invalid TOML",
	RuleMissingIncludes:       "No #include directives",
	RuleMissingUsing:          "No using System directive",
	RuleMissingPackage:        "Missing package clause",
	RuleMissingPHPTag:         "Missing <?php opening tag",
	RuleEmptyFile:             "Empty buffer",
}

// ID returns the rule identifier as a string.
func (r Rule) ID() string { return string(r) }

func (r Rule) String() string { return string(r) }

// Title returns a short human description, or the identifier itself.
func (r Rule) Title() string {
	if t, ok := ruleTitles[r]; ok {
		return t
	}
	return string(r)
}

// Known reports whether r is one of the declared rules.
func (r Rule) Known() bool {
	_, ok := ruleTitles[r]
	return ok
}
