package lint

import (
	"fmt"
	"regexp"
	"strings"

	"omnicode/internal/diag"
)

var (
	openTag  = regexp.MustCompile(`<(\w+)(?:\s[^>]*)?>`)
	closeTag = regexp.MustCompile(`</(\w+)>`)
)

var voidElements = map[string]bool{
	"img": true, "br": true, "hr": true, "input": true, "meta": true, "link": true,
}

func checkHTML(b *buffer, r diag.Reporter) {
	if !strings.Contains(b.text, "<!DOCTYPE html>") && !strings.Contains(b.text, "<!doctype html>") {
		diag.ReportWarning(r, diag.RuleMissingDoctype, "Missing DOCTYPE declaration").AtLine(1).Emit()
	}
	b.each(func(n int, line, trimmed string) {
		offset := strings.Index(line, trimmed)
		for _, m := range openTag.FindAllStringSubmatchIndex(trimmed, -1) {
			name := trimmed[m[2]:m[3]]
			if voidElements[strings.ToLower(name)] || closedInline(trimmed[m[1]:], name) {
				continue
			}
			diag.ReportWarning(r, diag.RuleUnclosedTag,
				fmt.Sprintf("Potentially unclosed tag: %s", name)).At(n, offset+m[0]+1).Emit()
		}
	})
}

// closedInline reports whether rest, after skipping text up to the next
// '<', starts with the closing tag for name.
func closedInline(rest, name string) bool {
	i := strings.IndexByte(rest, '<')
	if i < 0 {
		return false
	}
	return strings.HasPrefix(rest[i:], "</"+name+">")
}

func checkXML(b *buffer, r diag.Reporter) {
	if !strings.HasPrefix(strings.TrimSpace(b.text), "<?xml") {
		diag.ReportWarning(r, diag.RuleMissingXMLDeclaration, "Missing XML declaration").AtLine(1).Emit()
	}
	opened := len(openTag.FindAllStringIndex(b.text, -1))
	closed := len(closeTag.FindAllStringIndex(b.text, -1))
	if opened != closed {
		diag.ReportError(r, diag.RuleUnmatchedTags,
			fmt.Sprintf("Unmatched XML tags: %d opening, %d closing", opened, closed)).Emit()
	}
}
