package lint

import (
	"strings"

	"omnicode/internal/diag"
)

// Presence checks look for one marker anywhere in the buffer and report on line 1.

func checkCFamily(b *buffer, r diag.Reporter) {
	if !strings.Contains(b.text, "#include") {
		diag.ReportWarning(r, diag.RuleMissingIncludes, "Missing #include statements").AtLine(1).Emit()
	}
	checkBraces(b, r)
}

func checkCSharp(b *buffer, r diag.Reporter) {
	if !strings.Contains(b.text, "using System") {
		diag.ReportInfo(r, diag.RuleMissingUsing, `Consider adding "using System;" statement`).AtLine(1).Emit()
	}
	checkBraces(b, r)
}

func checkGo(b *buffer, r diag.Reporter) {
	if !strings.Contains(b.text, "package ") {
		diag.ReportError(r, diag.RuleMissingPackage, "Missing package declaration").AtLine(1).Emit()
	}
	checkBraces(b, r)
}

func checkPHP(b *buffer, r diag.Reporter) {
	if !strings.Contains(b.text, "<?php") {
		diag.ReportError(r, diag.RuleMissingPHPTag, "Missing PHP opening tag <?php").AtLine(1).Emit()
	}
	checkBraces(b, r)
}
