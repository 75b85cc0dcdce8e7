package lang

import (
	"path/filepath"
	"sort"
	"strings"
)

// ID names a language the way the editor shell does ("javascript", "python", ...).
// It is an opaque, case-sensitive string: unknown values are legal everywhere
// and select fallback behaviour.
type ID string

// Well-known language identifiers.
const (
	JavaScript ID = "javascript"
	TypeScript ID = "typescript"
	Python     ID = "python"
	HTML       ID = "html"
	CSS        ID = "css"
	SCSS       ID = "scss"
	JSON       ID = "json"
	XML        ID = "xml"
	Markdown   ID = "markdown"
	YAML       ID = "yaml"
	TOML       ID = "toml"
	SQL        ID = "sql"
	Java       ID = "java"
	CPP        ID = "cpp"
	C          ID = "c"
	CSharp     ID = "csharp"
	Go         ID = "go"
	Rust       ID = "rust"
	PHP        ID = "php"
	Ruby       ID = "ruby"
)

// Default is the language assumed for files whose extension is unknown.
const Default = JavaScript

// Plain is the pseudo-language used for text without any classification.
const Plain ID = "plaintext"

func (id ID) String() string { return string(id) }

// Name returns a human-readable display name.
func (id ID) Name() string {
	if e, ok := byID[id]; ok && e.name != "" {
		return e.name
	}
	if id == "" {
		return "Plain Text"
	}
	return string(id)
}

type entry struct {
	id   ID
	name string
	// ext is the canonical extension used when saving.
	ext string
	// alt lists extra extensions recognised on import.
	alt []string
}

var entries = []entry{
	{JavaScript, "JavaScript", "js", []string{"mjs", "cjs", "jsx"}},
	{TypeScript, "TypeScript", "ts", []string{"tsx"}},
	{Python, "Python", "py", nil},
	{HTML, "HTML", "html", []string{"htm"}},
	{CSS, "CSS", "css", nil},
	{SCSS, "SCSS", "scss", nil},
	{JSON, "JSON", "json", nil},
	{XML, "XML", "xml", nil},
	{Markdown, "Markdown", "md", nil},
	{YAML, "YAML", "yml", []string{"yaml"}},
	{SQL, "SQL", "sql", nil},
	{Java, "Java", "java", nil},
	{CPP, "C++", "cpp", []string{"cc", "hpp"}},
	{C, "C", "c", []string{"h"}},
	{CSharp, "C#", "cs", nil},
	{Go, "Go", "go", nil},
	{Rust, "Rust", "rs", nil},
	{PHP, "PHP", "php", nil},
	{Ruby, "Ruby", "rb", nil},
	{"swift", "Swift", "swift", nil},
	{"kotlin", "Kotlin", "kt", nil},
	{"dart", "Dart", "dart", nil},
	{"scala", "Scala", "scala", nil},
	{"r", "R", "r", nil},
	{"matlab", "MATLAB", "m", nil},
	{"perl", "Perl", "pl", nil},
	{"shell", "Shell", "sh", nil},
	{"batch", "Batch", "bat", nil},
	{"powershell", "PowerShell", "ps1", nil},
	{"lua", "Lua", "lua", nil},
	{"nim", "Nim", "nim", nil},
	{"zig", "Zig", "zig", nil},
	{"v", "V", "v", nil},
	{"elm", "Elm", "elm", nil},
	{"elixir", "Elixir", "ex", nil},
	{"erlang", "Erlang", "erl", nil},
	{"clojure", "Clojure", "clj", nil},
	{"haskell", "Haskell", "hs", nil},
	{"ocaml", "OCaml", "ml", nil},
	{"fsharp", "F#", "fs", nil},
	{"pascal", "Pascal", "pas", nil},
	{"d", "D", "d", nil},
	{"julia", "Julia", "jl", nil},
	{"crystal", "Crystal", "cr", nil},
	{"racket", "Racket", "rkt", nil},
	{"scheme", "Scheme", "scm", nil},
	{"lisp", "Lisp", "lisp", nil},
	{"prolog", "Prolog", "pro", nil},
	{"assembly", "Assembly", "asm", nil},
	// verilog saves as .v; importing .v resolves to the V language.
	{"verilog", "Verilog", "v", nil},
	{"vhdl", "VHDL", "vhd", nil},
	{"vbnet", "VB.NET", "vb", nil},
	{"visualbasic", "Visual Basic", "vbs", nil},
	{"autohotkey", "AutoHotkey", "ahk", nil},
	{"autoit", "AutoIt", "au3", nil},
	{"tcl", "Tcl", "tcl", nil},
	{"groovy", "Groovy", "groovy", nil},
	{"gradle", "Gradle", "gradle", nil},
	{"sbt", "sbt", "sbt", nil},
	{"cmake", "CMake", "cmake", nil},
	{"makefile", "Makefile", "make", nil},
	{"dockerfile", "Dockerfile", "dockerfile", nil},
	{TOML, "TOML", "toml", nil},
	{"ini", "INI", "ini", nil},
	{"cfg", "Config", "cfg", nil},
	{"conf", "Conf", "conf", nil},
	{"env", "Env", "env", nil},
	{"gitignore", "gitignore", "gitignore", nil},
	{"editorconfig", "EditorConfig", "editorconfig", nil},
}

var (
	byID  = map[ID]entry{}
	byExt = map[string]ID{}
)

func init() {
	for _, e := range entries {
		byID[e.id] = e
		if _, taken := byExt[e.ext]; !taken {
			byExt[e.ext] = e.id
		}
		for _, a := range e.alt {
			byExt[a] = e.id
		}
	}
}

// Known returns every language id with an extension mapping, sorted.
func Known() []ID {
	out := make([]ID, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsKnown reports whether id appears in the language table.
func IsKnown(id ID) bool {
	_, ok := byID[id]
	return ok
}

// FromExtension maps a file extension (with or without the leading dot,
// any case) to a language. Unknown extensions yield (Default, false).
func FromExtension(ext string) (ID, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if id, ok := byExt[ext]; ok {
		return id, true
	}
	return Default, false
}

// FromFilename detects the language of a file name by its extension.
// Names without a dot are matched whole, so "Dockerfile" and ".gitignore" resolve.
func FromFilename(name string) (ID, bool) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == "" {
		ext = base
	}
	return FromExtension(ext)
}

// Extension returns the canonical file extension (no dot) for id, "txt" when unknown.
func Extension(id ID) string {
	if e, ok := byID[id]; ok {
		return e.ext
	}
	return "txt"
}

// Filename builds "<base>.<ext>" for id; an empty base becomes "code".
func Filename(base string, id ID) string {
	if base == "" {
		base = "code"
	}
	return base + "." + Extension(id)
}

// Rename swaps the extension of name for the canonical one of id.
func Rename(name string, id ID) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return Filename(stem, id)
}
