package lexer

// Keyword and builtin tables. They are built once at package init and
// only read afterwards, so scanners are safe to call concurrently.

var jsKeywords = newWordSet(
	"const", "let", "var", "function", "return", "if", "else", "for", "while",
	"do", "switch", "case", "default", "break", "continue", "try", "catch",
	"finally", "throw", "new", "this", "super", "class", "extends", "import",
	"export", "from", "as", "async", "await", "true", "false", "null",
	"undefined", "typeof", "instanceof", "in", "of", "delete", "void",
)

var jsBuiltins = newWordSet(
	"console", "window", "document", "Array", "Object", "String", "Number",
	"Boolean", "Date", "Math", "JSON", "Promise", "Set", "Map", "WeakSet",
	"WeakMap",
)

var pyKeywords = newWordSet(
	"def", "class", "if", "elif", "else", "for", "while", "try", "except",
	"finally", "with", "as", "import", "from", "return", "yield", "break",
	"continue", "pass", "raise", "assert", "del", "global", "nonlocal",
	"lambda", "and", "or", "not", "in", "is", "True", "False", "None",
)

var pyBuiltins = newWordSet(
	"print", "len", "range", "str", "int", "float", "list", "dict", "tuple",
	"set", "bool", "type", "isinstance", "hasattr", "getattr", "setattr",
)

// SQL keywords are stored upper-case and matched after case folding.
var sqlKeywords = newWordSet(
	"SELECT", "FROM", "WHERE", "INSERT", "UPDATE", "DELETE", "CREATE", "DROP",
	"ALTER", "TABLE", "INDEX", "JOIN", "LEFT", "RIGHT", "INNER", "OUTER", "ON",
	"AS", "AND", "OR", "NOT", "NULL", "TRUE", "FALSE",
	"INTO", "VALUES", "SET", "ORDER", "GROUP", "BY", "HAVING", "LIMIT",
	"DISTINCT", "PRIMARY", "KEY", "UNION", "IS", "IN", "LIKE", "BETWEEN",
	"CASE", "WHEN", "THEN", "ELSE", "END",
)

var cssProperties = newWordSet(
	"color", "background", "font-size", "margin", "padding", "border", "width",
	"height", "display", "position", "top", "left", "right", "bottom", "flex",
	"grid", "text-align", "font-weight", "font-family",
)

var jsonLiterals = newWordSet("true", "false", "null")

var (
	jsOperators  = newByteSet("+-*/%=<>!&|^~?:;,.()[]{}")
	pyOperators  = newByteSet("+-*/%=<>!&|^~?:;,.()[]{}@")
	sqlOperators = newByteSet("+-*/%=<>!|;,.()")
	// Punctuation that never joins an operator run.
	breakers = newByteSet("()[]{};,")

	cssPunct  = newByteSet(".#:;,{}()")
	jsonPunct = newByteSet("{}[]:,")
)
