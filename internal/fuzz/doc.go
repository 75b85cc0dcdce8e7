// Package fuzztests houses Go fuzz harnesses for the analysis pipeline
// (source -> lexer -> lint). They guard against panics and lossy
// tokenization on arbitrary input.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер и линтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/lint, internal/lang,
// internal/testkit.
package fuzztests
