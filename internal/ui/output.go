package ui

import (
	"fmt"
	"strings"
)

// Status symbols prefixed to one-line messages.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
)

// RuleWidth is the width of the separator printed under section titles.
const RuleWidth = 60

// DetailIndent lines up detail rows under the message they belong to.
const DetailIndent = "   "

func status(symbol, msg string) string {
	return symbol + " " + msg
}

// Success marks a completed step, e.g. a file written.
func Success(msg string) string { return status(SymbolSuccess, msg) }

// Successf is Success with formatting.
func Successf(format string, args ...interface{}) string {
	return Success(fmt.Sprintf(format, args...))
}

// Error marks a failure that ended the command.
func Error(msg string) string { return status(SymbolError, msg) }

// Warning marks an outcome that produced no file, or a lossy conversion.
func Warning(msg string) string { return status(SymbolWarning, msg) }

// Warningf is Warning with formatting.
func Warningf(format string, args ...interface{}) string {
	return Warning(fmt.Sprintf(format, args...))
}

// Info marks progress narration ("searching...", "extracting...").
func Info(msg string) string { return status(SymbolInfo, msg) }

// Infof is Info with formatting.
func Infof(format string, args ...interface{}) string {
	return Info(fmt.Sprintf(format, args...))
}

// Header renders a bold title.
func Header(msg string) string {
	return Bold.Render(msg)
}

// Rule returns a muted "=" separator RuleWidth wide.
func Rule() string {
	return Muted.Render(strings.Repeat("=", RuleWidth))
}

// Section is a bold title with a Rule underneath.
func Section(title string) string {
	return Header(title) + "\n" + Rule()
}

// Detail renders an indented "label: value" row.
func Detail(label string, value interface{}) string {
	return fmt.Sprintf("%s%s: %v", DetailIndent, label, value)
}

// Indent prefixes s with DetailIndent.
func Indent(s string) string {
	return DetailIndent + s
}

// FilePath renders a path in the accent color.
func FilePath(path string) string {
	return Accent.Render(path)
}

// Hint renders secondary text in the muted color.
func Hint(msg string) string {
	return Muted.Render(msg)
}
