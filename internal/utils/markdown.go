package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown remove a formatação markdown do corpo de um conteúdo e retorna texto puro
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	extractText(doc, &buf)

	result := strings.TrimSpace(buf.String())
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")

	return result
}

// extractText percorre a AST acumulando o texto dos nós folha
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return

	case *ast.Code:
		buf.Write(n.Literal)
		return

	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return

	case *ast.Hardbreak:
		buf.WriteString("\n")
		return

	case *ast.Softbreak:
		buf.WriteString(" ")
		return

	case *ast.HTMLBlock, *ast.HTMLSpan:
		return

	case *ast.Image:
		// texto alternativo de figuras não entra no excerpt
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	switch node.(type) {
	case *ast.ListItem:
		buf.WriteString("- ")
	}

	for _, child := range container.Children {
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph:
		buf.WriteString("\n\n")
	case *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List, *ast.BlockQuote, *ast.TableRow:
		buf.WriteString("\n")
	case *ast.TableCell:
		buf.WriteString(" ")
	}
}

// Excerpt gera um resumo em texto puro com no máximo maxLen runas.
// O corte acontece na última fronteira de palavra, seguido de reticências.
func Excerpt(markdownText string, maxLen int) string {
	plain := strings.Join(strings.Fields(StripMarkdown(markdownText)), " ")
	if maxLen <= 0 {
		return plain
	}

	runes := []rune(plain)
	if len(runes) <= maxLen {
		return plain
	}

	cut := string(runes[:maxLen])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,.;:-") + "..."
}
