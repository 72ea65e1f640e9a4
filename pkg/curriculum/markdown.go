package curriculum

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// newMarkdown returns the converter used for .md lesson bodies.
// Raw HTML is allowed because lessons are authored, not user-submitted.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(&buttonExtension{}),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

// buttonStyle matches the yellow header of the lesson layout.
const buttonStyle = "display:inline-block; background-color:#f7df1e; color:#000; " +
	"padding:10px 18px; border-radius:6px; text-decoration:none; font-weight:bold;"

// buttonPrefix starts a call-to-action link: [!button|Label](URL).
var buttonPrefix = []byte("[!button|")

var kindButton = ast.NewNodeKind("LessonButton")

type buttonNode struct {
	ast.BaseInline
	url   []byte
	label []byte
}

func (n *buttonNode) Kind() ast.NodeKind { return kindButton }

func (n *buttonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"URL":   string(n.url),
		"Label": string(n.label),
	}, nil)
}

type buttonParser struct{}

func (buttonParser) Trigger() []byte { return []byte{'['} }

func (buttonParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, buttonPrefix) {
		return nil
	}

	rest := line[len(buttonPrefix):]
	labelEnd := bytes.IndexByte(rest, ']')
	if labelEnd < 0 || labelEnd+1 >= len(rest) || rest[labelEnd+1] != '(' {
		return nil
	}

	target := rest[labelEnd+2:]
	urlEnd := bytes.IndexByte(target, ')')
	if urlEnd < 0 {
		return nil
	}

	block.Advance(len(buttonPrefix) + labelEnd + 2 + urlEnd + 1)

	return &buttonNode{
		label: bytes.Clone(rest[:labelEnd]),
		url:   bytes.Clone(target[:urlEnd]),
	}
}

type buttonRenderer struct{}

func (buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindButton, renderButton)
}

func renderButton(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*buttonNode)

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(n.url))
	_, _ = w.WriteString(`" style="` + buttonStyle + `">`)
	_, _ = w.Write(util.EscapeHTML(n.label))
	_, _ = w.WriteString(`</a>`)

	return ast.WalkContinue, nil
}

type buttonExtension struct{}

func (*buttonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(buttonParser{}, 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(buttonRenderer{}, 50),
	))
}
