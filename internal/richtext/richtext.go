// Package richtext 将作品集中的 Markdown 正文转换为可直接排版的文本块
//
// 只保留段落、标题和列表项三种结构；行内格式（强调、代码、链接）被展平为纯文本。
package richtext

import (
	"strconv"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// BlockKind 文本块类型
type BlockKind int

const (
	// Paragraph 普通段落
	Paragraph BlockKind = iota
	// Heading 标题（Level 为 1~6）
	Heading
	// Bullet 列表项（Level 为嵌套深度，从 1 开始）
	Bullet
)

// String 返回类型名称
func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Bullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// Block 一个排版单元
type Block struct {
	Kind  BlockKind
	Level int
	// Marker 列表项前缀："•" 或 "1." 等
	Marker string
	Text   string
}

// Parse 解析 Markdown 文本
func Parse(src string) []Block {
	if strings.TrimSpace(src) == "" {
		return nil
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := markdown.Parse([]byte(src), p)

	b := &builder{}
	ast.WalkFunc(doc, b.visit)
	b.flush()
	return b.blocks
}

// Plain 将 Markdown 展平为单段纯文本（块之间以空格分隔）
func Plain(src string) string {
	blocks := Parse(src)
	parts := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		parts = append(parts, blk.Text)
	}
	return strings.Join(parts, " ")
}

type builder struct {
	blocks []Block
	cur    *Block
	text   strings.Builder
}

func (b *builder) begin(blk Block) {
	b.flush()
	b.cur = &blk
}

// flush 结束当前块，空白块被丢弃
func (b *builder) flush() {
	if b.cur == nil {
		return
	}
	text := strings.Join(strings.Fields(b.text.String()), " ")
	if text != "" {
		b.cur.Text = text
		b.blocks = append(b.blocks, *b.cur)
	}
	b.cur = nil
	b.text.Reset()
}

func (b *builder) write(s string) {
	if b.cur == nil {
		b.cur = &Block{Kind: Paragraph}
	}
	b.text.WriteString(s)
}

func (b *builder) visit(node ast.Node, entering bool) ast.WalkStatus {
	switch n := node.(type) {
	case *ast.Heading:
		if entering {
			b.begin(Block{Kind: Heading, Level: n.Level})
		} else {
			b.flush()
		}

	case *ast.ListItem:
		if entering {
			b.begin(Block{Kind: Bullet, Level: listDepth(n), Marker: marker(n)})
		} else {
			b.flush()
		}

	case *ast.Paragraph:
		inItem := b.cur != nil && b.cur.Kind == Bullet
		switch {
		case entering && inItem:
			b.text.WriteString(" ")
		case entering:
			b.begin(Block{Kind: Paragraph})
		case !inItem:
			b.flush()
		}

	case *ast.CodeBlock:
		b.begin(Block{Kind: Paragraph})
		b.write(string(n.Literal))
		b.flush()
		return ast.SkipChildren

	case *ast.Text:
		b.write(string(n.Literal))

	case *ast.Code:
		b.write(string(n.Literal))

	case *ast.Softbreak, *ast.Hardbreak:
		b.write(" ")
	}
	return ast.GoToNext
}

// listDepth 计算列表项的嵌套深度
func listDepth(node ast.Node) int {
	depth := 0
	for p := node.GetParent(); p != nil; p = p.GetParent() {
		if _, ok := p.(*ast.List); ok {
			depth++
		}
	}
	if depth == 0 {
		depth = 1
	}
	return depth
}

// marker 返回列表项前缀
func marker(item *ast.ListItem) string {
	list, ok := item.GetParent().(*ast.List)
	if !ok || list.ListFlags&ast.ListTypeOrdered == 0 {
		return "•"
	}
	start := list.Start
	if start == 0 {
		start = 1
	}
	for i, child := range list.GetChildren() {
		if child == ast.Node(item) {
			return strconv.Itoa(start+i) + "."
		}
	}
	return strconv.Itoa(start) + "."
}
