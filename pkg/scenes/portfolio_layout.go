package scenes

import (
	"image/color"
	"log"
	"slices"
	"strings"

	"github.com/decker502/folio/internal/richtext"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// itemKind 显示列表条目类型
type itemKind int

const (
	itemText itemKind = iota
	itemRect
	itemStroke
	itemImage
)

// drawItem 显示列表条目，Y 为内容坐标（页面顶部为 0）
type drawItem struct {
	kind       itemKind
	x, y, w, h float64
	text       string
	face       *text.GoTextFace
	clr        color.RGBA
	img        *ebiten.Image
	centered   bool
}

const (
	serviceIconSize    = 64
	timelineMarkerSize = 40
)

// techCell 技术栈单元格（内容坐标），螺母视口随滚动更新
type techCell struct {
	x, y float64
	tech config.Technology
	// icon 印在螺母正面的图标，未找到时为 nil
	icon *ebiten.Image
}

// pageLayout 作品集页面排版结果
type pageLayout struct {
	items     []drawItem
	anchors   map[string]float64
	techCells []techCell
	height    float64
}

// pageFonts 页面用到的字体
type pageFonts struct {
	heading, subheading, body, card, small, bold *text.GoTextFace
}

func newPageFonts(rm *game.ResourceManager) pageFonts {
	return pageFonts{
		heading:    rm.DefaultFont(config.HeadingFontSize, true),
		subheading: rm.DefaultFont(config.SubheadingFontSize, false),
		body:       rm.DefaultFont(config.BodyFontSize, false),
		card:       rm.DefaultFont(config.CardTitleFontSize, true),
		small:      rm.DefaultFont(config.SmallFontSize, false),
		bold:       rm.DefaultFont(config.BodyFontSize, true),
	}
}

// layoutBuilder 自上而下排版，cursor 为当前内容 Y
type layoutBuilder struct {
	rm     *game.ResourceManager
	fonts  pageFonts
	left   float64
	width  float64
	cursor float64
	out    pageLayout
}

// buildLayout 按 SectionIDs 的顺序排版所有区块
//
// 参数：
//   - screenWidth: 逻辑屏幕宽度，内容区居中且不超过 ContentMaxWidth
func buildLayout(rm *game.ResourceManager, fonts pageFonts, p *config.Portfolio, screenWidth float64) pageLayout {
	width := min(config.ContentMaxWidth, screenWidth-2*config.CardPadding)
	b := &layoutBuilder{
		rm:     rm,
		fonts:  fonts,
		left:   (screenWidth - width) / 2,
		width:  width,
		cursor: config.NavBarHeight,
		out:    pageLayout{anchors: make(map[string]float64, len(config.SectionIDs))},
	}

	for _, id := range config.SectionIDs {
		// 锚点使区块顶部紧贴导航栏下方
		b.out.anchors[id] = b.cursor - config.NavBarHeight
		b.cursor += config.SectionPaddingTop
		switch id {
		case "about":
			b.about(p)
		case "experience":
			b.experience(p)
		case "tech":
			b.tech(p)
		case "work":
			b.work(p)
		case "contact":
			b.contact(p)
		}
		b.cursor += config.SectionPaddingBottom
	}

	b.out.height = b.cursor + config.SectionPaddingTop
	return b.out
}

func (b *layoutBuilder) add(it drawItem) {
	b.out.items = append(b.out.items, it)
}

func (b *layoutBuilder) textAt(str string, face *text.GoTextFace, clr color.RGBA, x, y float64) {
	b.add(drawItem{kind: itemText, x: x, y: y, text: str, face: face, clr: clr})
}

func (b *layoutBuilder) rect(x, y, w, h float64, clr color.RGBA) {
	b.add(drawItem{kind: itemRect, x: x, y: y, w: w, h: h, clr: clr})
}

// loadIcon 通过 ResourceManager 加载图标，未配置或加载失败返回 nil
func (b *layoutBuilder) loadIcon(ref string) *ebiten.Image {
	path := config.IconPath(ref)
	if path == "" || b.rm == nil {
		return nil
	}
	img, err := b.rm.LoadImage(path)
	if err != nil {
		log.Printf("[PortfolioScene] icon %q: %v", ref, err)
		return nil
	}
	return img
}

// icon 在以 (cx, cy) 为中心、边长 size 的方块内绘制图标，tint 为零值时保持原色
func (b *layoutBuilder) icon(img *ebiten.Image, cx, cy, size float64, tint color.RGBA) {
	b.add(drawItem{kind: itemImage, x: cx - size/2, y: cy - size/2, w: size, h: size, img: img, clr: tint})
}

func lineHeight(face *text.GoTextFace) float64 {
	return face.Size * config.LineSpacing
}

// paragraph 在 [x, x+maxWidth] 内换行排版，返回占用高度
func (b *layoutBuilder) paragraph(str string, face *text.GoTextFace, clr color.RGBA, x, y, maxWidth float64) float64 {
	lines := utils.WrapText(str, utils.FaceMeasure(face), maxWidth)
	for i, line := range lines {
		if line == "" {
			continue
		}
		b.textAt(line, face, clr, x, y+float64(i)*lineHeight(face))
	}
	return float64(len(lines)) * lineHeight(face)
}

// markdown 排版 Markdown 正文，返回占用高度
func (b *layoutBuilder) markdown(src string, clr color.RGBA, x, y, maxWidth float64) float64 {
	start := y
	for _, blk := range richtext.Parse(src) {
		switch blk.Kind {
		case richtext.Heading:
			y += b.paragraph(blk.Text, b.fonts.bold, config.ColorWhite, x, y, maxWidth)
		case richtext.Bullet:
			indent := float64(blk.Level) * config.CardPadding
			b.textAt(blk.Marker, b.fonts.body, config.ColorAccent, x+indent-config.CardPadding*0.8, y)
			y += b.paragraph(blk.Text, b.fonts.body, clr, x+indent, y, maxWidth-indent)
		default:
			y += b.paragraph(blk.Text, b.fonts.body, clr, x, y, maxWidth)
		}
		y += b.fonts.body.Size * 0.5
	}
	return y - start
}

// sectionHeading 小标题 + 大标题
func (b *layoutBuilder) sectionHeading(sub, heading string) {
	b.textAt(strings.ToUpper(sub), b.fonts.subheading, config.ColorSecondary, b.left, b.cursor)
	b.cursor += lineHeight(b.fonts.subheading) + config.SectionHeadingGap
	b.textAt(heading, b.fonts.heading, config.ColorWhite, b.left, b.cursor)
	b.cursor += lineHeight(b.fonts.heading) + config.CardGap
}

func (b *layoutBuilder) about(p *config.Portfolio) {
	b.sectionHeading("Introduction", "Overview.")
	b.cursor += b.markdown(p.Owner.Intro, config.ColorSecondary, b.left, b.cursor, b.width*0.75)

	if len(p.Services) == 0 {
		return
	}
	b.cursor += config.CardGap
	cols := min(len(p.Services), 4)
	cardW := (b.width - float64(cols-1)*config.CardGap) / float64(cols)
	cardH := 180.0
	for i, svc := range p.Services {
		col, row := i%cols, i/cols
		x := b.left + float64(col)*(cardW+config.CardGap)
		y := b.cursor + float64(row)*(cardH+config.CardGap)
		b.rect(x, y, cardW, cardH, config.ColorTertiary)
		b.add(drawItem{kind: itemStroke, x: x, y: y, w: cardW, h: cardH, clr: config.ColorAccent})
		titleY := y + cardH/2
		if img := b.loadIcon(svc.Icon); img != nil {
			b.icon(img, x+cardW/2, y+cardH*0.4, serviceIconSize, color.RGBA{})
			titleY = y + cardH*0.78
		}
		b.add(drawItem{kind: itemText, x: x + cardW/2, y: titleY, text: svc.Title,
			face: b.fonts.bold, clr: config.ColorWhite, centered: true})
	}
	rows := (len(p.Services) + cols - 1) / cols
	b.cursor += float64(rows)*(cardH+config.CardGap) - config.CardGap
}

// experience 竖直时间线，左侧为圆点，右侧为卡片
func (b *layoutBuilder) experience(p *config.Portfolio) {
	b.sectionHeading("What I have done so far", "Work Experience.")

	lineX := b.left + 24
	top := b.cursor
	lineIndex := len(b.out.items)
	cardX := lineX + 40
	cardW := b.width - (cardX - b.left)
	textW := cardW - 2*config.CardPadding

	for _, exp := range p.Experiences {
		y := b.cursor
		bgIndex := len(b.out.items)

		inner := y + config.CardPadding
		inner += b.paragraph(exp.Title, b.fonts.card, config.ColorWhite, cardX+config.CardPadding, inner, textW)
		b.textAt(exp.CompanyName, b.fonts.body, config.ColorSecondary, cardX+config.CardPadding, inner)
		inner += lineHeight(b.fonts.body)
		b.textAt(exp.Date, b.fonts.small, config.ColorAccent, cardX+config.CardPadding, inner)
		inner += lineHeight(b.fonts.small) + config.SectionHeadingGap
		for _, point := range exp.Points {
			b.textAt("•", b.fonts.body, config.ColorWhite, cardX+config.CardPadding, inner)
			inner += b.paragraph(point, b.fonts.body, config.ColorWhite, cardX+config.CardPadding*2, inner, textW-config.CardPadding)
		}

		cardH := inner + config.CardPadding - y
		b.background(bgIndex, drawItem{kind: itemRect, x: cardX, y: y, w: cardW, h: cardH, clr: config.ColorTertiary})
		// 时间线标记：IconBg 底色方块，图标着深色或白色以便在底色上可见
		bg := utils.MustParseHexColor(exp.IconBg, config.ColorTimeline)
		markerY := y + config.CardPadding + timelineMarkerSize/2
		b.rect(lineX-timelineMarkerSize/2, markerY-timelineMarkerSize/2, timelineMarkerSize, timelineMarkerSize, bg)
		if img := b.loadIcon(exp.Icon); img != nil {
			b.icon(img, lineX, markerY, timelineMarkerSize*0.7, iconTint(bg))
		}
		b.cursor = y + cardH + config.CardGap
	}
	if len(p.Experiences) > 0 {
		b.background(lineIndex, drawItem{kind: itemRect, x: lineX - 2, y: top, w: 4, h: b.cursor - top - config.CardGap, clr: config.ColorTimeline})
	}
}

// iconTint 浅色底上的白色图标改为深色
func iconTint(bg color.RGBA) color.RGBA {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 160 {
		return config.ColorPrimary
	}
	return color.RGBA{}
}

// background 把背景条目插到 index 处，使其先于卡片内容绘制
func (b *layoutBuilder) background(index int, it drawItem) {
	b.out.items = slices.Insert(b.out.items, index, it)
}

// tech 螺母网格，单元格内由网格渲染系统绘制，下方为名称
func (b *layoutBuilder) tech(p *config.Portfolio) {
	if len(p.Technologies) == 0 {
		return
	}
	cell := config.TechCellSize
	step := cell + config.TechCellGap
	perRow := max(1, int((b.width+config.TechCellGap)/step))
	perRow = min(perRow, len(p.Technologies))
	rowW := float64(perRow)*step - config.TechCellGap
	startX := b.left + (b.width-rowW)/2
	labelH := lineHeight(b.fonts.small)

	for i, tech := range p.Technologies {
		col, row := i%perRow, i/perRow
		x := startX + float64(col)*step
		y := b.cursor + float64(row)*(step+labelH)
		b.out.techCells = append(b.out.techCells, techCell{x: x, y: y, tech: tech, icon: b.loadIcon(tech.Icon)})
		b.add(drawItem{kind: itemText, x: x + cell/2, y: y + cell + labelH/2, text: tech.Name,
			face: b.fonts.small, clr: config.ColorSecondary, centered: true})
	}
	rows := (len(p.Technologies) + perRow - 1) / perRow
	b.cursor += float64(rows)*(step+labelH) - config.TechCellGap
}

func (b *layoutBuilder) work(p *config.Portfolio) {
	b.sectionHeading("My work", "Projects.")

	if len(p.Projects) > 0 {
		cols := min(len(p.Projects), 3)
		cardW := (b.width - float64(cols-1)*config.CardGap) / float64(cols)
		textW := cardW - 2*config.CardPadding
		imageH := cardW * 0.6
		rowTop := b.cursor
		rowBottom := b.cursor

		for i, project := range p.Projects {
			col := i % cols
			if col == 0 && i > 0 {
				rowTop = rowBottom + config.CardGap
			}
			x := b.left + float64(col)*(cardW+config.CardGap)
			y := rowTop
			bgIndex := len(b.out.items)

			inner := y + config.CardPadding
			b.projectImage(project, x+config.CardPadding, inner, textW, imageH)
			inner += imageH + config.CardPadding
			inner += b.paragraph(project.Name, b.fonts.card, config.ColorWhite, x+config.CardPadding, inner, textW)
			inner += b.paragraph(richtext.Plain(project.Description), b.fonts.body, config.ColorSecondary, x+config.CardPadding, inner, textW)
			inner += config.SectionHeadingGap

			tagX := x + config.CardPadding
			measure := utils.FaceMeasure(b.fonts.small)
			for _, tag := range project.Tags {
				label := "#" + tag.Name
				clr, _ := config.TagColor(tag.Color)
				w := measure(label)
				if tagX+w > x+config.CardPadding+textW {
					tagX = x + config.CardPadding
					inner += lineHeight(b.fonts.small)
				}
				b.textAt(label, b.fonts.small, clr, tagX, inner)
				tagX += w + config.SectionHeadingGap
			}
			inner += lineHeight(b.fonts.small)
			if project.SourceCodeLink != "" {
				inner += b.paragraph(project.SourceCodeLink, b.fonts.small, config.ColorAccent, x+config.CardPadding, inner, textW)
			}

			cardH := inner + config.CardPadding - y
			b.background(bgIndex, drawItem{kind: itemRect, x: x, y: y, w: cardW, h: cardH, clr: config.ColorTertiary})
			rowBottom = max(rowBottom, y+cardH)
		}
		b.cursor = rowBottom + config.CardGap
	}

	b.testimonials(p)
}

// projectImage 项目截图；无法加载时绘制占位块
func (b *layoutBuilder) projectImage(project config.Project, x, y, w, h float64) {
	if project.Image != "" && b.rm != nil {
		img, err := b.rm.LoadImage(project.Image)
		if err == nil {
			b.add(drawItem{kind: itemImage, x: x, y: y, w: w, h: h, img: img})
			return
		}
		log.Printf("[PortfolioScene] project %q image: %v", project.Name, err)
	}
	b.rect(x, y, w, h, config.ColorBlackCard)
	initial := strings.ToUpper(string([]rune(project.Name)[:1]))
	b.add(drawItem{kind: itemText, x: x + w/2, y: y + h/2, text: initial,
		face: b.fonts.heading, clr: config.ColorAccent, centered: true})
}

func (b *layoutBuilder) testimonials(p *config.Portfolio) {
	if len(p.Testimonials) == 0 {
		return
	}
	b.cursor += config.SectionPaddingTop / 2
	b.sectionHeading("What others say", "Testimonials.")

	cols := min(len(p.Testimonials), 3)
	cardW := (b.width - float64(cols-1)*config.CardGap) / float64(cols)
	textW := cardW - 2*config.CardPadding
	rowTop := b.cursor
	rowBottom := b.cursor

	for i, t := range p.Testimonials {
		col := i % cols
		if col == 0 && i > 0 {
			rowTop = rowBottom + config.CardGap
		}
		x := b.left + float64(col)*(cardW+config.CardGap)
		y := rowTop
		bgIndex := len(b.out.items)

		inner := y + config.CardPadding
		b.textAt("\"", b.fonts.heading, config.ColorWhite, x+config.CardPadding, inner)
		inner += lineHeight(b.fonts.heading)
		inner += b.paragraph(t.Testimonial, b.fonts.body, config.ColorWhite, x+config.CardPadding, inner, textW)
		inner += config.SectionHeadingGap
		b.textAt("@ "+t.Name, b.fonts.bold, config.ColorWhite, x+config.CardPadding, inner)
		inner += lineHeight(b.fonts.bold)
		b.textAt(t.Designation+" of "+t.Company, b.fonts.small, config.ColorSecondary, x+config.CardPadding, inner)
		inner += lineHeight(b.fonts.small)

		cardH := inner + config.CardPadding - y
		b.background(bgIndex, drawItem{kind: itemRect, x: x, y: y, w: cardW, h: cardH, clr: config.ColorBlackCard})
		rowBottom = max(rowBottom, y+cardH)
	}
	b.cursor = rowBottom
}

func (b *layoutBuilder) contact(p *config.Portfolio) {
	cardW := min(b.width, 640)
	x := b.left
	y := b.cursor
	bgIndex := len(b.out.items)

	inner := y + config.CardPadding*2
	b.textAt("GET IN TOUCH", b.fonts.subheading, config.ColorSecondary, x+config.CardPadding*2, inner)
	inner += lineHeight(b.fonts.subheading) + config.SectionHeadingGap
	b.textAt(p.Contact.Heading, b.fonts.heading, config.ColorWhite, x+config.CardPadding*2, inner)
	inner += lineHeight(b.fonts.heading) + config.CardGap
	if p.Contact.Email != "" {
		b.textAt(p.Contact.Email, b.fonts.bold, config.ColorAccent, x+config.CardPadding*2, inner)
		inner += lineHeight(b.fonts.bold) + config.SectionHeadingGap
	}
	inner += b.markdown(p.Contact.Message, config.ColorSecondary, x+config.CardPadding*2, inner, cardW-config.CardPadding*4)

	cardH := inner + config.CardPadding*2 - y
	b.background(bgIndex, drawItem{kind: itemRect, x: x, y: y, w: cardW, h: cardH, clr: config.ColorBlackCard})
	b.cursor = y + cardH
}
