package scenes

import (
	"errors"
	"log"

	"github.com/decker502/folio/internal/mesh"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/entities"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/systems"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PortfolioScene 可滚动的作品集页面
//
// 页面自上而下依次为：导航栏、关于、经历、技术栈、作品、联系。
// 导航栏固定在顶部，其余区块随滚动偏移移动。技术栈中的螺母是
// 独立的网格实体，视口随滚动偏移更新，可以拖拽旋转。
type PortfolioScene struct {
	resourceManager *game.ResourceManager
	source          utils.InputSource
	input           utils.InputState
	// scrollInput 滚动系统读取的输入；拖拽螺母时屏蔽触摸拖拽滚动
	scrollInput utils.InputState

	content *config.Portfolio
	updates <-chan *config.Portfolio

	width, height int
	fonts         pageFonts
	layout        pageLayout

	// ECS
	entityManager      *ecs.EntityManager
	scrollSystem       *systems.ScrollSystem
	floatSystem        *systems.FloatSystem
	dragRotateSystem   *systems.DragRotateSystem
	meshRenderSystem   *systems.MeshRenderSystem
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	scrollEntity ecs.EntityID
	nuts         []ecs.EntityID

	mounted        bool
	pendingSection string
}

// PortfolioOption 作品集场景选项
type PortfolioOption func(*PortfolioScene)

// WithContentUpdates 接收内容热重载（每帧非阻塞读取）
func WithContentUpdates(updates <-chan *config.Portfolio) PortfolioOption {
	return func(s *PortfolioScene) {
		s.updates = updates
	}
}

// WithPortfolioSize 设置逻辑屏幕尺寸
func WithPortfolioSize(width, height int) PortfolioOption {
	return func(s *PortfolioScene) {
		s.width, s.height = width, height
	}
}

// NewPortfolioScene 创建作品集场景
// 实体在 Mount 时创建
func NewPortfolioScene(rm *game.ResourceManager, content *config.Portfolio, source utils.InputSource, opts ...PortfolioOption) (*PortfolioScene, error) {
	if content == nil {
		return nil, errors.New("portfolio scene requires content")
	}

	s := &PortfolioScene{
		resourceManager: rm,
		source:          source,
		content:         content,
		width:           config.WindowWidth,
		height:          config.WindowHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.fonts = newPageFonts(rm)

	s.entityManager = ecs.NewEntityManager()
	s.scrollSystem = systems.NewScrollSystem(s.entityManager, &s.scrollInput, float64(s.height)-config.NavBarHeight)
	s.floatSystem = systems.NewFloatSystem(s.entityManager)
	s.dragRotateSystem = systems.NewDragRotateSystem(s.entityManager, &s.input, config.NavBarHeight)
	s.meshRenderSystem = systems.NewMeshRenderSystem(s.entityManager, entities.TechLighting())
	s.buttonSystem = systems.NewButtonSystem(s.entityManager, &s.input)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(s.entityManager)
	return s, nil
}

// String 场景名称（日志用）
func (s *PortfolioScene) String() string {
	return "PortfolioScene"
}

// Mount 排版页面并创建实体
// 挂载前通过 JumpTo 选择的区块立即生效（不经过平滑滚动）
func (s *PortfolioScene) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.rebuild(0)

	if s.pendingSection != "" {
		if y, ok := s.layout.anchors[s.pendingSection]; ok {
			sc := s.scroll()
			systems.ScrollTo(sc, y)
			sc.Offset = sc.Target
			s.syncNutViewports()
		}
		s.pendingSection = ""
	}
	log.Printf("[PortfolioScene] mounted (content height %.0f)", s.layout.height)
}

// Unmount 清空所有实体
func (s *PortfolioScene) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.nuts = nil
	s.entityManager.Clear()
}

// IsMounted 场景是否已挂载
func (s *PortfolioScene) IsMounted() bool {
	return s.mounted
}

// JumpTo 滚动到指定区块
// 未挂载时记录下来，挂载时直接定位；未知区块返回 false
func (s *PortfolioScene) JumpTo(id string) bool {
	if !config.IsSectionID(id) {
		log.Printf("[PortfolioScene] unknown section %q", id)
		return false
	}
	if !s.mounted {
		s.pendingSection = id
		return true
	}
	if y, ok := s.layout.anchors[id]; ok {
		systems.ScrollTo(s.scroll(), y)
	}
	return true
}

// SetContent 替换页面内容，保留当前滚动位置
func (s *PortfolioScene) SetContent(p *config.Portfolio) {
	if p == nil {
		return
	}
	s.content = p
	if !s.mounted {
		return
	}
	offset := s.ScrollOffset()
	s.rebuild(offset)
	log.Printf("[PortfolioScene] content reloaded")
}

// Content 当前页面内容
func (s *PortfolioScene) Content() *config.Portfolio {
	return s.content
}

// ScrollOffset 当前滚动偏移
func (s *PortfolioScene) ScrollOffset() float64 {
	sc, ok := ecs.GetComponent[*components.ScrollComponent](s.entityManager, s.scrollEntity)
	if !ok {
		return 0
	}
	return sc.Offset
}

// ContentHeight 页面总高度（含导航栏）
func (s *PortfolioScene) ContentHeight() float64 {
	return s.layout.height
}

// Anchor 区块的滚动目标
func (s *PortfolioScene) Anchor(id string) (float64, bool) {
	y, ok := s.layout.anchors[id]
	return y, ok
}

// Sections 按渲染顺序返回页面组成部分，导航栏在最前
func (s *PortfolioScene) Sections() []string {
	out := []string{"nav"}
	for _, id := range config.SectionIDs {
		if _, ok := s.layout.anchors[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Update 推进一帧
func (s *PortfolioScene) Update(deltaTime float64) {
	if !s.mounted {
		return
	}
	s.drainUpdates()
	if s.source != nil {
		s.input = s.source.Poll()
	}

	s.dragRotateSystem.Update(deltaTime)
	s.scrollInput = s.input
	if s.dragRotateSystem.Active() != 0 {
		s.scrollInput.IsTouch = false
	}
	s.scrollSystem.Update(deltaTime)
	s.floatSystem.Update(deltaTime)
	s.meshRenderSystem.Update(deltaTime)
	s.syncNutViewports()
	s.buttonSystem.Update(deltaTime)
}

// Draw 绘制页面
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	if !s.mounted {
		return
	}
	screen.Fill(config.ColorPrimary)

	offset := s.ScrollOffset()
	for i := range s.layout.items {
		s.drawEntry(screen, &s.layout.items[i], offset)
	}
	s.meshRenderSystem.Draw(screen)

	// 导航栏固定在顶部，覆盖滚动内容
	vector.DrawFilledRect(screen, 0, 0, float32(s.width), config.NavBarHeight, config.ColorNavBar, false)
	s.buttonRenderSystem.Draw(screen)
}

func (s *PortfolioScene) drainUpdates() {
	if s.updates == nil {
		return
	}
	select {
	case p, ok := <-s.updates:
		if ok {
			s.SetContent(p)
		}
	default:
	}
}

// rebuild 重新排版并重建实体，偏移被截断到新的可滚动范围
func (s *PortfolioScene) rebuild(offset float64) {
	s.entityManager.Clear()
	s.nuts = s.nuts[:0]
	s.layout = buildLayout(s.resourceManager, s.fonts, s.content, float64(s.width))

	s.scrollEntity = s.entityManager.CreateEntity()
	maxOffset := max(0, s.layout.height-float64(s.height))
	offset = utils.Clamp(offset, 0, maxOffset)
	ecs.AddComponent(s.entityManager, s.scrollEntity, &components.ScrollComponent{
		Offset:    offset,
		Target:    offset,
		Max:       maxOffset,
		Smoothing: config.ScrollSmoothing,
	})

	s.createNavBar()
	for i, cell := range s.layout.techCells {
		s.nuts = append(s.nuts, entities.NewTechNut(s.entityManager, i, cell.tech, mesh.Viewport{}, cell.icon))
	}
	s.syncNutViewports()
}

// createNavBar 左侧为主人名称（回到顶部），右侧为导航链接
func (s *PortfolioScene) createNavBar() {
	face := s.fonts.bold
	left := (float64(s.width) - min(config.ContentMaxWidth, float64(s.width)-2*config.CardPadding)) / 2

	home := entities.ButtonSpec{Label: s.content.Owner.Name, Font: face, Style: components.ButtonStyleLink}
	_, h := entities.MeasureButton(home)
	y := (config.NavBarHeight - h) / 2
	entities.NewButton(s.entityManager, left, y, home, func() {
		systems.ScrollTo(s.scroll(), 0)
	})

	x := float64(s.width) - left
	links := s.content.NavLinks
	for i := len(links) - 1; i >= 0; i-- {
		link := links[i]
		spec := entities.ButtonSpec{Label: link.Title, Font: s.fonts.body, Style: components.ButtonStyleLink}
		w, _ := entities.MeasureButton(spec)
		x -= w
		entities.NewButton(s.entityManager, x, y, spec, func() {
			s.JumpTo(link.ID)
		})
		x -= config.HeroNavSpacing
	}
}

func (s *PortfolioScene) scroll() *components.ScrollComponent {
	sc, ok := ecs.GetComponent[*components.ScrollComponent](s.entityManager, s.scrollEntity)
	if !ok {
		// 未挂载时返回一个不会被使用的组件
		return &components.ScrollComponent{}
	}
	return sc
}

// syncNutViewports 按滚动偏移更新螺母视口
func (s *PortfolioScene) syncNutViewports() {
	offset := s.ScrollOffset()
	for i, id := range s.nuts {
		m, ok := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
		if !ok || i >= len(s.layout.techCells) {
			continue
		}
		cell := s.layout.techCells[i]
		m.Viewport = mesh.Viewport{
			X:      float32(cell.x),
			Y:      float32(cell.y - offset),
			Width:  config.TechCellSize,
			Height: config.TechCellSize,
		}
	}
}

// drawEntry 绘制显示列表条目，完全位于屏幕外的条目跳过
func (s *PortfolioScene) drawEntry(screen *ebiten.Image, it *drawItem, offset float64) {
	y := it.y - offset
	h := it.h
	if it.kind == itemText && it.face != nil {
		h = lineHeight(it.face)
		if it.centered {
			y -= h / 2
		}
	}
	if y > float64(s.height) || y+h < 0 {
		return
	}

	switch it.kind {
	case itemRect:
		vector.DrawFilledRect(screen, float32(it.x), float32(y), float32(it.w), float32(it.h), it.clr, false)
	case itemStroke:
		vector.StrokeRect(screen, float32(it.x), float32(y), float32(it.w), float32(it.h), 1, it.clr, false)
	case itemImage:
		if it.img == nil {
			return
		}
		bounds := it.img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(it.w/float64(bounds.Dx()), it.h/float64(bounds.Dy()))
		op.GeoM.Translate(it.x, y)
		op.Filter = ebiten.FilterLinear
		if it.clr.A != 0 {
			op.ColorScale.ScaleWithColor(it.clr)
		}
		screen.DrawImage(it.img, op)
	case itemText:
		if it.face == nil || it.text == "" {
			return
		}
		op := &text.DrawOptions{}
		ty := it.y - offset
		if it.centered {
			op.LayoutOptions.PrimaryAlign = text.AlignCenter
			op.LayoutOptions.SecondaryAlign = text.AlignCenter
		}
		op.GeoM.Translate(it.x, ty)
		op.ColorScale.ScaleWithColor(it.clr)
		text.Draw(screen, it.text, it.face, op)
	}
}
