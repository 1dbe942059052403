package scenes

import (
	"errors"
	"image/color"
	"log"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/entities"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/systems"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// mobileBreakpoint 屏幕宽度不超过此值时使用移动布局
const mobileBreakpoint = 500

// HeroScene 英雄层：指针驱动的扭曲网格、视差标题和关闭入口
//
// 场景只在英雄层可见时挂载。每帧采样一次指针，旋转向
// (pointerY × k, pointerX × k) 平滑靠近。Explore、Close、导航链接和
// Enter/Space 都调用构造时传入的 dismiss 回调；回调可以被重复调用。
type HeroScene struct {
	resourceManager *game.ResourceManager
	cfg             *config.SceneConfig
	source          utils.InputSource
	input           utils.InputState
	dismiss         func()

	width, height int
	mobile        bool
	mobileSet     bool
	navLinks      []config.NavLink
	onSelect      func(id string)

	// ECS
	entityManager      *ecs.EntityManager
	pointerSystem      *systems.PointerSystem
	rotationSystem     *systems.RotationSystem
	parallaxSystem     *systems.ParallaxTextSystem
	meshRenderSystem   *systems.MeshRenderSystem
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	meshEntity   ecs.EntityID
	meshAttached bool
	mounted      bool
	background   color.RGBA
}

// HeroOption 英雄场景选项
type HeroOption func(*HeroScene)

// WithNavLinks 在英雄层显示导航链接
// 点击链接先调用 onSelect(id)，再调用 dismiss
func WithNavLinks(links []config.NavLink, onSelect func(id string)) HeroOption {
	return func(s *HeroScene) {
		s.navLinks = links
		s.onSelect = onSelect
	}
}

// WithScreenSize 设置逻辑屏幕尺寸（默认 config.WindowWidth × config.WindowHeight）
func WithScreenSize(width, height int) HeroOption {
	return func(s *HeroScene) {
		s.width, s.height = width, height
	}
}

// WithMobile 强制移动端布局（默认按屏幕宽度和 utils.IsMobile 判断）
func WithMobile(mobile bool) HeroOption {
	return func(s *HeroScene) {
		s.mobile = mobile
		s.mobileSet = true
	}
}

// NewHeroScene 创建英雄场景
//
// 参数：
//   - rm: 资源管理器（字体）
//   - cfg: 场景配置（已校验）
//   - source: 输入源
//   - dismiss: 关闭英雄层的回调，不能为空
func NewHeroScene(rm *game.ResourceManager, cfg *config.SceneConfig, source utils.InputSource, dismiss func(), opts ...HeroOption) (*HeroScene, error) {
	if dismiss == nil {
		return nil, errors.New("hero scene requires a dismiss callback")
	}
	if cfg == nil {
		cfg = config.DefaultSceneConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &HeroScene{
		resourceManager: rm,
		cfg:             cfg,
		source:          source,
		dismiss:         dismiss,
		width:           config.WindowWidth,
		height:          config.WindowHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.mobileSet {
		s.mobile = utils.IsMobile() || s.width <= mobileBreakpoint
	}
	s.background = utils.MustParseHexColor(cfg.Background, config.ColorHeroOverlay)

	s.entityManager = ecs.NewEntityManager()
	s.pointerSystem = systems.NewPointerSystem(s.entityManager, &s.input, s.width, s.height)
	s.rotationSystem = systems.NewRotationSystem(s.entityManager)
	s.parallaxSystem = systems.NewParallaxTextSystem(s.entityManager, cfg.Title.Parallax, cfg.Rotation.Smoothing)
	s.meshRenderSystem = systems.NewMeshRenderSystem(s.entityManager, entities.LightingFromConfig(cfg.Lights))
	s.buttonSystem = systems.NewButtonSystem(s.entityManager, &s.input)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(s.entityManager)
	return s, nil
}

// String 场景名称（日志用）
func (s *HeroScene) String() string {
	return "HeroScene"
}

// Mount 创建网格、标题和按钮实体
func (s *HeroScene) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.meshAttached = false
	s.meshEntity = entities.NewHeroMesh(s.entityManager, s.cfg)
	s.createTitle()
	s.createControls()
	log.Printf("[HeroScene] mounted (%dx%d, mobile=%v)", s.width, s.height, s.mobile)
}

// Unmount 清空所有实体
func (s *HeroScene) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.meshAttached = false
	s.entityManager.Clear()
	log.Printf("[HeroScene] unmounted")
}

// IsMounted 场景是否已挂载
func (s *HeroScene) IsMounted() bool {
	return s.mounted
}

// Rotation 返回网格当前的旋转角 (x, y)
func (s *HeroScene) Rotation() (x, y float64) {
	rot, ok := ecs.GetComponent[*components.RotationComponent](s.entityManager, s.meshEntity)
	if !ok {
		return 0, 0
	}
	return rot.X, rot.Y
}

// Update 推进一帧
func (s *HeroScene) Update(deltaTime float64) {
	if !s.mounted {
		return
	}
	if s.source != nil {
		s.input = s.source.Poll()
	}

	s.pointerSystem.Update(deltaTime)
	s.rotationSystem.Update(deltaTime)
	s.parallaxSystem.Update(deltaTime)
	s.meshRenderSystem.Update(deltaTime)

	// 网格在第一帧旋转更新之后挂载，挂载前旋转系统跳过该实体
	if !s.meshAttached {
		if err := entities.AttachHeroMesh(s.entityManager, s.meshEntity, s.cfg, s.width, s.height, s.mobile); err != nil {
			log.Printf("[HeroScene] %v", err)
		}
		s.meshAttached = true
	}

	// 按钮回调可能卸载本场景
	s.buttonSystem.Update(deltaTime)
	if !s.mounted {
		return
	}

	if s.cfg.Controls.KeyboardDismiss && s.input.Confirm {
		log.Printf("[HeroScene] keyboard dismiss")
		s.dismiss()
	}
}

// Draw 绘制背景、网格、标题和控件
func (s *HeroScene) Draw(screen *ebiten.Image) {
	if !s.mounted {
		return
	}
	screen.Fill(s.background)
	s.meshRenderSystem.Draw(screen)
	s.parallaxSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
}

// createTitle 标题和副标题，中心位于屏幕下部
func (s *HeroScene) createTitle() {
	title := s.cfg.Title
	clr := utils.MustParseHexColor(title.Color, config.ColorWhite)
	cx := float64(s.width) / 2
	ty := float64(s.height) * config.HeroTitleY

	titleSize := config.HeroTitleFontSize
	if s.mobile {
		titleSize *= 0.6
	}
	if title.Text != "" {
		entities.NewParallaxText(s.entityManager, title.Text, s.resourceManager.DefaultFont(titleSize, true), clr, cx, ty, 1)
	}
	if title.Subtitle != "" {
		sy := ty + titleSize/2 + config.HeroSubtitleGap + config.HeroSubtitleFontSize/2
		entities.NewParallaxText(s.entityManager, title.Subtitle, s.resourceManager.DefaultFont(config.HeroSubtitleFontSize, false), config.ColorSecondary, cx, sy, 0.5)
	}
}

// createControls Explore、Close 和导航链接
func (s *HeroScene) createControls() {
	controls := s.cfg.Controls
	face := s.resourceManager.DefaultFont(config.ButtonFontSize, true)

	if controls.ExploreLabel != "" {
		spec := entities.ButtonSpec{Label: controls.ExploreLabel, Font: face, Style: components.ButtonStylePrimary}
		w, _ := entities.MeasureButton(spec)
		y := float64(s.height)*config.HeroTitleY + config.HeroTitleFontSize/2 +
			config.HeroSubtitleGap + config.HeroSubtitleFontSize + config.HeroExploreGap
		entities.NewButton(s.entityManager, (float64(s.width)-w)/2, y, spec, s.clicked("explore"))
	}

	if controls.CloseLabel != "" {
		spec := entities.ButtonSpec{Label: controls.CloseLabel, Font: face, Style: components.ButtonStyleOutline}
		entities.NewButton(s.entityManager, config.HeroCloseX, config.HeroCloseY, spec, s.clicked("close"))
	}

	if controls.ShowNavLinks && len(s.navLinks) > 0 {
		s.createNavLinks()
	}
}

// createNavLinks 右上角导航链接，从右向左排列
func (s *HeroScene) createNavLinks() {
	face := s.resourceManager.DefaultFont(config.ButtonFontSize, false)
	x := float64(s.width) - config.HeroNavRightMargin

	for i := len(s.navLinks) - 1; i >= 0; i-- {
		link := s.navLinks[i]
		spec := entities.ButtonSpec{Label: link.Title, Font: face, Style: components.ButtonStyleLink}
		w, _ := entities.MeasureButton(spec)
		x -= w
		entities.NewButton(s.entityManager, x, config.HeroNavY, spec, s.selectSection(link.ID))
		x -= config.HeroNavSpacing
	}
}

func (s *HeroScene) clicked(name string) func() {
	return func() {
		log.Printf("[HeroScene] %s clicked", name)
		s.dismiss()
	}
}

func (s *HeroScene) selectSection(id string) func() {
	return func() {
		log.Printf("[HeroScene] nav link %q clicked", id)
		if s.onSelect != nil {
			s.onSelect(id)
		}
		s.dismiss()
	}
}
