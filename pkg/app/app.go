// Package app 提供作品集应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/scenes"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ContentPath 作品集内容文件（YAML 或 TOML），为空使用嵌入的 data/portfolio.yaml
	ContentPath string
	// Watch 监听 ContentPath 的修改并热重载（仅磁盘文件）
	Watch bool
	// ScenePath 英雄场景配置，为空使用嵌入的 data/scene.yaml
	ScenePath string
	// SkipHero 启动时直接关闭英雄层（开发用）
	SkipHero bool
}

// App 组合根，实现 ebiten.Game 接口
//
// 持有英雄层可见状态；状态为 SHOWN 时挂载英雄场景，
// 关闭后切换到作品集场景（此后作品集是唯一渲染的内容）。
type App struct {
	controller   *game.HeroController
	sceneManager *game.SceneManager
	hero         *scenes.HeroScene
	portfolio    *scenes.PortfolioScene
	watcher      *game.ContentWatcher
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源（磁盘路径除外）。
// ctx 控制内容监听协程的生命周期；input 为空时使用 Ebitengine 的真实输入。
func NewApp(ctx context.Context, cfg Config, input utils.InputSource) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 显式指定的路径磁盘优先，与热重载读取同一个文件
	var (
		sceneConfig *config.SceneConfig
		err         error
	)
	if cfg.ScenePath != "" {
		sceneConfig, err = config.LoadSceneConfigFile(cfg.ScenePath)
	} else {
		sceneConfig, err = config.LoadSceneConfig(config.DefaultSceneConfigPath)
	}
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}

	contentPath := cfg.ContentPath
	var content *config.Portfolio
	if contentPath != "" {
		content, err = config.LoadPortfolioFile(contentPath)
	} else {
		contentPath = config.DefaultPortfolioPath
		content, err = config.LoadPortfolio(contentPath)
	}
	if err != nil {
		return nil, fmt.Errorf("作品集内容加载失败: %w", err)
	}
	log.Printf("[App] Loaded content %s (%d projects)", contentPath, len(content.Projects))

	if input == nil {
		input = utils.NewEbitenInput(config.WindowWidth, config.WindowHeight)
	}

	a := &App{
		controller:   game.NewHeroController(),
		sceneManager: game.NewSceneManager(),
		verbose:      cfg.Verbose,
	}

	var portfolioOpts []scenes.PortfolioOption
	if cfg.Watch && cfg.ContentPath != "" {
		watcher, err := game.NewContentWatcher(cfg.ContentPath)
		if err != nil {
			return nil, fmt.Errorf("内容监听启动失败: %w", err)
		}
		watcher.Start(ctx)
		a.watcher = watcher
		portfolioOpts = append(portfolioOpts, scenes.WithContentUpdates(watcher.Updates()))
	}

	resourceManager := game.NewResourceManager()

	a.portfolio, err = scenes.NewPortfolioScene(resourceManager, content, input, portfolioOpts...)
	if err != nil {
		return nil, fmt.Errorf("作品集场景创建失败: %w", err)
	}

	a.hero, err = scenes.NewHeroScene(resourceManager, sceneConfig, input, a.controller.Dismiss,
		scenes.WithNavLinks(content.NavLinks, func(id string) { a.portfolio.JumpTo(id) }))
	if err != nil {
		return nil, fmt.Errorf("英雄场景创建失败: %w", err)
	}

	a.controller.OnDismiss(a.syncMount)
	if cfg.SkipHero {
		log.Printf("[App] SkipHero enabled, dismissing hero at startup")
		a.controller.Dismiss()
	}
	a.syncMount()

	return a, nil
}

// syncMount 按可见状态挂载英雄场景或作品集场景
func (a *App) syncMount() {
	if a.controller.IsShown() {
		a.sceneManager.SwitchTo(a.hero)
		return
	}
	a.sceneManager.SwitchTo(a.portfolio)
}

// Update 更新逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.step()
	return nil
}

// step 推进一帧场景逻辑
func (a *App) step() {
	a.syncMount()
	a.sceneManager.Update(1.0 / config.TicksPerSecond)
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 填充黑色，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Controller 返回英雄层可见状态控制器
func (a *App) Controller() *game.HeroController {
	return a.controller
}

// Hero 返回英雄场景
func (a *App) Hero() *scenes.HeroScene {
	return a.hero
}

// Portfolio 返回作品集场景
func (a *App) Portfolio() *scenes.PortfolioScene {
	return a.portfolio
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
