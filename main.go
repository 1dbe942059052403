package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/folio/pkg/app"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	content    = flag.String("content", "", "作品集内容文件（.yaml 或 .toml），默认使用内置内容")
	watch      = flag.Bool("watch", false, "监听 -content 文件的修改并热重载")
	scenePath  = flag.String("scene", "", "英雄场景配置文件，默认使用内置 data/scene.yaml")
	skipHero   = flag.Bool("skip-hero", false, "跳过英雄层，直接显示作品集")
	fullscreen = flag.Bool("fullscreen", false, "全屏启动")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	if *watch && *content == "" {
		log.Fatal("-watch requires -content <file>")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	folio, err := app.NewApp(ctx, app.Config{
		Verbose:     *verbose,
		ContentPath: *content,
		Watch:       *watch,
		ScenePath:   *scenePath,
		SkipHero:    *skipHero,
	}, nil)
	if err != nil {
		// NewApp 在非 verbose 模式下关闭了日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGameWithOptions(&quitOnCancel{App: folio, ctx: ctx}, nil); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

// quitOnCancel 收到中断信号时结束游戏循环
type quitOnCancel struct {
	*app.App
	ctx context.Context
}

func (q *quitOnCancel) Update() error {
	if q.ctx.Err() != nil {
		return ebiten.Termination
	}
	return q.App.Update()
}
