package game

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/decker502/folio/pkg/config"
	"github.com/fsnotify/fsnotify"
)

// contentDebounce 合并编辑器保存时的连续写事件
const contentDebounce = 100 * time.Millisecond

// ContentWatcher 监视作品集内容文件，修改后重新解析（开发时热重载）
//
// 监视的是文件所在目录而不是文件本身：很多编辑器保存时先写临时文件再重命名，
// 直接监视文件会在第一次保存后丢失。
//
// 解析成功的内容通过 Updates() 发送（缓冲为 1，只保留最新一份）；
// 解析失败只记录日志，场景继续使用旧内容。
type ContentWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *config.Portfolio
}

// NewContentWatcher 创建内容监视器
func NewContentWatcher(path string) (*ContentWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve content path %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &ContentWatcher{
		path:    abs,
		watcher: watcher,
		updates: make(chan *config.Portfolio, 1),
	}, nil
}

// Updates 返回重新加载的内容
func (w *ContentWatcher) Updates() <-chan *config.Portfolio {
	return w.updates
}

// Start 在新的 goroutine 中运行监视循环
func (w *ContentWatcher) Start(ctx context.Context) {
	go w.Run(ctx)
}

// Run 监视循环，阻塞直到 ctx 取消或监视器出错关闭
func (w *ContentWatcher) Run(ctx context.Context) {
	defer w.watcher.Close()
	log.Printf("[ContentWatcher] watching %s", w.path)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			log.Printf("[ContentWatcher] stopped")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce = time.After(contentDebounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[ContentWatcher] watch error: %v", err)

		case <-debounce:
			debounce = nil
			w.reload()
		}
	}
}

// reload 重新解析文件并发送，旧的未读内容被替换
func (w *ContentWatcher) reload() {
	portfolio, err := config.LoadPortfolioFile(w.path)
	if err != nil {
		log.Printf("[ContentWatcher] reload failed, keeping previous content: %v", err)
		return
	}

	select {
	case <-w.updates:
	default:
	}
	w.updates <- portfolio
	log.Printf("[ContentWatcher] reloaded %s", filepath.Base(w.path))
}
