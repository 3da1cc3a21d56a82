package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce 文件停止变化这么久之后才重新加载（编辑器保存常产生多个事件）
const watchDebounce = 100 * time.Millisecond

// ContentWatcher 监听任务内容文件，变化时重新加载
//
// 监听的是文件所在目录而不是文件本身，这样编辑器"写临时文件再重命名"的保存方式也能被捕获。
// 重新加载成功的内容通过 Updates 发送，游戏主循环在 Update 中非阻塞地读取；
// 解析失败通过 Errors 发送，旧内容保持不变。
type ContentWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan *MissionConfig
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewContentWatcher 开始监听 path
func NewContentWatcher(path string) (*ContentWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	cw := &ContentWatcher{
		path:    abs,
		watcher: w,
		Updates: make(chan *MissionConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go cw.run()

	log.Printf("[ContentWatcher] Watching %s", abs)
	return cw, nil
}

// Close 停止监听，可重复调用
func (cw *ContentWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
		<-cw.done
	})
	return err
}

// Poll 非阻塞地取出最新一次重新加载的内容，没有时返回 nil
// 解析错误只记录日志
func (cw *ContentWatcher) Poll() *MissionConfig {
	select {
	case err, ok := <-cw.Errors:
		if ok {
			log.Printf("[ContentWatcher] Warning: reload failed, keeping previous content: %v", err)
		}
	default:
	}

	select {
	case cfg, ok := <-cw.Updates:
		if ok {
			return cfg
		}
	default:
	}
	return nil
}

func (cw *ContentWatcher) run() {
	defer func() {
		close(cw.Updates)
		close(cw.Errors)
		close(cw.done)
	}()

	// pending 非 nil 表示有尚未处理的变化
	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			pending = time.After(watchDebounce)
		case <-pending:
			pending = nil
			cw.reload()
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.sendError(err)
		case <-cw.closeCh:
			return
		}
	}
}

// reload 重新解析文件，只保留最新的一份结果
func (cw *ContentWatcher) reload() {
	cfg, err := LoadMissionConfig(cw.path)
	if err != nil {
		cw.sendError(err)
		return
	}

	// 丢弃尚未被读取的旧结果
	select {
	case <-cw.Updates:
	default:
	}
	select {
	case cw.Updates <- cfg:
	case <-cw.closeCh:
	}
}

func (cw *ContentWatcher) sendError(err error) {
	select {
	case cw.Errors <- err:
	default:
	}
}
