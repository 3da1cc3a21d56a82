package game

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// SessionStore 会话级键值存储
//
// 用于小游戏与主流程之间的一次性交接：小游戏通关后写入 gameCompleted，
// 主流程启动时读取并立即删除。
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemorySessionStore 内存实现（测试和降级模式使用）
type MemorySessionStore struct {
	values map[string]string
}

// NewMemorySessionStore 创建内存会话存储
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{values: make(map[string]string)}
}

// Get 读取键值
func (s *MemorySessionStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set 写入键值
func (s *MemorySessionStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

// Delete 删除键，不存在时无效果
func (s *MemorySessionStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

// sessionObject gdata 中会话数据所在的对象名
const sessionObject = "session"

// GdataSessionStore 基于 gdata 的会话存储
//
// 每个值都带上本进程的会话标识（nonce）写入。标识不符的值属于上一次启动，
// 读取时视为不存在并删除，打开时也会一并清理，
// 因此通关标记只在当前进程内的重新加载之间有效，不会带到下一次冷启动。
type GdataSessionStore struct {
	manager *gdata.Manager
	nonce   string
}

// NewGdataSessionStore 使用已打开的 gdata Manager 创建会话存储，
// 并清理之前进程留下的会话数据
func NewGdataSessionStore(manager *gdata.Manager) *GdataSessionStore {
	return newGdataSessionStore(manager, newSessionNonce())
}

func newGdataSessionStore(manager *gdata.Manager, nonce string) *GdataSessionStore {
	s := &GdataSessionStore{manager: manager, nonce: nonce}
	s.purgeStale()
	return s
}

func newSessionNonce() string {
	return strconv.Itoa(os.Getpid()) + "-" + strconv.FormatInt(time.Now().UnixNano(), 36)
}

// purgeStale 删除不属于本会话的键
func (s *GdataSessionStore) purgeStale() {
	keys, err := s.manager.ListObjectProps(sessionObject)
	if err != nil {
		log.Printf("[SessionStore] Warning: failed to list session keys: %v", err)
		return
	}
	for _, key := range keys {
		s.Get(key) // 标识不符的键在 Get 中删除
	}
}

// Get 读取键值；读取失败或属于其他会话的值都视为不存在
func (s *GdataSessionStore) Get(key string) (string, bool) {
	if !s.manager.ObjectPropExists(sessionObject, key) {
		return "", false
	}
	data, err := s.manager.LoadObjectProp(sessionObject, key)
	if err != nil {
		log.Printf("[SessionStore] Warning: failed to load %s: %v", key, err)
		return "", false
	}
	nonce, value, found := strings.Cut(string(data), "\n")
	if !found || nonce != s.nonce {
		log.Printf("[SessionStore] Discarding stale %s from a previous session", key)
		if err := s.manager.DeleteObjectProp(sessionObject, key); err != nil {
			log.Printf("[SessionStore] Warning: failed to delete stale %s: %v", key, err)
		}
		return "", false
	}
	return value, true
}

// Set 写入键值
func (s *GdataSessionStore) Set(key, value string) error {
	data := []byte(s.nonce + "\n" + value)
	if err := s.manager.SaveObjectProp(sessionObject, key, data); err != nil {
		return fmt.Errorf("failed to save session key %s: %w", key, err)
	}
	return nil
}

// Delete 删除键
func (s *GdataSessionStore) Delete(key string) error {
	if !s.manager.ObjectPropExists(sessionObject, key) {
		return nil
	}
	if err := s.manager.DeleteObjectProp(sessionObject, key); err != nil {
		return fmt.Errorf("failed to delete session key %s: %w", key, err)
	}
	return nil
}

// OpenSessionStore 打开会话存储，每次调用代表一次新的会话
//
// gdata 初始化失败时降级为内存存储（仅当前进程内有效），不影响应用运行。
func OpenSessionStore(appName string) SessionStore {
	if err := utils.EnsureStorageDir(appName); err != nil {
		log.Printf("[SessionStore] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[SessionStore] Warning: gdata unavailable (%v), using in-memory session store", err)
		return NewMemorySessionStore()
	}
	return NewGdataSessionStore(manager)
}
