package game

import (
	"errors"
	"log"
)

// ErrNoMusic 没有可播放的背景音乐
var ErrNoMusic = errors.New("no background music loaded")

// MusicPlayer 背景音乐播放能力
type MusicPlayer interface {
	// Play 开始或继续播放，失败时返回错误（如音频设备不可用）
	Play() error
	// Pause 暂停
	Pause()
}

// MusicToggle 背景音乐开关
//
// 二元状态：播放 / 暂停。首次用户点击（任意位置）时尝试自动播放一次，
// 之后只能通过开关按钮切换。播放失败只记录日志，状态保持"未播放"，用户可再次点击重试。
type MusicToggle struct {
	player  MusicPlayer
	playing bool
	armed   bool // 首次点击自动播放是否仍然有效

	// OnChange 状态变化回调（更新按钮图标），可为 nil
	OnChange func(playing bool)
}

// NewMusicToggle 创建音乐开关
func NewMusicToggle(player MusicPlayer) *MusicToggle {
	return &MusicToggle{
		player: player,
		armed:  true,
	}
}

// Playing 是否正在播放
func (m *MusicToggle) Playing() bool {
	return m.playing
}

// Toggle 切换播放状态
func (m *MusicToggle) Toggle() {
	if m.playing {
		m.Pause()
	} else {
		m.Play()
	}
}

// Play 尝试播放，返回是否成功
func (m *MusicToggle) Play() bool {
	if m.player == nil {
		log.Printf("[MusicToggle] Music playback failed: %v", ErrNoMusic)
		return false
	}
	if err := m.player.Play(); err != nil {
		log.Printf("[MusicToggle] Music playback failed: %v", err)
		return false
	}
	m.setPlaying(true)
	return true
}

// Pause 暂停播放
func (m *MusicToggle) Pause() {
	if m.player != nil {
		m.player.Pause()
	}
	m.setPlaying(false)
}

// OnGlobalClick 任意位置的点击
// 仅第一次有效：若尚未播放则尝试播放，然后解除监听
func (m *MusicToggle) OnGlobalClick() {
	if !m.armed {
		return
	}
	m.armed = false
	if !m.playing {
		m.Play()
	}
}

func (m *MusicToggle) setPlaying(playing bool) {
	changed := m.playing != playing
	m.playing = playing
	if changed && m.OnChange != nil {
		m.OnChange(playing)
	}
}
