package game

import (
	"log"

	missionaudio "github.com/gonewx/moonmission/internal/audio"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 持有唯一的背景音乐播放器（文件或合成的备用循环）
//   - 播放合成的界面音效（密码正确/错误、发射、小游戏）
//   - 实现 MusicPlayer，供 MusicToggle 控制
type AudioManager struct {
	resourceManager *ResourceManager
	music           *audio.Player
	musicSource     string
	musicVolume     float64
	soundVolume     float64
	sounds          map[missionaudio.Effect][]byte
}

// NewAudioManager 创建新的音频管理器
func NewAudioManager(rm *ResourceManager, musicVolume, soundVolume float64) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		musicVolume:     clampVolume(musicVolume),
		soundVolume:     clampVolume(soundVolume),
		sounds:          make(map[missionaudio.Effect][]byte),
	}
}

// LoadMusic 加载背景音乐
//
// path 为空或加载失败时使用合成的备用循环音乐；两者都失败时没有背景音乐，
// 之后的 Play 调用返回 ErrNoMusic（由 MusicToggle 记录日志）。
func (am *AudioManager) LoadMusic(path string) {
	if path != "" {
		player, err := am.resourceManager.LoadAudio(path)
		if err == nil {
			am.setMusic(player, path)
			return
		}
		log.Printf("[AudioManager] Warning: failed to load music %s: %v (falling back to synthesized loop)", path, err)
	}

	pcm := missionaudio.RenderPCM(missionaudio.NewAmbientLoop(1.0))
	player, err := am.resourceManager.NewLoopPlayer(pcm)
	if err != nil {
		log.Printf("[AudioManager] Warning: no background music available: %v", err)
		return
	}
	am.setMusic(player, "synth:ambient")
}

func (am *AudioManager) setMusic(player *audio.Player, source string) {
	player.SetVolume(am.musicVolume)
	am.music = player
	am.musicSource = source
	log.Printf("[AudioManager] Background music ready: %s (volume: %.2f)", source, am.musicVolume)
}

// PrepareEffects 预先合成全部界面音效
func (am *AudioManager) PrepareEffects() {
	effects := []missionaudio.Effect{
		missionaudio.EffectGranted,
		missionaudio.EffectDenied,
		missionaudio.EffectLaunch,
		missionaudio.EffectCatch,
	}
	for _, effect := range effects {
		am.sounds[effect] = missionaudio.RenderPCM(missionaudio.NewEffect(effect, 1.0))
	}
}

// PlaySound 播放音效，返回是否成功
func (am *AudioManager) PlaySound(effect missionaudio.Effect) bool {
	ctx := am.resourceManager.AudioContext()
	if ctx == nil {
		return false
	}
	pcm, ok := am.sounds[effect]
	if !ok || len(pcm) == 0 {
		return false
	}
	player := ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(am.soundVolume)
	player.Play()
	return true
}

// Play 实现 MusicPlayer
func (am *AudioManager) Play() error {
	if am.music == nil {
		return ErrNoMusic
	}
	am.music.Play()
	return nil
}

// Pause 实现 MusicPlayer
func (am *AudioManager) Pause() {
	if am.music != nil {
		am.music.Pause()
	}
}

// MusicSource 返回当前背景音乐来源（文件路径或 synth:ambient）
func (am *AudioManager) MusicSource() string {
	return am.musicSource
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
