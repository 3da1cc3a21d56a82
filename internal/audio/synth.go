package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate 合成与播放使用的采样率，必须与 ebiten audio.Context 一致
const SampleRate = 48000

// Effect 合成音效类型
type Effect int

const (
	// EffectGranted 密码正确：上行双音铃声
	EffectGranted Effect = iota
	// EffectDenied 密码错误：短促低频蜂鸣
	EffectDenied
	// EffectLaunch 火箭发射：上扫音
	EffectLaunch
	// EffectCatch 小游戏接住爱心
	EffectCatch
)

// 音符频率（Hz）
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteB4 = 493.88
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteF4 = 349.23
	noteA3 = 220.00
	noteB5 = 987.77
	noteE6 = 1318.51
)

// NewEffect 返回音效的 streamer，未知类型返回 nil
func NewEffect(effect Effect, volume float64) beep.Streamer {
	rate := beep.SampleRate(SampleRate)

	var s beep.Streamer
	switch effect {
	case EffectGranted:
		s = beep.Seq(
			tone(noteB5, 90*time.Millisecond, WaveSquare, rate),
			tone(noteE6, 260*time.Millisecond, WaveSquare, rate),
		)
	case EffectDenied:
		s = tone(100, 300*time.Millisecond, WaveSaw, rate)
	case EffectLaunch:
		steps := make([]beep.Streamer, 0, 8)
		for i := 0; i < 8; i++ {
			steps = append(steps, tone(noteA3*math.Pow(2, float64(i)/4), 60*time.Millisecond, WaveTriangle, rate))
		}
		s = beep.Seq(steps...)
	case EffectCatch:
		s = beep.Mix(
			newVolume(tone(noteE5*2, 150*time.Millisecond, WaveSine, rate), 0.7),
			newVolume(tone(noteE5*4, 150*time.Millisecond, WaveSine, rate), 0.3),
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// ambientChords 备用背景音乐的和弦进行（每个和弦两拍）
var ambientChords = [][]float64{
	{noteC4, noteE4, noteG4, noteC5},
	{noteA3, noteC4, noteE4, noteA4},
	{noteF4, noteA4, noteC5, noteE5},
	{noteG4, noteB4, noteD5, noteG4 * 2},
}

// NewAmbientLoop 生成一段可无缝循环的琶音背景音乐
// 没有配置音乐文件时作为替代
func NewAmbientLoop(volume float64) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	const noteLen = 375 * time.Millisecond

	notes := make([]beep.Streamer, 0, len(ambientChords)*8)
	for _, chord := range ambientChords {
		for rep := 0; rep < 2; rep++ {
			for _, freq := range chord {
				pad := NewEnvelope(NewOscillator(freq/2, noteLen, WaveSine, rate), noteLen, noteLen/4, noteLen/3, rate)
				lead := NewEnvelope(NewOscillator(freq, noteLen, WaveTriangle, rate), noteLen, 10*time.Millisecond, noteLen*2/3, rate)
				notes = append(notes, beep.Mix(newVolume(pad, 0.5), newVolume(lead, 0.35)))
			}
		}
	}
	return newVolume(beep.Seq(notes...), volume)
}

// RenderPCM 把 streamer 渲染为 16-bit 小端立体声 PCM
// streamer 必须是有限长度的
func RenderPCM(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}

	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*SampleRate)
	frame := make([]byte, 4)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	return out
}

// toInt16 把 [-1,1] 浮点样本转换为 int16，越界时截断
func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
