package main

import (
	"flag"
	"log"

	"github.com/gonewx/moonmission/pkg/app"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	content := flag.String("content", "", "任务内容 YAML 文件（默认使用内置内容）")
	secretFile := flag.String("secret-file", "", "本地密码文件（默认 secret.yaml）")
	music := flag.String("music", "", "背景音乐文件（mp3/ogg/wav）")
	watch := flag.Bool("watch", false, "监听 --content 文件变化并热重载")
	fullscreen := flag.Bool("fullscreen", false, "全屏启动")
	flag.Parse()

	// 环境变量提供默认值，命令行参数优先
	env, err := config.LoadEnvOverrides()
	if err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["verbose"] {
		*verbose = env.Verbose
	}
	if !set["content"] {
		*content = env.Content
	}
	if !set["music"] {
		*music = env.Music
	}
	if !set["watch"] {
		*watch = env.Watch
	}
	if !set["fullscreen"] {
		*fullscreen = env.Fullscreen
	}

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ContentPath: *content,
		SecretFile:  *secretFile,
		MusicPath:   *music,
		Watch:       *watch,
		AppName:     env.AppName,
	})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(gameApp.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
