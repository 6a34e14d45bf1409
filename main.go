package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/anniversary/pkg/app"
	"github.com/decker502/anniversary/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	fullscreen = flag.Bool("fullscreen", false, "以全屏启动")
	music      = flag.String("music", "", "背景音乐开关 on/off（写入设置；默认沿用已保存的设置）")
	cardPath   = flag.String("card", "", "贺卡配置文件路径（默认使用内置 data/card.yaml）")
	seed       = flag.Uint64("seed", 0, "闪光粒子随机种子（0 表示随机）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源；工作目录中的同名文件优先（替换照片和音乐）
	embedded.Init(assetsFS, dataFS)
	embedded.SetOverlay(os.DirFS("."))

	cardApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Fullscreen: *fullscreen,
		Music:      *music,
		CardPath:   *cardPath,
		Seed:       *seed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("贺卡初始化失败: %v", err)
	}

	window := cardApp.Card().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cardApp.Fullscreen())

	if err := ebiten.RunGame(cardApp); err != nil {
		// log.Fatal 不执行 defer，先释放场景并保存设置
		cardApp.Close()
		log.Fatal(err)
	}
	cardApp.Close()
}
