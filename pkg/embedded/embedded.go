// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 可选的覆盖层（通常是工作目录）优先于嵌入资源：
// 把自己的 assets/images/photo.png 放在可执行文件旁边即可替换默认资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	overlayFS   fs.FS
	initialized bool
)

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// SetOverlay 设置覆盖层文件系统，传入 nil 关闭覆盖
func SetOverlay(overlay fs.FS) {
	overlayFS = overlay
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// HasKnownPrefix 判断路径是否属于嵌入资源（assets/ 或 data/）
func HasKnownPrefix(path string) bool {
	path = normalize(path)
	return strings.HasPrefix(path, "assets/") || strings.HasPrefix(path, "data/")
}

// normalize 统一路径格式：正斜杠、无 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// route 根据路径前缀选择嵌入文件系统
func route(path string) (fs.FS, error) {
	if strings.HasPrefix(path, "assets/") {
		return assetsFS, nil
	} else if strings.HasPrefix(path, "data/") {
		return dataFS, nil
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 打开资源文件，覆盖层优先
// 路径必须以 "assets/" 或 "data/" 开头
func Open(path string) (fs.File, error) {
	if !initialized {
		return nil, errNotInitialized
	}

	path = normalize(path)
	target, err := route(path)
	if err != nil {
		return nil, err
	}

	if overlayFS != nil {
		if file, err := overlayFS.Open(path); err == nil {
			return file, nil
		}
	}
	if target == nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return target.Open(path)
}

// ReadFile 读取资源文件内容，覆盖层优先
// 路径必须以 "assets/" 或 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// FS 返回按路径前缀路由的只读文件系统视图
// 资源管理器通过它读取图片、音频和配置
func FS() fs.FS {
	return routedFS{}
}

type routedFS struct{}

func (routedFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return Open(name)
}
