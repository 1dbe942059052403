package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/decker502/folio/pkg/embedded"
)

// ReadConfigFile 读取配置文件
//
// 以 "data/" 开头且存在于嵌入资源中的路径从 embed.FS 读取，
// 其余路径（例如 -content 指定的本地文件）从磁盘读取。
func ReadConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return readEmbedded(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return data, nil
}

// ReadLocalFile 读取用户显式指定的文件：磁盘优先
//
// 与嵌入资源同名的路径（如 -content data/portfolio.yaml）也读取磁盘上的版本，
// 这样启动内容与热重载看到的是同一个文件。磁盘上不存在时才回退到嵌入资源。
func ReadLocalFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, fs.ErrNotExist) && embedded.IsInitialized() && embedded.Exists(path) {
		return readEmbedded(path)
	}
	return nil, fmt.Errorf("failed to read config %s: %w", path, err)
}

func readEmbedded(path string) ([]byte, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config %s: %w", path, err)
	}
	return data, nil
}
