//go:build mobile

package utils

// IsMobile 移动端构建（-tags mobile）总是使用移动布局
func IsMobile() bool {
	return true
}
