//go:build !mobile

// stub.go - 普通构建时的占位文件
//
// ebitenmobile 绑定代码（mobile.go、embed.go）只在 -tags mobile 时编译，
// 此文件保证 ./mobile 在桌面构建中仍是一个合法的包。
package mobile

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
