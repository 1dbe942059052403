package config

import "image/color"

// 布局配置常量
// 所有坐标均为逻辑屏幕坐标，Ebitengine 负责缩放到实际窗口

// Window Configuration (窗口配置)
const (
	// WindowWidth 逻辑屏幕宽度
	WindowWidth = 1280
	// WindowHeight 逻辑屏幕高度
	WindowHeight = 720
	// WindowTitle 窗口标题
	WindowTitle = "folio"

	// TicksPerSecond 每秒帧数（一帧 = 一次 Update）
	TicksPerSecond = 60
)

// Hero Overlay Layout (英雄层 UI 布局)
const (
	// HeroNavY 英雄层导航链接的 Y 坐标
	HeroNavY = 36.0
	// HeroNavRightMargin 导航链接距右边缘
	HeroNavRightMargin = 48.0
	// HeroNavSpacing 导航链接之间的间距
	HeroNavSpacing = 36.0
	// HeroCloseX 关闭按钮位置（左上角）
	HeroCloseX = 40.0
	HeroCloseY = 32.0

	// HeroTitleY 标题基线（屏幕高度比例）
	HeroTitleY = 0.70
	// HeroSubtitleGap 标题与副标题的间距
	HeroSubtitleGap = 12.0
	// HeroExploreGap 副标题与 Explore 按钮的间距
	HeroExploreGap = 28.0

	// HeroTitleFontSize 标题字号
	HeroTitleFontSize = 64.0
	// HeroSubtitleFontSize 副标题字号
	HeroSubtitleFontSize = 22.0
	// ButtonFontSize 按钮文字字号
	ButtonFontSize = 18.0

	// ButtonPaddingX / ButtonPaddingY 按钮内边距
	ButtonPaddingX = 22.0
	ButtonPaddingY = 10.0

	// ButtonHoverSmoothing 按钮悬停高亮的平滑系数（每帧）
	ButtonHoverSmoothing = 0.2

	// MobileMeshScale / DesktopMeshScale 移动端与桌面端的网格缩放
	MobileMeshScale  = 0.7
	DesktopMeshScale = 0.75
)

// Portfolio Layout (作品集布局)
const (
	// NavBarHeight 顶部导航栏高度
	NavBarHeight = 64.0
	// ContentMaxWidth 内容区最大宽度
	ContentMaxWidth = 1040.0
	// SectionPaddingTop 每个区块顶部留白
	SectionPaddingTop = 72.0
	// SectionPaddingBottom 每个区块底部留白
	SectionPaddingBottom = 24.0
	// SectionHeadingGap 区块副标题与标题间距
	SectionHeadingGap = 8.0

	// CardPadding 卡片内边距
	CardPadding = 20.0
	// CardGap 卡片间距
	CardGap = 24.0

	// HeadingFontSize 区块标题字号
	HeadingFontSize = 44.0
	// SubheadingFontSize 区块小标题字号（大写标签）
	SubheadingFontSize = 16.0
	// BodyFontSize 正文字号
	BodyFontSize = 17.0
	// CardTitleFontSize 卡片标题字号
	CardTitleFontSize = 22.0
	// SmallFontSize 标签、日期字号
	SmallFontSize = 14.0

	// LineSpacing 正文行距倍数
	LineSpacing = 1.45

	// TechCellSize 技术图标单元尺寸
	TechCellSize = 112.0
	// TechCellGap 技术图标单元间距
	TechCellGap = 40.0

	// ScrollSmoothing 滚动偏移的平滑系数（每帧）
	ScrollSmoothing = 0.18
	// ScrollWheelStep 滚轮一格的滚动距离
	ScrollWheelStep = 60.0
	// ScrollKeyStep 方向键按住时每帧滚动距离
	ScrollKeyStep = 14.0
)

// Palette (配色)
var (
	ColorPrimary     = color.RGBA{0x05, 0x08, 0x16, 0xff} // 页面背景
	ColorTertiary    = color.RGBA{0x15, 0x10, 0x30, 0xff} // 卡片背景
	ColorBlackCard   = color.RGBA{0x10, 0x0d, 0x25, 0xff}
	ColorAccent      = color.RGBA{0x91, 0x5e, 0xff, 0xff} // #915EFF
	ColorWhite       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorSecondary   = color.RGBA{0xaa, 0xa6, 0xc3, 0xff} // 次要文字
	ColorNavBar      = color.RGBA{0x05, 0x08, 0x16, 0xf0}
	ColorHeroOverlay = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColorTimeline    = color.RGBA{0x23, 0x23, 0x23, 0xff}
)

// TagColors 项目标签颜色名称
var TagColors = map[string]color.RGBA{
	"blue-text-gradient":   {0x56, 0xcc, 0xf2, 0xff},
	"green-text-gradient":  {0x11, 0x99, 0x8e, 0xff},
	"pink-text-gradient":   {0xf1, 0x27, 0x11, 0xff},
	"orange-text-gradient": {0xf1, 0x27, 0x11, 0xff},
	"violet-text-gradient": {0x80, 0x00, 0xff, 0xff},
}

// SectionIDs 作品集区块的固定顺序（导航之后依次渲染）
var SectionIDs = []string{"about", "experience", "tech", "work", "contact"}
