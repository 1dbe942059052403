package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 用于按钮悬停高亮、导航栏淡入等一次性动画。
//
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach 指数平滑（低通滤波）的一步
//
// 每调用一次，current 向 target 移动剩余距离的 factor 比例。
// factor ∈ (0, 1] 时结果永远不会越过 target，连续调用时单调逼近。
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}
