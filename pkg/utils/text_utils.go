package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 返回一行文本的像素宽度
type MeasureFunc func(s string) float64

// FaceMeasure 用字体创建 MeasureFunc
func FaceMeasure(face text.Face) MeasureFunc {
	return func(s string) float64 {
		if s == "" || face == nil {
			return 0
		}
		w, _ := text.Measure(s, face, 0)
		return w
	}
}

// WrapText 将文本按指定宽度自动换行
//
// 换行规则:
//   - 优先在空格处断行
//   - 单词本身超过最大宽度时按字符强制断行
//   - 显式的 "\n" 总是断行
func WrapText(textStr string, measure MeasureFunc, maxWidth float64) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, measure, maxWidth)...)
	}
	return lines
}

func wrapParagraph(paragraph string, measure MeasureFunc, maxWidth float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}

		// 单个单词超宽，按字符切开
		if measure(word) > maxWidth {
			pieces := breakWord(word, measure, maxWidth)
			lines = append(lines, pieces[:len(pieces)-1]...)
			current = pieces[len(pieces)-1]
			continue
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func breakWord(word string, measure MeasureFunc, maxWidth float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]
		candidate := current + string(r)
		if current != "" && measure(candidate) > maxWidth {
			pieces = append(pieces, current)
			current = string(r)
			continue
		}
		current = candidate
	}
	return append(pieces, current)
}
