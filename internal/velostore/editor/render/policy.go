// Политика безопасности для HTML витрины. Применяется к результату рендера
// перед отдачей публичной страницы, чтобы пользовательский контент не мог
// пронести скрипты или опасные стили.
package render

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var PagePolicy *bluemonday.Policy = bluemonday.UGCPolicy()

var colorRegexp = regexp.MustCompile(`^(#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|rgb\((\d+),\s*(\d+),\s*(\d+)\)|inherit)$`)

func init() {
	blockClassRegexp := regexp.MustCompile(`^(hero|product-grid|testimonial|gallery|video-embed|cta)(-[a-z0-9-]+)?$`)
	gridColumnsRegexp := regexp.MustCompile(`^[2-4]$`)
	gapRegexp := regexp.MustCompile(`^(small|medium|large)$`)
	ratioRegexp := regexp.MustCompile(`^(16:9|4:3|1:1)$`)
	opacityRegexp := regexp.MustCompile(`^(0|0?\.\d+|1(\.0+)?)$`)

	PagePolicy.AllowAttrs("class").Matching(blockClassRegexp).OnElements("section", "div", "figure", "blockquote", "a", "span", "img")
	PagePolicy.AllowAttrs("data-columns").Matching(gridColumnsRegexp).OnElements("div")
	PagePolicy.AllowAttrs("data-gap").Matching(gapRegexp).OnElements("div")
	PagePolicy.AllowAttrs("data-lightbox").OnElements("div")
	PagePolicy.AllowAttrs("data-ratio").Matching(ratioRegexp).OnElements("div")

	PagePolicy.AllowStyles("color", "background-color").Matching(colorRegexp).Globally()
	PagePolicy.AllowStyles("background-image").Matching(regexp.MustCompile(`^url\('https?://[^')]+'\)$`)).OnElements("section")
	PagePolicy.AllowStyles("opacity").Matching(opacityRegexp).OnElements("div")
	PagePolicy.AllowStyles("text-align").Matching(bluemonday.CellAlign).Globally()

	PagePolicy.AllowElements("section", "figure", "figcaption", "iframe", "u", "s")
	PagePolicy.AllowAttrs("src", "allowfullscreen", "allow", "loading", "frameborder").OnElements("iframe")
	PagePolicy.AllowAttrs("loading").OnElements("img")
}

// SafeColor сообщает, можно ли подставить значение цвета в инлайн-стиль.
func SafeColor(v string) bool {
	return colorRegexp.MatchString(v)
}
