// Разбор ссылок на видео для блока videoEmbed. Поддерживаются YouTube
// (watch?v=, youtu.be/, /embed/) и Vimeo (числовой сегмент пути).
package edtypes

import (
	"net/url"
	"regexp"
	"strings"
)

type VideoState int

const (
	// VideoURLEmpty - ссылка не задана, блок рендерится заглушкой "нет ссылки"
	VideoURLEmpty VideoState = iota
	// VideoURLInvalid - ссылка задана, но не распознана ни одной платформой
	VideoURLInvalid
	// VideoURLResolved - извлечен идентификатор для встраивания
	VideoURLResolved
)

type VideoPlatform int

const (
	PlatformUnknown VideoPlatform = iota
	PlatformYouTube
	PlatformVimeo
)

type VideoSource struct {
	State    VideoState
	Platform VideoPlatform
	ID       string
}

var (
	youtubeIDReg = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	vimeoIDReg   = regexp.MustCompile(`^\d+$`)
)

// ResolveVideoURL классифицирует ссылку на видео. Пустая и невалидная ссылки -
// разные состояния, обе отображаются заглушками, а не ошибками.
func ResolveVideoURL(raw string) VideoSource {
	if strings.TrimSpace(raw) == "" {
		return VideoSource{State: VideoURLEmpty}
	}

	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return VideoSource{State: VideoURLInvalid}
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	switch host {
	case "youtube.com", "m.youtube.com", "youtube-nocookie.com":
		// watch?v=<id>
		if id := u.Query().Get("v"); youtubeIDReg.MatchString(id) {
			return VideoSource{State: VideoURLResolved, Platform: PlatformYouTube, ID: id}
		}
		// /embed/<id>
		if id, ok := pathSegmentAfter(u.Path, "embed"); ok && youtubeIDReg.MatchString(id) {
			return VideoSource{State: VideoURLResolved, Platform: PlatformYouTube, ID: id}
		}
	case "youtu.be":
		// короткая ссылка: единственный сегмент пути
		if id := strings.Trim(u.Path, "/"); youtubeIDReg.MatchString(id) {
			return VideoSource{State: VideoURLResolved, Platform: PlatformYouTube, ID: id}
		}
	case "vimeo.com", "player.vimeo.com":
		for _, segment := range strings.Split(strings.Trim(u.Path, "/"), "/") {
			if vimeoIDReg.MatchString(segment) {
				return VideoSource{State: VideoURLResolved, Platform: PlatformVimeo, ID: segment}
			}
		}
	}

	return VideoSource{State: VideoURLInvalid}
}

func pathSegmentAfter(path, marker string) (string, bool) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, segment := range segments {
		if segment == marker && i+1 < len(segments) {
			return segments[i+1], true
		}
	}
	return "", false
}
