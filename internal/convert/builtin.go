package convert

import (
	"fmt"
	"regexp"
)

// YouTubeMusic rewrites YouTube Music watch/playlist URLs to their plain
// YouTube equivalents.
type YouTubeMusic struct{}

var (
	ytMusicWatch    = regexp.MustCompile(`^https://music\.youtube\.com/watch\?v=([\w-]+)[^ \n]*$`)
	ytMusicPlaylist = regexp.MustCompile(`^https://music\.youtube\.com/playlist\?list=([\w-]+)[^ \n]*$`)
)

func (YouTubeMusic) Name() string { return "youtube_music" }

func (YouTubeMusic) Convert(text string) (string, error) {
	if m := ytMusicWatch.FindStringSubmatch(text); m != nil {
		return "https://www.youtube.com/watch?v=" + m[1], nil
	}
	if m := ytMusicPlaylist.FindStringSubmatch(text); m != nil {
		return "https://www.youtube.com/playlist?list=" + m[1], nil
	}
	return "", nil
}

// YoutuBe expands youtu.be share links, carrying over a ?t= timestamp.
type YoutuBe struct{}

var youtuBe = regexp.MustCompile(`^https://youtu\.be/([\w-]+)(?:\?t=(\d+))?[^ \n]*$`)

func (YoutuBe) Name() string { return "youtu_be" }

func (YoutuBe) Convert(text string) (string, error) {
	m := youtuBe.FindStringSubmatch(text)
	if m == nil {
		return "", nil
	}
	if m[2] != "" {
		return fmt.Sprintf("https://www.youtube.com/watch?v=%s&t=%ss", m[1], m[2]), nil
	}
	return "https://www.youtube.com/watch?v=" + m[1], nil
}
