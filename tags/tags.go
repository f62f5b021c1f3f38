package tags

import "github.com/yohamta/donburi"

var (
	Gallery = donburi.NewTag().SetName("Gallery")
	Media   = donburi.NewTag().SetName("Media")
)

// Resolv tags for hover hit tests
const (
	ResolvMedia  = "media"
	ResolvCursor = "cursor"
)
