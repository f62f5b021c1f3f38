package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HoverSpaceData mirrors the media rectangles in screen pixels for pointer hit tests
type HoverSpaceData struct {
	Space   *resolv.Space
	Cursor  *resolv.Object
	Hovered int // Display index under the pointer, -1 for none
}

var HoverSpace = donburi.NewComponentType[HoverSpaceData]()
