package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxData is the hover rectangle of one media card in screen pixels.
// Its Data points back at the media entry.
type HitboxData struct {
	*resolv.Object
}

var Hitbox = donburi.NewComponentType[HitboxData]()
