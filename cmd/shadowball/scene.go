package main

import (
	"github.com/Faultbox/shadowball/internal/engine/renderer"
	"github.com/Faultbox/shadowball/internal/game/world"
)

// sceneRenderer draws world tiles with the GL renderer.
type sceneRenderer struct {
	*renderer.Renderer
}

func (s sceneRenderer) DrawPlane(t world.Tile) {
	surface := renderer.Cloth
	if t.Surface == world.Wood {
		surface = renderer.Wood
	}
	s.Renderer.DrawPlane(t.Model(), t.TextureScale, surface)
}
