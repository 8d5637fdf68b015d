package tiledesigner

import (
	"fmt"
	"strings"
)

// BlockKind is a paintable tile type.
type BlockKind uint8

const (
	BlockBlank BlockKind = iota // empty floor
	BlockWall                   // solid wall
)

// BlockType describes how a BlockKind is presented.
type BlockType struct {
	Kind  BlockKind
	Name  string
	Color Color
}

// BlockTypes lists every paintable block in palette order.
var BlockTypes = [...]BlockType{
	{Kind: BlockBlank, Name: "Blank", Color: ColorWhite},
	{Kind: BlockWall, Name: "Wall", Color: ColorDarkGray},
}

// Type returns the presentation data for k. Unknown kinds report as Blank.
func (k BlockKind) Type() BlockType {
	if int(k) < len(BlockTypes) {
		return BlockTypes[k]
	}
	return BlockTypes[BlockBlank]
}

func (k BlockKind) String() string {
	if int(k) < len(BlockTypes) {
		return BlockTypes[k].Name
	}
	return fmt.Sprintf("BlockKind(%d)", uint8(k))
}

// ParseBlockKind looks a block kind up by name, case-insensitively.
func ParseBlockKind(name string) (BlockKind, error) {
	for _, bt := range BlockTypes {
		if strings.EqualFold(bt.Name, name) {
			return bt.Kind, nil
		}
	}
	return BlockBlank, fmt.Errorf("tiledesigner: unknown block kind %q", name)
}

// Palette holds the block kind the painter applies.
type Palette struct {
	active BlockKind
}

// NewPalette returns a palette with active selected.
func NewPalette(active BlockKind) *Palette {
	return &Palette{active: active}
}

// Active returns the selected block kind.
func (p *Palette) Active() BlockKind {
	return p.active
}

// Select makes k the active block kind. Unknown kinds are ignored.
func (p *Palette) Select(k BlockKind) {
	if int(k) < len(BlockTypes) {
		p.active = k
	}
}
