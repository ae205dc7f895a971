// Package render turns cell slabs into RGBA pixels for the viewer.
package render

import "image/color"

// Colors holds the resolved RGBA bytes for live and dead cells.
type Colors struct {
	on, off [4]byte
}

// NewColors resolves on and off into 8-bit non-premultiplied RGBA.
func NewColors(on, off color.Color) Colors {
	return Colors{on: rgba8(on), off: rgba8(off)}
}

func rgba8(c color.Color) [4]byte {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]byte{n.R, n.G, n.B, n.A}
}

// Fill writes one pixel per cell into buf, which must hold 4*len(cells) bytes.
// Any non-zero cell is live.
func (c Colors) Fill(buf []byte, cells []uint8) {
	for i, v := range cells {
		px := c.off
		if v != 0 {
			px = c.on
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
