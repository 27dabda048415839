package resources

import (
	"github.com/spaghettifunk/orbis/engine/core"
)

// CompressedTextureBuffer describes a block of compressed texture data
// together with the format needed to upload it.
type CompressedTextureBuffer struct {
	internalFormat PixelFormat
	datatype       PixelDatatype
	width          int
	height         int
	buffer         []byte
}

// NewCompressedTextureBuffer wraps buffer without copying it. The buffer
// must hold exactly CompressedTextureSizeInBytes(internalFormat, width, height)
// bytes.
func NewCompressedTextureBuffer(internalFormat PixelFormat, datatype PixelDatatype, width, height int, buffer []byte) *CompressedTextureBuffer {
	if core.ChecksEnabled {
		core.Assert(internalFormat.IsCompressed(), "internalFormat must be a compressed pixel format, actual value was %s", internalFormat)
		core.NumberGreaterThan("width", float64(width), 0)
		core.NumberGreaterThan("height", float64(height), 0)
		core.NumberEquals("buffer length", "compressed texture size",
			float64(len(buffer)), float64(CompressedTextureSizeInBytes(internalFormat, width, height)))
	}
	return &CompressedTextureBuffer{
		internalFormat: internalFormat,
		datatype:       datatype,
		width:          width,
		height:         height,
		buffer:         buffer,
	}
}

func (c *CompressedTextureBuffer) InternalFormat() PixelFormat  { return c.internalFormat }
func (c *CompressedTextureBuffer) PixelDatatype() PixelDatatype { return c.datatype }
func (c *CompressedTextureBuffer) Width() int                   { return c.width }
func (c *CompressedTextureBuffer) Height() int                  { return c.height }
func (c *CompressedTextureBuffer) BufferView() []byte           { return c.buffer }

// SizeInBytes is the length of the underlying buffer.
func (c *CompressedTextureBuffer) SizeInBytes() int { return len(c.buffer) }

// Clone returns a copy that shares no memory with c. A nil receiver clones to nil.
func (c *CompressedTextureBuffer) Clone() *CompressedTextureBuffer {
	if c == nil {
		return nil
	}
	buf := make([]byte, len(c.buffer))
	copy(buf, c.buffer)
	return &CompressedTextureBuffer{
		internalFormat: c.internalFormat,
		datatype:       c.datatype,
		width:          c.width,
		height:         c.height,
		buffer:         buf,
	}
}
