package resources

import (
	m "math"
)

// PixelFormat is the internal format of a texture's pixel data. The numeric
// values match the WebGL / OpenGL enumerants.
type PixelFormat uint32

const (
	PixelFormatDepthComponent PixelFormat = 0x1902
	PixelFormatDepthStencil   PixelFormat = 0x84F9
	PixelFormatAlpha          PixelFormat = 0x1906
	PixelFormatRGB            PixelFormat = 0x1907
	PixelFormatRGBA           PixelFormat = 0x1908
	PixelFormatLuminance      PixelFormat = 0x1909
	PixelFormatLuminanceAlpha PixelFormat = 0x190A

	PixelFormatRGBDXT1  PixelFormat = 0x83F0
	PixelFormatRGBADXT1 PixelFormat = 0x83F1
	PixelFormatRGBADXT3 PixelFormat = 0x83F2
	PixelFormatRGBADXT5 PixelFormat = 0x83F3

	PixelFormatRGBPVRTC4BPPV1  PixelFormat = 0x8C00
	PixelFormatRGBPVRTC2BPPV1  PixelFormat = 0x8C01
	PixelFormatRGBAPVRTC4BPPV1 PixelFormat = 0x8C02
	PixelFormatRGBAPVRTC2BPPV1 PixelFormat = 0x8C03

	PixelFormatRGBAASTC     PixelFormat = 0x93B0
	PixelFormatRGBETC1      PixelFormat = 0x8D64
	PixelFormatRGB8ETC2     PixelFormat = 0x9274
	PixelFormatRGBA8ETC2EAC PixelFormat = 0x9278
	PixelFormatRGBABC7      PixelFormat = 0x8E8C
)

// PixelDatatype is the component type of uncompressed pixel data.
type PixelDatatype uint32

const (
	PixelDatatypeUnsignedByte      PixelDatatype = 0x1401
	PixelDatatypeUnsignedShort     PixelDatatype = 0x1403
	PixelDatatypeUnsignedInt       PixelDatatype = 0x1405
	PixelDatatypeFloat             PixelDatatype = 0x1406
	PixelDatatypeHalfFloat         PixelDatatype = 0x8D61
	PixelDatatypeUnsignedInt24_8   PixelDatatype = 0x84FA
	PixelDatatypeUnsignedShort4444 PixelDatatype = 0x8033
	PixelDatatypeUnsignedShort5551 PixelDatatype = 0x8034
	PixelDatatypeUnsignedShort565  PixelDatatype = 0x8363
)

var pixelFormatNames = map[PixelFormat]string{
	PixelFormatDepthComponent:  "DEPTH_COMPONENT",
	PixelFormatDepthStencil:    "DEPTH_STENCIL",
	PixelFormatAlpha:           "ALPHA",
	PixelFormatRGB:             "RGB",
	PixelFormatRGBA:            "RGBA",
	PixelFormatLuminance:       "LUMINANCE",
	PixelFormatLuminanceAlpha:  "LUMINANCE_ALPHA",
	PixelFormatRGBDXT1:         "RGB_DXT1",
	PixelFormatRGBADXT1:        "RGBA_DXT1",
	PixelFormatRGBADXT3:        "RGBA_DXT3",
	PixelFormatRGBADXT5:        "RGBA_DXT5",
	PixelFormatRGBPVRTC4BPPV1:  "RGB_PVRTC_4BPPV1",
	PixelFormatRGBPVRTC2BPPV1:  "RGB_PVRTC_2BPPV1",
	PixelFormatRGBAPVRTC4BPPV1: "RGBA_PVRTC_4BPPV1",
	PixelFormatRGBAPVRTC2BPPV1: "RGBA_PVRTC_2BPPV1",
	PixelFormatRGBAASTC:        "RGBA_ASTC",
	PixelFormatRGBETC1:         "RGB_ETC1",
	PixelFormatRGB8ETC2:        "RGB8_ETC2",
	PixelFormatRGBA8ETC2EAC:    "RGBA8_ETC2_EAC",
	PixelFormatRGBABC7:         "RGBA_BC7",
}

func (f PixelFormat) String() string {
	if name, ok := pixelFormatNames[f]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsCompressed reports whether f is a block compressed format.
func (f PixelFormat) IsCompressed() bool {
	switch f {
	case PixelFormatRGBDXT1, PixelFormatRGBADXT1, PixelFormatRGBADXT3, PixelFormatRGBADXT5,
		PixelFormatRGBPVRTC4BPPV1, PixelFormatRGBPVRTC2BPPV1, PixelFormatRGBAPVRTC4BPPV1, PixelFormatRGBAPVRTC2BPPV1,
		PixelFormatRGBAASTC, PixelFormatRGBETC1, PixelFormatRGB8ETC2, PixelFormatRGBA8ETC2EAC, PixelFormatRGBABC7:
		return true
	}
	return false
}

// CompressedTextureSizeInBytes returns the number of bytes a width x height
// image occupies in the compressed format f, or 0 if f is not compressed.
func CompressedTextureSizeInBytes(f PixelFormat, width, height int) int {
	switch f {
	case PixelFormatRGBDXT1, PixelFormatRGBADXT1, PixelFormatRGBETC1, PixelFormatRGB8ETC2:
		return ((width + 3) / 4) * ((height + 3) / 4) * 8
	case PixelFormatRGBADXT3, PixelFormatRGBADXT5, PixelFormatRGBAASTC, PixelFormatRGBA8ETC2EAC:
		return ((width + 3) / 4) * ((height + 3) / 4) * 16
	case PixelFormatRGBPVRTC4BPPV1, PixelFormatRGBAPVRTC4BPPV1:
		return (max(width, 8)*max(height, 8)*4 + 7) / 8
	case PixelFormatRGBPVRTC2BPPV1, PixelFormatRGBAPVRTC2BPPV1:
		return (max(width, 16)*max(height, 8)*2 + 7) / 8
	case PixelFormatRGBABC7:
		return int(m.Ceil(float64(width)/4) * m.Ceil(float64(height)/4) * 16)
	}
	return 0
}
