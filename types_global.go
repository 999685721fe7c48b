package axcl

// Common image formats (AX_IMG_FORMAT_E), a subset.
const (
	FormatInvalid      = -1
	FormatYUV400       = 0x0
	FormatYUV420Planar = 0x1
	FormatYUV420SPNV12 = 0x3
	FormatYUV420SPNV21 = 0x4
	FormatYUV422Planar = 0x5
	FormatYUV422SPNV16 = 0x6
	FormatYUV422SPNV61 = 0x7
	FormatYUV444SPNV24 = 0xE
	FormatRGB565       = 0x40
	FormatRGB888       = 0x41
	FormatBGR888       = 0x45
	FormatARGB4444     = 0x4C
	FormatARGB8888     = 0x4F
	FormatRGBA8888     = 0x50
	FormatBitmap       = 0x80
)

// Compression modes (AX_COMPRESS_MODE_E).
const (
	CompressModeNone = iota
	CompressModeLossless
	CompressModeLossy
)

// ModIDUser is the default owner of frames built by the caller.
const ModIDUser = int64(ModUSER)

var (
	FrameRateCtrl = Struct("AX_FRAME_RATE_CTRL_T", []Field{
		{Name: "fSrcFrameRate", Type: F32, Alias: "src_frame_rate"},
		{Name: "fDstFrameRate", Type: F32, Alias: "dst_frame_rate"},
	})

	FrameCompressInfo = Struct("AX_FRAME_COMPRESS_INFO_T", []Field{
		{Name: "enCompressMode", Type: Enum, Alias: "compress_mode"},
		{Name: "u32CompressLevel", Type: U32, Alias: "compress_level"},
	})

	VideoFrame = Struct("AX_VIDEO_FRAME_T", []Field{
		{Name: "u32Width", Type: U32, Alias: "width"},
		{Name: "u32Height", Type: U32, Alias: "height"},
		{Name: "enImgFormat", Type: Enum, Alias: "img_format"},
		{Name: "enVscanFormat", Type: Enum, Alias: "vscan_format"},
		{Name: "stCompressInfo", Type: FrameCompressInfo, Alias: "compress_info"},
		{Name: "stDynamicRange", Type: Enum, Alias: "dynamic_range"},
		{Name: "stColorGamut", Type: Enum, Alias: "color_gamut"},
		{Name: "u32PicStride", Type: Array(U32, 3), Alias: "pic_stride"},
		{Name: "u32ExtStride", Type: Array(U32, 3), Alias: "ext_stride"},
		{Name: "u64PhyAddr", Type: Array(U64, 3), Alias: "phy_addr"},
		{Name: "u64VirAddr", Type: Array(U64, 3), Alias: "vir_addr"},
		{Name: "u64ExtPhyAddr", Type: Array(U64, 3), Alias: "ext_phy_addr"},
		{Name: "u64ExtVirAddr", Type: Array(U64, 3), Alias: "ext_vir_addr"},
		{Name: "u32HeaderSize", Type: Array(U32, 3), Alias: "header_size"},
		{Name: "u32BlkId", Type: Array(U32, 3), Alias: "blk_id"},
		{Name: "s16CropX", Type: S16, Alias: "crop_x"},
		{Name: "s16CropY", Type: S16, Alias: "crop_y"},
		{Name: "s16CropWidth", Type: S16, Alias: "crop_width"},
		{Name: "s16CropHeight", Type: S16, Alias: "crop_height"},
		{Name: "u32TimeRef", Type: U32, Alias: "time_ref"},
		{Name: "u64PTS", Type: U64, Alias: "pts"},
		{Name: "u64SeqNum", Type: U64, Alias: "seq_num"},
		{Name: "u64UserData", Type: U64, Alias: "user_data"},
		{Name: "u64PrivateData", Type: U64, Alias: "private_data"},
		{Name: "u32FrameFlag", Type: U32, Alias: "frame_flag"},
		{Name: "u32FrameSize", Type: U32, Alias: "frame_size"},
	})

	VideoFrameInfo = Struct("AX_VIDEO_FRAME_INFO_T", []Field{
		{Name: "stVFrame", Type: VideoFrame, Alias: "video_frame"},
		{Name: "enModId", Type: Enum, Alias: "mod_id", Default: ModIDUser},
		{Name: "bEndOfStream", Type: Bool, Alias: "is_end_of_stream"},
	})

	AudioFrame = Struct("AX_AUDIO_FRAME_T", []Field{
		{Name: "enBitwidth", Type: Enum},
		{Name: "enSoundmode", Type: Enum},
		{Name: "u64VirAddr", Type: Pointer},
		{Name: "u64PhyAddr", Type: U64},
		{Name: "u64TimeStamp", Type: U64},
		{Name: "u32Seq", Type: U32},
		{Name: "u32Len", Type: U32},
		{Name: "u32PoolId", Type: Array(U32, 2)},
		{Name: "bEof", Type: Bool},
		{Name: "u32BlkId", Type: U32},
	})

	AudioFrameInfo = Struct("AX_AUDIO_FRAME_INFO_T", []Field{
		{Name: "stAFrame", Type: AudioFrame, Alias: "audio_frame"},
		{Name: "enModId", Type: Enum, Alias: "mod_id", Default: ModIDUser},
		{Name: "bEndOfStream", Type: Bool, Alias: "is_end_of_stream"},
	})

	ModInfo = Struct("AX_MOD_INFO_T", []Field{
		{Name: "enModId", Type: Enum, Alias: "mod_id"},
		{Name: "s32GrpId", Type: S32, Alias: "grp_id"},
		{Name: "s32ChnId", Type: S32, Alias: "chn_id"},
	})

	LinkDest = Struct("AX_LINK_DEST_T", []Field{
		{Name: "u32DestNum", Type: U32, Alias: "dest_num", CountOf: "astDestMod"},
		{Name: "astDestMod", Type: Array(ModInfo, 6), Alias: "dest_mod"},
	})

	MemoryAddr = Struct("AX_MEMORY_ADDR_T", []Field{
		{Name: "u64PhyAddr", Type: U64, Alias: "phy_addr"},
		{Name: "pVirAddr", Type: Pointer, Alias: "vir_addr"},
	})

	OSDBmpAttr = Struct("AX_OSD_BMP_ATTR_T", []Field{
		{Name: "u16Alpha", Type: U16, Alias: "alpha"},
		{Name: "enRgbFormat", Type: Enum, Alias: "rgb_format"},
		{Name: "pBitmap", Type: Pointer, Alias: "bitmap_p"},
		{Name: "u64PhyAddr", Type: U64, Alias: "phy_addr"},
		{Name: "u32BmpWidth", Type: U32, Alias: "bmp_width"},
		{Name: "u32BmpHeight", Type: U32, Alias: "bmp_height"},
		{Name: "u32DstXoffset", Type: U32, Alias: "dst_x_offset"},
		{Name: "u32DstYoffset", Type: U32, Alias: "dst_y_offset"},
		{Name: "u32Color", Type: U32, Alias: "color"},
		{Name: "bColorInv", Type: Bool, Alias: "enable_color_inv"},
		{Name: "u32ColorInv", Type: U32, Alias: "color_inv"},
		{Name: "u32ColorInvThr", Type: U32, Alias: "color_inv_thr"},
	})

	Point = Struct("AX_POINT_T", []Field{
		{Name: "nX", Type: S16},
		{Name: "nY", Type: S16},
	})

	BgColor = Struct("AX_BGCOLOR_T", []Field{
		{Name: "bEnable", Type: Bool},
		{Name: "nBgColor", Type: U32},
	})

	ColorKey = Struct("AX_COLORKEY_T", []Field{
		{Name: "u16Enable", Type: U16},
		{Name: "u16Inv", Type: U16},
		{Name: "u32KeyLow", Type: U32},
		{Name: "u32KeyHigh", Type: U32},
	})

	BitColor = Struct("AX_BITCOLOR_T", []Field{
		{Name: "nColor", Type: U32},
		{Name: "bColorInvEn", Type: Bool},
		{Name: "nColorInv", Type: U32},
		{Name: "nColorInvThr", Type: U32},
	})

	Overlay = Struct("AX_OVERLAY_T", []Field{
		{Name: "bEnable", Type: Bool},
		{Name: "nWidth", Type: U16},
		{Name: "nHeight", Type: U16},
		{Name: "nStride", Type: U32},
		{Name: "eFormat", Type: Enum},
		{Name: "u64PhyAddr", Type: Array(U64, 2)},
		{Name: "stCompressInfo", Type: FrameCompressInfo},
		{Name: "nAlpha", Type: U8},
		{Name: "tOffset", Type: Point},
		{Name: "tColorKey", Type: ColorKey},
		{Name: "tBitColor", Type: BitColor},
	})

	PyraFrame = Struct("AX_PYRA_FRAME_T", []Field{
		{Name: "bEnable", Type: Bool, Alias: "enable"},
		{Name: "nWidth", Type: U16},
		{Name: "nHeight", Type: U16},
		{Name: "nStride", Type: U32},
		{Name: "eFormat", Type: Enum},
		{Name: "u64PhyAddr", Type: Array(U64, 2)},
		{Name: "stCompressInfo", Type: FrameCompressInfo},
		{Name: "PixelFormat", Type: U8},
		{Name: "bCropEnable", Type: Bool},
		{Name: "nCropX0", Type: S16},
		{Name: "nCropY0", Type: S16},
		{Name: "nCropWidth", Type: U16},
		{Name: "nCropHeight", Type: U16},
	})

	// WarpMode carries either a GDC or a VDSP mode; nothing in the SDK
	// tags it, so it is exchanged as an untagged union.
	WarpMode = Union("AX_WARP_MODE_U", []Field{
		{Name: "eGdcMode", Type: Enum},
		{Name: "eVdspMode", Type: Enum},
	})
)
