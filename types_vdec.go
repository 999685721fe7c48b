package axcl

// Payload types (AX_PAYLOAD_TYPE_E), the ones the decoder accepts.
const (
	PayloadJPEG  = 26
	PayloadH264  = 96
	PayloadH265  = 265
	PayloadMJPEG = 1002
)

// Decoder input modes (AX_VDEC_INPUT_MODE_E).
const (
	VdecInputModeNAL = iota
	VdecInputModeFrame
	VdecInputModeStream
	VdecInputModeCompatible
)

// Decoder output orders (AX_VDEC_OUTPUT_ORDER_E).
const (
	VdecOutputOrderDisp = iota
	VdecOutputOrderDec
)

// Decoder display modes (AX_VDEC_DISPLAY_MODE_E).
const (
	VdecDisplayModePreview = iota
	VdecDisplayModePlayback
)

// Decoder channel output modes (AX_VDEC_OUTPUT_MODE_E).
const (
	VdecOutputOriginal = iota
	VdecOutputCrop
	VdecOutputScale
)

// Limits of the VDEC tables.
const (
	VdecMaxChn         = 3
	VdecMaxGrp         = 164
	VdecMaxUserDataCnt = 20
)

var (
	VdecModAttr = Struct("AX_VDEC_MOD_ATTR_T", []Field{
		{Name: "u32MaxGroupCount", Type: U32, Alias: "max_group_count"},
		{Name: "enDecModule", Type: Enum, Alias: "dec_module"},
		{Name: "bVdecMc", Type: Bool, Alias: "vdec_mc"},
		{Name: "VdecVirtChn", Type: S32, Alias: "vdec_virt_chn"},
	})

	VdecGrpAttr = Struct("AX_VDEC_GRP_ATTR_T", []Field{
		{Name: "enCodecType", Type: Enum, Alias: "codec_type"},
		{Name: "enInputMode", Type: Enum, Alias: "input_mode"},
		{Name: "u32MaxPicWidth", Type: U32, Alias: "max_pic_width"},
		{Name: "u32MaxPicHeight", Type: U32, Alias: "max_pic_height"},
		{Name: "u32StreamBufSize", Type: U32, Alias: "stream_buf_size"},
		{Name: "bSdkAutoFramePool", Type: Bool, Alias: "sdk_auto_frame_pool"},
		{Name: "bSkipSdkStreamPool", Type: Bool, Alias: "skip_sdk_stream_pool"},
		{Name: "stStreamBufAddr", Type: MemoryAddr, Alias: "stream_buf_addr"},
		{Name: "u32RefNum", Type: U32, Alias: "ref_num"},
	})

	VdecStream = Struct("AX_VDEC_STREAM_T", []Field{
		{Name: "u64PTS", Type: U64, Alias: "pts"},
		{Name: "u64PrivateData", Type: U64, Alias: "private_data"},
		{Name: "bEndOfFrame", Type: Bool, Alias: "end_of_frame"},
		{Name: "bEndOfStream", Type: Bool, Alias: "end_of_stream"},
		{Name: "bSkipDisplay", Type: Bool, Alias: "skip_display"},
		{Name: "u32StreamPackLen", Type: U32, Alias: "stream_pack_len"},
		{Name: "pu8Addr", Type: Pointer, Alias: "addr"},
		{Name: "u64PhyAddr", Type: U64, Alias: "phy_addr"},
		{Name: "u64UserData", Type: U64, Alias: "user_data"},
	})

	VdecParamVideo = Struct("AX_VDEC_PARAM_VIDEO_T", []Field{
		{Name: "enOutputOrder", Type: Enum, Alias: "output_order"},
		{Name: "enVdecMode", Type: Enum, Alias: "vdec_mode"},
	})

	VdecGrpParam = Struct("AX_VDEC_GRP_PARAM_T", []Field{
		{Name: "stVdecVideoParam", Type: VdecParamVideo, Alias: "vdec_video_param"},
		{Name: "f32SrcFrmRate", Type: F32, Alias: "src_frm_rate"},
	})

	VdecRecvPicParam = Struct("AX_VDEC_RECV_PIC_PARAM_T", []Field{
		{Name: "s32RecvPicNum", Type: S32, Alias: "recv_pic_num"},
	})

	VdecFrameRateCtrl = Struct("AX_VDEC_FRAME_RATE_CTRL_T", []Field{
		{Name: "f32DstFrmRate", Type: F32, Alias: "dst_frm_rate"},
		{Name: "bFrmRateCtrl", Type: Bool, Alias: "frm_rate_ctrl"},
	})

	VdecChnAttr = Struct("AX_VDEC_CHN_ATTR_T", []Field{
		{Name: "u32PicWidth", Type: U32, Alias: "pic_width"},
		{Name: "u32PicHeight", Type: U32, Alias: "pic_height"},
		{Name: "u32FrameStride", Type: U32, Alias: "frame_stride"},
		{Name: "u32FramePadding", Type: U32, Alias: "frame_padding"},
		{Name: "u32CropX", Type: U32, Alias: "crop_x"},
		{Name: "u32CropY", Type: U32, Alias: "crop_y"},
		{Name: "u32ScaleRatioX", Type: U32, Alias: "scale_ratio_x"},
		{Name: "u32ScaleRatioY", Type: U32, Alias: "scale_ratio_y"},
		{Name: "u32FrameBufCnt", Type: U32, Alias: "frame_buf_cnt"},
		{Name: "u32OutputFifoDepth", Type: U32, Alias: "output_fifo_depth"},
		{Name: "u32FrameBufSize", Type: U32, Alias: "frame_buf_size"},
		{Name: "enOutputMode", Type: Enum, Alias: "output_mode"},
		{Name: "enImgFormat", Type: Enum, Alias: "img_format"},
		{Name: "stCompressInfo", Type: FrameCompressInfo, Alias: "compress_info"},
		{Name: "stOutputFrmRate", Type: VdecFrameRateCtrl, Alias: "output_frm_rate"},
	})

	VdecDecodeError = Struct("AX_VDEC_DECODE_ERROR_T", []Field{
		{Name: "s32FormatErr", Type: S32, Alias: "format_err"},
		{Name: "s32PicSizeErrSet", Type: S32, Alias: "pic_size_err_set"},
		{Name: "s32StreamUnsprt", Type: S32, Alias: "stream_unsprt"},
		{Name: "s32PackErr", Type: S32, Alias: "pack_err"},
		{Name: "s32RefErrSet", Type: S32, Alias: "ref_err_set"},
		{Name: "s32PicBufSizeErrSet", Type: S32, Alias: "pic_buf_size_err_set"},
		{Name: "s32StreamSizeOver", Type: S32, Alias: "stream_size_over"},
		{Name: "s32VdecStreamNotRelease", Type: S32, Alias: "vdec_stream_not_release"},
	})

	VdecGrpStatus = Struct("AX_VDEC_GRP_STATUS_T", []Field{
		{Name: "enCodecType", Type: Enum, Alias: "codec_type"},
		{Name: "u32LeftStreamBytes", Type: U32, Alias: "left_stream_bytes"},
		{Name: "u32LeftStreamFrames", Type: U32, Alias: "left_stream_frames"},
		{Name: "u32LeftPics", Type: Array(U32, VdecMaxChn), Alias: "left_pics"},
		{Name: "bStartRecvStream", Type: Bool, Alias: "start_recv_stream"},
		{Name: "u32RecvStreamFrames", Type: U32, Alias: "recv_stream_frames"},
		{Name: "u32DecodeStreamFrames", Type: U32, Alias: "decode_stream_frames"},
		{Name: "u32PicWidth", Type: U32, Alias: "pic_width"},
		{Name: "u32PicHeight", Type: U32, Alias: "pic_height"},
		{Name: "bInputFifoIsFull", Type: Bool, Alias: "input_fifo_is_full"},
		{Name: "stVdecDecErr", Type: VdecDecodeError, Alias: "vdec_dec_err"},
	})

	VdecUserData = Struct("AX_VDEC_USERDATA_T", []Field{
		{Name: "u64PhyAddr", Type: U64, Alias: "phy_addr"},
		{Name: "u32UserDataCnt", Type: U32, Alias: "user_data_cnt"},
		{Name: "u32Len", Type: U32, Alias: "len"},
		{Name: "u32BufSize", Type: U32, Alias: "buf_size"},
		{Name: "u32DataLen", Type: Array(U32, VdecMaxUserDataCnt), Alias: "data_len"},
		{Name: "bValid", Type: Bool, Alias: "valid"},
		{Name: "pu8Addr", Type: Pointer, Alias: "addr"},
	})

	VdecGrpChnSet = Struct("AX_VDEC_GRP_CHN_SET", []Field{
		{Name: "VdGrp", Type: S32, Alias: "grp"},
		{Name: "u32ChnCount", Type: U32, Alias: "chn_count"},
		{Name: "VdChn", Type: Array(S32, VdecMaxChn), Alias: "chn"},
		{Name: "u64ChnFrameNum", Type: Array(U64, VdecMaxChn), Alias: "chn_frame_num"},
	})

	VdecGrpSetInfo = Struct("AX_VDEC_GRP_SET_INFO_T", []Field{
		{Name: "u32GrpCount", Type: U32, Alias: "grp_count", CountOf: "stChnSet"},
		{Name: "stChnSet", Type: Array(VdecGrpChnSet, VdecMaxGrp), Alias: "chn_set"},
	})

	VdecDecOneFrm = Struct("AX_VDEC_DEC_ONE_FRM_T", []Field{
		{Name: "stStream", Type: VdecStream, Alias: "stream"},
		{Name: "stFrame", Type: VideoFrame, Alias: "frame"},
		{Name: "enOutputMode", Type: Enum, Alias: "output_mode"},
		{Name: "enImgFormat", Type: Enum, Alias: "img_format"},
	})

	VdecStreamBufInfo = Struct("AX_VDEC_STREAM_BUF_INFO_T", []Field{
		{Name: "phyStart", Type: U64, Alias: "phy_start"},
		{Name: "virStart", Type: Pointer, Alias: "vir_start"},
		{Name: "totalSize", Type: U32, Alias: "total_size"},
		{Name: "readAbleSize", Type: U32, Alias: "readable_size"},
		{Name: "writeAbleSize", Type: U32, Alias: "writeable_size"},
		{Name: "readOffset", Type: U32, Alias: "read_offset"},
		{Name: "writeOffset", Type: U32, Alias: "write_offset"},
	})

	VdecVuiAspectRatio = Struct("AX_VDEC_VUI_ASPECT_RATIO_T", []Field{
		{Name: "aspect_ratio_info_present_flag", Type: U8},
		{Name: "aspect_ratio_idc", Type: U8},
		{Name: "overscan_info_present_flag", Type: U8},
		{Name: "overscan_appropriate_flag", Type: U8},
		{Name: "sar_width", Type: U16},
		{Name: "sar_height", Type: U16},
	})

	VdecVuiTimeInfo = Struct("AX_VDEC_VUI_TIME_INFO_T", []Field{
		{Name: "timing_info_present_flag", Type: U8},
		{Name: "num_units_in_tick", Type: U32},
		{Name: "time_scale", Type: U32},
		{Name: "fixed_frame_rate_flag", Type: U8},
		{Name: "num_ticks_poc_diff_one_minus1", Type: U32},
	})

	VdecVuiVideoSignal = Struct("AX_VDEC_VUI_VIDEO_SIGNAL_T", []Field{
		{Name: "video_signal_type_present_flag", Type: U8},
		{Name: "video_format", Type: U8},
		{Name: "video_full_range_flag", Type: U8},
		{Name: "colour_description_present_flag", Type: U8},
		{Name: "colour_primaries", Type: U8},
		{Name: "transfer_characteristics", Type: U8},
		{Name: "matrix_coefficients", Type: U8},
	})

	VdecVuiBitstreamRestric = Struct("AX_VDEC_VUI_BITSTREAM_RESTRIC_T", []Field{
		{Name: "bitstream_restriction_flag", Type: U8},
	})

	VdecVuiParam = Struct("AX_VDEC_VUI_PARAM_T", []Field{
		{Name: "stVuiAspectRatio", Type: VdecVuiAspectRatio, Alias: "vui_aspect_ratio"},
		{Name: "stVuiTimeInfo", Type: VdecVuiTimeInfo, Alias: "vui_time_info"},
		{Name: "stVuiVideoSignal", Type: VdecVuiVideoSignal, Alias: "vui_video_signal"},
		{Name: "stVuiBitstreamRestric", Type: VdecVuiBitstreamRestric, Alias: "vui_bit_stream_restric"},
	})

	VdecUsrPic = Struct("AX_VDEC_USRPIC_T", []Field{
		{Name: "stFrmInfo", Type: Array(VideoFrameInfo, VdecMaxChn), Alias: "frm_info"},
		{Name: "bInstant", Type: Bool, Alias: "instant"},
		{Name: "bEnable", Type: Array(Bool, VdecMaxChn), Alias: "enable"},
	})

	VdecBitstreamInfo = Struct("AX_VDEC_BITSTREAM_INFO_T", []Field{
		{Name: "u32Width", Type: U32, Alias: "width"},
		{Name: "u32Height", Type: U32, Alias: "height"},
		{Name: "u32RefFramesNum", Type: U32, Alias: "ref_frames_num"},
		{Name: "u32BitDepthY", Type: U32, Alias: "bit_depth_y"},
		{Name: "u32BitDepthC", Type: U32, Alias: "bit_depth_c"},
	})
)
