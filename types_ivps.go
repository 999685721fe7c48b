package axcl

// GDC types (AX_IVPS_GDC_TYPE_E).
const (
	GDCTypeBypass  = 0
	GDCTypeFisheye = 1
	GDCTypeMapUser = 2
)

// Dewarp types (AX_IVPS_DEWARP_TYPE_E).
const (
	DewarpBypass         = 0
	DewarpMapUser        = 1
	DewarpPerspective    = 2
	DewarpLDC            = 3
	DewarpLDCV2          = 4
	DewarpLDCPerspective = 5
)

// Filter engines (AX_IVPS_ENGINE_E).
const (
	EngineSubsidiary = 0
	EngineTDP        = 1
	EngineGDC        = 2
	EngineVPP        = 3
	EngineVGP        = 4
	EngineIVE        = 5
	EngineVO         = 6
	EngineDSP        = 7
)

// Region types (AX_IVPS_RGN_TYPE_E).
const (
	RegionLine    = 0
	RegionRect    = 1
	RegionPolygon = 2
	RegionMosaic  = 3
	RegionOSD     = 4
)

// Rotation (AX_IVPS_ROTATION_E).
const (
	Rotation0   = 0
	Rotation90  = 1
	Rotation180 = 2
	Rotation270 = 3
)

// Scale ranges (AX_IVPS_SCALE_RANGE_TYPE_E).
const (
	ScaleRange0 = iota
	ScaleRange1
	ScaleRange2
	ScaleRange3
	ScaleRange4
	ScaleRange5
	ScaleRange6
	ScaleRange7
	ScaleRange8
)

// Scaler filter coefficient levels (AX_IVPS_COEF_LEVEL_E).
const (
	CoefLevel0 = iota
	CoefLevel1
	CoefLevel2
	CoefLevel3
	CoefLevel4
	CoefLevel5
	CoefLevel6
)

// Limits of the IVPS pipeline tables.
const (
	IVPSMaxOutChn       = 5
	IVPSMaxFilterPerGrp = 2
	IVPSMaxFilterChn    = IVPSMaxOutChn + 1
	IVPSMaxRgnDisp      = 32
	IVPSMaxFisheyeRgn   = 9
	IVPSMaxPolygonPts   = 10
)

var (
	IVPSRect = Struct("AX_IVPS_RECT_T", []Field{
		{Name: "nX", Type: S16, Alias: "x"},
		{Name: "nY", Type: S16, Alias: "y"},
		{Name: "nW", Type: U16, Alias: "width"},
		{Name: "nH", Type: U16, Alias: "height"},
	})

	IVPSPoint = Struct("AX_IVPS_POINT_T", []Field{
		{Name: "nX", Type: S16},
		{Name: "nY", Type: S16},
	})

	IVPSPointNice = Struct("AX_IVPS_POINT_NICE_T", []Field{
		{Name: "fX", Type: F32},
		{Name: "fY", Type: F32},
	})

	IVPSSize = Struct("AX_IVPS_SIZE_T", []Field{
		{Name: "nW", Type: U16},
		{Name: "nH", Type: U16},
	})

	FisheyeRgnAttr = Struct("AX_IVPS_FISHEYE_RGN_ATTR_T", []Field{
		{Name: "eViewMode", Type: Enum, Alias: "view_mode"},
		{Name: "nInRadius", Type: U16},
		{Name: "nOutRadius", Type: U16},
		{Name: "nPan", Type: U16},
		{Name: "nTilt", Type: U16},
		{Name: "nCenterX", Type: U16},
		{Name: "nCenterY", Type: U16},
		{Name: "nHorZoom", Type: U16},
		{Name: "nVerZoom", Type: U16},
		{Name: "tOutRect", Type: IVPSRect, Alias: "out_rect"},
	})

	FisheyeAttr = Struct("AX_IVPS_FISHEYE_ATTR_T", []Field{
		{Name: "bBgColor", Type: Bool, Alias: "enable_bg_color"},
		{Name: "nBgColor", Type: U32, Alias: "bg_color"},
		{Name: "nHorOffset", Type: S16},
		{Name: "nVerOffset", Type: S16},
		{Name: "nTrapezoidCoef", Type: U8},
		{Name: "nFanStrength", Type: S16},
		{Name: "eMountMode", Type: Enum},
		{Name: "nRgnNum", Type: U8, Alias: "region_num", CountOf: "tFisheyeRgnAttr"},
		{Name: "bRgnUpdate", Type: Bool},
		{Name: "nRgnUpdateIdx", Type: U8},
		{Name: "bRoiXY", Type: Bool, Alias: "enable_roi_xy"},
		{Name: "tFisheyeRgnAttr", Type: Array(FisheyeRgnAttr, IVPSMaxFisheyeRgn), Alias: "fisheye_rgn_attr"},
	})

	MapUserAttr = Struct("AX_IVPS_MAP_USER_ATTR_T", []Field{
		{Name: "nMeshStartX", Type: U16},
		{Name: "nMeshStartY", Type: U16},
		{Name: "nMeshWidth", Type: U16},
		{Name: "nMeshHeight", Type: U16},
		{Name: "nMeshNumH", Type: U8, Alias: "mesh_num_horizontal"},
		{Name: "nMeshNumV", Type: U8, Alias: "mesh_num_vertical"},
		{Name: "pUserMap", Type: Pointer, Alias: "user_map_pointer"},
		{Name: "nMeshTablePhyAddr", Type: U64, Alias: "mesh_table_physical_address"},
	})

	UnionGDCAttr = Union("UNION_GDC_ATTR", []Field{
		{Name: "tFisheyeAttr", Type: FisheyeAttr, Alias: "fisheye_attr"},
		{Name: "tMapUserAttr", Type: MapUserAttr, Alias: "map_user_attr"},
	}, SelectBy(map[int64]string{
		GDCTypeFisheye: "tFisheyeAttr",
		GDCTypeMapUser: "tMapUserAttr",
	}), Inactive(GDCTypeBypass))

	GDCAttr = Struct("AX_IVPS_GDC_ATTR_T", []Field{
		{Name: "eGdcType", Type: Enum, Alias: "gdc_type"},
		{Name: "tUnionGdcAttr", Type: UnionGDCAttr, Alias: "union_gdc_attr"},
		{Name: "nSrcWidth", Type: U16},
		{Name: "nSrcHeight", Type: U16},
		{Name: "nDstStride", Type: U16},
		{Name: "nDstWidth", Type: U16},
		{Name: "nDstHeight", Type: U16},
		{Name: "eDstFormat", Type: Enum, Alias: "dst_format"},
	}, DiscriminateBy("tUnionGdcAttr", "eGdcType"))

	PerspectiveAttr = Struct("AX_IVPS_PERSPECTIVE_ATTR_T", []Field{
		{Name: "nMatrix", Type: Array(S64, 9), Alias: "matrix"},
	})

	LDCAttr = Struct("AX_IVPS_LDC_ATTR_T", []Field{
		{Name: "bAspect", Type: Bool, Alias: "aspect_ratio_kept"},
		{Name: "nXRatio", Type: S16},
		{Name: "nYRatio", Type: S16},
		{Name: "nXYRatio", Type: S16},
		{Name: "nCenterXOffset", Type: S16},
		{Name: "nCenterYOffset", Type: S16},
		{Name: "nDistortionRatio", Type: S16},
		{Name: "nSpreadCoef", Type: S8},
	})

	LDCV2Attr = Struct("AX_IVPS_LDC_V2_ATTR_T", []Field{
		{Name: "nXFocus", Type: U32},
		{Name: "nYFocus", Type: U32},
		{Name: "nXCenter", Type: U32},
		{Name: "nYCenter", Type: U32},
		{Name: "nDistortionCoeff", Type: Array(S64, 8), Alias: "distortion_coefs"},
	})

	UnionDewarpAttr = Union("UNION_DEWARP_ATTR_T", []Field{
		{Name: "tMapUserAttr", Type: MapUserAttr, Alias: "map_user_attr"},
		{Name: "tLdcAttr", Type: LDCAttr, Alias: "ldc_attr"},
		{Name: "tLdcV2Attr", Type: LDCV2Attr, Alias: "ldc_v2_attr"},
	}, SelectBy(map[int64]string{
		DewarpMapUser:        "tMapUserAttr",
		DewarpLDC:            "tLdcAttr",
		DewarpLDCV2:          "tLdcV2Attr",
		DewarpLDCPerspective: "tLdcAttr",
	}), Inactive(DewarpBypass, DewarpPerspective))

	GDCCfg = Struct("AX_IVPS_GDC_CFG_T", []Field{
		{Name: "eDewarpType", Type: Enum, Alias: "dewarp_type"},
		{Name: "eRotation", Type: Enum, Alias: "rotation_type"},
		{Name: "bHwRotation", Type: Bool, Alias: "hardware_rotation"},
		{Name: "eVdspMode", Type: Enum, Alias: "vdsp_mode"},
		{Name: "bMirror", Type: Bool, Alias: "mirror_enabled"},
		{Name: "bFlip", Type: Bool, Alias: "flip_enabled"},
		{Name: "uDewarpAttr", Type: UnionDewarpAttr, Alias: "dewarp_attr"},
		{Name: "tPerspectiveAttr", Type: PerspectiveAttr, Alias: "perspective_attr"},
	}, DiscriminateBy("uDewarpAttr", "eDewarpType"))

	DewarpAttr = Struct("AX_IVPS_DEWARP_ATTR_T", []Field{
		{Name: "bCrop", Type: Bool, Alias: "enable_crop"},
		{Name: "tCropRect", Type: IVPSRect, Alias: "crop_rect"},
		{Name: "nDstWidth", Type: U16, Alias: "dst_width"},
		{Name: "nDstHeight", Type: U16, Alias: "dst_height"},
		{Name: "nDstStride", Type: U32, Alias: "dst_stride"},
		{Name: "eImgFormat", Type: Enum, Alias: "image_format"},
		{Name: "bPerspective", Type: Bool, Alias: "enable_perspective"},
		{Name: "tPerspectiveAttr", Type: PerspectiveAttr, Alias: "perspective_attr"},
		{Name: "eDewarpType", Type: Enum, Alias: "dewarp_type"},
		{Name: "tMapUserAttr", Type: MapUserAttr, Alias: "map_user_attr"},
	})

	AlphaLUT = Struct("AX_IVPS_ALPHA_LUT_T", []Field{
		{Name: "bAlphaEnable", Type: Bool, Alias: "enable_alpha"},
		{Name: "bAlphaReverse", Type: Bool, Alias: "reverse_alpha"},
		{Name: "u64PhyAddr", Type: U64, Alias: "physical_address"},
	})

	ScaleRange = Struct("AX_IVPS_SCALE_RANGE_T", []Field{
		{Name: "eHorScaleRange", Type: Enum, Alias: "hor_scale_range"},
		{Name: "eVerScaleRange", Type: Enum, Alias: "ver_scale_range"},
	})

	ScaleCoefLevel = Struct("AX_IVPS_SCALE_COEF_LEVEL_T", []Field{
		{Name: "eHorLuma", Type: Enum, Alias: "hor_luma"},
		{Name: "eHorChroma", Type: Enum, Alias: "hor_chroma"},
		{Name: "eVerLuma", Type: Enum, Alias: "ver_luma"},
		{Name: "eVerChroma", Type: Enum, Alias: "ver_chroma"},
	})

	IVPSPoolAttr = Struct("AX_IVPS_POOL_ATTR_T", []Field{
		{Name: "ePoolSrc", Type: Enum},
		{Name: "nFrmBufNum", Type: U8},
		{Name: "PoolId", Type: S32},
	})

	UserFrameRateCtrl = Struct("AX_IVPS_USER_FRAME_RATE_CTRL_T", []Field{
		{Name: "bEnable", Type: Bool},
		{Name: "nArryNum", Type: U8, CountOf: "bRateCtrl"},
		{Name: "bRateCtrl", Type: Array(Bool, 70)},
	})

	CropInfo = Struct("AX_IVPS_CROP_INFO_T", []Field{
		{Name: "bEnable", Type: Bool},
		{Name: "eCoordMode", Type: Enum},
		{Name: "tCropRect", Type: IVPSRect},
	})

	CornerRect = Struct("AX_IVPS_CORNER_RECT_ATTR_T", []Field{
		{Name: "bEnable", Type: Bool},
		{Name: "nHorLength", Type: U32},
		{Name: "nVerLength", Type: U32},
	})

	ScaleStep = Struct("AX_IVPS_SCALE_STEP_T", []Field{
		{Name: "bEnable", Type: Bool, Alias: "enabled"},
		{Name: "nScaleStepW", Type: U16},
		{Name: "nScaleStepH", Type: U16},
	})

	AspectRatio = Struct("AX_IVPS_ASPECT_RATIO_T", []Field{
		{Name: "eMode", Type: Enum, Alias: "aspect_ratio_mode"},
		{Name: "nBgColor", Type: U32, Alias: "background_color"},
		{Name: "eAligns", Type: Array(Enum, 2), Alias: "alignments"},
		{Name: "tRect", Type: IVPSRect, Alias: "rectangle"},
	})

	TDPCfg = Struct("AX_IVPS_TDP_CFG_T", []Field{
		{Name: "eRotation", Type: Enum, Alias: "rotation"},
		{Name: "bMirror", Type: Bool, Alias: "mirror"},
		{Name: "bFlip", Type: Bool, Alias: "flip"},
	})

	UnionFilterCfg = Union("UNION_IVPS_FILTER_CFG_T", []Field{
		{Name: "tTdpCfg", Type: TDPCfg, Alias: "tdp_cfg"},
		{Name: "tGdcCfg", Type: GDCCfg, Alias: "gdc_cfg"},
	}, SelectBy(map[int64]string{
		EngineTDP: "tTdpCfg",
		EngineGDC: "tGdcCfg",
	}), Inactive(EngineSubsidiary, EngineVPP, EngineVGP, EngineIVE, EngineVO, EngineDSP))

	IVPSFilter = Struct("AX_IVPS_FILTER_T", []Field{
		{Name: "bEngage", Type: Bool, Alias: "engaged"},
		{Name: "eEngine", Type: Enum, Alias: "engine"},
		{Name: "tFRC", Type: FrameRateCtrl, Alias: "frame_rate_control"},
		{Name: "bCrop", Type: Bool, Alias: "crop"},
		{Name: "tCropRect", Type: IVPSRect, Alias: "crop_rect"},
		{Name: "nDstPicWidth", Type: U32},
		{Name: "nDstPicHeight", Type: U32},
		{Name: "nDstPicStride", Type: U32},
		{Name: "eDstPicFormat", Type: Enum},
		{Name: "tCompressInfo", Type: FrameCompressInfo, Alias: "compression_info"},
		{Name: "bInplace", Type: Bool, Alias: "in_place"},
		{Name: "tAspectRatio", Type: AspectRatio, Alias: "aspect_ratio"},
		{Name: "uEngineCfg", Type: UnionFilterCfg, Alias: "engine_cfg"},
		{Name: "nFRC", Type: U32, Alias: "reserved"},
		{Name: "eScaleMode", Type: Enum, Alias: "scale_mode"},
	}, DiscriminateBy("uEngineCfg", "eEngine"))

	PipelineAttr = Struct("AX_IVPS_PIPELINE_ATTR_T", []Field{
		{Name: "nOutChnNum", Type: U8, Alias: "out_channel_num"},
		{Name: "nInDebugFifoDepth", Type: U16},
		{Name: "nOutFifoDepth", Type: Array(U8, IVPSMaxOutChn)},
		{Name: "tFilter", Type: Array(Array(IVPSFilter, IVPSMaxFilterPerGrp), IVPSMaxFilterChn), Alias: "filters"},
	})

	IVPSGrpAttr = Struct("AX_IVPS_GRP_ATTR_T", []Field{
		{Name: "nInFifoDepth", Type: U8},
		{Name: "ePipeline", Type: Enum},
	})

	IVPSChnAttr = Struct("AX_IVPS_CHN_ATTR_T", []Field{
		{Name: "tFRC", Type: FrameRateCtrl},
		{Name: "nDstPicWidth", Type: U32},
		{Name: "nDstPicHeight", Type: U32},
		{Name: "nDstPicStride", Type: U32},
		{Name: "eDstPicFormat", Type: Enum},
		{Name: "tAspectRatio", Type: AspectRatio},
		{Name: "nOutFifoDepth", Type: U8},
		{Name: "nFRC", Type: U32, Alias: "reserved"},
	})

	IVPSDutyCycle = Struct("AX_IVPS_DUTY_CYCLE_ATTR_T", []Field{
		{Name: "nVppDutyCycle", Type: U64},
		{Name: "nGdcDutyCycle", Type: U64},
		{Name: "nTdpDutyCycle", Type: U64},
		{Name: "nVgpDutyCycle", Type: U64},
		{Name: "nVoDutyCycle", Type: U64},
		{Name: "nDspDutyCycle", Type: U64},
		{Name: "nIveDutyCycle", Type: U64},
	})

	RgnChnAttr = Struct("AX_IVPS_RGN_CHN_ATTR_T", []Field{
		{Name: "nZindex", Type: S32, Alias: "z_index"},
		{Name: "bSingleCanvas", Type: Bool},
		{Name: "nAlpha", Type: U16},
		{Name: "eFormat", Type: Enum, Alias: "format"},
		{Name: "nBitColor", Type: BitColor, Alias: "bit_color"},
		{Name: "nColorKey", Type: ColorKey, Alias: "color_key"},
	})

	RgnLine = Struct("AX_IVPS_RGN_LINE_T", []Field{
		{Name: "tPTs", Type: Array(IVPSPoint, 2), Alias: "points"},
		{Name: "nLineWidth", Type: U32},
		{Name: "nColor", Type: U32},
		{Name: "nAlpha", Type: U8},
	})

	// RgnPolygonU is tagged by the region type two records out, on
	// AX_IVPS_RGN_DISP_T.
	RgnPolygonU = Union("UNION_RGN_POLYGON_T", []Field{
		{Name: "tRect", Type: IVPSRect, Alias: "rect"},
		{Name: "tPTs", Type: Array(IVPSPoint, IVPSMaxPolygonPts), Alias: "points"},
	}, SelectBy(map[int64]string{
		RegionRect:    "tRect",
		RegionPolygon: "tPTs",
	}))

	RgnPolygon = Struct("AX_IVPS_RGN_POLYGON_T", []Field{
		{Name: "uRgnPolygon", Type: RgnPolygonU, Alias: "rgn_polygon"},
		{Name: "nPointNum", Type: U8, Alias: "point_number"},
		{Name: "nLineWidth", Type: U32},
		{Name: "nColor", Type: U32},
		{Name: "nAlpha", Type: U8},
		{Name: "bSolid", Type: Bool, Alias: "solid_fill"},
		{Name: "tCornerRect", Type: CornerRect, Alias: "corner_rect"},
	}, DiscriminateBy("uRgnPolygon", "eType"))

	RgnMosaic = Struct("AX_IVPS_RGN_MOSAIC_T", []Field{
		{Name: "tRect", Type: IVPSRect, Alias: "rect"},
		{Name: "eBklSize", Type: Enum, Alias: "block_size"},
	})

	RgnDispU = Union("AX_IVPS_RGN_DISP_U", []Field{
		{Name: "tLine", Type: RgnLine, Alias: "line_attr"},
		{Name: "tPolygon", Type: RgnPolygon, Alias: "polygon_attr"},
		{Name: "tMosaic", Type: RgnMosaic, Alias: "mosaic_attr"},
		{Name: "tOSD", Type: OSDBmpAttr, Alias: "osd_attr"},
	}, SelectBy(map[int64]string{
		RegionLine:    "tLine",
		RegionRect:    "tPolygon",
		RegionPolygon: "tPolygon",
		RegionMosaic:  "tMosaic",
		RegionOSD:     "tOSD",
	}))

	RgnDisp = Struct("AX_IVPS_RGN_DISP_T", []Field{
		{Name: "bShow", Type: Bool, Alias: "show"},
		{Name: "eType", Type: Enum, Alias: "type"},
		{Name: "uDisp", Type: RgnDispU, Alias: "display"},
	}, DiscriminateBy("uDisp", "eType"))

	RgnDispGroup = Struct("AX_IVPS_RGN_DISP_GROUP_T", []Field{
		{Name: "nNum", Type: U32, Alias: "number_of_regions", CountOf: "arrDisp"},
		{Name: "tChnAttr", Type: RgnChnAttr, Alias: "channel_attr"},
		{Name: "arrDisp", Type: Array(RgnDisp, IVPSMaxRgnDisp), Alias: "display_attr_array"},
	})

	GDIAttr = Struct("AX_IVPS_GDI_ATTR_T", []Field{
		{Name: "nThick", Type: U16, Alias: "thickness"},
		{Name: "nAlpha", Type: U16},
		{Name: "nColor", Type: U32},
		{Name: "bSolid", Type: Bool, Alias: "solid_fill"},
		{Name: "bAbsCoo", Type: Bool, Alias: "absolute_coordinate"},
		{Name: "tCornerRect", Type: CornerRect},
	})

	CanvasInfo = Struct("AX_IVPS_RGN_CANVAS_INFO_T", []Field{
		{Name: "nPhyAddr", Type: U64, Alias: "physical_address"},
		{Name: "pVirAddr", Type: Pointer, Alias: "virtual_address"},
		{Name: "nUVOffset", Type: U32},
		{Name: "nStride", Type: U32},
		{Name: "nW", Type: U16},
		{Name: "nH", Type: U16},
		{Name: "eFormat", Type: Enum},
	})
)
