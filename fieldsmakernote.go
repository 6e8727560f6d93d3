// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

// Nikon maker notes from the E99x and D1 onwards.
var nikonNewerTags = TagTable{
	0x0001: formatted("MakernoteVersion", converters.makeString),
	0x0002: plain("ISOSetting"),
	0x0003: plain("ColorMode"),
	0x0004: plain("Quality"),
	0x0005: plain("Whitebalance"),
	0x0006: plain("ImageSharpening"),
	0x0007: plain("FocusMode"),
	0x0008: plain("FlashSetting"),
	0x0009: plain("AutoFlashMode"),
	0x000B: plain("WhiteBalanceBias"),
	0x000C: plain("WhiteBalanceRBCoeff"),
	0x000D: formatted("ProgramShift", converters.nikonEVBias),
	0x000E: formatted("ExposureDifference", converters.nikonEVBias),
	0x000F: plain("ISOSelection"),
	0x0011: plain("NikonPreview"),
	0x0012: formatted("FlashCompensation", converters.nikonEVBias),
	0x0013: plain("ISOSpeedRequested"),
	0x0016: plain("PhotoCornerCoordinates"),
	0x0018: formatted("FlashBracketCompensationApplied", converters.nikonEVBias),
	0x0019: plain("AEBracketCompensationApplied"),
	0x001A: plain("ImageProcessing"),
	0x001B: plain("CropHiSpeed"),
	0x001D: plain("SerialNumber"),
	0x001E: plain("ColorSpace"),
	0x001F: plain("VRInfo"),
	0x0020: plain("ImageAuthentication"),
	0x0022: plain("ActiveDLighting"),
	0x0023: plain("PictureControl"),
	0x0024: plain("WorldTime"),
	0x0025: plain("ISOInfo"),
	0x0080: plain("ImageAdjustment"),
	0x0081: plain("ToneCompensation"),
	0x0082: plain("AuxiliaryLens"),
	0x0083: plain("LensType"),
	0x0084: plain("LensMinMaxFocalMaxAperture"),
	0x0085: plain("ManualFocusDistance"),
	0x0086: plain("DigitalZoomFactor"),
	0x0087: lookup("FlashMode", Lookup{
		0x00: "Did Not Fire",
		0x01: "Fired, Manual",
		0x07: "Fired, External",
		0x08: "Fired, Commander Mode ",
		0x09: "Fired, TTL Mode",
	}),
	0x0088: lookup("AFFocusPosition", Lookup{
		0x0000: "Center",
		0x0100: "Top",
		0x0200: "Bottom",
		0x0300: "Left",
		0x0400: "Right",
	}),
	0x0089: lookup("BracketingMode", Lookup{
		0x00: "Single frame, no bracketing",
		0x01: "Continuous, no bracketing",
		0x02: "Timer, no bracketing",
		0x10: "Single frame, exposure bracketing",
		0x11: "Continuous, exposure bracketing",
		0x12: "Timer, exposure bracketing",
		0x40: "Single frame, white balance bracketing",
		0x41: "Continuous, white balance bracketing",
		0x42: "Timer, white balance bracketing",
	}),
	0x008A: plain("AutoBracketRelease"),
	0x008B: plain("LensFStops"),
	0x008C: plain("NEFCurve1"),
	0x008D: plain("ColorMode"),
	0x008F: plain("SceneMode"),
	0x0090: plain("LightingType"),
	0x0091: plain("ShotInfo"),
	0x0092: plain("HueAdjustment"),
	0x0094: plain("Saturation"),
	0x0095: plain("NoiseReduction"),
	0x0096: plain("NEFCurve2"),
	0x0097: plain("ColorBalance"),
	0x0098: plain("LensData"),
	0x0099: plain("RawImageCenter"),
	0x009A: plain("SensorPixelSize"),
	0x009C: plain("Scene Assist"),
	0x009E: plain("RetouchHistory"),
	0x00A0: plain("SerialNumber"),
	0x00A2: plain("ImageDataSize"),
	0x00A5: plain("ImageCount"),
	0x00A6: plain("DeletedImageCount"),
	0x00A7: plain("TotalShutterReleases"),
	0x00A8: plain("FlashInfo"),
	0x00A9: plain("ImageOptimization"),
	0x00AA: plain("Saturation"),
	0x00AB: plain("DigitalVariProgram"),
	0x00AC: plain("ImageStabilization"),
	0x00AD: plain("Responsive AF"),
	0x00B0: plain("MultiExposure"),
	0x00B1: plain("HighISONoiseReduction"),
	0x00B7: plain("AFInfo"),
	0x00B8: plain("FileInfo"),
	0x00B9: plain("AFTune"),
	0x0100: plain("DigitalICE"),
	0x0103: lookup("PreviewCompression", Lookup{
		1: "Uncompressed",
		2: "CCITT 1D",
		3: "T4/Group 3 Fax",
		4: "T6/Group 4 Fax",
		5: "LZW",
		6: "JPEG (old-style)",
		7: "JPEG",
		8: "Adobe Deflate",
	}),
	0x0201: plain("PreviewImageStart"),
	0x0202: plain("PreviewImageLength"),
	0x0213: lookup("PreviewYCbCrPositioning", Lookup{
		1: "Centered",
		2: "Co-sited",
	}),
	0x0E09: plain("NikonCaptureVersion"),
	0x0E0E: plain("NikonCaptureOffsets"),
	0x0E10: plain("NikonScan"),
	0x0E22: plain("NEFBitDepth"),
}

// Nikon type 1 maker notes.
var nikonOlderTags = TagTable{
	0x0003: lookup("Quality", Lookup{
		1: "VGA Basic",
		2: "VGA Normal",
		3: "VGA Fine",
		4: "SXGA Basic",
		5: "SXGA Normal",
		6: "SXGA Fine",
	}),
	0x0004: lookup("ColorMode", Lookup{
		1: "Color",
		2: "Monochrome",
	}),
	0x0005: lookup("ImageAdjustment", Lookup{
		0: "Normal",
		1: "Bright+",
		2: "Bright-",
		3: "Contrast+",
		4: "Contrast-",
	}),
	0x0006: lookup("CCDSpeed", Lookup{
		0: "ISO 80",
		2: "ISO 160",
		4: "ISO 320",
		5: "ISO 100",
	}),
	0x0007: lookup("WhiteBalance", Lookup{
		0: "Auto",
		1: "Preset",
		2: "Daylight",
		3: "Incandescent",
		4: "Fluorescent",
		5: "Cloudy",
		6: "Speed Light",
	}),
}

var olympusTags = TagTable{
	// Some Olympus models hide a JPEG thumbnail here.
	0x0100: plain("JPEGThumbnail"),
	0x0200: formatted("SpecialMode", converters.olympusSpecialMode),
	0x0201: lookup("JPEGQual", Lookup{
		1: "SQ",
		2: "HQ",
		3: "SHQ",
	}),
	0x0202: lookup("Macro", Lookup{
		0: "Normal",
		1: "Macro",
		2: "SuperMacro",
	}),
	0x0203: lookup("BWMode", Lookup{
		0: "Off",
		1: "On",
	}),
	0x0204: plain("DigitalZoom"),
	0x0205: plain("FocalPlaneDiagonal"),
	0x0206: plain("LensDistortionParams"),
	0x0207: formatted("SoftwareRelease", converters.makeString),
	0x0208: formatted("PictureInfo", converters.makeString),
	0x0209: formatted("CameraID", converters.makeString),
	0x0F00: plain("DataDump"),
	0x0300: plain("PreCaptureFrames"),
	0x0404: plain("SerialNumber"),
	0x1000: plain("ShutterSpeedValue"),
	0x1001: plain("ISOValue"),
	0x1002: plain("ApertureValue"),
	0x1003: plain("BrightnessValue"),
	0x1004: plain("FlashMode"),
	0x1006: plain("ExposureCompensation"),
	0x1007: plain("SensorTemperature"),
	0x1008: plain("LensTemperature"),
	0x100B: lookup("FocusMode", Lookup{
		0: "Auto",
		1: "Manual",
	}),
	0x1017: plain("RedBalance"),
	0x1018: plain("BlueBalance"),
	0x101A: plain("SerialNumber"),
	0x1023: plain("FlashExposureComp"),
	0x1026: lookup("ExternalFlashBounce", Lookup{
		0: "No",
		1: "Yes",
	}),
	0x1027: plain("ExternalFlashZoom"),
	0x1028: plain("ExternalFlashMode"),
	0x1029: lookup("Contrast", Lookup{
		0: "High",
		1: "Normal",
		2: "Low",
	}),
	0x102A: plain("SharpnessFactor"),
	0x102B: plain("ColorControl"),
	0x102C: plain("ValidBits"),
	0x102D: plain("CoringFilter"),
	0x102E: plain("OlympusImageWidth"),
	0x102F: plain("OlympusImageHeight"),
	0x1034: plain("CompressionRatio"),
	0x1035: lookup("PreviewImageValid", Lookup{
		0: "No",
		1: "Yes",
	}),
	0x1036: plain("PreviewImageStart"),
	0x1037: plain("PreviewImageLength"),
	0x1039: lookup("CCDScanMode", Lookup{
		0: "Interlaced",
		1: "Progressive",
	}),
	0x103A: plain("NoiseReduction"),
	0x103B: plain("InfinityLensStep"),
	0x103C: plain("NearLensStep"),
	0x2010: plain("Equipment"),
	0x2020: plain("CameraSettings"),
	0x2030: plain("RawDevelopment"),
	0x2040: plain("ImageProcessing"),
	0x2050: plain("FocusInfo"),
	0x3000: plain("RawInfo "),
}

var casioTags = TagTable{
	0x0001: lookup("RecordingMode", Lookup{
		1: "Single Shutter",
		2: "Panorama",
		3: "Night Scene",
		4: "Portrait",
		5: "Landscape",
	}),
	0x0002: lookup("Quality", Lookup{
		1: "Economy",
		2: "Normal",
		3: "Fine",
	}),
	0x0003: lookup("FocusingMode", Lookup{
		2: "Macro",
		3: "Auto Focus",
		4: "Manual Focus",
		5: "Infinity",
	}),
	0x0004: lookup("FlashMode", Lookup{
		1: "Auto",
		2: "On",
		3: "Off",
		4: "Red Eye Reduction",
	}),
	0x0005: lookup("FlashIntensity", Lookup{
		11: "Weak",
		13: "Normal",
		15: "Strong",
	}),
	0x0006: plain("Object Distance"),
	0x0007: lookup("WhiteBalance", Lookup{
		1:   "Auto",
		2:   "Tungsten",
		3:   "Daylight",
		4:   "Fluorescent",
		5:   "Shade",
		129: "Manual",
	}),
	0x000B: lookup("Sharpness", Lookup{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}),
	0x000C: lookup("Contrast", Lookup{
		0: "Normal",
		1: "Low",
		2: "High",
	}),
	0x000D: lookup("Saturation", Lookup{
		0: "Normal",
		1: "Low",
		2: "High",
	}),
	0x0014: lookup("CCDSpeed", Lookup{
		64:  "Normal",
		80:  "Normal",
		100: "High",
		125: "+1.0",
		244: "+3.0",
		250: "+2.0",
	}),
}

var fujifilmTags = TagTable{
	0x0000: formatted("NoteVersion", converters.makeString),
	0x1000: plain("Quality"),
	0x1001: lookup("Sharpness", Lookup{
		1: "Soft",
		2: "Soft",
		3: "Normal",
		4: "Hard",
		5: "Hard",
	}),
	0x1002: lookup("WhiteBalance", Lookup{
		0:    "Auto",
		256:  "Daylight",
		512:  "Cloudy",
		768:  "DaylightColor-Fluorescent",
		769:  "DaywhiteColor-Fluorescent",
		770:  "White-Fluorescent",
		1024: "Incandescent",
		3840: "Custom",
	}),
	0x1003: lookup("Color", Lookup{
		0:   "Normal",
		256: "High",
		512: "Low",
	}),
	0x1004: lookup("Tone", Lookup{
		0:   "Normal",
		256: "High",
		512: "Low",
	}),
	0x1010: lookup("FlashMode", Lookup{
		0: "Auto",
		1: "On",
		2: "Off",
		3: "Red Eye Reduction",
	}),
	0x1011: plain("FlashStrength"),
	0x1020: lookup("Macro", Lookup{
		0: "Off",
		1: "On",
	}),
	0x1021: lookup("FocusMode", Lookup{
		0: "Auto",
		1: "Manual",
	}),
	0x1030: lookup("SlowSync", Lookup{
		0: "Off",
		1: "On",
	}),
	0x1031: lookup("PictureMode", Lookup{
		0:   "Auto",
		1:   "Portrait",
		2:   "Landscape",
		4:   "Sports",
		5:   "Night",
		6:   "Program AE",
		256: "Aperture Priority AE",
		512: "Shutter Priority AE",
		768: "Manual Exposure",
	}),
	0x1100: lookup("MotorOrBracket", Lookup{
		0: "Off",
		1: "On",
	}),
	0x1300: lookup("BlurWarning", Lookup{
		0: "Off",
		1: "On",
	}),
	0x1301: lookup("FocusWarning", Lookup{
		0: "Off",
		1: "On",
	}),
	0x1302: lookup("AEWarning", Lookup{
		0: "Off",
		1: "On",
	}),
}

var canonTags = TagTable{
	0x0006: plain("ImageType"),
	0x0007: plain("FirmwareVersion"),
	0x0008: plain("ImageNumber"),
	0x0009: plain("OwnerName"),
}

// canonField describes one element of a Canon array tag.
// A nil values lookup means that the raw value is shown.
type canonField struct {
	name   string
	values Lookup
}

// Canon tag 0x0001, camera settings, by array index.
var canonTag0x0001 = map[int]canonField{
	1: {"Macromode", Lookup{
		1: "Macro",
		2: "Normal",
	}},
	2: {"SelfTimer", nil},
	3: {"Quality", Lookup{
		2: "Normal",
		3: "Fine",
		5: "Superfine",
	}},
	4: {"FlashMode", Lookup{
		0:  "Flash Not Fired",
		1:  "Auto",
		2:  "On",
		3:  "Red-Eye Reduction",
		4:  "Slow Synchro",
		5:  "Auto + Red-Eye Reduction",
		6:  "On + Red-Eye Reduction",
		16: "external flash",
	}},
	5: {"ContinuousDriveMode", Lookup{
		0: "Single Or Timer",
		1: "Continuous",
	}},
	7: {"FocusMode", Lookup{
		0: "One-Shot",
		1: "AI Servo",
		2: "AI Focus",
		3: "MF",
		4: "Single",
		5: "Continuous",
		6: "MF",
	}},
	10: {"ImageSize", Lookup{
		0: "Large",
		1: "Medium",
		2: "Small",
	}},
	11: {"EasyShootingMode", Lookup{
		0:  "Full Auto",
		1:  "Manual",
		2:  "Landscape",
		3:  "Fast Shutter",
		4:  "Slow Shutter",
		5:  "Night",
		6:  "B&W",
		7:  "Sepia",
		8:  "Portrait",
		9:  "Sports",
		10: "Macro/Close-Up",
		11: "Pan Focus",
	}},
	12: {"DigitalZoom", Lookup{
		0: "None",
		1: "2x",
		2: "4x",
	}},
	13: {"Contrast", Lookup{
		0xFFFF: "Low",
		0:      "Normal",
		1:      "High",
	}},
	14: {"Saturation", Lookup{
		0xFFFF: "Low",
		0:      "Normal",
		1:      "High",
	}},
	15: {"Sharpness", Lookup{
		0xFFFF: "Low",
		0:      "Normal",
		1:      "High",
	}},
	16: {"ISO", Lookup{
		0:  "See ISOSpeedRatings Tag",
		15: "Auto",
		16: "50",
		17: "100",
		18: "200",
		19: "400",
	}},
	17: {"MeteringMode", Lookup{
		3: "Evaluative",
		4: "Partial",
		5: "Center-weighted",
	}},
	18: {"FocusType", Lookup{
		0: "Manual",
		1: "Auto",
		3: "Close-Up (Macro)",
		8: "Locked (Pan Mode)",
	}},
	19: {"AFPointSelected", Lookup{
		0x3000: "None (MF)",
		0x3001: "Auto-Selected",
		0x3002: "Right",
		0x3003: "Center",
		0x3004: "Left",
	}},
	20: {"ExposureMode", Lookup{
		0: "Easy Shooting",
		1: "Program",
		2: "Tv-priority",
		3: "Av-priority",
		4: "Manual",
		5: "A-DEP",
	}},
	23: {"LongFocalLengthOfLensInFocalUnits", nil},
	24: {"ShortFocalLengthOfLensInFocalUnits", nil},
	25: {"FocalUnitsPerMM", nil},
	28: {"FlashActivity", Lookup{
		0: "Did Not Fire",
		1: "Fired",
	}},
	29: {"FlashDetails", Lookup{
		14: "External E-TTL",
		13: "Internal Flash",
		11: "FP Sync Used",
		7:  "2nd(\"Rear\")-Curtain Sync Used",
		4:  "FP Sync Enabled",
	}},
	32: {"FocusMode", Lookup{
		0: "Single",
		1: "Continuous",
	}},
}

// Canon tag 0x0004, shot info, by array index.
var canonTag0x0004 = map[int]canonField{
	7: {"WhiteBalance", Lookup{
		0: "Auto",
		1: "Sunny",
		2: "Cloudy",
		3: "Tungsten",
		4: "Fluorescent",
		5: "Flash",
		6: "Custom",
	}},
	9:  {"SequenceNumber", nil},
	14: {"AFPointUsed", nil},
	15: {"FlashBias", Lookup{
		0xFFC0: "-2 EV",
		0xFFCC: "-1.67 EV",
		0xFFD0: "-1.50 EV",
		0xFFD4: "-1.33 EV",
		0xFFE0: "-1 EV",
		0xFFEC: "-0.67 EV",
		0xFFF0: "-0.50 EV",
		0xFFF4: "-0.33 EV",
		0x0000: "0 EV",
		0x000C: "0.33 EV",
		0x0010: "0.50 EV",
		0x0014: "0.67 EV",
		0x0020: "1 EV",
		0x002C: "1.33 EV",
		0x0030: "1.50 EV",
		0x0034: "1.67 EV",
		0x0040: "2 EV",
	}},
	19: {"SubjectDistance", nil},
}
