// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

const (
	tagStripOffsets                = 0x0111
	tagStripByteCounts             = 0x0117
	tagJPEGInterchangeFormat       = 0x0201
	tagJPEGInterchangeFormatLength = 0x0202
	tagExifOffset                  = 0x8769
	tagGPSInfo                     = 0x8825
	tagMakerNote                   = 0x927C
	tagUserComment                 = 0x9286
	tagInteroperabilityOffset      = 0xA005
)

// ignoreTags are skipped in quick mode.
var ignoreTags = map[uint16]bool{
	tagUserComment: true,
	tagMakerNote:   true,
}

func lookup(name string, l Lookup) *TagDef {
	return &TagDef{Name: name, Format: l}
}

func formatted(name string, f func([]any) string) *TagDef {
	return &TagDef{Name: name, Format: FormatFunc(f)}
}

func plain(name string) *TagDef {
	return &TagDef{Name: name}
}

var (
	orientationLookup = Lookup{
		1: "Horizontal (normal)",
		2: "Mirrored horizontal",
		3: "Rotated 180",
		4: "Mirrored vertical",
		5: "Mirrored horizontal then rotated 90 CCW",
		6: "Rotated 90 CW",
		7: "Mirrored horizontal then rotated 90 CW",
		8: "Rotated 90 CCW",
	}

	resolutionUnitLookup = Lookup{
		1: "Not Absolute",
		2: "Pixels/Inch",
		3: "Pixels/Centimeter",
	}

	lightSourceLookup = Lookup{
		0:   "Unknown",
		1:   "Daylight",
		2:   "Fluorescent",
		3:   "Tungsten (incandescent light)",
		4:   "Flash",
		9:   "Fine weather",
		10:  "Cloudy weather",
		11:  "Shade",
		12:  "Daylight fluorescent (D 5700 - 7100K)",
		13:  "Day white fluorescent (N 4600 - 5400K)",
		14:  "Cool white fluorescent (W 3900 - 4500K)",
		15:  "White fluorescent (WW 3200 - 3700K)",
		17:  "Standard light A",
		18:  "Standard light B",
		19:  "Standard light C",
		20:  "D55",
		21:  "D65",
		22:  "D75",
		23:  "D50",
		24:  "ISO studio tungsten",
		255: "other light source",
	}

	flashLookup = Lookup{
		0:  "Flash did not fire",
		1:  "Flash fired",
		5:  "Strobe return light not detected",
		7:  "Strobe return light detected",
		9:  "Flash fired, compulsory flash mode",
		13: "Flash fired, compulsory flash mode, return light not detected",
		15: "Flash fired, compulsory flash mode, return light detected",
		16: "Flash did not fire, compulsory flash mode",
		24: "Flash did not fire, auto mode",
		25: "Flash fired, auto mode",
		29: "Flash fired, auto mode, return light not detected",
		31: "Flash fired, auto mode, return light detected",
		32: "No flash function",
		65: "Flash fired, red-eye reduction mode",
		69: "Flash fired, red-eye reduction mode, return light not detected",
		71: "Flash fired, red-eye reduction mode, return light detected",
		73: "Flash fired, compulsory flash mode, red-eye reduction mode",
		77: "Flash fired, compulsory flash mode, red-eye reduction mode, return light not detected",
		79: "Flash fired, compulsory flash mode, red-eye reduction mode, return light detected",
		89: "Flash fired, auto mode, red-eye reduction mode",
		93: "Flash fired, auto mode, return light not detected, red-eye reduction mode",
		95: "Flash fired, auto mode, return light detected, red-eye reduction mode",
	}

	componentsLookup = Lookup{
		0: "",
		1: "Y",
		2: "Cb",
		3: "Cr",
		4: "Red",
		5: "Green",
		6: "Blue",
	}
)

// EXIFTags is the standard table used for the Image, Thumbnail and EXIF directories.
var EXIFTags = TagTable{
	0x0100: plain("ImageWidth"),
	0x0101: plain("ImageLength"),
	0x0102: plain("BitsPerSample"),
	0x0103: lookup("Compression", Lookup{
		1:     "Uncompressed TIFF",
		2:     "CCITT 1D",
		3:     "T4/Group 3 Fax",
		4:     "T6/Group 4 Fax",
		5:     "LZW",
		6:     "JPEG (old-style)",
		7:     "JPEG",
		8:     "Adobe Deflate",
		9:     "JBIG B&W",
		10:    "JBIG Color",
		32766: "Next",
		32769: "Epson ERF Compressed",
		32771: "CCIRLEW",
		32773: "PackBits",
		32809: "Thunderscan",
		32895: "IT8CTPAD",
		32896: "IT8LW",
		32897: "IT8MP",
		32898: "IT8BL",
		32908: "PixarFilm",
		32909: "PixarLog",
		32946: "Deflate",
		32947: "DCS",
		34661: "JBIG",
		34676: "SGILog",
		34677: "SGILog24",
		34712: "JPEG 2000",
		34713: "Nikon NEF Compressed",
		65000: "Kodak DCR Compressed",
		65535: "Pentax PEF Compressed",
	}),
	0x0106: plain("PhotometricInterpretation"),
	0x0107: plain("Thresholding"),
	0x010A: plain("FillOrder"),
	0x010D: plain("DocumentName"),
	0x010E: plain("ImageDescription"),
	0x010F: plain("Make"),
	0x0110: plain("Model"),
	0x0111: plain("StripOffsets"),
	0x0112: lookup("Orientation", orientationLookup),
	0x0115: plain("SamplesPerPixel"),
	0x0116: plain("RowsPerStrip"),
	0x0117: plain("StripByteCounts"),
	0x011A: plain("XResolution"),
	0x011B: plain("YResolution"),
	0x011C: plain("PlanarConfiguration"),
	0x011D: formatted("PageName", converters.makeString),
	0x0128: lookup("ResolutionUnit", resolutionUnitLookup),
	0x012D: plain("TransferFunction"),
	0x0131: plain("Software"),
	0x0132: plain("DateTime"),
	0x013B: plain("Artist"),
	0x013E: plain("WhitePoint"),
	0x013F: plain("PrimaryChromaticities"),
	0x0156: plain("TransferRange"),
	0x0201: plain("JPEGInterchangeFormat"),
	0x0202: plain("JPEGInterchangeFormatLength"),
	0x0211: plain("YCbCrCoefficients"),
	0x0212: plain("YCbCrSubSampling"),
	0x0213: lookup("YCbCrPositioning", Lookup{
		1: "Centered",
		2: "Co-sited",
	}),
	0x0214: plain("ReferenceBlackWhite"),
	0x4746: plain("Rating"),
	0x828D: plain("CFARepeatPatternDim"),
	0x828E: plain("CFAPattern"),
	0x828F: plain("BatteryLevel"),
	0x8298: plain("Copyright"),
	0x829A: plain("ExposureTime"),
	0x829D: plain("FNumber"),
	0x83BB: plain("IPTC/NAA"),
	0x8769: plain("ExifOffset"),
	0x8773: plain("InterColorProfile"),
	0x8822: lookup("ExposureProgram", Lookup{
		0: "Unidentified",
		1: "Manual",
		2: "Program Normal",
		3: "Aperture Priority",
		4: "Shutter Priority",
		5: "Program Creative",
		6: "Program Action",
		7: "Portrait Mode",
		8: "Landscape Mode",
	}),
	0x8824: plain("SpectralSensitivity"),
	0x8825: plain("GPSInfo"),
	0x8827: plain("ISOSpeedRatings"),
	0x8828: plain("OECF"),
	0x9000: formatted("ExifVersion", converters.makeString),
	0x9003: plain("DateTimeOriginal"),
	0x9004: plain("DateTimeDigitized"),
	0x9101: lookup("ComponentsConfiguration", componentsLookup),
	0x9102: plain("CompressedBitsPerPixel"),
	0x9201: plain("ShutterSpeedValue"),
	0x9202: plain("ApertureValue"),
	0x9203: plain("BrightnessValue"),
	0x9204: plain("ExposureBiasValue"),
	0x9205: plain("MaxApertureValue"),
	0x9206: plain("SubjectDistance"),
	0x9207: lookup("MeteringMode", Lookup{
		0:   "Unidentified",
		1:   "Average",
		2:   "CenterWeightedAverage",
		3:   "Spot",
		4:   "MultiSpot",
		5:   "Pattern",
		6:   "Partial",
		255: "other",
	}),
	0x9208: lookup("LightSource", lightSourceLookup),
	0x9209: lookup("Flash", flashLookup),
	0x920A: plain("FocalLength"),
	0x9214: plain("SubjectArea"),
	0x927C: plain("MakerNote"),
	0x9286: formatted("UserComment", converters.makeStringUC),
	0x9290: plain("SubSecTime"),
	0x9291: plain("SubSecTimeOriginal"),
	0x9292: plain("SubSecTimeDigitized"),
	0x9C9B: plain("XPTitle"),
	0x9C9C: plain("XPComment"),
	0x9C9D: plain("XPAuthor"),
	0x9C9E: plain("XPKeywords"),
	0x9C9F: plain("XPSubject"),
	0xA000: formatted("FlashPixVersion", converters.makeString),
	0xA001: lookup("ColorSpace", Lookup{
		1:     "sRGB",
		2:     "Adobe RGB",
		65535: "Uncalibrated",
	}),
	0xA002: plain("ExifImageWidth"),
	0xA003: plain("ExifImageLength"),
	0xA004: plain("RelatedSoundFile"),
	0xA005: plain("InteroperabilityOffset"),
	0xA20B: plain("FlashEnergy"),
	0xA20C: plain("SpatialFrequencyResponse"),
	0xA20E: plain("FocalPlaneXResolution"),
	0xA20F: plain("FocalPlaneYResolution"),
	0xA210: plain("FocalPlaneResolutionUnit"),
	0xA214: plain("SubjectLocation"),
	0xA215: plain("ExposureIndex"),
	0xA217: lookup("SensingMethod", Lookup{
		1: "Not defined",
		2: "One-chip color area",
		3: "Two-chip color area",
		4: "Three-chip color area",
		5: "Color sequential area",
		7: "Trilinear",
		8: "Color sequential linear",
	}),
	0xA300: lookup("FileSource", Lookup{
		1: "Film Scanner",
		2: "Reflection Print Scanner",
		3: "Digital Camera",
	}),
	0xA301: lookup("SceneType", Lookup{
		1: "Directly Photographed",
	}),
	0xA302: plain("CVAPattern"),
	0xA401: lookup("CustomRendered", Lookup{
		0: "Normal",
		1: "Custom",
	}),
	0xA402: lookup("ExposureMode", Lookup{
		0: "Auto Exposure",
		1: "Manual Exposure",
		2: "Auto Bracket",
	}),
	0xA403: lookup("WhiteBalance", Lookup{
		0: "Auto",
		1: "Manual",
	}),
	0xA404: plain("DigitalZoomRatio"),
	0xA405: plain("FocalLengthIn35mmFilm"),
	0xA406: lookup("SceneCaptureType", Lookup{
		0: "Standard",
		1: "Landscape",
		2: "Portrait",
		3: "Night",
	}),
	0xA407: lookup("GainControl", Lookup{
		0: "None",
		1: "Low gain up",
		2: "High gain up",
		3: "Low gain down",
		4: "High gain down",
	}),
	0xA408: lookup("Contrast", Lookup{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}),
	0xA409: lookup("Saturation", Lookup{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}),
	0xA40A: lookup("Sharpness", Lookup{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}),
	0xA40B: plain("DeviceSettingDescription"),
	0xA40C: plain("SubjectDistanceRange"),
	0xA420: plain("ImageUniqueID"),
	0xA430: plain("CameraOwnerName"),
	0xA431: plain("BodySerialNumber"),
	0xA432: plain("LensSpecification"),
	0xA433: plain("LensMake"),
	0xA434: plain("LensModel"),
	0xA435: plain("LensSerialNumber"),
	0xA500: plain("Gamma"),
	0xC4A5: plain("PrintIM"),
	0xEA1C: plain("Padding"),
}

// InteropTags is used for the EXIF Interoperability directory.
var InteropTags = TagTable{
	0x0001: plain("InteroperabilityIndex"),
	0x0002: plain("InteroperabilityVersion"),
	0x1000: plain("RelatedImageFileFormat"),
	0x1001: plain("RelatedImageWidth"),
	0x1002: plain("RelatedImageLength"),
}

// GPSTags is used for the GPS directory.
var GPSTags = TagTable{
	0x0000: plain("GPSVersionID"),
	0x0001: plain("GPSLatitudeRef"),
	0x0002: plain("GPSLatitude"),
	0x0003: plain("GPSLongitudeRef"),
	0x0004: plain("GPSLongitude"),
	0x0005: plain("GPSAltitudeRef"),
	0x0006: plain("GPSAltitude"),
	0x0007: plain("GPSTimeStamp"),
	0x0008: plain("GPSSatellites"),
	0x0009: plain("GPSStatus"),
	0x000A: plain("GPSMeasureMode"),
	0x000B: plain("GPSDOP"),
	0x000C: plain("GPSSpeedRef"),
	0x000D: plain("GPSSpeed"),
	0x000E: plain("GPSTrackRef"),
	0x000F: plain("GPSTrack"),
	0x0010: plain("GPSImgDirectionRef"),
	0x0011: plain("GPSImgDirection"),
	0x0012: plain("GPSMapDatum"),
	0x0013: plain("GPSDestLatitudeRef"),
	0x0014: plain("GPSDestLatitude"),
	0x0015: plain("GPSDestLongitudeRef"),
	0x0016: plain("GPSDestLongitude"),
	0x0017: plain("GPSDestBearingRef"),
	0x0018: plain("GPSDestBearing"),
	0x0019: plain("GPSDestDistanceRef"),
	0x001A: plain("GPSDestDistance"),
	0x001B: plain("GPSProcessingMethod"),
	0x001C: plain("GPSAreaInformation"),
	0x001D: plain("GPSDate"),
	0x001E: plain("GPSDifferential"),
}
