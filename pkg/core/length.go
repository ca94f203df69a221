package core

// Length is an absolute distance in English Metric Units (EMU).
// One inch is 914400 EMU, one point is 12700 EMU.
type Length int64

const (
	emuPerInch = 914400
	emuPerCm   = 360000
	emuPerMm   = 36000
	emuPerPt   = 12700
	emuPerTwip = 635
)

// Inches returns the Length of n inches.
func Inches(n float64) Length { return Length(n * emuPerInch) }

// Cm returns the Length of n centimeters.
func Cm(n float64) Length { return Length(n * emuPerCm) }

// Mm returns the Length of n millimeters.
func Mm(n float64) Length { return Length(n * emuPerMm) }

// Pt returns the Length of n points.
func Pt(n float64) Length { return Length(n * emuPerPt) }

// Twips returns the Length of n twentieths of a point.
func Twips(n int64) Length { return Length(n * emuPerTwip) }

// Emu returns the Length of n English Metric Units.
func Emu(n int64) Length { return Length(n) }

// Inches reports the length as a floating point number of inches.
func (l Length) Inches() float64 { return float64(l) / emuPerInch }

// Cm reports the length as a floating point number of centimeters.
func (l Length) Cm() float64 { return float64(l) / emuPerCm }

// Pt reports the length as a floating point number of points.
func (l Length) Pt() float64 { return float64(l) / emuPerPt }

// Twips reports the length in twips, rounded toward zero.
func (l Length) Twips() int64 { return int64(l) / emuPerTwip }

// Emu reports the raw value.
func (l Length) Emu() int64 { return int64(l) }
