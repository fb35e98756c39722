package tables

// builtinEntries returns the default command set. Coordinates and sizes are
// in dots; ranges follow the printable limits of current Zebra firmware.
func builtinEntries() []Entry {
	orient := []string{"N", "R", "I", "B"}
	yesNo := []string{"Y", "N"}

	return []Entry{
		{Code: "^XA", Description: "Start Format", Plane: PlaneFormat},
		{Code: "^XZ", Description: "End Format", Plane: PlaneFormat},
		{
			Code:        "^FO",
			Description: "Field Origin",
			Plane:       PlaneFormat,
			OpensField:  true,
			Args: []Arg{
				{Name: "x", Type: ArgInt, Required: true, Max: 32000},
				{Name: "y", Type: ArgInt, Required: true, Max: 32000},
				{Name: "justification", Type: ArgEnum, Enum: []string{"0", "1", "2"}},
			},
		},
		{
			Code:        "^FT",
			Description: "Field Typeset",
			Plane:       PlaneFormat,
			OpensField:  true,
			Args: []Arg{
				{Name: "x", Type: ArgInt, Required: true, Max: 32000},
				{Name: "y", Type: ArgInt, Required: true, Max: 32000},
				{Name: "justification", Type: ArgEnum, Enum: []string{"0", "1", "2"}},
			},
		},
		{Code: "^FS", Description: "Field Separator", Plane: PlaneFormat, ClosesField: true},
		{Code: "^FD", Description: "Field Data", Plane: PlaneFormat, FieldData: true},
		{Code: "^FV", Description: "Field Variable", Plane: PlaneFormat, FieldData: true},
		{Code: "^FX", Description: "Comment", Plane: PlaneFormat, FreeText: true},
		{
			Code:        "^FH",
			Description: "Field Hexadecimal Indicator",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "indicator", Type: ArgAny},
			},
		},
		{
			Code:        "^FN",
			Description: "Field Number",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "number", Type: ArgInt, Max: 9999},
			},
		},
		{
			Code:        "^A0",
			Description: "Scalable Font",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "orientation", Type: ArgEnum, Enum: orient},
				{Name: "height", Type: ArgInt, Min: 10, Max: 32000},
				{Name: "width", Type: ArgInt, Min: 10, Max: 32000},
			},
		},
		{
			Code:        "^A@",
			Description: "Use Font Name to Call Font",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "orientation", Type: ArgEnum, Enum: orient},
				{Name: "height", Type: ArgInt, Min: 10, Max: 32000},
				{Name: "width", Type: ArgInt, Min: 10, Max: 32000},
				{Name: "font", Type: ArgAny},
			},
		},
		{
			Code:        "^CF",
			Description: "Change Default Font",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "font", Type: ArgAny},
				{Name: "height", Type: ArgInt, Max: 32000},
				{Name: "width", Type: ArgInt, Max: 32000},
			},
		},
		{
			Code:        "^BY",
			Description: "Barcode Field Default",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "width", Type: ArgInt, Min: 1, Max: 10},
				{Name: "ratio", Type: ArgNum, Min: 2, Max: 3},
				{Name: "height", Type: ArgInt, Min: 1, Max: 32000},
			},
		},
		{
			Code:        "^BC",
			Description: "Code 128 Barcode",
			Plane:       PlaneFormat,
			Requires:    []string{"^BY"},
			Args: []Arg{
				{Name: "orientation", Type: ArgEnum, Enum: orient},
				{Name: "height", Type: ArgInt, Min: 1, Max: 32000},
				{Name: "interpretationLine", Type: ArgEnum, Enum: yesNo},
				{Name: "lineAbove", Type: ArgEnum, Enum: yesNo},
				{Name: "checkDigit", Type: ArgEnum, Enum: yesNo},
				{Name: "mode", Type: ArgEnum, Enum: []string{"N", "U", "A", "D"}},
			},
		},
		{
			Code:        "^B3",
			Description: "Code 39 Barcode",
			Plane:       PlaneFormat,
			Requires:    []string{"^BY"},
			Args: []Arg{
				{Name: "orientation", Type: ArgEnum, Enum: orient},
				{Name: "checkDigit", Type: ArgEnum, Enum: yesNo},
				{Name: "height", Type: ArgInt, Min: 1, Max: 32000},
				{Name: "interpretationLine", Type: ArgEnum, Enum: yesNo},
				{Name: "lineAbove", Type: ArgEnum, Enum: yesNo},
			},
			Data: &DataRules{Charset: "0-9A-Z .$/+%-"},
		},
		{
			Code:        "^BE",
			Description: "EAN-13 Barcode",
			Plane:       PlaneFormat,
			Requires:    []string{"^BY"},
			Args: []Arg{
				{Name: "orientation", Type: ArgEnum, Enum: orient},
				{Name: "height", Type: ArgInt, Min: 1, Max: 32000},
				{Name: "interpretationLine", Type: ArgEnum, Enum: yesNo},
				{Name: "lineAbove", Type: ArgEnum, Enum: yesNo},
			},
			Data: &DataRules{Charset: "0-9", ExactLength: 12},
		},
		{
			Code:        "^B8",
			Description: "EAN-8 Barcode",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "orientation", Type: ArgEnum, Enum: orient},
				{Name: "height", Type: ArgInt, Min: 1, Max: 32000},
				{Name: "interpretationLine", Type: ArgEnum, Enum: yesNo},
				{Name: "lineAbove", Type: ArgEnum, Enum: yesNo},
			},
			Data: &DataRules{Charset: "0-9", ExactLength: 7},
		},
		{
			Code:        "^BU",
			Description: "UPC-A Barcode",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "orientation", Type: ArgEnum, Enum: orient},
				{Name: "height", Type: ArgInt, Min: 1, Max: 9999},
				{Name: "interpretationLine", Type: ArgEnum, Enum: yesNo},
				{Name: "lineAbove", Type: ArgEnum, Enum: yesNo},
				{Name: "checkDigit", Type: ArgEnum, Enum: yesNo},
			},
			Data: &DataRules{Charset: "0-9", ExactLength: 11},
		},
		{
			Code:        "^GB",
			Description: "Graphic Box",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "width", Type: ArgInt, Min: 1, Max: 32000},
				{Name: "height", Type: ArgInt, Min: 1, Max: 32000},
				{Name: "thickness", Type: ArgInt, Min: 1, Max: 32000},
				{Name: "color", Type: ArgEnum, Enum: []string{"B", "W"}},
				{Name: "rounding", Type: ArgInt, Max: 8},
			},
		},
		{
			Code:        "^FB",
			Description: "Field Block",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "width", Type: ArgInt, Max: 32000},
				{Name: "lines", Type: ArgInt, Min: 1, Max: 9999},
				{Name: "lineSpacing", Type: ArgInt, Min: -9999, Max: 9999},
				{Name: "justification", Type: ArgEnum, Enum: []string{"L", "C", "R", "J"}},
				{Name: "hangingIndent", Type: ArgInt, Max: 9999},
			},
		},
		{
			Code:        "^SN",
			Description: "Serialization Data",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "start", Type: ArgAny},
				{Name: "increment", Type: ArgInt},
				{Name: "leadingZeros", Type: ArgEnum, Enum: yesNo},
			},
		},
		{
			Code:        "^PQ",
			Description: "Print Quantity",
			Plane:       PlaneFormat,
			Args: []Arg{
				{Name: "quantity", Type: ArgInt, Min: 1, Max: 99999999},
				{Name: "pauseCount", Type: ArgInt, Max: 99999999},
				{Name: "replicates", Type: ArgInt, Max: 99999999},
				{Name: "overridePause", Type: ArgEnum, Enum: yesNo},
			},
		},
		{
			Code:        "^PW",
			Description: "Print Width",
			Plane:       PlaneConfig,
			Args: []Arg{
				{Name: "width", Type: ArgInt, Required: true, Min: 2, Max: 32000},
			},
		},
		{
			Code:        "^LL",
			Description: "Label Length",
			Plane:       PlaneConfig,
			Args: []Arg{
				{Name: "length", Type: ArgInt, Required: true, Min: 1, Max: 32000},
			},
		},
		{
			Code:        "^LH",
			Description: "Label Home",
			Plane:       PlaneConfig,
			Args: []Arg{
				{Name: "x", Type: ArgInt, Max: 32000},
				{Name: "y", Type: ArgInt, Max: 32000},
			},
		},
		{
			Code:        "^CI",
			Description: "Change International Font/Encoding",
			Plane:       PlaneConfig,
			Args: []Arg{
				{Name: "charset", Type: ArgInt, Max: 36},
				{Name: "src1", Type: ArgInt, Max: 255},
				{Name: "dst1", Type: ArgInt, Max: 255},
			},
		},
		{
			Code:        "^MM",
			Description: "Print Mode",
			Plane:       PlaneConfig,
			Args: []Arg{
				{Name: "mode", Type: ArgEnum, Enum: []string{"T", "P", "R", "A", "C", "D", "F", "L", "U", "K"}},
				{Name: "prepeelSelect", Type: ArgEnum, Enum: yesNo},
			},
		},
		{
			Code:        "^MN",
			Description: "Media Tracking",
			Plane:       PlaneConfig,
			Args: []Arg{
				{Name: "mode", Type: ArgEnum, Enum: []string{"N", "Y", "W", "M", "A", "V"}},
				{Name: "blackMarkOffset", Type: ArgInt, Min: -80, Max: 283},
			},
		},
		{
			Code:        "^MD",
			Description: "Media Darkness",
			Plane:       PlaneConfig,
			Args: []Arg{
				{Name: "darkness", Type: ArgNum, Required: true, Min: -30, Max: 30},
			},
		},
		{
			Code:        "^PR",
			Description: "Print Rate",
			Plane:       PlaneConfig,
			Args: []Arg{
				{Name: "printSpeed", Type: ArgAny},
				{Name: "slewSpeed", Type: ArgAny},
				{Name: "backfeedSpeed", Type: ArgAny},
			},
		},
		{Code: "~HS", Description: "Host Status Return", Plane: PlaneHost},
		{Code: "~HI", Description: "Host Identification", Plane: PlaneHost},
		{
			Code:        "~SD",
			Description: "Set Darkness",
			Plane:       PlaneDevice,
			Args: []Arg{
				{Name: "darkness", Type: ArgInt, Required: true, Max: 30},
			},
		},
	}
}
