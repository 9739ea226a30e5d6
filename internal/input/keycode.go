package input

// libuiohook virtual key codes as delivered in hook.Event.Keycode.
const (
	vcEscape = 0x0001

	vcF1  = 0x003B
	vcF2  = 0x003C
	vcF3  = 0x003D
	vcF4  = 0x003E
	vcF5  = 0x003F
	vcF6  = 0x0040
	vcF7  = 0x0041
	vcF8  = 0x0042
	vcF9  = 0x0043
	vcF10 = 0x0044
	vcF11 = 0x0057
	vcF12 = 0x0058

	vcBackquote = 0x0029
	vc1         = 0x0002
	vc2         = 0x0003
	vc3         = 0x0004
	vc4         = 0x0005
	vc5         = 0x0006
	vc6         = 0x0007
	vc7         = 0x0008
	vc8         = 0x0009
	vc9         = 0x000A
	vc0         = 0x000B
	vcMinus     = 0x000C
	vcEquals    = 0x000D
	vcBackspace = 0x000E

	vcTab      = 0x000F
	vcCapsLock = 0x003A

	vcA = 0x001E
	vcB = 0x0030
	vcC = 0x002E
	vcD = 0x0020
	vcE = 0x0012
	vcF = 0x0021
	vcG = 0x0022
	vcH = 0x0023
	vcI = 0x0017
	vcJ = 0x0024
	vcK = 0x0025
	vcL = 0x0026
	vcM = 0x0032
	vcN = 0x0031
	vcO = 0x0018
	vcP = 0x0019
	vcQ = 0x0010
	vcR = 0x0013
	vcS = 0x001F
	vcT = 0x0014
	vcU = 0x0016
	vcV = 0x002F
	vcW = 0x0011
	vcX = 0x002D
	vcY = 0x0015
	vcZ = 0x002C

	vcOpenBracket  = 0x001A
	vcCloseBracket = 0x001B
	vcBackSlash    = 0x002B
	vcSemicolon    = 0x0027
	vcQuote        = 0x0028
	vcEnter        = 0x001C
	vcComma        = 0x0033
	vcPeriod       = 0x0034
	vcSlash        = 0x0035
	vcSpace        = 0x0039

	vcPrintScreen = 0x0E37
	vcScrollLock  = 0x0046
	vcPause       = 0x0E45

	vcInsert   = 0x0E52
	vcDelete   = 0x0E53
	vcHome     = 0x0E47
	vcEnd      = 0x0E4F
	vcPageUp   = 0x0E49
	vcPageDown = 0x0E51

	vcUp    = 0xE048
	vcLeft  = 0xE04B
	vcClear = 0xE04C
	vcRight = 0xE04D
	vcDown  = 0xE050

	vcNumLock     = 0x0045
	vcKpDivide    = 0x0E35
	vcKpMultiply  = 0x0037
	vcKpSubtract  = 0x004A
	vcKpEquals    = 0x0E0D
	vcKpAdd       = 0x004E
	vcKpEnter     = 0x0E1C
	vcKpSeparator = 0x0053
	vcKp1         = 0x004F
	vcKp2         = 0x0050
	vcKp3         = 0x0051
	vcKp4         = 0x004B
	vcKp5         = 0x004C
	vcKp6         = 0x004D
	vcKp7         = 0x0047
	vcKp8         = 0x0048
	vcKp9         = 0x0049
	vcKp0         = 0x0052

	vcShiftL      = 0x002A
	vcShiftR      = 0x0036
	vcControlL    = 0x001D
	vcControlR    = 0x0E1D
	vcAltL        = 0x0038
	vcAltR        = 0x0E38
	vcMetaL       = 0x0E5B
	vcMetaR       = 0x0E5C
	vcContextMenu = 0x0E5D
)

// keyNames maps virtual key codes to the raw names chord.Normalize expects.
// Side-specific modifiers keep their side here; normalization merges them.
var keyNames = map[uint16]string{
	vcEscape: "esc",

	vcF1:  "f1",
	vcF2:  "f2",
	vcF3:  "f3",
	vcF4:  "f4",
	vcF5:  "f5",
	vcF6:  "f6",
	vcF7:  "f7",
	vcF8:  "f8",
	vcF9:  "f9",
	vcF10: "f10",
	vcF11: "f11",
	vcF12: "f12",

	vcBackquote: "`",
	vc1:         "1",
	vc2:         "2",
	vc3:         "3",
	vc4:         "4",
	vc5:         "5",
	vc6:         "6",
	vc7:         "7",
	vc8:         "8",
	vc9:         "9",
	vc0:         "0",
	vcMinus:     "-",
	vcEquals:    "=",
	vcBackspace: "backspace",

	vcTab:      "tab",
	vcCapsLock: "caps lock",

	vcA: "a",
	vcB: "b",
	vcC: "c",
	vcD: "d",
	vcE: "e",
	vcF: "f",
	vcG: "g",
	vcH: "h",
	vcI: "i",
	vcJ: "j",
	vcK: "k",
	vcL: "l",
	vcM: "m",
	vcN: "n",
	vcO: "o",
	vcP: "p",
	vcQ: "q",
	vcR: "r",
	vcS: "s",
	vcT: "t",
	vcU: "u",
	vcV: "v",
	vcW: "w",
	vcX: "x",
	vcY: "y",
	vcZ: "z",

	vcOpenBracket:  "[",
	vcCloseBracket: "]",
	vcBackSlash:    "\\",
	vcSemicolon:    ";",
	vcQuote:        "'",
	vcEnter:        "enter",
	vcComma:        ",",
	vcPeriod:       ".",
	vcSlash:        "/",
	vcSpace:        "space",

	vcPrintScreen: "print screen",
	vcScrollLock:  "scroll lock",
	vcPause:       "pause",

	vcInsert:   "insert",
	vcDelete:   "delete",
	vcHome:     "home",
	vcEnd:      "end",
	vcPageUp:   "page up",
	vcPageDown: "page down",

	vcUp:    "up",
	vcLeft:  "left",
	vcClear: "clear",
	vcRight: "right",
	vcDown:  "down",

	vcNumLock:     "num lock",
	vcKpDivide:    "num/",
	vcKpMultiply:  "num*",
	vcKpSubtract:  "num-",
	vcKpEquals:    "num=",
	vcKpAdd:       "num plus",
	vcKpEnter:     "num enter",
	vcKpSeparator: "num.",
	vcKp1:         "num1",
	vcKp2:         "num2",
	vcKp3:         "num3",
	vcKp4:         "num4",
	vcKp5:         "num5",
	vcKp6:         "num6",
	vcKp7:         "num7",
	vcKp8:         "num8",
	vcKp9:         "num9",
	vcKp0:         "num0",

	vcShiftL:      "left shift",
	vcShiftR:      "right shift",
	vcControlL:    "left ctrl",
	vcControlR:    "right ctrl",
	vcAltL:        "left alt",
	vcAltR:        "right alt",
	vcMetaL:       "left windows",
	vcMetaR:       "right windows",
	vcContextMenu: "menu",
}
