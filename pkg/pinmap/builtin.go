package pinmap

import "sort"

// builtinBoards indexes the builtin reference boards by name. Each entry is a
// constructor so callers always get a fresh copy.
var builtinBoards = map[string]func() *Board{
	"PRODIGY_KU115": ProdigyKU115,
}

// Builtin returns the named builtin board, freshly constructed.
func Builtin(name string) (*Board, bool) {
	ctor, ok := builtinBoards[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// BuiltinNames returns the builtin board names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinBoards))
	for name := range builtinBoards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProdigyKU115 returns the pin map for the Prodigy Logic Module KU115
// prototyping board (Kintex UltraScale, FLVB2104 package). It covers the
// GPIO and clock connectors used by the I/O assignment flow; full vendor
// connector tables are distributed as .pinmap files instead.
func ProdigyKU115() *Board {
	return &Board{
		Name:   "PRODIGY_KU115",
		Device: "xcku115-flvb2104-2-e",
		Connectors: ConnectorMap{
			"J1": {
				"A1": {Pin: "AB12", Bank: "44", Description: "GPIO J1 bit 0"},
				"A2": {Pin: "AB13", Bank: "44", Description: "GPIO J1 bit 1"},
				"A3": {Pin: "AA12", Bank: "44", Description: "GPIO J1 bit 2"},
				"A4": {Pin: "AA13", Bank: "44", Description: "GPIO J1 bit 3"},
				"A5": {Pin: "AC12", Bank: "44", Description: "GPIO J1 bit 4"},
				"A6": {Pin: "AC13", Bank: "44", Description: "GPIO J1 bit 5"},
				"B1": {Pin: "AD14", Bank: "45", Description: "GPIO J1 bit 8"},
				"B2": {Pin: "AD15", Bank: "45", Description: "GPIO J1 bit 9"},
				"B3": {Pin: "AE14", Bank: "45", Description: "GPIO J1 bit 10"},
				"B4": {Pin: "AE15", Bank: "45", Description: "GPIO J1 bit 11"},
				"B5": {Pin: "AF14", Bank: "45", Description: "GPIO J1 bit 12"},
				"B6": {Pin: "AF15", Bank: "45", Description: "GPIO J1 bit 13"},
			},
			"J2": {
				"A1": {Pin: "K22", Bank: "66", Description: "GPIO J2 bit 0"},
				"A2": {Pin: "K23", Bank: "66", Description: "GPIO J2 bit 1"},
				"A3": {Pin: "J22", Bank: "66", Description: "GPIO J2 bit 2"},
				"A4": {Pin: "J23", Bank: "66", Description: "GPIO J2 bit 3"},
				"B1": {Pin: "H24", Bank: "67", Description: "GPIO J2 bit 8"},
				"B2": {Pin: "H25", Bank: "67", Description: "GPIO J2 bit 9"},
				"B3": {Pin: "G24", Bank: "67", Description: "GPIO J2 bit 10"},
				"B4": {Pin: "G25", Bank: "67", Description: "GPIO J2 bit 11"},
			},
			"J3": {
				"CLK0_P": {Pin: "AY24", Bank: "47", Description: "User clock 0 positive"},
				"CLK0_N": {Pin: "AY25", Bank: "47", Description: "User clock 0 negative"},
				"CLK1_P": {Pin: "BA27", Bank: "48", Description: "User clock 1 positive"},
				"CLK1_N": {Pin: "BA28", Bank: "48", Description: "User clock 1 negative"},
			},
		},
	}
}
