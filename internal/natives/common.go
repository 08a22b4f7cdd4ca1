package natives

type nativeDef struct {
	name   string
	ret    string
	params []string
}

// commonNatives covers the handful of library functions most scripts
// touch, so analysis works without the game's natives.galaxy on disk.
var commonNatives = []nativeDef{
	// debug output
	{"TriggerDebugOutput", "void", []string{"int", "text", "bool"}},
	{"TriggerDebugWindowShow", "void", []string{"bool"}},

	// units
	{"UnitCreate", "unit", []string{"int", "string", "int", "int", "point", "fixed"}},
	{"UnitKill", "void", []string{"unit"}},
	{"UnitRemove", "void", []string{"unit"}},
	{"UnitSetPosition", "void", []string{"unit", "point", "bool"}},
	{"UnitGetPosition", "point", []string{"unit"}},
	{"UnitGetOwner", "int", []string{"unit"}},
	{"UnitIsAlive", "bool", []string{"unit"}},
	{"UnitOrder", "void", []string{"unit", "order"}},
	{"UnitGroupCount", "int", []string{"unitgroup", "int"}},

	// players
	{"PlayerSetResource", "void", []string{"int", "string", "int"}},
	{"PlayerGetResource", "int", []string{"int", "string"}},

	// points
	{"Point", "point", []string{"fixed", "fixed"}},
	{"PointX", "fixed", []string{"point"}},
	{"PointY", "fixed", []string{"point"}},
	{"PointFromUnit", "point", []string{"unit"}},
	{"DistanceBetweenPoints", "fixed", []string{"point", "point"}},

	// triggers
	{"TriggerCreate", "trigger", []string{"string"}},
	{"TriggerEnable", "void", []string{"trigger", "bool"}},
	{"TriggerDestroy", "void", []string{"trigger"}},
	{"TriggerExecute", "void", []string{"trigger", "bool", "bool"}},

	// timers
	{"TimerCreate", "timer", nil},
	{"TimerStart", "void", []string{"timer", "fixed", "bool"}},
	{"TimerStop", "void", []string{"timer"}},
	{"TimerGetElapsed", "fixed", []string{"timer"}},
	{"TimerGetRemaining", "fixed", []string{"timer"}},

	// strings
	{"StringLength", "int", []string{"string"}},
	{"StringSub", "string", []string{"string", "int", "int"}},
	{"StringCase", "string", []string{"string", "bool"}},
	{"IntToString", "string", []string{"int"}},
	{"FixedToString", "string", []string{"fixed", "int"}},
	{"StringToInt", "int", []string{"string"}},
	{"StringToFixed", "fixed", []string{"string"}},

	// math
	{"Abs", "fixed", []string{"fixed"}},
	{"Cos", "fixed", []string{"fixed"}},
	{"Sin", "fixed", []string{"fixed"}},
	{"Sqrt", "fixed", []string{"fixed"}},
	{"Pow", "fixed", []string{"fixed", "fixed"}},
	{"MinI", "int", []string{"int", "int"}},
	{"MaxI", "int", []string{"int", "int"}},
	{"MinF", "fixed", []string{"fixed", "fixed"}},
	{"MaxF", "fixed", []string{"fixed", "fixed"}},

	// random
	{"RandomInt", "int", []string{"int", "int"}},
	{"RandomFixed", "fixed", []string{"fixed", "fixed"}},
}
