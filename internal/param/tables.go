package param

// Parameter tables for the four actuator variants.
//
// The firmware exposes three layers: a common table shared by every
// variant, per-variant overrides that reuse a common index with
// different properties, and per-variant extensions with indexes the
// other variants do not have. Overrides and extensions are applied on
// top of the common table, later layers winning on index collisions.

type tableRow struct {
	index       uint16
	name        string
	typ         DataType
	access      AccessMode
	min, max    *float64
	description string
}

// bound returns a pointer to the given limit value.
func bound(v float64) *float64 { return &v }

var commonTable = []tableRow{
	// Boot and firmware identification.
	{0x1000, "BootCodeVersion", TypeString, AccessRead, nil, nil, "Boot code version"},
	{0x1001, "BootBuildDate", TypeString, AccessRead, nil, nil, "Boot build date"},
	{0x1002, "BootBuildTime", TypeString, AccessRead, nil, nil, "Boot build time"},
	{0x1003, "AppCodeVersion", TypeString, AccessRead, nil, nil, "Application code version"},
	{0x1004, "AppGitVersion", TypeString, AccessRead, nil, nil, "Application git version"},
	{0x1005, "AppBuildDate", TypeString, AccessRead, nil, nil, "Application build date"},
	{0x1006, "AppBuildTime", TypeString, AccessRead, nil, nil, "Application build time"},
	{0x1007, "AppCodeName", TypeString, AccessRead, nil, nil, "Application code name"},

	// Shared configuration.
	{0x2004, "echoFreHz", TypeUint32, AccessReadWrite, bound(1), bound(10000), "Echo frequency (Hz)"},
	{0x2008, "I_FW_MAX", TypeFloat32, AccessReadWrite, bound(0), bound(33), "Field-weakening current max"},
	{0x2009, "motor_baud", TypeUint8, AccessReadWrite, bound(1), bound(4), "Motor baud rate configuration"},
	{0x200B, "CAN_MASTER", TypeUint8, AccessReadWrite, bound(0), bound(300), "Master CAN ID"},
	{0x200D, "status2", TypeInt16, AccessReadWrite, bound(0), bound(1800), "Status parameter 2"},
	{0x200E, "status3", TypeUint32, AccessReadWrite, bound(1000), bound(1000000), "Status parameter 3"},
	{0x200F, "status1", TypeFloat32, AccessReadWrite, bound(1), bound(64), "Status parameter 1"},
	{0x2010, "status6", TypeUint8, AccessReadWrite, bound(0), bound(1), "Status parameter 6"},
	{0x2011, "cur_filt_gain", TypeFloat32, AccessReadWrite, bound(0), bound(1), "Current filter gain"},
	{0x2012, "cur_kp", TypeFloat32, AccessReadWrite, bound(0), bound(200), "Current Kp gain"},
	{0x2013, "cur_ki", TypeFloat32, AccessReadWrite, bound(0), bound(200), "Current Ki gain"},
	{0x2014, "spd_kp", TypeFloat32, AccessReadWrite, bound(0), bound(200), "Speed Kp gain"},
	{0x2015, "spd_ki", TypeFloat32, AccessReadWrite, bound(0), bound(200), "Speed Ki gain"},
	{0x2016, "loc_kp", TypeFloat32, AccessReadWrite, bound(0), bound(200), "Position Kp gain"},
	{0x2017, "spd_filt_gain", TypeFloat32, AccessReadWrite, bound(0), bound(1), "Speed filter gain"},
	{0x2018, "limit_spd", TypeFloat32, AccessReadWrite, bound(0), bound(200), "Speed limit"},
	{0x2019, "limit_cur", TypeFloat32, AccessReadWrite, bound(0), bound(27), "Current limit"},

	// Timing diagnostics.
	{0x3000, "timeUse0", TypeUint16, AccessRead, nil, nil, "Time usage 0"},
	{0x3001, "timeUse1", TypeUint16, AccessRead, nil, nil, "Time usage 1"},
	{0x3002, "timeUse2", TypeUint16, AccessRead, nil, nil, "Time usage 2"},
	{0x3003, "timeUse3", TypeUint16, AccessRead, nil, nil, "Time usage 3"},

	// Shared telemetry.
	{0x3005, "mcuTemp", TypeInt16, AccessRead, nil, nil, "MCU temperature"},
	{0x3006, "motorTemp", TypeInt16, AccessRead, nil, nil, "Motor temperature"},
	{0x3008, "adc1Offset", TypeInt32, AccessRead, nil, nil, "ADC1 offset"},
	{0x3009, "adc2Offset", TypeInt32, AccessRead, nil, nil, "ADC2 offset"},
	{0x300A, "adc1Raw", TypeUint16, AccessRead, nil, nil, "ADC1 raw value"},
	{0x300B, "adc2Raw", TypeUint16, AccessRead, nil, nil, "ADC2 raw value"},
	{0x300C, "VBUS", TypeFloat32, AccessRead, nil, nil, "Bus voltage (V)"},
	{0x300D, "cmdId", TypeFloat32, AccessRead, nil, nil, "Command Id"},
	{0x300E, "cmdIq", TypeFloat32, AccessRead, nil, nil, "Command Iq"},
	{0x300F, "cmdlocref", TypeFloat32, AccessRead, nil, nil, "Command position reference"},
	{0x3010, "cmdspdref", TypeFloat32, AccessRead, nil, nil, "Command speed reference"},
	{0x3011, "cmdTorque", TypeFloat32, AccessRead, nil, nil, "Command torque"},
	{0x3012, "cmdPos", TypeFloat32, AccessRead, nil, nil, "Command position"},
	{0x3013, "cmdVel", TypeFloat32, AccessRead, nil, nil, "Command velocity"},
	{0x3014, "rotation", TypeInt32, AccessRead, nil, nil, "Rotation count"},
	{0x3015, "modPos", TypeFloat32, AccessRead, nil, nil, "Modulo position"},
	{0x3016, "mechPos", TypeFloat32, AccessRead, nil, nil, "Mechanical position"},
	{0x3017, "mechVel", TypeFloat32, AccessRead, nil, nil, "Mechanical velocity"},
	{0x3018, "elecPos", TypeFloat32, AccessRead, nil, nil, "Electrical position"},
	{0x3019, "ia", TypeFloat32, AccessRead, nil, nil, "Phase A current"},
	{0x301A, "ib", TypeFloat32, AccessRead, nil, nil, "Phase B current"},
	{0x301B, "ic", TypeFloat32, AccessRead, nil, nil, "Phase C current"},
	{0x301C, "timeout", TypeInt32, AccessRead, nil, nil, "Timeout counter"},
	{0x301D, "phaseOrder", TypeUint8, AccessRead, nil, nil, "Phase order"},
	{0x301E, "iqf", TypeFloat32, AccessRead, nil, nil, "Iq filter value"},
	{0x301F, "boardTemp", TypeInt16, AccessRead, nil, nil, "Board temperature"},
	{0x3020, "iq", TypeFloat32, AccessRead, nil, nil, "Current Iq"},
	{0x3021, "id", TypeFloat32, AccessRead, nil, nil, "Current Id"},
	{0x3022, "faultSta", TypeUint32, AccessRead, nil, nil, "Fault status"},
	{0x3023, "warnSta", TypeUint32, AccessRead, nil, nil, "Warning status"},
	{0x3024, "drv_fault", TypeUint16, AccessRead, nil, nil, "Driver fault"},
	{0x3025, "drv_temp", TypeUint16, AccessRead, nil, nil, "Driver temperature"},
	{0x3026, "Uq", TypeFloat32, AccessRead, nil, nil, "Voltage Uq"},
	{0x3039, "ElecOffset", TypeFloat32, AccessRead, nil, nil, "Electrical offset"},
	{0x303A, "mcOverTemp", TypeInt16, AccessRead, nil, nil, "MCU over temperature"},
	{0x303B, "Kt_Nm/Amp", TypeFloat32, AccessRead, nil, nil, "Kt Nm/Amp"},
	{0x303C, "Tqcali_Type", TypeUint8, AccessRead, nil, nil, "Torque calibration type"},
	{0x303D, "theta_mech_1", TypeFloat32, AccessRead, nil, nil, "Theta mechanical 1"},
	{0x303E, "adcOffset_1", TypeInt32, AccessRead, nil, nil, "ADC offset 1"},
	{0x303F, "adcOffset_2", TypeInt32, AccessRead, nil, nil, "ADC offset 2"},
}

// variantOverrides reuses common indexes with variant-specific
// properties (name, type, access, or limits).
var variantOverrides = map[Variant][]tableRow{
	Variant00: {
		{0x2000, "echoPara1", TypeUint16, AccessDiagnostic, bound(5), bound(110), "Echo parameter 1"},
		{0x2001, "echoPara2", TypeUint16, AccessDiagnostic, bound(5), bound(110), "Echo parameter 2"},
		{0x2002, "echoPara3", TypeUint16, AccessDiagnostic, bound(5), bound(110), "Echo parameter 3"},
		{0x2003, "echoPara4", TypeUint16, AccessDiagnostic, bound(5), bound(110), "Echo parameter 4"},
		{0x2005, "MechOffset", TypeFloat32, AccessSetting, bound(-7), bound(7), "Mechanical encoder offset"},
		{0x2006, "MechPos_init", TypeFloat32, AccessReadWrite, bound(-50), bound(50), "Initial mechanical position"},
		{0x2007, "limit_torque", TypeFloat32, AccessReadWrite, bound(0), bound(14), "Maximum torque limit (Nm)"},
		{0x200A, "CAN_ID", TypeUint8, AccessReadWrite, bound(0), bound(127), "Node CAN ID"},
		{0x200C, "CAN_TIMEOUT", TypeUint32, AccessReadWrite, bound(-2000), bound(2000000), "CAN timeout"},
		{0x3004, "encoderRaw", TypeInt16, AccessRead, nil, nil, "Raw encoder value"},
		{0x3007, "vBus(mv)", TypeUint16, AccessRead, nil, nil, "Bus voltage (mV)"},
		{0x3027, "Ud", TypeFloat32, AccessRead, nil, nil, "Voltage Ud"},
	},
	Variant02: {
		{0x2000, "echoPara1", TypeUint16, AccessDiagnostic, bound(5), bound(107), "Echo parameter 1"},
		{0x2001, "echoPara2", TypeUint16, AccessDiagnostic, bound(5), bound(107), "Echo parameter 2"},
		{0x2002, "echoPara3", TypeUint16, AccessDiagnostic, bound(5), bound(107), "Echo parameter 3"},
		{0x2003, "echoPara4", TypeUint16, AccessDiagnostic, bound(5), bound(107), "Echo parameter 4"},
		{0x2005, "MechOffset", TypeFloat32, AccessSetting, bound(-10), bound(10), "Mechanical encoder offset"},
		{0x2006, "status4", TypeFloat32, AccessReadWrite, bound(-10), bound(10), "Status parameter 4"},
		{0x2007, "limit_torque", TypeFloat32, AccessReadWrite, bound(0), bound(30), "Maximum torque limit (Nm)"},
		{0x200A, "CAN_ID", TypeUint8, AccessSetting, bound(0), bound(127), "Node CAN ID"},
		{0x200C, "CAN_TIMEOUT", TypeUint32, AccessReadWrite, bound(-2000000), bound(2000000), "CAN timeout"},
		{0x3004, "encoderRaw", TypeInt16, AccessRead, nil, nil, "Raw encoder value"},
		{0x3007, "vBus(mv)", TypeUint16, AccessRead, nil, nil, "Bus voltage (mV)"},
		{0x3027, "Ud", TypeFloat32, AccessRead, nil, nil, "Voltage Ud"},
	},
	Variant03: {
		{0x2000, "echoPara1", TypeUint16, AccessDiagnostic, bound(5), bound(106), "Echo parameter 1"},
		{0x2001, "echoPara2", TypeUint16, AccessDiagnostic, bound(5), bound(106), "Echo parameter 2"},
		{0x2002, "echoPara3", TypeUint16, AccessDiagnostic, bound(5), bound(106), "Echo parameter 3"},
		{0x2003, "echoPara4", TypeUint16, AccessDiagnostic, bound(5), bound(106), "Echo parameter 4"},
		{0x2005, "MechOffset", TypeFloat32, AccessReadWrite, bound(-50), bound(50), "Mechanical encoder offset"},
		{0x2006, "chasu_offset", TypeFloat32, AccessReadWrite, bound(-50), bound(50), "Chassis offset"},
		{0x2007, "status1", TypeFloat32, AccessSetting, bound(-10), bound(10), "Status parameter 1"},
		{0x2009, "CAN_ID", TypeUint8, AccessReadWrite, bound(0), bound(127), "Node CAN ID"},
		{0x200A, "CAN_MASTER", TypeUint8, AccessReadWrite, bound(0), bound(300), "Master CAN ID"},
		{0x200B, "CAN_TIMEOUT", TypeUint32, AccessReadWrite, bound(-100000), bound(100000), "CAN timeout"},
		{0x2019, "limit_cur", TypeFloat32, AccessReadWrite, bound(0), bound(150), "Current limit"},
		{0x3004, "encoderRaw", TypeUint16, AccessRead, nil, nil, "Raw encoder value"},
		{0x3007, "encoder2raw", TypeUint16, AccessRead, nil, nil, "Raw encoder 2 value"},
		{0x3027, "as_angle", TypeFloat32, AccessRead, nil, nil, "AS angle"},
	},
	Variant04: {
		{0x2000, "echoPara1", TypeUint16, AccessDiagnostic, bound(5), bound(106), "Echo parameter 1"},
		{0x2001, "echoPara2", TypeUint16, AccessDiagnostic, bound(5), bound(106), "Echo parameter 2"},
		{0x2002, "echoPara3", TypeUint16, AccessDiagnostic, bound(5), bound(106), "Echo parameter 3"},
		{0x2003, "echoPara4", TypeUint16, AccessDiagnostic, bound(5), bound(106), "Echo parameter 4"},
		{0x2005, "MechOffset", TypeFloat32, AccessReadWrite, bound(-50), bound(50), "Mechanical encoder offset"},
		{0x2006, "chasu_offset", TypeFloat32, AccessReadWrite, bound(-50), bound(50), "Chassis offset"},
		{0x2007, "status1", TypeFloat32, AccessSetting, bound(-10), bound(10), "Status parameter 1"},
		{0x2009, "CAN_ID", TypeUint8, AccessReadWrite, bound(0), bound(127), "Node CAN ID"},
		{0x200A, "CAN_MASTER", TypeUint8, AccessReadWrite, bound(0), bound(300), "Master CAN ID"},
		{0x200B, "CAN_TIMEOUT", TypeUint32, AccessReadWrite, bound(-10000), bound(100000), "CAN timeout"},
		{0x2019, "limit_cur", TypeFloat32, AccessReadWrite, bound(0), bound(150), "Current limit"},
		{0x3004, "encoderRaw", TypeUint16, AccessRead, nil, nil, "Raw encoder value"},
		{0x3007, "encoder2raw", TypeUint16, AccessRead, nil, nil, "Raw encoder 2 value"},
		{0x3027, "as_angle", TypeFloat32, AccessRead, nil, nil, "AS angle"},
	},
}

// variantExtensions holds indexes present only on one variant.
var variantExtensions = map[Variant][]tableRow{
	Variant00: {
		{0x201A, "loc_ref_filt_gai", TypeFloat32, AccessReadWrite, bound(0), bound(100), "Position reference filter gain"},
		{0x201B, "limit_loc", TypeFloat32, AccessReadWrite, bound(0), bound(100), "Position limit"},
		{0x201C, "position_offset", TypeFloat32, AccessReadWrite, bound(0), bound(27), "Position offset"},
		{0x201D, "chasu_angle_offs", TypeFloat32, AccessReadWrite, bound(0), bound(27), "Chassis angle offset"},
		{0x201E, "spd_step_value", TypeFloat32, AccessReadWrite, bound(0), bound(150), "Speed step value"},
		{0x201F, "vel_max", TypeFloat32, AccessReadWrite, bound(0), bound(20), "Maximum velocity"},
		{0x2020, "acc_set", TypeFloat32, AccessReadWrite, bound(0), bound(1000), "Acceleration setting"},
		{0x2021, "zero_sta", TypeUint8, AccessReadWrite, bound(0), bound(100), "Zero status"},
		{0x2022, "protocol_1", TypeUint8, AccessReadWrite, bound(0), bound(20), "Protocol 1"},
		{0x2023, "damper", TypeUint8, AccessReadWrite, bound(0), bound(20), "Damper setting"},
		{0x2024, "add_offset", TypeFloat32, AccessReadWrite, bound(-7), bound(7), "Additional offset"},

		{0x3028, "dtc_u", TypeFloat32, AccessRead, nil, nil, "DTC U"},
		{0x3029, "dtc_v", TypeFloat32, AccessRead, nil, nil, "DTC V"},
		{0x302A, "dtc_w", TypeFloat32, AccessRead, nil, nil, "DTC W"},
		{0x302B, "v_bus", TypeFloat32, AccessRead, nil, nil, "Bus voltage"},
		{0x302C, "torque_fdb", TypeFloat32, AccessRead, nil, nil, "Torque feedback"},
		{0x302D, "rated_i", TypeFloat32, AccessRead, nil, nil, "Rated current"},
		{0x302E, "limit_i", TypeFloat32, AccessRead, nil, nil, "Current limit"},
		{0x302F, "spd_ref", TypeFloat32, AccessRead, nil, nil, "Speed reference"},
		{0x3030, "spd_reff", TypeFloat32, AccessRead, nil, nil, "Speed reference filtered"},
		{0x3031, "zero_fault", TypeUint8, AccessRead, nil, nil, "Zero fault"},
		{0x3032, "chasu_coder_raw", TypeInt16, AccessRead, nil, nil, "Chassis coder raw"},
		{0x3033, "chasu_angle", TypeFloat32, AccessRead, nil, nil, "Chassis angle"},
		{0x3034, "as_angle", TypeFloat32, AccessRead, nil, nil, "AS angle"},
		{0x3035, "vel_max", TypeFloat32, AccessRead, nil, nil, "Maximum velocity"},
		{0x3036, "judge", TypeUint8, AccessRead, nil, nil, "Judge parameter"},
		{0x3037, "fault1", TypeUint32, AccessRead, nil, nil, "Fault 1"},
		{0x3038, "fault2", TypeUint32, AccessRead, nil, nil, "Fault 2"},
		{0x3040, "low_position", TypeFloat32, AccessRead, nil, nil, "Low position"},
		{0x3041, "instep", TypeFloat32, AccessRead, nil, nil, "In step"},
		{0x3048, "H", TypeUint8, AccessRead, nil, nil, "Parameter H"},
	},
	Variant02: {
		{0x201A, "loc_ref_filt_gai", TypeFloat32, AccessReadWrite, bound(0), bound(100), "Position reference filter gain"},
		{0x201B, "limit_loc", TypeFloat32, AccessReadWrite, bound(0), bound(100), "Position limit"},
		{0x201C, "position_offset", TypeFloat32, AccessReadWrite, bound(0), bound(27), "Position offset"},
		{0x201D, "chasu_angle_offs", TypeFloat32, AccessReadWrite, bound(-100), bound(100), "Chassis angle offset"},
		{0x201E, "zero_sta", TypeUint8, AccessReadWrite, bound(0), bound(100), "Zero status"},
		{0x201F, "protocol_1", TypeUint8, AccessReadWrite, bound(0), bound(20), "Protocol 1"},
		{0x2020, "damper", TypeUint8, AccessReadWrite, bound(0), bound(20), "Damper setting"},
		{0x2021, "add_offset", TypeFloat32, AccessReadWrite, bound(-7), bound(7), "Additional offset"},

		{0x3028, "dtc_u", TypeFloat32, AccessRead, nil, nil, "DTC U"},
		{0x3029, "dtc_v", TypeFloat32, AccessRead, nil, nil, "DTC V"},
		{0x302A, "dtc_w", TypeFloat32, AccessRead, nil, nil, "DTC W"},
		{0x302B, "v_bus", TypeFloat32, AccessRead, nil, nil, "Bus voltage"},
		{0x302C, "torque_fdb", TypeFloat32, AccessRead, nil, nil, "Torque feedback"},
		{0x302D, "rated_i", TypeFloat32, AccessRead, nil, nil, "Rated current"},
		{0x302E, "limit_i", TypeFloat32, AccessRead, nil, nil, "Current limit"},
		{0x302F, "spd_ref", TypeFloat32, AccessRead, nil, nil, "Speed reference"},
		{0x3030, "motor_mech_angle", TypeFloat32, AccessRead, nil, nil, "Motor mechanical angle"},
		{0x3031, "position", TypeFloat32, AccessRead, nil, nil, "Position"},
		{0x3032, "chasu_angle_init", TypeFloat32, AccessRead, nil, nil, "Chassis angle init"},
		{0x3033, "chasu_angle_out", TypeFloat32, AccessRead, nil, nil, "Chassis angle output"},
		{0x3034, "motormechinit1", TypeFloat32, AccessRead, nil, nil, "Motor mech init 1"},
		{0x3035, "mech_angle_init2", TypeFloat32, AccessRead, nil, nil, "Mechanical angle init 2"},
		{0x3036, "mech_angle_rotat", TypeInt16, AccessRead, nil, nil, "Mechanical angle rotation"},
		{0x3037, "cmdlocref_1", TypeFloat32, AccessRead, nil, nil, "Command position reference 1"},
		{0x3038, "status_1", TypeUint8, AccessRead, nil, nil, "Status 1"},
		{0x3048, "can_status", TypeUint8, AccessRead, nil, nil, "CAN status"},
	},
	Variant03: {
		{0x200C, "status2", TypeInt16, AccessSetting, bound(-200), bound(1500), "Status parameter 2"},
		{0x200D, "status3", TypeUint32, AccessSetting, bound(1000), bound(1000000), "Status parameter 3"},
		{0x200E, "status4", TypeFloat32, AccessSetting, bound(1), bound(64), "Status parameter 4"},
		{0x200F, "status5", TypeFloat32, AccessSetting, bound(-20), bound(20), "Status parameter 5"},
		{0x2010, "status6", TypeUint8, AccessSetting, bound(0), bound(127), "Status parameter 6"},
		{0x2011, "cur_filt_gain", TypeFloat32, AccessReadWrite, bound(-1), bound(1), "Current filter gain"},
		{0x2012, "cur_kp", TypeFloat32, AccessReadWrite, bound(-200), bound(200), "Current Kp gain"},
		{0x2013, "cur_ki", TypeFloat32, AccessReadWrite, bound(-200), bound(200), "Current Ki gain"},
		{0x2014, "spd_kp", TypeFloat32, AccessReadWrite, bound(-200), bound(200), "Speed Kp gain"},
		{0x2015, "spd_ki", TypeFloat32, AccessReadWrite, bound(-200), bound(200), "Speed Ki gain"},
		{0x2016, "loc_kp", TypeFloat32, AccessReadWrite, bound(-200), bound(200), "Position Kp gain"},
		{0x2017, "spd_filt_gain", TypeFloat32, AccessReadWrite, bound(-1), bound(1), "Speed filter gain"},
		{0x201A, "limit_a", TypeFloat32, AccessReadWrite, bound(-1), bound(150), "Limit A"},
		{0x201B, "fault1", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 1 setting"},
		{0x201C, "fault2", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 2 setting"},
		{0x201D, "fault3", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 3 setting"},
		{0x201E, "fault4", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 4 setting"},
		{0x201F, "fault5", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 5 setting"},
		{0x2020, "fault6", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 6 setting"},
		{0x2021, "fault7", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 7 setting"},
		{0x2022, "baud", TypeUint8, AccessReadWrite, bound(-10), bound(10), "Baud rate setting"},
		{0x2023, "zero_sta", TypeUint8, AccessReadWrite, bound(0), bound(100), "Zero status"},
		{0x2024, "position_offset", TypeFloat32, AccessReadWrite, bound(0), bound(27), "Position offset"},
		{0x2025, "protocol_1", TypeUint8, AccessReadWrite, bound(0), bound(20), "Protocol 1"},
		{0x2026, "damper", TypeUint8, AccessReadWrite, bound(0), bound(20), "Damper setting"},
		{0x2027, "add_offset", TypeFloat32, AccessReadWrite, bound(-7), bound(7), "Additional offset"},

		{0x3028, "cs_angle", TypeFloat32, AccessRead, nil, nil, "CS angle"},
		{0x3029, "chasu_angle", TypeFloat32, AccessRead, nil, nil, "Chassis angle"},
		{0x302A, "v_bus", TypeFloat32, AccessRead, nil, nil, "Bus voltage"},
		{0x302C, "torque_fdb", TypeFloat32, AccessRead, nil, nil, "Torque feedback"},
		{0x302D, "rated_i", TypeFloat32, AccessRead, nil, nil, "Rated current"},
		{0x302E, "MechPos_init", TypeFloat32, AccessRead, nil, nil, "Initial mechanical position"},
		{0x302F, "instep", TypeFloat32, AccessRead, nil, nil, "In step"},
		{0x3030, "status", TypeUint8, AccessRead, nil, nil, "Status"},
		{0x3031, "cmdlocref", TypeFloat32, AccessRead, nil, nil, "Command position reference"},
		{0x3032, "vel_max", TypeFloat32, AccessRead, nil, nil, "Maximum velocity"},
		{0x3033, "fault1", TypeUint32, AccessRead, nil, nil, "Fault 1"},
		{0x3034, "fault2", TypeUint32, AccessRead, nil, nil, "Fault 2"},
		{0x3035, "fault3", TypeUint32, AccessRead, nil, nil, "Fault 3"},
		{0x3036, "fault4", TypeUint32, AccessRead, nil, nil, "Fault 4"},
		{0x3037, "fault5", TypeUint32, AccessRead, nil, nil, "Fault 5"},
		{0x3038, "fault6", TypeUint32, AccessRead, nil, nil, "Fault 6"},
		{0x3039, "fault7", TypeUint32, AccessRead, nil, nil, "Fault 7"},
		{0x303A, "fault8", TypeUint32, AccessRead, nil, nil, "Fault 8"},
		{0x3041, "can_status", TypeUint8, AccessRead, nil, nil, "CAN status"},
	},
	Variant04: {
		{0x200C, "status2", TypeInt16, AccessSetting, bound(-200), bound(1500), "Status parameter 2"},
		{0x200D, "status3", TypeUint32, AccessSetting, bound(1000), bound(1000000), "Status parameter 3"},
		{0x200E, "status4", TypeFloat32, AccessSetting, bound(1), bound(64), "Status parameter 4"},
		{0x200F, "status5", TypeFloat32, AccessSetting, bound(0), bound(20), "Status parameter 5"},
		{0x2010, "status6", TypeUint8, AccessSetting, bound(0), bound(1), "Status parameter 6"},
		{0x201A, "spd_step_value", TypeFloat32, AccessReadWrite, bound(0), bound(150), "Speed step value"},
		{0x201B, "vel_max", TypeFloat32, AccessReadWrite, bound(0), bound(20), "Maximum velocity"},
		{0x201C, "acc_set", TypeFloat32, AccessReadWrite, bound(0), bound(1000), "Acceleration setting"},
		{0x201D, "fault1", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 1 setting"},
		{0x201E, "fault2", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 2 setting"},
		{0x201F, "fault3", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 3 setting"},
		{0x2020, "fault4", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 4 setting"},
		{0x2021, "fault5", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 5 setting"},
		{0x2022, "fault6", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 6 setting"},
		{0x2023, "fault7", TypeUint32, AccessSetting, bound(0), bound(30000), "Fault 7 setting"},
		{0x2024, "baud", TypeUint8, AccessReadWrite, bound(0), bound(10), "Baud rate setting"},
		{0x2025, "zero_sta", TypeUint8, AccessReadWrite, bound(0), bound(100), "Zero status"},
		{0x2026, "position_offset", TypeFloat32, AccessReadWrite, bound(0), bound(27), "Position offset"},
		{0x2027, "protocol_1", TypeUint8, AccessReadWrite, bound(0), bound(20), "Protocol 1"},
		{0x2028, "damper", TypeUint8, AccessReadWrite, bound(0), bound(20), "Damper setting"},
		{0x2029, "add_offset", TypeFloat32, AccessReadWrite, bound(-7), bound(7), "Additional offset"},

		{0x3028, "cs_angle", TypeFloat32, AccessRead, nil, nil, "CS angle"},
		{0x3029, "chasu_angle", TypeFloat32, AccessRead, nil, nil, "Chassis angle"},
		{0x302A, "ibus", TypeFloat32, AccessRead, nil, nil, "Bus current"},
		{0x302B, "torque_fdb", TypeFloat32, AccessRead, nil, nil, "Torque feedback"},
		{0x302C, "rated_i", TypeFloat32, AccessRead, nil, nil, "Rated current"},
		{0x302D, "MechPos_init", TypeFloat32, AccessRead, nil, nil, "Initial mechanical position"},
		{0x302E, "vel_max", TypeFloat32, AccessRead, nil, nil, "Maximum velocity"},
		{0x302F, "loc_reff", TypeFloat32, AccessRead, nil, nil, "Position reference filtered"},
		{0x3030, "instep", TypeFloat32, AccessRead, nil, nil, "In step"},
		{0x3031, "fault1", TypeUint32, AccessRead, nil, nil, "Fault 1"},
		{0x3032, "fault2", TypeUint32, AccessRead, nil, nil, "Fault 2"},
		{0x3033, "fault3", TypeUint32, AccessRead, nil, nil, "Fault 3"},
		{0x3034, "fault4", TypeUint32, AccessRead, nil, nil, "Fault 4"},
		{0x3035, "fault5", TypeUint32, AccessRead, nil, nil, "Fault 5"},
		{0x3036, "fault6", TypeUint32, AccessRead, nil, nil, "Fault 6"},
		{0x3037, "fault7", TypeUint32, AccessRead, nil, nil, "Fault 7"},
		{0x3038, "fault8", TypeUint32, AccessRead, nil, nil, "Fault 8"},
	},
}
