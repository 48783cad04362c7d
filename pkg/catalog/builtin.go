package catalog

import "gcodegen/pkg/gcode"

// builtin lists the operations known without any configuration. Parameter
// order is the documented order for each command and must not be sorted.
var builtin = concat(motionOps, machineOps, toolOps, extraOps)

var motionOps = []Definition{
	{Name: "linear_move", Summary: "Linear move", Letter: gcode.G, Code: 0, Params: []ParamSpec{num("F"), num("X"), num("Y"), num("Z")}},
	{Name: "linear_move_and_extrude", Summary: "Linear move and extrude", Letter: gcode.G, Code: 1, Params: []ParamSpec{num("E"), num("F"), num("X"), num("Y"), num("Z")}},
	{Name: "arc_move_clockwise", Summary: "Arc move clockwise", Letter: gcode.G, Code: 2, Params: []ParamSpec{num("E"), num("F"), num("I"), num("J"), num("P"), num("R"), num("S"), num("X"), num("Y"), num("Z")}},
	{Name: "arc_move_counter_clockwise", Summary: "Arc move counter clockwise", Letter: gcode.G, Code: 3, Params: []ParamSpec{num("E"), num("F"), num("I"), num("J"), num("P"), num("R"), num("S"), num("X"), num("Y"), num("Z")}},
	{Name: "dwell", Summary: "Dwell", Letter: gcode.G, Code: 4, Params: []ParamSpec{num("P"), num("S")}},
	{Name: "bezier_cubic_spline", Summary: "Bezier cubic spline", Letter: gcode.G, Code: 5, Params: []ParamSpec{num("E"), num("F"), num("I"), num("J"), num("P"), num("Q"), num("S"), num("X"), num("Y")}},
	{Name: "direct_stepper_move", Summary: "Direct stepper move", Letter: gcode.G, Code: 6, Params: []ParamSpec{num("E"), num("I"), num("R"), num("S"), num("X"), num("Y"), num("Z")}},
	{Name: "retract", Summary: "Retract", Letter: gcode.G, Code: 10, Params: []ParamSpec{num("S")}},
	{Name: "recover", Summary: "Recover", Letter: gcode.G, Code: 11},
	{Name: "clean_the_nozzle", Summary: "Clean the nozzle", Letter: gcode.G, Code: 12, Params: []ParamSpec{integer("P"), num("R"), integer("S"), integer("T"), num("X"), num("Y"), num("Z")}},
	{Name: "cnc_workspace_plane_xy", Summary: "Cnc workspace plane xy", Letter: gcode.G, Code: 17},
	{Name: "cnc_workspace_plane_zx", Summary: "Cnc workspace plane zx", Letter: gcode.G, Code: 18},
	{Name: "cnc_workspace_plane_yz", Summary: "Cnc workspace plane yz", Letter: gcode.G, Code: 19},
	{Name: "inch_units", Summary: "Inch units", Letter: gcode.G, Code: 20},
	{Name: "millimeter_units", Summary: "Millimeter units", Letter: gcode.G, Code: 21},
	{Name: "mesh_validation_pattern", Summary: "Mesh validation pattern", Letter: gcode.G, Code: 26, Params: []ParamSpec{num("B"), boolean("C"), flag("D"), num("F"), num("H"), integer("I"), num("K"), num("L"), num("O"), num("P"), num("Q"), integer("R"), num("S"), num("U"), num("X"), num("Y")}},
	{Name: "park_toolhead", Summary: "Park toolhead", Letter: gcode.G, Code: 27, Params: []ParamSpec{integer("P")}},
	{Name: "auto_home", Summary: "Auto home", Letter: gcode.G, Code: 28, Params: []ParamSpec{flag("L"), flag("O"), flag("R"), flag("X"), flag("Y"), flag("Z")}},
	{Name: "bed_leveling", Summary: "Bed leveling", Letter: gcode.G, Code: 29},
	{Name: "bed_leveling_3_point", Summary: "Bed leveling 3 point", Letter: gcode.G, Code: 29, Params: []ParamSpec{boolean("A"), boolean("C"), boolean("D"), boolean("E"), boolean("J"), flag("O"), boolean("Q"), integer("V")}},
	{Name: "bed_leveling_linear", Summary: "Bed leveling linear", Letter: gcode.G, Code: 29, Params: []ParamSpec{boolean("A"), num("B"), boolean("C"), boolean("D"), num("F"), num("H"), boolean("J"), num("L"), flag("O"), integer("P"), boolean("Q"), num("R"), num("S"), boolean("T"), integer("V"), integer("X"), integer("Y")}},
	{Name: "bed_leveling_manual", Summary: "Bed leveling manual", Letter: gcode.G, Code: 29, Params: []ParamSpec{boolean("I"), boolean("J"), integer("S"), integer("X"), integer("Y"), num("Z")}},
	{Name: "bed_leveling_bilinear", Summary: "Bed leveling bilinear", Letter: gcode.G, Code: 29, Params: []ParamSpec{boolean("A"), num("B"), boolean("C"), boolean("D"), boolean("E"), num("F"), num("H"), boolean("J"), num("L"), flag("O"), boolean("Q"), num("R"), num("S"), integer("V"), boolean("W"), num("X"), num("Y"), num("Z")}},
	{Name: "single_z_probe", Summary: "Single z probe", Letter: gcode.G, Code: 30, Params: []ParamSpec{flag("C"), flag("E"), num("X"), num("Y")}},
	{Name: "dock_sled", Summary: "Dock sled", Letter: gcode.G, Code: 31},
	{Name: "undock_sled", Summary: "Undock sled", Letter: gcode.G, Code: 32},
	{Name: "delta_auto_calibration", Summary: "Delta auto calibration", Letter: gcode.G, Code: 33, Params: []ParamSpec{num("C"), boolean("E"), integer("F"), boolean("O"), integer("P"), num("R"), boolean("T"), integer("V")}},
	{Name: "z_steppers_auto_alignment", Summary: "Z steppers auto alignment", Letter: gcode.G, Code: 34, Params: []ParamSpec{flag("A"), flag("E"), flag("I"), flag("T")}},
	{Name: "mechanical_gantry_calibration", Summary: "Mechanical gantry calibration", Letter: gcode.G, Code: 34, Params: []ParamSpec{num("S"), num("Z")}},
	{Name: "tramming_assistant", Summary: "Tramming assistant", Letter: gcode.G, Code: 35, Params: []ParamSpec{integer("S")}},
	{Name: "probe_target", Summary: "Probe target", Letter: gcode.G, Code: 38, SubCodeArg: "sub", Params: []ParamSpec{num("F"), num("X"), num("Y"), num("Z")}},
	{Name: "move_to_mesh_coordinate", Summary: "Move to mesh coordinate", Letter: gcode.G, Code: 42, Params: []ParamSpec{num("F"), integer("I"), integer("J")}},
	{Name: "move_in_machine_coordinates", Summary: "Move in machine coordinates", Letter: gcode.G, Code: 53},
	{Name: "save_current_position", Summary: "Save current position", Letter: gcode.G, Code: 60},
	{Name: "return_to_saved_position", Summary: "Return to saved position", Letter: gcode.G, Code: 61, Params: []ParamSpec{flag("E"), num("F"), integer("S"), flag("X"), flag("Y"), flag("Z")}},
	{Name: "probe_temperature_calibration", Summary: "Probe temperature calibration", Letter: gcode.G, Code: 76, Params: []ParamSpec{flag("B"), boolean("P")}},
	{Name: "cancel_current_motion_mode", Summary: "Cancel current motion mode", Letter: gcode.G, Code: 80},
	{Name: "absolute_positioning", Summary: "Absolute positioning", Letter: gcode.G, Code: 90},
	{Name: "relative_positioning", Summary: "Relative positioning", Letter: gcode.G, Code: 91},
	{Name: "set_position", Summary: "Set position", Letter: gcode.G, Code: 92, Params: []ParamSpec{num("E"), num("X"), num("Y"), num("Z")}},
	{Name: "backlash_calibration", Summary: "Backlash calibration", Letter: gcode.G, Code: 92, Params: []ParamSpec{flag("B"), num("T"), num("U"), flag("V")}},
}

var machineOps = []Definition{
	{Name: "unconditional_stop", Summary: "Unconditional stop", Letter: gcode.M, Code: 0, Params: []ParamSpec{num("P"), num("S"), bare("message")}},
	{Name: "spindle_cw_or_laser_on", Summary: "Spindle cw or laser on", Letter: gcode.M, Code: 3, Params: []ParamSpec{integer("I"), num("O"), num("S")}},
	{Name: "spindle_ccw_or_laser_on", Summary: "Spindle ccw or laser on", Letter: gcode.M, Code: 4, Params: []ParamSpec{integer("I"), num("O"), num("S")}},
	{Name: "spindle_or_laser_off", Summary: "Spindle or laser off", Letter: gcode.M, Code: 5},
	{Name: "coolant_mist_on", Summary: "Coolant mist on", Letter: gcode.M, Code: 7},
	{Name: "coolant_spindle_flood_or_laser_air_on", Summary: "Coolant spindle flood or laser air on", Letter: gcode.M, Code: 8},
	{Name: "coolant_off", Summary: "Coolant off", Letter: gcode.M, Code: 9},
	{Name: "vacuum_blower_on", Summary: "Vacuum blower on", Letter: gcode.M, Code: 10},
	{Name: "vacuum_blower_off", Summary: "Vacuum blower off", Letter: gcode.M, Code: 11},
	{Name: "expected_printer_check", Summary: "Expected printer check", Letter: gcode.M, Code: 16, Params: []ParamSpec{bare("machine_name").required()}},
	{Name: "enable_steppers", Summary: "Enable steppers", Letter: gcode.M, Code: 17, Params: []ParamSpec{flag("E"), flag("X"), flag("Y"), flag("Z")}},
	{Name: "disable_steppers", Summary: "Disable steppers", Letter: gcode.M, Code: 18, Params: []ParamSpec{flag("E"), num("S"), flag("X"), flag("Y"), flag("Z")}},
	{Name: "list_sd_card", Summary: "List sd card", Letter: gcode.M, Code: 20, Params: []ParamSpec{flag("L")}},
	{Name: "init_sd_card", Summary: "Init sd card", Letter: gcode.M, Code: 21},
	{Name: "release_sd_card", Summary: "Release sd card", Letter: gcode.M, Code: 22},
	{Name: "select_sd_card", Summary: "Select sd card", Letter: gcode.M, Code: 23, Params: []ParamSpec{bare("filename").required()}},
	{Name: "start_or_resume_sd_print", Summary: "Start or resume sd print", Letter: gcode.M, Code: 24, Params: []ParamSpec{num("S"), num("T")}},
	{Name: "pause_sd_print", Summary: "Pause sd print", Letter: gcode.M, Code: 25},
	{Name: "set_sd_position_print", Summary: "Set sd position print", Letter: gcode.M, Code: 26, Params: []ParamSpec{num("S")}},
	{Name: "report_sd_print_status", Summary: "Report sd print status", Letter: gcode.M, Code: 27, Params: []ParamSpec{flag("C"), num("S")}},
	{Name: "start_sd_write", Summary: "Start sd write", Letter: gcode.M, Code: 28, Params: []ParamSpec{flag("B1"), bare("filename").required()}},
	{Name: "stop_sd_write", Summary: "Stop sd write", Letter: gcode.M, Code: 29},
	{Name: "delete_sd_file", Summary: "Delete sd file", Letter: gcode.M, Code: 30, Params: []ParamSpec{bare("filename").required()}},
	{Name: "print_time", Summary: "Print time", Letter: gcode.M, Code: 31},
	{Name: "select_and_start", Summary: "Select and start", Letter: gcode.M, Code: 32, Params: []ParamSpec{boolean("P"), integer("S"), bare("filename").required()}},
	{Name: "get_long_path", Summary: "Get long path", Letter: gcode.M, Code: 33, Params: []ParamSpec{bare("filename").required()}},
	{Name: "sd_card_sorting", Summary: "Sd card sorting", Letter: gcode.M, Code: 34, Params: []ParamSpec{integer("F"), boolean("S")}},
	{Name: "set_pin_state", Summary: "Set pin state", Letter: gcode.M, Code: 42, Params: []ParamSpec{boolean("I"), integer("P"), integer("S"), integer("T")}},
	{Name: "debug_pins", Summary: "Debug pins", Letter: gcode.M, Code: 42, Params: []ParamSpec{boolean("E"), flag("I"), integer("P"), flag("S"), flag("T"), flag("W")}},
	{Name: "toggle_pins", Summary: "Toggle pins", Letter: gcode.M, Code: 43, Params: []ParamSpec{boolean("I"), integer("L"), integer("R"), boolean("S"), integer("W")}},
	{Name: "probe_repeatability_test", Summary: "Probe repeatability test", Letter: gcode.M, Code: 48, Params: []ParamSpec{boolean("C"), integer("E"), integer("L"), integer("P"), integer("S"), integer("V"), num("X"), num("Y")}},
	{Name: "set_print_progress", Summary: "Set print progress", Letter: gcode.M, Code: 73, Params: []ParamSpec{num("P"), num("R")}},
	{Name: "start_print_job_timer", Summary: "Start print job timer", Letter: gcode.M, Code: 75, Params: []ParamSpec{bare("message")}},
	{Name: "pause_print_job", Summary: "Pause print job", Letter: gcode.M, Code: 76},
	{Name: "stop_print_job_timer", Summary: "Stop print job timer", Letter: gcode.M, Code: 77},
	{Name: "print_job_stats", Summary: "Print job stats", Letter: gcode.M, Code: 78},
	{Name: "power_on", Summary: "Power on", Letter: gcode.M, Code: 80, Params: []ParamSpec{flag("S")}},
	{Name: "power_off", Summary: "Power off", Letter: gcode.M, Code: 81},
	{Name: "absolute_extrusion_mode", Summary: "Absolute extrusion mode", Letter: gcode.M, Code: 82},
	{Name: "relative_extrusion_mode", Summary: "Relative extrusion mode", Letter: gcode.M, Code: 83},
	{Name: "inactivity_shutdown", Summary: "Inactivity shutdown", Letter: gcode.M, Code: 85, Params: []ParamSpec{integer("S")}},
	{Name: "set_axis_steps_per_unit", Summary: "Set axis steps per unit", Letter: gcode.M, Code: 85, Params: []ParamSpec{integer("E"), integer("T"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "free_memory", Summary: "Free memory", Letter: gcode.M, Code: 85, Params: []ParamSpec{integer("C"), flag("D"), flag("F"), flag("I")}},
	{Name: "set_hotend_temperature", Summary: "Set hotend temperature", Letter: gcode.M, Code: 104, Params: []ParamSpec{num("B"), flag("F"), integer("I"), num("S"), integer("T")}},
	{Name: "report_temperatures", Summary: "Report temperatures", Letter: gcode.M, Code: 105, Params: []ParamSpec{flag("R"), integer("I")}},
	{Name: "set_fan_speed", Summary: "Set fan speed", Letter: gcode.M, Code: 106, Params: []ParamSpec{integer("I"), integer("P"), integer("S"), integer("T")}},
	{Name: "fan_off", Summary: "Fan off", Letter: gcode.M, Code: 107},
	{Name: "break_and_continue", Summary: "Break and continue", Letter: gcode.M, Code: 108},
	{Name: "wait_for_hotend_temperature", Summary: "Wait for hotend temperature", Letter: gcode.M, Code: 109, Params: []ParamSpec{integer("B"), boolean("F"), integer("I"), integer("R"), num("S"), integer("T")}},
	{Name: "set_line_number", Summary: "Set line number", Letter: gcode.M, Code: 110, Params: []ParamSpec{integer("N").required()}},
	{Name: "debug_level", Summary: "Debug level", Letter: gcode.M, Code: 111, Params: []ParamSpec{integer("S")}},
	{Name: "emergency_stop", Summary: "Emergency stop", Letter: gcode.M, Code: 112},
	{Name: "host_keep_alive", Summary: "Host keep alive", Letter: gcode.M, Code: 113, Params: []ParamSpec{integer("S")}},
	{Name: "get_current_position", Summary: "Get current position", Letter: gcode.M, Code: 114, Params: []ParamSpec{flag("D"), flag("E"), flag("R")}},
	{Name: "firmware_info", Summary: "Firmware info", Letter: gcode.M, Code: 115},
	{Name: "set_lcd_message", Summary: "Set lcd message", Letter: gcode.M, Code: 117, Params: []ParamSpec{bare("message")}},
	{Name: "serial_print", Summary: "Serial print", Letter: gcode.M, Code: 118, Params: []ParamSpec{flag("A1"), flag("E1"), integer("Pn"), bare("message")}},
	{Name: "endstop_states", Summary: "Endstop states", Letter: gcode.M, Code: 119},
	{Name: "enable_endstops", Summary: "Enable endstops", Letter: gcode.M, Code: 120},
	{Name: "disable_endstops", Summary: "Disable endstops", Letter: gcode.M, Code: 121},
	{Name: "tmc_debugging", Summary: "Tmc debugging", Letter: gcode.M, Code: 122, Params: []ParamSpec{flag("E"), flag("I"), integer("P"), flag("S"), flag("V"), flag("X"), flag("Y"), flag("Z")}},
	{Name: "fan_tachometers", Summary: "Fan tachometers", Letter: gcode.M, Code: 123},
	{Name: "park_head", Summary: "Park head", Letter: gcode.M, Code: 125, Params: []ParamSpec{num("L"), boolean("P"), num("X"), num("Y"), num("Z")}},
	{Name: "baricuda1_open", Summary: "Baricuda1 open", Letter: gcode.M, Code: 126, Params: []ParamSpec{num("S")}},
	{Name: "baricuda1_close", Summary: "Baricuda1 close", Letter: gcode.M, Code: 127},
	{Name: "baricuda2_open", Summary: "Baricuda2 open", Letter: gcode.M, Code: 128, Params: []ParamSpec{num("S")}},
	{Name: "baricuda2_close", Summary: "Baricuda2 close", Letter: gcode.M, Code: 129},
	{Name: "set_bed_temperature", Summary: "Set bed temperature", Letter: gcode.M, Code: 140, Params: []ParamSpec{integer("I"), num("S")}},
	{Name: "set_chamber_temperature", Summary: "Set chamber temperature", Letter: gcode.M, Code: 141, Params: []ParamSpec{num("S")}},
	{Name: "set_laser_cooler_temperature", Summary: "Set laser cooler temperature", Letter: gcode.M, Code: 143, Params: []ParamSpec{num("S")}},
	{Name: "set_material_preset", Summary: "Set material preset", Letter: gcode.M, Code: 145, Params: []ParamSpec{num("B"), num("F"), num("H"), integer("S")}},
	{Name: "set_temperature_units", Summary: "Set temperature units", Letter: gcode.M, Code: 149, Params: []ParamSpec{flag("C"), flag("F"), flag("K")}},
	{Name: "set_rgbw_color", Summary: "Set rgbw color", Letter: gcode.M, Code: 150, Params: []ParamSpec{integer("B"), integer("I"), integer("P"), integer("R"), integer("S"), integer("U"), integer("W")}},
	{Name: "position_auto_report", Summary: "Position auto report", Letter: gcode.M, Code: 154, Params: []ParamSpec{num("S")}},
	{Name: "temperature_auto_report", Summary: "Temperature auto report", Letter: gcode.M, Code: 155, Params: []ParamSpec{num("S")}},
	{Name: "set_mix_factor", Summary: "Set mix factor", Letter: gcode.M, Code: 163, Params: []ParamSpec{num("P"), integer("S")}},
	{Name: "save_mix", Summary: "Save mix", Letter: gcode.M, Code: 164, Params: []ParamSpec{integer("S")}},
	{Name: "set_mix", Summary: "Set mix", Letter: gcode.M, Code: 165, Params: []ParamSpec{num("A"), num("B"), num("C"), num("D"), num("H"), integer("I")}},
	{Name: "gradient_mix", Summary: "Gradient mix", Letter: gcode.M, Code: 166, Params: []ParamSpec{num("A"), integer("I"), integer("J"), boolean("S"), integer("T"), num("Z")}},
	{Name: "wait_for_bed_temperature", Summary: "Wait for bed temperature", Letter: gcode.M, Code: 190, Params: []ParamSpec{integer("I"), num("R"), num("S")}},
	{Name: "wait_for_chamber_temperature", Summary: "Wait for chamber temperature", Letter: gcode.M, Code: 191, Params: []ParamSpec{num("R"), num("S")}},
	{Name: "wait_for_probe_temperature", Summary: "Wait for probe temperature", Letter: gcode.M, Code: 192, Params: []ParamSpec{num("R"), num("S")}},
	{Name: "wait_for_laser_cooler_temperature", Summary: "Wait for laser cooler temperature", Letter: gcode.M, Code: 193, Params: []ParamSpec{num("S")}},
	{Name: "set_filament_diameter", Summary: "Set filament diameter", Letter: gcode.M, Code: 200, Params: []ParamSpec{num("D"), num("L"), boolean("S"), integer("T")}},
	{Name: "print_move_limits", Summary: "Print move limits", Letter: gcode.M, Code: 201, Params: []ParamSpec{num("E"), num("F"), num("S"), integer("T"), num("X"), num("Y"), num("Z")}},
	{Name: "set_max_feed_rate", Summary: "Set max feed rate", Letter: gcode.M, Code: 203, Params: []ParamSpec{num("E"), integer("T"), num("X"), num("Y"), num("Z")}},
	{Name: "set_starting_acceleration", Summary: "Set starting acceleration", Letter: gcode.M, Code: 204, Params: []ParamSpec{num("P"), num("R"), num("S"), num("T")}},
	{Name: "set_advanced_settings", Summary: "Set advanced settings", Letter: gcode.M, Code: 205, Params: []ParamSpec{num("B"), num("E"), num("J"), num("S"), num("T"), num("X"), num("Y"), num("Z")}},
	{Name: "set_home_offsets", Summary: "Set home offsets", Letter: gcode.M, Code: 206, Params: []ParamSpec{num("P"), num("T"), num("X"), num("Y"), num("Z")}},
	{Name: "set_firmware_retraction", Summary: "Set firmware retraction", Letter: gcode.M, Code: 207, Params: []ParamSpec{num("F"), num("S"), num("W"), num("Z")}},
	{Name: "set_firmware_recover", Summary: "Set firmware recover", Letter: gcode.M, Code: 208, Params: []ParamSpec{num("F"), num("R"), num("S"), num("W")}},
	{Name: "set_auto_retract", Summary: "Set auto retract", Letter: gcode.M, Code: 209, Params: []ParamSpec{boolean("S")}},
	{Name: "set_software_endstops", Summary: "Set software endstops", Letter: gcode.M, Code: 211, Params: []ParamSpec{boolean("S")}},
	{Name: "filament_swap_parameters", Summary: "Filament swap parameters", Letter: gcode.M, Code: 217, Params: []ParamSpec{num("A"), num("B"), num("E"), num("F"), num("G"), num("L"), num("P"), flag("Q"), num("R"), num("S"), num("U"), num("V"), num("W"), num("X"), num("Y"), num("Z")}},
	{Name: "set_hotend_offset", Summary: "Set hotend offset", Letter: gcode.M, Code: 218, Params: []ParamSpec{integer("T"), num("X"), num("Y"), num("Z")}},
	{Name: "set_feedrate_percentage", Summary: "Set feedrate percentage", Letter: gcode.M, Code: 220, Params: []ParamSpec{boolean("B"), boolean("R"), num("S")}},
	{Name: "set_flow_percentage", Summary: "Set flow percentage", Letter: gcode.M, Code: 221, Params: []ParamSpec{num("S"), integer("T")}},
	{Name: "wait_for_pin_state", Summary: "Wait for pin state", Letter: gcode.M, Code: 226, Params: []ParamSpec{integer("P"), integer("S")}},
	{Name: "trigger_camera", Summary: "Trigger camera", Letter: gcode.M, Code: 240, Params: []ParamSpec{num("A"), num("B"), num("D"), num("F"), num("I"), num("J"), num("P"), num("R"), num("S"), num("X"), num("Y"), num("Z")}},
	{Name: "lcd_contrast", Summary: "Lcd contrast", Letter: gcode.M, Code: 250, Params: []ParamSpec{num("C")}},
	{Name: "lcd_brightness", Summary: "Lcd brightness", Letter: gcode.M, Code: 256, Params: []ParamSpec{num("B")}},
	{Name: "i2c_send", Summary: "I2c send", Letter: gcode.M, Code: 260, Params: []ParamSpec{integer("A"), integer("B"), boolean("R"), boolean("S")}},
	{Name: "i2c_request", Summary: "I2c request", Letter: gcode.M, Code: 261, Params: []ParamSpec{integer("A"), integer("B"), integer("S")}},
	{Name: "servo_position", Summary: "Servo position", Letter: gcode.M, Code: 280, Params: []ParamSpec{integer("P"), integer("S")}},
	{Name: "edit_servo_angles", Summary: "Edit servo angles", Letter: gcode.M, Code: 281, Params: []ParamSpec{num("L"), integer("P"), num("U")}},
	{Name: "detach_servo", Summary: "Detach servo", Letter: gcode.M, Code: 281, Params: []ParamSpec{integer("P")}},
	{Name: "baby_step", Summary: "Baby step", Letter: gcode.M, Code: 290, Params: []ParamSpec{boolean("P"), num("S"), num("X"), num("Y"), num("Z")}},
	{Name: "play_tone", Summary: "Play tone", Letter: gcode.M, Code: 300, Params: []ParamSpec{num("P"), num("S")}},
	{Name: "set_hotend_pid", Summary: "Set hotend pid", Letter: gcode.M, Code: 301, Params: []ParamSpec{num("C"), num("D"), num("E"), num("F"), integer("I"), num("L"), num("P")}},
	{Name: "cold_extrude", Summary: "Cold extrude", Letter: gcode.M, Code: 302, Params: []ParamSpec{boolean("P"), num("S")}},
	{Name: "pid_autotune", Summary: "Pid autotune", Letter: gcode.M, Code: 303, Params: []ParamSpec{integer("C"), integer("D"), integer("E"), num("S"), boolean("U")}},
	{Name: "set_bed_pid", Summary: "Set bed pid", Letter: gcode.M, Code: 304, Params: []ParamSpec{num("D"), integer("I"), num("P")}},
	{Name: "user_thermistor_parameters", Summary: "User thermistor parameters", Letter: gcode.M, Code: 305, Params: []ParamSpec{num("B"), num("C"), integer("P"), num("R"), num("T")}},
	{Name: "model_predictive_temperature_control", Summary: "Model predictive temperature control", Letter: gcode.M, Code: 306, Params: []ParamSpec{num("A"), num("C"), integer("E"), num("F"), num("H"), num("P"), num("R"), flag("T")}},
	{Name: "set_micro_stepping", Summary: "Set micro stepping", Letter: gcode.M, Code: 350, Params: []ParamSpec{integer("B"), integer("E"), integer("S"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "set_microstep_pins", Summary: "Set microstep pins", Letter: gcode.M, Code: 351, Params: []ParamSpec{integer("B"), integer("E"), integer("S"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "case_light_control", Summary: "Case light control", Letter: gcode.M, Code: 355, Params: []ParamSpec{integer("P"), boolean("S")}},
	{Name: "scara_theta_a", Summary: "Scara theta a", Letter: gcode.M, Code: 360},
	{Name: "scara_theta_b", Summary: "Scara theta b", Letter: gcode.M, Code: 361},
	{Name: "scara_psi_a", Summary: "Scara psi a", Letter: gcode.M, Code: 362},
	{Name: "scara_psi_b", Summary: "Scara psi b", Letter: gcode.M, Code: 363},
	{Name: "scara_psi_c", Summary: "Scara psi c", Letter: gcode.M, Code: 364},
	{Name: "activate_solenoid", Summary: "Activate solenoid", Letter: gcode.M, Code: 380, Params: []ParamSpec{integer("S")}},
	{Name: "deactivate_solenoid", Summary: "Deactivate solenoid", Letter: gcode.M, Code: 381, Params: []ParamSpec{integer("S")}},
	{Name: "finish_moves", Summary: "Finish moves", Letter: gcode.M, Code: 400},
	{Name: "stow_probe", Summary: "Stow probe", Letter: gcode.M, Code: 402},
	{Name: "mmu2_filament_type", Summary: "Mmu2 filament type", Letter: gcode.M, Code: 403, Params: []ParamSpec{integer("E"), integer("F")}},
	{Name: "set_nominal_filament_width", Summary: "Set nominal filament width", Letter: gcode.M, Code: 404, Params: []ParamSpec{num("W")}},
	{Name: "set_filament_width_sensor_on", Summary: "Set filament width sensor on", Letter: gcode.M, Code: 405, Params: []ParamSpec{num("D")}},
	{Name: "set_filament_width_sensor_off", Summary: "Set filament width sensor off", Letter: gcode.M, Code: 406},
	{Name: "filament_width", Summary: "Filament width", Letter: gcode.M, Code: 407},
	{Name: "quickstop", Summary: "Quickstop", Letter: gcode.M, Code: 410},
	{Name: "filament_runout", Summary: "Filament runout", Letter: gcode.M, Code: 412, Params: []ParamSpec{num("D"), boolean("H"), boolean("R"), boolean("S")}},
	{Name: "power_loss_recovery", Summary: "Power loss recovery", Letter: gcode.M, Code: 413, Params: []ParamSpec{boolean("S")}},
	{Name: "bed_levelling_state", Summary: "Bed levelling state", Letter: gcode.M, Code: 420, Params: []ParamSpec{boolean("C"), integer("L"), boolean("S"), integer("T"), boolean("V"), num("Z")}},
	{Name: "set_mesh_value", Summary: "Set mesh value", Letter: gcode.M, Code: 421, Params: []ParamSpec{boolean("C"), integer("I"), integer("J"), boolean("N"), num("Q"), num("X"), num("Y"), num("Z")}},
	{Name: "x_twist_compensation", Summary: "X twist compensation", Letter: gcode.M, Code: 423, Params: []ParamSpec{num("A"), num("I"), flag("R"), integer("X"), integer("Z")}},
	{Name: "backlash_compensation", Summary: "Backlash compensation", Letter: gcode.M, Code: 425, Params: []ParamSpec{num("F"), num("S"), num("X"), num("Y"), num("Z"), flag("Z").as("z2")}},
	{Name: "home_offsets_here", Summary: "Home offsets here", Letter: gcode.M, Code: 428},
	{Name: "power_monitor", Summary: "Power monitor", Letter: gcode.M, Code: 430, Params: []ParamSpec{boolean("I"), boolean("V"), boolean("W")}},
	{Name: "cancel_objects", Summary: "Cancel objects", Letter: gcode.M, Code: 486, Params: []ParamSpec{boolean("C"), integer("P"), integer("S"), integer("T"), integer("U")}},
	{Name: "save_settings", Summary: "Save settings", Letter: gcode.M, Code: 500},
	{Name: "restore_settings", Summary: "Restore settings", Letter: gcode.M, Code: 501},
	{Name: "factory_reset", Summary: "Factory reset", Letter: gcode.M, Code: 502},
	{Name: "report_settings", Summary: "Report settings", Letter: gcode.M, Code: 502, Params: []ParamSpec{boolean("C"), boolean("S")}},
	{Name: "validate_eeprom_contents", Summary: "Validate eeprom contents", Letter: gcode.M, Code: 504},
	{Name: "lock_machine", Summary: "Lock machine", Letter: gcode.M, Code: 510},
	{Name: "unlock_machine", Summary: "Unlock machine", Letter: gcode.M, Code: 511, Params: []ParamSpec{text("P").required()}},
	{Name: "set_passcode", Summary: "Set passcode", Letter: gcode.M, Code: 512, Params: []ParamSpec{text("P").required(), text("S")}},
	{Name: "abort_sd_print", Summary: "Abort sd print", Letter: gcode.M, Code: 524},
	{Name: "endstops_abort_sd", Summary: "Endstops abort sd", Letter: gcode.M, Code: 540, Params: []ParamSpec{boolean("S").required()}},
	{Name: "set_tmc_stepping_mode", Summary: "Set tmc stepping mode", Letter: gcode.M, Code: 569, Params: []ParamSpec{flag("E"), integer("I"), integer("T"), boolean("X"), boolean("Y"), boolean("Z")}},
	{Name: "serial_baud_rate", Summary: "Serial baud rate", Letter: gcode.M, Code: 569, Params: []ParamSpec{integer("B"), integer("P")}},
	{Name: "filament_change", Summary: "Filament change", Letter: gcode.M, Code: 600, Params: []ParamSpec{boolean("B"), num("E"), num("L"), boolean("R"), integer("T"), num("U"), num("X"), num("Y"), num("Z")}},
	{Name: "configure_filament_change", Summary: "Configure filament change", Letter: gcode.M, Code: 603, Params: []ParamSpec{num("L"), integer("T"), num("U")}},
	{Name: "multi_nozzle_mode", Summary: "Multi nozzle mode", Letter: gcode.M, Code: 605, Params: []ParamSpec{num("R"), integer("S"), num("X")}},
	{Name: "delta_configuration", Summary: "Delta configuration", Letter: gcode.M, Code: 665, Params: []ParamSpec{num("A"), num("B"), num("C"), num("H"), num("L"), num("R"), num("S"), num("X"), num("Y"), num("Z")}},
	{Name: "scara_configuration", Summary: "Scara configuration", Letter: gcode.M, Code: 665, Params: []ParamSpec{num("A"), num("B"), num("P"), num("S"), num("T"), num("X"), num("Y")}},
	{Name: "set_delta_endstop_adjustments", Summary: "Set delta endstop adjustments", Letter: gcode.M, Code: 666, Params: []ParamSpec{num("X"), num("Y"), num("Z")}},
	{Name: "set_dual_endstop_offsets", Summary: "Set dual endstop offsets", Letter: gcode.M, Code: 666, Params: []ParamSpec{num("X"), num("Y"), num("Z")}},
	{Name: "duet_smart_effector_sensitivity", Summary: "Duet smart effector sensitivity", Letter: gcode.M, Code: 672, Params: []ParamSpec{boolean("R"), num("S")}},
	{Name: "load_filament", Summary: "Load filament", Letter: gcode.M, Code: 701, Params: []ParamSpec{num("L"), integer("T"), num("Z")}},
	{Name: "unload_filament", Summary: "Unload filament", Letter: gcode.M, Code: 702, Params: []ParamSpec{integer("T"), num("U"), num("Z")}},
	{Name: "controller_fan_settings", Summary: "Controller fan settings", Letter: gcode.M, Code: 710, Params: []ParamSpec{boolean("A"), num("D"), num("I"), boolean("R"), num("S")}},
	{Name: "repeat_marker", Summary: "Repeat marker", Letter: gcode.M, Code: 810, Params: []ParamSpec{integer("L")}},
	{Name: "gcode_macro_0", Summary: "Gcode macro 0", Letter: gcode.M, Code: 810, Params: []ParamSpec{bare("commands")}},
	{Name: "gcode_macro_1", Summary: "Gcode macro 1", Letter: gcode.M, Code: 811, Params: []ParamSpec{bare("commands")}},
	{Name: "gcode_macro_2", Summary: "Gcode macro 2", Letter: gcode.M, Code: 812, Params: []ParamSpec{bare("commands")}},
	{Name: "gcode_macro_3", Summary: "Gcode macro 3", Letter: gcode.M, Code: 813, Params: []ParamSpec{bare("commands")}},
	{Name: "gcode_macro_4", Summary: "Gcode macro 4", Letter: gcode.M, Code: 814, Params: []ParamSpec{bare("commands")}},
	{Name: "gcode_macro_5", Summary: "Gcode macro 5", Letter: gcode.M, Code: 815, Params: []ParamSpec{bare("commands")}},
	{Name: "gcode_macro_6", Summary: "Gcode macro 6", Letter: gcode.M, Code: 816, Params: []ParamSpec{bare("commands")}},
	{Name: "gcode_macro_7", Summary: "Gcode macro 7", Letter: gcode.M, Code: 817, Params: []ParamSpec{bare("commands")}},
	{Name: "gcode_macro_8", Summary: "Gcode macro 8", Letter: gcode.M, Code: 818, Params: []ParamSpec{bare("commands")}},
	{Name: "gcode_macro_9", Summary: "Gcode macro 9", Letter: gcode.M, Code: 819, Params: []ParamSpec{bare("commands")}},
	{Name: "xyz_probe_offset", Summary: "Xyz probe offset", Letter: gcode.M, Code: 851, Params: []ParamSpec{num("X"), num("Y"), num("Z")}},
	{Name: "bed_skew_compensation", Summary: "Bed skew compensation", Letter: gcode.M, Code: 851, Params: []ParamSpec{num("I"), num("J"), num("K"), num("S")}},
	{Name: "i2c_position_encoders_report_position", Summary: "I2c position encoders report position", Letter: gcode.M, Code: 860, Params: []ParamSpec{integer("E"), integer("I"), boolean("O"), integer("P"), boolean("R"), integer("S"), num("T"), boolean("U"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "i2c_position_encoders_report_status", Summary: "I2c position encoders report status", Letter: gcode.M, Code: 861, Params: []ParamSpec{integer("E"), integer("I"), boolean("O"), integer("P"), boolean("R"), integer("S"), num("T"), boolean("U"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "i2c_position_encoders_axis_continuity", Summary: "I2c position encoders axis continuity", Letter: gcode.M, Code: 862, Params: []ParamSpec{integer("E"), integer("I"), boolean("O"), integer("P"), boolean("R"), integer("S"), num("T"), boolean("U"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "i2c_position_encoders_steps_calibration", Summary: "I2c position encoders steps calibration", Letter: gcode.M, Code: 863, Params: []ParamSpec{integer("E"), integer("I"), boolean("O"), integer("P"), boolean("R"), integer("S"), num("T"), boolean("U"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "i2c_position_encoders_change_position", Summary: "I2c position encoders change position", Letter: gcode.M, Code: 864, Params: []ParamSpec{integer("E"), integer("I"), boolean("O"), integer("P"), boolean("R"), integer("S"), num("T"), boolean("U"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "i2c_position_encoders_check_position", Summary: "I2c position encoders check position", Letter: gcode.M, Code: 865, Params: []ParamSpec{integer("E"), integer("I"), boolean("O"), integer("P"), boolean("R"), integer("S"), num("T"), boolean("U"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "i2c_position_encoders_error_count", Summary: "I2c position encoders error count", Letter: gcode.M, Code: 866, Params: []ParamSpec{integer("E"), integer("I"), boolean("O"), integer("P"), boolean("R"), integer("S"), num("T"), boolean("U"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "i2c_position_encoders_enable_disable", Summary: "I2c position encoders enable disable", Letter: gcode.M, Code: 867, Params: []ParamSpec{integer("E"), integer("I"), boolean("O"), integer("P"), boolean("R"), integer("S"), num("T"), boolean("U"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "i2c_position_encoders_report_error_correction", Summary: "I2c position encoders report error correction", Letter: gcode.M, Code: 868, Params: []ParamSpec{integer("E"), integer("I"), boolean("O"), integer("P"), boolean("R"), integer("S"), num("T"), boolean("U"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "i2c_position_encoders_error", Summary: "I2c position encoders error", Letter: gcode.M, Code: 869, Params: []ParamSpec{integer("E"), integer("I"), boolean("O"), integer("P"), boolean("R"), integer("S"), num("T"), boolean("U"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "probe_temperature_config", Summary: "Probe temperature config", Letter: gcode.M, Code: 871, Params: []ParamSpec{boolean("B"), boolean("E"), boolean("I"), boolean("P"), boolean("R"), num("V")}},
	{Name: "handle_prompt_response", Summary: "Handle prompt response", Letter: gcode.M, Code: 876, Params: []ParamSpec{text("S")}},
	{Name: "linear_advance_factor", Summary: "Linear advance factor", Letter: gcode.M, Code: 900, Params: []ParamSpec{num("K"), num("L"), integer("S"), integer("T")}},
	{Name: "stepper_motor_current", Summary: "Stepper motor current", Letter: gcode.M, Code: 906, Params: []ParamSpec{num("E"), integer("I"), integer("T"), num("X"), num("Y"), num("Z")}},
	{Name: "set_motor_current", Summary: "Set motor current", Letter: gcode.M, Code: 907, Params: []ParamSpec{num("B"), num("C"), num("D"), num("E"), num("S"), num("X"), num("Y"), num("Z")}},
	{Name: "set_trimpot_pins", Summary: "Set trimpot pins", Letter: gcode.M, Code: 908, Params: []ParamSpec{integer("E"), num("S")}},
	{Name: "dac_print_values", Summary: "Dac print values", Letter: gcode.M, Code: 909},
	{Name: "commit_dac_to_eeprom", Summary: "Commit dac to eeprom", Letter: gcode.M, Code: 910},
	{Name: "tmc_ot_pre_warn_condition", Summary: "Tmc ot pre warn condition", Letter: gcode.M, Code: 911},
	{Name: "clear_tmc_ot_pre_warn", Summary: "Clear tmc ot pre warn", Letter: gcode.M, Code: 912, Params: []ParamSpec{integer("E"), integer("I"), flag("X"), flag("Y"), flag("Z")}},
	{Name: "set_hybrid_threshold_speed", Summary: "Set hybrid threshold speed", Letter: gcode.M, Code: 913, Params: []ParamSpec{flag("E"), integer("I"), integer("T"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "tmc_bump_sensitivity", Summary: "Tmc bump sensitivity", Letter: gcode.M, Code: 914, Params: []ParamSpec{integer("I"), integer("X"), integer("Y"), integer("Z")}},
	{Name: "tmc_z_axis_calibration", Summary: "Tmc z axis calibration", Letter: gcode.M, Code: 915, Params: []ParamSpec{num("S"), num("Z")}},
	{Name: "l6474_thermal_warning_test", Summary: "L6474 thermal warning test", Letter: gcode.M, Code: 916, Params: []ParamSpec{num("D"), num("E"), num("F"), integer("J"), num("K"), num("T"), num("X"), num("Y"), num("Z")}},
	{Name: "l6474_overcurrent_warning_test", Summary: "L6474 overcurrent warning test", Letter: gcode.M, Code: 917, Params: []ParamSpec{num("E"), num("F"), num("I"), integer("J"), num("K"), num("T"), num("X"), num("Y"), num("Z")}},
	{Name: "l6474_speed_warning_test", Summary: "L6474 speed warning test", Letter: gcode.M, Code: 918, Params: []ParamSpec{num("E"), num("I"), integer("J"), num("K"), num("M"), num("T"), num("X"), num("Y"), num("Z")}},
	{Name: "tmc_chopper_timing", Summary: "Tmc chopper timing", Letter: gcode.M, Code: 919, Params: []ParamSpec{flag("A"), flag("B"), flag("C"), integer("I"), integer("O"), integer("P"), integer("S"), integer("T"), flag("U"), flag("V"), flag("W"), flag("X"), flag("Y"), flag("Z")}},
	{Name: "start_sd_logging", Summary: "Start sd logging", Letter: gcode.M, Code: 928, Params: []ParamSpec{bare("filename").required()}},
	{Name: "magnetic_parking_extruder", Summary: "Magnetic parking extruder", Letter: gcode.M, Code: 951, Params: []ParamSpec{num("C"), num("D"), num("H"), num("I"), num("J"), num("L"), num("R")}},
	{Name: "backup_spi_flash_to_sd", Summary: "Backup spi flash to sd", Letter: gcode.M, Code: 993},
	{Name: "load_backup_from_sd_to_spi_flash", Summary: "Load backup from sd to spi flash", Letter: gcode.M, Code: 994},
	{Name: "touch_screen_calibration", Summary: "Touch screen calibration", Letter: gcode.M, Code: 995},
	{Name: "firmware_upgrade", Summary: "Firmware upgrade", Letter: gcode.M, Code: 997},
	{Name: "stop_restart", Summary: "Stop restart", Letter: gcode.M, Code: 999, Params: []ParamSpec{boolean("S")}},
	{Name: "max7219_control", Summary: "Max7219 control", Letter: gcode.M, Code: 7219, Params: []ParamSpec{integer("C"), integer("D"), boolean("F"), boolean("I"), boolean("P"), integer("R"), integer("U"), integer("V"), integer("X"), integer("Y")}},
}

var toolOps = []Definition{
	{Name: "select_tool_0", Summary: "Select tool 0", Letter: gcode.T, Code: 0},
	{Name: "select_tool_1", Summary: "Select tool 1", Letter: gcode.T, Code: 1},
	{Name: "select_tool_2", Summary: "Select tool 2", Letter: gcode.T, Code: 2},
	{Name: "select_tool_3", Summary: "Select tool 3", Letter: gcode.T, Code: 3},
	{Name: "select_tool_4", Summary: "Select tool 4", Letter: gcode.T, Code: 4},
	{Name: "select_tool_5", Summary: "Select tool 5", Letter: gcode.T, Code: 5},
	{Name: "select_tool_6", Summary: "Select tool 6", Letter: gcode.T, Code: 6},
}

// extraOps need more than a fixed code.
var extraOps = []Definition{
	{Name: "move_in_machine_coordinates_prefix", Summary: "Prefix the next move with G53", Letter: gcode.G, Code: 53, Inline: true},
	{Name: "workspace_coordinate_system", Summary: "Select workspace coordinate system", Letter: gcode.G, Code: 54, SelectArg: "system", Select: selectWorkspace},
}

func concat(groups ...[]Definition) []Definition {
	var all []Definition
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
