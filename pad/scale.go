package pad

// ScaleAxis maps a raw 0-255 axis value to a signed pointer delta.
//
// Values within deadzone of center give 0. Outside the band the deadzone
// width is subtracted so scaling starts at zero on the band edge, then the
// remainder is scaled linearly to sensitivity over the usable range
// (center - deadzone), truncating toward zero. The result is clamped to
// the int8 range HID mouse reports can carry. A degenerate configuration
// (deadzone covering the whole range) always gives 0.
func ScaleAxis(value, center, deadzone, sensitivity int) int {
	offset := value - center
	if offset <= deadzone && offset >= -deadzone {
		return 0
	}
	if offset > 0 {
		offset -= deadzone
	} else {
		offset += deadzone
	}
	maxRange := center - deadzone
	if maxRange <= 0 {
		return 0
	}
	scaled := offset * sensitivity / maxRange
	if scaled > 127 {
		return 127
	}
	if scaled < -127 {
		return -127
	}
	return scaled
}
