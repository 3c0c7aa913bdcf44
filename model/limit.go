package model

// WatchdogTimeoutNever is the watchdog timeout value meaning the watchdog
// is disabled for the process.
const WatchdogTimeoutNever = -1

// SetOnceInt is an integer setting that may be assigned at most once.
// Definition files reject a second watchdogAction or watchdogTimeout
// section, and the distinction between "unset" and "explicitly zero"
// matters when defaults are applied later.
type SetOnceInt struct {
	value int
	isSet bool
}

// NewSetOnceInt creates an unset setting whose Get returns defaultValue
// until Set is called.
func NewSetOnceInt(defaultValue int) SetOnceInt {
	return SetOnceInt{value: defaultValue}
}

// Set records the value. It returns false if a value was already recorded.
func (s *SetOnceInt) Set(value int) bool {
	if s.isSet {
		return false
	}

	s.value = value
	s.isSet = true

	return true
}

// IsSet reports whether a value has been recorded.
func (s SetOnceInt) IsSet() bool { return s.isSet }

// Get returns the recorded value, zero when unset.
func (s SetOnceInt) Get() int { return s.value }

// SetOnceString is a string setting that may be assigned at most once.
type SetOnceString struct {
	value string
	isSet bool
}

// NewSetOnceString creates an unset setting whose Get returns defaultValue
// until Set is called.
func NewSetOnceString(defaultValue string) SetOnceString {
	return SetOnceString{value: defaultValue}
}

// Set records the value. It returns false if a value was already recorded.
func (s *SetOnceString) Set(value string) bool {
	if s.isSet {
		return false
	}

	s.value = value
	s.isSet = true

	return true
}

// IsSet reports whether a value has been recorded.
func (s SetOnceString) IsSet() bool { return s.isSet }

// Get returns the recorded value, empty when unset.
func (s SetOnceString) Get() string { return s.value }
