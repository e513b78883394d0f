package osc

import (
	"encoding/binary"
	"time"
)

const secondsFrom1900To1970 = 2208988800

// TimetagImmediate is the special time tag value, 63 zero bits followed by a
// one, meaning "immediately".
const TimetagImmediate = Timetag(1)

// Timetag represents an OSC Time Tag.
// An OSC Time Tag is defined as follows:
// Time tags are represented by a 64 bit fixed point number. The first 32 bits
// specify the number of seconds since midnight on January 1, 1900, and the
// last 32 bits specify fractional parts of a second to a precision of about
// 200 picoseconds. This is the representation used by Internet NTP timestamps.
//
// Packet deconstruction propagates time tags to the handler without
// interpreting them; what a tag means is up to the application.
type Timetag uint64

// NewTimetagFromTime returns a new OSC time tag object from a time.Time.
func NewTimetagFromTime(timeStamp time.Time) Timetag {
	return Timetag(uint64((secondsFrom1900To1970+timeStamp.Unix())<<32) + uint64(timeStamp.Nanosecond()))
}

// NewImmediateTimetag returns the "immediately" time tag.
func NewImmediateTimetag() Timetag {
	return TimetagImmediate
}

// Time returns the time.
func (t Timetag) Time() time.Time {
	return time.Unix(int64((t>>32)-secondsFrom1900To1970), int64(t&0xffffffff))
}

// FractionalSecond returns the last 32 bits of the OSC time tag. Specifies the
// fractional part of a second.
func (t Timetag) FractionalSecond() uint32 {
	return uint32(t << 32)
}

// SecondsSinceEpoch returns the first 32 bits (the number of seconds since
// midnight 1900) from the OSC time tag.
func (t Timetag) SecondsSinceEpoch() uint32 {
	return uint32(t >> 32)
}

// TimeTag returns the time tag value.
func (t Timetag) TimeTag() uint64 {
	return uint64(t)
}

// MarshalBinary converts the OSC time tag to a byte array.
func (t Timetag) MarshalBinary() (b []byte, err error) {
	b = make([]byte, bit64Size)
	binary.BigEndian.PutUint64(b, uint64(t))
	return
}
