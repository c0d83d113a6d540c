package runtime

import "time"

// DateData is the host-data payload for Date instances (spec §4.7): a
// single internal millisecond timestamp, per ECMAScript's time value
// model. NaN time values (invalid dates) are represented with Valid=false
// rather than relying on a NaN float, since Go's time.Time has no NaN.
type DateData struct {
	Millis float64
	Valid  bool
}

func (d *DateData) hostData() {}

// NewDateObject creates a Date instance wrapping millis (milliseconds
// since the epoch, UTC).
func NewDateObject(proto *Object, millis float64, valid bool) *Object {
	o := NewObject(proto)
	o.Host = &DateData{Millis: millis, Valid: valid}
	o.Class = "Date"
	return o
}

// DateTime converts a DateData's internal time value to a UTC time.Time;
// the second return is false for an invalid date.
func (d *DateData) DateTime() (time.Time, bool) {
	if !d.Valid {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(d.Millis)).UTC(), true
}

// AsDateData extracts the DateData host payload from v, if v is a Date
// instance.
func AsDateData(v Value) (*DateData, bool) {
	o, ok := v.(*Object)
	if !ok {
		return nil, false
	}
	d, ok := o.Host.(*DateData)
	return d, ok
}
