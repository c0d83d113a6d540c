package builtins

import (
	"math"
	"time"

	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// installDate builds Date.prototype and the Date constructor (spec §4.7
// Date). Internally every instant is stored as milliseconds since the
// epoch, UTC; this engine does not model a local timezone offset, so the
// "local time" accessors (getHours etc.) and their UTC-prefixed
// counterparts return identical results, a documented simplification.
func installDate(in *evaluator.Interpreter, proto *runtime.Object) *runtime.Object {
	thisDate := func(args []runtime.Value) (*runtime.DateData, error) {
		d, ok := runtime.AsDateData(thisOf(args))
		if !ok {
			return nil, runtime.NewTypeError("Date.prototype method called on incompatible receiver")
		}
		return d, nil
	}

	component := func(name string, get func(time.Time) float64) {
		method(in, proto, name, 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
			d, err := thisDate(args)
			if err != nil {
				return nil, err
			}
			t, ok := d.DateTime()
			if !ok {
				return runtime.Float(math.NaN()), nil
			}
			return runtime.Float(get(t)), nil
		})
	}
	yearGet := func(t time.Time) float64 { return float64(t.Year()) }
	monthGet := func(t time.Time) float64 { return float64(t.Month() - 1) }
	dateGet := func(t time.Time) float64 { return float64(t.Day()) }
	dayGet := func(t time.Time) float64 { return float64(t.Weekday()) }
	hoursGet := func(t time.Time) float64 { return float64(t.Hour()) }
	minutesGet := func(t time.Time) float64 { return float64(t.Minute()) }
	secondsGet := func(t time.Time) float64 { return float64(t.Second()) }
	msGet := func(t time.Time) float64 { return float64(t.Nanosecond() / 1e6) }

	component("getFullYear", yearGet)
	component("getUTCFullYear", yearGet)
	component("getMonth", monthGet)
	component("getUTCMonth", monthGet)
	component("getDate", dateGet)
	component("getUTCDate", dateGet)
	component("getDay", dayGet)
	component("getUTCDay", dayGet)
	component("getHours", hoursGet)
	component("getUTCHours", hoursGet)
	component("getMinutes", minutesGet)
	component("getUTCMinutes", minutesGet)
	component("getSeconds", secondsGet)
	component("getUTCSeconds", secondsGet)
	component("getMilliseconds", msGet)
	component("getUTCMilliseconds", msGet)

	method(in, proto, "getTime", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		d, err := thisDate(args)
		if err != nil {
			return nil, err
		}
		if !d.Valid {
			return runtime.Float(math.NaN()), nil
		}
		return runtime.Float(d.Millis), nil
	})
	method(in, proto, "valueOf", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		d, err := thisDate(args)
		if err != nil {
			return nil, err
		}
		if !d.Valid {
			return runtime.Float(math.NaN()), nil
		}
		return runtime.Float(d.Millis), nil
	})
	method(in, proto, "getTimezoneOffset", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		return runtime.Int(0), nil
	})

	method(in, proto, "setTime", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		d, err := thisDate(args)
		if err != nil {
			return nil, err
		}
		n, err := runtime.ToNumber(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		d.Millis = n
		d.Valid = !math.IsNaN(n)
		return runtime.Float(d.Millis), nil
	})

	method(in, proto, "toString", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		d, err := thisDate(args)
		if err != nil {
			return nil, err
		}
		t, ok := d.DateTime()
		if !ok {
			return runtime.Str("Invalid Date"), nil
		}
		return runtime.Str(t.Format("Mon Jan 02 2006 15:04:05 GMT+0000 (UTC)")), nil
	})
	method(in, proto, "toISOString", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		d, err := thisDate(args)
		if err != nil {
			return nil, err
		}
		t, ok := d.DateTime()
		if !ok {
			return nil, runtime.NewRangeError("invalid date value")
		}
		return runtime.Str(t.Format("2006-01-02T15:04:05.000Z")), nil
	})
	method(in, proto, "toDateString", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		d, err := thisDate(args)
		if err != nil {
			return nil, err
		}
		t, ok := d.DateTime()
		if !ok {
			return runtime.Str("Invalid Date"), nil
		}
		return runtime.Str(t.Format("Mon Jan 02 2006")), nil
	})
	method(in, proto, "toTimeString", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		d, err := thisDate(args)
		if err != nil {
			return nil, err
		}
		t, ok := d.DateTime()
		if !ok {
			return runtime.Str("Invalid Date"), nil
		}
		return runtime.Str(t.Format("15:04:05 GMT+0000 (UTC)")), nil
	})

	ctor := in.NativeFunction("Date", 7, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		switch argc(args) {
		case 0:
			return runtime.NewDateObject(proto, float64(time.Now().UnixMilli()), true), nil
		case 1:
			v := arg(args, 0)
			if s, ok := v.(*runtime.StringValue); ok {
				return parseDate(proto, s.Value), nil
			}
			n, err := runtime.ToNumber(realm, v)
			if err != nil {
				return nil, err
			}
			return runtime.NewDateObject(proto, n, !math.IsNaN(n)), nil
		default:
			year, err := runtime.ToNumber(realm, arg(args, 0))
			if err != nil {
				return nil, err
			}
			month := 0.0
			if argc(args) > 1 {
				month, err = runtime.ToNumber(realm, arg(args, 1))
				if err != nil {
					return nil, err
				}
			}
			day := 1.0
			if argc(args) > 2 {
				day, err = runtime.ToNumber(realm, arg(args, 2))
				if err != nil {
					return nil, err
				}
			}
			hour, minute, sec, ms := 0.0, 0.0, 0.0, 0.0
			if argc(args) > 3 {
				hour, _ = runtime.ToNumber(realm, arg(args, 3))
			}
			if argc(args) > 4 {
				minute, _ = runtime.ToNumber(realm, arg(args, 4))
			}
			if argc(args) > 5 {
				sec, _ = runtime.ToNumber(realm, arg(args, 5))
			}
			if argc(args) > 6 {
				ms, _ = runtime.ToNumber(realm, arg(args, 6))
			}
			t := time.Date(int(year), time.Month(int(month)+1), int(day), int(hour), int(minute), int(sec), int(ms)*1e6, time.UTC)
			return runtime.NewDateObject(proto, float64(t.UnixMilli()), true), nil
		}
	})
	ctor.DefineHidden("prototype", proto)
	proto.DefineHidden("constructor", ctor)

	now := in.NativeFunction("now", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		return runtime.Float(float64(time.Now().UnixMilli())), nil
	})
	ctor.DefineHidden("now", now)

	parse := in.NativeFunction("parse", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		obj := parseDate(proto, s)
		d, _ := runtime.AsDateData(obj)
		if !d.Valid {
			return runtime.Float(math.NaN()), nil
		}
		return runtime.Float(d.Millis), nil
	})
	ctor.DefineHidden("parse", parse)
	return ctor
}

var dateLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z",
	time.RFC3339,
	"2006-01-02",
	"Mon Jan 02 2006 15:04:05 GMT-0700 (MST)",
	"Mon Jan 02 2006",
}

func parseDate(proto *runtime.Object, s string) *runtime.Object {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return runtime.NewDateObject(proto, float64(t.UnixMilli()), true)
		}
	}
	return runtime.NewDateObject(proto, math.NaN(), false)
}
