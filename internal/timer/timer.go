package timer

import (
	"sync/atomic"
	"time"
)

// Time contains the unix-time in milliseconds updated every [Resolution] milliseconds
var Time = new(atomic.Int64)

// Resolution is the frequency at which time is updated. It is precise enough for
// setting accept deadlines and for the Date header, which has a precision of one
// second anyway.
const Resolution = 500 * time.Millisecond

// HTTPDateFormat is the IMF-fixdate format from RFC 9110, 5.6.7.
const HTTPDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

func Now() time.Time {
	millis := Time.Load()
	return time.Unix(millis/1000, (millis%1000)*1e6)
}

// Date returns the current time ready to be used as a Date header value.
func Date() string {
	return Now().UTC().Format(HTTPDateFormat)
}

func init() {
	// there is no guarantee that the goroutine will be started immediately. If it won't,
	// some rapid usage of the timer will result in zero-time
	Time.Store(time.Now().UnixMilli())

	go func() {
		for {
			Time.Store(time.Now().UnixMilli())
			time.Sleep(Resolution)
		}
	}()
}
