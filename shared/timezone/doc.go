// Package timezone is the venue-local clock. Business dates, booking
// windows, and drawer days all follow the timezone the venue operates in,
// not the server's locale.
//
//	now := timezone.Now()                    // current time at the venue
//	local := timezone.ToAppTime(someTime)    // convert into the venue zone
//	s := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//	t, err := timezone.Parse("2006-01-02", "2024-01-01")
//	loc := timezone.GetLocation()
//
// The zone comes from the APP_TIMEZONE environment variable (IANA names
// such as "Asia/Kolkata" or "UTC") and is loaded when the package is
// imported.
package timezone
