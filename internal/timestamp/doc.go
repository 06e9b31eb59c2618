// Package timestamp converts the date/time bounds given on the command line
// into Unix epoch seconds.
//
// Input strings use the fixed layout "YYYYMMDD HH:mm:SS" (24-hour clock,
// zero-padded) and are interpreted in the local time zone of the process.
// No normalization to UTC is performed: the same input yields different
// epochs on machines with different TZ settings.
package timestamp
