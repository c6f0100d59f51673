// Package clock provides an injectable time source.
//
// The release-timestamp rule and the notification timestamps both depend on the
// current instant, so every component that reads the time takes a Clock instead of
// calling time.Now directly. Production code uses NewSystem; tests pin time with NewFixed.
package clock
