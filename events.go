package pollset

// Events is a bit set of readiness interests. The constant values match
// what the native multiplexing primitive expects, i.e. poll(2), on unix
// platforms.
type Events int16

// DefaultEvents is the conventional registration mask, for callers that
// want to be notified of both readability and writability.
const DefaultEvents = EventRead | EventWrite

// eventMask covers the supported interests; bits outside it are ignored on
// input.
const eventMask = EventRead | EventWrite | EventError
