package assignment

import (
	"breakout-lab/errors"
	"bytes"
	"encoding/json"
	"fmt"
)

// AttendeeMap maps an attendee id to the index of its target room.
type AttendeeMap map[string]int

// ParseAttendeeMap decodes the JSON object sent by the caller and checks
// every index against amount.
// When a key is repeated, the last occurrence wins. Clients that serialize an
// empty map as an empty list send "[]", which reads as no assignment.
func ParseAttendeeMap(raw string, amount int) (AttendeeMap, error) {
	decoder := json.NewDecoder(bytes.NewBufferString(raw))
	var document json.RawMessage
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidAttendeeMap, err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("%w: trailing data", errors.ErrInvalidAttendeeMap)
	}

	var attendeeMap AttendeeMap
	if bytes.HasPrefix(document, []byte("[")) {
		var list []json.RawMessage
		if err := json.Unmarshal(document, &list); err != nil || len(list) > 0 {
			return nil, fmt.Errorf("%w: expected an object, got a list", errors.ErrInvalidAttendeeMap)
		}
	} else if err := json.Unmarshal(document, &attendeeMap); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidAttendeeMap, err)
	}

	for attendeeID, room := range attendeeMap {
		if room < 0 || room >= amount {
			return nil, fmt.Errorf("%w: attendee %s targets room %d out of [0,%d)",
				errors.ErrInvalidAttendeeMap, attendeeID, room, amount)
		}
	}
	if attendeeMap == nil {
		attendeeMap = AttendeeMap{}
	}
	return attendeeMap, nil
}
