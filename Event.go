/*
Copyright 2024 The pzhf Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pzhf

import (
	"fmt"
	"time"
)

// Event types a Listener may receive: the phases a single-stage (no
// transform, no multi-job) compression or decompression pipeline goes
// through.
const (
	EvtCompressionStart     = 0 // Compression starts
	EvtDecompressionStart   = 1 // Decompression starts
	EvtAfterHeaderDecoding  = 2 // Header deserialized, Model rebuilt
	EvtCompressionEnd       = 3 // Compression ends
	EvtDecompressionEnd     = 4 // Decompression ends
)

// Event reports one step of a compression or decompression run: which
// phase, how many bytes, and when.
type Event struct {
	eventType int
	size      int64
	eventTime time.Time
	msg       string
}

// NewEvent creates an Event carrying size info for eventType, occurring at
// evtTime (or now, if zero).
func NewEvent(eventType int, size int64, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}
	return &Event{eventType: eventType, size: size, eventTime: evtTime}
}

// NewEventFromString creates an Event that wraps a free-form message.
func NewEventFromString(eventType int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}
	return &Event{eventType: eventType, msg: msg, eventTime: evtTime}
}

// Type returns the event's phase.
func (this *Event) Type() int {
	return this.eventType
}

// Time returns when the event occurred.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// Size returns the byte count the event carries (0 if not applicable).
func (this *Event) Size() int64 {
	return this.size
}

// String returns a human-readable representation of this event.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	t := ""

	switch this.eventType {
	case EvtCompressionStart:
		t = "COMPRESSION_START"
	case EvtDecompressionStart:
		t = "DECOMPRESSION_START"
	case EvtAfterHeaderDecoding:
		t = "AFTER_HEADER_DECODING"
	case EvtCompressionEnd:
		t = "COMPRESSION_END"
	case EvtDecompressionEnd:
		t = "DECOMPRESSION_END"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"size\":%d, \"time\":%d }", t, this.size,
		this.eventTime.UnixNano()/1000000)
}

// Listener is implemented by event processors.
type Listener interface {
	// ProcessEvent is called whenever the Listener receives an event.
	ProcessEvent(evt *Event)
}
