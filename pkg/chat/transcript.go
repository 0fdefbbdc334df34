package chat

// Reduce folds one assistant entry into the transcript and returns the new
// transcript; the input slice is never mutated. User entries are appended
// by the session directly and are never touched here.
//
// Reasoning entries replace the existing reasoning placeholder in place and
// sweep out finalized assistant entries, so a burst of reasoning updates
// shows as a single live line and user turns survive untouched. Final
// entries overwrite a trailing final entry, coalescing streamed partials
// into the latest one; with nothing coalescible at the tail they append.
func Reduce(entries []Message, msg Message) []Message {
	if msg.Reasoning {
		return reduceReasoning(entries, msg)
	}
	return reduceFinal(entries, msg)
}

func reduceReasoning(entries []Message, msg Message) []Message {
	out := make([]Message, 0, len(entries)+1)
	replaced := false
	for _, e := range entries {
		switch {
		case e.IsUser():
			out = append(out, e)
		case e.Reasoning && !replaced:
			out = append(out, msg)
			replaced = true
		}
	}
	if !replaced {
		out = append(out, msg)
	}
	return out
}

func reduceFinal(entries []Message, msg Message) []Message {
	if last, ok := LastEntry(entries); ok && !last.IsUser() && !last.Reasoning {
		out := make([]Message, len(entries))
		copy(out, entries)
		out[len(out)-1] = msg
		return out
	}

	out := make([]Message, len(entries)+1)
	copy(out, entries)
	out[len(entries)] = msg
	return out
}

// Append adds an entry to the end of the transcript, copying first.
func Append(entries []Message, msg Message) []Message {
	out := make([]Message, len(entries)+1)
	copy(out, entries)
	out[len(entries)] = msg
	return out
}

// LastEntry returns the most recent transcript entry.
func LastEntry(entries []Message) (Message, bool) {
	if len(entries) == 0 {
		return Message{}, false
	}
	return entries[len(entries)-1], true
}

// ReasoningEntry returns the current reasoning placeholder, if any.
func ReasoningEntry(entries []Message) (Message, bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Reasoning {
			return entries[i], true
		}
	}
	return Message{}, false
}
