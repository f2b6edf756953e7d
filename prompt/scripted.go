package prompt

import "log/slog"

// Reply is one canned answer for Scripted.
type Reply struct {
	Value string
	OK    bool
}

// Answer returns a Reply that supplies value.
func Answer(value string) Reply {
	return Reply{Value: value, OK: true}
}

// Cancel returns a Reply that declines the prompt.
func Cancel() Reply {
	return Reply{}
}

// AlertRecord is an alert captured by Scripted.
type AlertRecord struct {
	Level   Level
	Context string
	Message string
}

// Scripted replays canned replies in order and records every prompt and
// alert. Once the replies run out, further prompts are cancelled.
type Scripted struct {
	Replies []Reply
	Prompts []string
	Alerts  []AlertRecord
	Logger  *slog.Logger
}

// NewScripted creates a Scripted prompter with the given replies.
func NewScripted(replies ...Reply) *Scripted {
	return &Scripted{Replies: replies}
}

// Prompt records message and returns the next reply.
func (s *Scripted) Prompt(message string) (string, bool) {
	s.Prompts = append(s.Prompts, message)
	if len(s.Replies) == 0 {
		return "", false
	}
	r := s.Replies[0]
	s.Replies = s.Replies[1:]
	return r.Value, r.OK
}

// Alert records the alert and logs it when a logger is set.
func (s *Scripted) Alert(level Level, context, message string) {
	s.Alerts = append(s.Alerts, AlertRecord{Level: level, Context: context, Message: message})
	if s.Logger != nil {
		logAlert(s.Logger, level, context, message)
	}
}

// AlertsAt returns the recorded alerts of the given level.
func (s *Scripted) AlertsAt(level Level) []AlertRecord {
	var out []AlertRecord
	for _, a := range s.Alerts {
		if a.Level == level {
			out = append(out, a)
		}
	}
	return out
}
