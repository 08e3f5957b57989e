// Package content serves the static historical-event files that back the
// read-only events API and the seeder. Files are read from disk on every
// request, matching the original application; the files are tiny.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Event is one entry of the events file. AvatarURL may be empty; the feed
// projection substitutes a dicebear avatar in that case.
type Event struct {
	ID           string `json:"id"`
	AuthorName   string `json:"authorName"`
	AuthorHandle string `json:"authorHandle"`
	AvatarURL    string `json:"avatarUrl"`
	Content      string `json:"content"`
	Timestamp    string `json:"timestamp"`
	Topic        string `json:"topic"`
	Type         string `json:"type"`
}

// StaticPost is one entry of the posts file, referencing its event by id.
type StaticPost struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// PostDetail is a static post joined with its event (nil when the event id
// dangles; the join is best-effort like the original).
type PostDetail struct {
	StaticPost
	Event *Event `json:"event"`
}

// Store reads the static content files.
type Store struct {
	eventsFile string
	postsFile  string
	promptFile string
}

// NewStore creates a content store over the given file paths.
func NewStore(eventsFile, postsFile, promptFile string) *Store {
	return &Store{
		eventsFile: eventsFile,
		postsFile:  postsFile,
		promptFile: promptFile,
	}
}

// Events returns all events in file order.
func (s *Store) Events() ([]Event, error) {
	raw, err := os.ReadFile(s.eventsFile)
	if err != nil {
		return nil, fmt.Errorf("reading events file: %w", err)
	}
	var events []Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("parsing events file: %w", err)
	}
	return events, nil
}

// EventByID returns the event with the given id, or (nil, nil) when absent.
func (s *Store) EventByID(id string) (*Event, error) {
	events, err := s.Events()
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, nil
}

// PostByID joins a static post with its event. Returns (nil, nil) when the
// post id is unknown.
func (s *Store) PostByID(id string) (*PostDetail, error) {
	raw, err := os.ReadFile(s.postsFile)
	if err != nil {
		return nil, fmt.Errorf("reading posts file: %w", err)
	}
	var posts []StaticPost
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("parsing posts file: %w", err)
	}

	for _, p := range posts {
		if p.ID != id {
			continue
		}
		event, err := s.EventByID(p.EventID)
		if err != nil {
			return nil, err
		}
		return &PostDetail{StaticPost: p, Event: event}, nil
	}
	return nil, nil
}

// SystemPrompt returns the bundled system prompt for the explain endpoint.
func (s *Store) SystemPrompt() (string, error) {
	raw, err := os.ReadFile(s.promptFile)
	if err != nil {
		return "", fmt.Errorf("reading system prompt file: %w", err)
	}
	prompt := strings.TrimSpace(string(raw))
	if prompt == "" {
		return "", fmt.Errorf("system prompt file %s is empty", s.promptFile)
	}
	return prompt, nil
}
