// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// Section names a server-curated event collection. The backend
// defines membership and ordering; the client renders the buckets as
// delivered and does not deduplicate across them.
type Section string

const (
	// SectionNearYou is events close to the student's location.
	SectionNearYou Section = "near-you"
	// SectionRecommended is events matched to the student's interests.
	SectionRecommended Section = "recommended"
	// SectionYourCampus is events hosted by the student's own campus.
	SectionYourCampus Section = "your-campus"
)

// Sections lists the curated collections in display order.
var Sections = []Section{SectionNearYou, SectionRecommended, SectionYourCampus}

// Image is an uploaded event image reference.
type Image struct {
	URL string `json:"url"`
}

// Event is an event summary as listed by the backend.
type Event struct {
	ID                   string  `json:"_id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Location             string  `json:"location"`
	DateTime             string  `json:"dateTime"`
	Organizer            string  `json:"organizer"`
	Category             string  `json:"category"`
	Capacity             string  `json:"capacity"`
	RegistrationDeadline string  `json:"registrationDeadline"`
	Price                string  `json:"price"`
	Status               string  `json:"status"`
	PinCode              string  `json:"pinCode"`
	Campus               string  `json:"campus"`
	Images               []Image `json:"images"`
}

// Attendee is a member of an event's attendee set. The backend's list
// is the source of truth; the client holds it only as a cache.
type Attendee struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// eventListResponse is the wire format for GET /events.
type eventListResponse struct {
	Events []Event `json:"events"`
}

// Events fetches a named section of the curated event collections.
func (client *Client) Events(ctx context.Context, section Section) ([]Event, error) {
	path := "/events?section=" + url.QueryEscape(string(section))
	var result eventListResponse
	if err := client.getJSON(ctx, fmt.Sprintf("list %s events", section), path, &result); err != nil {
		return nil, err
	}
	return result.Events, nil
}

// SearchEvents fetches events matching a free-text query. An empty
// query is a valid call; the backend defines its semantics.
func (client *Client) SearchEvents(ctx context.Context, query string) ([]Event, error) {
	path := "/events?search=" + url.QueryEscape(query)
	var result eventListResponse
	if err := client.getJSON(ctx, "search events", path, &result); err != nil {
		return nil, err
	}
	return result.Events, nil
}

// EventDetail is the wire format for GET /events/{id}.
type EventDetail struct {
	Success   bool       `json:"success"`
	Event     Event      `json:"event"`
	Attendees []Attendee `json:"attendees"`
}

// Event fetches a single event with its attendee set.
func (client *Client) Event(ctx context.Context, eventID string) (*EventDetail, error) {
	var result EventDetail
	if err := client.getJSON(ctx, "load event", "/events/"+url.PathEscape(eventID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// registrationResponse is the wire format for register/unregister.
type registrationResponse struct {
	Success   bool       `json:"success"`
	Attendees []Attendee `json:"attendees"`
	Message   string     `json:"message"`
}

// Register joins the current user to an event's attendee set. Returns
// the server's replacement attendee list.
func (client *Client) Register(ctx context.Context, eventID string) ([]Attendee, error) {
	var result registrationResponse
	if err := client.postJSON(ctx, "register", "/events/"+url.PathEscape(eventID)+"/register", nil, &result); err != nil {
		return nil, err
	}
	return result.Attendees, nil
}

// Unregister removes the current user from an event's attendee set.
// Returns the server's replacement attendee list.
func (client *Client) Unregister(ctx context.Context, eventID string) ([]Attendee, error) {
	var result registrationResponse
	if err := client.deleteJSON(ctx, "unregister", "/events/"+url.PathEscape(eventID)+"/unregister", &result); err != nil {
		return nil, err
	}
	return result.Attendees, nil
}

// AttendanceEntry is one row of an event's attendance report.
type AttendanceEntry struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"` // registered, attended, cancelled, waitlisted
}

// AttendanceStatistics aggregates an event's attendance report.
type AttendanceStatistics struct {
	Total     int `json:"total"`
	Attended  int `json:"attended"`
	Cancelled int `json:"cancelled"`
	Waitlist  int `json:"waitlisted"`
}

// AttendanceReport is the wire format for GET /events/{id}/attendance.
type AttendanceReport struct {
	Success    bool                 `json:"success"`
	Statistics AttendanceStatistics `json:"statistics"`
	Entries    []AttendanceEntry    `json:"attendanceData"`
}

// Attendance fetches the attendance report for an event. Organizer
// only; the backend enforces the restriction.
func (client *Client) Attendance(ctx context.Context, eventID string) (*AttendanceReport, error) {
	var result AttendanceReport
	if err := client.getJSON(ctx, "load attendance", "/events/"+url.PathEscape(eventID)+"/attendance", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreatedEvents fetches the events the signed-in organizer created.
func (client *Client) CreatedEvents(ctx context.Context) ([]Event, error) {
	var result eventListResponse
	if err := client.getJSON(ctx, "list created events", "/events/created", &result); err != nil {
		return nil, err
	}
	return result.Events, nil
}

// RegisteredEvents fetches the events the signed-in student registered
// for.
func (client *Client) RegisteredEvents(ctx context.Context) ([]Event, error) {
	var result eventListResponse
	if err := client.getJSON(ctx, "list registered events", "/events/registered", &result); err != nil {
		return nil, err
	}
	return result.Events, nil
}

// EventDraft is the locally held form data for event creation and
// editing, not yet persisted by the backend.
type EventDraft struct {
	Title                string
	Description          string
	Location             string
	DateTime             string
	Organizer            string
	Category             string
	Capacity             string
	RegistrationDeadline string
	Price                string
	Status               string
	PinCode              string
	Campus               string
}

// fields returns the draft as multipart form fields, mirroring the
// field names the backend reads.
func (draft EventDraft) fields() map[string]string {
	return map[string]string{
		"title":                draft.Title,
		"description":          draft.Description,
		"location":             draft.Location,
		"dateTime":             draft.DateTime,
		"organizer":            draft.Organizer,
		"category":             draft.Category,
		"capacity":             draft.Capacity,
		"registrationDeadline": draft.RegistrationDeadline,
		"price":                draft.Price,
		"status":               draft.Status,
		"pinCode":              draft.PinCode,
		"campus":               draft.Campus,
	}
}

// mutationResponse is the wire format for event create/update/delete.
type mutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Event   *Event `json:"event"`
}

// CreateEvent submits a new event as multipart form data, attaching
// the images at the given local file paths.
func (client *Client) CreateEvent(ctx context.Context, draft EventDraft, imagePaths []string) (*Event, error) {
	body, contentType, err := encodeEventForm(draft, nil, imagePaths)
	if err != nil {
		return nil, err
	}

	var result mutationResponse
	if err := client.call(ctx, "create event", http.MethodPost, "/events/new", body, contentType, &result); err != nil {
		return nil, err
	}
	return result.Event, nil
}

// UpdateEvent submits edits to an existing event. existingImages are
// the already-uploaded image references to keep; imagePaths are new
// local files to attach.
func (client *Client) UpdateEvent(ctx context.Context, eventID string, draft EventDraft, existingImages []Image, imagePaths []string) (*Event, error) {
	body, contentType, err := encodeEventForm(draft, existingImages, imagePaths)
	if err != nil {
		return nil, err
	}

	var result mutationResponse
	if err := client.call(ctx, "update event", http.MethodPut, "/events/"+url.PathEscape(eventID), body, contentType, &result); err != nil {
		return nil, err
	}
	return result.Event, nil
}

// DeleteEvent removes an event the organizer created.
func (client *Client) DeleteEvent(ctx context.Context, eventID string) error {
	var result mutationResponse
	return client.deleteJSON(ctx, "delete event", "/events/"+url.PathEscape(eventID)+"/delete", &result)
}

// encodeEventForm builds the multipart body shared by create and
// update. existingImages, when non-nil, is sent as a JSON field so the
// backend knows which uploads to retain.
func encodeEventForm(draft EventDraft, existingImages []Image, imagePaths []string) (io.Reader, string, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	for name, value := range draft.fields() {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", Internal("encoding form field %s: %w", name, err)
		}
	}

	if existingImages != nil {
		encoded, err := json.Marshal(existingImages)
		if err != nil {
			return nil, "", Internal("encoding existing images: %w", err)
		}
		if err := writer.WriteField("existingImages", string(encoded)); err != nil {
			return nil, "", Internal("encoding existing images field: %w", err)
		}
	}

	for _, path := range imagePaths {
		file, err := os.Open(path)
		if err != nil {
			return nil, "", Validation("image %s: %w", path, err)
		}
		part, err := writer.CreateFormFile("images", filepath.Base(path))
		if err != nil {
			file.Close()
			return nil, "", Internal("encoding image %s: %w", path, err)
		}
		if _, err := io.Copy(part, file); err != nil {
			file.Close()
			return nil, "", Internal("reading image %s: %w", path, err)
		}
		file.Close()
	}

	if err := writer.Close(); err != nil {
		return nil, "", Internal("finalizing form: %w", err)
	}
	return &buffer, writer.FormDataContentType(), nil
}
