// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/url"
)

// Education is the academic portion of a student profile.
type Education struct {
	Campus      string `json:"campus"`
	PassingYear string `json:"passingYear"`
}

// Contact is the reachability portion of a student profile.
type Contact struct {
	Phone          string `json:"phone"`
	AlternateEmail string `json:"alternateEmail"`
}

// UserDetails is the student profile as submitted and stored.
type UserDetails struct {
	Name        string    `json:"name"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	DateOfBirth string    `json:"dateOfBirth"`
	Gender      string    `json:"gender"`
	Interests   []string  `json:"interests"`
	Education   Education `json:"education"`
	Contact     Contact   `json:"contact"`
	PinCode     string    `json:"pinCode"`
}

// CampusDetails is the campus organizer profile.
type CampusDetails struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	PinCode     string  `json:"pinCode"`
	Contact     Contact `json:"contact"`
}

// profileResponse is the wire format for GET /user/{id}.
type profileResponse struct {
	Success bool        `json:"success"`
	User    UserDetails `json:"user"`
	Message string      `json:"message"`
}

// UserProfile fetches the stored profile for a user.
func (client *Client) UserProfile(ctx context.Context, userID string) (*UserDetails, error) {
	var result profileResponse
	if err := client.getJSON(ctx, "load profile", "/user/"+url.PathEscape(userID), &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// SubmitUserDetails stores the student's profile.
func (client *Client) SubmitUserDetails(ctx context.Context, details UserDetails) error {
	var result statusMessage
	return client.postJSON(ctx, "submit profile", "/user/details", details, &result)
}

// SubmitCampusDetails stores the campus organizer's profile.
func (client *Client) SubmitCampusDetails(ctx context.Context, details CampusDetails) error {
	var result statusMessage
	return client.postJSON(ctx, "submit campus profile", "/campus/details", details, &result)
}
