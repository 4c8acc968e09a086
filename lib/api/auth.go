// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/campusvibes/campusvibes/lib/session"
)

// OTPResponse is the wire format for POST /sendotp.
type OTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendOTP asks the backend to dispatch a verification code to the
// given email address.
func (client *Client) SendOTP(ctx context.Context, email string) (*OTPResponse, error) {
	request := struct {
		Email string `json:"email"`
	}{Email: email}

	var result OTPResponse
	if err := client.postJSON(ctx, "send otp", "/sendotp", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SignupRequest is the JSON body for POST /signup: the full signup
// draft plus the one-time code proving email ownership.
type SignupRequest struct {
	Email    string       `json:"email"`
	OTP      string       `json:"otp"`
	Password string       `json:"password"`
	Name     string       `json:"name"`
	Role     session.Role `json:"role"`
}

// AuthUser is the identity block in authentication responses.
type AuthUser struct {
	UserID string       `json:"userId"`
	Name   string       `json:"name"`
	Role   session.Role `json:"role"`
}

// AuthResponse is the wire format for POST /signup and POST /signin.
type AuthResponse struct {
	Success     bool     `json:"success"`
	AccessToken string   `json:"accessToken"`
	User        AuthUser `json:"user"`
	RedirectURL string   `json:"redirectUrl"`
	Message     string   `json:"message"`
}

// ConfirmSignup verifies the one-time code and creates the account.
// On success the response carries the access token, the identity, and
// the route the client should navigate to.
func (client *Client) ConfirmSignup(ctx context.Context, request SignupRequest) (*AuthResponse, error) {
	var result AuthResponse
	if err := client.postJSON(ctx, "confirm signup", "/signup", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Signin authenticates with email and password.
func (client *Client) Signin(ctx context.Context, email, password string) (*AuthResponse, error) {
	request := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var result AuthResponse
	if err := client.postJSON(ctx, "sign in", "/signin", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RequestPasswordReset asks the backend to email a reset link.
func (client *Client) RequestPasswordReset(ctx context.Context, email string) (*OTPResponse, error) {
	request := struct {
		Email string `json:"email"`
	}{Email: email}

	var result OTPResponse
	if err := client.postJSON(ctx, "request password reset", "/reset-password-request", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResetPassword exchanges a reset token for a new password.
func (client *Client) ResetPassword(ctx context.Context, token, password string) (*OTPResponse, error) {
	request := struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}{Token: token, Password: password}

	var result OTPResponse
	if err := client.postJSON(ctx, "reset password", "/reset-password", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
