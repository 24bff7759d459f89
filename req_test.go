// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package instrument

import "testing"

// TestBuildURL tests base URL, endpoint and query string concatenation
func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		endpoint string
		params   []Param
		expected string
	}{
		{
			name:     "no parameters",
			baseURL:  "http://10.0.0.10",
			endpoint: "/api/channels/1",
			params:   nil,
			expected: "http://10.0.0.10/api/channels/1",
		},
		{
			name:     "empty parameter slice adds no question mark",
			baseURL:  "http://10.0.0.10",
			endpoint: "/api/channels",
			params:   []Param{},
			expected: "http://10.0.0.10/api/channels",
		},
		{
			name:     "single parameter",
			baseURL:  "http://10.0.0.10",
			endpoint: "/api/channels",
			params:   []Param{{Name: "Enabled", Value: "true"}},
			expected: "http://10.0.0.10/api/channels?Enabled=true",
		},
		{
			name:     "multiple parameters preserve caller order",
			baseURL:  "http://10.0.0.10",
			endpoint: "/api/channels",
			params: []Param{
				{Name: "Type", Value: "Analog"},
				{Name: "Enabled", Value: "true"},
				{Name: "Index", Value: "3"},
			},
			expected: "http://10.0.0.10/api/channels?Type=Analog&Enabled=true&Index=3",
		},
		{
			name:     "values are not URL escaped",
			baseURL:  "http://10.0.0.10",
			endpoint: "/api/channels",
			params:   []Param{{Name: "Name", Value: "AI 1/1"}},
			expected: "http://10.0.0.10/api/channels?Name=AI 1/1",
		},
		{
			name:     "base URL and endpoint join verbatim",
			baseURL:  "http://10.0.0.10/",
			endpoint: "/api",
			params:   nil,
			expected: "http://10.0.0.10//api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildURL(tt.baseURL, tt.endpoint, tt.params)
			if got != tt.expected {
				t.Errorf("buildURL() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestEncodeBody tests request body serialization
func TestEncodeBody(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		expected string
		wantErr  bool
	}{
		{
			name:     "nil body serializes to JSON null",
			body:     nil,
			expected: "null",
		},
		{
			name: "struct body",
			body: struct {
				Name    string `json:"Name"`
				Enabled bool   `json:"Enabled"`
			}{Name: "AI 1/1", Enabled: true},
			expected: `{"Name":"AI 1/1","Enabled":true}`,
		},
		{
			name:     "map body",
			body:     map[string]int{"SampleRate": 1200},
			expected: `{"SampleRate":1200}`,
		},
		{
			name:     "string body is JSON encoded",
			body:     "restart",
			expected: `"restart"`,
		},
		{
			name:     "body builder passes through as built",
			body:     Body{}.Set("Enabled", true),
			expected: `{"Enabled":true}`,
		},
		{
			name:    "unsupported type",
			body:    make(chan int),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeBody(tt.body)
			if tt.wantErr {
				if err == nil {
					t.Fatal("encodeBody() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("encodeBody() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("encodeBody() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestEncodeBodyBuilderError tests that a failed Body build surfaces its error
func TestEncodeBodyBuilderError(t *testing.T) {
	body := Body{}.Set("", "value") // empty path is invalid
	if body.Err() == nil {
		t.Fatal("expected builder error for empty path")
	}

	if _, err := encodeBody(body); err == nil {
		t.Error("encodeBody() expected builder error, got nil")
	}
}
