package models

import (
	"errors"
	"testing"
)

func TestDecodePayload_Valid(t *testing.T) {
	tests := []struct {
		mutationType MutationType
		payload      string
	}{
		{MutationWeightRecord, `{"animal_id":"cow-17","weight_kg":512.5,"method":"scale"}`},
		{MutationFeedingRecord, `{"group_id":"pen-3","feed_type":"silage","quantity_kg":120}`},
		{MutationMilkYieldRecord, `{"animal_id":"cow-17","liters":14.2,"session":"am"}`},
		{MutationExitRecord, `{"animal_id":"cow-17","reason":"sold","destination":"market"}`},
	}

	for _, tc := range tests {
		if _, err := DecodePayload(tc.mutationType, []byte(tc.payload)); err != nil {
			t.Errorf("%s: unexpected error: %v", tc.mutationType, err)
		}
	}
}

func TestDecodePayload_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		mutationType MutationType
		payload      string
	}{
		{"missing animal id", MutationWeightRecord, `{"weight_kg":512.5}`},
		{"non-positive weight", MutationWeightRecord, `{"animal_id":"cow-17","weight_kg":0}`},
		{"missing feed type", MutationFeedingRecord, `{"group_id":"pen-3","quantity_kg":120}`},
		{"bad session", MutationMilkYieldRecord, `{"animal_id":"cow-17","liters":14.2,"session":"noon"}`},
		{"missing reason", MutationExitRecord, `{"animal_id":"cow-17"}`},
		{"malformed json", MutationWeightRecord, `{not json`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodePayload(tc.mutationType, []byte(tc.payload))
			if !errors.Is(err, ErrInvalidPayload) {
				t.Errorf("expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}

func TestDecodePayload_UnknownType(t *testing.T) {
	_, err := DecodePayload("vaccination-record", []byte(`{}`))
	if !errors.Is(err, ErrUnknownMutationType) {
		t.Errorf("expected ErrUnknownMutationType, got %v", err)
	}
}
