package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel payload validation errors. Enqueue rejects an intent whose
// payload does not decode cleanly into the shape its type demands.
var (
	ErrUnknownMutationType = errors.New("unknown mutation type")
	ErrInvalidPayload      = errors.New("invalid mutation payload")
)

// WeightRecordPayload captures a single animal weighing.
type WeightRecordPayload struct {
	AnimalID string  `json:"animal_id"`
	WeightKg float64 `json:"weight_kg"`
	// Method is the optional measurement method (scale, tape, visual).
	Method string `json:"method,omitempty"`
}

func (p WeightRecordPayload) Validate() error {
	if p.AnimalID == "" {
		return fmt.Errorf("%w: animal_id is required", ErrInvalidPayload)
	}
	if p.WeightKg <= 0 {
		return fmt.Errorf("%w: weight_kg must be positive", ErrInvalidPayload)
	}
	return nil
}

// FeedingRecordPayload captures a feed distribution to an animal group.
type FeedingRecordPayload struct {
	GroupID    string  `json:"group_id"`
	FeedType   string  `json:"feed_type"`
	QuantityKg float64 `json:"quantity_kg"`
}

func (p FeedingRecordPayload) Validate() error {
	if p.GroupID == "" {
		return fmt.Errorf("%w: group_id is required", ErrInvalidPayload)
	}
	if p.FeedType == "" {
		return fmt.Errorf("%w: feed_type is required", ErrInvalidPayload)
	}
	if p.QuantityKg <= 0 {
		return fmt.Errorf("%w: quantity_kg must be positive", ErrInvalidPayload)
	}
	return nil
}

// MilkYieldRecordPayload captures one milking session result.
type MilkYieldRecordPayload struct {
	AnimalID string  `json:"animal_id"`
	Liters   float64 `json:"liters"`
	// Session is "am" or "pm".
	Session string `json:"session"`
}

func (p MilkYieldRecordPayload) Validate() error {
	if p.AnimalID == "" {
		return fmt.Errorf("%w: animal_id is required", ErrInvalidPayload)
	}
	if p.Liters <= 0 {
		return fmt.Errorf("%w: liters must be positive", ErrInvalidPayload)
	}
	if p.Session != "am" && p.Session != "pm" {
		return fmt.Errorf("%w: session must be am or pm", ErrInvalidPayload)
	}
	return nil
}

// ExitRecordPayload captures an animal leaving the herd.
type ExitRecordPayload struct {
	AnimalID string `json:"animal_id"`
	// Reason is the exit cause (sold, died, culled, transferred).
	Reason      string `json:"reason"`
	Destination string `json:"destination,omitempty"`
}

func (p ExitRecordPayload) Validate() error {
	if p.AnimalID == "" {
		return fmt.Errorf("%w: animal_id is required", ErrInvalidPayload)
	}
	if p.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidPayload)
	}
	return nil
}

// DecodePayload parses raw into the payload shape demanded by mutationType
// and validates it. This is the type/payload consistency gate behind
// enqueue: a raw payload that does not decode and validate never reaches
// the queue.
func DecodePayload(mutationType MutationType, raw json.RawMessage) (any, error) {
	switch mutationType {
	case MutationWeightRecord:
		var p WeightRecordPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return p, p.Validate()
	case MutationFeedingRecord:
		var p FeedingRecordPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return p, p.Validate()
	case MutationMilkYieldRecord:
		var p MilkYieldRecordPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return p, p.Validate()
	case MutationExitRecord:
		var p ExitRecordPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return p, p.Validate()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMutationType, mutationType)
	}
}
