// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sharing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/models"
)

const metadataDevicesKey = "devices"

// MalformedPolicy decides what a malformed entry of the metadata "devices"
// array does to the sentence.
type MalformedPolicy int

const (
	// PolicyFallback discards every device name and uses the general
	// sentence as soon as one entry is malformed.
	PolicyFallback MalformedPolicy = iota
	// PolicySkip drops malformed entries and keeps the well-formed ones.
	PolicySkip
)

// ParseMalformedPolicy maps "fallback" and "skip" to their policy.
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fallback":
		return PolicyFallback, nil
	case "skip":
		return PolicySkip, nil
	default:
		return PolicyFallback, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

func (p MalformedPolicy) String() string {
	if p == PolicySkip {
		return "skip"
	}
	return "fallback"
}

// Formatter builds the display sentence of a sharing request.
type Formatter struct {
	phrases Phrases
	policy  MalformedPolicy
	logger  *logger.Logger
}

// NewFormatter returns a Formatter using phrases and policy. log may be nil.
func NewFormatter(phrases Phrases, policy MalformedPolicy, log *logger.Logger) *Formatter {
	if log == nil {
		log = logger.Nop()
	}
	return &Formatter{phrases: phrases, policy: policy, logger: log}
}

// Phrases returns the bundle the formatter was built with.
func (f *Formatter) Phrases() Phrases {
	return f.phrases
}

// Format returns the sentence for req. It never fails: metadata that does
// not describe any device yields the general sentence built from the node
// ids.
func (f *Formatter) Format(req models.SharingRequest) string {
	names, ok := parseDeviceNames(req.Metadata, f.policy)
	if !ok {
		if strings.TrimSpace(req.Metadata) != "" {
			f.logger.Debug().
				Str("func", "Formatter.Format").
				Str("request_id", req.RequestID).
				Str("metadata", req.Metadata).
				Msg("metadata carries no usable devices, using general sentence")
		}
		return f.generalSentence(req)
	}

	noun := f.phrases.Device
	if len(names) > 1 {
		noun = f.phrases.Devices
	}

	return fmt.Sprintf(f.phrases.DeviceSentence, req.PrimaryUserName, f.joinNames(names), noun)
}

// Row renders req as a display row.
func (f *Formatter) Row(req models.SharingRequest) models.DisplayRow {
	return models.DisplayRow{RequestID: req.RequestID, Text: f.Format(req)}
}

func (f *Formatter) generalSentence(req models.SharingRequest) string {
	return fmt.Sprintf(f.phrases.GeneralSentence, req.PrimaryUserName, strings.Join(req.NodeIDs, f.phrases.ListSeparator))
}

// joinNames joins names with the list separator except the final pair,
// which is joined with the "and" word.
func (f *Formatter) joinNames(names []string) string {
	if len(names) == 1 {
		return names[0]
	}

	last := len(names) - 1
	return strings.Join(names[:last], f.phrases.ListSeparator) + " " + f.phrases.And + " " + names[last]
}

// parseDeviceNames extracts devices[].name from metadata. The boolean is
// false when metadata is empty, is not a JSON object, has no non-empty
// "devices" array, or (under PolicyFallback) has a malformed entry.
func parseDeviceNames(metadata string, policy MalformedPolicy) ([]string, bool) {
	if strings.TrimSpace(metadata) == "" {
		return nil, false
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(metadata), &doc); err != nil {
		return nil, false
	}

	raw, ok := doc[metadataDevicesKey]
	if !ok {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, false
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		name, ok := deviceName(item)
		if !ok {
			if policy == PolicyFallback {
				return nil, false
			}
			continue
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, false
	}

	return names, true
}

// deviceName reports the name of a device entry. An entry is well formed
// when it is a JSON object whose "name" is a non-blank string.
func deviceName(item json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}

	var dev struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(trimmed, &dev); err != nil || dev.Name == nil {
		return "", false
	}

	name := strings.TrimSpace(*dev.Name)
	if name == "" {
		return "", false
	}

	return name, true
}
