// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sharing

import (
	"fmt"
	"strings"
)

// Phrases is a localised bundle of the texts used by the formatter and the
// presenter.
type Phrases struct {
	// DeviceSentence receives the primary user name, the joined device names
	// and the device noun (singular or plural), in that order.
	DeviceSentence string
	// GeneralSentence receives the primary user name and the joined node ids.
	GeneralSentence string

	Device  string
	Devices string
	And     string

	// ListSeparator joins all names but the last pair.
	ListSeparator string

	Accepting    string
	Declining    string
	GenericError string
}

// EnglishPhrases is the default bundle.
var EnglishPhrases = Phrases{
	DeviceSentence:  "%[1]s wants to share %[2]s %[3]s with you.",
	GeneralSentence: "%[1]s wants to share node %[2]s with you.",
	Device:          "device",
	Devices:         "devices",
	And:             "and",
	ListSeparator:   ", ",
	Accepting:       "Accepting...",
	Declining:       "Declining...",
	GenericError:    "Failed to update sharing request.",
}

// RussianPhrases uses the instrumental case, so the device noun precedes the
// names.
var RussianPhrases = Phrases{
	DeviceSentence:  "%[1]s хочет поделиться с вами %[3]s %[2]s.",
	GeneralSentence: "%[1]s хочет поделиться с вами узлом %[2]s.",
	Device:          "устройством",
	Devices:         "устройствами",
	And:             "и",
	ListSeparator:   ", ",
	Accepting:       "Принятие...",
	Declining:       "Отклонение...",
	GenericError:    "Не удалось обработать запрос на совместный доступ.",
}

// PhrasesFor returns the bundle for a language code ("en", "ru").
func PhrasesFor(language string) (Phrases, error) {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "", "en":
		return EnglishPhrases, nil
	case "ru":
		return RussianPhrases, nil
	default:
		return Phrases{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
}

// ActionLabel returns the loading label for an accept or decline.
func (p Phrases) ActionLabel(accept bool) string {
	if accept {
		return p.Accepting
	}
	return p.Declining
}
