/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownLanguage indicates an unsupported typography language.
var ErrUnknownLanguage = errors.New("unknown typography language")

// Language selects which typography source is loaded.
type Language string

// Supported typography languages.
const (
	English  Language = "en"
	Chinese  Language = "zh"
	Japanese Language = "ja"
)

// Languages lists the supported typography languages.
var Languages = []Language{English, Chinese, Japanese}

var (
	languageTags = []language.Tag{language.English, language.Chinese, language.Japanese}
	matcher      = language.NewMatcher(languageTags)
)

// ModeName returns the mode name written to exported typography files.
func (l Language) ModeName() string {
	switch l {
	case Chinese:
		return "中文"
	case Japanese:
		return "日本語"
	default:
		return "English"
	}
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	switch l {
	case Chinese:
		return language.Chinese
	case Japanese:
		return language.Japanese
	default:
		return language.English
	}
}

// ParseLanguage resolves a BCP 47 tag (e.g. "zh-CN", "ja-JP") or an export
// mode name (e.g. "中文") to a supported language.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return English, nil
	}
	for _, l := range Languages {
		if s == l.ModeName() {
			return l, nil
		}
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return Languages[index], nil
}
