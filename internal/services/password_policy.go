package services

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"
)

//go:embed common_passwords.txt
var commonPasswordList string

const (
	minSimilarityUsernameLength = 3
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

// PasswordPolicy rejects weak passwords before they are hashed.
type PasswordPolicy struct {
	minLength int
	common    map[string]struct{}
}

func NewPasswordPolicy(minLength int) *PasswordPolicy {
	common := make(map[string]struct{})
	for _, line := range strings.Split(commonPasswordList, "\n") {
		if line = strings.ToLower(strings.TrimSpace(line)); line != "" && !strings.HasPrefix(line, "#") {
			common[line] = struct{}{}
		}
	}
	return &PasswordPolicy{
		minLength: minLength,
		common:    common,
	}
}

// Check returns every rule the password breaks, or nil.
func (p *PasswordPolicy) Check(password, username string) []string {
	var problems []string

	if len([]rune(password)) < p.minLength {
		problems = append(problems, fmt.Sprintf(
			"This password is too short. It must contain at least %d characters.", p.minLength))
	}
	if len(password) > maxPasswordBytes {
		problems = append(problems, fmt.Sprintf(
			"This password is too long. It must contain at most %d bytes.", maxPasswordBytes))
	}
	if p.isCommon(password) {
		problems = append(problems, "This password is too common.")
	}
	if password != "" && isNumeric(password) {
		problems = append(problems, "This password is entirely numeric.")
	}
	if similarToUsername(password, username) {
		problems = append(problems, "The password is too similar to the username.")
	}

	return problems
}

// isCommon also matches a listed password padded with trailing digits or
// punctuation, e.g. "welcome123" or "Summer2024!".
func (p *PasswordPolicy) isCommon(password string) bool {
	candidate := strings.ToLower(strings.TrimSpace(password))
	if _, ok := p.common[candidate]; ok {
		return true
	}
	base := strings.TrimRightFunc(candidate, func(r rune) bool {
		return unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	if base == "" || base == candidate {
		return false
	}
	_, ok := p.common[base]
	return ok
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func similarToUsername(password, username string) bool {
	if len(username) < minSimilarityUsernameLength || password == "" {
		return false
	}
	p := strings.ToLower(password)
	u := strings.ToLower(username)
	return strings.Contains(p, u) || strings.Contains(u, p)
}
