package utils

import (
    "fmt"
    "net/mail"
    "regexp"
    "strings"
    "unicode"
)

// passwordSymbols is the punctuation set a password must draw one character
// from.  It is the single source of truth for every place a secret is
// accepted; registration and any future password-change path share it.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

const (
    minPasswordLen = 8
    maxPasswordLen = 128
)

var nameRe = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)

// NormalizeEmail lower-cases and trims an email address so that lookups and
// the storage-layer uniqueness constraint agree on a canonical form.
func NormalizeEmail(email string) string {
    return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that the address parses.  Normalization is the
// caller's job.
func ValidateEmail(email string) error {
    if email == "" {
        return fmt.Errorf("email is required")
    }
    if _, err := mail.ParseAddress(email); err != nil {
        return fmt.Errorf("invalid email address")
    }
    return nil
}

// ValidatePassword enforces the password policy: at least 8 characters with
// an upper-case letter, a lower-case letter, a digit, and one symbol from
// passwordSymbols.  The returned error names the first unmet requirement.
func ValidatePassword(pw string) error {
    if len(pw) < minPasswordLen {
        return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
    }
    if len(pw) > maxPasswordLen {
        return fmt.Errorf("password must be at most %d characters long", maxPasswordLen)
    }
    var upper, lower, digit, symbol bool
    for _, r := range pw {
        switch {
        case unicode.IsUpper(r):
            upper = true
        case unicode.IsLower(r):
            lower = true
        case unicode.IsDigit(r):
            digit = true
        case strings.ContainsRune(passwordSymbols, r):
            symbol = true
        }
    }
    switch {
    case !upper:
        return fmt.Errorf("password must contain at least one uppercase letter")
    case !lower:
        return fmt.Errorf("password must contain at least one lowercase letter")
    case !digit:
        return fmt.Errorf("password must contain at least one digit")
    case !symbol:
        return fmt.Errorf("password must contain at least one special character")
    }
    return nil
}

// ValidateName checks an optional first/last name.  An empty string is fine;
// a non-empty one may only contain letters, spaces, hyphens and apostrophes.
func ValidateName(name string) error {
    if name == "" {
        return nil
    }
    if len(name) > 100 {
        return fmt.Errorf("name must be at most 100 characters long")
    }
    if !nameRe.MatchString(name) {
        return fmt.Errorf("name can only contain letters, spaces, hyphens, and apostrophes")
    }
    return nil
}
